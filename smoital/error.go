package smoital

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrInvalidDate = errors.New("invalid date")
)

// invalidDateError returns an invalid date error with a custom
// error message, which unwraps to ErrInvalidDate.
func invalidDateError(message string) error {
	return fmt.Errorf("%w: %s", ErrInvalidDate, message)
}

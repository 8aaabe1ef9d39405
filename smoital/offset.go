package smoital

import (
	"fmt"
	"time"
)

// Offset is a fixed UTC offset, stored in seconds east of UTC.
// Positive values are east of UTC, negative values are west.
type Offset int

// SmolDayOffset is the fixed offset of every Smol day (UTC-12:00).
const SmolDayOffset Offset = -12 * 60 * 60

// OffsetMinutes returns the Offset for the given number of minutes
// east of UTC.
func OffsetMinutes(minutes int) Offset {
	return Offset(minutes * 60)
}

// Seconds returns the offset in seconds east of UTC.
func (o Offset) Seconds() int {
	return int(o)
}

// Minutes returns the offset in whole minutes east of UTC.
// Sub-minute residue is truncated.
func (o Offset) Minutes() int {
	return int(o) / 60
}

// Location returns a fixed time.Location with this offset.
func (o Offset) Location() *time.Location {
	return time.FixedZone("UTC"+o.String(), int(o))
}

// String formats the offset as a signed hh:mm value, e.g. "+12:00".
func (o Offset) String() string {
	sign := "+"
	minutes := o.Minutes()
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%02d:%02d", sign, minutes/60, minutes%60)
}

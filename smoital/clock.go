package smoital

import (
	"fmt"
	"time"
)

// DisplayMode selects how the "extended" last 40 minutes of the Martian
// day are rendered on a 24-hour clock.
type DisplayMode int

const (
	// DisplayUnoptimized renders plain ISO 8601 time (e.g. 23:20),
	// leaving the extended window ambiguous.
	DisplayUnoptimized DisplayMode = iota

	// DisplayOverflowed renders the extended window with an overflowed
	// hour (e.g. 24:00).
	DisplayOverflowed

	// DisplayExtendedMinutes renders the extended window with overflowed
	// minutes (e.g. 23:60).
	DisplayExtendedMinutes

	// DisplayXM renders the extended window in XM notation
	// (e.g. 12:00 XM).
	DisplayXM
)

// FormatClock renders the optimized time string for a UTC instant.
//
// The last 40 minutes of the Earth day (23:20 to 23:59 UTC) carry the
// extra 40 minutes appended to a standard Smoital day; times inside this
// window are rewritten according to the display mode. A full integration
// would need timezone context to place the window, so this display logic
// detects the standard slide-back window directly.
func FormatClock(t time.Time, mode DisplayMode) string {
	t = t.UTC()
	h, m, s := t.Hour(), t.Minute(), t.Second()

	extended := h == 23 && m >= 20
	if !extended {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}

	switch mode {
	case DisplayOverflowed:
		// 23:20 maps to 24:00.
		return fmt.Sprintf("24:%02d:%02d", m-20, s)
	case DisplayExtendedMinutes:
		// 23:20 maps to 23:60.
		return fmt.Sprintf("23:%02d:%02d", m+40, s)
	case DisplayXM:
		// 23:20 maps to 12:00 XM.
		return fmt.Sprintf("12:%02d:%02d XM", m-20, s)
	default:
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
}

package smoital

// SmoitalDate represents a date in the Smoital system, defined by year,
// Smonth (intercalary month, 0-indexed) and day of Smonth (1-indexed,
// up to 37).
//
// The type itself does not know Smonth lengths; whether a date is valid
// depends on the schedule attached to a SmoitalYear.
type SmoitalDate struct {
	Year   int
	Smonth int
	Day    int
}

// CalculateOffset returns the UTC offset for this date using the standard
// formula offset = 760 - 40*D minutes, where D is the day of the Smonth.
//
// D=37 (a Smol day) yields 760 - 1480 = -720 minutes, i.e. exactly
// UTC-12:00, so the formula agrees with the schedule-based Smol pinning
// at the boundary.
func (d SmoitalDate) CalculateOffset() Offset {
	return OffsetMinutes(760 - 40*d.Day)
}

// IsSmolDay reports whether this date is a Smol (shortened) day.
// Smol days are always the 37th day of a Smonth.
func (d SmoitalDate) IsSmolDay() bool {
	return d.Day == SmolSmonthDays
}

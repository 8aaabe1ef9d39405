package smoital

import "slices"

// SmonthSchedule defines the layout of a Martian year, i.e. which Smonths
// are 37 days long and which UTC offset applies to each day.
type SmonthSchedule interface {
	// IsSmolSmonth reports whether the Smonth at the given index
	// (0-based) is 37 days long. Implementations must be pure and
	// total over all non-negative indices.
	IsSmolSmonth(smonthIndex int) bool

	// TimezoneOffset returns the UTC offset for a day of the year
	// (0-indexed). Callers must supply a non-negative index; values
	// beyond the year length extrapolate the underlying pattern.
	TimezoneOffset(dayOfYear int) Offset
}

// SmonthLength returns the length of the Smonth at the given index
// in days (36 or 37), derived from the schedule's IsSmolSmonth.
func SmonthLength(schedule SmonthSchedule, smonthIndex int) int {
	if schedule.IsSmolSmonth(smonthIndex) {
		return SmolSmonthDays
	}
	return StandardSmonthDays
}

// EquatorialSchedule implements the fixed "Equatorial Smoital Schedule".
//
// This schedule is optimized for equatorial regions and is designed to be
// reused every year. It starts with a quiet period of standard 36-day
// Smonths during the long-day season, followed by a cluster of 37-day
// (Smol) Smonths that correct the equation of time.
type EquatorialSchedule struct {
	// firstLongSmonthIndex is the index of the first 37-day Smonth.
	firstLongSmonthIndex int

	// longSmonthOffsets are the relative offsets of 37-day Smonths from
	// the first long Smonth. Smonths past the last listed offset are
	// standard 36-day Smonths.
	longSmonthOffsets []int
}

var _ SmonthSchedule = (*EquatorialSchedule)(nil)

// NewEquatorialSchedule returns the default equatorial schedule: the first
// long Smonth at index 6, with long Smonths at relative offsets
// {0, 1, 3, 4, 6, 8, 10}, i.e. absolute indices {6, 7, 9, 10, 12, 14, 16}.
func NewEquatorialSchedule() *EquatorialSchedule {
	return &EquatorialSchedule{
		firstLongSmonthIndex: 6,
		longSmonthOffsets:    []int{0, 1, 3, 4, 6, 8, 10},
	}
}

// IsSmolSmonth reports whether the Smonth at the given index is 37 days long.
func (s *EquatorialSchedule) IsSmolSmonth(smonthIndex int) bool {
	// All Smonths before the first long one are standard.
	if smonthIndex < s.firstLongSmonthIndex {
		return false
	}
	return slices.Contains(s.longSmonthOffsets, smonthIndex-s.firstLongSmonthIndex)
}

// TimezoneOffset returns the UTC offset for a day of the year (0-indexed).
// It walks the Smonth lengths from index 0 to locate the containing Smonth;
// yearly Smonth counts are small, so the linear scan is cheap.
func (s *EquatorialSchedule) TimezoneOffset(dayOfYear int) Offset {
	daySum := 0
	smonthIndex := 0
	for daySum+SmonthLength(s, smonthIndex) <= dayOfYear {
		daySum += SmonthLength(s, smonthIndex)
		smonthIndex++
	}

	// 1-based day within the containing Smonth.
	dayOfSmonth := dayOfYear - daySum + 1

	// The 37th day of a 37-day Smonth is a Smol day, pinned to UTC-12:00.
	if SmonthLength(s, smonthIndex) == SmolSmonthDays && dayOfSmonth == SmolSmonthDays {
		return SmolDayOffset
	}

	// Standard formula: offset = 760 - 40*D minutes.
	return OffsetMinutes(760 - 40*dayOfSmonth)
}

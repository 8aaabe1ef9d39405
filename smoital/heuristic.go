package smoital

import (
	"math"
	"slices"
)

// Coefficients of the heuristic schedule algorithm.
const (
	c1Seconds = 85.0
	c2        = 4.51
	c3        = 1.54
	c4        = 35.8
)

// smolDaysInYear is the fixed number of Smol days generated per year.
const smolDaysInYear = 6

// smolDaySpacings is the Smonth spacing pattern of the Smol days relative
// to the first long Smonth.
var smolDaySpacings = [7]int{1, 2, 4, 5, 7, 9, 11}

// HeuristicSchedule calculates the timezone schedule for a year from a
// reference "natural timezone" (mean solar time offset in minutes).
//
// The Smol-day indices are derived once at construction and frozen;
// queries afterwards only read the set, so a HeuristicSchedule is safe
// for concurrent use.
type HeuristicSchedule struct {
	naturalTZStart float64

	// smolDates holds the 0-indexed days of the year that are Smol,
	// in ascending order.
	smolDates []int
}

var _ SmonthSchedule = (*HeuristicSchedule)(nil)

// NewHeuristicSchedule derives the schedule for the given year from
// naturalTZMin, the natural timezone reference in minutes. The year is
// retained for annotation only; the approximation used here does not
// vary by year.
func NewHeuristicSchedule(_ int, naturalTZMin float64) *HeuristicSchedule {
	rawStart := naturalTZMin + c1Seconds/60

	// Smoitus factor.
	smoitusFactor := fract(rawStart/40 + 0.5)

	// Smonth start approximation.
	smonthStartY0 := 0.0

	firstLongSmonth := int(math.Floor(c2 + smoitusFactor*c3 + smonthStartY0/c4))

	// Smol date generation: dateIdx = 36*(firstLongSmonth + spacing) + n.
	// Indices that fall before the start of the year are dropped.
	smolDates := make([]int, 0, smolDaysInYear)
	for n := 0; n < smolDaysInYear; n++ {
		dateIdx := StandardSmonthDays*(firstLongSmonth+smolDaySpacings[n]) + n
		if dateIdx >= 0 {
			smolDates = append(smolDates, dateIdx)
		}
	}

	return &HeuristicSchedule{
		naturalTZStart: naturalTZMin,
		smolDates:      smolDates,
	}
}

// IsSmolSmonth always returns false: the heuristic derives Smol dates
// directly rather than Smonth lengths, so Smonth-granularity queries are
// not supported for this variant. Use TimezoneOffset or SmolDates instead.
func (s *HeuristicSchedule) IsSmolSmonth(_ int) bool {
	return false
}

// SmolDates returns the frozen Smol-day indices of the year in
// ascending order.
func (s *HeuristicSchedule) SmolDates() []int {
	return slices.Clone(s.smolDates)
}

// TimezoneOffset returns the UTC offset for a day of the year (0-indexed).
// Smol days are pinned to UTC-12:00; every other day follows the start
// offset shifted back 40 minutes per elapsed standard day.
func (s *HeuristicSchedule) TimezoneOffset(dayOfYear int) Offset {
	if slices.Contains(s.smolDates, dayOfYear) {
		return SmolDayOffset
	}

	smolCount := 0
	for _, d := range s.smolDates {
		if d < dayOfYear {
			smolCount++
		}
	}

	startOffset := wrap24hr(round40min(s.naturalTZStart + c1Seconds/60))
	adjustment := 40 * float64(dayOfYear-smolCount)
	offset := wrap24hr(startOffset - adjustment)

	return Offset(offset * 60)
}

// round40min rounds a minute value to the nearest multiple of 40 minutes.
func round40min(tz float64) float64 {
	return math.Round(tz/40) * 40
}

// wrap24hr wraps a minute value into the (-720, 720] range.
func wrap24hr(tz float64) float64 {
	for tz <= -720 {
		tz += 1440
	}
	for tz > 720 {
		tz -= 1440
	}
	return tz
}

// fract returns the fractional part of x, truncating toward zero, so the
// result carries the sign of x.
func fract(x float64) float64 {
	return x - math.Trunc(x)
}

package smoital

import "fmt"

// SmoitalYear binds a calendar year to a SmonthSchedule so callers can
// move between day-of-year indices and SmoitalDate values and ask for
// the appropriate timezone offset.
//
// A SmoitalYear owns its schedule; a date presented with a different
// year is rejected, not reinterpreted.
type SmoitalYear struct {
	year     int
	schedule SmonthSchedule
}

// NewSmoitalYear returns a year bound to the provided schedule.
func NewSmoitalYear(year int, schedule SmonthSchedule) *SmoitalYear {
	return &SmoitalYear{year: year, schedule: schedule}
}

// Year returns the bound calendar year.
func (y *SmoitalYear) Year() int {
	return y.year
}

// Schedule returns the attached schedule.
func (y *SmoitalYear) Schedule() SmonthSchedule {
	return y.schedule
}

// TimezoneOffsetForDay returns the timezone offset for a day of the
// year (0-indexed).
func (y *SmoitalYear) TimezoneOffsetForDay(dayOfYear int) Offset {
	return y.schedule.TimezoneOffset(dayOfYear)
}

// TimezoneOffsetForDate converts the date to a day of the year and
// returns the timezone offset. Invalid dates (wrong year or
// out-of-range Smonth or day) return an error which unwraps to
// ErrInvalidDate.
func (y *SmoitalYear) TimezoneOffsetForDate(date SmoitalDate) (Offset, error) {
	day, err := y.DayOfYear(date)
	if err != nil {
		return 0, err
	}
	return y.TimezoneOffsetForDay(day), nil
}

// DayOfYear converts a SmoitalDate (Smonth 0-indexed, day 1-indexed)
// to a 0-indexed day of the year. It returns an error which unwraps to
// ErrInvalidDate if the date does not belong to this year or the day
// falls outside the Smonth length defined by the attached schedule.
func (y *SmoitalYear) DayOfYear(date SmoitalDate) (int, error) {
	if date.Year != y.year {
		return 0, invalidDateError(fmt.Sprintf("year %d does not match %d", date.Year, y.year))
	}
	if date.Smonth < 0 {
		return 0, invalidDateError(fmt.Sprintf("negative smonth %d", date.Smonth))
	}
	if date.Day < 1 {
		return 0, invalidDateError(fmt.Sprintf("day %d before start of smonth", date.Day))
	}

	dayIndex := 0
	for smonthIndex := 0; smonthIndex < date.Smonth; smonthIndex++ {
		dayIndex += SmonthLength(y.schedule, smonthIndex)
	}

	if smonthLen := SmonthLength(y.schedule, date.Smonth); date.Day > smonthLen {
		return 0, invalidDateError(fmt.Sprintf("day %d exceeds smonth length %d", date.Day, smonthLen))
	}

	return dayIndex + date.Day - 1, nil
}

// DateFromDay converts a 0-indexed day of the year into a SmoitalDate
// using the attached schedule. The conversion is total for non-negative
// day indices; indices past the year length extrapolate the schedule
// pattern.
func (y *SmoitalYear) DateFromDay(dayOfYear int) SmoitalDate {
	remaining := dayOfYear
	smonthIndex := 0
	for {
		smonthLen := SmonthLength(y.schedule, smonthIndex)
		if remaining < smonthLen {
			return SmoitalDate{
				Year:   y.year,
				Smonth: smonthIndex,
				Day:    remaining + 1,
			}
		}
		remaining -= smonthLen
		smonthIndex++
	}
}

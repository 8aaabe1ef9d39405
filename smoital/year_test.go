package smoital_test

import (
	"testing"

	"github.com/RustedBytes/smoital/internal/assert"
	"github.com/RustedBytes/smoital/smoital"
)

func TestSmoitalYear_ConvertsBetweenDayIndicesAndDates(t *testing.T) {
	year := smoital.NewSmoitalYear(2090, smoital.NewEquatorialSchedule())

	firstDay := year.DateFromDay(0)
	assert.Equal(t, firstDay, smoital.SmoitalDate{Year: 2090, Smonth: 0, Day: 1})

	smolDate := smoital.SmoitalDate{Year: 2090, Smonth: 6, Day: 37}
	day, err := year.DayOfYear(smolDate)
	assert.NoError(t, err)
	assert.Equal(t, day, 252)
	assert.Equal(t, year.DateFromDay(252), smolDate)

	// A day beyond the Smonth length is invalid.
	_, err = year.DayOfYear(smoital.SmoitalDate{Year: 2090, Smonth: 0, Day: 40})
	assert.ErrorIs(t, err, smoital.ErrInvalidDate)
}

func TestSmoitalYear_RoundTrip(t *testing.T) {
	year := smoital.NewSmoitalYear(2030, smoital.NewEquatorialSchedule())

	// Every day index maps to a date and back.
	for d := 0; d < smoital.DaysInYear; d++ {
		date := year.DateFromDay(d)
		got, err := year.DayOfYear(date)
		assert.NoError(t, err)
		assert.Equal(t, got, d)
	}

	// Every valid date maps to a day index and back.
	for smonth := 0; smonth <= 18; smonth++ {
		length := smoital.SmonthLength(year.Schedule(), smonth)
		for day := 1; day <= length; day++ {
			date := smoital.SmoitalDate{Year: 2030, Smonth: smonth, Day: day}
			d, err := year.DayOfYear(date)
			assert.NoError(t, err)
			assert.Equal(t, year.DateFromDay(d), date)
		}
	}
}

func TestSmoitalYear_RejectsInvalidDates(t *testing.T) {
	year := smoital.NewSmoitalYear(2030, smoital.NewEquatorialSchedule())

	tests := []struct {
		name string
		date smoital.SmoitalDate
	}{
		{"wrong year", smoital.SmoitalDate{Year: 2029, Smonth: 0, Day: 1}},
		{"zero day", smoital.SmoitalDate{Year: 2030, Smonth: 0, Day: 0}},
		{"negative day", smoital.SmoitalDate{Year: 2030, Smonth: 0, Day: -1}},
		{"negative smonth", smoital.SmoitalDate{Year: 2030, Smonth: -1, Day: 1}},
		{"day 37 in standard smonth", smoital.SmoitalDate{Year: 2030, Smonth: 0, Day: 37}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := year.DayOfYear(tt.date)
			assert.ErrorIs(t, err, smoital.ErrInvalidDate)

			_, err = year.TimezoneOffsetForDate(tt.date)
			assert.ErrorIs(t, err, smoital.ErrInvalidDate)
		})
	}
}

func TestSmoitalYear_TimezoneOffsetsByDate(t *testing.T) {
	year := smoital.NewSmoitalYear(2030, smoital.NewEquatorialSchedule())

	startOfYear := smoital.SmoitalDate{Year: 2030, Smonth: 0, Day: 1}
	offset, err := year.TimezoneOffsetForDate(startOfYear)
	assert.NoError(t, err)
	assert.Equal(t, offset.Seconds(), 12*3600)

	smolDate := smoital.SmoitalDate{Year: 2030, Smonth: 6, Day: 37}
	offset, err = year.TimezoneOffsetForDate(smolDate)
	assert.NoError(t, err)
	assert.Equal(t, offset, smoital.SmolDayOffset)

	// A date belonging to another year is rejected.
	_, err = year.TimezoneOffsetForDate(smoital.SmoitalDate{Year: 2029, Smonth: 0, Day: 1})
	assert.ErrorIs(t, err, smoital.ErrInvalidDate)
}

func TestSmoitalYear_HeuristicScheduleMapping(t *testing.T) {
	// With a heuristic schedule every Smonth reports 36 days, so the date
	// mapping runs on a uniform 36-day grid.
	year := smoital.NewSmoitalYear(2030, smoital.NewHeuristicSchedule(2030, 0.0))

	assert.Equal(t, year.DateFromDay(36), smoital.SmoitalDate{Year: 2030, Smonth: 1, Day: 1})

	_, err := year.DayOfYear(smoital.SmoitalDate{Year: 2030, Smonth: 6, Day: 37})
	assert.ErrorIs(t, err, smoital.ErrInvalidDate)

	// Offset queries still follow the frozen Smol-day set.
	assert.Equal(t, year.TimezoneOffsetForDay(216), smoital.SmolDayOffset)
}

func TestSmoitalYear_Accessors(t *testing.T) {
	sched := smoital.NewEquatorialSchedule()
	year := smoital.NewSmoitalYear(2030, sched)

	assert.Equal(t, year.Year(), 2030)
	assert.Equal(t, year.Schedule().(*smoital.EquatorialSchedule), sched)
}

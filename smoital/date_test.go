package smoital_test

import (
	"testing"

	"github.com/RustedBytes/smoital/internal/assert"
	"github.com/RustedBytes/smoital/smoital"
)

func TestSmoitalDate_CalculateOffset(t *testing.T) {
	// Day 1 starts at +12:00.
	first := smoital.SmoitalDate{Year: 2030, Smonth: 0, Day: 1}
	assert.Equal(t, first.CalculateOffset().Seconds(), 12*3600)

	// Day 37 (the Smol day) lands exactly on UTC-12:00, agreeing with the
	// schedule-based pinning.
	smol := smoital.SmoitalDate{Year: 2030, Smonth: 6, Day: 37}
	assert.Equal(t, smol.CalculateOffset(), smoital.SmolDayOffset)

	// Intermediate days step down 40 minutes at a time.
	mid := smoital.SmoitalDate{Year: 2030, Smonth: 2, Day: 10}
	assert.Equal(t, mid.CalculateOffset().Minutes(), 760-40*10)
}

func TestSmoitalDate_IsSmolDay(t *testing.T) {
	assert.Equal(t, smoital.SmoitalDate{Year: 2030, Smonth: 6, Day: 37}.IsSmolDay(), true)
	assert.Equal(t, smoital.SmoitalDate{Year: 2030, Smonth: 6, Day: 36}.IsSmolDay(), false)
	assert.Equal(t, smoital.SmoitalDate{Year: 2030, Smonth: 0, Day: 1}.IsSmolDay(), false)
}

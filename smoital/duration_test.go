package smoital_test

import (
	"testing"

	"github.com/RustedBytes/smoital/internal/assert"
	"github.com/RustedBytes/smoital/smoital"
)

const floatDelta = 1e-9

func TestMarsDuration_ConvertsBetweenMarsAndEarthSeconds(t *testing.T) {
	const earthSecs = 5000.0
	d := smoital.MarsDurationFromEarth(earthSecs)

	assert.InDelta(t, d.EarthSeconds(), earthSecs, floatDelta)

	roundTripped := smoital.NewMarsDuration(d.MarsSeconds())
	assert.InDelta(t, roundTripped.EarthSeconds(), earthSecs, floatDelta)
}

func TestMarsDuration_MarsSecondsArePreserved(t *testing.T) {
	const marsSecs = 123.456
	d := smoital.NewMarsDuration(marsSecs)

	assert.InDelta(t, d.MarsSeconds(), marsSecs, floatDelta)
	assert.InDelta(t, d.EarthSeconds(), marsSecs*smoital.MarsToEarthRatio, floatDelta)
}

func TestMarsDuration_EarthDurationMatchesEarthSeconds(t *testing.T) {
	d := smoital.NewMarsDuration(2.5)

	// Allow for nanosecond truncation in time.Duration.
	assert.InDelta(t, d.EarthDuration().Seconds(), d.EarthSeconds(), 1e-8)
}

func TestMarsDuration_SolLength(t *testing.T) {
	// One sol of 86400 Mars seconds spans the sol length in Earth seconds.
	sol := smoital.NewMarsDuration(86400)
	assert.InDelta(t, sol.EarthSeconds(), smoital.SolLengthSeconds, 1e-6)
}

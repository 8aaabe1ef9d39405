package smoital

import "time"

// MarsDuration represents a duration measured in Martian seconds.
//
// It converts between Earth seconds and Mars seconds via the exact
// ratio: 1 Mars second = 1.02749125 Earth seconds.
type MarsDuration struct {
	marsSeconds float64
}

// NewMarsDuration returns a duration of the given number of Martian
// seconds.
func NewMarsDuration(marsSeconds float64) MarsDuration {
	return MarsDuration{marsSeconds: marsSeconds}
}

// MarsDurationFromEarth returns a duration of the given number of Earth
// seconds, converted via the exact ratio.
func MarsDurationFromEarth(earthSeconds float64) MarsDuration {
	return MarsDuration{marsSeconds: earthSeconds / MarsToEarthRatio}
}

// MarsSeconds returns the duration in Martian seconds.
func (d MarsDuration) MarsSeconds() float64 {
	return d.marsSeconds
}

// EarthSeconds returns the duration in Earth seconds.
func (d MarsDuration) EarthSeconds() float64 {
	return d.marsSeconds * MarsToEarthRatio
}

// EarthDuration converts to a standard time.Duration in Earth time.
func (d MarsDuration) EarthDuration() time.Duration {
	return time.Duration(d.EarthSeconds() * float64(time.Second))
}

package smoital

// Calendar constants of the Smoital system.
const (
	// MarsToEarthRatio is the exact ratio of Mars seconds to Earth seconds.
	// Derived from 24h 39m 35s 244ms / 86400s.
	MarsToEarthRatio = 1.02749125

	// SolLengthSeconds is the length of a Martian sol in Earth seconds.
	SolLengthSeconds = 88_775.244

	// StandardDayMins is the standard Smoital day length in minutes (24h 40m).
	StandardDayMins = 24*60 + 40

	// SmolDayMins is the Smol (shortened) day length in minutes (24h 00m).
	SmolDayMins = 24 * 60

	// StandardSmonthDays is the length of a standard Smonth.
	StandardSmonthDays = 36

	// SmolSmonthDays is the length of a Smonth that ends with a Smol day.
	SmolSmonthDays = 37

	// DaysInYear is the number of days in a Smoital year.
	DaysInYear = 668
)

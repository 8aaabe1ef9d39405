// Package smoital implements the Synodic Mars-Orbit Intercalary Timezone
// Alignment (Smoital) system, which packs the Martian sol into a
// UTC-denominated clock by inserting shortened "Smol" days and shifting
// the UTC offset in 40-minute steps.
//
// The package provides:
//   - Smonth schedule generation (fixed equatorial pattern and a heuristic
//     computed from a natural timezone reference).
//   - Conversion between SmoitalDate values and day-of-year indices.
//   - Optimized clock display logic (overflow / extended minutes / XM).
//   - Precise Mars/Earth duration conversion.
//   - IANA timezone rule generation.
package smoital

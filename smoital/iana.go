package smoital

import (
	"bufio"
	"fmt"
	"io"

	"github.com/RustedBytes/smoital/logger"
)

// RuleGenerator emits IANA-style timezone rules from a SmonthSchedule,
// one rule line per day of the year.
//
// Mapping a day index to an Earth Gregorian month and day requires the
// skipped-date epoch logic, which is outside this library; the generated
// lines carry the day index directly.
type RuleGenerator struct {
	schedule SmonthSchedule
	opts     RuleGeneratorOptions
}

// RuleGeneratorOptions configures a RuleGenerator.
type RuleGeneratorOptions struct {
	// Logger receives progress messages while rules are generated.
	Logger logger.Logger

	// Days overrides the number of rule lines to emit per year.
	// Zero means DaysInYear.
	Days int
}

// NewRuleGenerator returns a RuleGenerator for the schedule with
// default options.
func NewRuleGenerator(schedule SmonthSchedule) *RuleGenerator {
	return NewRuleGeneratorWithOptions(schedule, RuleGeneratorOptions{})
}

// NewRuleGeneratorWithOptions returns a RuleGenerator configured as
// specified.
func NewRuleGeneratorWithOptions(schedule SmonthSchedule, opts RuleGeneratorOptions) *RuleGenerator {
	if opts.Logger == nil {
		opts.Logger = logger.NoOpLogger{}
	}
	if opts.Days == 0 {
		opts.Days = DaysInYear
	}
	return &RuleGenerator{schedule: schedule, opts: opts}
}

// YearRules returns the timezone rule lines for the given year, one per
// day index in [0, Days).
func (g *RuleGenerator) YearRules(year int) []string {
	g.opts.Logger.Debug("generating timezone rules", "year", year, "days", g.opts.Days)

	rules := make([]string, 0, g.opts.Days)
	for d := 0; d < g.opts.Days; d++ {
		rules = append(rules, g.ruleLine(year, d))
	}

	g.opts.Logger.Info("generated timezone rules", "year", year, "count", len(rules))
	return rules
}

// WriteYearRules streams the timezone rule lines for the given year
// to w, one per line.
func (g *RuleGenerator) WriteYearRules(w io.Writer, year int) error {
	bw := bufio.NewWriter(w)
	for d := 0; d < g.opts.Days; d++ {
		if _, err := fmt.Fprintln(bw, g.ruleLine(year, d)); err != nil {
			return fmt.Errorf("write rule for day %d: %w", d, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush rules: %w", err)
	}

	g.opts.Logger.Info("wrote timezone rules", "year", year, "count", g.opts.Days)
	return nil
}

// ruleLine formats a single rule: Rule YEAR Smoital only DayD 24:00 OFFSET,
// with the offset in minutes east of UTC.
func (g *RuleGenerator) ruleLine(year, dayOfYear int) string {
	offset := g.schedule.TimezoneOffset(dayOfYear)
	return fmt.Sprintf("Rule %d Smoital only Day%d 24:00 %d", year, dayOfYear, offset.Minutes())
}

// GenerateYearRules returns the timezone rule lines for the given year
// using default generator options.
func GenerateYearRules(year int, schedule SmonthSchedule) []string {
	return NewRuleGenerator(schedule).YearRules(year)
}

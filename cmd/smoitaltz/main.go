// Command smoitaltz queries Smoital schedules and emits IANA timezone
// rule tables from the command line.
//
// Configuration can be supplied as flags or via SMOITAL_* environment
// variables; a .env file in the working directory is loaded at startup.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli"

	"github.com/RustedBytes/smoital/logger"
	"github.com/RustedBytes/smoital/smoital"
)

var version = "0.1.0"

func main() {
	// Load .env if present; a no-op where env vars are set directly.
	_ = godotenv.Load()

	app := cli.NewApp()
	app.Name = "smoitaltz"
	app.Usage = "Smoital (Mars-aligned calendar) timezone toolkit"
	app.Version = version
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:   "verbose, v",
			Usage:  "enable debug logging",
			EnvVar: "SMOITAL_VERBOSE",
		},
	}
	app.Commands = []cli.Command{
		rulesCommand(),
		offsetCommand(),
		clockCommand(),
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "smoitaltz: %s\n", err.Error())
		os.Exit(1)
	}
}

func scheduleFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{
			Name:   "year, y",
			Usage:  "Smoital calendar year",
			EnvVar: "SMOITAL_YEAR",
			Value:  2030,
		},
		cli.StringFlag{
			Name:   "schedule, s",
			Usage:  "schedule variant: equatorial or heuristic",
			EnvVar: "SMOITAL_SCHEDULE",
			Value:  "heuristic",
		},
		cli.Float64Flag{
			Name:   "natural-tz, n",
			Usage:  "natural timezone reference in minutes (heuristic schedule)",
			EnvVar: "SMOITAL_NATURAL_TZ",
		},
	}
}

func rulesCommand() cli.Command {
	return cli.Command{
		Name:  "rules",
		Usage: "emit the IANA timezone rule table for a year",
		Flags: append(scheduleFlags(),
			cli.StringFlag{
				Name:  "output, o",
				Usage: "write rules to a file instead of stdout",
			},
		),
		Action: func(c *cli.Context) error {
			sched, err := buildSchedule(c)
			if err != nil {
				return err
			}

			gen := smoital.NewRuleGeneratorWithOptions(sched, smoital.RuleGeneratorOptions{
				Logger: newLogger(c),
			})

			out := os.Stdout
			if path := c.String("output"); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			return gen.WriteYearRules(out, c.Int("year"))
		},
	}
}

func offsetCommand() cli.Command {
	return cli.Command{
		Name:  "offset",
		Usage: "print the UTC offset for a day of the year or a date",
		Flags: append(scheduleFlags(),
			cli.IntFlag{
				Name:  "day, d",
				Usage: "day of the year (0-indexed)",
				Value: -1,
			},
			cli.IntFlag{
				Name:  "smonth, m",
				Usage: "smonth of a structured date (0-indexed)",
				Value: -1,
			},
			cli.IntFlag{
				Name:  "day-of-smonth",
				Usage: "day of the smonth (1-indexed), used with --smonth",
				Value: 1,
			},
		),
		Action: func(c *cli.Context) error {
			sched, err := buildSchedule(c)
			if err != nil {
				return err
			}
			year := smoital.NewSmoitalYear(c.Int("year"), sched)

			if smonth := c.Int("smonth"); smonth >= 0 {
				date := smoital.SmoitalDate{
					Year:   year.Year(),
					Smonth: smonth,
					Day:    c.Int("day-of-smonth"),
				}
				offset, err := year.TimezoneOffsetForDate(date)
				if err != nil {
					return err
				}
				fmt.Printf("%s\n", offset)
				return nil
			}

			day := c.Int("day")
			if day < 0 {
				return fmt.Errorf("either --day or --smonth is required")
			}
			fmt.Printf("%s\n", year.TimezoneOffsetForDay(day))
			return nil
		},
	}
}

func clockCommand() cli.Command {
	return cli.Command{
		Name:  "clock",
		Usage: "format a UTC instant on the Smoital clock",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "time, t",
				Usage: "UTC instant in RFC 3339 format (default: now)",
			},
			cli.StringFlag{
				Name:   "mode, m",
				Usage:  "display mode: unoptimized, overflowed, extended or xm",
				EnvVar: "SMOITAL_CLOCK_MODE",
				Value:  "overflowed",
			},
		},
		Action: func(c *cli.Context) error {
			instant := time.Now().UTC()
			if arg := c.String("time"); arg != "" {
				parsed, err := time.Parse(time.RFC3339, arg)
				if err != nil {
					return fmt.Errorf("parse time: %w", err)
				}
				instant = parsed
			}

			mode, err := parseDisplayMode(c.String("mode"))
			if err != nil {
				return err
			}

			fmt.Println(smoital.FormatClock(instant, mode))
			return nil
		},
	}
}

// buildSchedule constructs the schedule variant selected by the flags.
func buildSchedule(c *cli.Context) (smoital.SmonthSchedule, error) {
	switch name := c.String("schedule"); name {
	case "equatorial":
		return smoital.NewEquatorialSchedule(), nil
	case "heuristic":
		return smoital.NewHeuristicSchedule(c.Int("year"), c.Float64("natural-tz")), nil
	default:
		return nil, fmt.Errorf("unknown schedule %q (want equatorial or heuristic)", name)
	}
}

func parseDisplayMode(name string) (smoital.DisplayMode, error) {
	switch name {
	case "unoptimized":
		return smoital.DisplayUnoptimized, nil
	case "overflowed":
		return smoital.DisplayOverflowed, nil
	case "extended":
		return smoital.DisplayExtendedMinutes, nil
	case "xm":
		return smoital.DisplayXM, nil
	default:
		return 0, fmt.Errorf("unknown display mode %q", name)
	}
}

func newLogger(c *cli.Context) logger.Logger {
	level := slog.LevelInfo
	if c.GlobalBool("verbose") {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return logger.NewSlogLogger(nil, slog.New(handler))
}

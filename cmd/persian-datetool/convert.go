package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/persian-datetool/internal/config"
	"github.com/username/persian-datetool/pkg/jalali"
	"github.com/username/persian-datetool/pkg/persiandate"
	"go.uber.org/zap"
)

func convertCmd() *cobra.Command {
	var fromJalali bool

	cmd := &cobra.Command{
		Use:   "convert <date>",
		Short: "Convert a date between the Gregorian and Jalali calendars",
		Long:  "Convert a Gregorian date to Jalali (default), or a Jalali date to Gregorian with --jalali. Accepted formats: YYYY/MM/DD, YYYY-MM-DD, YYYY.MM.DD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, day, err := parseDateArg(args[0])
			if err != nil {
				return err
			}

			if fromJalali {
				if err := jalali.ValidateJalali(year, month, day); err != nil {
					return err
				}

				gy, gm, gd := jalali.ToGregorian(year, month, day)
				logger.Debug("Converted Jalali to Gregorian",
					zap.String("jalali", fmt.Sprintf("%d/%02d/%02d", year, month, day)),
					zap.String("gregorian", fmt.Sprintf("%d-%02d-%02d", gy, gm, gd)))

				fmt.Printf("%d %s %d\n", day, persiandate.MonthName(month), year)
				fmt.Printf("%d-%02d-%02d\n", gy, gm, gd)
				return nil
			}

			if err := jalali.ValidateGregorian(year, month, day); err != nil {
				return err
			}

			d := persiandate.FromTime(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC))
			logger.Debug("Converted Gregorian to Jalali",
				zap.String("gregorian", fmt.Sprintf("%d-%02d-%02d", year, month, day)),
				zap.String("jalali", d.Format("yyyy/MM/dd")))

			fmt.Println(d.Format("yyyy/MM/dd"))
			fmt.Println(d.Format("d MMM yyyy"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromJalali, "jalali", false, "Treat the input as a Jalali date and convert to Gregorian")

	return cmd
}

func agoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ago <datetime>",
		Short: "Print a Persian relative-time phrase for the given date-time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			loc, err := cfg.Location()
			if err != nil {
				return err
			}

			target, err := time.ParseInLocation(cfg.Parse.GetLayout(), args[0], loc)
			if err != nil {
				return fmt.Errorf("failed to parse date-time %q: %w", args[0], err)
			}

			fmt.Println(persiandate.AgoSince(sysClock, target))
			return nil
		},
	}
}

func leapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leap <jalali-year>",
		Short: "Report whether a Jalali year is a leap year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q: %w", args[0], err)
			}

			if jalali.IsLeapYear(year) {
				fmt.Printf("%d is a leap year: %s has 30 days\n", year, persiandate.MonthName(12))
			} else {
				fmt.Printf("%d is a common year: %s has 29 days\n", year, persiandate.MonthName(12))
			}
			return nil
		},
	}
}

// parseDateArg parses "YYYY/MM/DD" with "/", "-" or "." separators.
func parseDateArg(s string) (year, month, day int, err error) {
	normalized := strings.NewReplacer("-", "/", ".", "/").Replace(s)

	parts := strings.Split(normalized, "/")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid date %q: expected YYYY/MM/DD", s)
	}

	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid year in %q: %w", s, err)
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid month in %q: %w", s, err)
	}
	day, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid day in %q: %w", s, err)
	}

	return year, month, day, nil
}

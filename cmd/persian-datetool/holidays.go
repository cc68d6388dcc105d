package main

import (
	"fmt"
	"strconv"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/username/persian-datetool/internal/config"
	"github.com/username/persian-datetool/internal/holidays"
	"github.com/username/persian-datetool/pkg/persiandate"
)

func holidaysCmd() *cobra.Command {
	var month int

	cmd := &cobra.Command{
		Use:   "holidays <jalali-year>",
		Short: "List official Iranian holidays for a Jalali year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q: %w", args[0], err)
			}
			if month < 0 || month > 12 {
				return fmt.Errorf("month must be between 1 and 12, got %d", month)
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			remote := holidays.NewRemote(cfg.Holidays.APIURL, cfg.Holidays.GetCacheTTL(), logger)
			store := holidays.NewFileStore(cfg.Holidays.GetCacheDir(), logger)
			provider := holidays.NewComposite(remote, store, logger)

			bar := progressbar.NewOptions(-1,
				progressbar.OptionSetDescription("Fetching holidays..."),
				progressbar.OptionSpinnerType(14),
				progressbar.OptionSetWidth(20),
			)

			events, err := provider.YearEvents(year)
			bar.Close()
			if err != nil {
				return fmt.Errorf("failed to fetch holidays: %w", err)
			}

			count := 0
			for _, e := range events {
				if month != 0 && e.Month != month {
					continue
				}
				fmt.Printf("- %02d %s %d: %s\n", e.Day, persiandate.MonthName(e.Month), e.Year, e.Title)
				count++
			}

			if count == 0 {
				if month != 0 {
					fmt.Printf("No holidays found in %s %d\n", persiandate.MonthName(month), year)
				} else {
					fmt.Printf("No holidays found in %d\n", year)
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&month, "month", "m", 0, "Limit output to one Jalali month (1-12)")

	return cmd
}

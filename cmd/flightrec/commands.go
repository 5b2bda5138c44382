package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/flightrec/internal/app"
	"github.com/shrimpsizemoose/flightrec/internal/menu"
)

type rootFlags struct {
	config string
	dsn    string
}

func openService(cmd *cobra.Command, flags *rootFlags) (*app.Service, error) {
	config, err := app.LoadConfig(flags.config)
	if err != nil {
		return nil, err
	}
	if flags.dsn != "" {
		config.Database.DSN = flags.dsn
	}
	return app.NewService(cmd.Context(), config)
}

func closeService(svc *app.Service) {
	if err := svc.Close(); err != nil {
		logger.Error.Printf("Failed to close: %v", err)
	}
}

func runMenu(cmd *cobra.Command, flags *rootFlags) error {
	svc, err := openService(cmd, flags)
	if err != nil {
		return err
	}
	defer closeService(svc)

	colored := svc.Config.Display.Color && isatty.IsTerminal(os.Stdout.Fd())
	return menu.New(svc, os.Stdin, os.Stdout, colored).Run(cmd.Context())
}

func newMenu(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return runMenu(cmd, flags)
		},
	}
}

func newMigrate(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := openService(cmd, flags)
			if err != nil {
				return err
			}
			defer closeService(svc)

			logger.Info.Printf("Schema is up to date")
			return nil
		},
	}
}

func newSeed(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the sample data set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := openService(cmd, flags)
			if err != nil {
				return err
			}
			defer closeService(svc)

			return svc.PopulateSampleData(cmd.Context())
		},
	}
}

func newSearch(flags *rootFlags) *cobra.Command {
	var by, value string
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search flights by destination, status, date or list all",
		Example: `  flightrec search --by destination --value Paris
  flightrec search --by date --value 2025-03-10
  flightrec search --by all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := app.ParseCriterion(by); err != nil {
				return err
			}
			cmd.SilenceUsage = true

			svc, err := openService(cmd, flags)
			if err != nil {
				return err
			}
			defer closeService(svc)

			rows, err := svc.SearchFlights(cmd.Context(), by, value)
			if err != nil {
				return err
			}
			menu.FlightsTable(cmd.OutOrStdout(), rows, svc.Config.Display.TimestampFormat)
			return nil
		},
	}
	cmd.Flags().StringVar(&by, "by", "all", "criterion: destination, status, date or all")
	cmd.Flags().StringVar(&value, "value", "", "value to match, YYYY-MM-DD for dates")
	return cmd
}

func newReport(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "report destinations|pilots|stats",
		Short:     "Print one of the summary reports",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"destinations", "pilots", "stats"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := openService(cmd, flags)
			if err != nil {
				return err
			}
			defer closeService(svc)

			ctx, out := cmd.Context(), cmd.OutOrStdout()
			switch args[0] {
			case "destinations":
				counts, err := svc.FlightsPerDestination(ctx)
				if err != nil {
					return err
				}
				menu.FlightsPerDestinationTable(out, counts)
			case "pilots":
				summary, err := svc.PilotFlightSummary(ctx)
				if err != nil {
					return err
				}
				menu.PilotSummaryTable(out, summary)
			case "stats":
				stats, err := svc.DestinationStatistics(ctx)
				if err != nil {
					return err
				}
				menu.DestinationStatisticsTable(out, stats)
			}
			return nil
		},
	}
}

func newSchedule(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule PILOT_ID",
		Short: "Show the flights assigned to a pilot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pilotID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pilot ID %q", args[0])
			}
			cmd.SilenceUsage = true

			svc, err := openService(cmd, flags)
			if err != nil {
				return err
			}
			defer closeService(svc)

			entries, err := svc.PilotSchedule(cmd.Context(), pilotID)
			if err != nil {
				return err
			}
			menu.ScheduleTable(cmd.OutOrStdout(), entries, svc.Config.Display.TimestampFormat)
			return nil
		},
	}
}

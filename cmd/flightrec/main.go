package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newRoot(executable string) *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   executable,
		Short: "Flight records: pilots, destinations, flights and assignments",
		Args:  cobra.NoArgs,
		// Errors are printed by main, cobra would print them a second time.
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return runMenu(cmd, &flags)
		},
	}
	cmd.PersistentFlags().StringVar(&flags.config, "config", "config.toml", "path to the TOML config file")
	cmd.PersistentFlags().StringVar(&flags.dsn, "dsn", "", "database DSN, overrides the config file")

	cmd.AddCommand(
		newMenu(&flags),
		newMigrate(&flags),
		newSeed(&flags),
		newSearch(&flags),
		newReport(&flags),
		newSchedule(&flags),
	)
	return cmd
}

func main() {
	if err := newRoot(filepath.Base(os.Args[0])).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

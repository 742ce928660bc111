package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Xyedo/message-benchmark/internal/results"
	"github.com/Xyedo/message-benchmark/internal/store"
)

// storeFactory is swapped in tests.
var storeFactory = func() (store.Store, error) {
	return store.New(store.Config{
		Driver: viper.GetString("history.driver"),
		Path:   viper.GetString("history.path"),
		DSN:    viper.GetString("history.dsn"),
	})
}

var importCmd = &cobra.Command{
	Use:   "import <results-dir>",
	Short: "Persist aggregated results into the run history",
	Long: `Aggregates each result file and saves it into the history store so
runs can be compared over time with 'msgbench history'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := results.LoadDir(args[0])
		if err != nil {
			return err
		}
		if len(loaded) == 0 {
			return fmt.Errorf("no results found in %s", args[0])
		}

		s, err := storeFactory()
		if err != nil {
			return fmt.Errorf("opening history store: %w", err)
		}
		defer s.Close()

		for _, r := range loaded {
			if err := s.SaveRun(store.FromResult(r)); err != nil {
				return fmt.Errorf("saving %s/%s: %w", r.Workload, r.Driver, err)
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d run(s)\n", len(loaded))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Xyedo/message-benchmark/internal/config"
	"github.com/Xyedo/message-benchmark/internal/report"
	"github.com/Xyedo/message-benchmark/internal/telemetry"
)

var exit = os.Exit
var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "msgbench",
	Short: "Generate comparison reports from messaging benchmark results",
	Long: `msgbench reads the JSON result files produced by the load-testing
harness, aggregates per-driver metrics, and emits comparison charts, a
plain-text summary table, and a markdown report.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'msgbench --help' for usage.")
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("log-file", "", "Also write logs to this file")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
}

// initConfig reads the config file and environment, then wires logging.
func initConfig() {
	usedCfg := config.Load(cfgFile)
	telemetry.InitLogger(viper.GetBool("verbose"), viper.GetString("log_file"))
	if usedCfg != "" {
		telemetry.LogDebug("Using config file", "path", usedCfg)
	}

	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

// reportOptions builds the report headings from configuration.
func reportOptions() report.Options {
	return report.Options{
		Title:    viper.GetString("report.title"),
		Subtitle: viper.GetString("report.subtitle"),
		Overview: viper.GetString("report.overview"),
	}
}

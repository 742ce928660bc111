package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Xyedo/message-benchmark/internal/results"
	"github.com/Xyedo/message-benchmark/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve <results-dir>",
	Short: "Serve generated charts and result data over HTTP",
	Long: `Starts a local HTTP server exposing the generated chart images as
static files, the aggregated results as JSON under /api/, and Prometheus
metrics under /metrics. Run 'msgbench generate' first to produce the charts.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := results.LoadDir(args[0])
		if err != nil {
			return err
		}
		if len(loaded) == 0 {
			return fmt.Errorf("no results found in %s", args[0])
		}

		port, _ := cmd.Flags().GetInt("port")
		if port == 0 {
			port = viper.GetInt("serve.port")
		}
		chartsDir, _ := cmd.Flags().GetString("charts-dir")
		if chartsDir == "" {
			chartsDir = filepath.Join(args[0], "charts")
		}

		srv := web.NewServer(results.GroupByWorkload(loaded), chartsDir, port)
		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "Port to listen on (default: serve.port config)")
	serveCmd.Flags().String("charts-dir", "", "Charts directory (default: <results-dir>/charts)")
	rootCmd.AddCommand(serveCmd)
}

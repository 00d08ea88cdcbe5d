package main

import (
	"github.com/spf13/cobra"

	"order-history-service/internal/common/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "order-history-service",
	Short: "Customer order-history service",
	Long: `order-history-service fetches the raw order export from the upstream
e-commerce API and transforms it into a display-ready order history.

Run 'serve' to expose the result over HTTP for the storefront, or 'fetch'
for a one-shot dump to stdout.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "config.yml", "path to YAML config")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(versionCmd)
}

func loadConfig() (config.App, error) {
	return config.Load(cfgPath)
}

package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"order-history-service/internal/common/logger"
	"order-history-service/internal/orderhistory"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch and transform the order history once, printing JSON to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		lg := logger.New("order-history-fetch", cfg.LogLevel)
		defer lg.Sync()

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		orders, err := orderhistory.Fetch(ctx, cfg, lg)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(orders)
	},
}

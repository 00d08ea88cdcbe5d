package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"order-history-service/internal/common/logger"
	"order-history-service/internal/orderhistory"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the order-history API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		lg := logger.New("order-history-service", cfg.LogLevel)
		defer lg.Sync()

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		return orderhistory.Run(ctx, cfg, lg)
	},
}

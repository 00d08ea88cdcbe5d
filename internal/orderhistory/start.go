package orderhistory

import (
	"context"

	"order-history-service/internal/common/config"
	"order-history-service/internal/common/httpx"
	"order-history-service/internal/common/logger"
	"order-history-service/internal/orderhistory/client"
	"order-history-service/internal/orderhistory/domain"
	"order-history-service/internal/orderhistory/handlers"
	"order-history-service/internal/orderhistory/service"
)

// Run wires the upstream client, transform service and HTTP surface
// together and serves until ctx is cancelled.
func Run(ctx context.Context, cfg config.App, lg *logger.Logger) error {
	source := client.New(client.Config{
		OrdersURL: cfg.Upstream.OrdersURL,
		Timeout:   cfg.Upstream.Timeout(),
	}, lg)

	svc := service.New(source, lg)
	handler := handlers.New(svc, lg)
	router := handlers.Router(handler, lg, cfg.HTTP.AllowedOrigins)

	lg.Info("order history service listening", "addr", cfg.HTTP.Addr, "upstream", cfg.Upstream.OrdersURL)
	srv := httpx.New(cfg.HTTP.Addr, router)
	return srv.Run(ctx)
}

// Fetch performs the one-shot flow used by the CLI: single fetch, full
// transform, no server.
func Fetch(ctx context.Context, cfg config.App, lg *logger.Logger) ([]domain.Order, error) {
	source := client.New(client.Config{
		OrdersURL: cfg.Upstream.OrdersURL,
		Timeout:   cfg.Upstream.Timeout(),
	}, lg)

	svc := service.New(source, lg)
	return svc.GetOrderHistory(ctx)
}

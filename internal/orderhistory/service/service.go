package service

import (
	"context"

	"order-history-service/internal/common/logger"
	"order-history-service/internal/orderhistory/domain"
)

// OrderSource fetches the raw order export. Implemented by the upstream
// HTTP client; swapped for a stub in tests.
type OrderSource interface {
	FetchOrderHistory(ctx context.Context) (domain.RawEnvelope, error)
}

type OrderHistoryServiceInterface interface {
	GetOrderHistory(ctx context.Context) ([]domain.Order, error)
}

type OrderHistoryService struct {
	source OrderSource
	lg     *logger.Logger
}

func New(source OrderSource, lg *logger.Logger) *OrderHistoryService {
	return &OrderHistoryService{source: source, lg: lg}
}

// GetOrderHistory performs the single fetch-and-transform flow. Fetch errors
// are normalized into the request-error taxonomy; transform faults caused by
// malformed line items are programming-level and pass through untyped.
func (s *OrderHistoryService) GetOrderHistory(ctx context.Context) ([]domain.Order, error) {
	env, err := s.source.FetchOrderHistory(ctx)
	if err != nil {
		re := domain.NormalizeRequestError(err)
		s.lg.Error("order history fetch failed", "kind", re.Kind.String(), "err", err)
		return nil, re
	}

	orders, err := Transform(env)
	if err != nil {
		s.lg.Error("order history transform failed", "err", err)
		return nil, err
	}

	s.lg.Debug("order history transformed", "orders", len(orders))
	return orders, nil
}

package handlers

import (
	"order-history-service/internal/common/logger"
	"order-history-service/internal/orderhistory/service"
)

type Handler struct {
	OrderHistoryHandler *OrderHistoryHandler
}

func New(s service.OrderHistoryServiceInterface, lg *logger.Logger) *Handler {
	return &Handler{
		OrderHistoryHandler: NewOrderHistoryHandler(s, lg),
	}
}

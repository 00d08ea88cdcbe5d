package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"order-history-service/internal/common/logger"
	"order-history-service/internal/orderhistory/domain"
	"order-history-service/internal/orderhistory/service"
)

// User-facing messages, one per error kind plus a generic fallback for
// anything outside the taxonomy. Never silently swallowed.
const (
	msgNetworkFailure = "We couldn't reach the order service. Check your connection and try again."
	msgClientRequest  = "Your order history couldn't be loaded right now."
	msgInternalServer = "Something went wrong while loading your orders. Please try again later."
	msgGeneric        = "Request failed."
)

type errorBody struct {
	Kind           string `json:"kind"`
	Message        string `json:"message"`
	UpstreamStatus int    `json:"upstreamStatus,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type OrderHistoryHandler struct {
	service service.OrderHistoryServiceInterface
	lg      *logger.Logger
}

func NewOrderHistoryHandler(s service.OrderHistoryServiceInterface, lg *logger.Logger) *OrderHistoryHandler {
	return &OrderHistoryHandler{service: s, lg: lg}
}

// GetOrderHistory serves the transformed order list for the customer page.
func (oh *OrderHistoryHandler) GetOrderHistory(c *gin.Context) {
	orders, err := oh.service.GetOrderHistory(c.Request.Context())
	if err != nil {
		status, body := mapError(err)
		oh.lg.Error("order history request failed", "kind", body.Error.Kind, "err", err)
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// mapError selects the HTTP status and user-facing message for a failure.
// Each taxonomy kind gets a distinct message; unrecognized errors fall back
// to a generic one.
func mapError(err error) (int, errorResponse) {
	re, ok := domain.AsRequestError(err)
	if !ok {
		return http.StatusInternalServerError, errorResponse{Error: errorBody{
			Kind:    "unknown",
			Message: msgGeneric,
		}}
	}

	switch re.Kind {
	case domain.KindNetworkFailure:
		return http.StatusServiceUnavailable, errorResponse{Error: errorBody{
			Kind:    re.Kind.String(),
			Message: msgNetworkFailure,
		}}
	case domain.KindClientRequest:
		return http.StatusBadGateway, errorResponse{Error: errorBody{
			Kind:           re.Kind.String(),
			Message:        msgClientRequest,
			UpstreamStatus: re.Status,
		}}
	case domain.KindInternalServer:
		return http.StatusBadGateway, errorResponse{Error: errorBody{
			Kind:    re.Kind.String(),
			Message: msgInternalServer,
		}}
	default:
		return http.StatusInternalServerError, errorResponse{Error: errorBody{
			Kind:    "unknown",
			Message: msgGeneric,
		}}
	}
}

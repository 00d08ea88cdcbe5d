package service

import (
	"fmt"
	"strconv"
	"time"

	"order-history-service/internal/orderhistory/domain"
)

// Transform validates the export envelope and maps every raw order into a
// display-ready Order, preserving the upstream ordering. The batch is all or
// nothing: a single malformed order fails the whole call.
func Transform(env domain.RawEnvelope) ([]domain.Order, error) {
	if len(env) == 0 || !env[0].Success {
		return nil, domain.NewClientRequestError(domain.StatusMalformedEnvelope)
	}

	orders := make([]domain.Order, 0, len(env[0].Orders))
	for _, raw := range env[0].Orders {
		order, err := transformOrder(raw)
		if err != nil {
			return nil, fmt.Errorf("order %s: %w", raw.Name, err)
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func transformOrder(raw domain.RawOrder) (domain.Order, error) {
	orderType := domain.OrderTypeOneTime
	if len(raw.Fulfillments) > 0 {
		orderType = domain.OrderTypeSubscription
	}

	var dispatchDate string
	if !raw.ProcessedAt.IsEmpty() {
		formatted, err := formatDispatchDate(raw.ProcessedAt.String())
		if err != nil {
			return domain.Order{}, err
		}
		dispatchDate = formatted
	}

	totalPrice, err := strconv.ParseFloat(raw.TotalPriceUSD.String(), 64)
	if err != nil {
		return domain.Order{}, fmt.Errorf("invalid total_price_usd %q: %w", raw.TotalPriceUSD, err)
	}

	items, err := AggregateLineItems(raw.LineItems)
	if err != nil {
		return domain.Order{}, err
	}

	addr := raw.ShippingAddress
	return domain.Order{
		ID:              raw.ID.String(),
		OrderNumber:     raw.Name,
		OrderType:       orderType,
		TotalPrice:      totalPrice,
		DispatchDate:    dispatchDate,
		OrderItems:      items,
		DeliveryAddress: fmt.Sprintf("%s, %s, %s", addr.Address1, addr.City, addr.Zip),
	}, nil
}

// formatDispatchDate renders a processed_at timestamp as e.g.
// "August 7th 2019".
func formatDispatchDate(processedAt string) (string, error) {
	t, err := time.Parse(time.RFC3339, processedAt)
	if err != nil {
		return "", fmt.Errorf("invalid processed_at %q: %w", processedAt, err)
	}
	day := t.Day()
	return fmt.Sprintf("%s %d%s %d", t.Month(), day, ordinal(day), t.Year()), nil
}

// ordinal returns the English day suffix. 11 through 13 take "th" regardless
// of their last digit.
func ordinal(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

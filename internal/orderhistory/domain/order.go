package domain

// Order types derived from the fulfillments of a raw order. A fulfillment
// models a repeatable deliverable, so its presence implies a subscription.
const (
	OrderTypeOneTime      = "One-time"
	OrderTypeSubscription = "Subscription"
)

// PurchaseItem is one SKU-prefix group of an order, aggregated across its
// variant rows. Immutable once built.
type PurchaseItem struct {
	ID           string `json:"id"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Name         string `json:"name"`
	Descriptor   string `json:"descriptor"`
	Price        string `json:"price"`
}

// Order is the display-ready unit returned to the presentation layer.
type Order struct {
	ID              string         `json:"id"`
	OrderNumber     string         `json:"orderNumber"`
	OrderType       string         `json:"orderType"`
	TotalPrice      float64        `json:"totalPrice"`
	DispatchDate    string         `json:"dispatchDate,omitempty"`
	OrderItems      []PurchaseItem `json:"orderItems"`
	DeliveryAddress string         `json:"deliveryAddress"`
}

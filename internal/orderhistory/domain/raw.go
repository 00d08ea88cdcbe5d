package domain

import (
	"bytes"
	"encoding/json"
)

// Scalar is a JSON value that may arrive as a string, a number or null.
// The order export is inconsistent about quoting numeric fields, so raw
// payload scalars decode into this and get parsed where they are consumed.
type Scalar string

func (s *Scalar) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = Scalar(v)
		return nil
	}
	*s = Scalar(b)
	return nil
}

func (s Scalar) String() string { return string(s) }

func (s Scalar) IsEmpty() bool { return s == "" }

// RawLineItem is one row of the order export: a single SKU+variant purchase.
type RawLineItem struct {
	ID           Scalar `json:"id"`
	SKU          string `json:"sku"`
	Title        string `json:"title"`
	VariantTitle Scalar `json:"variant_title"`
	Quantity     Scalar `json:"quantity"`
	Price        Scalar `json:"price"`
	Image        string `json:"image"`
}

type RawShippingAddress struct {
	Address1 string `json:"address1"`
	City     string `json:"city"`
	Zip      string `json:"zip"`
}

type RawOrder struct {
	ID              Scalar             `json:"id"`
	Name            string             `json:"name"`
	ShippingAddress RawShippingAddress `json:"shipping_address"`
	Fulfillments    []json.RawMessage  `json:"fulfillments"`
	TotalPriceUSD   Scalar             `json:"total_price_usd"`
	ProcessedAt     Scalar             `json:"processed_at"`
	LineItems       []RawLineItem      `json:"line_items"`
}

// RawPage is one element of the export envelope. Only the first element
// carries meaning; the envelope is rejected unless it reports success there.
type RawPage struct {
	Success bool       `json:"success"`
	Orders  []RawOrder `json:"orders"`
}

// RawEnvelope is the outer structure of the order-history response body.
type RawEnvelope []RawPage

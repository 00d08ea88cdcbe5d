package client

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"order-history-service/internal/common/logger"
	"order-history-service/internal/orderhistory/domain"
)

// Client fetches the raw order export from the upstream e-commerce API.
// One request per call, no retries; a hung upstream is bounded by the
// configured timeout.
type Client struct {
	httpClient *http.Client
	ordersURL  string
	lg         *logger.Logger
}

type Config struct {
	OrdersURL string
	Timeout   time.Duration
}

func New(cfg Config, lg *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		ordersURL:  cfg.OrdersURL,
		lg:         lg,
	}
}

// FetchOrderHistory performs the single GET against the order-history
// endpoint and decodes the envelope. Every failure comes back as a
// *domain.RequestError: transport faults are network failures, non-success
// statuses classify by range, and a body that is not envelope-shaped is the
// same terminal condition as a malformed envelope.
func (c *Client) FetchOrderHistory(ctx context.Context) (domain.RawEnvelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ordersURL, nil)
	if err != nil {
		return nil, domain.NewNetworkFailure()
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.lg.Error("order export request failed", "url", c.ordersURL, "err", err)
		return nil, domain.NewNetworkFailure()
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.lg.Warn("order export returned non-success status", "status", resp.StatusCode)
		return nil, domain.ClassifyStatus(resp.StatusCode)
	}

	var env domain.RawEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		c.lg.Warn("order export body is not an envelope", "err", err)
		return nil, domain.NewClientRequestError(domain.StatusMalformedEnvelope)
	}
	return env, nil
}

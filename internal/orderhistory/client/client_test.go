package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"order-history-service/internal/common/logger"
	"order-history-service/internal/orderhistory/domain"
)

func newTestClient(url string) *Client {
	return New(Config{OrdersURL: url, Timeout: 2 * time.Second}, logger.NewNop())
}

func TestFetchOrderHistory_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"success": true, "orders": [{"name": "#1-US"}]}]`))
	}))
	defer srv.Close()

	env, err := newTestClient(srv.URL).FetchOrderHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, env, 1)
	assert.True(t, env[0].Success)
	require.Len(t, env[0].Orders, 1)
	assert.Equal(t, "#1-US", env[0].Orders[0].Name)
}

func TestFetchOrderHistory_StatusClassification(t *testing.T) {
	cases := []struct {
		status     int
		wantKind   domain.ErrorKind
		wantStatus int
	}{
		{http.StatusNotFound, domain.KindClientRequest, 404},
		{http.StatusUnprocessableEntity, domain.KindClientRequest, 422},
		{http.StatusInternalServerError, domain.KindInternalServer, 0},
		{http.StatusServiceUnavailable, domain.KindInternalServer, 0},
		{http.StatusMultipleChoices, domain.KindNetworkFailure, 0},
	}
	for _, tc := range cases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			_, err := newTestClient(srv.URL).FetchOrderHistory(context.Background())
			re, ok := domain.AsRequestError(err)
			require.True(t, ok)
			assert.Equal(t, tc.wantKind, re.Kind)
			if tc.wantStatus != 0 {
				assert.Equal(t, tc.wantStatus, re.Status)
			}
		})
	}
}

func TestFetchOrderHistory_TransportFailureIsNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	_, err := newTestClient(srv.URL).FetchOrderHistory(context.Background())
	re, ok := domain.AsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindNetworkFailure, re.Kind)
}

func TestFetchOrderHistory_NonEnvelopeBodyIsClientRequest406(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).FetchOrderHistory(context.Background())
	re, ok := domain.AsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindClientRequest, re.Kind)
	assert.Equal(t, domain.StatusMalformedEnvelope, re.Status)
}

func TestFetchOrderHistory_CancelledContextIsNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(srv.URL).FetchOrderHistory(ctx)
	re, ok := domain.AsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindNetworkFailure, re.Kind)
}

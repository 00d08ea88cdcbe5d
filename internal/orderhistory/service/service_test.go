package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"order-history-service/internal/common/logger"
	"order-history-service/internal/orderhistory/domain"
)

type stubSource struct {
	env domain.RawEnvelope
	err error
}

func (s *stubSource) FetchOrderHistory(ctx context.Context) (domain.RawEnvelope, error) {
	return s.env, s.err
}

func TestGetOrderHistory_HappyPath(t *testing.T) {
	svc := New(&stubSource{env: envelope(rawOrder("#1-US"))}, logger.NewNop())

	orders, err := svc.GetOrderHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "#1-US", orders[0].OrderNumber)
}

func TestGetOrderHistory_PassesTaxonomyErrorsThrough(t *testing.T) {
	want := domain.NewClientRequestError(404)
	svc := New(&stubSource{err: want}, logger.NewNop())

	_, err := svc.GetOrderHistory(context.Background())
	re, ok := domain.AsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindClientRequest, re.Kind)
	assert.Equal(t, 404, re.Status)
}

func TestGetOrderHistory_NormalizesUnknownFetchErrors(t *testing.T) {
	svc := New(&stubSource{err: errors.New("connection reset by peer")}, logger.NewNop())

	_, err := svc.GetOrderHistory(context.Background())
	re, ok := domain.AsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindNetworkFailure, re.Kind)
}

func TestGetOrderHistory_TransformFaultsStayUntyped(t *testing.T) {
	bad := rawOrder("#1-US")
	bad.TotalPriceUSD = "a lot"
	svc := New(&stubSource{env: envelope(bad)}, logger.NewNop())

	_, err := svc.GetOrderHistory(context.Background())
	require.Error(t, err)
	_, ok := domain.AsRequestError(err)
	assert.False(t, ok)
}

package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyStatus(t *testing.T) {
	cases := []struct {
		status     int
		wantKind   ErrorKind
		wantStatus int
	}{
		{400, KindClientRequest, 400},
		{404, KindClientRequest, 404},
		{499, KindClientRequest, 499},
		{500, KindInternalServer, 0},
		{503, KindInternalServer, 0},
		{301, KindNetworkFailure, 0},
		{0, KindNetworkFailure, 0},
	}
	for _, tc := range cases {
		re := ClassifyStatus(tc.status)
		assert.Equal(t, tc.wantKind, re.Kind, "status %d", tc.status)
		assert.Equal(t, tc.wantStatus, re.Status, "status %d", tc.status)
	}
}

func TestAsRequestError_SeesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("fetching: %w", NewInternalServerError())
	re, ok := AsRequestError(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindInternalServer, re.Kind)
}

func TestNormalizeRequestError(t *testing.T) {
	t.Run("taxonomy error passes through", func(t *testing.T) {
		orig := NewClientRequestError(422)
		re := NormalizeRequestError(orig)
		assert.Same(t, orig, re)
	})

	t.Run("unknown error becomes network failure", func(t *testing.T) {
		re := NormalizeRequestError(errors.New("dns lookup failed"))
		assert.Equal(t, KindNetworkFailure, re.Kind)
	})
}

func TestRequestError_Message(t *testing.T) {
	assert.Contains(t, NewClientRequestError(406).Error(), "status 406")
	assert.Contains(t, NewNetworkFailure().Error(), "unable to connect")
	assert.Contains(t, NewInternalServerError().Error(), "processing this request")
}

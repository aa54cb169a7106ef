package retry_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gembom/internal/adapters/retry"
)

func TestNotFoundTerminal_Retryable(t *testing.T) {
	p := retry.NotFoundTerminal{}

	tests := []struct {
		status    int
		retryable bool
	}{
		{http.StatusOK, false},
		{http.StatusNoContent, false},
		{http.StatusNotFound, false},
		{http.StatusMovedPermanently, true},
		{http.StatusBadRequest, true},
		{http.StatusForbidden, true},
		{http.StatusTooManyRequests, true},
		{http.StatusInternalServerError, true},
		{http.StatusServiceUnavailable, true},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.retryable, p.Retryable(tt.status))
		})
	}
}

func TestTransient_Retryable(t *testing.T) {
	p := retry.Transient{}

	tests := []struct {
		status    int
		retryable bool
	}{
		{http.StatusOK, false},
		{http.StatusNotFound, false},
		{http.StatusUnauthorized, false},
		{http.StatusRequestTimeout, true},
		{http.StatusTooManyRequests, true},
		{http.StatusInternalServerError, true},
		{http.StatusNotImplemented, false},
		{http.StatusBadGateway, true},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.retryable, p.Retryable(tt.status))
		})
	}
}

func TestCheckRetry(t *testing.T) {
	check := retry.CheckRetry(retry.NotFoundTerminal{})

	t.Run("uses policy for responses", func(t *testing.T) {
		ok, err := check(context.Background(), &http.Response{StatusCode: http.StatusBadGateway}, nil)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = check(context.Background(), &http.Response{StatusCode: http.StatusNotFound}, nil)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("retries transport errors", func(t *testing.T) {
		ok, err := check(context.Background(), nil, errors.New("connection reset by peer"))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("stops when context is done", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		ok, err := check(ctx, &http.Response{StatusCode: http.StatusBadGateway}, nil)
		assert.False(t, ok)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCheckRetry_TransientTransportErrors(t *testing.T) {
	check := retry.CheckRetry(retry.Transient{})

	ok, err := check(context.Background(), nil, errors.New("connection reset by peer"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = check(context.Background(), &http.Response{StatusCode: http.StatusNotImplemented}, nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

package retry_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gembom/internal/adapters/logger"
	"go.trai.ch/gembom/internal/adapters/retry"
	"go.trai.ch/gembom/internal/core/domain"
)

func stage(maxRetries int) domain.StageConfig {
	return domain.StageConfig{
		MaxRetries: maxRetries,
		BackoffMin: time.Millisecond,
		BackoffMax: 2 * time.Millisecond,
	}
}

// flakyServer answers with failStatus for the first failures requests and 200 afterwards.
func flakyServer(t *testing.T, failures int32, failStatus int) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) <= failures {
			w.WriteHeader(failStatus)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func get(t *testing.T, c *retryablehttp.Client, url string) (*http.Response, error) {
	t.Helper()
	req, err := retryablehttp.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	require.NoError(t, err)
	resp, err := c.Do(req)
	if resp != nil {
		t.Cleanup(func() { _ = resp.Body.Close() })
	}
	return resp, err
}

func TestNewClient_SucceedsWithinBudget(t *testing.T) {
	// Budget of 4 attempts: three failures then success.
	srv, calls := flakyServer(t, 3, http.StatusInternalServerError)
	c := retry.NewClient(retry.Options{Stage: stage(3), Policy: retry.NotFoundTerminal{}})

	resp, err := get(t, c, srv.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(4), calls.Load())
}

func TestNewClient_SurfacesLastResponseWhenExhausted(t *testing.T) {
	srv, calls := flakyServer(t, 100, http.StatusServiceUnavailable)
	c := retry.NewClient(retry.Options{Stage: stage(3), Policy: retry.NotFoundTerminal{}})

	resp, err := get(t, c, srv.URL)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, int32(4), calls.Load())
}

func TestNewClient_NotFoundIsTerminal(t *testing.T) {
	srv, calls := flakyServer(t, 100, http.StatusNotFound)
	c := retry.NewClient(retry.Options{Stage: stage(3), Policy: retry.NotFoundTerminal{}})

	resp, err := get(t, c, srv.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestNewClient_SuccessIsNotRetried(t *testing.T) {
	srv, calls := flakyServer(t, 0, http.StatusOK)
	c := retry.NewClient(retry.Options{Stage: stage(3), Policy: retry.NotFoundTerminal{}})

	resp, err := get(t, c, srv.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestNewClient_TransientBudget(t *testing.T) {
	// Verification budget of 6 attempts.
	srv, calls := flakyServer(t, 100, http.StatusBadGateway)
	c := retry.NewClient(retry.Options{Stage: stage(5), Policy: retry.Transient{}})

	resp, err := get(t, c, srv.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, int32(6), calls.Load())
}

func TestNewClient_TransportErrorExhausted(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := retry.NewClient(retry.Options{Stage: stage(2), Policy: retry.NotFoundTerminal{}})

	resp, err := get(t, c, url)
	require.Error(t, err)
	assert.Nil(t, resp)
}

func TestNewClient_DoesNotFollowRedirects(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Redirect(w, r, "/elsewhere", http.StatusFound)
	}))
	t.Cleanup(srv.Close)

	c := retry.NewClient(retry.Options{Stage: stage(0), Policy: retry.NotFoundTerminal{}})

	resp, err := get(t, c, srv.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestNewClient_LogsAttemptsAtDebug(t *testing.T) {
	srv, _ := flakyServer(t, 1, http.StatusInternalServerError)

	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)
	lg.SetLevel(domain.LogLevelDebug)

	c := retry.NewClient(retry.Options{Stage: stage(1), Policy: retry.Transient{}, Logger: lg})

	_, err := get(t, c, srv.URL)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "retrying request")
	assert.Contains(t, buf.String(), "policy=transient")
}

package nexus_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gembom/internal/adapters/nexus"
	"go.trai.ch/gembom/internal/core/domain"
	"go.trai.ch/gembom/internal/core/ports"
	"go.trai.ch/gembom/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

var rails = domain.ResolvedArtifact{
	Name:       "rails",
	Version:    "7.1.1",
	PackageURL: "pkg:gem/rails@7.1.1",
}

func fixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func repositoryConfig(url string) domain.RepositoryConfig {
	return domain.RepositoryConfig{
		StageConfig: domain.StageConfig{
			URL:         url,
			Concurrency: 2,
			MaxRetries:  5,
			BackoffMin:  time.Millisecond,
			BackoffMax:  2 * time.Millisecond,
		},
	}
}

func newClient(t *testing.T, cfg domain.RepositoryConfig) *nexus.Client {
	t.Helper()
	c, err := nexus.NewClient(cfg, nil)
	require.NoError(t, err)
	return c
}

func TestSearchURL(t *testing.T) {
	tests := []struct {
		base     string
		name     string
		version  string
		expected string
	}{
		{
			base:     "https://mynexus.com",
			name:     "rails",
			version:  "7.1.1",
			expected: "https://mynexus.com/service/rest/v1/search/assets?name=rails&version=7.1.1&format=rubygems",
		},
		{
			base:     "https://mynexus.com/",
			name:     "rails",
			version:  "7.1.1",
			expected: "https://mynexus.com/service/rest/v1/search/assets?name=rails&version=7.1.1&format=rubygems",
		},
		{
			base:     "https://repo.example.com/nexus",
			name:     "google-protobuf",
			version:  "3.25.1",
			expected: "https://repo.example.com/nexus/service/rest/v1/search/assets?name=google-protobuf&version=3.25.1&format=rubygems",
		},
		{
			base:     "https://mynexus.com",
			name:     "a&b",
			version:  "1.0 beta",
			expected: "https://mynexus.com/service/rest/v1/search/assets?name=a%26b&version=1.0+beta&format=rubygems",
		},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			c := newClient(t, repositoryConfig(tt.base))
			assert.Equal(t, tt.expected, c.SearchURL(tt.name, tt.version))
		})
	}
}

func TestParseSearch(t *testing.T) {
	tests := []struct {
		name    string
		body    []byte
		exists  bool
		wantErr bool
	}{
		{"empty items", fixture(t, "empty_items.json"), false, false},
		{"listed assets", fixture(t, "rails_assets.json"), true, false},
		{"broken json", []byte(`{ "foo": "bar"`), false, true},
		{"missing items", []byte(`{ "foo": "bar" }`), false, true},
		{"null items", []byte(`{ "items": null }`), false, true},
		{"items not an array", []byte(`{ "items": {} }`), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exists, err := nexus.ParseSearch(tt.body)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.exists, exists)
		})
	}
}

func TestVerify(t *testing.T) {
	railsAssets := fixture(t, "rails_assets.json")
	var (
		mu                sync.Mutex
		gotQuery, gotPath string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		mu.Unlock()
		_, _ = w.Write(railsAssets)
	}))
	t.Cleanup(srv.Close)

	res, err := newClient(t, repositoryConfig(srv.URL)).Verify(context.Background(), rails)
	require.NoError(t, err)
	assert.True(t, res.Exists)
	assert.Equal(t, rails, res.Artifact)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "/service/rest/v1/search/assets", gotPath)
	assert.Equal(t, "name=rails&version=7.1.1&format=rubygems", gotQuery)
}

func TestVerify_LogsRequestOnVertex(t *testing.T) {
	emptyItems := fixture(t, "empty_items.json")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(emptyItems)
	}))
	t.Cleanup(srv.Close)
	c := newClient(t, repositoryConfig(srv.URL))

	vertex := mocks.NewMockVertex(gomock.NewController(t))
	vertex.EXPECT().Log(domain.LogLevelDebug, "GET "+c.SearchURL("rails", "7.1.1"))
	ctx := ports.ContextWithVertex(context.Background(), vertex)

	_, err := c.Verify(ctx, rails)
	require.NoError(t, err)
}

func TestVerify_Missing(t *testing.T) {
	emptyItems := fixture(t, "empty_items.json")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(emptyItems)
	}))
	t.Cleanup(srv.Close)

	res, err := newClient(t, repositoryConfig(srv.URL)).Verify(context.Background(), rails)
	require.NoError(t, err)
	assert.False(t, res.Exists)
}

func TestVerify_BasicAuth(t *testing.T) {
	emptyItems := fixture(t, "empty_items.json")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "ci" || pass != "s3cret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write(emptyItems)
	}))
	t.Cleanup(srv.Close)

	cfg := repositoryConfig(srv.URL)
	cfg.Username = "ci"
	cfg.Password = "s3cret"

	res, err := newClient(t, cfg).Verify(context.Background(), rails)
	require.NoError(t, err)
	assert.False(t, res.Exists)
}

func TestVerify_StatusFailures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		attempts int32
	}{
		{"unauthorized is terminal", http.StatusUnauthorized, 1},
		{"not found is terminal", http.StatusNotFound, 1},
		{"rate limited is retried", http.StatusTooManyRequests, 6},
		{"server error is retried", http.StatusServiceUnavailable, 6},
		{"not implemented is terminal", http.StatusNotImplemented, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
			}))
			t.Cleanup(srv.Close)

			_, err := newClient(t, repositoryConfig(srv.URL)).Verify(context.Background(), rails)
			require.Error(t, err)

			var verr *domain.VerificationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, domain.VerifySendRequest, verr.Kind)
			assert.Equal(t, tt.status, verr.Status)
			assert.Equal(t, "rails", verr.Name)
			assert.Equal(t, tt.attempts, calls.Load())
		})
	}
}

func TestVerify_RecoversFromTransientFailure(t *testing.T) {
	railsAssets := fixture(t, "rails_assets.json")
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write(railsAssets)
	}))
	t.Cleanup(srv.Close)

	res, err := newClient(t, repositoryConfig(srv.URL)).Verify(context.Background(), rails)
	require.NoError(t, err)
	assert.True(t, res.Exists)
	assert.Equal(t, int32(3), calls.Load())
}

func TestVerify_BrokenBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{ "foo": "bar"`))
	}))
	t.Cleanup(srv.Close)

	_, err := newClient(t, repositoryConfig(srv.URL)).Verify(context.Background(), rails)
	require.Error(t, err)

	var verr *domain.VerificationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, domain.VerifyParseResponse, verr.Kind)
	assert.Contains(t, err.Error(), `failed to parse repository response for gem "rails" version "7.1.1"`)
}

func TestVerify_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newClient(t, repositoryConfig(url)).Verify(context.Background(), rails)
	require.Error(t, err)

	var verr *domain.VerificationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, domain.VerifySendRequest, verr.Kind)
	assert.Zero(t, verr.Status)
}

// Package nexus checks resolved gems against a Sonatype Nexus repository.
package nexus

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-retryablehttp"
	"go.trai.ch/gembom/internal/adapters/retry"
	"go.trai.ch/gembom/internal/core/domain"
	"go.trai.ch/gembom/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	searchPath  = "service/rest/v1/search/assets"
	assetFormat = "rubygems"
)

// Client implements ports.Repository.
type Client struct {
	baseURL  *url.URL
	http     *retryablehttp.Client
	username string
	password string
}

// NewClient creates a repository client for cfg.
func NewClient(cfg domain.RepositoryConfig, log ports.Logger) (*Client, error) {
	base, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBuildRepositoryClient.Error()), "url", cfg.URL)
	}
	return &Client{
		baseURL: base,
		http: retry.NewClient(retry.Options{
			Stage:  cfg.StageConfig,
			Policy: retry.Transient{},
			Logger: log,
		}),
		username: cfg.Username,
		password: cfg.Password,
	}, nil
}

// SearchURL returns the asset search URL for one gem version.
// The query keeps name, version and format in that order.
func (c *Client) SearchURL(name, version string) string {
	u := c.baseURL.JoinPath(searchPath)
	u.RawQuery = "name=" + url.QueryEscape(name) +
		"&version=" + url.QueryEscape(version) +
		"&format=" + assetFormat
	return u.String()
}

// Verify reports whether the repository holds any asset for the artifact's name and version.
func (c *Client) Verify(ctx context.Context, a domain.ResolvedArtifact) (domain.VerificationResult, error) {
	searchURL := c.SearchURL(a.Name, a.Version)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		kind := domain.VerifyBuildClient
		var uerr *url.Error
		if errors.As(err, &uerr) {
			kind = domain.VerifyURLParse
		}
		return domain.VerificationResult{}, domain.NewVerificationError(kind, a, 0, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.username != "" || c.password != "" {
		req.SetBasicAuth(c.username, c.password)
	}
	if v, ok := ports.VertexFromContext(ctx); ok {
		v.Log(domain.LogLevelDebug, "GET "+searchURL)
	}

	resp, err := c.http.Do(req)
	if resp != nil {
		defer func() {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}()
	}
	if err != nil {
		return domain.VerificationResult{}, domain.NewVerificationError(domain.VerifySendRequest, a, 0, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.VerificationResult{}, domain.NewVerificationError(domain.VerifySendRequest, a, resp.StatusCode, nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.VerificationResult{}, domain.NewVerificationError(domain.VerifySendRequest, a, resp.StatusCode, err)
	}
	exists, err := ParseSearch(body)
	if err != nil {
		return domain.VerificationResult{}, domain.NewVerificationError(domain.VerifyParseResponse, a, resp.StatusCode, err)
	}
	return domain.VerificationResult{Artifact: a, Exists: exists}, nil
}

// ParseSearch reports whether a search page lists at least one asset.
func ParseSearch(body []byte) (bool, error) {
	var page map[string]json.RawMessage
	if err := json.Unmarshal(body, &page); err != nil {
		return false, zerr.Wrap(err, "malformed search response")
	}
	raw, ok := page["items"]
	if !ok {
		return false, zerr.New("search response has no items field")
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return false, zerr.New("search response items is not an array")
	}
	return len(items) > 0, nil
}

// Package rubygems resolves pinned gems against the rubygems.org versions API.
package rubygems

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-retryablehttp"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/gembom/internal/adapters/retry"
	"go.trai.ch/gembom/internal/core/domain"
	"go.trai.ch/gembom/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// listingCacheSize bounds how many version listings one run keeps in memory.
const listingCacheSize = 1024

// Client implements ports.Registry.
// It is safe for concurrent use and shares one transport across all lookups.
type Client struct {
	baseURL          *url.URL
	http             *retryablehttp.Client
	licenses         ports.LicenseClassifier
	platformFallback bool

	group    singleflight.Group
	listings *lru.Cache[string, []versionDescriptor]
}

// NewClient creates a registry client for cfg.
func NewClient(cfg domain.RegistryConfig, licenses ports.LicenseClassifier, log ports.Logger) (*Client, error) {
	base, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBuildRegistryClient.Error()), "url", cfg.URL)
	}

	listings, err := lru.New[string, []versionDescriptor](listingCacheSize)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrBuildRegistryClient.Error())
	}

	return &Client{
		baseURL: base,
		http: retry.NewClient(retry.Options{
			Stage:  cfg.StageConfig,
			Policy: retry.NotFoundTerminal{},
			Logger: log,
		}),
		licenses:         licenses,
		platformFallback: cfg.PlatformFallback,
		listings:         listings,
	}, nil
}

// Resolve looks up src in the registry and builds the resolved artifact.
func (c *Client) Resolve(ctx context.Context, src domain.PinnedSource) (domain.ResolvedArtifact, error) {
	listing, ferr := c.versions(ctx, src.Name)
	if ferr != nil {
		return domain.ResolvedArtifact{}, domain.NewResolutionError(ferr.kind, src, ferr.status, ferr.err)
	}

	entry, ok := c.match(listing, src)
	if !ok {
		return domain.ResolvedArtifact{}, domain.NewResolutionError(domain.ResolveVersionNotFound, src, http.StatusOK, nil)
	}

	var license *domain.License
	if l, ok := c.licenses.Classify(entry.Licenses); ok {
		license = &l
	}
	return domain.NewResolvedArtifact(src, entry.Authors, entry.Summary, entry.SHA, license), nil
}

// match returns the first entry with the pinned number and, when pinned, the exact platform.
func (c *Client) match(listing []versionDescriptor, src domain.PinnedSource) (versionDescriptor, bool) {
	for _, v := range listing {
		if v.Number == src.Version && (!src.HasPlatform() || v.Platform == src.Platform) {
			return v, true
		}
	}
	if !c.platformFallback || !src.HasPlatform() {
		return versionDescriptor{}, false
	}
	for _, v := range listing {
		if v.Number == src.Version && v.Platform == genericPlatform {
			return v, true
		}
	}
	return versionDescriptor{}, false
}

// fetchError is a classified failure of a listing request, not yet tied to a source.
type fetchError struct {
	kind   domain.ResolutionErrorKind
	status int
	err    error
}

func (e *fetchError) Error() string {
	if e.err != nil {
		return e.kind.String() + ": " + e.err.Error()
	}
	return e.kind.String()
}

// versions returns the version listing of a gem. Concurrent requests for the
// same gem share one lookup and successful listings are kept for the run.
func (c *Client) versions(ctx context.Context, name string) ([]versionDescriptor, *fetchError) {
	if listing, ok := c.listings.Get(name); ok {
		return listing, nil
	}

	v, err, _ := c.group.Do(name, func() (any, error) {
		listing, ferr := c.fetch(ctx, name)
		if ferr != nil {
			return nil, ferr
		}
		c.listings.Add(name, listing)
		return listing, nil
	})
	if err != nil {
		ferr, ok := err.(*fetchError)
		if !ok {
			ferr = &fetchError{kind: domain.ResolveSendRequest, err: err}
		}
		return nil, ferr
	}
	return v.([]versionDescriptor), nil
}

func (c *Client) fetch(ctx context.Context, name string) ([]versionDescriptor, *fetchError) {
	endpoint := c.baseURL.JoinPath("api", "v1", "versions", name+".json")

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, &fetchError{kind: domain.ResolveSendRequest, err: err}
	}
	req.Header.Set("Accept", "application/json")
	if v, ok := ports.VertexFromContext(ctx); ok {
		v.Log(domain.LogLevelDebug, "GET "+endpoint.String())
	}

	resp, err := c.http.Do(req)
	if resp != nil {
		defer func() {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}()
	}
	if err != nil {
		return nil, &fetchError{kind: domain.ResolveSendRequest, err: err}
	}

	switch status := resp.StatusCode; {
	case status == http.StatusOK:
		var listing []versionDescriptor
		if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
			return nil, &fetchError{kind: domain.ResolveParseResponse, status: status, err: err}
		}
		return listing, nil
	case status == http.StatusNotFound:
		return nil, &fetchError{kind: domain.ResolvePackageNotFound, status: status}
	case status >= 400 && status < 500:
		return nil, &fetchError{kind: domain.ResolveClientError, status: status}
	case status >= 500 && status < 600:
		return nil, &fetchError{kind: domain.ResolveServerError, status: status}
	default:
		return nil, &fetchError{kind: domain.ResolveUnknown, status: status}
	}
}

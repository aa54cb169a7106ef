// Package retry builds HTTP clients that retry according to a per-stage policy.
package retry

import (
	"context"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
)

// Policy decides whether a completed response warrants another attempt.
// Transport failures are classified by retryablehttp.DefaultRetryPolicy.
type Policy interface {
	// Retryable reports whether a response with the given status is retried.
	Retryable(status int) bool
	// Name identifies the policy in logs.
	Name() string
}

// NotFoundTerminal retries every unsuccessful status except 404, which is
// treated as a definitive answer.
type NotFoundTerminal struct{}

// Retryable implements Policy.
func (NotFoundTerminal) Retryable(status int) bool {
	if status == http.StatusNotFound {
		return false
	}
	return !isSuccess(status)
}

// Name implements Policy.
func (NotFoundTerminal) Name() string { return "not-found-terminal" }

// Transient retries request timeouts, rate limiting and server errors
// other than 501.
type Transient struct{}

// Retryable implements Policy.
func (Transient) Retryable(status int) bool {
	switch {
	case status == http.StatusRequestTimeout, status == http.StatusTooManyRequests:
		return true
	case status == http.StatusNotImplemented:
		return false
	default:
		return status >= http.StatusInternalServerError
	}
}

// Name implements Policy.
func (Transient) Name() string { return "transient" }

// CheckRetry adapts a Policy to retryablehttp.CheckRetry.
func CheckRetry(p Policy) retryablehttp.CheckRetry {
	return func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		if err != nil || resp == nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}
		return p.Retryable(resp.StatusCode), nil
	}
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

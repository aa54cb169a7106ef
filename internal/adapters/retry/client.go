package retry

import (
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
	"go.trai.ch/gembom/internal/core/domain"
	"go.trai.ch/gembom/internal/core/ports"
)

// Options configures a retrying client.
type Options struct {
	Stage  domain.StageConfig
	Policy Policy
	Logger ports.Logger

	// FollowRedirects lets the transport follow 3xx responses.
	// When false the 3xx response itself is classified.
	FollowRedirects bool

	// Transport overrides the pooled default transport.
	Transport http.RoundTripper
}

// NewClient returns a client that makes at most Stage.Attempts() attempts per
// request, waiting with exponential backoff between Stage.BackoffMin and
// Stage.BackoffMax. Once the budget is spent the last response or transport
// error is returned unchanged.
func NewClient(opts Options) *retryablehttp.Client {
	c := retryablehttp.NewClient()
	c.RetryMax = opts.Stage.MaxRetries
	c.RetryWaitMin = opts.Stage.BackoffMin
	c.RetryWaitMax = opts.Stage.BackoffMax
	c.Backoff = retryablehttp.DefaultBackoff
	c.CheckRetry = CheckRetry(opts.Policy)
	c.ErrorHandler = retryablehttp.PassthroughErrorHandler

	if opts.Logger != nil {
		c.Logger = leveledLogger{log: opts.Logger, policy: opts.Policy.Name()}
	} else {
		c.Logger = nil
	}
	if opts.Transport != nil {
		c.HTTPClient.Transport = opts.Transport
	}
	if !opts.FollowRedirects {
		c.HTTPClient.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}
	return c
}

// leveledLogger forwards attempt-level records to the application logger at debug level.
type leveledLogger struct {
	log    ports.Logger
	policy string
}

func (l leveledLogger) Error(msg string, kv ...any) { l.debug(msg, kv) }
func (l leveledLogger) Info(msg string, kv ...any)  { l.debug(msg, kv) }
func (l leveledLogger) Debug(msg string, kv ...any) { l.debug(msg, kv) }
func (l leveledLogger) Warn(msg string, kv ...any)  { l.debug(msg, kv) }

func (l leveledLogger) debug(msg string, kv []any) {
	l.log.Debug(msg, append(kv, "policy", l.policy)...)
}

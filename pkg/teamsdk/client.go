package teamsdk

import (
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/aussiebroadwan/teamdesk/pkg/teamsdk"

// DefaultTimeout bounds every request when no custom HTTP client is supplied.
const DefaultTimeout = 10 * time.Second

// Client talks to the admin API. It is safe for concurrent use.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// APIToken is sent as a bearer token on every request when set.
	APIToken string

	tracer trace.Tracer
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.HTTPClient.Timeout = d
		}
	}
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL, apiToken string, opts ...Option) *Client {
	c := &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		APIToken:   apiToken,
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

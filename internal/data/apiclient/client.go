// Package apiclient fetches pages of users and reviewers from the
// json-server style backend.
package apiclient

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/roster/internal/core/logging"
	"github.com/colonyops/roster/internal/core/validate"
)

const (
	// DefaultBaseURL is where the development backend listens.
	DefaultBaseURL = "http://localhost:3001"
	// DefaultTimeout bounds a single request.
	DefaultTimeout = 30 * time.Second

	modulePath = "github.com/colonyops/roster"
)

// ErrStatus is returned when the API responds with a non-2xx status code.
var ErrStatus = errors.New("unexpected status code")

// Client fetches pages from the backend. Use [New] to create one.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	userAgent  string
	log        zerolog.Logger
}

// ClientOption configures a Client before use.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithUserAgent sets a custom User-Agent header for API requests.
func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger replaces the component logger.
func WithLogger(l zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.log = l
	}
}

// New creates a client for the backend at baseURL.
func New(baseURL string, opts ...ClientOption) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if err := validate.BaseURL(baseURL); err != nil {
		return nil, fmt.Errorf("base url %q: %w", baseURL, err)
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	// ResolveReference drops the last path segment unless the base ends in a
	// slash.
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	c := &Client{
		baseURL: u,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		log: logging.Component("apiclient"),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.userAgent == "" {
		c.userAgent = userAgent()
	}

	return c, nil
}

// BaseURL returns the resolved base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// version returns the module version, or "devel" for local builds.
func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "devel"
	}

	if info.Main.Path == modulePath && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && len(setting.Value) >= 7 {
			return "devel+" + setting.Value[:7]
		}
	}

	return "devel"
}

func userAgent() string {
	return fmt.Sprintf("roster/%s (%s; %s/%s)", version(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

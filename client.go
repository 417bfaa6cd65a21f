package apiclient

import (
	"net/http"
	"time"
)

// Api is the capability interface operations call through: a transport
// handle and a pre-request hook. Implement it directly when a client
// needs stateful customization — token refresh, request signing — and do
// the work in PreRequest.
type Api interface {
	// HTTPClient returns the shared transport handle.
	HTTPClient() *http.Client

	// PreRequest may inspect or replace the request before anything else
	// is applied to it. Returning an error aborts the call before any
	// network I/O.
	PreRequest(req *http.Request) (*http.Request, error)
}

// Authenticator is optionally implemented by Api values that carry an
// Auth. The default Client implements it; custom implementations can skip
// it and authenticate in PreRequest instead.
type Authenticator interface {
	Auth() Auth
}

// Client is the default Api implementation: a fresh http.Client, an Auth
// value, and an optional PreRequest hook. Construct one per backend; it
// is immutable after construction and safe for concurrent use.
type Client struct {
	hc   *http.Client
	auth Auth
	pre  func(req *http.Request) (*http.Request, error)
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default transport handle.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.hc = hc
	}
}

// WithAuth sets the credential applied to every request.
func WithAuth(a Auth) ClientOption {
	return func(c *Client) {
		c.auth = a
	}
}

// WithPreRequest sets the pre-request hook. The default is the identity
// transform.
func WithPreRequest(hook func(req *http.Request) (*http.Request, error)) ClientOption {
	return func(c *Client) {
		c.pre = hook
	}
}

// WithTimeout sets the transport handle's overall timeout. Timeouts are a
// transport concern; operations impose none of their own.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.hc.Timeout = d
	}
}

// WithMiddleware wraps the transport with round-tripper middleware, in
// the order given (the first wraps outermost).
func WithMiddleware(mw ...Middleware) ClientOption {
	return func(c *Client) {
		base := c.hc.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		c.hc.Transport = chain(base, mw)
	}
}

// NewClient creates a Client with a fresh transport handle and the given
// options.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{hc: &http.Client{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HTTPClient returns the shared transport handle.
func (c *Client) HTTPClient() *http.Client { return c.hc }

// PreRequest runs the configured hook, or returns the request unchanged.
func (c *Client) PreRequest(req *http.Request) (*http.Request, error) {
	if c.pre != nil {
		return c.pre(req)
	}
	return req, nil
}

// Auth returns the client's credential.
func (c *Client) Auth() Auth { return c.auth }

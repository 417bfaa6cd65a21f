package apiclient

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
)

// Middleware is transport middleware: it wraps an http.RoundTripper. The
// assembly pipeline performs exactly one send per call; anything
// cross-cutting — logging, pacing, retries — belongs here.
type Middleware func(next http.RoundTripper) http.RoundTripper

// RoundTripperFunc adapts a function to http.RoundTripper.
type RoundTripperFunc func(req *http.Request) (*http.Response, error)

// RoundTrip calls f.
func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// chain wraps base with mw, first middleware outermost.
func chain(base http.RoundTripper, mw []Middleware) http.RoundTripper {
	rt := base
	for i := len(mw) - 1; i >= 0; i-- {
		rt = mw[i](rt)
	}
	return rt
}

// UserAgent returns middleware that sets the User-Agent header on every
// request that does not already carry one.
func UserAgent(ua string) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if req.Header.Get("User-Agent") == "" {
				req = req.Clone(req.Context())
				req.Header.Set("User-Agent", ua)
			}
			return next.RoundTrip(req)
		})
	}
}

// RequestIDConfig configures the RequestID middleware.
type RequestIDConfig struct {
	Header    string        // default: "X-Request-ID"
	Generator func() string // default: random hex
}

// RequestID returns middleware that assigns a unique request ID to each
// outgoing request that does not already carry one.
func RequestID(cfg ...RequestIDConfig) Middleware {
	c := RequestIDConfig{
		Header:    "X-Request-ID",
		Generator: defaultIDGenerator,
	}
	if len(cfg) > 0 {
		if cfg[0].Header != "" {
			c.Header = cfg[0].Header
		}
		if cfg[0].Generator != nil {
			c.Generator = cfg[0].Generator
		}
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if req.Header.Get(c.Header) == "" {
				req = req.Clone(req.Context())
				req.Header.Set(c.Header, c.Generator())
			}
			return next.RoundTrip(req)
		})
	}
}

// defaultIDGenerator returns 16 random hex characters.
func defaultIDGenerator() string {
	b := make([]byte, 8)
	//nolint:errcheck // crypto/rand.Read does not fail
	rand.Read(b)
	return hex.EncodeToString(b)
}

package apiclient

import (
	"io"
	"net/http"
	"time"
)

// RetryConfig configures the Retry middleware.
type RetryConfig struct {
	MaxAttempts int                                      // total attempts including the first (default: 3)
	BaseDelay   time.Duration                            // delay before the second attempt (default: 100ms)
	MaxDelay    time.Duration                            // cap on the doubling delay (default: 2s)
	RetryIf     func(res *http.Response, err error) bool // default: transport errors and 502/503/504
}

// Retry returns middleware that re-sends failed requests with doubling
// backoff. Requests whose body cannot be replayed (GetBody unset) are
// sent once. Retrying happens at the transport, never inside the
// assembly pipeline.
func Retry(cfg RetryConfig) Middleware {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = 100 * time.Millisecond
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = 2 * time.Second
	}
	if cfg.RetryIf == nil {
		cfg.RetryIf = defaultRetryIf
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			replayable := req.Body == nil || req.GetBody != nil

			var res *http.Response
			var err error
			delay := cfg.BaseDelay

			for attempt := 1; ; attempt++ {
				res, err = next.RoundTrip(req)
				if !cfg.RetryIf(res, err) || attempt >= cfg.MaxAttempts || !replayable {
					return res, err
				}

				// Drain the failed response so the connection can be reused.
				if res != nil {
					io.Copy(io.Discard, res.Body) //nolint:errcheck
					res.Body.Close()              //nolint:errcheck
				}

				select {
				case <-req.Context().Done():
					return nil, req.Context().Err()
				case <-time.After(delay):
				}
				delay = min(delay*2, cfg.MaxDelay)

				if req.Body != nil {
					body, berr := req.GetBody()
					if berr != nil {
						return nil, berr
					}
					req = req.Clone(req.Context())
					req.Body = body
				}
			}
		})
	}
}

// defaultRetryIf retries transport errors and gateway failures.
func defaultRetryIf(res *http.Response, err error) bool {
	if err != nil {
		return true
	}
	switch res.StatusCode {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

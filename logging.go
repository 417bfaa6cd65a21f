package apiclient

import (
	"log/slog"
	"net/http"
	"time"
)

// Logging returns middleware that logs each round trip using the provided
// slog.Logger.
func Logging(logger *slog.Logger) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			res, err := next.RoundTrip(req)

			attrs := []slog.Attr{
				slog.String("method", req.Method),
				slog.String("url", req.URL.String()),
				slog.Duration("latency", time.Since(start)),
			}
			if err != nil {
				attrs = append(attrs, slog.Any("error", err))
				logger.LogAttrs(req.Context(), slog.LevelError, "request", attrs...)
				return nil, err
			}

			attrs = append(attrs,
				slog.Int("status", res.StatusCode),
				slog.Int64("size", res.ContentLength),
			)
			logger.LogAttrs(req.Context(), slog.LevelInfo, "request", attrs...)
			return res, nil
		})
	}
}

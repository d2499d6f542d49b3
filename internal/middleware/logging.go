package middleware

import (
	"net/http"
	"time"

	charmlog "github.com/charmbracelet/log"
)

// Logging writes a concise structured line for each outgoing request. Query
// strings and bodies are never logged.
func Logging(logger *charmlog.Logger) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(req)
			latency := time.Since(start)

			rid := RequestIDFromRequest(req)
			if err != nil {
				logger.Warn("request failed", "request_id", rid, "method", req.Method, "host", req.URL.Host, "path", req.URL.Path, "latency", latency, "err", err)
				return nil, err
			}

			logger.Debug("request", "request_id", rid, "method", req.Method, "host", req.URL.Host, "path", req.URL.Path, "status", resp.StatusCode, "latency", latency)
			return resp, nil
		})
	}
}

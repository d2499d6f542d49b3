package middleware

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/octobees/leads-generator/crmlookup/internal/config"
)

// RateLimiter applies a token bucket shared by every request sent through the
// transport. Requests wait for a token instead of being rejected.
func RateLimiter(cfg config.RateLimitConfig) Middleware {
	if cfg.Requests <= 0 || cfg.Interval <= 0 {
		return func(next http.RoundTripper) http.RoundTripper {
			return next
		}
	}

	perRequest := cfg.Interval / time.Duration(cfg.Requests)
	if perRequest <= 0 {
		perRequest = time.Millisecond
	}

	limiter := rate.NewLimiter(rate.Every(perRequest), cfg.Requests)

	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if err := limiter.Wait(req.Context()); err != nil {
				return nil, err
			}
			return next.RoundTrip(req)
		})
	}
}

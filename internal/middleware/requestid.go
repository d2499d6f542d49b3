package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestID stamps each outgoing request with an identifier for traceability
// unless the caller already provided one.
func RequestID() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if req.Header.Get(HeaderRequestID) != "" {
				return next.RoundTrip(req)
			}
			req = req.Clone(req.Context())
			req.Header.Set(HeaderRequestID, uuid.NewString())
			return next.RoundTrip(req)
		})
	}
}

// RequestIDFromRequest extracts the request identifier if available.
func RequestIDFromRequest(req *http.Request) string {
	if req == nil {
		return ""
	}
	return req.Header.Get(HeaderRequestID)
}

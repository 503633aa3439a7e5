package httpapi

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/slugkit/pkg/logger"
)

type requestIDKey struct{}

// DefaultRequestIDHeaders are the headers checked, in order, for an upstream request ID.
var DefaultRequestIDHeaders = []string{"X-Request-ID", "X-Request-Id", "X-Correlation-ID"}

// RequestIDOption configures the RequestID middleware.
type RequestIDOption func(*requestIDConfig)

type requestIDConfig struct {
	generator      func() string
	responseHeader string
	headers        []string
}

// WithRequestIDHeaders sets the headers checked for an existing request ID.
func WithRequestIDHeaders(headers ...string) RequestIDOption {
	return func(cfg *requestIDConfig) {
		cfg.headers = headers
	}
}

// WithRequestIDGenerator replaces uuid.NewString.
func WithRequestIDGenerator(gen func() string) RequestIDOption {
	return func(cfg *requestIDConfig) {
		if gen != nil {
			cfg.generator = gen
		}
	}
}

// RequestID reuses an upstream request ID or generates one, stores it in the
// request context and echoes it in the X-Request-ID response header.
func RequestID(opts ...RequestIDOption) func(http.Handler) http.Handler {
	cfg := &requestIDConfig{
		headers:        DefaultRequestIDHeaders,
		generator:      uuid.NewString,
		responseHeader: "X-Request-ID",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var reqID string
			for _, header := range cfg.headers {
				if v := r.Header.Get(header); v != "" {
					reqID = v
					break
				}
			}
			if reqID == "" {
				reqID = cfg.generator()
			}

			w.Header().Set(cfg.responseHeader, reqID)
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, reqID)))
		})
	}
}

// GetRequestID returns the request ID stored by RequestID, or "".
func GetRequestID(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey{}).(string)
	return v
}

// RequestIDExtractor adds "request_id" to every log record written with the request context.
func RequestIDExtractor() logger.ContextExtractor {
	return logger.StringExtractor(requestIDKey{}, "request_id")
}

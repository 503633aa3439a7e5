package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/slugkit/pkg/health"
)

// Option configures the App.
type Option func(*App)

// WithContext sets the parent of the signal context.
// Cancelling it shuts the server down.
func WithContext(ctx context.Context) Option {
	return func(a *App) {
		if ctx != nil {
			a.baseCtx = ctx
		}
	}
}

// WithLogger sets the server logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithAddress sets the listen address. Default: ":8080"
func WithAddress(addr string) Option {
	return func(a *App) {
		if addr != "" {
			a.server.Addr = addr
		}
	}
}

// WithTimeouts sets read and write timeouts. Zero keeps the default.
// Default: 15s read, 30s write
func WithTimeouts(read, write time.Duration) Option {
	return func(a *App) {
		if read > 0 {
			a.server.ReadTimeout = read
		}
		if write > 0 {
			a.server.WriteTimeout = write
		}
	}
}

// WithShutdownTimeout bounds the graceful shutdown, hooks included.
// Default: 30s
func WithShutdownTimeout(d time.Duration) Option {
	return func(a *App) {
		if d > 0 {
			a.shutdownTimeout = d
		}
	}
}

// WithShutdownHook registers fn to run after the HTTP server stops.
// Hooks run in registration order.
func WithShutdownHook(fn func(context.Context) error) Option {
	return func(a *App) {
		if fn != nil {
			a.shutdownHooks = append(a.shutdownHooks, fn)
		}
	}
}

// WithMiddleware adds router middleware, applied in order.
func WithMiddleware(mw ...func(http.Handler) http.Handler) Option {
	return func(a *App) {
		a.middlewares = append(a.middlewares, mw...)
	}
}

// WithRoutes registers a function that mounts routes on the router.
func WithRoutes(fn func(chi.Router)) Option {
	return func(a *App) {
		if fn != nil {
			a.routes = append(a.routes, fn)
		}
	}
}

// WithHealthCheck adds a named readiness check served at /health/ready.
func WithHealthCheck(name string, fn health.CheckFunc) Option {
	return func(a *App) {
		if fn == nil {
			return
		}
		if a.healthChecks == nil {
			a.healthChecks = health.Checks{}
		}
		a.healthChecks[name] = fn
	}
}

// WithHealthTimeout bounds each readiness probe. Default: 5s
func WithHealthTimeout(d time.Duration) Option {
	return func(a *App) {
		a.healthTimeout = d
	}
}

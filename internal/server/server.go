package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/slugkit/pkg/health"
	"github.com/dmitrymomot/slugkit/pkg/logger"
)

const (
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20
	defaultShutdownTimeout   = 30 * time.Second
)

// App owns the HTTP server and its shutdown sequence.
// Configure it with options; it is not modified after New.
type App struct {
	baseCtx context.Context
	logger  *slog.Logger

	server      *http.Server
	router      chi.Router
	middlewares []func(http.Handler) http.Handler
	routes      []func(chi.Router)

	healthChecks  health.Checks
	healthTimeout time.Duration

	shutdownTimeout time.Duration
	shutdownHooks   []func(context.Context) error

	mu       sync.Mutex
	listener net.Listener
	ready    chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// New creates an App listening on :8080 by default.
func New(opts ...Option) *App {
	router := chi.NewRouter()

	a := &App{
		baseCtx:         context.Background(),
		logger:          logger.NewNope(),
		router:          router,
		shutdownTimeout: defaultShutdownTimeout,
		ready:           make(chan struct{}),
		done:            make(chan struct{}),
		server: &http.Server{
			Addr:              ":8080",
			Handler:           router,
			ReadTimeout:       defaultReadTimeout,
			WriteTimeout:      defaultWriteTimeout,
			IdleTimeout:       defaultIdleTimeout,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
			MaxHeaderBytes:    defaultMaxHeaderBytes,
		},
	}

	for _, opt := range opts {
		opt(a)
	}

	a.setupRoutes()
	return a
}

// Handler returns the fully configured router, for tests.
func (a *App) Handler() http.Handler {
	return a.router
}

// Addr returns the listening address, or "" before Run has bound it.
func (a *App) Addr() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.listener == nil {
		return ""
	}
	return a.listener.Addr().String()
}

// Ready is closed once Run has bound its listener.
func (a *App) Ready() <-chan struct{} {
	return a.ready
}

// Run serves until SIGINT, SIGTERM, Stop or a server error, then shuts
// down: the HTTP server first, then the hooks in registration order.
func (a *App) Run() error {
	ctx, cancel := signal.NotifyContext(a.baseCtx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ln, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.listener = ln
	a.mu.Unlock()
	close(a.ready)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server starting", slog.String("address", ln.Addr().String()))
		if err := a.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return errors.Join(err, a.runHooks())
		}
	case <-ctx.Done():
	case <-a.done:
	}

	return a.shutdown()
}

// Stop triggers the same graceful shutdown as a signal. Safe to call more than once.
func (a *App) Stop() {
	a.stopOnce.Do(func() { close(a.done) })
}

func (a *App) shutdown() error {
	a.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.server.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	errs = append(errs, a.runHooksContext(ctx))

	if err := errors.Join(errs...); err != nil {
		a.logger.Error("shutdown completed with errors", slog.Any("error", err))
		return err
	}

	a.logger.Info("shutdown completed")
	return nil
}

func (a *App) runHooks() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()
	return a.runHooksContext(ctx)
}

func (a *App) runHooksContext(ctx context.Context) error {
	var errs []error
	for _, hook := range a.shutdownHooks {
		if err := hook(ctx); err != nil {
			a.logger.Error("shutdown hook failed", slog.Any("error", err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (a *App) setupRoutes() {
	for _, mw := range a.middlewares {
		a.router.Use(mw)
	}

	a.router.Get("/health/live", health.LivenessHandler())
	a.router.Get("/health/ready", health.ReadinessHandler(a.healthChecks,
		health.WithLogger(a.logger),
		health.WithTimeout(a.healthTimeout),
	))

	for _, fn := range a.routes {
		fn(a.router)
	}
}

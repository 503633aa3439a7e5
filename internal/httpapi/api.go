package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/slugkit/internal/reservation"
	"github.com/dmitrymomot/slugkit/pkg/logger"
	"github.com/dmitrymomot/slugkit/pkg/slug"
	"github.com/dmitrymomot/slugkit/pkg/slugstore"
)

const (
	maxBatchSize        = 1000
	defaultBatchWorkers = 8
	claimRetries        = 3
)

// Option configures the API.
type Option func(*API)

// WithChecker enables POST /v1/slugs/unique against checker.
// When checker is a slugstore.Registry, requests may also claim the slug.
func WithChecker(checker slug.ExistenceChecker, opts ...slug.ResolverOption) Option {
	return func(a *API) {
		a.checker = checker
		a.resolverOpts = append(a.resolverOpts, opts...)
	}
}

// WithReservations enables the /v1/reservations endpoints.
func WithReservations(svc *reservation.Service) Option {
	return func(a *API) {
		a.reservations = svc
	}
}

// WithAllowedTables sets the tables uniqueness checks may target.
// With no tables every unique request is rejected.
func WithAllowedTables(tables ...string) Option {
	return func(a *API) {
		for _, t := range tables {
			if t != "" {
				a.allowedTables[t] = struct{}{}
			}
		}
	}
}

// WithDefaultColumn sets the column used when a request omits it. Default: "slug"
func WithDefaultColumn(column string) Option {
	return func(a *API) {
		if column != "" {
			a.defaultColumn = column
		}
	}
}

// WithBatchConcurrency bounds the goroutines normalizing one batch. Default: 8
func WithBatchConcurrency(n int) Option {
	return func(a *API) {
		if n > 0 {
			a.batchWorkers = n
		}
	}
}

// WithLogger sets the API logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.logger = l
		}
	}
}

// API serves the slug endpoints.
type API struct {
	normalizer   *slug.Normalizer
	checker      slug.ExistenceChecker
	resolverOpts []slug.ResolverOption
	resolver     *slug.Resolver
	registry     slugstore.Registry
	reservations *reservation.Service

	allowedTables map[string]struct{}
	defaultColumn string
	batchWorkers  int
	logger        *slog.Logger
}

// New creates the API around n.
func New(n *slug.Normalizer, opts ...Option) *API {
	a := &API{
		normalizer:    n,
		allowedTables: make(map[string]struct{}),
		defaultColumn: "slug",
		batchWorkers:  defaultBatchWorkers,
		logger:        logger.NewNope(),
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.checker != nil {
		ropts := append([]slug.ResolverOption{slug.WithResolverLogger(a.logger)}, a.resolverOpts...)
		a.resolver = slug.NewResolver(n, a.checker, ropts...)
		a.registry, _ = a.checker.(slugstore.Registry)
	}
	return a
}

// Routes mounts the API under /v1.
func (a *API) Routes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Post("/slugs", a.handle(a.generate))
		r.Post("/slugs/batch", a.handle(a.batch))
		r.Post("/slugs/unique", a.handle(a.unique))

		r.Post("/reservations", a.handle(a.reserve))
		r.Get("/reservations/{scope}/{slug}", a.handle(a.getReservation))
		r.Delete("/reservations/{scope}/{slug}", a.handle(a.releaseReservation))
	})
}

type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle renders a returned error. 5xx errors are logged with their cause.
func (a *API) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		e := toHTTPError(err)
		if e.Code >= http.StatusInternalServerError {
			a.logger.ErrorContext(r.Context(), "request failed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", e.Code),
				slog.Any("error", err),
			)
		}
		writeError(w, r, e)
	}
}

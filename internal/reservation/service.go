package reservation

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/slugkit/pkg/logger"
	"github.com/dmitrymomot/slugkit/pkg/slug"
)

const defaultRaceRetries = 3

// Option configures a Service.
type Option func(*Service)

// WithRaceRetries sets how many times Reserve resolves again after losing
// an insert race. Default: 3
func WithRaceRetries(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.raceRetries = n
		}
	}
}

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithResolverOptions passes options to the underlying slug resolver.
func WithResolverOptions(opts ...slug.ResolverOption) Option {
	return func(s *Service) {
		s.resolverOpts = append(s.resolverOpts, opts...)
	}
}

// errLostRace rolls back an attempt whose slug was taken by a concurrent writer.
var errLostRace = errors.New("reservation: lost race")

// Service reserves unique slugs per scope. It drives slug.Hook from an
// explicit save path and relies on the table's primary key to settle races
// the resolver cannot see.
type Service struct {
	store        *Store
	normalizer   *slug.Normalizer
	defaults     slug.Defaults
	raceRetries  int
	logger       *slog.Logger
	resolverOpts []slug.ResolverOption
}

// NewService creates a Service. The separator and regeneration settings
// come from defaults; the source field and column are fixed.
func NewService(store *Store, n *slug.Normalizer, defaults slug.Defaults, opts ...Option) *Service {
	s := &Service{
		store:       store,
		normalizer:  n,
		raceRetries: defaultRaceRetries,
		logger:      logger.NewNope(),
	}
	for _, opt := range opts {
		opt(s)
	}

	defaults.SourceField = sourceField
	defaults.Column = slugColumn
	s.defaults = defaults
	return s
}

// Reserve returns the slug reserved for key in scope, creating it when the
// key has none and renaming it when text changed. Each attempt reads,
// resolves and writes inside one transaction.
func (s *Service) Reserve(ctx context.Context, scope, text, key string) (*Reservation, error) {
	scope, key = strings.TrimSpace(scope), strings.TrimSpace(key)
	if scope == "" || key == "" || strings.TrimSpace(text) == "" {
		return nil, ErrInvalidRequest
	}

	for attempt := 0; attempt <= s.raceRetries; attempt++ {
		var r *Reservation
		err := s.store.InTx(ctx, func(tx *Store) error {
			var err error
			r, err = s.reserve(ctx, tx, scope, text, key)
			return err
		})

		switch {
		case err == nil:
			return r, nil
		case errors.Is(err, errLostRace):
			s.logger.InfoContext(ctx, "slug reservation lost a race, resolving again",
				slog.String("scope", scope),
				slog.String("key", key),
				slog.Int("attempt", attempt+1),
			)
		case errors.Is(err, ErrNotFound):
		default:
			return nil, err
		}
	}

	return nil, ErrConflict
}

func (s *Service) reserve(ctx context.Context, tx *Store, scope, text, key string) (*Reservation, error) {
	existing, err := tx.GetByKey(ctx, scope, key)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hook := slug.NewHook(slug.NewResolver(s.normalizer, tx, s.resolverOpts...), s.defaults)
	rec := &record{scope: scope, key: key, text: text, existing: existing}
	if existing == nil {
		err = hook.BeforeCreate(ctx, rec)
	} else {
		err = hook.BeforeUpdate(ctx, rec)
	}
	if err != nil {
		return nil, err
	}

	if !rec.assigned {
		return existing, nil
	}

	r := &Reservation{Scope: scope, Slug: rec.slug, Key: key, SourceText: text}
	var stored bool
	if existing == nil {
		stored, err = tx.Insert(ctx, r)
	} else {
		stored, err = tx.Rename(ctx, r)
	}
	if err != nil {
		return nil, err
	}
	if !stored {
		return nil, errLostRace
	}

	s.logger.DebugContext(ctx, "slug reserved",
		slog.String("scope", scope),
		slog.String("slug", r.Slug),
		slog.String("key", key),
	)
	return r, nil
}

// Get returns the reservation of slug in scope.
func (s *Service) Get(ctx context.Context, scope, slug string) (*Reservation, error) {
	return s.store.Get(ctx, scope, slug)
}

// Release frees slug in scope.
func (s *Service) Release(ctx context.Context, scope, slug string) error {
	return s.store.Delete(ctx, scope, slug)
}

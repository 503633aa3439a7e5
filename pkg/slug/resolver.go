package slug

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/slugkit/pkg/id"
	"github.com/dmitrymomot/slugkit/pkg/logger"
)

const (
	defaultMaxAttempts    = 100
	defaultRandomAttempts = 3
	randomSuffixLength    = 6
)

// ExistenceChecker reports whether candidate is already stored in column of
// table. A non-nil excludeKey identifies a record to ignore, so a record
// keeping its own slug does not collide with itself.
//
// Implementations must not cache: every call should reflect the latest
// committed state.
type ExistenceChecker interface {
	Exists(ctx context.Context, table, column, candidate string, excludeKey any) (bool, error)
}

// ExistenceCheckFunc adapts a function to ExistenceChecker.
type ExistenceCheckFunc func(ctx context.Context, table, column, candidate string, excludeKey any) (bool, error)

// Exists implements ExistenceChecker.
func (f ExistenceCheckFunc) Exists(ctx context.Context, table, column, candidate string, excludeKey any) (bool, error) {
	return f(ctx, table, column, candidate, excludeKey)
}

// Target names where slugs live and how they are joined.
type Target struct {
	Table     string
	Column    string
	Separator string
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithMaxAttempts bounds the number of sequential candidates (base, base-1,
// base-2, ...) tried before random suffixes. Values below 1 are ignored.
// Default: 100
func WithMaxAttempts(n int) ResolverOption {
	return func(r *Resolver) {
		if n > 0 {
			r.maxAttempts = n
		}
	}
}

// WithRandomAttempts sets how many random-suffix candidates are tried after
// the sequential ones. Zero disables them.
// Default: 3
func WithRandomAttempts(n int) ResolverOption {
	return func(r *Resolver) {
		if n >= 0 {
			r.randomAttempts = n
		}
	}
}

// WithResolverLogger sets the logger used to report exhausted attempts.
func WithResolverLogger(l *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// withSuffixGenerator replaces the random suffix source (tests).
func withSuffixGenerator(fn func(int) string) ResolverOption {
	return func(r *Resolver) {
		r.suffix = fn
	}
}

// Resolver appends increasing counters to a base slug until the checker
// reports the candidate free.
//
// The check and the caller's eventual insert are not atomic: two resolvers
// racing on the same base can both observe a candidate as free. Callers must
// keep a unique constraint in storage and treat the resolver as a way to
// avoid most collisions, not as the guarantee.
type Resolver struct {
	normalizer     *Normalizer
	checker        ExistenceChecker
	logger         *slog.Logger
	suffix         func(int) string
	maxAttempts    int
	randomAttempts int
}

// NewResolver creates a Resolver over the given normalizer and checker.
func NewResolver(n *Normalizer, checker ExistenceChecker, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		normalizer:     n,
		checker:        checker,
		logger:         logger.NewNope(),
		suffix:         id.NewSuffix,
		maxAttempts:    defaultMaxAttempts,
		randomAttempts: defaultRandomAttempts,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Normalizer returns the underlying normalizer.
func (r *Resolver) Normalizer() *Normalizer {
	return r.normalizer
}

// GenerateUnique normalizes text and returns the first candidate the checker
// reports as free. Checker errors are returned unchanged. When every
// candidate is taken it returns ErrExhaustedUniquenessAttempts.
func (r *Resolver) GenerateUnique(ctx context.Context, text string, t Target, excludeKey any) (string, error) {
	sep := r.normalizer.effectiveSeparator(t.Separator)
	base := r.normalizer.Generate(text, sep)

	return r.Resolve(ctx, base, Target{Table: t.Table, Column: t.Column, Separator: sep}, excludeKey)
}

// Resolve runs the suffix loop for an already normalized base slug.
func (r *Resolver) Resolve(ctx context.Context, base string, t Target, excludeKey any) (string, error) {
	sep := r.normalizer.effectiveSeparator(t.Separator)

	candidate := base
	for counter := 1; counter <= r.maxAttempts; counter++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		taken, err := r.checker.Exists(ctx, t.Table, t.Column, candidate, excludeKey)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}

		candidate = base + sep + strconv.Itoa(counter)
	}

	for range r.randomAttempts {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		candidate = base + sep + r.suffix(randomSuffixLength)
		taken, err := r.checker.Exists(ctx, t.Table, t.Column, candidate, excludeKey)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}

	r.logger.WarnContext(ctx, "slug uniqueness attempts exhausted",
		slog.String("table", t.Table),
		slog.String("column", t.Column),
		slog.String("base", base),
		slog.Int("attempts", r.maxAttempts+r.randomAttempts),
	)

	return "", errors.Join(ErrExhaustedUniquenessAttempts,
		fmt.Errorf("base %q in %s.%s", base, t.Table, t.Column))
}

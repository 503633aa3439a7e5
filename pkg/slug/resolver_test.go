package slug_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slugkit/pkg/slug"
)

// takenChecker reports a fixed set of slugs as taken and records every call.
type takenChecker struct {
	mu      sync.Mutex
	taken   map[string]bool
	calls   []string
	exclude []any
	err     error
}

func newTakenChecker(taken ...string) *takenChecker {
	c := &takenChecker{taken: make(map[string]bool, len(taken))}
	for _, s := range taken {
		c.taken[s] = true
	}
	return c
}

func (c *takenChecker) Exists(_ context.Context, table, column, candidate string, excludeKey any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls = append(c.calls, candidate)
	c.exclude = append(c.exclude, excludeKey)
	if c.err != nil {
		return false, c.err
	}
	return c.taken[candidate], nil
}

func newResolver(c slug.ExistenceChecker, opts ...slug.ResolverOption) *slug.Resolver {
	return slug.NewResolver(slug.New(slug.PreserveOriginal(false), slug.UseIntl(false)), c, opts...)
}

var articles = slug.Target{Table: "articles", Column: "slug"}

func TestResolver_GenerateUnique(t *testing.T) {
	t.Parallel()

	t.Run("base is free", func(t *testing.T) {
		t.Parallel()

		c := newTakenChecker()
		s, err := newResolver(c).GenerateUnique(context.Background(), "Hello World", articles, nil)
		require.NoError(t, err)
		assert.Equal(t, "hello-world", s)
		assert.Equal(t, []string{"hello-world"}, c.calls)
	})

	t.Run("numeric suffixes in order", func(t *testing.T) {
		t.Parallel()

		c := newTakenChecker("hello-world", "hello-world-1", "hello-world-2")
		s, err := newResolver(c).GenerateUnique(context.Background(), "Hello World", articles, nil)
		require.NoError(t, err)
		assert.Equal(t, "hello-world-3", s)
		assert.Equal(t, []string{"hello-world", "hello-world-1", "hello-world-2", "hello-world-3"}, c.calls)
	})

	t.Run("target separator", func(t *testing.T) {
		t.Parallel()

		c := newTakenChecker("hello_world")
		s, err := newResolver(c).GenerateUnique(context.Background(), "Hello World",
			slug.Target{Table: "articles", Column: "slug", Separator: "_"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "hello_world_1", s)
	})

	t.Run("exclude key passed through", func(t *testing.T) {
		t.Parallel()

		c := newTakenChecker("hello-world")
		_, err := newResolver(c).GenerateUnique(context.Background(), "Hello World", articles, int64(42))
		require.NoError(t, err)
		for _, ex := range c.exclude {
			assert.Equal(t, int64(42), ex)
		}
	})

	t.Run("excluded owner keeps base", func(t *testing.T) {
		t.Parallel()

		owned := map[string]int64{"hello-world": 42}
		c := slug.ExistenceCheckFunc(func(_ context.Context, _, _, candidate string, excludeKey any) (bool, error) {
			owner, ok := owned[candidate]
			return ok && owner != excludeKey, nil
		})

		s, err := newResolver(c).GenerateUnique(context.Background(), "Hello World", articles, int64(42))
		require.NoError(t, err)
		assert.Equal(t, "hello-world", s)

		s, err = newResolver(c).GenerateUnique(context.Background(), "Hello World", articles, int64(7))
		require.NoError(t, err)
		assert.Equal(t, "hello-world-1", s)
	})

	t.Run("whitespace separator uses default", func(t *testing.T) {
		t.Parallel()

		c := newTakenChecker("hello-world")
		s, err := newResolver(c).GenerateUnique(context.Background(), "Hello World",
			slug.Target{Table: "articles", Column: "slug", Separator: " "}, nil)
		require.NoError(t, err)
		assert.Equal(t, "hello-world-1", s)
	})

	t.Run("checker error returned unchanged", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("connection refused")
		c := newTakenChecker()
		c.err = boom

		s, err := newResolver(c).GenerateUnique(context.Background(), "Hello World", articles, nil)
		require.ErrorIs(t, err, boom)
		assert.Equal(t, boom, err)
		assert.Empty(t, s)
		assert.Len(t, c.calls, 1)
	})

	t.Run("exhausted", func(t *testing.T) {
		t.Parallel()

		c := slug.ExistenceCheckFunc(func(context.Context, string, string, string, any) (bool, error) {
			return true, nil
		})
		var calls int
		counting := slug.ExistenceCheckFunc(func(ctx context.Context, table, column, candidate string, ex any) (bool, error) {
			calls++
			return c(ctx, table, column, candidate, ex)
		})

		s, err := newResolver(counting, slug.WithMaxAttempts(5), slug.WithRandomAttempts(2)).
			GenerateUnique(context.Background(), "Hello", articles, nil)
		require.ErrorIs(t, err, slug.ErrExhaustedUniquenessAttempts)
		assert.Empty(t, s)
		assert.Equal(t, 7, calls)
	})

	t.Run("random attempts disabled", func(t *testing.T) {
		t.Parallel()

		var calls int
		c := slug.ExistenceCheckFunc(func(context.Context, string, string, string, any) (bool, error) {
			calls++
			return true, nil
		})

		_, err := newResolver(c, slug.WithMaxAttempts(3), slug.WithRandomAttempts(0)).
			GenerateUnique(context.Background(), "Hello", articles, nil)
		require.ErrorIs(t, err, slug.ErrExhaustedUniquenessAttempts)
		assert.Equal(t, 3, calls)
	})

	t.Run("invalid limits ignored", func(t *testing.T) {
		t.Parallel()

		var calls int
		c := slug.ExistenceCheckFunc(func(context.Context, string, string, string, any) (bool, error) {
			calls++
			return true, nil
		})

		_, err := newResolver(c, slug.WithMaxAttempts(0), slug.WithRandomAttempts(-1)).
			GenerateUnique(context.Background(), "Hello", articles, nil)
		require.ErrorIs(t, err, slug.ErrExhaustedUniquenessAttempts)
		assert.Equal(t, 103, calls)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		c := slug.ExistenceCheckFunc(func(context.Context, string, string, string, any) (bool, error) {
			cancel()
			return true, nil
		})

		_, err := newResolver(c).GenerateUnique(ctx, "Hello", articles, nil)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("blank source resolves fallback", func(t *testing.T) {
		t.Parallel()

		c := newTakenChecker()
		s, err := newResolver(c).GenerateUnique(context.Background(), "   ", articles, nil)
		require.NoError(t, err)
		assert.Regexp(t, `^item-\d{4}-\d{2}-\d{2}-\d{2}-\d{2}-\d{2}-[0-9a-z]+$`, s)
	})
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	c := newTakenChecker("Café-Français")
	r := slug.NewResolver(slug.New(), c)

	s, err := r.Resolve(context.Background(), "Café-Français", articles, nil)
	require.NoError(t, err)
	assert.Equal(t, "Café-Français-1", s)
	assert.NotNil(t, r.Normalizer())
}

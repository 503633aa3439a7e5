package slugstore

import (
	"context"

	"github.com/dmitrymomot/slugkit/pkg/slug"
)

// Registry is a checker that can also record ownership atomically.
// Memory and Redis implement it.
type Registry interface {
	slug.ExistenceChecker
	Claim(ctx context.Context, table, column, slug string, key any) (bool, error)
	Release(ctx context.Context, table, column, slug string) error
}

var (
	_ Registry              = (*Memory)(nil)
	_ Registry              = (*Redis)(nil)
	_ slug.ExistenceChecker = (*Postgres)(nil)
	_ slug.ExistenceChecker = (*SQL)(nil)
	_ slug.ExistenceChecker = (*Mongo)(nil)
)

package slugstore

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisOption configures a Redis registry.
type RedisOption func(*Redis)

// WithPrefix sets the key prefix for registry hashes.
// Default: "slugs"
func WithPrefix(prefix string) RedisOption {
	return func(r *Redis) {
		if prefix != "" {
			r.prefix = prefix
		}
	}
}

// Redis keeps one hash per table and column at "prefix:table:column",
// mapping each slug to the key of the record that owns it.
//
// Exists alone has the same race as any checker. Claim is atomic (HSETNX),
// so resolving and then claiming gives a registry-level uniqueness guarantee.
type Redis struct {
	client redis.UniversalClient
	prefix string
}

// NewRedis creates a registry over client.
func NewRedis(client redis.UniversalClient, opts ...RedisOption) *Redis {
	r := &Redis{client: client, prefix: "slugs"}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Redis) key(table, column string) string {
	return r.prefix + ":" + table + ":" + column
}

// Exists implements slug.ExistenceChecker.
func (r *Redis) Exists(ctx context.Context, table, column, candidate string, excludeKey any) (bool, error) {
	if err := validIdentifiers(table, column); err != nil {
		return false, err
	}

	owner, err := r.client.HGet(ctx, r.key(table, column), candidate).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Join(ErrCheckFailed, err)
	}

	if excludeKey != nil && owner == keyString(excludeKey) {
		return false, nil
	}
	return true, nil
}

// Claim stores slug for key unless another key already owns it.
// Claiming a slug the key already owns succeeds.
func (r *Redis) Claim(ctx context.Context, table, column, slug string, key any) (bool, error) {
	if err := validIdentifiers(table, column); err != nil {
		return false, err
	}

	hash := r.key(table, column)
	owner := keyString(key)

	ok, err := r.client.HSetNX(ctx, hash, slug, owner).Result()
	if err != nil {
		return false, errors.Join(ErrCheckFailed, err)
	}
	if ok {
		return true, nil
	}

	current, err := r.client.HGet(ctx, hash, slug).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return false, errors.Join(ErrCheckFailed, err)
	}
	return current == owner, nil
}

// Release removes slug from the registry.
func (r *Redis) Release(ctx context.Context, table, column, slug string) error {
	if err := validIdentifiers(table, column); err != nil {
		return err
	}
	if err := r.client.HDel(ctx, r.key(table, column), slug).Err(); err != nil {
		return errors.Join(ErrCheckFailed, err)
	}
	return nil
}

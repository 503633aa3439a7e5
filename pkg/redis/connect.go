package redis

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Option configures a Redis connection.
type Option func(*options)

type options struct {
	poolSize      int
	minIdleConns  int
	readTimeout   time.Duration
	writeTimeout  time.Duration
	dialTimeout   time.Duration
	retryAttempts int
	retryInterval time.Duration
}

func defaultOptions() *options {
	return &options{
		poolSize:      10,
		minIdleConns:  2,
		readTimeout:   3 * time.Second,
		writeTimeout:  3 * time.Second,
		dialTimeout:   5 * time.Second,
		retryAttempts: 3,
		retryInterval: 5 * time.Second,
	}
}

// WithPoolSize sets the maximum pool size and the idle connections kept open.
// Default: 10 connections, 2 idle
func WithPoolSize(size, minIdle int) Option {
	return func(o *options) {
		if size > 0 {
			o.poolSize = size
		}
		if minIdle >= 0 {
			o.minIdleConns = minIdle
		}
	}
}

// WithTimeouts sets read, write and dial timeouts. Zero values keep the default.
// Default: 3s read, 3s write, 5s dial
func WithTimeouts(read, write, dial time.Duration) Option {
	return func(o *options) {
		if read > 0 {
			o.readTimeout = read
		}
		if write > 0 {
			o.writeTimeout = write
		}
		if dial > 0 {
			o.dialTimeout = dial
		}
	}
}

// WithRetry configures startup retry behavior.
// Default: 3 attempts, 5 second base interval with linear backoff.
func WithRetry(attempts int, interval time.Duration) Option {
	return func(o *options) {
		o.retryAttempts = attempts
		o.retryInterval = interval
	}
}

// Open creates a Redis client and pings it before returning.
// Supports redis:// and rediss:// (TLS) URLs.
func Open(ctx context.Context, url string, opts ...Option) (redis.UniversalClient, error) {
	if url == "" {
		return nil, ErrEmptyConnectionURL
	}
	if !strings.HasPrefix(url, "redis://") && !strings.HasPrefix(url, "rediss://") {
		return nil, ErrFailedToParseURL
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	redisOpts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseURL, err)
	}

	redisOpts.PoolSize = o.poolSize
	redisOpts.MinIdleConns = o.minIdleConns
	redisOpts.ReadTimeout = o.readTimeout
	redisOpts.WriteTimeout = o.writeTimeout
	redisOpts.DialTimeout = o.dialTimeout

	return connect(ctx, redisOpts, o.retryAttempts, o.retryInterval)
}

// New opens a client from cfg.
func New(ctx context.Context, cfg Config) (redis.UniversalClient, error) {
	return Open(ctx, cfg.URL, cfg.Options()...)
}

func connect(ctx context.Context, opts *redis.Options, attempts int, interval time.Duration) (redis.UniversalClient, error) {
	attempts = max(attempts, 1)

	var lastErr error
	for i := range attempts {
		client := redis.NewClient(opts)

		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			return client, nil
		}

		_ = client.Close()

		if waitErr := wait(ctx, time.Duration(i+1)*interval); waitErr != nil {
			return nil, errors.Join(ErrConnectionFailed, waitErr)
		}
	}

	return nil, errors.Join(ErrConnectionFailed, lastErr)
}

func wait(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

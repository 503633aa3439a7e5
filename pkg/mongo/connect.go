package mongo

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Option configures a MongoDB connection.
type Option func(*connOptions)

type connOptions struct {
	connectTimeout  time.Duration
	minPoolSize     uint64
	maxPoolSize     uint64
	maxConnIdleTime time.Duration
	retryAttempts   int
	retryInterval   time.Duration
}

func defaultOptions() *connOptions {
	return &connOptions{
		connectTimeout:  10 * time.Second,
		minPoolSize:     1,
		maxPoolSize:     100,
		maxConnIdleTime: 5 * time.Minute,
		retryAttempts:   3,
		retryInterval:   5 * time.Second,
	}
}

// WithConnectTimeout sets the timeout for establishing connections.
// Default: 10 seconds
func WithConnectTimeout(d time.Duration) Option {
	return func(o *connOptions) {
		if d > 0 {
			o.connectTimeout = d
		}
	}
}

// WithPoolSize sets the connection pool bounds.
// Default: 1..100
func WithPoolSize(minSize, maxSize uint64) Option {
	return func(o *connOptions) {
		o.minPoolSize = minSize
		if maxSize > 0 {
			o.maxPoolSize = maxSize
		}
	}
}

// WithMaxConnIdleTime sets how long an idle connection stays in the pool.
// Default: 5 minutes
func WithMaxConnIdleTime(d time.Duration) Option {
	return func(o *connOptions) {
		o.maxConnIdleTime = d
	}
}

// WithRetry configures connection retry behavior.
// Default: 3 attempts, 5 second base interval.
func WithRetry(attempts int, interval time.Duration) Option {
	return func(o *connOptions) {
		o.retryAttempts = attempts
		o.retryInterval = interval
	}
}

// Open connects to MongoDB and verifies the connection with a ping.
// Supports mongodb:// and mongodb+srv:// URLs.
func Open(ctx context.Context, url string, opts ...Option) (*mongo.Client, error) {
	if url == "" {
		return nil, ErrEmptyConnectionURL
	}
	if !strings.HasPrefix(url, "mongodb://") && !strings.HasPrefix(url, "mongodb+srv://") {
		return nil, ErrFailedToParseURL
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	clientOpts := options.Client().
		ApplyURI(url).
		SetConnectTimeout(o.connectTimeout).
		SetServerSelectionTimeout(o.connectTimeout).
		SetMinPoolSize(o.minPoolSize).
		SetMaxPoolSize(o.maxPoolSize).
		SetMaxConnIdleTime(o.maxConnIdleTime).
		SetRetryReads(true).
		SetRetryWrites(true)

	return connect(ctx, clientOpts, o.retryAttempts, o.retryInterval)
}

// New connects using cfg.
func New(ctx context.Context, cfg Config) (*mongo.Client, error) {
	return Open(ctx, cfg.URL, cfg.Options()...)
}

// NewWithDatabase connects using cfg and returns cfg.Database.
func NewWithDatabase(ctx context.Context, cfg Config) (*mongo.Database, error) {
	client, err := New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return client.Database(cfg.Database), nil
}

func connect(ctx context.Context, opts *options.ClientOptions, attempts int, interval time.Duration) (*mongo.Client, error) {
	attempts = max(attempts, 1)

	var lastErr error
	for i := range attempts {
		client, err := mongo.Connect(opts)
		if err != nil {
			// Invalid options never succeed on retry.
			return nil, errors.Join(ErrFailedToParseURL, err)
		}

		if lastErr = client.Ping(ctx, readpref.Primary()); lastErr == nil {
			return client, nil
		}

		_ = client.Disconnect(context.WithoutCancel(ctx))

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrConnectionFailed, ctx.Err())
		case <-time.After(time.Duration(i+1) * interval):
		}
	}

	return nil, errors.Join(ErrConnectionFailed, lastErr)
}

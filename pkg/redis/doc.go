// Package redis opens go-redis clients for the slug registry.
//
// Clients are pinged before Open returns. Startup failures are retried with
// linear backoff, which covers containers that start before Redis is ready.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.New(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	registry := slugstore.NewRedis(client, slugstore.WithPrefix(cfg.KeyPrefix))
//
// Or directly from a URL:
//
//	client, err := redis.Open(ctx, "redis://localhost:6379/0",
//		redis.WithPoolSize(20, 5),
//		redis.WithRetry(5, time.Second),
//	)
//
// [Healthcheck] plugs into health.Checks and [Shutdown] into
// server.WithShutdownHook.
//
// Environment variables:
//
//	REDIS_URL             (required)
//	REDIS_POOL_SIZE       (default: 10)
//	REDIS_MIN_IDLE_CONNS  (default: 2)
//	REDIS_READ_TIMEOUT    (default: 3s)
//	REDIS_WRITE_TIMEOUT   (default: 3s)
//	REDIS_DIAL_TIMEOUT    (default: 5s)
//	REDIS_RETRY_ATTEMPTS  (default: 3)
//	REDIS_RETRY_INTERVAL  (default: 5s)
//	REDIS_SLUG_PREFIX     (default: slugs)
package redis

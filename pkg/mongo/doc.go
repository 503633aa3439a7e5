// Package mongo opens MongoDB clients with retry and exposes health checks
// and shutdown hooks for the slugd daemon.
//
// Connecting from environment:
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	db, err := mongo.NewWithDatabase(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	checker := slugstore.NewMongo(db)
//
// Connecting from a URL:
//
//	client, err := mongo.Open(ctx, "mongodb://localhost:27017",
//		mongo.WithRetry(5, 2*time.Second),
//	)
//
// Open pings the server before returning, retrying with linear backoff, so a
// returned client is known to be usable.
//
// Environment variables:
//
//	MONGODB_URL                 (required)
//	MONGODB_DATABASE            (default: slugkit)
//	MONGODB_CONNECT_TIMEOUT     (default: 10s)
//	MONGODB_MAX_POOL_SIZE       (default: 100)
//	MONGODB_MIN_POOL_SIZE       (default: 1)
//	MONGODB_MAX_CONN_IDLE_TIME  (default: 300s)
//	MONGODB_RETRY_ATTEMPTS      (default: 3)
//	MONGODB_RETRY_INTERVAL      (default: 5s)
package mongo

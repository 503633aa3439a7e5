// Package db opens the relational databases slugd checks slugs against.
//
// PostgreSQL is reached through a pgx pool:
//
//	var cfg db.Config
//	config.MustLoad(&cfg)
//
//	pool, err := db.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := db.Migrate(ctx, pool, reservation.Migrations, "migrations", cfg.MigrationsTable, log); err != nil {
//		return err
//	}
//
// Connect retries with linear backoff and pings before returning. Migrate
// runs goose over an fs.FS, so schemas ship embedded in the binary.
//
// SQLite is opened with [OpenSQLite] using the pure-Go modernc.org/sqlite
// driver, which needs no cgo.
//
// [WithTx] wraps a function in a transaction. [Healthcheck] and
// [SQLHealthcheck] plug into health.Checks and [Shutdown] into
// server.WithShutdownHook.
//
// Environment variables:
//
//	DATABASE_URL                 (required)
//	DATABASE_MIGRATIONS_TABLE    (default: slugkit_migrations)
//	DATABASE_MAX_CONNS           (default: 10)
//	DATABASE_MIN_CONNS           (default: 2)
//	DATABASE_HEALTHCHECK_PERIOD  (default: 1m)
//	DATABASE_MAX_CONN_IDLE_TIME  (default: 10m)
//	DATABASE_MAX_CONN_LIFETIME   (default: 30m)
//	DATABASE_RETRY_ATTEMPTS      (default: 3)
//	DATABASE_RETRY_INTERVAL      (default: 5s)
package db

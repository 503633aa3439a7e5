package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/slugkit/internal/reservation"
	"github.com/dmitrymomot/slugkit/pkg/config"
	"github.com/dmitrymomot/slugkit/pkg/db"
	"github.com/dmitrymomot/slugkit/pkg/health"
	"github.com/dmitrymomot/slugkit/pkg/mongo"
	"github.com/dmitrymomot/slugkit/pkg/redis"
	"github.com/dmitrymomot/slugkit/pkg/slug"
	"github.com/dmitrymomot/slugkit/pkg/slugstore"
)

var errUnknownStore = errors.New("slugd: unknown store")

// backend is the opened slug store plus what the server needs around it.
type backend struct {
	checker      slug.ExistenceChecker
	reservations *reservation.Service
	checks       health.Checks
	closers      []func(context.Context) error
}

func (b *backend) close(ctx context.Context) error {
	var errs []error
	for _, fn := range b.closers {
		errs = append(errs, fn(ctx))
	}
	return errors.Join(errs...)
}

// openBackend connects the store selected by cfg.Store. On error every
// connection opened so far is closed.
func openBackend(ctx context.Context, cfg Config, n *slug.Normalizer, log *slog.Logger) (*backend, error) {
	b := &backend{checks: health.Checks{}}

	var err error
	switch cfg.Store {
	case storeMemory:
		b.checker = slugstore.NewMemory()
	case storePostgres:
		err = b.openPostgres(ctx, cfg, n, log)
	case storeSQLite:
		err = b.openSQLite(ctx, cfg)
	case storeRedis:
		err = b.openRedis(ctx)
	case storeMongo:
		err = b.openMongo(ctx, cfg)
	default:
		err = fmt.Errorf("%w: %q", errUnknownStore, cfg.Store)
	}
	if err != nil {
		return nil, errors.Join(err, b.close(ctx))
	}
	return b, nil
}

func (b *backend) openPostgres(ctx context.Context, cfg Config, n *slug.Normalizer, log *slog.Logger) error {
	var dbCfg db.Config
	if err := config.Load(&dbCfg); err != nil {
		return err
	}

	pool, err := db.Connect(ctx, dbCfg)
	if err != nil {
		return err
	}
	b.closers = append(b.closers, db.Shutdown(pool))
	b.checks[storePostgres] = db.Healthcheck(pool)

	if err := db.Migrate(ctx, pool, reservation.Migrations, reservation.MigrationsDir, dbCfg.MigrationsTable, log); err != nil {
		return err
	}

	b.checker = slugstore.NewPostgres(pool, slugstore.WithKeyColumn(cfg.KeyColumn))
	b.reservations = reservation.NewService(reservation.NewStore(pool), n, cfg.Slug.Defaults(),
		reservation.WithLogger(log),
		reservation.WithResolverOptions(cfg.Slug.ResolverOptions(log)...),
	)
	return nil
}

func (b *backend) openSQLite(ctx context.Context, cfg Config) error {
	sqlDB, err := db.OpenSQLite(ctx, cfg.SQLitePath)
	if err != nil {
		return err
	}
	b.closers = append(b.closers, func(context.Context) error { return sqlDB.Close() })
	b.checks[storeSQLite] = db.SQLHealthcheck(sqlDB)

	b.checker = slugstore.NewSQL(sqlDB, slugstore.WithSQLKeyColumn(cfg.KeyColumn))
	return nil
}

func (b *backend) openRedis(ctx context.Context) error {
	var redisCfg redis.Config
	if err := config.Load(&redisCfg); err != nil {
		return err
	}

	client, err := redis.New(ctx, redisCfg)
	if err != nil {
		return err
	}
	b.closers = append(b.closers, redis.Shutdown(client))
	b.checks[storeRedis] = redis.Healthcheck(client)

	b.checker = slugstore.NewRedis(client, slugstore.WithPrefix(redisCfg.KeyPrefix))
	return nil
}

func (b *backend) openMongo(ctx context.Context, cfg Config) error {
	var mongoCfg mongo.Config
	if err := config.Load(&mongoCfg); err != nil {
		return err
	}

	client, err := mongo.New(ctx, mongoCfg)
	if err != nil {
		return err
	}
	b.closers = append(b.closers, mongo.Shutdown(client))
	b.checks[storeMongo] = mongo.Healthcheck(client)

	b.checker = slugstore.NewMongo(client.Database(mongoCfg.Database), slugstore.WithKeyField(cfg.MongoKeyField))
	return nil
}

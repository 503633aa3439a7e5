package db

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrymomot/slugkit/pkg/logger"
)

// goose keeps its settings in package globals.
var migrateMu sync.Mutex

// Migrate applies every pending goose migration found in dir of migrations,
// recording versions in table. The reservation package ships its schema as
// an embedded FS for this.
func Migrate(ctx context.Context, pool *pgxpool.Pool, migrations fs.FS, dir, table string, log *slog.Logger) error {
	if migrations == nil {
		return ErrNoMigrations
	}
	if log == nil {
		log = logger.NewNope()
	}

	migrateMu.Lock()
	defer migrateMu.Unlock()

	// Shares the pool's connections, so it is not closed here.
	sqlDB := stdlib.OpenDBFromPool(pool)

	goose.SetBaseFS(migrations)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(&gooseLogger{log})
	goose.SetTableName(table)

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrSetDialect, err)
	}

	if dir == "" {
		dir = "."
	}
	if err := goose.UpContext(ctx, sqlDB, dir); err != nil {
		return errors.Join(ErrApplyMigrations, err)
	}

	return nil
}

// gooseLogger routes goose output to slog. Fatalf only logs: goose also
// returns the error, and exiting here would skip shutdown hooks.
type gooseLogger struct {
	log *slog.Logger
}

func (g *gooseLogger) Printf(format string, args ...any) {
	g.log.Info(fmt.Sprintf(format, args...))
}

func (g *gooseLogger) Fatalf(format string, args ...any) {
	g.log.Error(fmt.Sprintf(format, args...))
}

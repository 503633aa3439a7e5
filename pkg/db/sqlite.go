package db

import (
	"context"
	"database/sql"
	"errors"

	_ "modernc.org/sqlite"
)

// OpenSQLite opens a SQLite database through the pure-Go modernc driver and
// pings it. Use ":memory:" for a throwaway database; in that case the pool is
// limited to one connection because every connection gets its own database.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Join(ErrFailedToOpenDBConnection, err)
	}
	if path == ":memory:" {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, errors.Join(ErrFailedToOpenDBConnection, err)
	}
	return sqlDB, nil
}

// SQLHealthcheck returns a function that pings a database/sql handle.
func SQLHealthcheck(sqlDB *sql.DB) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := sqlDB.PingContext(ctx); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}

package db

import "errors"

var (
	ErrFailedToParseDBConfig    = errors.New("db: failed to parse database configuration")
	ErrFailedToOpenDBConnection = errors.New("db: failed to open database connection")
	ErrHealthcheckFailed        = errors.New("db: healthcheck failed")

	ErrNoMigrations    = errors.New("db: no migrations filesystem")
	ErrSetDialect      = errors.New("db: failed to set migration dialect")
	ErrApplyMigrations = errors.New("db: failed to apply migrations")
)

package main

import (
	"time"

	"github.com/dmitrymomot/slugkit/pkg/logger"
	"github.com/dmitrymomot/slugkit/pkg/slug"
)

// Store backends selectable with SLUGD_STORE.
const (
	storeMemory   = "memory"
	storePostgres = "postgres"
	storeSQLite   = "sqlite"
	storeRedis    = "redis"
	storeMongo    = "mongo"
)

// Config is the daemon configuration. Backend connection settings are
// loaded separately, only for the selected store.
type Config struct {
	Addr            string        `env:"SLUGD_ADDR" envDefault:":8080"`
	Store           string        `env:"SLUGD_STORE" envDefault:"memory"`
	AllowedTables   []string      `env:"SLUGD_ALLOWED_TABLES" envSeparator:","`
	KeyColumn       string        `env:"SLUGD_KEY_COLUMN" envDefault:"id"`
	MongoKeyField   string        `env:"SLUGD_MONGO_KEY_FIELD" envDefault:"_id"`
	SQLitePath      string        `env:"SQLITE_PATH" envDefault:"slugkit.db"`
	ShutdownTimeout time.Duration `env:"SLUGD_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	HealthTimeout   time.Duration `env:"SLUGD_HEALTH_TIMEOUT" envDefault:"5s"`
	BatchWorkers    int           `env:"SLUGD_BATCH_CONCURRENCY" envDefault:"8"`

	Log  logger.Config
	Slug slug.Config
}

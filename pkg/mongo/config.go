package mongo

import "time"

// Config holds MongoDB connection parameters loaded from the environment.
type Config struct {
	URL      string `env:"MONGODB_URL,required"`
	Database string `env:"MONGODB_DATABASE" envDefault:"slugkit"`

	ConnectTimeout  time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
	MaxPoolSize     uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"100"`
	MinPoolSize     uint64        `env:"MONGODB_MIN_POOL_SIZE" envDefault:"1"`
	MaxConnIdleTime time.Duration `env:"MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s"`

	// Atlas clusters can take several seconds to accept connections after a cold start.
	RetryAttempts int           `env:"MONGODB_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval time.Duration `env:"MONGODB_RETRY_INTERVAL" envDefault:"5s"`
}

// Options converts the config into Open options.
func (c Config) Options() []Option {
	return []Option{
		WithConnectTimeout(c.ConnectTimeout),
		WithPoolSize(c.MinPoolSize, c.MaxPoolSize),
		WithMaxConnIdleTime(c.MaxConnIdleTime),
		WithRetry(c.RetryAttempts, c.RetryInterval),
	}
}

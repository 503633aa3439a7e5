package redis

import "time"

// Config holds Redis connection parameters loaded from the environment.
type Config struct {
	URL string `env:"REDIS_URL,required"`

	PoolSize     int `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns int `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`

	ReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" envDefault:"3s"`
	DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`

	RetryAttempts int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`

	// Prefix of the slug registry hashes.
	KeyPrefix string `env:"REDIS_SLUG_PREFIX" envDefault:"slugs"`
}

// Options converts the config into Open options.
func (c Config) Options() []Option {
	return []Option{
		WithPoolSize(c.PoolSize, c.MinIdleConns),
		WithTimeouts(c.ReadTimeout, c.WriteTimeout, c.DialTimeout),
		WithRetry(c.RetryAttempts, c.RetryInterval),
	}
}

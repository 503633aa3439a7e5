package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var ErrParse = errors.New("config: failed to parse environment")

var (
	dotenvOnce sync.Once

	mu    sync.Mutex
	cache = map[reflect.Type]any{}
)

// Load parses environment variables into cfg, a pointer to a struct.
// The first successful load of a type is cached and copied into later calls.
func Load[T any](cfg *T) error {
	dotenvOnce.Do(func() {
		// A missing .env file is the normal case in production.
		_ = godotenv.Load()
	})

	typ := reflect.TypeFor[T]()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache[typ]; ok {
		*cfg = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParse, err)
	}

	cache[typ] = parsed
	*cfg = parsed
	return nil
}

// MustLoad is Load that panics on error.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// Reset drops cached values so the next Load parses the environment again.
func Reset() {
	mu.Lock()
	clear(cache)
	mu.Unlock()
}

package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// dotenvOnce loads .env files exactly once per process.
	dotenvOnce sync.Once

	// cache holds one loaded value per configuration type.
	cache sync.Map // reflect.Type -> value
)

// ErrNilConfig is returned when Load is called with a nil pointer.
var ErrNilConfig = errors.New("config: nil target")

// Load populates cfg from environment variables, loading .env files on
// first use. Each configuration type is parsed once; later calls for the
// same type return the cached value.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	dotenvOnce.Do(func() {
		// Missing .env files are fine; the environment may be set directly.
		_ = godotenv.Load()
	})

	t := reflect.TypeOf(*cfg)
	if v, ok := cache.Load(t); ok {
		*cfg = v.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", t, err)
	}

	v, _ := cache.LoadOrStore(t, *cfg)
	*cfg = v.(T)
	return nil
}

// MustLoad is Load that panics on failure, intended for application
// startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

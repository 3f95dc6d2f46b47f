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
	mu     sync.RWMutex
	cache  = make(map[string]any)
	envced sync.Once
)

// Load parses environment variables into the provided struct based on its
// `env` field tags. The default .env file is loaded once per process before
// the first parse; a missing .env file is not an error. Each unique struct
// type is parsed only once and cached for the lifetime of the process.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	envced.Do(func() {
		// The .env file is optional, used for local development only.
		_ = godotenv.Load()
	})

	key := typeName[T]()

	mu.RLock()
	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		mu.RUnlock()
		return nil
	}
	mu.RUnlock()

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	mu.Lock()
	// Store a copy so callers cannot mutate the cached value.
	cache[key] = *v
	mu.Unlock()

	return nil
}

// MustLoad works like Load but panics if parsing fails. Use for configuration
// the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: failed to load %s: %v", typeName[T](), err))
	}
}

// LoadEnv loads one or more .env files into the process environment before
// any config struct is parsed. Intended for tests and non-default file paths.
func LoadEnv(files ...string) error {
	return godotenv.Load(files...)
}

// ResetCache clears all cached configuration values. Intended for tests that
// mutate the environment between loads.
func ResetCache() {
	mu.Lock()
	cache = make(map[string]any)
	mu.Unlock()
}

func typeName[T any]() string {
	var zero T
	if t := reflect.TypeOf(zero); t != nil {
		return t.String()
	}
	return fmt.Sprintf("%T", *new(T))
}

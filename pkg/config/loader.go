package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type options struct {
	files   []string
	prefix  string
	environ map[string]string
}

// Option customises Load.
type Option func(*options)

// WithEnvFiles replaces the default ".env" with the given files. Missing
// files are skipped; unreadable or invalid ones fail the load.
func WithEnvFiles(files ...string) Option {
	return func(o *options) { o.files = files }
}

// WithPrefix prepends prefix to every variable name.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnviron parses from the given map instead of the process environment.
// Env files are not read in this mode.
func WithEnviron(environ map[string]string) Option {
	return func(o *options) { o.environ = environ }
}

// Load parses the environment into a new T.
func Load[T any](opts ...Option) (T, error) {
	var cfg T

	o := options{files: []string{".env"}}
	for _, opt := range opts {
		opt(&o)
	}

	if o.environ == nil {
		for _, f := range o.files {
			if err := loadEnvFile(f); err != nil {
				return cfg, err
			}
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      o.prefix,
		Environment: o.environ,
	}); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}

	return cfg, nil
}

// MustLoad is like Load but panics on error. Meant for main.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return cfg
}

func loadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Join(ErrEnvFile, fmt.Errorf("%s: %w", path, err))
	}
	return nil
}

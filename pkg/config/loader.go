package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read when no WithEnvFiles option is given.
const DefaultEnvFile = ".env"

// Option configures Load.
type Option func(*options)

type options struct {
	files       []string
	environment map[string]string
}

// WithEnvFiles sets the dotenv files to read. Missing files are skipped;
// earlier files take precedence over later ones.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.files = paths
	}
}

// WithEnvironment replaces the process environment. Dotenv files are still merged underneath.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) {
		o.environment = vars
	}
}

// Load parses environment variables into v according to its env struct tags.
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{files: []string{DefaultEnvFile}}
	for _, opt := range opts {
		opt(o)
	}

	vars, err := readEnvFiles(o.files)
	if err != nil {
		return err
	}

	current := o.environment
	if current == nil {
		current = env.ToMap(os.Environ())
	}
	for k, val := range current {
		vars[k] = val
	}

	if err := env.ParseWithOptions(v, env.Options{
		Environment: vars,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

func readEnvFiles(paths []string) (map[string]string, error) {
	vars := make(map[string]string)
	for i := len(paths) - 1; i >= 0; i-- {
		fileVars, err := godotenv.Read(paths[i])
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("%w: %s: %v", ErrReadingEnvFile, paths[i], err)
		}
		for k, val := range fileVars {
			vars[k] = val
		}
	}
	return vars, nil
}

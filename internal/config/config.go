// Package config loads docreduce settings from defaults, an optional YAML
// file and DOCREDUCE_* environment variables, in that order of precedence
// (later wins), then validates the result.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/roach88/docreduce/internal/engine"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "DOCREDUCE_"

// Backend names an operation log implementation.
const (
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
)

// Config holds process settings.
type Config struct {
	// Database is the SQLite file or the Badger directory.
	Database string `yaml:"database" env:"DATABASE" validate:"required"`

	Backend string `yaml:"backend" env:"BACKEND" validate:"oneof=sqlite badger"`

	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT" validate:"oneof=text json"`

	// MetricsFile, when set, receives the Prometheus text exposition after
	// each command (node_exporter textfile collector format).
	MetricsFile string `yaml:"metrics_file" env:"METRICS_FILE"`

	// MaxRecords caps history length per document. Zero disables the cap.
	MaxRecords int64 `yaml:"max_records" env:"MAX_RECORDS" validate:"gte=0"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Database:   "docreduce.db",
		Backend:    BackendSQLite,
		LogLevel:   "info",
		LogFormat:  "text",
		MaxRecords: engine.DefaultMaxRecords,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads path (skipped when empty) and the process environment.
func Load(path string) (Config, error) {
	return LoadWith(path, env.ToMap(os.Environ()))
}

// LoadWith is Load with an explicit environment, for tests.
func LoadWith(path string, environ map[string]string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := readFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s fails %q (got %v)", fe.Field(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

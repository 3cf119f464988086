// Package config loads the cubetimer YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/cubetimer/internal/scramble"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the on-disk configuration.
type Config struct {
	// DBPath is the scramble-set database. Empty means the default location.
	DBPath   string         `yaml:"db_path"`
	Scramble ScrambleConfig `yaml:"scramble"`
}

// ScrambleConfig holds defaults for scramble generation.
type ScrambleConfig struct {
	Kind        string `yaml:"kind" validate:"required,oneof=competition practice long"`
	Count       int    `yaml:"count" validate:"min=1,max=1000"`
	MaxAttempts int    `yaml:"max_attempts" validate:"min=1"`
	Seed        int64  `yaml:"seed"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Scramble: ScrambleConfig{
			Kind:        string(scramble.KindCompetition),
			Count:       1,
			MaxAttempts: scramble.DefaultMaxAttempts,
		},
	}
}

// DefaultPath returns ~/.cubetimer/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cubetimer", "config.yaml"), nil
}

// Load reads the file at path over the defaults. A missing file yields the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Kind returns the configured scramble kind.
func (c *Config) Kind() scramble.Kind {
	return scramble.Kind(c.Scramble.Kind)
}

// GeneratorOptions returns generator options from the configuration.
func (c *Config) GeneratorOptions() *scramble.Options {
	return &scramble.Options{
		Seed:        c.Scramble.Seed,
		MaxAttempts: c.Scramble.MaxAttempts,
	}
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

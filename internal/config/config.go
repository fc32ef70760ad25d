package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/averycrespi/polycalc/internal/repl"
	"github.com/averycrespi/polycalc/internal/store"
	"github.com/averycrespi/polycalc/pkg/types"
)

const (
	// EnvPrefix prefixes every environment variable read by Load
	EnvPrefix = "POLYCALC_"

	DefaultLogLevel     = "warn"
	DefaultAbortKeyword = repl.DefaultAbortKeyword
)

var ErrUnsupportedFormat = errors.New("unsupported config file format")

// Default returns the configuration used when no file or environment overrides are given
func Default() types.Config {
	return types.Config{
		LogLevel:            DefaultLogLevel,
		AbortKeyword:        DefaultAbortKeyword,
		MaxIdentifierLength: store.DefaultMaxIdentifierLength,
	}
}

// Load builds the configuration from defaults, the file at path (if not
// empty) and POLYCALC_* environment variables, in that order of precedence.
func Load(path string) (types.Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return types.Config{}, err
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return types.Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *types.Config) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return fmt.Errorf("failed to parse YAML config %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(content), cfg); err != nil {
			return fmt.Errorf("failed to parse TOML config %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return nil
}

// Validate checks that every field holds a usable value
func Validate(cfg types.Config) error {
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", cfg.LogLevel, err)
	}
	if strings.TrimSpace(cfg.AbortKeyword) == "" {
		return errors.New("abort_keyword must not be empty")
	}
	if cfg.MaxIdentifierLength < 1 {
		return fmt.Errorf("max_identifier_length must be positive, got %d", cfg.MaxIdentifierLength)
	}
	return nil
}

// Package config loads jot settings from an optional YAML file, a .env
// file and the process environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	// DefaultFile is read when present in the working directory.
	DefaultFile = "jot.yaml"
	// EnvConfig names an explicit config file.
	EnvConfig = "JOT_CONFIG"
)

// Log formats understood by the logging package.
const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

// Config holds the settings resolved from file, .env and environment.
type Config struct {
	File         string `yaml:"file" env:"JOT_FILE" env-description:"Path of the notes store (default: nearest notes.json)"`
	LogLevel     string `yaml:"log_level" env:"JOT_LOG_LEVEL" env-default:"warn" env-description:"debug, info, warn or error"`
	LogFormat    string `yaml:"log_format" env:"JOT_LOG_FORMAT" env-default:"pretty" env-description:"pretty or json"`
	LogFile      string `yaml:"log_file" env:"JOT_LOG_FILE" env-description:"Rotated log file, in addition to stderr"`
	AtomicWrites bool   `yaml:"atomic_writes" env:"JOT_ATOMIC_WRITES" env-description:"Save through a temp file and rename"`
	OnCorrupt    string `yaml:"on_corrupt" env:"JOT_ON_CORRUPT" env-default:"fail" env-description:"fail or empty, for a store that does not parse"`
	Styled       bool   `yaml:"styled" env:"JOT_STYLED" env-description:"Render lists with colors and previews"`
}

// Load resolves the configuration. path overrides JOT_CONFIG; when both are
// empty jot.yaml is used if it exists. A named file that is missing is an error.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	explicit := true
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		path, explicit = DefaultFile, false
	}

	var cfg Config
	if _, err := os.Stat(path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, fmt.Errorf("parse env: %w", err)
		}
		return cfg, cfg.Validate()
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the enumerated fields. The corrupt policy is checked by
// the store itself.
func (c Config) Validate() error {
	switch c.LogFormat {
	case FormatPretty, FormatJSON:
	default:
		return fmt.Errorf("invalid log_format %q (want %s or %s)", c.LogFormat, FormatPretty, FormatJSON)
	}
	return nil
}

// Describe returns the environment variable reference.
func Describe() (string, error) {
	header := "Environment variables:"
	return cleanenv.GetDescription(&Config{}, &header)
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/project-banner/internal/logger"
)

// Config holds runtime settings shared by the project-banner commands.
type Config struct {
	// LogLevel is the minimum level written to stderr.
	LogLevel string `yaml:"log_level"`
	// Output is the default format of the info subcommand.
	Output string `yaml:"output"`
	// Manifest is an optional path to a metadata manifest used instead of
	// the values compiled into the binary.
	Manifest string `yaml:"manifest,omitempty"`
}

const (
	// DefaultConfigFilename is the default filename for settings.
	DefaultConfigFilename = "project-banner.yaml"

	// DefaultLogLevel keeps a normal run silent on stderr.
	DefaultLogLevel = "warn"

	// DefaultOutput is the default format of the info subcommand.
	DefaultOutput = "text"

	// DefaultFilePermissions is the default file permission for written files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errInvalidLogLevel is returned when the log level cannot be parsed.
	errInvalidLogLevel = errors.New("invalid log level")
)

// Default returns settings used when no configuration file is present.
func Default() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		Output:   DefaultOutput,
	}
}

// Load reads configuration from the provided path and validates it.
// An empty path falls back to DefaultConfigFilename; if that file does not
// exist the defaults are returned. A missing explicit path is an error.
func Load(path string) (*Config, error) {
	implicit := path == ""
	if implicit {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if implicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings and fills in defaults.
// The output format is checked by the command that uses it.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	settings.LogLevel = strings.ToLower(strings.TrimSpace(settings.LogLevel))
	if settings.LogLevel == "" {
		settings.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(settings.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errInvalidLogLevel, settings.LogLevel)
	}

	settings.Output = strings.ToLower(strings.TrimSpace(settings.Output))
	if settings.Output == "" {
		settings.Output = DefaultOutput
	}

	return nil
}

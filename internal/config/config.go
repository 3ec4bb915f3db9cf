// Package config loads the patrol CLI run configuration from YAML.
//
// Example file:
//
//	workers: 8
//	log:
//	  level: debug
//	  format: json
//
// Missing keys keep their Default values; unknown keys are rejected.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/patrol/internal/logging"
)

// Sentinel errors for configuration loading.
var (
	// ErrConfigNotFound indicates the config file does not exist.
	ErrConfigNotFound = errors.New("config: file not found")
	// ErrInvalidFormat indicates the file is not valid YAML for Config.
	ErrInvalidFormat = errors.New("config: invalid format")
	// ErrInvalidConfig indicates a value outside its allowed range.
	ErrInvalidConfig = errors.New("config: invalid value")
)

// Config is the run configuration.
type Config struct {
	// Workers bounds concurrent candidate runs; 0 means one per CPU.
	Workers int `yaml:"workers"`

	Log LogConfig `yaml:"log"`
}

// LogConfig selects the logger level and output format.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	d := logging.DefaultConfig()
	return Config{
		Workers: 0,
		Log:     LogConfig{Level: d.Level, Format: d.Format},
	}
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative (%d)", ErrInvalidConfig, c.Workers)
	}
	if !logging.ValidLevel(c.Log.Level) {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Log.Level)
	}
	if !logging.ValidFormat(c.Log.Format) {
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// Loader loads Config from files or readers.
type Loader struct {
	// ExpandEnv enables ${VAR} and $VAR expansion before decoding.
	ExpandEnv bool
}

// LoaderOption configures the loader.
type LoaderOption func(*Loader)

// WithEnvExpansion enables or disables environment variable expansion.
func WithEnvExpansion(enabled bool) LoaderOption {
	return func(l *Loader) {
		l.ExpandEnv = enabled
	}
}

// NewLoader creates a loader; environment expansion is on by default.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{ExpandEnv: true}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadFile loads and validates configuration from path.
func (l *Loader) LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	return l.Load(f)
}

// Load decodes YAML from r on top of Default and validates the result.
// An empty document yields Default.
func (l *Loader) Load(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("config: read: %w", err)
	}
	text := string(data)
	if l.ExpandEnv {
		text = os.ExpandEnv(text)
	}

	cfg := Default()
	dec := yaml.NewDecoder(strings.NewReader(text))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadString loads configuration from a string.
func (l *Loader) LoadString(content string) (Config, error) {
	return l.Load(strings.NewReader(content))
}

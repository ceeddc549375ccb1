// Package config loads the studio configuration. Values are layered from
// lowest to highest precedence: defaults, a YAML file, environment
// variables and finally command-line flags (applied by the caller).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/recipestudio/internal/domain"
	"github.com/hammamikhairi/recipestudio/internal/logger"
	"github.com/hammamikhairi/recipestudio/internal/ollama"
)

// DefaultPath is read when no --config flag is given. A missing file is
// not an error.
const DefaultPath = "recipestudio.yaml"

// Environment variable names.
const (
	EnvURL         = "OLLAMA_URL"
	EnvModel       = "OLLAMA_MODEL"
	EnvTimeout     = "RECIPE_STUDIO_TIMEOUT"
	EnvTemperature = "RECIPE_STUDIO_TEMPERATURE"
	EnvStream      = "RECIPE_STUDIO_STREAM"
)

// Config is the whole studio configuration.
type Config struct {
	Ollama  OllamaConfig `yaml:"ollama"`
	Log     LogConfig    `yaml:"log"`
	Offline bool         `yaml:"offline"`
}

// OllamaConfig configures the model transport.
type OllamaConfig struct {
	Endpoint    string        `yaml:"endpoint"`
	Model       string        `yaml:"model"`
	Timeout     time.Duration `yaml:"timeout"`
	Temperature float64       `yaml:"temperature"`
	Stream      bool          `yaml:"stream"`
}

// LogConfig configures the log file and verbosity.
type LogConfig struct {
	File    string `yaml:"file"`    // "stderr" logs to the console
	Verbose bool   `yaml:"verbose"` // include debug output
	Quiet   bool   `yaml:"quiet"`   // disable logging
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Ollama: OllamaConfig{
			Endpoint:    ollama.DefaultEndpoint,
			Model:       ollama.DefaultModel,
			Timeout:     ollama.DefaultTimeout,
			Temperature: ollama.DefaultTemperature,
		},
		Log: LogConfig{
			File: ".recipestudio/studio.log",
		},
	}
}

// Load reads path over the defaults and then applies the environment.
// When required is false a missing file is ignored.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w: %w", path, domain.ErrInvalidConfig, err)
		}
	case errors.Is(err, os.ErrNotExist) && !required:
		// Defaults only.
	default:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables read through
// getenv. Unset or empty variables are ignored.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvURL); v != "" {
		c.Ollama.Endpoint = v
	}
	if v := getenv(EnvModel); v != "" {
		c.Ollama.Model = v
	}
	if v := getenv(EnvTimeout); v != "" {
		d, err := parseTimeout(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvTimeout, v, domain.ErrInvalidConfig)
		}
		c.Ollama.Timeout = d
	}
	if v := getenv(EnvTemperature); v != "" {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvTemperature, v, domain.ErrInvalidConfig)
		}
		c.Ollama.Temperature = t
	}
	if v := getenv(EnvStream); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvStream, v, domain.ErrInvalidConfig)
		}
		c.Ollama.Stream = b
	}
	return nil
}

// parseTimeout accepts a Go duration ("90s") or a bare number of seconds.
func parseTimeout(s string) (time.Duration, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	secs, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return time.Duration(secs * float64(time.Second)), nil
}

// Validate reports the first invalid setting. Every error wraps
// domain.ErrInvalidConfig.
func (c *Config) Validate() error {
	if !c.Offline {
		if c.Ollama.Endpoint == "" {
			return fmt.Errorf("config: ollama endpoint is empty: %w", domain.ErrInvalidConfig)
		}
		if c.Ollama.Model == "" {
			return fmt.Errorf("config: ollama model is empty: %w", domain.ErrInvalidConfig)
		}
	}
	if c.Ollama.Timeout <= 0 {
		return fmt.Errorf("config: timeout must be positive, got %s: %w", c.Ollama.Timeout, domain.ErrInvalidConfig)
	}
	if c.Ollama.Temperature < 0 || c.Ollama.Temperature > 2 {
		return fmt.Errorf("config: temperature must be within [0, 2], got %g: %w", c.Ollama.Temperature, domain.ErrInvalidConfig)
	}
	if c.Log.Verbose && c.Log.Quiet {
		return fmt.Errorf("config: verbose and quiet are mutually exclusive: %w", domain.ErrInvalidConfig)
	}
	return nil
}

// LogLevel maps the log settings onto a logger level.
func (c *Config) LogLevel() logger.Level {
	switch {
	case c.Log.Quiet:
		return logger.LevelOff
	case c.Log.Verbose:
		return logger.LevelVerbose
	default:
		return logger.LevelNormal
	}
}

// ClientOptions turns the transport settings into ollama client options.
func (c *Config) ClientOptions() []ollama.ClientOption {
	return []ollama.ClientOption{
		ollama.WithModel(c.Ollama.Model),
		ollama.WithTemperature(c.Ollama.Temperature),
		ollama.WithHTTPTimeout(c.Ollama.Timeout),
		ollama.WithStream(c.Ollama.Stream),
	}
}

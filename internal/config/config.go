package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	BackendHTTP    = "http"
	BackendCommand = "command"

	DefaultBackendURL     = "http://127.0.0.1:8787"
	DefaultTimeoutSeconds = 120
	DefaultLogFile        = "styleguide-extractor.log"
	DefaultDisplayStyle   = "dark"
)

// Config is the application configuration. Values come from an optional
// YAML file, then the environment (and a .env file), then command-line flags.
type Config struct {
	Backend BackendConfig `yaml:"backend"`
	Log     LogConfig     `yaml:"log"`
	Display DisplayConfig `yaml:"display"`
}

type BackendConfig struct {
	Kind            string   `yaml:"kind"`
	URL             string   `yaml:"url"`
	Command         []string `yaml:"command"`
	TimeoutSeconds  int      `yaml:"timeout_seconds"`
	CacheTTLSeconds int      `yaml:"cache_ttl_seconds"`
}

type LogConfig struct {
	File  string `yaml:"file"`
	Debug bool   `yaml:"debug"`
}

type DisplayConfig struct {
	// Style is a glamour standard style name.
	Style string `yaml:"style"`
}

// Timeout returns the backend timeout as a duration.
func (b BackendConfig) Timeout() time.Duration {
	return time.Duration(b.TimeoutSeconds) * time.Second
}

// CacheTTL returns how long successful documents are reused; zero disables
// the cache.
func (b BackendConfig) CacheTTL() time.Duration {
	return time.Duration(b.CacheTTLSeconds) * time.Second
}

// Load reads path (if non-empty), applies environment overrides and fills in
// defaults. A missing .env file is not an error. The result is not validated
// so that callers can apply their own overrides first.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %q: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg.WithDefaults(), nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("STYLEGUIDE_BACKEND_KIND"); v != "" {
		c.Backend.Kind = v
	}
	if v := os.Getenv("STYLEGUIDE_BACKEND_URL"); v != "" {
		c.Backend.URL = v
	}
	if v := os.Getenv("STYLEGUIDE_BACKEND_COMMAND"); v != "" {
		c.Backend.Command = strings.Fields(v)
	}
	if v := os.Getenv("STYLEGUIDE_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv("STYLEGUIDE_DISPLAY_STYLE"); v != "" {
		c.Display.Style = v
	}

	var err error
	if c.Backend.TimeoutSeconds, err = envInt("STYLEGUIDE_BACKEND_TIMEOUT", c.Backend.TimeoutSeconds); err != nil {
		return err
	}
	if c.Backend.CacheTTLSeconds, err = envInt("STYLEGUIDE_CACHE_TTL", c.Backend.CacheTTLSeconds); err != nil {
		return err
	}
	if v := os.Getenv("STYLEGUIDE_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid STYLEGUIDE_DEBUG %q: %w", v, err)
		}
		c.Log.Debug = debug
	}
	return nil
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

// WithDefaults fills in unset values.
func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	if strings.TrimSpace(c.Backend.Kind) == "" {
		c.Backend.Kind = BackendHTTP
	}
	c.Backend.Kind = strings.ToLower(strings.TrimSpace(c.Backend.Kind))
	if c.Backend.URL == "" {
		c.Backend.URL = DefaultBackendURL
	}
	if c.Backend.TimeoutSeconds <= 0 {
		c.Backend.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if c.Backend.CacheTTLSeconds < 0 {
		c.Backend.CacheTTLSeconds = 0
	}
	if c.Log.File == "" {
		c.Log.File = DefaultLogFile
	}
	if c.Display.Style == "" {
		c.Display.Style = DefaultDisplayStyle
	}
	return c
}

// Validate reports configuration that cannot be used.
func (c *Config) Validate() error {
	switch c.Backend.Kind {
	case BackendHTTP:
	case BackendCommand:
		if len(c.Backend.Command) == 0 {
			return errors.New("backend.command is required when backend.kind is \"command\"")
		}
	default:
		return fmt.Errorf("unknown backend.kind %q (must be %q or %q)", c.Backend.Kind, BackendHTTP, BackendCommand)
	}
	return nil
}

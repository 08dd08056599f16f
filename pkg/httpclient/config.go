package httpclient

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"
)

// DefaultTimeout is applied to every request issued through a Client.
const DefaultTimeout = "5000ms"

// ErrBaseURLRequired indicates that no base URL was configured or provided by the environment.
var ErrBaseURLRequired = errors.New("base_url required")

// Config holds the shared client settings.
type Config struct {
	BaseURL string `toml:"base_url"`
	Timeout string `toml:"timeout"`
}

// Env maps environment variable names for client configuration.
type Env struct {
	BaseURL string
	Timeout string
}

// TimeoutDuration parses and returns the request timeout as a time.Duration.
func (c *Config) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
// The base URL has no fallback: it must come from the file or the environment.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies non-zero values from the overlay configuration.
func (c *Config) Merge(overlay *Config) {
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}

func (c *Config) loadDefaults() {
	if c.Timeout == "" {
		c.Timeout = DefaultTimeout
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.BaseURL != "" {
		if v := os.Getenv(env.BaseURL); v != "" {
			c.BaseURL = v
		}
	}
	if env.Timeout != "" {
		if v := os.Getenv(env.Timeout); v != "" {
			c.Timeout = v
		}
	}
}

func (c *Config) validate() error {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("timeout must be positive")
	}

	if c.BaseURL == "" {
		return ErrBaseURLRequired
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid base_url: scheme must be http or https")
	}
	if u.Host == "" {
		return fmt.Errorf("invalid base_url: host required")
	}
	return nil
}

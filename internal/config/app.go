package config

import (
	"fmt"
	"os"
	"time"

	"github.com/JaimeStill/graph-vis/pkg/httpclient"
)

// AppConfig configures the web application module. APITimeout is the
// request timeout handed to the browser views.
type AppConfig struct {
	BasePath   string `toml:"base_path"`
	APITimeout string `toml:"api_timeout"`
}

func (c *AppConfig) APITimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.APITimeout)
	return d
}

func (c *AppConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

func (c *AppConfig) Merge(overlay *AppConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.APITimeout != "" {
		c.APITimeout = overlay.APITimeout
	}
}

func (c *AppConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/app"
	}
	if c.APITimeout == "" {
		c.APITimeout = httpclient.DefaultTimeout
	}
}

func (c *AppConfig) loadEnv() {
	if v := os.Getenv("APP_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("APP_API_TIMEOUT"); v != "" {
		c.APITimeout = v
	}
}

func (c *AppConfig) validate() error {
	if err := validateBasePath(c.BasePath); err != nil {
		return err
	}
	d, err := time.ParseDuration(c.APITimeout)
	if err != nil {
		return fmt.Errorf("invalid api_timeout: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("api_timeout must be positive")
	}
	return nil
}

package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/content"
)

// Config holds all application configuration. Values come from the
// environment; main autoloads a .env file first.
type Config struct {
	// Server settings
	Port            string        `env:"PORT" envDefault:"8080"`
	GinMode         string        `env:"GIN_MODE" envDefault:"release"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Content. An empty ContentFile serves the content built into the binary.
	ContentFile  string `env:"FOLIO_CONTENT_FILE"`
	WatchContent bool   `env:"FOLIO_WATCH_CONTENT" envDefault:"false"`
	AssetsDir    string `env:"FOLIO_ASSETS_DIR" envDefault:"public"`
	MediaPolicy  string `env:"FOLIO_MEDIA_POLICY" envDefault:"omit"`

	// Static export
	OutputDir string `env:"FOLIO_OUTPUT_DIR" envDefault:"dist"`
	BaseURL   string `env:"FOLIO_BASE_URL" envDefault:"/"`
}

// Load parses the environment into a validated Config.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values env tags cannot express.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("invalid GIN_MODE %q: must be debug, release or test", c.GinMode)
	}
	if _, err := c.Media(); err != nil {
		return err
	}
	if c.WatchContent && c.ContentFile == "" {
		return fmt.Errorf("FOLIO_WATCH_CONTENT requires FOLIO_CONTENT_FILE")
	}
	if u, err := url.Parse(c.BaseURL); err != nil || u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("invalid FOLIO_BASE_URL %q: want a path prefix or an absolute URL without query or fragment", c.BaseURL)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// Addr is the listen address for Port.
func (c *Config) Addr() string {
	if c.Port[0] == ':' {
		return c.Port
	}
	return ":" + c.Port
}

// Media parses MediaPolicy.
func (c *Config) Media() (content.MediaPolicy, error) {
	return content.ParseMediaPolicy(c.MediaPolicy)
}

package httpclient

import (
	"fmt"
	"time"
)

const (
	defaultTimeout = 30 * time.Second

	// DefaultAccept is the media type the Fidor API versions its responses by.
	DefaultAccept = "application/vnd.fidor.de; version=1,text/json"
)

// Config configures the HTTP client.
type Config struct {
	// Name identifies the client in logs and spans.
	Name string `yaml:"name" mapstructure:"name"`

	// BaseURL is the base URL prepended to all request paths.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Timeout is the default request timeout. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Auth configures default authentication applied to all requests.
	// Individual requests can override this.
	Auth *AuthConfig `yaml:"-" mapstructure:"-"`

	// UserAgent is sent with every request when set.
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`

	// Headers are default headers applied to all requests.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.Name == "" {
		c.Name = "fidor"
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("httpclient: timeout must be positive")
	}
	if c.Auth != nil && c.Auth.Type == AuthBearer && c.Auth.Token == "" {
		return fmt.Errorf("httpclient: bearer auth requires a token")
	}
	return nil
}

package config

import (
	"fmt"
	"time"

	"github.com/kbukum/fidor/httpclient"
	"github.com/kbukum/fidor/logger"
	"github.com/kbukum/fidor/validation"
	"github.com/kbukum/fidor/version"
)

const (
	// DefaultBaseURL is the production API host.
	DefaultBaseURL = "https://aps.fidor.de"
	// SandboxBaseURL is the sandbox API host.
	SandboxBaseURL = "https://aps.fidor.de/sandbox"

	defaultTimeout = 30 * time.Second
)

// Config is the client configuration.
type Config struct {
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"required,url"`
	// AccessToken is the OAuth bearer token; obtaining it is out of scope.
	AccessToken string            `yaml:"access_token" mapstructure:"access_token" validate:"required"`
	Timeout     time.Duration     `yaml:"timeout" mapstructure:"timeout" validate:"gt=0"`
	UserAgent   string            `yaml:"user_agent" mapstructure:"user_agent"`
	Headers     map[string]string `yaml:"headers" mapstructure:"headers"`
	Logging     logger.Config     `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults fills zero-value fields.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = version.UserAgent()
	}
	// the client is silent unless logging is configured
	if c.Logging.Level == "" {
		c.Logging.Level = "disabled"
	}
	c.Logging.ApplyDefaults()
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}

// HTTPClient converts the configuration into transport settings.
func (c *Config) HTTPClient() httpclient.Config {
	return httpclient.Config{
		Name:      "fidor",
		BaseURL:   c.BaseURL,
		Timeout:   c.Timeout,
		Auth:      httpclient.BearerAuth(c.AccessToken),
		UserAgent: c.UserAgent,
		Headers:   c.Headers,
	}
}

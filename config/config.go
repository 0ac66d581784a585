package config

import (
	"time"

	"github.com/kbukum/restkit/logger"
	"github.com/kbukum/restkit/validation"
)

// SigningConfig configures SigV4 request signing.
type SigningConfig struct {
	// Service is the signing service name (e.g., "execute-api").
	Service string `yaml:"service" mapstructure:"service"`
	// Region is the AWS region the credentials are scoped to.
	Region string `yaml:"region" mapstructure:"region"`
}

// ClientConfig is the full configuration for a restkit REST client.
type ClientConfig struct {
	// ServiceURL is the scheme and host of the target service,
	// e.g. "http://backend.internal".
	ServiceURL string `yaml:"service_url" mapstructure:"service_url" validate:"required,url"`

	// ServicePort is the default port. Zero means no port segment in URLs.
	ServicePort int `yaml:"service_port" mapstructure:"service_port" validate:"omitempty,min=1,max=65535"`

	// APIPrefix is prepended to every endpoint path, e.g. "/v1".
	APIPrefix string `yaml:"api_prefix" mapstructure:"api_prefix"`

	// Timeout is the per-request timeout. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are default headers applied to every request.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Signing configures SigV4 signing; empty region disables it.
	Signing SigningConfig `yaml:"signing" mapstructure:"signing"`

	// Logging configures client logging.
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *ClientConfig) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.Signing.Service == "" {
		c.Signing.Service = "execute-api"
	}
	c.Logging.ApplyDefaults()
}

// Validate checks that the configuration is valid.
func (c *ClientConfig) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	return c.Logging.Validate()
}

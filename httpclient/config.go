package httpclient

import (
	"fmt"
	"time"

	"github.com/kbukum/restkit/logger"
	"github.com/kbukum/restkit/observability"
)

const defaultTimeout = 30 * time.Second

// Config configures the HTTP transport.
type Config struct {
	// BaseURL is prepended to relative request URLs. Requests carrying a
	// full URL ignore it.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Timeout is the default request timeout. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are default headers applied to all requests. A header
	// already present on a request is never overwritten.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Logger receives request/response debug logging. Nil uses the
	// global logger.
	Logger *logger.Logger `yaml:"-" mapstructure:"-"`

	// Metrics records request counters and durations. Nil disables
	// metric recording.
	Metrics *observability.RequestMetrics `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.Logger == nil {
		c.Logger = logger.GetGlobalLogger().WithComponent("httpclient")
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("httpclient: timeout must be positive")
	}
	return nil
}

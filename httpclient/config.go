package httpclient

import (
	"fmt"
	"strings"
	"time"

	"github.com/kbukum/ndex-go/validation"
	"github.com/kbukum/ndex-go/version"
)

const (
	defaultTimeout = 30 * time.Second
	defaultName    = "ndex"
)

// Config configures a connection to one NDEx server.
type Config struct {
	// Name identifies the connection in logs and health reports. Defaults to "ndex".
	Name string `yaml:"name" mapstructure:"name"`

	// BaseURL is prepended verbatim to every request path,
	// e.g. "https://www.ndexbio.org/v2".
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"required,url"`

	// Backend selects the transport implementation. Defaults to pooled.
	Backend Backend `yaml:"backend" mapstructure:"backend" validate:"omitempty,oneof=pooled simple lowlevel"`

	// Timeout bounds each call. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Proxy routes calls through an HTTP proxy. Nil connects directly.
	Proxy *ProxyConfig `yaml:"proxy" mapstructure:"proxy"`

	// TLS configures HTTPS verification. Nil uses the system roots.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`

	// Auth sets the Authorization header on every call. Nil sends none.
	Auth *AuthConfig `yaml:"-" mapstructure:"-"`

	// Headers are sent with every call.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// UserAgent overrides the default "ndex-go/<version>".
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = defaultName
	}
	if c.Backend == "" {
		c.Backend = BackendPooled
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = version.UserAgent()
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return err
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("httpclient: timeout must be positive")
	}
	if c.Proxy != nil {
		if err := c.Proxy.Validate(); err != nil {
			return err
		}
	}
	return c.TLS.Validate()
}

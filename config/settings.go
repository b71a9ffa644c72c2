package config

import (
	"fmt"
	"time"

	"github.com/kbukum/ndex-go/httpclient"
	"github.com/kbukum/ndex-go/logger"
)

// Settings is the file and environment form of a client configuration.
//
//	base_url: https://www.ndexbio.org/v2
//	backend: pooled
//	timeout: 30s
//	username: alice
//	password: secret
//	proxy:
//	  host: proxy.local
//	  port: 3128
//	tls:
//	  ca_file: /etc/ndex/ca.pem
//	logging:
//	  level: debug
//
// Every key can be overridden by NDEX_<KEY>, e.g. NDEX_PROXY_PORT.
type Settings struct {
	Name      string                 `yaml:"name" mapstructure:"name"`
	BaseURL   string                 `yaml:"base_url" mapstructure:"base_url"`
	Backend   string                 `yaml:"backend" mapstructure:"backend"`
	Timeout   time.Duration          `yaml:"timeout" mapstructure:"timeout"`
	Username  string                 `yaml:"username" mapstructure:"username"`
	Password  string                 `yaml:"password" mapstructure:"password"`
	Token     string                 `yaml:"token" mapstructure:"token"`
	Headers   map[string]string      `yaml:"headers" mapstructure:"headers"`
	UserAgent string                 `yaml:"user_agent" mapstructure:"user_agent"`
	Proxy     httpclient.ProxyConfig `yaml:"proxy" mapstructure:"proxy"`
	TLS       httpclient.TLSConfig   `yaml:"tls" mapstructure:"tls"`
	Logging   logger.Config          `yaml:"logging" mapstructure:"logging"`
}

// LoadSettings loads, defaults and validates Settings.
func LoadSettings(opts ...LoaderOption) (*Settings, error) {
	var s Settings
	if err := Load(&s, opts...); err != nil {
		return nil, err
	}
	s.ApplyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ApplyDefaults applies default values. Connection defaults are left to
// httpclient.Config.
func (s *Settings) ApplyDefaults() {
	s.Logging.ApplyDefaults()
}

// Validate checks the settings that httpclient.Config cannot check itself.
func (s *Settings) Validate() error {
	if s.BaseURL == "" {
		return fmt.Errorf("config.base_url is required")
	}
	if s.Token != "" && (s.Username != "" || s.Password != "") {
		return fmt.Errorf("config: token and username/password are mutually exclusive")
	}
	if s.Password != "" && s.Username == "" {
		return fmt.Errorf("config.username is required when a password is set")
	}
	if _, err := httpclient.ParseBackend(s.Backend); err != nil {
		return fmt.Errorf("config.backend: %w", err)
	}
	if err := s.TLS.Validate(); err != nil {
		return fmt.Errorf("config.tls: %w", err)
	}
	if err := s.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}

// ClientConfig converts the settings into an httpclient.Config.
func (s *Settings) ClientConfig() (httpclient.Config, error) {
	backend, err := httpclient.ParseBackend(s.Backend)
	if err != nil {
		return httpclient.Config{}, err
	}

	cfg := httpclient.Config{
		Name:      s.Name,
		BaseURL:   s.BaseURL,
		Backend:   backend,
		Timeout:   s.Timeout,
		Headers:   s.Headers,
		UserAgent: s.UserAgent,
	}
	switch {
	case s.Token != "":
		cfg.Auth = httpclient.BearerAuth(s.Token)
	case s.Username != "":
		cfg.Auth = httpclient.BasicAuth(s.Username, s.Password)
	}
	if s.Proxy.Host != "" || s.Proxy.FromEnvironment {
		proxy := s.Proxy
		cfg.Proxy = &proxy
	}
	if s.TLS != (httpclient.TLSConfig{}) {
		tlsCfg := s.TLS
		cfg.TLS = &tlsCfg
	}
	return cfg, nil
}

// InitLogger configures the global logger from the logging settings.
func (s *Settings) InitLogger() error {
	return logger.Init(s.Logging)
}

package httpclient

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/net/http/httpproxy"
)

// ProxyConfig routes calls through an HTTP proxy.
type ProxyConfig struct {
	// Host and Port name an explicit proxy. It is used for every call,
	// including local addresses.
	Host string `yaml:"host" mapstructure:"host"`
	Port int    `yaml:"port" mapstructure:"port" validate:"omitempty,gte=1,lte=65535"`

	// Username and Password are sent as Proxy-Authorization when set.
	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`

	// FromEnvironment resolves the proxy per call from HTTP_PROXY,
	// HTTPS_PROXY and NO_PROXY instead of Host/Port.
	FromEnvironment bool `yaml:"from_environment" mapstructure:"from_environment"`
}

// Validate checks that an explicit proxy has both host and port.
func (p *ProxyConfig) Validate() error {
	if p.FromEnvironment {
		return nil
	}
	if p.Host == "" {
		return fmt.Errorf("httpclient: proxy host is required")
	}
	if p.Port <= 0 || p.Port > 65535 {
		return fmt.Errorf("httpclient: proxy port must be between 1 and 65535 (got %d)", p.Port)
	}
	return nil
}

// URL returns the explicit proxy URL, http://[user:pass@]host:port.
func (p *ProxyConfig) URL() *url.URL {
	u := &url.URL{
		Scheme: "http",
		Host:   net.JoinHostPort(p.Host, strconv.Itoa(p.Port)),
	}
	if p.Username != "" {
		u.User = url.UserPassword(p.Username, p.Password)
	}
	return u
}

// proxyFunc returns the per-request proxy resolver, or nil for direct connections.
func (p *ProxyConfig) proxyFunc() func(*url.URL) (*url.URL, error) {
	if p == nil {
		return nil
	}
	if p.FromEnvironment {
		return httpproxy.FromEnvironment().ProxyFunc()
	}
	fixed := p.URL()
	return func(*url.URL) (*url.URL, error) { return fixed, nil }
}

// httpProxy adapts proxyFunc to http.Transport.Proxy.
func (p *ProxyConfig) httpProxy() func(*http.Request) (*url.URL, error) {
	fn := p.proxyFunc()
	if fn == nil {
		return nil
	}
	return func(r *http.Request) (*url.URL, error) { return fn(r.URL) }
}

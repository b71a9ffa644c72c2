package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/ndex-go/httpclient"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return p
}

func TestLoadSettingsFromYAML(t *testing.T) {
	path := writeFile(t, "ndex.yml", `
base_url: https://www.ndexbio.org/v2
backend: simple
timeout: 10s
username: alice
password: secret
headers:
  X-Client: test
proxy:
  host: proxy.local
  port: 3128
logging:
  level: debug
`)

	s, err := LoadSettings(WithConfigFile(path), WithEnvFile("/nonexistent/.env"))
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if s.BaseURL != "https://www.ndexbio.org/v2" {
		t.Errorf("expected base URL, got %q", s.BaseURL)
	}
	if s.Timeout != 10*time.Second {
		t.Errorf("expected 10s, got %v", s.Timeout)
	}
	if s.Proxy.Host != "proxy.local" || s.Proxy.Port != 3128 {
		t.Errorf("unexpected proxy %+v", s.Proxy)
	}
	if s.Logging.Level != "debug" || s.Logging.Format != "console" {
		t.Errorf("unexpected logging %+v", s.Logging)
	}
	// viper lower-cases map keys.
	if s.Headers["x-client"] != "test" {
		t.Errorf("expected header, got %v", s.Headers)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "ndex.yml", "base_url: http://file.invalid\nbackend: simple\nproxy:\n  host: file-proxy\n  port: 80\n")
	t.Setenv("NDEX_BASE_URL", "http://env.invalid/v2")
	t.Setenv("NDEX_PROXY_PORT", "8080")
	t.Setenv("NDEX_PROXY_FROM_ENVIRONMENT", "true")
	t.Setenv("NDEX_TIMEOUT", "2s")

	var s Settings
	if err := Load(&s, WithConfigFile(path), WithEnvFile("/nonexistent/.env")); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.BaseURL != "http://env.invalid/v2" {
		t.Errorf("expected env base URL, got %q", s.BaseURL)
	}
	if s.Backend != "simple" {
		t.Errorf("expected file backend to survive, got %q", s.Backend)
	}
	if s.Proxy.Host != "file-proxy" || s.Proxy.Port != 8080 || !s.Proxy.FromEnvironment {
		t.Errorf("unexpected proxy %+v", s.Proxy)
	}
	if s.Timeout != 2*time.Second {
		t.Errorf("expected 2s, got %v", s.Timeout)
	}
}

func TestLoadDotEnv(t *testing.T) {
	const key = "NDEX_TOKEN"
	if _, set := os.LookupEnv(key); set {
		t.Skipf("%s is already set", key)
	}
	t.Cleanup(func() { os.Unsetenv(key) })

	env := writeFile(t, ".env", key+"=from-dotenv\n")
	var s Settings
	if err := Load(&s, WithConfigFile("/nonexistent/ndex.yml"), WithEnvFile(env)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Token != "from-dotenv" {
		t.Errorf("expected token from .env, got %q", s.Token)
	}
}

func TestLoadMissingFiles(t *testing.T) {
	var s Settings
	err := Load(&s, WithConfigFile("/nonexistent/ndex.yml"), WithEnvFile("/nonexistent/.env"))
	if err != nil {
		t.Fatalf("expected Load to succeed with missing files, got %v", err)
	}
}

func TestLoadBrokenFile(t *testing.T) {
	path := writeFile(t, "ndex.yml", "base_url: [unclosed\n")
	var s Settings
	if err := Load(&s, WithConfigFile(path)); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestSettingsValidate(t *testing.T) {
	base := func() Settings {
		s := Settings{BaseURL: "http://localhost/v2"}
		s.ApplyDefaults()
		return s
	}
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr string
	}{
		{"valid", func(*Settings) {}, ""},
		{"missing base url", func(s *Settings) { s.BaseURL = "" }, "base_url is required"},
		{"token and password", func(s *Settings) { s.Token = "t"; s.Username = "u" }, "mutually exclusive"},
		{"password without user", func(s *Settings) { s.Password = "p" }, "username is required"},
		{"unknown backend", func(s *Settings) { s.Backend = "curl" }, "config.backend"},
		{"client cert without key", func(s *Settings) { s.TLS.CertFile = "client.pem" }, "config.tls"},
		{"bad log level", func(s *Settings) { s.Logging.Level = "loud" }, "config.logging"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := base()
			tc.mutate(&s)
			err := s.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestClientConfig(t *testing.T) {
	t.Run("basic auth and proxy", func(t *testing.T) {
		s := Settings{
			BaseURL:  "http://localhost/v2",
			Backend:  "LowLevel",
			Username: "alice",
			Password: "secret",
			Proxy:    httpclient.ProxyConfig{Host: "proxy", Port: 3128},
		}
		cfg, err := s.ClientConfig()
		if err != nil {
			t.Fatalf("ClientConfig failed: %v", err)
		}
		if cfg.Backend != httpclient.BackendLowLevel {
			t.Errorf("expected lowlevel, got %s", cfg.Backend)
		}
		if cfg.Auth.Type() != httpclient.AuthBasic || cfg.Auth.Username() != "alice" {
			t.Errorf("unexpected auth %s", cfg.Auth)
		}
		if cfg.Proxy == nil || cfg.Proxy.Host != "proxy" {
			t.Errorf("unexpected proxy %+v", cfg.Proxy)
		}
		cfg.ApplyDefaults()
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected a valid client config, got %v", err)
		}
	})

	t.Run("bearer without proxy", func(t *testing.T) {
		s := Settings{BaseURL: "http://localhost/v2", Token: "tok"}
		cfg, err := s.ClientConfig()
		if err != nil {
			t.Fatalf("ClientConfig failed: %v", err)
		}
		if cfg.Auth.Type() != httpclient.AuthBearer {
			t.Errorf("expected bearer auth, got %s", cfg.Auth.Type())
		}
		if cfg.Proxy != nil {
			t.Errorf("expected direct connection, got %+v", cfg.Proxy)
		}
		if cfg.TLS != nil {
			t.Errorf("expected default TLS, got %+v", cfg.TLS)
		}
		if cfg.Backend != httpclient.BackendPooled {
			t.Errorf("expected pooled default, got %s", cfg.Backend)
		}
	})

	t.Run("tls", func(t *testing.T) {
		s := Settings{BaseURL: "https://ndex.local/v2", TLS: httpclient.TLSConfig{CAFile: "/etc/ndex/ca.pem", ServerName: "ndex.local"}}
		cfg, err := s.ClientConfig()
		if err != nil {
			t.Fatalf("ClientConfig failed: %v", err)
		}
		if cfg.TLS == nil || cfg.TLS.CAFile != "/etc/ndex/ca.pem" || cfg.TLS.ServerName != "ndex.local" {
			t.Errorf("unexpected TLS %+v", cfg.TLS)
		}
	})

	t.Run("anonymous", func(t *testing.T) {
		cfg, err := (&Settings{BaseURL: "http://localhost/v2"}).ClientConfig()
		if err != nil {
			t.Fatalf("ClientConfig failed: %v", err)
		}
		if cfg.Auth != nil {
			t.Errorf("expected no auth, got %s", cfg.Auth)
		}
	})
}

func TestEnvKeyVariants(t *testing.T) {
	tests := []struct {
		key  string
		want []string
	}{
		{"TIMEOUT", []string{"timeout"}},
		{"BASE_URL", []string{"base_url", "base.url"}},
		{"PROXY_FROM_ENVIRONMENT", []string{"proxy_from_environment", "proxy.from.environment", "proxy.from_environment"}},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			got := envKeyVariants(tc.key)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

type mockFS struct {
	files map[string]bool
}

func (m *mockFS) Exists(path string) bool   { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error { return nil }

func TestResolverWithMockFS(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./config/ndex.yml": true,
		"./.env":            true,
	}}
	files := (&Resolver{FileSystem: fs}).ResolveFiles(LoaderConfig{})
	if files.ConfigFile != "./config/ndex.yml" {
		t.Errorf("expected ./config/ndex.yml, got %q", files.ConfigFile)
	}
	if files.EnvFile != "./.env" {
		t.Errorf("expected ./.env, got %q", files.EnvFile)
	}

	files = (&Resolver{FileSystem: fs}).ResolveFiles(LoaderConfig{ConfigFile: "explicit.yml"})
	if files.ConfigFile != "explicit.yml" {
		t.Errorf("expected explicit path to win, got %q", files.ConfigFile)
	}
}

func TestLoaderOptions(t *testing.T) {
	var lc LoaderConfig
	WithFileSystem(&mockFS{})(&lc)
	WithConfigFile("/path/to/ndex.yml")(&lc)
	WithEnvFile("/path/to/.env")(&lc)
	if lc.FileSystem == nil || lc.ConfigFile != "/path/to/ndex.yml" || lc.EnvFile != "/path/to/.env" {
		t.Errorf("unexpected loader config %+v", lc)
	}
}

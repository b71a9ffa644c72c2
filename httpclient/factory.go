package httpclient

import (
	"context"
	"sync"
	"time"

	"github.com/kbukum/ndex-go/logger"
)

// New validates cfg and builds a transport of the configured backend.
// Each call returns a new, independent transport.
func New(cfg Config, opts ...Option) (Transport, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o, err := buildOptions(&cfg, opts)
	if err != nil {
		return nil, err
	}
	return newBackend(&cfg, o), nil
}

func newBackend(cfg *Config, o options) Transport {
	switch cfg.Backend {
	case BackendSimple:
		return newSimple(cfg, o)
	case BackendLowLevel:
		return newLowLevel(cfg, o)
	default:
		return newPooled(cfg, o)
	}
}

// Factory hands out transports for one connection configuration. The pooled
// backend is created once and shared by every caller; the simple and
// lowlevel backends are built fresh on each GetOrCreate.
type Factory struct {
	cfg  Config
	opts options

	mu     sync.Mutex
	pooled Transport
}

// NewFactory validates cfg once and returns a Factory for it.
func NewFactory(cfg Config, opts ...Option) (*Factory, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o, err := buildOptions(&cfg, opts)
	if err != nil {
		return nil, err
	}
	f := &Factory{cfg: cfg, opts: o}

	if exp, ok := cfg.Auth.ExpiresAt(); ok && exp.Before(time.Now()) {
		f.opts.log.Warn("bearer token is expired", logger.Fields(
			logger.FieldBaseURL, cfg.BaseURL,
			"expired_at", exp.UTC().Format(time.RFC3339),
		))
	}
	return f, nil
}

// Config returns the validated configuration, with defaults applied.
func (f *Factory) Config() Config {
	return f.cfg
}

// GetOrCreate returns a transport for the configured backend.
func (f *Factory) GetOrCreate() (Transport, error) {
	if f.cfg.Backend != BackendPooled {
		return newBackend(&f.cfg, f.opts), nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pooled == nil {
		f.pooled = newBackend(&f.cfg, f.opts)
		f.opts.log.Debug("pooled transport created", logger.Fields(logger.FieldBaseURL, f.cfg.BaseURL))
	}
	return f.pooled, nil
}

// Close releases the cached pooled transport. A later GetOrCreate builds a
// new one.
func (f *Factory) Close(_ context.Context) error {
	f.mu.Lock()
	t := f.pooled
	f.pooled = nil
	f.mu.Unlock()

	if t == nil {
		return nil
	}
	return t.Close()
}

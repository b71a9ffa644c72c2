package httpclient

import (
	"crypto/tls"

	"github.com/kbukum/ndex-go/logger"
	"github.com/kbukum/ndex-go/observability"
)

// Option configures optional collaborators of a transport.
type Option func(*options)

type options struct {
	log     *logger.Logger
	metrics *observability.Metrics

	// tls is built once from Config.TLS by New and NewFactory.
	tls *tls.Config
}

// WithLogger sets the logger used for call and lifecycle logs.
// Defaults to the global logger tagged "httpclient".
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithMetrics records request counters and durations on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

func buildOptions(cfg *Config, opts []Option) (options, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.Get("httpclient")
	}
	tlsCfg, err := cfg.TLS.Build()
	if err != nil {
		return options{}, err
	}
	o.tls = tlsCfg
	return o, nil
}

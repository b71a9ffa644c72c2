package httpclient

import (
	"context"
	"io"
	"net/http"
)

// simpleSender uses a client built for one connection request. Keep-alives
// are off, the connection-wide headers are added by headerTransport and
// gzip is decoded transparently by net/http.
type simpleSender struct {
	client    *http.Client
	transport *http.Transport
}

func newSimple(cfg *Config, o options) *core {
	transport := &http.Transport{
		Proxy:             cfg.Proxy.httpProxy(),
		DisableKeepAlives: true,
		TLSClientConfig:   o.tls.Clone(),
	}
	s := &simpleSender{
		client: &http.Client{
			Transport: &headerTransport{base: transport, headers: baseHeaders(cfg)},
		},
		transport: transport,
	}
	return newCore(BackendSimple, cfg, s, o)
}

func (s *simpleSender) send(ctx context.Context, c *call) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, c.method, c.url, bodyReader(c.body))
	if err != nil {
		return nil, err
	}
	req.Header = c.extra.Clone()

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return newResponse(resp, body), nil
}

func (s *simpleSender) close() error {
	s.transport.CloseIdleConnections()
	return nil
}

// headerTransport adds default headers to every request that does not
// already carry them. Credentials are withheld from redirect hops that left
// the original host.
type headerTransport struct {
	base    http.RoundTripper
	headers http.Header
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not modify the caller's request.
	r := req.Clone(req.Context())
	h := t.headers
	if leftOrigin(req) {
		h = h.Clone()
		stripSensitive(h)
	}
	for k, v := range h {
		if _, ok := r.Header[k]; !ok {
			r.Header[k] = v
		}
	}
	return t.base.RoundTrip(r)
}

package httpclient

import (
	"context"
	"net/http"
)

// pooledSender keeps one http.Client, and therefore one keep-alive
// connection pool, for the lifetime of the transport. Compression is
// negotiated explicitly and decoded by readBody.
type pooledSender struct {
	client    *http.Client
	transport *http.Transport
}

func newPooled(cfg *Config, o options) *core {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = cfg.Proxy.httpProxy()
	transport.DisableCompression = true
	transport.TLSClientConfig = o.tls.Clone()

	s := &pooledSender{
		client:    &http.Client{Transport: transport},
		transport: transport,
	}
	return newCore(BackendPooled, cfg, s, o)
}

func (s *pooledSender) send(ctx context.Context, c *call) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, c.method, c.url, bodyReader(c.body))
	if err != nil {
		return nil, err
	}
	req.Header = c.header()
	req.Header.Set("Accept-Encoding", acceptEncoding)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := decodeBody(resp)
	if err != nil {
		return nil, err
	}
	return newResponse(resp, body), nil
}

func (s *pooledSender) close() error {
	s.transport.CloseIdleConnections()
	return nil
}

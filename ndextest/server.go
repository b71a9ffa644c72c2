package ndextest

import (
	"bytes"
	"crypto/x509"
	"encoding/pem"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Recorded is one request seen by the server.
type Recorded struct {
	Method   string
	Path     string
	RawQuery string
	// RequestURI is the target exactly as sent on the request line.
	RequestURI string
	Header     http.Header
	Body       []byte
}

// Option configures a Server.
type Option func(*Server)

// WithoutDefaults skips the default routes, leaving every path to the test.
func WithoutDefaults() Option {
	return func(s *Server) { s.defaults = false }
}

// WithTLS serves over HTTPS with a self-signed certificate.
func WithTLS() Option {
	return func(s *Server) { s.tls = true }
}

// Server is a fake NDEx server backed by httptest.Server and gin.
type Server struct {
	engine   *gin.Engine
	ts       *httptest.Server
	defaults bool
	tls      bool

	mu       sync.Mutex
	requests []Recorded
}

// New starts a fake server.
func New(opts ...Option) *Server {
	s := &Server{engine: gin.New(), defaults: true}
	for _, opt := range opts {
		opt(s)
	}

	s.engine.Use(gin.Recovery(), s.record)
	if s.defaults {
		s.registerDefaults()
	}

	if s.tls {
		s.ts = httptest.NewTLSServer(s.engine)
	} else {
		s.ts = httptest.NewServer(s.engine)
	}
	return s
}

// URL returns the server's base URL, e.g. "http://127.0.0.1:PORT".
func (s *Server) URL() string { return s.ts.URL }

// Client returns an http.Client that trusts the server's certificate.
func (s *Server) Client() *http.Client { return s.ts.Client() }

// CertPool returns a pool trusting the server's certificate, or nil when
// the server does not use TLS.
func (s *Server) CertPool() *x509.CertPool {
	cert := s.ts.Certificate()
	if cert == nil {
		return nil
	}
	pool := x509.NewCertPool()
	pool.AddCert(cert)
	return pool
}

// CertPEM returns the server's certificate PEM-encoded.
func (s *Server) CertPEM() []byte {
	cert := s.ts.Certificate()
	if cert == nil {
		return nil
	}
	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: cert.Raw})
}

// Close shuts the server down.
func (s *Server) Close() { s.ts.Close() }

// Handle registers a route. Path parameters use gin syntax (":id").
func (s *Server) Handle(method, path string, h gin.HandlerFunc) {
	s.engine.Handle(method, path, h)
}

// Stub registers a route that always answers status with body encoded as
// JSON. A nil body sends no content.
func (s *Server) Stub(method, path string, status int, body any) {
	s.engine.Handle(method, path, func(c *gin.Context) {
		if body == nil {
			c.Status(status)
			return
		}
		c.JSON(status, body)
	})
}

// StubText registers a route that answers with a text/plain body.
func (s *Server) StubText(method, path string, status int, text string) {
	s.engine.Handle(method, path, func(c *gin.Context) {
		c.String(status, text)
	})
}

// Requests returns a copy of every request recorded so far.
func (s *Server) Requests() []Recorded {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Recorded(nil), s.requests...)
}

// LastRequest returns the most recent request.
func (s *Server) LastRequest() (Recorded, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Recorded{}, false
	}
	return s.requests[len(s.requests)-1], true
}

// Reset forgets the recorded requests.
func (s *Server) Reset() {
	s.mu.Lock()
	s.requests = nil
	s.mu.Unlock()
}

// record captures the request and restores its body for the handler.
func (s *Server) record(c *gin.Context) {
	var body []byte
	if c.Request.Body != nil {
		body, _ = io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
	}

	s.mu.Lock()
	s.requests = append(s.requests, Recorded{
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		RawQuery:   c.Request.URL.RawQuery,
		RequestURI: c.Request.RequestURI,
		Header:     c.Request.Header.Clone(),
		Body:       body,
	})
	s.mu.Unlock()

	c.Next()
}

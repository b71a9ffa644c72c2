package httpclient

import (
	"bufio"
	"context"
	"crypto/tls"
	"encoding/base64"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"slices"
	"strconv"
	"time"

	"golang.org/x/net/http/httpguts"
)

// lowLevelSender speaks HTTP/1.1 directly over a net.Conn: one connection
// per call, the request written by hand, the response parsed with
// http.ReadResponse. HTTPS targets behind a proxy are reached with CONNECT.
type lowLevelSender struct {
	dialer *net.Dialer
	proxy  func(*url.URL) (*url.URL, error)
	tls    *tls.Config
}

func newLowLevel(cfg *Config, o options) *core {
	s := &lowLevelSender{
		dialer: &net.Dialer{Timeout: cfg.Timeout, KeepAlive: -1},
		proxy:  cfg.Proxy.proxyFunc(),
		tls:    o.tls,
	}
	return newCore(BackendLowLevel, cfg, s, o)
}

func (s *lowLevelSender) send(ctx context.Context, c *call) (*Response, error) {
	target, err := url.Parse(c.url)
	if err != nil {
		return nil, err
	}
	origin := target

	// Redirects are followed like net/http does for the other backends.
	for sent := 1; ; sent++ {
		resp, body, err := s.exchange(ctx, c, target)
		if err != nil {
			return nil, err
		}

		method, keepBody, ok := redirectMethod(resp.StatusCode, c.method)
		loc := resp.Header.Get("Location")
		if !ok || loc == "" {
			return newResponse(resp, body), nil
		}
		next, err := target.Parse(loc)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Location header %q: %w", loc, err)
		}
		if sent == maxRedirects {
			return nil, fmt.Errorf("stopped after %d redirects", maxRedirects)
		}
		c = c.redirect(method, next, keepBody, !sameHost(origin, next))
		target = next
	}
}

// exchange performs one request/response round trip on a new connection.
// The body is read fully and decoded before the connection is closed.
func (s *lowLevelSender) exchange(ctx context.Context, c *call, target *url.URL) (*http.Response, []byte, error) {
	if target.Scheme != "http" && target.Scheme != "https" {
		return nil, nil, fmt.Errorf("unsupported scheme %q", target.Scheme)
	}

	var proxyURL *url.URL
	if s.proxy != nil {
		var err error
		if proxyURL, err = s.proxy(target); err != nil {
			return nil, nil, fmt.Errorf("resolving proxy: %w", err)
		}
	}

	conn, err := s.dial(ctx, target, proxyURL)
	if err != nil {
		return nil, nil, err
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	stop := context.AfterFunc(ctx, func() { _ = conn.SetDeadline(time.Now()) })
	defer stop()

	// Plain HTTP through a proxy uses the absolute-form request target.
	viaProxy := proxyURL != nil && target.Scheme == "http"

	bw := bufio.NewWriter(conn)
	if err := writeRequest(bw, c, target, viaProxy, proxyURL); err != nil {
		return nil, nil, ctxErr(ctx, err)
	}

	resp, err := http.ReadResponse(bufio.NewReader(conn), &http.Request{Method: c.method})
	if err != nil {
		return nil, nil, ctxErr(ctx, err)
	}
	defer resp.Body.Close()

	body, err := decodeBody(resp)
	if err != nil {
		return nil, nil, ctxErr(ctx, err)
	}
	return resp, body, nil
}

func (s *lowLevelSender) close() error { return nil }

// dial connects to the target, directly or through proxyURL, and wraps the
// connection in TLS for https targets.
func (s *lowLevelSender) dial(ctx context.Context, target, proxyURL *url.URL) (net.Conn, error) {
	addr := hostPort(target)
	if proxyURL == nil {
		conn, err := s.dialer.DialContext(ctx, "tcp", addr)
		if err != nil {
			return nil, err
		}
		if target.Scheme == "https" {
			return s.handshake(ctx, conn, target)
		}
		return conn, nil
	}

	conn, err := s.dialer.DialContext(ctx, "tcp", hostPort(proxyURL))
	if err != nil {
		return nil, fmt.Errorf("connecting to proxy %s: %w", proxyURL.Host, err)
	}
	if target.Scheme == "http" {
		return conn, nil
	}
	if err := connectTunnel(conn, addr, proxyURL); err != nil {
		conn.Close()
		return nil, err
	}
	return s.handshake(ctx, conn, target)
}

func (s *lowLevelSender) handshake(ctx context.Context, conn net.Conn, target *url.URL) (net.Conn, error) {
	cfg := s.tls.Clone()
	if cfg.ServerName == "" {
		cfg.ServerName = target.Hostname()
	}
	tc := tls.Client(conn, cfg)
	if err := tc.HandshakeContext(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return tc, nil
}

// connectTunnel asks the proxy to open a tunnel to addr.
func connectTunnel(conn net.Conn, addr string, proxyURL *url.URL) error {
	bw := bufio.NewWriter(conn)
	fmt.Fprintf(bw, "CONNECT %s HTTP/1.1\r\nHost: %s\r\n", addr, addr)
	if auth := proxyAuthorization(proxyURL); auth != "" {
		fmt.Fprintf(bw, "Proxy-Authorization: %s\r\n", auth)
	}
	bw.WriteString("\r\n")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("proxy CONNECT: %w", err)
	}

	resp, err := http.ReadResponse(bufio.NewReader(conn), &http.Request{Method: http.MethodConnect})
	if err != nil {
		return fmt.Errorf("proxy CONNECT: %w", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("proxy CONNECT %s: %s", addr, resp.Status)
	}
	return nil
}

func writeRequest(bw *bufio.Writer, c *call, target *url.URL, viaProxy bool, proxyURL *url.URL) error {
	uri := target.RequestURI()
	if viaProxy {
		uri = target.String()
	}
	fmt.Fprintf(bw, "%s %s HTTP/1.1\r\n", c.method, uri)
	fmt.Fprintf(bw, "Host: %s\r\n", target.Host)

	h := c.header()
	h.Set("Accept-Encoding", acceptEncoding)
	h.Set("Connection", "close")
	if c.body != nil || c.method == http.MethodPost || c.method == http.MethodPut {
		h.Set("Content-Length", strconv.Itoa(len(c.body)))
	}
	if viaProxy {
		if auth := proxyAuthorization(proxyURL); auth != "" {
			h.Set("Proxy-Authorization", auth)
		}
	}

	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if !httpguts.ValidHeaderFieldName(k) {
			return fmt.Errorf("invalid header field name %q", k)
		}
		for _, v := range h[k] {
			if !httpguts.ValidHeaderFieldValue(v) {
				return fmt.Errorf("invalid header field value for %q", k)
			}
			fmt.Fprintf(bw, "%s: %s\r\n", k, v)
		}
	}
	bw.WriteString("\r\n")
	bw.Write(c.body)
	return bw.Flush()
}

func proxyAuthorization(proxyURL *url.URL) string {
	if proxyURL == nil || proxyURL.User == nil {
		return ""
	}
	pass, _ := proxyURL.User.Password()
	cred := proxyURL.User.Username() + ":" + pass
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(cred))
}

func hostPort(u *url.URL) string {
	if u.Port() != "" {
		return u.Host
	}
	port := "80"
	if u.Scheme == "https" {
		port = "443"
	}
	return net.JoinHostPort(u.Hostname(), port)
}

// ctxErr prefers the context error when a deadline tripped the connection.
func ctxErr(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if stderrors.Is(err, os.ErrDeadlineExceeded) {
		if _, ok := ctx.Deadline(); ok {
			return context.DeadlineExceeded
		}
	}
	return err
}

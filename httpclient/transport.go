package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/ndex-go/errors"
	"github.com/kbukum/ndex-go/logger"
	"github.com/kbukum/ndex-go/observability"
)

// Transport executes Requests against one NDEx server. Implementations are
// safe for concurrent use.
type Transport interface {
	// Execute sends req and returns the response envelope. Non-2xx responses
	// are returned as *errors.DomainError or *errors.TransportError.
	Execute(ctx context.Context, req *Request) (*Response, error)

	// Decode executes req and decodes the JSON body into out. An empty or
	// null body leaves out untouched.
	Decode(ctx context.Context, req *Request, out any) error

	// DecodeAcceptJSON is Decode with "Accept: application/json" added to
	// this call only.
	DecodeAcceptJSON(ctx context.Context, req *Request, out any) error

	// Kind reports which backend serves the calls.
	Kind() Backend

	// Close releases idle connections.
	Close() error
}

// Execute sends req and decodes the response into a T.
func Execute[T any](ctx context.Context, t Transport, req *Request) (T, error) {
	var out T
	err := t.Decode(ctx, req, &out)
	return out, err
}

// ExecuteAcceptJSON is Execute with "Accept: application/json" for this call.
func ExecuteAcceptJSON[T any](ctx context.Context, t Transport, req *Request) (T, error) {
	var out T
	err := t.DecodeAcceptJSON(ctx, req, &out)
	return out, err
}

// call is the fully resolved form of a Request handed to a sender.
type call struct {
	method string
	url    string
	// base holds the connection-wide headers.
	base http.Header
	// extra holds Content-Type and the per-call overlay; it wins over base.
	extra http.Header
	body  []byte
}

// header returns base and extra merged.
func (c *call) header() http.Header {
	h := c.base.Clone()
	for k, v := range c.extra {
		h[k] = v
	}
	return h
}

// redirect returns the call that follows a redirect to next. Once a hop
// leaves the original host, credentials stay off every later hop.
func (c *call) redirect(method string, next *url.URL, keepBody, crossHost bool) *call {
	r := &call{
		method: method,
		url:    next.String(),
		base:   c.base,
		extra:  c.extra.Clone(),
		body:   c.body,
	}
	if !keepBody {
		r.body = nil
		r.extra.Del("Content-Type")
	}
	if crossHost {
		r.base = c.base.Clone()
		stripSensitive(r.base)
		stripSensitive(r.extra)
	}
	return r
}

// sender performs one exchange. It returns an error only when no HTTP
// response was received; status handling happens in core.
type sender interface {
	send(ctx context.Context, c *call) (*Response, error)
	close() error
}

// core implements Transport on top of a sender. It owns everything the
// backends share: header composition, timeouts, error normalization,
// logging, tracing and metrics.
type core struct {
	kind    Backend
	name    string
	baseURL string
	timeout time.Duration
	headers http.Header
	sender  sender
	log     *logger.Logger
	metrics *observability.Metrics
}

func newCore(kind Backend, cfg *Config, s sender, o options) *core {
	return &core{
		kind:    kind,
		name:    cfg.Name,
		baseURL: cfg.BaseURL,
		timeout: cfg.Timeout,
		headers: baseHeaders(cfg),
		sender:  s,
		log:     o.log.WithFields(logger.Fields(logger.FieldBackend, string(kind))),
		metrics: o.metrics,
	}
}

// baseHeaders computes the headers sent on every call of a connection.
func baseHeaders(cfg *Config) http.Header {
	h := make(http.Header, len(cfg.Headers)+2)
	for k, v := range cfg.Headers {
		h.Set(k, v)
	}
	h.Set("User-Agent", cfg.UserAgent)
	if v := cfg.Auth.HeaderValue(); v != "" {
		h.Set("Authorization", v)
	}
	return h
}

func (c *core) Kind() Backend { return c.kind }

func (c *core) Close() error { return c.sender.close() }

func (c *core) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, errors.NewValidationError("Request cannot be null.")
	}

	cl := &call{
		method: req.Method(),
		url:    c.baseURL + req.Path(),
		base:   c.headers,
		extra:  make(http.Header, len(req.headers)+1),
		body:   req.Body(),
	}
	if req.HasBody() {
		cl.extra.Set("Content-Type", "application/json")
	}
	for k, v := range req.headers {
		cl.extra[k] = v
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	ctx, span := observability.StartSpan(ctx, observability.SpanRequest,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(observability.AttrBackend, string(c.kind)),
			attribute.String(observability.AttrMethod, cl.method),
			attribute.String(observability.AttrURL, cl.url),
		),
	)
	if c.metrics != nil {
		c.metrics.RecordRequestStart(ctx, string(c.kind))
	}

	start := time.Now()
	resp, err := c.sender.send(ctx, cl)
	if err != nil {
		err = errors.NewConnectionError(cl.method, cl.url, err)
	} else {
		err = normalize(cl.method, cl.url, resp)
	}
	c.finish(ctx, span, cl, resp, err, time.Since(start))

	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *core) finish(ctx context.Context, span trace.Span, cl *call, resp *Response, err error, d time.Duration) {
	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	fields := logger.CallFields(cl.method, cl.url, status, d)

	if err != nil {
		c.log.Warn("request failed", logger.MergeWithError(fields, err))
		if c.metrics != nil {
			c.metrics.RecordError(ctx, errorKind(err), string(c.kind))
		}
	} else {
		c.log.Debug("request completed", fields)
	}
	if c.metrics != nil {
		c.metrics.RecordRequestEnd(ctx, string(c.kind), cl.method, status, d)
	}
	observability.EndSpan(span, status, err)
}

func (c *core) Decode(ctx context.Context, req *Request, out any) error {
	resp, err := c.Execute(ctx, req)
	if err != nil {
		return err
	}
	body := bytes.TrimSpace(resp.Body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		te := errors.NewStatusError(req.Method(), c.baseURL+req.Path(), resp.StatusCode, "malformed JSON response", resp.Body)
		te.Err = err
		return te
	}
	return nil
}

func (c *core) DecodeAcceptJSON(ctx context.Context, req *Request, out any) error {
	if req == nil {
		return errors.NewValidationError("Request cannot be null.")
	}
	return c.Decode(ctx, req.WithHeader("Accept", "application/json"), out)
}

// bodyReader returns nil for an empty body so that GET and bodiless DELETE
// are sent without Content-Length.
func bodyReader(body []byte) io.Reader {
	if body == nil {
		return nil
	}
	return bytes.NewReader(body)
}

package ndex

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kbukum/ndex-go/httpclient"
	"github.com/kbukum/ndex-go/logger"
	"github.com/kbukum/ndex-go/validation"
)

// DefaultPageSize is the page size used when Page.Size is zero.
const DefaultPageSize = 100

// Page selects a window of a paged listing. Depending on the endpoint it is
// sent as start/size or offset/limit.
type Page struct {
	Start int
	Size  int
}

func (p Page) size() int {
	if p.Size <= 0 {
		return DefaultPageSize
	}
	return p.Size
}

func (p Page) startSize(r *httpclient.Request) *httpclient.Request {
	return r.AddQuery("start", p.Start).AddQuery("size", p.size())
}

func (p Page) offsetLimit(r *httpclient.Request) *httpclient.Request {
	return r.AddQuery("offset", p.Start).AddQuery("limit", p.size())
}

// Client gives access to every resource of one NDEx server. It is safe for
// concurrent use.
type Client struct {
	factory *httpclient.Factory
	log     *logger.Logger

	admin      *AdminService
	batch      *BatchService
	group      *GroupService
	network    *NetworkService
	networkSet *NetworkSetService
	search     *SearchService
	task       *TaskService
	user       *UserService
}

// New creates a client for the server described by cfg.
func New(cfg httpclient.Config, opts ...httpclient.Option) (*Client, error) {
	f, err := httpclient.NewFactory(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return NewWithFactory(f), nil
}

// NewWithFactory creates a client on top of an existing transport factory,
// for example the one owned by a started httpclient.Component.
func NewWithFactory(f *httpclient.Factory) *Client {
	c := &Client{factory: f, log: logger.Get("ndex")}
	s := service{client: c}
	c.admin = &AdminService{s}
	c.batch = &BatchService{s}
	c.group = &GroupService{s}
	c.network = &NetworkService{s}
	c.networkSet = &NetworkSetService{s}
	c.search = &SearchService{s}
	c.task = &TaskService{s}
	c.user = &UserService{s}

	cfg := f.Config()
	c.log.Debug("client created", logger.Fields(
		logger.FieldBaseURL, cfg.BaseURL,
		logger.FieldBackend, cfg.Backend.String(),
	))
	return c
}

// Admin returns the /admin endpoints.
func (c *Client) Admin() *AdminService { return c.admin }

// Batch returns the /batch endpoints.
func (c *Client) Batch() *BatchService { return c.batch }

// Group returns the /group endpoints.
func (c *Client) Group() *GroupService { return c.group }

// Network returns the /network endpoints.
func (c *Client) Network() *NetworkService { return c.network }

// NetworkSet returns the /networkset endpoints.
func (c *Client) NetworkSet() *NetworkSetService { return c.networkSet }

// Search returns the /search endpoints.
func (c *Client) Search() *SearchService { return c.search }

// Task returns the /task endpoints.
func (c *Client) Task() *TaskService { return c.task }

// User returns the /user endpoints.
func (c *Client) User() *UserService { return c.user }

// Factory returns the transport factory the client draws from.
func (c *Client) Factory() *httpclient.Factory { return c.factory }

// Close releases pooled connections.
func (c *Client) Close(ctx context.Context) error {
	return c.factory.Close(ctx)
}

// service is embedded in every resource service.
type service struct {
	client *Client
}

// transport returns a transport and the function that releases it. Only the
// pooled backend is shared; the others are closed after the call.
func (s service) transport() (httpclient.Transport, func(), error) {
	t, err := s.client.factory.GetOrCreate()
	if err != nil {
		return nil, nil, err
	}
	if t.Kind() == httpclient.BackendPooled {
		return t, func() {}, nil
	}
	return t, func() { _ = t.Close() }, nil
}

func (s service) execute(ctx context.Context, req *httpclient.Request) (*httpclient.Response, error) {
	t, release, err := s.transport()
	if err != nil {
		return nil, err
	}
	defer release()
	return t.Execute(ctx, req)
}

// raw executes req and returns the response body as-is.
func (s service) raw(ctx context.Context, req *httpclient.Request) ([]byte, error) {
	resp, err := s.execute(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// discard executes req for its side effect only.
func (s service) discard(ctx context.Context, req *httpclient.Request) error {
	_, err := s.execute(ctx, req)
	return err
}

func decode[T any](ctx context.Context, s service, req *httpclient.Request) (T, error) {
	var zero T
	t, release, err := s.transport()
	if err != nil {
		return zero, err
	}
	defer release()
	return httpclient.Execute[T](ctx, t, req)
}

func decodeAcceptJSON[T any](ctx context.Context, s service, req *httpclient.Request) (T, error) {
	var zero T
	t, release, err := s.transport()
	if err != nil {
		return zero, err
	}
	defer release()
	return httpclient.ExecuteAcceptJSON[T](ctx, t, req)
}

// withBody builds a request carrying body. Struct bodies are validated first,
// so an invalid payload never reaches the network.
func withBody(method, p string, body any) (*httpclient.Request, error) {
	if !validation.IsNil(body) {
		if err := validation.Struct(body); err != nil {
			return nil, err
		}
	}
	req := httpclient.NewRequest(method, p)
	if err := req.SetBody(body); err != nil {
		return nil, err
	}
	return req, nil
}

// uniqueIDs drops repeated ids, keeping the first occurrence. A nil slice
// stays nil so that it is still rejected as a missing body.
func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return nil
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// idFromLocation extracts the UUID from the URL the server returns after
// creating or copying a resource, e.g. "https://host/v2/network/<uuid>".
func idFromLocation(body []byte) (uuid.UUID, error) {
	loc := strings.Trim(strings.TrimSpace(string(body)), `"`)
	seg := loc[strings.LastIndex(loc, "/")+1:]
	id, err := uuid.Parse(seg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("ndex: unexpected resource location %q: %w", loc, err)
	}
	return id, nil
}

func path(parts ...string) string {
	return "/" + strings.Join(parts, "/")
}

package httpclient

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kbukum/ndex-go/errors"
	"github.com/kbukum/ndex-go/logger"
	"github.com/kbukum/ndex-go/model"
	"github.com/kbukum/ndex-go/ndextest"
)

// forEachBackend runs fn once per backend as a subtest.
func forEachBackend(t *testing.T, fn func(t *testing.T, b Backend)) {
	t.Helper()
	for _, b := range Backends {
		t.Run(string(b), func(t *testing.T) { fn(t, b) })
	}
}

func newTestTransport(t *testing.T, b Backend, baseURL string, mutate ...func(*Config)) Transport {
	t.Helper()
	cfg := Config{BaseURL: baseURL, Backend: b, Auth: BasicAuth("alice", "secret")}
	for _, m := range mutate {
		m(&cfg)
	}
	tr, err := New(cfg, WithLogger(logger.Nop()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { tr.Close() })
	return tr
}

func TestTransport_Kind(t *testing.T) {
	forEachBackend(t, func(t *testing.T, b Backend) {
		tr := newTestTransport(t, b, "http://127.0.0.1:1")
		if tr.Kind() != b {
			t.Errorf("expected %s, got %s", b, tr.Kind())
		}
	})
}

func TestTransport_DecodeStatus(t *testing.T) {
	srv := ndextest.New()
	defer srv.Close()

	forEachBackend(t, func(t *testing.T, b Backend) {
		tr := newTestTransport(t, b, srv.URL(), func(c *Config) {
			c.Headers = map[string]string{"X-Client": "tests"}
		})

		req := NewRequest(http.MethodGet, "/admin/status").AddQuery("format", model.StatusFormatFull)
		status, err := Execute[model.NDExStatus](context.Background(), tr, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status.NetworkCount != ndextest.NetworkCount || status.Message != ndextest.StatusMessage {
			t.Errorf("unexpected status %+v", status)
		}
		if _, ok := status.Properties["ImporterExporters"]; !ok {
			t.Error("expected ImporterExporters in full status")
		}

		rec, _ := srv.LastRequest()
		if rec.RawQuery != "format=full" {
			t.Errorf("expected format=full, got %s", rec.RawQuery)
		}
		if got := rec.Header.Get("Authorization"); got != "Basic YWxpY2U6c2VjcmV0" {
			t.Errorf("unexpected Authorization %q", got)
		}
		if got := rec.Header.Get("User-Agent"); !strings.HasPrefix(got, "ndex-go/") {
			t.Errorf("unexpected User-Agent %q", got)
		}
		if got := rec.Header.Get("X-Client"); got != "tests" {
			t.Errorf("expected configured header, got %q", got)
		}
		if got := rec.Header.Get("Content-Type"); got != "" {
			t.Errorf("GET without body must not send Content-Type, got %q", got)
		}
	})
}

func TestTransport_Execute_Envelope(t *testing.T) {
	srv := ndextest.New()
	defer srv.Close()

	forEachBackend(t, func(t *testing.T, b Backend) {
		tr := newTestTransport(t, b, srv.URL())
		resp, err := tr.Execute(context.Background(), NewRequest(http.MethodGet, "/admin/status"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.StatusCode != http.StatusOK || !resp.IsSuccess() {
			t.Errorf("expected 200, got %d", resp.StatusCode)
		}
		if !strings.HasPrefix(resp.ContentType, "application/json") {
			t.Errorf("unexpected content type %q", resp.ContentType)
		}
		if !strings.Contains(resp.Text(), `"message":"Online"`) {
			t.Errorf("unexpected body %s", resp.Text())
		}
	})
}

func TestTransport_DomainError(t *testing.T) {
	srv := ndextest.New()
	defer srv.Close()
	id := uuid.New()

	forEachBackend(t, func(t *testing.T, b Backend) {
		tr := newTestTransport(t, b, srv.URL())
		_, err := tr.Execute(context.Background(), NewRequest(http.MethodGet, "/group/"+id.String()))

		var de *errors.DomainError
		if !stderrors.As(err, &de) {
			t.Fatalf("expected DomainError, got %T: %v", err, err)
		}
		if de.Code != errors.ErrCodeNotFound || de.StatusCode != http.StatusNotFound {
			t.Errorf("unexpected code/status %s/%d", de.Code, de.StatusCode)
		}
		want := fmt.Sprintf("Error on GET - %s/group/%s: HTTP 404 ---> Group with UUID: %s doesn't exist.", srv.URL(), id, id)
		if err.Error() != want {
			t.Errorf("expected %q, got %q", want, err.Error())
		}
	})
}

func TestTransport_TextError(t *testing.T) {
	srv := ndextest.New(ndextest.WithoutDefaults())
	srv.StubText(http.MethodGet, "/maintenance", http.StatusServiceUnavailable, "{down for maintenance")
	defer srv.Close()

	forEachBackend(t, func(t *testing.T, b Backend) {
		tr := newTestTransport(t, b, srv.URL())
		_, err := tr.Execute(context.Background(), NewRequest(http.MethodGet, "/maintenance"))

		var te *errors.TransportError
		if !stderrors.As(err, &te) {
			t.Fatalf("expected TransportError, got %T: %v", err, err)
		}
		if te.StatusCode != http.StatusServiceUnavailable || te.Reason != "Service Unavailable" {
			t.Errorf("unexpected status/reason %d/%s", te.StatusCode, te.Reason)
		}
		if !strings.HasSuffix(err.Error(), "HTTP 503 ---> Service Unavailable") {
			t.Errorf("unexpected message %q", err.Error())
		}
	})
}

func TestTransport_DecodeAcceptJSON(t *testing.T) {
	srv := ndextest.New()
	defer srv.Close()

	forEachBackend(t, func(t *testing.T, b Backend) {
		tr := newTestTransport(t, b, srv.URL())
		req := NewRequest(http.MethodGet, "/network/"+uuid.NewString()+"/aspect/nodes/metadata")

		var meta model.MetadataElement
		if err := tr.DecodeAcceptJSON(context.Background(), req, &meta); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if meta.Name != "nodes" || meta.ElementCount != 42 {
			t.Errorf("unexpected metadata %+v", meta)
		}

		// The forced Accept applies to that call only.
		if _, err := tr.Execute(context.Background(), req); !errors.IsTransport(err) {
			t.Errorf("expected plain call to be refused, got %v", err)
		}
	})
}

func TestTransport_AcceptJSONFailureDoesNotLeak(t *testing.T) {
	srv := ndextest.New(ndextest.WithoutDefaults())
	srv.Handle(http.MethodGet, "/echo/accept", func(c *gin.Context) {
		accept := c.GetHeader("Accept")
		if accept == "application/json" {
			c.JSON(http.StatusNotFound, gin.H{"errorCode": errors.ErrCodeNotFound, "message": "no metadata"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"accept": accept})
	})
	defer srv.Close()

	forEachBackend(t, func(t *testing.T, b Backend) {
		tr := newTestTransport(t, b, srv.URL())
		req := NewRequest(http.MethodGet, "/echo/accept")

		var out struct {
			Accept string `json:"accept"`
		}
		if err := tr.DecodeAcceptJSON(context.Background(), req, &out); !errors.IsNotFound(err) {
			t.Fatalf("expected not-found DomainError, got %v", err)
		}
		if err := tr.Decode(context.Background(), req, &out); err != nil {
			t.Fatalf("expected the plain call to succeed, got %v", err)
		}
		if out.Accept != "" {
			t.Errorf("expected no forced Accept after a failed call, got %q", out.Accept)
		}
		if got := req.Header("Accept"); got != "" {
			t.Errorf("expected the request to stay untouched, got Accept %q", got)
		}
	})
}

func TestTransport_AcceptJSONDoesNotLeakAcrossGoroutines(t *testing.T) {
	srv := ndextest.New(ndextest.WithoutDefaults())
	srv.Handle(http.MethodGet, "/echo/accept", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"accept": c.GetHeader("Accept")})
	})
	defer srv.Close()

	forEachBackend(t, func(t *testing.T, b Backend) {
		tr := newTestTransport(t, b, srv.URL())

		var wg sync.WaitGroup
		errs := make(chan error, 40)
		for i := 0; i < 40; i++ {
			wg.Add(1)
			go func(forceJSON bool) {
				defer wg.Done()
				var out struct {
					Accept string `json:"accept"`
				}
				req := NewRequest(http.MethodGet, "/echo/accept")
				var err error
				if forceJSON {
					err = tr.DecodeAcceptJSON(context.Background(), req, &out)
				} else {
					err = tr.Decode(context.Background(), req, &out)
				}
				if err != nil {
					errs <- err
					return
				}
				if forceJSON && out.Accept != "application/json" {
					errs <- fmt.Errorf("forced call saw Accept %q", out.Accept)
				}
				if !forceJSON && out.Accept != "" {
					errs <- fmt.Errorf("plain call saw Accept %q", out.Accept)
				}
			}(i%2 == 0)
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			t.Error(err)
		}
	})
}

func TestTransport_DeleteWithBody(t *testing.T) {
	srv := ndextest.New()
	defer srv.Close()
	setID := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	forEachBackend(t, func(t *testing.T, b Backend) {
		tr := newTestTransport(t, b, srv.URL())
		req := NewRequest(http.MethodDelete, "/networkset/"+setID.String()+"/members")
		if err := req.SetBody(ids); err != nil {
			t.Fatalf("SetBody: %v", err)
		}

		resp, err := tr.Execute(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.StatusCode != http.StatusNoContent {
			t.Errorf("expected 204, got %d", resp.StatusCode)
		}

		rec, _ := srv.LastRequest()
		if rec.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", rec.Method)
		}
		var sent []uuid.UUID
		if err := json.Unmarshal(rec.Body, &sent); err != nil || len(sent) != 2 || sent[1] != ids[1] {
			t.Errorf("unexpected body %s (%v)", rec.Body, err)
		}
		if got := rec.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("expected application/json, got %q", got)
		}
	})
}

func TestTransport_NoResponse(t *testing.T) {
	dead := httptest.NewServer(http.NotFoundHandler())
	deadURL := dead.URL
	dead.Close()

	forEachBackend(t, func(t *testing.T, b Backend) {
		tr := newTestTransport(t, b, deadURL)
		_, err := tr.Execute(context.Background(), NewRequest(http.MethodGet, "/admin/status"))

		var te *errors.TransportError
		if !stderrors.As(err, &te) {
			t.Fatalf("expected TransportError, got %T: %v", err, err)
		}
		if te.StatusCode != 0 || te.Err == nil {
			t.Errorf("expected status 0 with cause, got %d/%v", te.StatusCode, te.Err)
		}
		if !strings.HasPrefix(err.Error(), "Error on GET - "+deadURL+"/admin/status ---> ") {
			t.Errorf("unexpected message %q", err.Error())
		}
	})
}

func TestTransport_Timeout(t *testing.T) {
	srv := ndextest.New(ndextest.WithoutDefaults())
	srv.Handle(http.MethodGet, "/slow", func(c *gin.Context) {
		select {
		case <-c.Request.Context().Done():
		case <-time.After(2 * time.Second):
		}
		c.Status(http.StatusOK)
	})
	defer srv.Close()

	forEachBackend(t, func(t *testing.T, b Backend) {
		tr := newTestTransport(t, b, srv.URL(), func(c *Config) { c.Timeout = 50 * time.Millisecond })

		start := time.Now()
		_, err := tr.Execute(context.Background(), NewRequest(http.MethodGet, "/slow"))
		if !errors.IsTransport(err) {
			t.Fatalf("expected TransportError, got %v", err)
		}
		if !stderrors.Is(err, context.DeadlineExceeded) {
			t.Errorf("expected deadline exceeded in chain, got %v", err)
		}
		if time.Since(start) > time.Second {
			t.Errorf("timeout not enforced, took %v", time.Since(start))
		}
	})
}

func TestTransport_Proxy(t *testing.T) {
	// The proxy answers absolute-form requests itself, so the target host
	// never needs to resolve.
	proxy := ndextest.New(ndextest.WithoutDefaults())
	proxy.Stub(http.MethodGet, "/v2/admin/status", http.StatusOK, model.NDExStatus{Message: "via proxy"})
	defer proxy.Close()

	u, err := url.Parse(proxy.URL())
	if err != nil {
		t.Fatal(err)
	}
	port, _ := strconv.Atoi(u.Port())

	forEachBackend(t, func(t *testing.T, b Backend) {
		tr := newTestTransport(t, b, "http://ndex.invalid/v2", func(c *Config) {
			c.Proxy = &ProxyConfig{Host: u.Hostname(), Port: port, Username: "bob", Password: "pw"}
		})

		status, err := Execute[model.NDExStatus](context.Background(), tr, NewRequest(http.MethodGet, "/admin/status"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status.Message != "via proxy" {
			t.Errorf("unexpected status %+v", status)
		}

		rec, _ := proxy.LastRequest()
		if rec.RequestURI != "http://ndex.invalid/v2/admin/status" {
			t.Errorf("expected absolute-form target, got %s", rec.RequestURI)
		}
		// base64("bob:pw")
		if got := rec.Header.Get("Proxy-Authorization"); got != "Basic Ym9iOnB3" {
			t.Errorf("unexpected Proxy-Authorization %q", got)
		}
	})
}

func TestTransport_CompressedResponses(t *testing.T) {
	const body = `{"networkCount":7,"message":"Online"}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept := r.Header.Get("Accept-Encoding")
		w.Header().Set("Content-Type", "application/json")
		var buf bytes.Buffer
		switch {
		case strings.Contains(accept, "deflate") && r.URL.Query().Get("prefer") == "deflate":
			zw := zlib.NewWriter(&buf)
			zw.Write([]byte(body))
			zw.Close()
			w.Header().Set("Content-Encoding", "deflate")
		case strings.Contains(accept, "gzip"):
			zw := gzip.NewWriter(&buf)
			zw.Write([]byte(body))
			zw.Close()
			w.Header().Set("Content-Encoding", "gzip")
		default:
			buf.WriteString(body)
		}
		w.Write(buf.Bytes())
	}))
	defer srv.Close()

	forEachBackend(t, func(t *testing.T, b Backend) {
		tr := newTestTransport(t, b, srv.URL)
		for _, prefer := range []string{"gzip", "deflate"} {
			req := NewRequest(http.MethodGet, "/admin/status").AddQuery("prefer", prefer)
			status, err := Execute[model.NDExStatus](context.Background(), tr, req)
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", prefer, err)
			}
			if status.NetworkCount != 7 {
				t.Errorf("%s: expected 7 networks, got %d", prefer, status.NetworkCount)
			}
		}

		// The envelope describes the decoded body on every backend.
		resp, err := tr.Execute(context.Background(), NewRequest(http.MethodGet, "/admin/status"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(resp.Body) != body {
			t.Errorf("expected decoded body, got %q", resp.Body)
		}
		for _, k := range []string{"Content-Encoding", "Content-Length"} {
			if v, ok := resp.Headers[k]; ok {
				t.Errorf("expected no %s header after decoding, got %q", k, v)
			}
		}
	})
}

func TestTransport_DecodeEmptyBody(t *testing.T) {
	srv := ndextest.New(ndextest.WithoutDefaults())
	srv.Stub(http.MethodPut, "/group/:id", http.StatusNoContent, nil)
	defer srv.Close()

	forEachBackend(t, func(t *testing.T, b Backend) {
		tr := newTestTransport(t, b, srv.URL())
		req := NewRequest(http.MethodPut, "/group/"+uuid.NewString())
		if err := req.SetBody(model.Group{GroupName: "g"}); err != nil {
			t.Fatal(err)
		}
		out := model.Group{GroupName: "unchanged"}
		if err := tr.Decode(context.Background(), req, &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.GroupName != "unchanged" {
			t.Errorf("empty body must leave target untouched, got %s", out.GroupName)
		}
	})
}

func TestTransport_DecodeMalformed(t *testing.T) {
	srv := ndextest.New(ndextest.WithoutDefaults())
	srv.StubText(http.MethodGet, "/task/:id", http.StatusOK, "{oops")
	defer srv.Close()

	forEachBackend(t, func(t *testing.T, b Backend) {
		tr := newTestTransport(t, b, srv.URL())
		_, err := Execute[model.Task](context.Background(), tr, NewRequest(http.MethodGet, "/task/1"))
		if !errors.IsTransport(err) {
			t.Errorf("expected TransportError for malformed body, got %v", err)
		}
	})
}

func TestTransport_NilRequest(t *testing.T) {
	tr := newTestTransport(t, BackendPooled, "http://127.0.0.1:1")
	if _, err := tr.Execute(context.Background(), nil); !errors.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

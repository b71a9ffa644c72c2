package ndex

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kbukum/ndex-go/errors"
	"github.com/kbukum/ndex-go/httpclient"
	"github.com/kbukum/ndex-go/model"
	"github.com/kbukum/ndex-go/ndextest"
)

const testCX = `[{"numberVerification":[{"longNumber":281474976710655}]},{"nodes":[{"@id":1,"n":"TP53"}]}]`

func TestNetwork_Create(t *testing.T) {
	srv := ndextest.New()
	defer srv.Close()
	c := newTestClient(t, srv, httpclient.BackendPooled)

	id := uuid.New()
	srv.Handle(http.MethodPost, "/network", func(ctx *gin.Context) {
		ctx.String(http.StatusCreated, "http://localhost/v2/network/"+id.String())
	})

	got, err := c.Network().Create(context.Background(), json.RawMessage(testCX), model.VisibilityPrivate)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got != id {
		t.Errorf("expected %s, got %s", id, got)
	}
	r := lastRequest(t, srv)
	if r.RawQuery != "visibility=PRIVATE" {
		t.Errorf("expected visibility query, got %q", r.RawQuery)
	}
	if string(r.Body) != testCX {
		t.Errorf("expected CX to be sent unchanged, got %s", r.Body)
	}
	if ct := r.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}

	if _, err := c.Network().Create(context.Background(), nil, ""); !errors.IsValidation(err) {
		t.Errorf("expected ValidationError for nil CX, got %v", err)
	}
}

func TestNetwork_Clone(t *testing.T) {
	srv := ndextest.New()
	defer srv.Close()

	src, copyID := uuid.New(), uuid.New()
	srv.Handle(http.MethodPost, "/network/:id/copy", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "https://www.ndexbio.org/v2/network/"+copyID.String())
	})

	for _, b := range httpclient.Backends {
		t.Run(string(b), func(t *testing.T) {
			c := newTestClient(t, srv, b)
			got, err := c.Network().Clone(context.Background(), src)
			if err != nil {
				t.Fatalf("Clone() error = %v", err)
			}
			if got != copyID {
				t.Errorf("expected %s, got %s", copyID, got)
			}
		})
	}
}

func TestNetwork_GetAspectMetadata(t *testing.T) {
	srv := ndextest.New()
	defer srv.Close()

	for _, b := range httpclient.Backends {
		t.Run(string(b), func(t *testing.T) {
			c := newTestClient(t, srv, b)
			md, err := c.Network().GetAspectMetadata(context.Background(), uuid.New(), "nodes")
			if err != nil {
				t.Fatalf("GetAspectMetadata() error = %v", err)
			}
			if md.Name != "nodes" || md.ElementCount != 42 {
				t.Errorf("unexpected metadata %+v", md)
			}

			// The forced Accept header is not kept for later calls.
			_, err = httpclient.Execute[model.MetadataElement](context.Background(), mustTransport(t, c),
				httpclient.NewRequest(http.MethodGet, "/network/"+uuid.NewString()+"/aspect/nodes/metadata"))
			if errors.StatusCode(err) != http.StatusNotAcceptable {
				t.Errorf("expected 406 without forced Accept, got %v", err)
			}
		})
	}
}

func mustTransport(t *testing.T, c *Client) httpclient.Transport {
	t.Helper()
	tr, err := c.Factory().GetOrCreate()
	if err != nil {
		t.Fatalf("GetOrCreate() error = %v", err)
	}
	return tr
}

func TestNetwork_AccessKey(t *testing.T) {
	srv := ndextest.New(ndextest.WithoutDefaults())
	defer srv.Close()
	c := newTestClient(t, srv, httpclient.BackendPooled)
	ctx := context.Background()

	withKey, without := uuid.New(), uuid.New()
	srv.Handle(http.MethodGet, "/network/:id/accesskey", func(gc *gin.Context) {
		if gc.Param("id") == withKey.String() {
			gc.JSON(http.StatusOK, gin.H{"accessKey": "abc123"})
			return
		}
		gc.String(http.StatusOK, "null")
	})
	srv.Stub(http.MethodPut, "/network/:id/accesskey", http.StatusNoContent, nil)

	key, err := c.Network().GetAccessKey(ctx, withKey)
	if err != nil || key != "abc123" {
		t.Errorf("expected abc123, got %q (%v)", key, err)
	}
	key, err = c.Network().GetAccessKey(ctx, without)
	if err != nil || key != "" {
		t.Errorf("expected empty key for disabled access, got %q (%v)", key, err)
	}

	if err := c.Network().SetAccessKey(ctx, withKey, model.AccessKeyDisable); err != nil {
		t.Fatalf("SetAccessKey() error = %v", err)
	}
	if q := lastRequest(t, srv).RawQuery; q != "action=disable" {
		t.Errorf("expected action=disable, got %q", q)
	}
	err = c.Network().SetAccessKey(ctx, withKey, "toggle")
	if !errors.IsValidation(err) {
		t.Fatalf("expected ValidationError for unknown action, got %v", err)
	}
	if want := `action: must be "enable" or "disable"`; err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestNetwork_Reads(t *testing.T) {
	srv := ndextest.New(ndextest.WithoutDefaults())
	defer srv.Close()
	c := newTestClient(t, srv, httpclient.BackendSimple)
	ctx := context.Background()
	id := uuid.New()

	srv.StubText(http.MethodGet, "/network/:id", http.StatusOK, testCX)
	srv.StubText(http.MethodGet, "/network/:id/sample", http.StatusOK, testCX)
	srv.Stub(http.MethodGet, "/network/:id/summary", http.StatusOK, model.NetworkSummary{Name: "p53 pathway", NodeCount: 12})
	srv.Stub(http.MethodGet, "/network/:id/aspect", http.StatusOK, model.MetadataCollection{
		MetaData: []model.MetadataElement{{Name: "nodes", ElementCount: 12}, {Name: "edges", ElementCount: 30}},
	})
	srv.Stub(http.MethodGet, "/network/:id/aspect/:aspect", http.StatusOK, []map[string]any{{"@id": 1, "n": "TP53"}})
	srv.Stub(http.MethodGet, "/network/:id/provenance", http.StatusOK, model.ProvenanceEntity{URI: "urn:test"})

	t.Run("GetComplete", func(t *testing.T) {
		cx, err := c.Network().GetComplete(ctx, id, "key")
		if err != nil {
			t.Fatalf("GetComplete() error = %v", err)
		}
		if string(cx) != testCX {
			t.Errorf("expected raw CX, got %s", cx)
		}
		if q := lastRequest(t, srv).RawQuery; q != "accesskey=key" {
			t.Errorf("expected accesskey query, got %q", q)
		}
	})

	t.Run("GetSample", func(t *testing.T) {
		cx, err := c.Network().GetSample(ctx, id, "")
		if err != nil || string(cx) != testCX {
			t.Errorf("unexpected sample %s (%v)", cx, err)
		}
	})

	t.Run("GetSummary", func(t *testing.T) {
		s, err := c.Network().GetSummary(ctx, id, "")
		if err != nil {
			t.Fatalf("GetSummary() error = %v", err)
		}
		if s.Name != "p53 pathway" || s.NodeCount != 12 {
			t.Errorf("unexpected summary %+v", s)
		}
	})

	t.Run("GetMetadataCollection", func(t *testing.T) {
		md, err := c.Network().GetMetadataCollection(ctx, id, "")
		if err != nil {
			t.Fatalf("GetMetadataCollection() error = %v", err)
		}
		if len(md.MetaData) != 2 || md.MetaData[1].Name != "edges" {
			t.Errorf("unexpected metadata %+v", md)
		}
	})

	t.Run("GetAspectElements", func(t *testing.T) {
		els, err := c.Network().GetAspectElements(ctx, id, "nodes", 0)
		if err != nil {
			t.Fatalf("GetAspectElements() error = %v", err)
		}
		if len(els) != 1 || els[0]["n"] != "TP53" {
			t.Errorf("unexpected elements %v", els)
		}
		if q := lastRequest(t, srv).RawQuery; q != "limit=100" {
			t.Errorf("expected default limit, got %q", q)
		}
	})

	t.Run("GetProvenance", func(t *testing.T) {
		p, err := c.Network().GetProvenance(ctx, id, "")
		if err != nil || p.URI != "urn:test" {
			t.Errorf("unexpected provenance %+v (%v)", p, err)
		}
	})
}

func TestNetwork_Writes(t *testing.T) {
	srv := ndextest.New(ndextest.WithoutDefaults())
	defer srv.Close()
	c := newTestClient(t, srv, httpclient.BackendLowLevel)
	ctx := context.Background()
	id := uuid.New()

	for _, p := range []string{"", "/aspects", "/profile", "/properties", "/provenance", "/sample", "/summary", "/systemproperty"} {
		srv.Stub(http.MethodPut, "/network/:id"+p, http.StatusNoContent, nil)
	}
	srv.Stub(http.MethodDelete, "/network/:id", http.StatusNoContent, nil)

	readOnly := true
	index := model.IndexLevelAll
	tests := []struct {
		name     string
		call     func() error
		wantPath string
		wantBody string
	}{
		{"Update", func() error { return c.Network().Update(ctx, id, json.RawMessage(testCX)) }, "", testCX},
		{"UpdateAspects", func() error { return c.Network().UpdateAspects(ctx, id, json.RawMessage(testCX)) }, "/aspects", testCX},
		{"SetSample", func() error { return c.Network().SetSample(ctx, id, json.RawMessage(testCX)) }, "/sample", testCX},
		{"SetProperties", func() error {
			return c.Network().SetProperties(ctx, id, []model.PropertyValuePair{{PredicateString: "organism", Value: "Human", DataType: "string"}})
		}, "/properties", ""},
		{"SetSystemProperties", func() error {
			return c.Network().SetSystemProperties(ctx, id, &model.NetworkSystemProperties{ReadOnly: &readOnly, IndexLevel: &index})
		}, "/systemproperty", `{"readOnly":true,"index_level":"ALL"}`},
		{"UpdateProfile", func() error {
			return c.Network().UpdateProfile(ctx, id, &model.NetworkSummary{Name: "renamed"})
		}, "/profile", ""},
		{"UpdateSummary", func() error {
			return c.Network().UpdateSummary(ctx, id, &model.NetworkSummary{Name: "renamed"})
		}, "/summary", ""},
		{"SetProvenance", func() error {
			return c.Network().SetProvenance(ctx, id, &model.ProvenanceEntity{URI: "urn:test"})
		}, "/provenance", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); err != nil {
				t.Fatalf("%s() error = %v", tt.name, err)
			}
			r := lastRequest(t, srv)
			if r.Method != http.MethodPut || r.Path != "/network/"+id.String()+tt.wantPath {
				t.Errorf("unexpected request %s %s", r.Method, r.Path)
			}
			if tt.wantBody != "" && string(r.Body) != tt.wantBody {
				t.Errorf("expected body %s, got %s", tt.wantBody, r.Body)
			}
		})
	}

	if err := c.Network().Delete(ctx, id); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if r := lastRequest(t, srv); r.Method != http.MethodDelete {
		t.Errorf("expected DELETE, got %s", r.Method)
	}
}

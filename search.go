package ndex

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/kbukum/ndex-go/httpclient"
	"github.com/kbukum/ndex-go/model"
)

// SearchService finds users, groups and networks, and queries the content
// of a single network.
type SearchService struct{ service }

func (s *SearchService) find(p string, query string, page Page) (*httpclient.Request, error) {
	req, err := withBody(http.MethodPost, p, model.SimpleQuery{SearchString: query})
	if err != nil {
		return nil, err
	}
	return page.startSize(req), nil
}

// FindGroups searches groups.
func (s *SearchService) FindGroups(ctx context.Context, query string, page Page) (*model.SearchResult[model.Group], error) {
	req, err := s.find("/search/group", query, page)
	if err != nil {
		return nil, err
	}
	return decode[*model.SearchResult[model.Group]](ctx, s.service, req)
}

// FindUsers searches users.
func (s *SearchService) FindUsers(ctx context.Context, query string, page Page) (*model.SearchResult[model.User], error) {
	req, err := s.find("/search/user", query, page)
	if err != nil {
		return nil, err
	}
	return decode[*model.SearchResult[model.User]](ctx, s.service, req)
}

// SearchNetworks searches networks by name, description and properties.
func (s *SearchService) SearchNetworks(ctx context.Context, query string, page Page) (*model.SearchResult[model.NetworkSummary], error) {
	return s.networks(ctx, "/search/network", query, page)
}

// SearchNetworksByGenes searches networks whose nodes match the given genes
// or proteins.
func (s *SearchService) SearchNetworksByGenes(ctx context.Context, query string, page Page) (*model.SearchResult[model.NetworkSummary], error) {
	return s.networks(ctx, "/search/network/genes", query, page)
}

func (s *SearchService) networks(ctx context.Context, p, query string, page Page) (*model.SearchResult[model.NetworkSummary], error) {
	req, err := s.find(p, query, page)
	if err != nil {
		return nil, err
	}
	res, err := decode[model.NetworkSearchResult](ctx, s.service, req)
	if err != nil {
		return nil, err
	}
	out := res.AsSearchResult()
	return &out, nil
}

// InterconnectQuery returns, as CX, the subnetwork that connects the nodes
// matched by query. With save set the server also stores the result as a
// new network.
func (s *SearchService) InterconnectQuery(ctx context.Context, networkID uuid.UUID, query *model.SimplePathQuery, save bool, accessKey string) (json.RawMessage, error) {
	return s.query(ctx, networkID, "interconnectquery", query, save, accessKey)
}

// Query returns, as CX, the neighborhood of the nodes matched by query.
func (s *SearchService) Query(ctx context.Context, networkID uuid.UUID, query *model.SimplePathQuery, save bool, accessKey string) (json.RawMessage, error) {
	return s.query(ctx, networkID, "query", query, save, accessKey)
}

func (s *SearchService) query(ctx context.Context, networkID uuid.UUID, kind string, query *model.SimplePathQuery, save bool, accessKey string) (json.RawMessage, error) {
	req, err := withBody(http.MethodPost, path("search", "network", networkID.String(), kind), query)
	if err != nil {
		return nil, err
	}
	req.AddQuery("accesskey", accessKey).AddQuery("save", save)
	return s.raw(ctx, req)
}

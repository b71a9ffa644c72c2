package ndex

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/kbukum/ndex-go/httpclient"
	"github.com/kbukum/ndex-go/model"
	"github.com/kbukum/ndex-go/validation"
)

// NetworkService manages single networks. Network content is exchanged as
// raw CX JSON.
type NetworkService struct{ service }

func networkPath(id uuid.UUID, sub ...string) string {
	return path(append([]string{"network", id.String()}, sub...)...)
}

// Create uploads a CX network and returns the new network's id. An empty
// visibility leaves the choice to the server.
func (s *NetworkService) Create(ctx context.Context, cx json.RawMessage, visibility model.Visibility) (uuid.UUID, error) {
	req, err := withBody(http.MethodPost, "/network", cx)
	if err != nil {
		return uuid.Nil, err
	}
	req.AddQuery("visibility", visibility)
	body, err := s.raw(ctx, req)
	if err != nil {
		return uuid.Nil, err
	}
	return idFromLocation(body)
}

// GetComplete downloads the whole network as CX.
func (s *NetworkService) GetComplete(ctx context.Context, networkID uuid.UUID, accessKey string) (json.RawMessage, error) {
	req := httpclient.NewRequest(http.MethodGet, networkPath(networkID)).AddQuery("accesskey", accessKey)
	return s.raw(ctx, req)
}

// Update replaces the network content with cx.
func (s *NetworkService) Update(ctx context.Context, networkID uuid.UUID, cx json.RawMessage) error {
	req, err := withBody(http.MethodPut, networkPath(networkID), cx)
	if err != nil {
		return err
	}
	return s.discard(ctx, req)
}

// Delete deletes a network.
func (s *NetworkService) Delete(ctx context.Context, networkID uuid.UUID) error {
	return s.discard(ctx, httpclient.NewRequest(http.MethodDelete, networkPath(networkID)))
}

// GetAccessKey returns the network's access key, or "" when access keys are
// disabled for it.
func (s *NetworkService) GetAccessKey(ctx context.Context, networkID uuid.UUID) (string, error) {
	req := httpclient.NewRequest(http.MethodGet, networkPath(networkID, "accesskey"))
	keys, err := decode[map[string]string](ctx, s.service, req)
	if err != nil {
		return "", err
	}
	return keys["accessKey"], nil
}

// SetAccessKey enables or disables the network's access key.
func (s *NetworkService) SetAccessKey(ctx context.Context, networkID uuid.UUID, action model.AccessKeyAction) error {
	err := validation.New().
		Custom(action == model.AccessKeyEnable || action == model.AccessKeyDisable, "action", `must be "enable" or "disable"`).
		Validate()
	if err != nil {
		return err
	}
	req := httpclient.NewRequest(http.MethodPut, networkPath(networkID, "accesskey")).AddQuery("action", action)
	return s.discard(ctx, req)
}

// GetMetadataCollection returns the CX metadata of every aspect.
func (s *NetworkService) GetMetadataCollection(ctx context.Context, networkID uuid.UUID, accessKey string) (*model.MetadataCollection, error) {
	req := httpclient.NewRequest(http.MethodGet, networkPath(networkID, "aspect")).AddQuery("accesskey", accessKey)
	return decode[*model.MetadataCollection](ctx, s.service, req)
}

// GetAspectElements returns up to limit elements of one aspect. A limit of
// zero or less uses DefaultPageSize.
func (s *NetworkService) GetAspectElements(ctx context.Context, networkID uuid.UUID, aspect string, limit int) ([]map[string]any, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	req := httpclient.NewRequest(http.MethodGet, networkPath(networkID, "aspect", aspect)).AddQuery("limit", limit)
	return decode[[]map[string]any](ctx, s.service, req)
}

// GetAspectMetadata returns the metadata of one aspect. The server only
// answers this endpoint with JSON when asked for it explicitly.
func (s *NetworkService) GetAspectMetadata(ctx context.Context, networkID uuid.UUID, aspect string) (*model.MetadataElement, error) {
	req := httpclient.NewRequest(http.MethodGet, networkPath(networkID, "aspect", aspect, "metadata"))
	return decodeAcceptJSON[*model.MetadataElement](ctx, s.service, req)
}

// UpdateAspects replaces the aspects present in cx and keeps the others.
func (s *NetworkService) UpdateAspects(ctx context.Context, networkID uuid.UUID, cx json.RawMessage) error {
	req, err := withBody(http.MethodPut, networkPath(networkID, "aspects"), cx)
	if err != nil {
		return err
	}
	return s.discard(ctx, req)
}

// Clone copies a network and returns the id of the copy.
func (s *NetworkService) Clone(ctx context.Context, networkID uuid.UUID) (uuid.UUID, error) {
	body, err := s.raw(ctx, httpclient.NewRequest(http.MethodPost, networkPath(networkID, "copy")))
	if err != nil {
		return uuid.Nil, err
	}
	return idFromLocation(body)
}

// UpdateProfile updates name, description and version from a partial
// summary.
func (s *NetworkService) UpdateProfile(ctx context.Context, networkID uuid.UUID, profile *model.NetworkSummary) error {
	req, err := withBody(http.MethodPut, networkPath(networkID, "profile"), profile)
	if err != nil {
		return err
	}
	return s.discard(ctx, req)
}

// SetProperties replaces the network attributes.
func (s *NetworkService) SetProperties(ctx context.Context, networkID uuid.UUID, properties []model.PropertyValuePair) error {
	req, err := withBody(http.MethodPut, networkPath(networkID, "properties"), properties)
	if err != nil {
		return err
	}
	return s.discard(ctx, req)
}

// GetProvenance returns the provenance history of a network.
func (s *NetworkService) GetProvenance(ctx context.Context, networkID uuid.UUID, accessKey string) (*model.ProvenanceEntity, error) {
	req := httpclient.NewRequest(http.MethodGet, networkPath(networkID, "provenance")).AddQuery("accesskey", accessKey)
	return decode[*model.ProvenanceEntity](ctx, s.service, req)
}

// SetProvenance replaces the provenance history of a network.
func (s *NetworkService) SetProvenance(ctx context.Context, networkID uuid.UUID, provenance *model.ProvenanceEntity) error {
	req, err := withBody(http.MethodPut, networkPath(networkID, "provenance"), provenance)
	if err != nil {
		return err
	}
	return s.discard(ctx, req)
}

// GetSample returns the sample network as CX. Only networks with more than
// 500 edges have a sample.
func (s *NetworkService) GetSample(ctx context.Context, networkID uuid.UUID, accessKey string) (json.RawMessage, error) {
	req := httpclient.NewRequest(http.MethodGet, networkPath(networkID, "sample")).AddQuery("accesskey", accessKey)
	return s.raw(ctx, req)
}

// SetSample replaces the sample network.
func (s *NetworkService) SetSample(ctx context.Context, networkID uuid.UUID, cx json.RawMessage) error {
	req, err := withBody(http.MethodPut, networkPath(networkID, "sample"), cx)
	if err != nil {
		return err
	}
	return s.discard(ctx, req)
}

// GetSummary returns the network summary.
func (s *NetworkService) GetSummary(ctx context.Context, networkID uuid.UUID, accessKey string) (*model.NetworkSummary, error) {
	req := httpclient.NewRequest(http.MethodGet, networkPath(networkID, "summary")).AddQuery("accesskey", accessKey)
	return decode[*model.NetworkSummary](ctx, s.service, req)
}

// UpdateSummary replaces the network summary.
func (s *NetworkService) UpdateSummary(ctx context.Context, networkID uuid.UUID, summary *model.NetworkSummary) error {
	req, err := withBody(http.MethodPut, networkPath(networkID, "summary"), summary)
	if err != nil {
		return err
	}
	return s.discard(ctx, req)
}

// SetSystemProperties changes the server-managed flags of a network. Only
// the properties that are set are sent.
func (s *NetworkService) SetSystemProperties(ctx context.Context, networkID uuid.UUID, props *model.NetworkSystemProperties) error {
	req, err := withBody(http.MethodPut, networkPath(networkID, "systemproperty"), props)
	if err != nil {
		return err
	}
	return s.discard(ctx, req)
}

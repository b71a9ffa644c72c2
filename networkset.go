package ndex

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/kbukum/ndex-go/httpclient"
	"github.com/kbukum/ndex-go/model"
)

// NetworkSetService manages network sets.
type NetworkSetService struct{ service }

func networkSetPath(id uuid.UUID, sub ...string) string {
	return path(append([]string{"networkset", id.String()}, sub...)...)
}

// Create creates a network set and returns its id.
func (s *NetworkSetService) Create(ctx context.Context, set *model.NetworkSet) (uuid.UUID, error) {
	req, err := withBody(http.MethodPost, "/networkset", set)
	if err != nil {
		return uuid.Nil, err
	}
	body, err := s.raw(ctx, req)
	if err != nil {
		return uuid.Nil, err
	}
	return idFromLocation(body)
}

// Get returns a network set. accessKey, when set, grants access to a private
// set.
func (s *NetworkSetService) Get(ctx context.Context, setID uuid.UUID, accessKey string) (*model.NetworkSet, error) {
	req := httpclient.NewRequest(http.MethodGet, networkSetPath(setID)).AddQuery("accesskey", accessKey)
	return decode[*model.NetworkSet](ctx, s.service, req)
}

// Update replaces name, description and properties of a network set.
func (s *NetworkSetService) Update(ctx context.Context, setID uuid.UUID, set *model.NetworkSet) error {
	req, err := withBody(http.MethodPut, networkSetPath(setID), set)
	if err != nil {
		return err
	}
	return s.discard(ctx, req)
}

// Delete deletes a network set. The member networks are kept.
func (s *NetworkSetService) Delete(ctx context.Context, setID uuid.UUID) error {
	return s.discard(ctx, httpclient.NewRequest(http.MethodDelete, networkSetPath(setID)))
}

// AddNetworks adds networks to a set.
func (s *NetworkSetService) AddNetworks(ctx context.Context, setID uuid.UUID, networkIDs []uuid.UUID) error {
	req, err := withBody(http.MethodPost, networkSetPath(setID, "members"), uniqueIDs(networkIDs))
	if err != nil {
		return err
	}
	return s.discard(ctx, req)
}

// RemoveNetworks removes networks from a set. The ids travel in the body of
// a DELETE request.
func (s *NetworkSetService) RemoveNetworks(ctx context.Context, setID uuid.UUID, networkIDs []uuid.UUID) error {
	req, err := withBody(http.MethodDelete, networkSetPath(setID, "members"), uniqueIDs(networkIDs))
	if err != nil {
		return err
	}
	return s.discard(ctx, req)
}

// SetSystemProperties changes the showcase flag of a network set.
func (s *NetworkSetService) SetSystemProperties(ctx context.Context, setID uuid.UUID, props *model.NetworkSetSystemProperties) error {
	req, err := withBody(http.MethodPut, networkSetPath(setID, "systemproperty"), props)
	if err != nil {
		return err
	}
	return s.discard(ctx, req)
}

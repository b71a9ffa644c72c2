package ndex

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/kbukum/ndex-go/httpclient"
	"github.com/kbukum/ndex-go/model"
	"github.com/kbukum/ndex-go/validation"
)

// GroupService manages groups and their members.
type GroupService struct{ service }

// Create creates a group owned by the authenticated user and returns its id.
func (s *GroupService) Create(ctx context.Context, group *model.Group) (uuid.UUID, error) {
	req, err := withBody(http.MethodPost, "/group", group)
	if err != nil {
		return uuid.Nil, err
	}
	body, err := s.raw(ctx, req)
	if err != nil {
		return uuid.Nil, err
	}
	return idFromLocation(body)
}

// Get returns a group. A missing group fails with a not-found DomainError.
func (s *GroupService) Get(ctx context.Context, groupID uuid.UUID) (*model.Group, error) {
	req := httpclient.NewRequest(http.MethodGet, path("group", groupID.String()))
	return decode[*model.Group](ctx, s.service, req)
}

// Update replaces the metadata of a group.
func (s *GroupService) Update(ctx context.Context, groupID uuid.UUID, group *model.Group) error {
	req, err := withBody(http.MethodPut, path("group", groupID.String()), group)
	if err != nil {
		return err
	}
	return s.discard(ctx, req)
}

// Delete deletes a group.
func (s *GroupService) Delete(ctx context.Context, groupID uuid.UUID) error {
	return s.discard(ctx, httpclient.NewRequest(http.MethodDelete, path("group", groupID.String())))
}

// GetMembers lists the members of a group. filter narrows the result to
// MEMBER or GROUPADMIN; an empty filter returns both.
func (s *GroupService) GetMembers(ctx context.Context, groupID uuid.UUID, filter model.Permissions, page Page) ([]model.Membership, error) {
	req := httpclient.NewRequest(http.MethodGet, path("group", groupID.String(), "membership")).
		AddQuery("type", filter)
	return decode[[]model.Membership](ctx, s.service, page.startSize(req))
}

// AddOrUpdateMember adds a user to a group or changes their membership type.
func (s *GroupService) AddOrUpdateMember(ctx context.Context, groupID, userID uuid.UUID, permission model.Permissions) error {
	err := validation.New().
		RequiredUUID("userid", userID).
		Required("type", string(permission)).
		Validate()
	if err != nil {
		return err
	}
	req := httpclient.NewRequest(http.MethodPut, path("group", groupID.String(), "membership")).
		AddQuery("userid", userID).
		AddQuery("type", permission)
	return s.discard(ctx, req)
}

// RemoveMember removes a user from a group.
func (s *GroupService) RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error {
	if err := validation.New().RequiredUUID("userid", userID).Validate(); err != nil {
		return err
	}
	req := httpclient.NewRequest(http.MethodDelete, path("group", groupID.String(), "membership")).
		AddQuery("userid", userID)
	return s.discard(ctx, req)
}

// GetNetworkPermissions returns the explicit permission the group holds on a
// network, keyed by network id.
func (s *GroupService) GetNetworkPermissions(ctx context.Context, groupID, networkID uuid.UUID) (map[uuid.UUID]model.Permissions, error) {
	req := httpclient.NewRequest(http.MethodGet, path("group", groupID.String(), "permission")).
		AddQuery("networkid", networkID)
	return decode[map[uuid.UUID]model.Permissions](ctx, s.service, req)
}

package ndex

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/kbukum/ndex-go/httpclient"
	"github.com/kbukum/ndex-go/model"
)

// UserService reads what a user owns and belongs to.
type UserService struct{ service }

// NetworkSetFilter narrows GetNetworkSets.
type NetworkSetFilter struct {
	Page
	// SummaryOnly omits the member network ids.
	SummaryOnly bool
	// ShowcasedOnly returns only sets shown on the user's profile page.
	ShowcasedOnly bool
}

func userPath(id uuid.UUID, sub string) string {
	return path("user", id.String(), sub)
}

// GetGroupPermission returns the user's membership type in one group, or ""
// when the user is not a member.
func (s *UserService) GetGroupPermission(ctx context.Context, userID, groupID uuid.UUID) (model.Permissions, error) {
	req := httpclient.NewRequest(http.MethodGet, userPath(userID, "membership")).AddQuery("groupid", groupID)
	perms, err := decode[map[uuid.UUID]model.Permissions](ctx, s.service, req)
	if err != nil {
		return "", err
	}
	return perms[groupID], nil
}

// GetGroupMemberships returns the groups the user belongs to with the given
// membership type, keyed by group id.
func (s *UserService) GetGroupMemberships(ctx context.Context, userID uuid.UUID, membership model.Permissions, page Page) (map[uuid.UUID]model.Permissions, error) {
	req := httpclient.NewRequest(http.MethodGet, userPath(userID, "membership")).AddQuery("type", membership)
	return decode[map[uuid.UUID]model.Permissions](ctx, s.service, page.startSize(req))
}

// GetNetworkSets returns the network sets owned by the user.
func (s *UserService) GetNetworkSets(ctx context.Context, userID uuid.UUID, filter NetworkSetFilter) ([]model.NetworkSet, error) {
	req := filter.offsetLimit(httpclient.NewRequest(http.MethodGet, userPath(userID, "networksets"))).
		AddQuery("summary", filter.SummaryOnly).
		AddQuery("showcase", filter.ShowcasedOnly)
	return decode[[]model.NetworkSet](ctx, s.service, req)
}

// GetNetworkSummaries returns summaries of the networks owned by the user.
func (s *UserService) GetNetworkSummaries(ctx context.Context, userID uuid.UUID, page Page) ([]model.NetworkSummary, error) {
	req := page.offsetLimit(httpclient.NewRequest(http.MethodGet, userPath(userID, "networksummary")))
	return decode[[]model.NetworkSummary](ctx, s.service, req)
}

// GetNetworkPermission returns the user's highest permission on a network,
// or "" when the user has none. With directOnly set, permissions inherited
// through groups are ignored.
func (s *UserService) GetNetworkPermission(ctx context.Context, userID, networkID uuid.UUID, directOnly bool) (model.Permissions, error) {
	req := httpclient.NewRequest(http.MethodGet, userPath(userID, "permission")).
		AddQuery("networkid", networkID).
		AddQuery("directonly", directOnly)
	perms, err := decode[map[uuid.UUID]model.Permissions](ctx, s.service, req)
	if err != nil {
		return "", err
	}
	return perms[networkID], nil
}

package ndex

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/kbukum/ndex-go/model"
)

// BatchService fetches or exports many objects in one call. Repeated ids
// are sent once.
type BatchService struct{ service }

// GetGroups returns the groups with the given ids. The server returns at
// most 2000 groups.
func (s *BatchService) GetGroups(ctx context.Context, ids []uuid.UUID) ([]model.Group, error) {
	req, err := withBody(http.MethodPost, "/batch/group", uniqueIDs(ids))
	if err != nil {
		return nil, err
	}
	return decode[[]model.Group](ctx, s.service, req)
}

// GetUsers returns the users with the given ids.
func (s *BatchService) GetUsers(ctx context.Context, ids []uuid.UUID) ([]model.User, error) {
	req, err := withBody(http.MethodPost, "/batch/user", uniqueIDs(ids))
	if err != nil {
		return nil, err
	}
	return decode[[]model.User](ctx, s.service, req)
}

// ExportNetworks starts one export task per network and returns the task id
// keyed by network id. Use TaskService.DownloadFile to fetch the result.
func (s *BatchService) ExportNetworks(ctx context.Context, export *model.NetworkExportRequest) (map[uuid.UUID]uuid.UUID, error) {
	req, err := withBody(http.MethodPost, "/batch/network/export", export)
	if err != nil {
		return nil, err
	}
	return decode[map[uuid.UUID]uuid.UUID](ctx, s.service, req)
}

// GetNetworkPermissions returns the highest permission the authenticated
// user holds on each of the networks.
func (s *BatchService) GetNetworkPermissions(ctx context.Context, networkIDs []uuid.UUID) (map[uuid.UUID]model.Permissions, error) {
	req, err := withBody(http.MethodPost, "/batch/network/permission", uniqueIDs(networkIDs))
	if err != nil {
		return nil, err
	}
	return decode[map[uuid.UUID]model.Permissions](ctx, s.service, req)
}

// GetNetworkSummaries returns the summaries of the networks the caller may
// read. accessKey, when set, is a network set access key that grants read
// access to the set's members.
func (s *BatchService) GetNetworkSummaries(ctx context.Context, networkIDs []uuid.UUID, accessKey string) ([]model.NetworkSummary, error) {
	req, err := withBody(http.MethodPost, "/batch/network/summary", uniqueIDs(networkIDs))
	if err != nil {
		return nil, err
	}
	req.AddQuery("accesskey", accessKey)
	return decode[[]model.NetworkSummary](ctx, s.service, req)
}

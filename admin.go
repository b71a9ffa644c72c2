package ndex

import (
	"context"
	"net/http"

	"github.com/kbukum/ndex-go/httpclient"
	"github.com/kbukum/ndex-go/model"
)

// AdminService reads server information.
type AdminService struct{ service }

// GetStatus returns the operational status of the server. An empty format
// asks for the full status, which includes the supported importers and
// exporters.
func (s *AdminService) GetStatus(ctx context.Context, format model.AdminStatusFormat) (*model.NDExStatus, error) {
	if format != model.StatusFormatShort {
		format = model.StatusFormatFull
	}
	req := httpclient.NewRequest(http.MethodGet, "/admin/status").AddQuery("format", format)
	return decode[*model.NDExStatus](ctx, s.service, req)
}

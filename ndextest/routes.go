package ndextest

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kbukum/ndex-go/errors"
	"github.com/kbukum/ndex-go/model"
)

// Fixture values served by the default routes.
const (
	NetworkCount  = 1250
	UserCount     = 340
	GroupCount    = 27
	StatusMessage = "Online"
)

// ImporterExporters is the property only present in the full status.
var ImporterExporters = []map[string]any{
	{"name": "GraphML", "importer": false, "exporter": true},
	{"name": "GSEA Gene Set", "importer": false, "exporter": true},
}

// RespondError writes the NDEx JSON error body for code with its HTTP status.
func RespondError(c *gin.Context, code errors.ErrorCode, message string) {
	c.AbortWithStatusJSON(code.HTTPStatus(), errors.NewPayload(code, message))
}

func (s *Server) registerDefaults() {
	s.engine.GET("/admin/status", adminStatus)
	s.engine.GET("/group/:id", groupNotFound)
	s.engine.POST("/batch/group", batchGroups)
	s.engine.POST("/networkset/:id/members", networkSetMembers)
	s.engine.DELETE("/networkset/:id/members", networkSetMembers)
	s.engine.GET("/network/:id/aspect/:aspect/metadata", aspectMetadata)
}

func adminStatus(c *gin.Context) {
	status := model.NDExStatus{
		NetworkCount: NetworkCount,
		UserCount:    UserCount,
		GroupCount:   GroupCount,
		Message:      StatusMessage,
		Properties:   map[string]any{"ServerVersion": "2.5.0"},
	}
	switch c.DefaultQuery("format", "short") {
	case "full":
		status.Properties["ImporterExporters"] = ImporterExporters
	case "short":
	default:
		RespondError(c, errors.ErrCodeBadRequest, "format must be full or short")
		return
	}
	c.JSON(http.StatusOK, status)
}

func groupNotFound(c *gin.Context) {
	RespondError(c, errors.ErrCodeNotFound, "Group with UUID: "+c.Param("id")+" doesn't exist.")
}

func batchGroups(c *gin.Context) {
	var ids []uuid.UUID
	if err := c.ShouldBindJSON(&ids); err != nil {
		RespondError(c, errors.ErrCodeBadRequest, err.Error())
		return
	}
	groups := make([]model.Group, 0, len(ids))
	for i, id := range ids {
		g := model.Group{GroupName: "group-" + string(rune('a'+i%26))}
		g.ExternalID = id
		groups = append(groups, g)
	}
	c.JSON(http.StatusOK, groups)
}

func networkSetMembers(c *gin.Context) {
	if _, err := uuid.Parse(c.Param("id")); err != nil {
		RespondError(c, errors.ErrCodeBadRequest, "invalid network set id")
		return
	}
	var ids []uuid.UUID
	if err := c.ShouldBindJSON(&ids); err != nil || len(ids) == 0 {
		RespondError(c, errors.ErrCodeBadRequest, "network id list is required")
		return
	}
	c.Status(http.StatusNoContent)
}

// aspectMetadata answers JSON only when the client asks for it, like the
// real server's content negotiation on this endpoint.
func aspectMetadata(c *gin.Context) {
	if !strings.Contains(c.GetHeader("Accept"), "application/json") {
		c.String(http.StatusNotAcceptable, "Not Acceptable")
		return
	}
	c.JSON(http.StatusOK, model.MetadataElement{
		Name:         c.Param("aspect"),
		Version:      "1.0",
		ElementCount: 42,
	})
}

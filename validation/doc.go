// Package validation checks configuration and request bodies before any
// network activity.
//
// Struct tag validation uses go-playground/validator and reports failures as
// *errors.ValidationError with one message per field:
//
//	type NetworkExportRequest struct {
//	    ExportFormat string      `json:"exportFormat" validate:"required"`
//	    NetworkIDs   []uuid.UUID `json:"networkIds" validate:"required,min=1"`
//	}
//	err := validation.Struct(req)
//
// Programmatic checks collect field errors the same way:
//
//	v := validation.New()
//	v.RequiredUUID("id", id)
//	err := v.Validate()
package validation

package errors

import "net/http"

// ErrorCode is the server-defined category of a DomainError.
type ErrorCode string

const (
	// ErrCodeGeneric is the catch-all NDEx server error.
	ErrCodeGeneric ErrorCode = "NDEx_Exception"
	// ErrCodeUnauthorized indicates missing or invalid credentials.
	ErrCodeUnauthorized ErrorCode = "NDEx_Unauthorized_Operation_Exception"
	// ErrCodeDuplicate indicates the object already exists.
	ErrCodeDuplicate ErrorCode = "NDEx_Duplicate_Object_Exception"
	// ErrCodeNotFound indicates the referenced object does not exist.
	ErrCodeNotFound ErrorCode = "NDEx_Object_Not_Found_Exception"
	// ErrCodeForbidden indicates the caller lacks permission.
	ErrCodeForbidden ErrorCode = "NDEx_Forbidden_Operation_Exception"
	// ErrCodeValidation indicates the server rejected the payload.
	ErrCodeValidation ErrorCode = "NDEx_Validation_Exception"
	// ErrCodeConcurrentModification indicates the object is being modified.
	ErrCodeConcurrentModification ErrorCode = "NDEx_Concurrent_Modification_Exception"
	// ErrCodeModifyInvalidNetwork indicates a write to a network that failed validation.
	ErrCodeModifyInvalidNetwork ErrorCode = "NDEx_Modify_Invalid_Network_Exception"
	// ErrCodeBadRequest indicates a malformed request.
	ErrCodeBadRequest ErrorCode = "NDEx_Bad_Request_Exception"
	// ErrCodeUnsupportedMediaType indicates the body format is not accepted.
	ErrCodeUnsupportedMediaType ErrorCode = "NDEx_Unsupported_Media_Type"
)

var codeStatus = map[ErrorCode]int{
	ErrCodeGeneric:                http.StatusInternalServerError,
	ErrCodeUnauthorized:           http.StatusUnauthorized,
	ErrCodeDuplicate:              http.StatusConflict,
	ErrCodeNotFound:               http.StatusNotFound,
	ErrCodeForbidden:              http.StatusForbidden,
	ErrCodeValidation:             http.StatusBadRequest,
	ErrCodeConcurrentModification: http.StatusLocked,
	ErrCodeModifyInvalidNetwork:   http.StatusBadRequest,
	ErrCodeBadRequest:             http.StatusBadRequest,
	ErrCodeUnsupportedMediaType:   http.StatusUnsupportedMediaType,
}

// Known reports whether c is one of the codes the server defines.
func (c ErrorCode) Known() bool {
	_, ok := codeStatus[c]
	return ok
}

// HTTPStatus returns the status code the server answers with for c.
// Unknown codes map to 500.
func (c ErrorCode) HTTPStatus() int {
	if s, ok := codeStatus[c]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// String returns the wire name of the code.
func (c ErrorCode) String() string {
	return string(c)
}

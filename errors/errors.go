package errors

import (
	stderrors "errors"
	"fmt"
)

// DomainError is a failure the server reported with a structured JSON payload.
type DomainError struct {
	// Code is the server-defined category.
	Code ErrorCode
	// Method is the HTTP method of the failed call.
	Method string
	// URL is the full request URL (base URL + path with query).
	URL string
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Cause is the parsed server payload.
	Cause *Payload
}

// NewDomainError wraps a parsed payload with the context of the failed call.
func NewDomainError(method, url string, statusCode int, payload *Payload) *DomainError {
	code := ErrCodeGeneric
	if payload != nil && payload.ErrorCode != "" {
		code = payload.ErrorCode
	}
	return &DomainError{
		Code:       code,
		Method:     method,
		URL:        url,
		StatusCode: statusCode,
		Cause:      payload,
	}
}

// Error renders "Error on {METHOD} - {url}: HTTP {status} ---> {server message}".
func (e *DomainError) Error() string {
	msg := fmt.Sprintf("Error on %s - %s: HTTP %d", e.Method, e.URL, e.StatusCode)
	if e.Cause != nil {
		msg += " ---> " + e.Cause.Error()
	}
	return msg
}

// Description returns the server's own description of the failure.
func (e *DomainError) Description() string {
	if e.Cause == nil {
		return ""
	}
	return e.Cause.Error()
}

// Unwrap returns the parsed payload.
func (e *DomainError) Unwrap() error {
	if e.Cause == nil {
		return nil
	}
	return e.Cause
}

// TransportError is a failure without a structured server payload: a non-JSON
// error response, or no HTTP response at all.
type TransportError struct {
	Method string
	URL    string
	// StatusCode is 0 when no response was received.
	StatusCode int
	// Reason is the HTTP reason phrase.
	Reason string
	// Body is the raw response body, if any.
	Body []byte
	// Err is the underlying network or decoding error, if any.
	Err error
}

// NewStatusError creates a TransportError for a non-JSON failure response.
func NewStatusError(method, url string, statusCode int, reason string, body []byte) *TransportError {
	return &TransportError{
		Method:     method,
		URL:        url,
		StatusCode: statusCode,
		Reason:     reason,
		Body:       body,
	}
}

// NewConnectionError creates a TransportError for a call that got no response.
func NewConnectionError(method, url string, err error) *TransportError {
	return &TransportError{Method: method, URL: url, Err: err}
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("Error on %s - %s ---> %v", e.Method, e.URL, e.Err)
	}
	msg := fmt.Sprintf("Error on %s - %s: HTTP %d ---> %s", e.Method, e.URL, e.StatusCode, e.Reason)
	if e.Err != nil {
		msg += fmt.Sprintf(" (%v)", e.Err)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error { return e.Err }

// ValidationError is raised locally, before any network activity.
type ValidationError struct {
	Message string
	// Fields holds per-field messages from struct validation.
	Fields map[string]string
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// Error implements the error interface.
func (e *ValidationError) Error() string { return e.Message }

// ErrNullBody is the message used when a request body is nil.
const ErrNullBody = "Request body cannot be null."

// IsDomain reports whether err is, or wraps, a DomainError.
func IsDomain(err error) bool {
	var e *DomainError
	return stderrors.As(err, &e)
}

// IsTransport reports whether err is, or wraps, a TransportError.
func IsTransport(err error) bool {
	var e *TransportError
	return stderrors.As(err, &e)
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var e *ValidationError
	return stderrors.As(err, &e)
}

// CodeOf returns the ErrorCode of a DomainError in err's chain.
func CodeOf(err error) (ErrorCode, bool) {
	var e *DomainError
	if stderrors.As(err, &e) {
		return e.Code, true
	}
	return "", false
}

// IsNotFound reports whether err is a DomainError with ErrCodeNotFound.
func IsNotFound(err error) bool {
	code, ok := CodeOf(err)
	return ok && code == ErrCodeNotFound
}

// IsUnauthorized reports whether err is a DomainError with ErrCodeUnauthorized.
func IsUnauthorized(err error) bool {
	code, ok := CodeOf(err)
	return ok && code == ErrCodeUnauthorized
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var de *DomainError
	if stderrors.As(err, &de) {
		return de.StatusCode
	}
	var te *TransportError
	if stderrors.As(err, &te) {
		return te.StatusCode
	}
	return 0
}

// Package errors defines the error taxonomy of the NDEx client.
//
// Three kinds of failure reach callers:
//
//   - DomainError: the server understood the request and rejected it. It
//     carries a machine-readable ErrorCode parsed from the JSON error payload.
//   - TransportError: the server answered with a non-JSON failure, or no
//     well-formed HTTP response arrived at all (DNS, refused, proxy).
//   - ValidationError: the request was rejected locally before sending.
//
// Use errors.As with the concrete types, or the Is* helpers, to branch.
package errors

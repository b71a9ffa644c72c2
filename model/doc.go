// Package model holds the NDEx records exchanged with the server.
//
// The types carry no behavior beyond JSON encoding. Identifiers are
// uuid.UUID values; dates use Timestamp, which understands the server's
// "yyyy-MM-dd H:mm:ss,fff" format.
package model

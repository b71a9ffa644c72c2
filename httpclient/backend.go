package httpclient

import (
	"fmt"
	"strings"
)

// Backend names a transport implementation.
type Backend string

const (
	// BackendPooled keeps one long-lived client with a keep-alive connection pool.
	BackendPooled Backend = "pooled"
	// BackendSimple builds a one-shot client per connection request, without keep-alives.
	BackendSimple Backend = "simple"
	// BackendLowLevel writes HTTP/1.1 by hand over a raw connection.
	BackendLowLevel Backend = "lowlevel"
)

// Backends lists every supported backend.
var Backends = []Backend{BackendPooled, BackendSimple, BackendLowLevel}

// ParseBackend maps a name to a Backend. An empty name selects pooled.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case "":
		return BackendPooled, nil
	case BackendPooled, BackendSimple, BackendLowLevel:
		return b, nil
	default:
		return "", fmt.Errorf("httpclient: unknown backend %q", s)
	}
}

func (b Backend) String() string { return string(b) }

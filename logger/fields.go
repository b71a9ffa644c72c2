package logger

import "time"

// Standard field keys used by the client packages.
const (
	FieldComponent = "component"
	FieldBackend   = "backend"
	FieldMethod    = "method"
	FieldURL       = "url"
	FieldStatus    = "status"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
	FieldBaseURL   = "base_url"
)

// Fields builds a map from alternating key-value pairs.
//
//	logger.Debug("done", logger.Fields("method", "GET", "status", 200))
func Fields(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// CallFields creates fields describing one HTTP exchange.
func CallFields(method, url string, status int, d time.Duration) map[string]any {
	return map[string]any{
		FieldMethod:   method,
		FieldURL:      url,
		FieldStatus:   status,
		FieldDuration: d.Milliseconds(),
	}
}

// MergeWithError adds an error field to an existing map.
func MergeWithError(fields map[string]any, err error) map[string]any {
	if fields == nil {
		fields = make(map[string]any)
	}
	fields[FieldError] = err.Error()
	return fields
}

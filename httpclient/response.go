package httpclient

import (
	"net/http"
	"strings"
)

// Response is the result of one completed HTTP exchange. It is built once
// and never modified.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Reason is the reason phrase from the status line, e.g. "Not Found".
	Reason string
	// ContentType is the raw Content-Type header, "" when absent.
	ContentType string
	// Headers are the response headers; repeated values are joined with ", ".
	Headers map[string]string
	// Body is the decoded (decompressed) response body.
	Body []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Text returns the body as a string.
func (r *Response) Text() string {
	return string(r.Body)
}

func newResponse(resp *http.Response, body []byte) *Response {
	headers := make(map[string]string, len(resp.Header))
	for k, v := range resp.Header {
		headers[k] = strings.Join(v, ", ")
	}
	return &Response{
		StatusCode:  resp.StatusCode,
		Reason:      reasonPhrase(resp.Status, resp.StatusCode),
		ContentType: resp.Header.Get("Content-Type"),
		Headers:     headers,
		Body:        body,
	}
}

// reasonPhrase extracts "Not Found" from "404 Not Found", falling back to
// the standard text for the code.
func reasonPhrase(status string, code int) string {
	if _, reason, ok := strings.Cut(status, " "); ok && reason != "" {
		return reason
	}
	if text := http.StatusText(code); text != "" {
		return text
	}
	return "Unknown"
}

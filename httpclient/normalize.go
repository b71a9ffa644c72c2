package httpclient

import (
	"bytes"
	"fmt"
	"mime"
	"strings"

	"github.com/kbukum/ndex-go/errors"
)

// normalize maps a completed exchange to nil or a typed error. The policy is
// the same for every backend:
//
//   - 2xx is success.
//   - A JSON content type is parsed as the NDEx error payload (DomainError).
//   - A missing content type falls back to sniffing for a JSON object.
//   - Anything else is a TransportError carrying the reason phrase.
func normalize(method, url string, resp *Response) error {
	if resp.IsSuccess() {
		return nil
	}
	if isJSONError(resp) {
		return domainError(method, url, resp)
	}
	return errors.NewStatusError(method, url, resp.StatusCode, resp.Reason, resp.Body)
}

func isJSONError(resp *Response) bool {
	if resp.ContentType == "" {
		return looksLikeJSON(resp.Body)
	}
	return isJSONMediaType(resp.ContentType)
}

func isJSONMediaType(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mt = strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])
	}
	return strings.EqualFold(mt, "application/json")
}

func looksLikeJSON(body []byte) bool {
	return bytes.HasPrefix(bytes.TrimSpace(body), []byte("{"))
}

func domainError(method, url string, resp *Response) error {
	payload, err := errors.ParsePayload(resp.Body)
	if err != nil {
		te := errors.NewStatusError(method, url, resp.StatusCode, resp.Reason, resp.Body)
		te.Err = fmt.Errorf("parsing error payload: %w", err)
		return te
	}
	return errors.NewDomainError(method, url, resp.StatusCode, payload)
}

// errorKind labels err for metrics.
func errorKind(err error) string {
	switch {
	case errors.IsDomain(err):
		return "domain"
	case errors.IsValidation(err):
		return "validation"
	default:
		return "transport"
	}
}

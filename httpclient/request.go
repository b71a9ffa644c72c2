package httpclient

import (
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/kbukum/ndex-go/errors"
	"github.com/kbukum/ndex-go/validation"
)

// Request describes one outbound call: method, path with query, optional body
// and a per-call header overlay. A Request is built by one goroutine and then
// handed to a Transport; it is not safe for concurrent mutation.
type Request struct {
	method   string
	path     strings.Builder
	hasQuery bool
	body     []byte
	bodySet  bool
	headers  http.Header
}

// NewRequest creates a request for path, relative to the connection's BaseURL.
func NewRequest(method, path string) *Request {
	r := &Request{method: method}
	r.path.WriteString(path)
	r.hasQuery = strings.Contains(path, "?")
	return r
}

// Method returns the HTTP method.
func (r *Request) Method() string { return r.method }

// Path returns the path including any query segments added so far.
func (r *Request) Path() string { return r.path.String() }

// AddQuery appends key=value to the path. The first segment starts with '?',
// later ones with '&', in call order. Nil values, nil pointers and values that
// render to "" are skipped.
func (r *Request) AddQuery(key string, value any) *Request {
	s, ok := queryValue(value)
	if !ok || s == "" {
		return r
	}
	if r.hasQuery {
		r.path.WriteByte('&')
	} else {
		r.path.WriteByte('?')
		r.hasQuery = true
	}
	r.path.WriteString(url.QueryEscape(key))
	r.path.WriteByte('=')
	r.path.WriteString(url.QueryEscape(s))
	return r
}

// SetBody sets the request body. Strings and byte slices are sent as-is;
// anything else is encoded as JSON. A nil value is rejected with
// errors.ErrNullBody, and the body can only be set once.
func (r *Request) SetBody(value any) error {
	if validation.IsNil(value) {
		return errors.NewValidationError(errors.ErrNullBody)
	}
	if r.bodySet {
		return errors.NewValidationError("Request body is already set.")
	}

	switch v := value.(type) {
	case string:
		r.body = []byte(v)
	case []byte:
		r.body = append([]byte(nil), v...)
	case json.RawMessage:
		r.body = append([]byte(nil), v...)
	default:
		b, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("httpclient: encoding request body: %w", err)
		}
		r.body = b
	}
	r.bodySet = true
	return nil
}

// Body returns the encoded body, or nil when none was set.
func (r *Request) Body() []byte { return r.body }

// HasBody reports whether SetBody succeeded.
func (r *Request) HasBody() bool { return r.bodySet }

// WithHeader returns a copy of r with an extra header for this call only.
// r itself is not modified.
func (r *Request) WithHeader(key, value string) *Request {
	cp := &Request{
		method:   r.method,
		hasQuery: r.hasQuery,
		body:     r.body,
		bodySet:  r.bodySet,
		headers:  make(http.Header, len(r.headers)+1),
	}
	cp.path.WriteString(r.path.String())
	maps.Copy(cp.headers, r.headers)
	cp.headers.Set(key, value)
	return cp
}

// Header returns a per-call header value set with WithHeader.
func (r *Request) Header(key string) string {
	return r.headers.Get(key)
}

// queryValue renders a query value. ok is false for nil and nil pointers.
func queryValue(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case fmt.Stringer:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return "", false
		}
		return v.String(), true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return "", false
		}
		return queryValue(rv.Elem().Interface())
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	default:
		return fmt.Sprint(value), true
	}
}

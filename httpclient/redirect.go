package httpclient

import (
	"net/http"
	"net/url"
	"strings"
)

// maxRedirects is the number of requests one call may make while following
// redirects, the limit net/http applies for the pooled and simple backends.
const maxRedirects = 10

// sensitiveHeaders are not forwarded once a redirect leaves the original host.
var sensitiveHeaders = []string{"Authorization", "Www-Authenticate", "Cookie", "Cookie2"}

// redirectMethod returns the method used to follow a redirect with the given
// status, and whether the body goes with it. ok is false for statuses that
// are not followed.
func redirectMethod(status int, method string) (next string, keepBody, ok bool) {
	switch status {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther:
		if method != http.MethodGet && method != http.MethodHead {
			return http.MethodGet, false, true
		}
		return method, false, true
	case http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		return method, true, true
	}
	return "", false, false
}

// sameHost reports whether dest is the host of initial or a subdomain of it.
// Ports are ignored.
func sameHost(initial, dest *url.URL) bool {
	ih := strings.ToLower(initial.Hostname())
	dh := strings.ToLower(dest.Hostname())
	return dh == ih || strings.HasSuffix(dh, "."+ih)
}

// leftOrigin reports whether any hop of req's redirect chain went to a host
// other than the one the chain started from.
func leftOrigin(req *http.Request) bool {
	hops := []*url.URL{req.URL}
	for r := req; r.Response != nil && r.Response.Request != nil; r = r.Response.Request {
		hops = append(hops, r.Response.Request.URL)
	}
	origin := hops[len(hops)-1]
	for _, u := range hops[:len(hops)-1] {
		if !sameHost(origin, u) {
			return true
		}
	}
	return false
}

func stripSensitive(h http.Header) {
	for _, k := range sensitiveHeaders {
		h.Del(k)
	}
}

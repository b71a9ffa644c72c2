// Package httpclient is the transport core of the NDEx client.
//
// A Request describes one call (method, path with query segments, optional
// body). A Transport executes it and returns a Response or a typed error from
// the errors package. Three interchangeable backends implement Transport:
//
//   - pooled: one long-lived client over a keep-alive pool (default)
//   - simple: a one-shot client per connection request, no keep-alives
//   - lowlevel: HTTP/1.1 written by hand over a raw connection
//
// All backends send the same headers, support DELETE with a body and share
// one error policy: JSON error bodies become *errors.DomainError, anything
// else *errors.TransportError. Config.Proxy and Config.TLS apply to every
// backend alike.
//
// # Usage
//
//	f, err := httpclient.NewFactory(httpclient.Config{
//	    BaseURL: "https://www.ndexbio.org/v2",
//	    Auth:    httpclient.BasicAuth("user", "secret"),
//	})
//
//	t, err := f.GetOrCreate()
//	req := httpclient.NewRequest(http.MethodGet, "/admin/status").AddQuery("format", "full")
//	status, err := httpclient.Execute[model.NDExStatus](ctx, t, req)
package httpclient

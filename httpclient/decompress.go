package httpclient

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// acceptEncoding is advertised by the backends that decode bodies themselves.
const acceptEncoding = "gzip, deflate"

// decodeBody reads resp's body and undoes its Content-Encoding. Once the body
// is decoded, Content-Encoding and Content-Length no longer describe it and
// are dropped, as net/http does for transparent gzip.
func decodeBody(resp *http.Response) ([]byte, error) {
	encoding := resp.Header.Get("Content-Encoding")
	body, err := readBody(encoding, resp.Body)
	if err != nil {
		return nil, err
	}
	if decodable(encoding) {
		resp.Header.Del("Content-Encoding")
		resp.Header.Del("Content-Length")
		resp.ContentLength = -1
		resp.Uncompressed = true
	}
	return body, nil
}

func decodable(encoding string) bool {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "gzip", "x-gzip", "deflate":
		return true
	}
	return false
}

// readBody reads r and undoes the given Content-Encoding. Unknown encodings
// are returned as received.
func readBody(encoding string, r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return raw, nil
	}

	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "gzip", "x-gzip":
		zr, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("gzip body: %w", err)
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case "deflate":
		// Servers disagree on whether "deflate" means zlib-wrapped or raw.
		if zr, err := zlib.NewReader(bytes.NewReader(raw)); err == nil {
			defer zr.Close()
			return io.ReadAll(zr)
		}
		fr := flate.NewReader(bytes.NewReader(raw))
		defer fr.Close()
		return io.ReadAll(fr)
	default:
		return raw, nil
	}
}

package rest

import (
	"net/http"
	"net/url"
	"strings"
)

// negotiateHeaders copies the caller's headers and injects at most one
// default. GET requests without an Accept header (under any casing) get
// Accept: application/json; non-GET requests without a Content-Type get
// Content-Type: application/json. Caller-supplied values are never
// overwritten, whatever their key casing.
//
// Host is always synthesized from the resolved URL, replacing any
// caller-supplied value.
func negotiateHeaders(method string, callerHeaders map[string]string, target string) map[string]string {
	headers := make(map[string]string, len(callerHeaders)+2)
	for k, v := range callerHeaders {
		if strings.EqualFold(k, "Host") {
			continue
		}
		headers[k] = v
	}

	if method == http.MethodGet {
		if !hasHeader(headers, "Accept") {
			headers["Accept"] = ContentTypeJSON
		}
	} else if !hasHeader(headers, "Content-Type") {
		headers["Content-Type"] = ContentTypeJSON
	}

	headers["Host"] = hostOf(target)
	return headers
}

// hasHeader reports whether a key is present under any casing.
func hasHeader(headers map[string]string, key string) bool {
	for k := range headers {
		if strings.EqualFold(k, key) {
			return true
		}
	}
	return false
}

// headerValue returns the value for a key under any casing, or "".
func headerValue(headers map[string]string, key string) string {
	for k, v := range headers {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}

// hostOf extracts the authority (host[:port]) from a URL string.
func hostOf(target string) string {
	u, err := url.Parse(target)
	if err != nil || u.Host == "" {
		// Fall back to slicing out the authority by hand.
		rest := target
		if i := strings.Index(rest, "//"); i >= 0 {
			rest = rest[i+2:]
		}
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			rest = rest[:i]
		}
		return rest
	}
	return u.Host
}

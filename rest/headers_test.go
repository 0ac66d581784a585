package rest

import (
	"net/http"
	"testing"
)

func TestNegotiateHeaders_GETDefaultAccept(t *testing.T) {
	headers := negotiateHeaders(http.MethodGet, nil, "http://backend.internal/v1/items")
	if headers["Accept"] != "application/json" {
		t.Errorf("expected default Accept, got %q", headers["Accept"])
	}
	if hasHeader(headers, "Content-Type") {
		t.Error("GET must not receive a default Content-Type")
	}
}

func TestNegotiateHeaders_GETAcceptPreservedAnyCasing(t *testing.T) {
	for _, key := range []string{"Accept", "accept", "ACCEPT", "aCcEpT"} {
		headers := negotiateHeaders(http.MethodGet, map[string]string{key: "text/csv"}, "http://h")
		if v := headerValue(headers, "Accept"); v != "text/csv" {
			t.Errorf("key %q: accept value overwritten, got %q", key, v)
		}
		if headers["Accept"] == "application/json" {
			t.Errorf("key %q: default injected alongside caller value", key)
		}
	}
}

func TestNegotiateHeaders_NonGETDefaultContentType(t *testing.T) {
	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		headers := negotiateHeaders(method, nil, "http://h")
		if headers["Content-Type"] != "application/json" {
			t.Errorf("%s: expected default Content-Type, got %q", method, headers["Content-Type"])
		}
		if hasHeader(headers, "Accept") {
			t.Errorf("%s must not receive a default Accept", method)
		}
	}
}

func TestNegotiateHeaders_NonGETContentTypePreservedAnyCasing(t *testing.T) {
	for _, key := range []string{"Content-Type", "content-type", "CONTENT-TYPE", "cOnTeNt-TyPe"} {
		headers := negotiateHeaders(http.MethodPost, map[string]string{key: "application/xml"}, "http://h")
		if v := headerValue(headers, "Content-Type"); v != "application/xml" {
			t.Errorf("key %q: content-type overwritten, got %q", key, v)
		}
	}
}

func TestNegotiateHeaders_HostAlwaysSynthesized(t *testing.T) {
	headers := negotiateHeaders(http.MethodGet,
		map[string]string{"host": "spoofed.example", "X-Custom": "1"},
		"http://backend.internal:8443/v1/items")
	if headers["Host"] != "backend.internal:8443" {
		t.Errorf("expected synthesized Host, got %q", headers["Host"])
	}
	if v := headerValue(headers, "X-Custom"); v != "1" {
		t.Error("caller header lost")
	}
	count := 0
	for k := range headers {
		if k == "host" || k == "Host" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one Host key, got %d", count)
	}
}

func TestNegotiateHeaders_CallerMapUntouched(t *testing.T) {
	caller := map[string]string{"X-Trace": "abc"}
	negotiateHeaders(http.MethodPost, caller, "http://h")
	if len(caller) != 1 {
		t.Error("caller header map was mutated")
	}
}

func TestHostOf(t *testing.T) {
	tests := []struct {
		target string
		want   string
	}{
		{"http://backend.internal/v1/items", "backend.internal"},
		{"https://backend.internal:9443/v1", "backend.internal:9443"},
		{"http://10.0.0.5:8080", "10.0.0.5:8080"},
	}
	for _, tt := range tests {
		if got := hostOf(tt.target); got != tt.want {
			t.Errorf("hostOf(%q) = %q, want %q", tt.target, got, tt.want)
		}
	}
}

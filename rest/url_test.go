package rest

import "testing"

func TestURLResolver(t *testing.T) {
	tests := []struct {
		name       string
		serviceURL string
		port       int
		prefix     string
		endpoint   string
		override   int
		want       string
	}{
		{
			name:       "no port no prefix",
			serviceURL: "http://backend.internal",
			endpoint:   "/items",
			want:       "http://backend.internal/items",
		},
		{
			name:       "default port and prefix",
			serviceURL: "http://backend.internal",
			port:       8080,
			prefix:     "/v1",
			endpoint:   "/items",
			want:       "http://backend.internal:8080/v1/items",
		},
		{
			name:       "override wins over default port",
			serviceURL: "http://backend.internal",
			port:       8080,
			prefix:     "/v1",
			endpoint:   "/items",
			override:   9090,
			want:       "http://backend.internal:9090/v1/items",
		},
		{
			name:       "override with no default port",
			serviceURL: "https://backend.internal",
			endpoint:   "/items",
			override:   9443,
			want:       "https://backend.internal:9443/items",
		},
		{
			name:       "prefix kept when only override set",
			serviceURL: "http://backend.internal",
			prefix:     "/api",
			endpoint:   "/items/1",
			override:   9000,
			want:       "http://backend.internal:9000/api/items/1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newURLResolver(tt.serviceURL, tt.port, tt.prefix)
			if got := r.resolve(tt.endpoint, tt.override); got != tt.want {
				t.Errorf("resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestURLResolver_DefaultBaseMemoized(t *testing.T) {
	r := newURLResolver("http://backend.internal", 8080, "/v1")
	if r.defaultBase != "http://backend.internal:8080/v1" {
		t.Errorf("unexpected default base %q", r.defaultBase)
	}
	if r.resolve("/a", 0) != r.defaultBase+"/a" {
		t.Error("resolve without override must use the memoized base")
	}
}

package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestClient_PutFile(t *testing.T) {
	content := []byte("file content for upload")
	dir := t.TempDir()
	path := filepath.Join(dir, "payload.bin")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != string(content) {
			t.Errorf("body mismatch: %q", string(body))
		}
		if got := r.Header.Get("X-Meta"); got != "v" {
			t.Errorf("expected X-Meta=v, got %q", got)
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c, _ := New(Config{})
	err := c.PutFile(context.Background(), path, srv.URL+"/upload", map[string]string{"X-Meta": "v"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_PutFile_Non2xx(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "payload.bin")
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(403)
	}))
	defer srv.Close()

	c, _ := New(Config{})
	err := c.PutFile(context.Background(), path, srv.URL+"/upload", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsAuth(err) {
		t.Errorf("expected auth classification, got %v", err)
	}
}

func TestClient_PutFile_MissingFile(t *testing.T) {
	c, _ := New(Config{})
	err := c.PutFile(context.Background(), "/does/not/exist", "http://example.invalid", nil)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

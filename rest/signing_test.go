package rest

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/kbukum/restkit/config"
	"github.com/kbukum/restkit/sign"
)

// staticSource is an in-memory credential source for tests.
type staticSource struct {
	userID uuid.UUID
}

func (s *staticSource) Authenticate(_ context.Context, _, _ string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": s.userID.String()})
	return token.SignedString([]byte("test-secret"))
}

func (s *staticSource) TemporaryCredentials(_ context.Context, _ string) (sign.Credentials, error) {
	return sign.Credentials{
		AccessKeyID:     "AKIDTEST",
		SecretAccessKey: "secret",
		SessionToken:    "session",
	}, nil
}

func TestClient_WithRegistry_SignsRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "AWS4-HMAC-SHA256") {
			t.Errorf("expected SigV4 Authorization header, got %q", auth)
		}
		if !strings.Contains(auth, "/us-west-2/execute-api/") {
			t.Errorf("expected signing scope from config, got %q", auth)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"name":"alice","value":1}`)
	}))
	defer srv.Close()

	reg := sign.NewRegistry(&staticSource{userID: uuid.New()})
	if _, _, err := reg.Login(context.Background(), "alice", "pw"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	c, err := New(config.ClientConfig{
		ServiceURL: srv.URL,
		Signing:    config.SigningConfig{Region: "us-west-2"},
	}, WithRegistry(reg))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	result, err := GetResource[item](context.Background(), c, "/items")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Model.Name != "alice" {
		t.Errorf("decoded %+v", result.Model)
	}
}

func TestClient_WithRegistry_UnauthenticatedFailsBeforeSend(t *testing.T) {
	hit := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
	}))
	defer srv.Close()

	reg := sign.NewRegistry(&staticSource{userID: uuid.New()})
	c, err := New(config.ClientConfig{
		ServiceURL: srv.URL,
		Signing:    config.SigningConfig{Region: "us-west-2"},
	}, WithRegistry(reg))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	_, err = GetResource[item](context.Background(), c, "/items")
	if !errors.Is(err, sign.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if hit {
		t.Error("unauthenticated requests must fail before any network call")
	}
}

func TestClient_WithAuthorizerOverridesRegistry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "" {
			t.Errorf("expected unsigned request, got %q", auth)
		}
		w.WriteHeader(204)
	}))
	defer srv.Close()

	reg := sign.NewRegistry(&staticSource{userID: uuid.New()})
	c, err := New(config.ClientConfig{ServiceURL: srv.URL},
		WithRegistry(reg), WithAuthorizer(sign.NoAuth{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	if err := c.DeleteResource(context.Background(), "/items/1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

package sign

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrNotAuthenticated is returned when signing is requested while no
// identity is active.
var ErrNotAuthenticated = errors.New("sign: no active identity")

// Credentials are temporary signing credentials for one identity.
// They are opaque to the client core.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// aws converts to the SDK credential type consumed by the signer.
func (c Credentials) aws() aws.Credentials {
	return aws.Credentials{
		AccessKeyID:     c.AccessKeyID,
		SecretAccessKey: c.SecretAccessKey,
		SessionToken:    c.SessionToken,
	}
}

// CredentialSource performs the external login exchange that produces
// temporary credentials. Implementations typically wrap a cloud identity
// provider; the client core never performs the exchange itself.
type CredentialSource interface {
	// Authenticate verifies the user and returns a signed identity token.
	Authenticate(ctx context.Context, username, password string) (idToken string, err error)

	// TemporaryCredentials exchanges an identity token for temporary
	// signing credentials.
	TemporaryCredentials(ctx context.Context, idToken string) (Credentials, error)
}

// login is the stored state for one authenticated user.
type login struct {
	userID uuid.UUID
	creds  Credentials
}

// Registry holds credentials for logged-in users and tracks the active
// identity. Identity switches are single-writer; signing reads are
// multi-reader and always observe a fully-switched identity.
type Registry struct {
	source CredentialSource

	mu      sync.RWMutex
	logins  map[string]login
	current string
}

// NewRegistry creates an identity registry backed by the given source.
func NewRegistry(source CredentialSource) *Registry {
	return &Registry{
		source: source,
		logins: make(map[string]login),
	}
}

// Login authenticates a user, stores their credentials, and makes them
// the active identity. The user's ID is the UUID subject claim of the
// identity token; the token signature is not verified here since the
// token was just issued by the source itself.
func (r *Registry) Login(ctx context.Context, username, password string) (uuid.UUID, Credentials, error) {
	idToken, err := r.source.Authenticate(ctx, username, password)
	if err != nil {
		return uuid.Nil, Credentials{}, fmt.Errorf("sign: authenticate %s: %w", username, err)
	}

	userID, err := subjectID(idToken)
	if err != nil {
		return uuid.Nil, Credentials{}, err
	}

	creds, err := r.source.TemporaryCredentials(ctx, idToken)
	if err != nil {
		return uuid.Nil, Credentials{}, fmt.Errorf("sign: credentials for %s: %w", username, err)
	}

	r.mu.Lock()
	r.logins[username] = login{userID: userID, creds: creds}
	r.current = username
	r.mu.Unlock()

	return userID, creds, nil
}

// SwitchUser makes a previously logged-in user the active identity.
func (r *Registry) SwitchUser(username string) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.logins[username]
	if !ok {
		return uuid.Nil, fmt.Errorf("sign: unknown user %s: %w", username, ErrNotAuthenticated)
	}
	r.current = username
	return l.userID, nil
}

// CurrentUser returns the active username and its ID, or ok=false when
// no identity is active.
func (r *Registry) CurrentUser() (username string, userID uuid.UUID, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.current == "" {
		return "", uuid.Nil, false
	}
	return r.current, r.logins[r.current].userID, true
}

// ActiveCredentials returns the credentials of the active identity.
func (r *Registry) ActiveCredentials() (Credentials, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.current == "" {
		return Credentials{}, ErrNotAuthenticated
	}
	return r.logins[r.current].creds, nil
}

// subjectID extracts the UUID subject claim from an identity token
// without verifying its signature.
func subjectID(idToken string) (uuid.UUID, error) {
	token, _, err := jwt.NewParser().ParseUnverified(idToken, jwt.MapClaims{})
	if err != nil {
		return uuid.Nil, fmt.Errorf("sign: parse identity token: %w", err)
	}
	sub, err := token.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, fmt.Errorf("sign: identity token subject: %w", err)
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("sign: identity token subject %q: %w", sub, err)
	}
	return id, nil
}

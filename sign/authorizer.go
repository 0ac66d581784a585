package sign

import (
	"context"
	"net/http"
)

// EmptyPayloadHash is the SHA-256 hex digest of an empty body.
const EmptyPayloadHash = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

// Authorizer mutates a fully-built request before transmission.
// It runs after headers and body are finalized, since a signature
// covers the final header set and body digest.
type Authorizer interface {
	// Authorize applies authorization to req. payloadHash is the SHA-256
	// hex digest of the encoded request body (EmptyPayloadHash when the
	// body is empty).
	Authorize(ctx context.Context, req *http.Request, payloadHash string) error
}

// NoAuth is an Authorizer that leaves the request untouched.
type NoAuth struct{}

// Authorize implements Authorizer as the identity function.
func (NoAuth) Authorize(context.Context, *http.Request, string) error {
	return nil
}

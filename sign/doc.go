// Package sign provides request authorization for restkit clients.
//
// An Authorizer mutates a fully-built request before transmission. Two
// variants exist: NoAuth (identity) and SigV4, which computes an AWS
// Signature Version 4 over the finalized request using the temporary
// credentials of the active identity in a Registry.
//
// The Registry tracks multiple logged-in users and their credentials;
// the login exchange itself is delegated to a CredentialSource. A
// typical flow:
//
//	reg := sign.NewRegistry(source)
//	userID, _, err := reg.Login(ctx, "alice", "s3cret")
//	auth := sign.NewSigV4(reg, "execute-api", "us-west-2")
//	// attach auth to the client; later:
//	reg.SwitchUser("bob")
package sign

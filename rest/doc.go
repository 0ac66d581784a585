// Package rest provides a content-negotiated REST client.
//
// Unlike a JSON-only client, body encoding and response decoding are
// driven by the request and response Content-Type headers. Outgoing
// structured payloads are converted per the resolved request content
// type (plain-value conversion for the JSON family and form encoding,
// canonical JSON text for text/plain) while raw payloads pass through
// unchanged; responses decode into the requested type when the server
// answers with JSON and degrade to a Raw wrapper otherwise, never an
// error.
//
// Default headers are injected without ever clobbering caller-supplied
// ones, whatever their key casing: GET gets Accept: application/json,
// everything else gets Content-Type: application/json.
//
//	client, err := rest.New(config.ClientConfig{ServiceURL: "http://backend.internal", APIPrefix: "/v1"})
//	item, err := rest.GetResource[Item](ctx, client, "/items/42")
//
// Every operation has a non-blocking variant returning a Future, and
// WaitFor offers fixed-interval condition polling for integration
// flows.
package rest

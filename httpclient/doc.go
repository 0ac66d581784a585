// Package httpclient provides the HTTP transport for restkit clients.
//
// The transport dispatches request bodies by type so that already-
// serialized payloads are never re-encoded: url.Values travel on the
// form-encoded channel, []byte/string/io.Reader on the raw channel, and
// any other value on the structured JSON channel where the transport
// performs the single, final JSON encoding.
//
// Request authorization (see the sign package) runs after the request
// is fully built, immediately before transmission.
//
//	client, err := httpclient.New(httpclient.Config{Timeout: 10 * time.Second})
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    URL:    "http://backend.internal/v1/items",
//	})
//
// The content-negotiated REST layer in package rest builds on this
// transport; most callers use that instead.
package httpclient

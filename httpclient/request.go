package httpclient

import (
	"github.com/kbukum/restkit/sign"
)

// Request describes an outbound HTTP request.
//
// The type of Body selects the transport channel:
//
//   - url.Values: form-encoded channel (application/x-www-form-urlencoded)
//   - []byte, string, io.Reader: raw channel, sent without re-encoding
//   - any other value: structured JSON channel, the transport performs
//     the final JSON encoding
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, PATCH, DELETE, etc).
	Method string
	// URL is the request target. Relative URLs are resolved against the
	// client's BaseURL.
	URL string
	// Headers are request-specific headers. They take precedence over
	// the client's default headers under any key casing.
	Headers map[string]string
	// Query are URL query parameters.
	Query map[string]string
	// Body is the request body, dispatched by type as described above.
	Body any
	// Authorizer signs the finalized request before transmission.
	// Nil means no authorization.
	Authorizer sign.Authorizer
}

// Response is the result of an HTTP request.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the status code is 4xx or 5xx.
func (r *Response) IsError() bool {
	return r.StatusCode >= 400
}

// Text returns the body as a string.
func (r *Response) Text() string {
	return string(r.Body)
}

// ContentType returns the response Content-Type header, if any.
func (r *Response) ContentType() string {
	for k, v := range r.Headers {
		if k == "Content-Type" {
			return v
		}
	}
	return ""
}

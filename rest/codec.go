package rest

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/kbukum/restkit/httpclient"
)

// Raw is a degraded response representation carrying only the HTTP
// status code and the literal text body. It is returned whenever
// structured decoding is not applicable.
type Raw struct {
	StatusCode int    `json:"status_code"`
	Content    string `json:"content"`
}

// Empty is the result type for operations whose response body is
// irrelevant, such as deletes.
type Empty struct{}

// Result is the decoded outcome of a request. Exactly one of Model and
// Raw is meaningful: Raw is non-nil when the response could not be
// decoded into the requested type and the client degraded to the raw
// representation instead.
type Result[T any] struct {
	// Model is the decoded structured value.
	Model T
	// Raw carries the undecoded response when Model is not populated.
	Raw *Raw
}

// IsRaw reports whether the client degraded to the raw representation.
func (r *Result[T]) IsRaw() bool {
	return r.Raw != nil
}

// serializeBody applies the serialization strategy selected by the
// request content type. Raw payloads ([]byte, string) pass through
// unchanged for every content type. Structured payloads are converted
// to plain values for the JSON family and form encoding, rendered as
// canonical JSON text for text/plain, and rejected for every other raw
// type.
func serializeBody(contentType string, content any) (any, error) {
	switch content.(type) {
	case []byte, string:
		return content, nil
	}

	switch Classify(contentType) {
	case ClassJSONFamily, ClassFormEncoded:
		return toPlainValue(content)
	default:
		if BaseMediaType(contentType) == ContentTypeTextPlain {
			return canonicalText(content)
		}
		return nil, fmt.Errorf("%w: structured payload has no rendering for %q", ErrConfiguration, contentType)
	}
}

// transportBody maps a serialized body onto the transport channel
// matching the content type. Already-serialized raw payloads always
// take the raw channel so the transport never double-encodes.
func transportBody(contentType string, serialized any) (any, error) {
	switch serialized.(type) {
	case nil, []byte, string:
		return serialized, nil
	}

	switch Classify(contentType) {
	case ClassJSONFamily:
		// Structured JSON channel: the transport performs the final
		// encoding.
		return serialized, nil
	case ClassFormEncoded:
		return formValues(serialized)
	default:
		return nil, fmt.Errorf("%w: structured payload cannot take the raw channel for %q", ErrConfiguration, contentType)
	}
}

// toPlainValue converts a structured value into nested maps, slices
// and primitives via its canonical JSON rendering.
func toPlainValue(content any) (any, error) {
	data, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	var plain any
	if err := json.Unmarshal(data, &plain); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return plain, nil
}

// canonicalText renders a structured value as compact JSON text.
func canonicalText(content any) (string, error) {
	data, err := json.Marshal(content)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return string(data), nil
}

// formValues flattens a plain value into url.Values for the form
// channel. Only object-shaped payloads can be form-encoded.
func formValues(plain any) (url.Values, error) {
	obj, ok := plain.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: form body must be an object", ErrConfiguration)
	}
	values := make(url.Values, len(obj))
	for k, v := range obj {
		values.Set(k, fmt.Sprint(v))
	}
	return values, nil
}

// decodeResponse applies the decoding strategy selected by the
// requested result type and the response content type. Empty and Raw
// result types short-circuit; otherwise a JSON response is parsed into
// the requested type and anything else degrades to the raw
// representation. Content-type mismatches never produce an error.
func decodeResponse[T any](resp *httpclient.Response) (*Result[T], error) {
	var zero T
	switch any(zero).(type) {
	case Empty:
		return &Result[T]{}, nil
	case Raw:
		raw := Raw{StatusCode: resp.StatusCode, Content: resp.Text()}
		return &Result[T]{Model: any(raw).(T), Raw: &raw}, nil
	}

	if BaseMediaType(resp.ContentType()) != ContentTypeJSON {
		return &Result[T]{Raw: &Raw{StatusCode: resp.StatusCode, Content: resp.Text()}}, nil
	}
	if len(resp.Body) == 0 {
		return &Result[T]{}, nil
	}

	var model T
	if err := json.Unmarshal(resp.Body, &model); err != nil {
		return nil, fmt.Errorf("rest: decode response: %w", err)
	}
	return &Result[T]{Model: model}, nil
}

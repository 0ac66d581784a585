package rest

import "strings"

// Media types the codec gives special treatment. Every other value is
// handled as an opaque raw type.
const (
	ContentTypeJSON      = "application/json"
	ContentTypeForm      = "application/x-www-form-urlencoded"
	ContentTypeTextPlain = "text/plain"
)

// ContentClass classifies a Content-Type header value by its base media
// type. The classification drives body serialization, transport-channel
// selection, and response decoding; the literal header value is always
// sent unmodified.
type ContentClass int

const (
	// ClassJSONFamily is application/json.
	ClassJSONFamily ContentClass = iota
	// ClassFormEncoded is application/x-www-form-urlencoded.
	ClassFormEncoded
	// ClassRawPassthrough is every other media type. Bodies pass through
	// the transport without re-encoding.
	ClassRawPassthrough
)

// String returns the class name for logging.
func (c ContentClass) String() string {
	switch c {
	case ClassJSONFamily:
		return "json"
	case ClassFormEncoded:
		return "form"
	case ClassRawPassthrough:
		return "raw"
	default:
		return "unknown"
	}
}

// Classify maps a literal Content-Type header value to its class.
// Parameters such as charset are ignored for classification.
func Classify(contentType string) ContentClass {
	switch BaseMediaType(contentType) {
	case ContentTypeJSON:
		return ClassJSONFamily
	case ContentTypeForm:
		return ClassFormEncoded
	default:
		return ClassRawPassthrough
	}
}

// BaseMediaType strips parameters from a media type header value,
// returning the lower-cased base type. "application/json; charset=utf-8"
// becomes "application/json".
func BaseMediaType(contentType string) string {
	base, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(base))
}

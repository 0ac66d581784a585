package rest

import "errors"

// ErrConfiguration reports an invalid pairing of payload shape and
// content type, such as a structured payload against application/xml.
// It is raised before any network activity.
var ErrConfiguration = errors.New("rest: invalid content configuration")

// IsConfiguration returns true if the error is a content configuration
// error.
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

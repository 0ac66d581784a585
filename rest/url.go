package rest

import "strconv"

// urlResolver composes request URLs from the immutable parts of the
// client configuration: service URL, default port, and API prefix.
// Endpoint paths are appended as given, without slash normalization.
type urlResolver struct {
	serviceURL string
	port       int
	apiPrefix  string

	// defaultBase is the composed base URL for calls without a port
	// override, computed once per client.
	defaultBase string
}

func newURLResolver(serviceURL string, port int, apiPrefix string) *urlResolver {
	r := &urlResolver{
		serviceURL: serviceURL,
		port:       port,
		apiPrefix:  apiPrefix,
	}
	r.defaultBase = r.compose(0)
	return r
}

// compose builds the base URL for the given port override. Zero means
// use the configured default port; if neither is set, no port segment
// is emitted.
func (r *urlResolver) compose(portOverride int) string {
	port := portOverride
	if port == 0 {
		port = r.port
	}
	base := r.serviceURL
	if port != 0 {
		base += ":" + strconv.Itoa(port)
	}
	return base + r.apiPrefix
}

// resolve returns the full URL for an endpoint. A per-call port
// override wins over the configured default port.
func (r *urlResolver) resolve(endpoint string, portOverride int) string {
	if portOverride != 0 {
		return r.compose(portOverride) + endpoint
	}
	return r.defaultBase + endpoint
}

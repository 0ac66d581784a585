package rest

import (
	"context"
	"net/http"

	"github.com/kbukum/restkit/config"
	"github.com/kbukum/restkit/httpclient"
	"github.com/kbukum/restkit/logger"
	"github.com/kbukum/restkit/observability"
	"github.com/kbukum/restkit/sign"
)

// Client is a content-negotiated REST client. Body encoding and
// response decoding follow the request and response Content-Type
// headers instead of a single hard-coded format, and request signing
// is delegated to a pluggable authorizer.
//
// A Client owns one transport connection pool, which is safe for
// concurrent use; the operations themselves mutate no client state.
type Client struct {
	http     *httpclient.Client
	resolver *urlResolver
	auth     sign.Authorizer
	log      *logger.Logger
}

// ClientOption configures a Client at construction time.
type ClientOption func(*clientOptions)

type clientOptions struct {
	auth     sign.Authorizer
	registry *sign.Registry
	metrics  *observability.RequestMetrics
}

// WithAuthorizer sets the request authorizer. The default is no
// authorization.
func WithAuthorizer(auth sign.Authorizer) ClientOption {
	return func(o *clientOptions) { o.auth = auth }
}

// WithRegistry signs every request with SigV4 using the registry's
// active identity, scoped by the configuration's Signing service and
// region. WithAuthorizer takes precedence when both are given.
func WithRegistry(registry *sign.Registry) ClientOption {
	return func(o *clientOptions) { o.registry = registry }
}

// WithMetrics enables request metric recording on the transport.
func WithMetrics(m *observability.RequestMetrics) ClientOption {
	return func(o *clientOptions) { o.metrics = m }
}

// authorizer resolves the effective request authorizer: an explicit
// one wins, then a SigV4 built from the registry and signing config,
// then no authorization.
func (o *clientOptions) authorizer(cfg config.ClientConfig) sign.Authorizer {
	if o.auth != nil {
		return o.auth
	}
	if o.registry != nil {
		return sign.NewSigV4(o.registry, cfg.Signing.Service, cfg.Signing.Region)
	}
	return sign.NoAuth{}
}

// New creates a REST client from the given configuration.
func New(cfg config.ClientConfig, opts ...ClientOption) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var options clientOptions
	for _, opt := range opts {
		opt(&options)
	}

	log := logger.New(&cfg.Logging, "restkit").WithComponent("rest")
	transport, err := httpclient.New(httpclient.Config{
		Timeout: cfg.Timeout,
		Headers: cfg.Headers,
		Logger:  log.WithComponent("httpclient"),
		Metrics: options.metrics,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		http:     transport,
		resolver: newURLResolver(cfg.ServiceURL, cfg.ServicePort, cfg.APIPrefix),
		auth:     options.authorizer(cfg),
		log:      log,
	}, nil
}

// NewFromTransport creates a REST client over an existing transport.
// The transport's BaseURL is ignored; URLs are composed from cfg.
func NewFromTransport(transport *httpclient.Client, cfg config.ClientConfig, opts ...ClientOption) *Client {
	cfg.ApplyDefaults()
	var options clientOptions
	for _, opt := range opts {
		opt(&options)
	}
	return &Client{
		http:     transport,
		resolver: newURLResolver(cfg.ServiceURL, cfg.ServicePort, cfg.APIPrefix),
		auth:     options.authorizer(cfg),
		log:      logger.New(&cfg.Logging, "restkit").WithComponent("rest"),
	}
}

// Close releases the transport's connection pool.
func (c *Client) Close() {
	c.http.Close()
}

// Transport returns the underlying HTTP transport.
func (c *Client) Transport() *httpclient.Client {
	return c.http
}

// requestSpec carries the per-call parameters through the pipeline.
// It is built once per call and never reused.
type requestSpec struct {
	method   string
	endpoint string
	query    map[string]string
	headers  map[string]string
	body     any
	port     int
}

// RequestOption configures a single request.
type RequestOption func(*requestSpec)

// WithQuery sets URL query parameters.
func WithQuery(params map[string]string) RequestOption {
	return func(s *requestSpec) { s.query = params }
}

// WithHeaders sets request headers. Keys are matched case-insensitively
// against the defaults the client would otherwise inject.
func WithHeaders(headers map[string]string) RequestOption {
	return func(s *requestSpec) { s.headers = headers }
}

// WithPort overrides the configured service port for this call only.
func WithPort(port int) RequestOption {
	return func(s *requestSpec) { s.port = port }
}

// WithMethod overrides the HTTP method. CreateResource uses POST by
// default; pass PUT or PATCH here for update-style calls.
func WithMethod(method string) RequestOption {
	return func(s *requestSpec) { s.method = method }
}

// GetResource performs a GET and decodes the response into T. Request
// T = Raw to skip decoding, or T = Empty to discard the body.
func GetResource[T any](ctx context.Context, c *Client, endpoint string, opts ...RequestOption) (*Result[T], error) {
	spec := requestSpec{method: http.MethodGet, endpoint: endpoint}
	for _, opt := range opts {
		opt(&spec)
	}
	return execute[T](ctx, c, spec)
}

// CreateResource sends a body-carrying request (POST by default, see
// WithMethod) and decodes the response into T. A []byte or string body
// is sent as-is; any other value is serialized per the request
// Content-Type.
func CreateResource[T any](ctx context.Context, c *Client, endpoint string, body any, opts ...RequestOption) (*Result[T], error) {
	spec := requestSpec{method: http.MethodPost, endpoint: endpoint, body: body}
	for _, opt := range opts {
		opt(&spec)
	}
	return execute[T](ctx, c, spec)
}

// DeleteResource performs a DELETE, discarding any response body.
func (c *Client) DeleteResource(ctx context.Context, endpoint string, opts ...RequestOption) error {
	spec := requestSpec{method: http.MethodDelete, endpoint: endpoint}
	for _, opt := range opts {
		opt(&spec)
	}
	_, err := execute[Empty](ctx, c, spec)
	return err
}

// prepare runs the synchronous half of the pipeline: URL resolution,
// header negotiation and body serialization. No network activity.
func (c *Client) prepare(spec requestSpec) (httpclient.Request, error) {
	target := c.resolver.resolve(spec.endpoint, spec.port)
	headers := negotiateHeaders(spec.method, spec.headers, target)

	var body any
	if spec.body != nil {
		contentType := headerValue(headers, "Content-Type")
		serialized, err := serializeBody(contentType, spec.body)
		if err != nil {
			return httpclient.Request{}, err
		}
		body, err = transportBody(contentType, serialized)
		if err != nil {
			return httpclient.Request{}, err
		}
	}

	return httpclient.Request{
		Method:     spec.method,
		URL:        target,
		Headers:    headers,
		Query:      spec.query,
		Body:       body,
		Authorizer: c.auth,
	}, nil
}

// execute runs the full pipeline for one request. Non-2xx statuses
// surface as a classified transport error before decoding is
// attempted.
func execute[T any](ctx context.Context, c *Client, spec requestSpec) (*Result[T], error) {
	req, err := c.prepare(spec)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		c.log.Debug("request failed", logger.Fields(
			logger.FieldMethod, spec.method,
			logger.FieldEndpoint, spec.endpoint,
			logger.FieldError, err.Error(),
		))
		return nil, err
	}
	return decodeResponse[T](resp)
}

package httpclient

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kbukum/restkit/logger"
	"github.com/kbukum/restkit/observability"
	"github.com/kbukum/restkit/version"
)

// Client is the HTTP transport for restkit. It owns one connection
// pool, which is the only shared mutable resource and is safe for
// concurrent use by multiple in-flight requests.
type Client struct {
	httpClient *http.Client
	config     Config
	log        *logger.Logger
}

// New creates a new HTTP client with the given configuration.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		httpClient: &http.Client{
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
			Timeout:   cfg.Timeout,
		},
		config: cfg,
		log:    cfg.Logger,
	}, nil
}

// Do executes an HTTP request and returns the complete response.
// Non-2xx statuses return both the response and a classified error.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	if c.config.Metrics != nil {
		c.config.Metrics.RecordRequestStart(ctx)
	}

	resp, err := c.executeRequest(ctx, req)

	if c.config.Metrics != nil {
		status := "error"
		if resp != nil {
			status = strconv.Itoa(resp.StatusCode)
		}
		c.config.Metrics.RecordRequestEnd(ctx, req.Method, status, time.Since(start))
		if err != nil {
			c.config.Metrics.RecordError(ctx, errorType(err))
		}
	}
	return resp, err
}

// errorType maps an error to the type attribute on the error counter.
func errorType(err error) string {
	var clientErr *Error
	if errors.As(err, &clientErr) {
		return clientErr.Code.String()
	}
	return "unknown"
}

// Close releases the transport's idle connections.
func (c *Client) Close() {
	if t, ok := c.httpClient.Transport.(*http.Transport); ok {
		t.CloseIdleConnections()
	}
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (c *Client) Unwrap() *http.Client {
	return c.httpClient
}

// executeRequest builds and sends the HTTP request.
func (c *Client) executeRequest(ctx context.Context, req Request) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	ctx, span := observability.StartSpan(ctx, observability.SpanHTTPRequest)
	defer span.End()
	observability.SetSpanAttribute(ctx, observability.AttrMethod, req.Method)
	observability.SetSpanAttribute(ctx, observability.AttrURL, httpReq.URL.String())

	resp, err := c.httpClient.Do(httpReq.WithContext(ctx))
	if err != nil {
		observability.SetSpanError(ctx, err)
		if ctx.Err() != nil {
			return nil, NewTimeoutError(err)
		}
		return nil, NewConnectionError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewConnectionError(fmt.Errorf("read response body: %w", err))
	}

	observability.SetSpanAttribute(ctx, observability.AttrStatusCode, resp.StatusCode)
	c.log.Debug("request complete", logger.Fields(
		logger.FieldMethod, req.Method,
		logger.FieldURL, httpReq.URL.String(),
		logger.FieldStatusCode, resp.StatusCode,
	))

	result := &Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
	}

	if classErr := ClassifyStatusCode(resp.StatusCode, body); classErr != nil {
		observability.SetSpanError(ctx, classErr)
		return result, classErr
	}
	return result, nil
}

// buildRequest constructs an *http.Request from the client config and
// request. Authorization runs last so the signature covers the final
// header set and body bytes; its failure aborts before any network
// activity.
func (c *Client) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	target := req.URL
	if c.config.BaseURL != "" && !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		target = strings.TrimRight(c.config.BaseURL, "/") + "/" + strings.TrimLeft(target, "/")
	}

	data, contentType, err := encodeBody(req.Body)
	if err != nil {
		return nil, NewEncodingError(fmt.Errorf("encode body: %w", err))
	}

	var bodyReader io.Reader
	if data != nil {
		bodyReader = bytes.NewReader(data)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, bodyReader)
	if err != nil {
		return nil, NewEncodingError(fmt.Errorf("create request: %w", err))
	}

	if len(req.Query) > 0 {
		q := httpReq.URL.Query()
		for k, v := range req.Query {
			q.Set(k, v)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	// Client defaults first, request headers win.
	for k, v := range c.config.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		if strings.EqualFold(k, "Host") {
			httpReq.Host = v
			continue
		}
		httpReq.Header.Set(k, v)
	}

	if data != nil && httpReq.Header.Get("Content-Type") == "" && contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if httpReq.Header.Get("User-Agent") == "" {
		httpReq.Header.Set("User-Agent", version.UserAgent())
	}

	if req.Authorizer != nil {
		if err := req.Authorizer.Authorize(ctx, httpReq, payloadHash(data)); err != nil {
			return nil, err
		}
	}

	return httpReq, nil
}

// encodeBody converts a body value into bytes and a default content type.
// This is the transport-channel dispatch: form values are form-encoded,
// raw bytes/strings/readers pass through unchanged, and anything else is
// JSON-encoded here, exactly once.
func encodeBody(body any) ([]byte, string, error) {
	switch v := body.(type) {
	case nil:
		return nil, "", nil
	case url.Values:
		return []byte(v.Encode()), "application/x-www-form-urlencoded", nil
	case []byte:
		return v, "", nil
	case string:
		return []byte(v), "text/plain", nil
	case io.Reader:
		data, err := io.ReadAll(v)
		if err != nil {
			return nil, "", err
		}
		return data, "", nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, "", err
		}
		return data, "application/json", nil
	}
}

// payloadHash returns the SHA-256 hex digest of the encoded body.
func payloadHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}

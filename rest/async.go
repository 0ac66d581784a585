package rest

import (
	"context"
	"net/http"
)

// Future holds the eventual result of a non-blocking request. It is
// resolved exactly once and may be waited on from any goroutine.
type Future[T any] struct {
	done   chan struct{}
	result *Result[T]
	err    error
}

// Wait blocks until the request completes or ctx is cancelled. On
// cancellation the in-flight request itself is also cancelled through
// the context it was issued with.
func (f *Future[T]) Wait(ctx context.Context) (*Result[T], error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-f.done:
		return f.result, f.err
	}
}

// resolved returns an already-completed future, used when the
// synchronous pipeline fails before any network activity.
func resolved[T any](result *Result[T], err error) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), result: result, err: err}
	close(f.done)
	return f
}

// GetResourceAsync is the non-blocking variant of GetResource. URL
// resolution, header negotiation and body serialization run
// synchronously in the caller's goroutine; only the network exchange
// and decoding run in the background, so configuration failures
// surface before the future is handed back.
func GetResourceAsync[T any](ctx context.Context, c *Client, endpoint string, opts ...RequestOption) *Future[T] {
	spec := requestSpec{method: http.MethodGet, endpoint: endpoint}
	for _, opt := range opts {
		opt(&spec)
	}
	return dispatch[T](ctx, c, spec)
}

// CreateResourceAsync is the non-blocking variant of CreateResource.
func CreateResourceAsync[T any](ctx context.Context, c *Client, endpoint string, body any, opts ...RequestOption) *Future[T] {
	spec := requestSpec{method: http.MethodPost, endpoint: endpoint, body: body}
	for _, opt := range opts {
		opt(&spec)
	}
	return dispatch[T](ctx, c, spec)
}

// DeleteResourceAsync is the non-blocking variant of DeleteResource.
func (c *Client) DeleteResourceAsync(ctx context.Context, endpoint string, opts ...RequestOption) *Future[Empty] {
	spec := requestSpec{method: http.MethodDelete, endpoint: endpoint}
	for _, opt := range opts {
		opt(&spec)
	}
	return dispatch[Empty](ctx, c, spec)
}

// dispatch prepares the request synchronously, then runs the network
// exchange in a goroutine. Both variants share the same pipeline.
func dispatch[T any](ctx context.Context, c *Client, spec requestSpec) *Future[T] {
	req, err := c.prepare(spec)
	if err != nil {
		return resolved[T](nil, err)
	}

	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		resp, err := c.http.Do(ctx, req)
		if err != nil {
			f.err = err
			return
		}
		f.result, f.err = decodeResponse[T](resp)
	}()
	return f
}

package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/kbukum/restkit/observability"
)

// PutFile streams the file at path to targetURL with a direct PUT and
// returns a classified error on non-2xx status. It bypasses content
// negotiation entirely; the typical use is uploading to a pre-signed
// storage URL.
func (c *Client) PutFile(ctx context.Context, path, targetURL string, headers map[string]string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("httpclient: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("httpclient: stat %s: %w", path, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, targetURL, f)
	if err != nil {
		return NewEncodingError(fmt.Errorf("create request: %w", err))
	}
	httpReq.ContentLength = info.Size()
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	ctx, span := observability.StartSpan(ctx, observability.SpanFileUpload)
	defer span.End()
	observability.SetSpanAttribute(ctx, observability.AttrURL, targetURL)

	resp, err := c.httpClient.Do(httpReq.WithContext(ctx))
	if err != nil {
		observability.SetSpanError(ctx, err)
		if ctx.Err() != nil {
			return NewTimeoutError(err)
		}
		return NewConnectionError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	observability.SetSpanAttribute(ctx, observability.AttrStatusCode, resp.StatusCode)
	if classErr := ClassifyStatusCode(resp.StatusCode, body); classErr != nil {
		observability.SetSpanError(ctx, classErr)
		return classErr
	}
	return nil
}

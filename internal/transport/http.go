// Package transport provides the reference Transport implementations
// consumed through the restbase.Transport capability.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/sweetpay/restbase/internal/constants"
	"github.com/sweetpay/restbase/pkg/restbase"
)

// HTTP dispatches requests over HTTP(S). Every Send creates a fresh session
// so transport-internal mutable state (cookies, connection pools) is never
// shared across concurrent calls on the same Connector.
type HTTP struct {
	headers      http.Header
	userAgent    string
	retryMax     int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
}

// HTTPOption configures an HTTP transport.
type HTTPOption func(*HTTP)

// WithStaticHeaders sets headers applied to every session before the
// per-request headers.
func WithStaticHeaders(headers http.Header) HTTPOption {
	return func(t *HTTP) {
		t.headers = headers
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) HTTPOption {
	return func(t *HTTP) {
		t.userAgent = userAgent
	}
}

// WithRetryConfig enables retries on transient failures. The scaffolding
// core never retries; this knob exists on the transport only.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) HTTPOption {
	return func(t *HTTP) {
		t.retryMax = retryMax
		t.retryWaitMin = waitMin
		t.retryWaitMax = waitMax
	}
}

// NewHTTP creates an HTTP transport.
func NewHTTP(opts ...HTTPOption) *HTTP {
	transport := &HTTP{
		userAgent:    constants.UserAgent,
		retryWaitMin: constants.DefaultRetryWaitMin,
		retryWaitMax: constants.DefaultRetryWaitMax,
	}

	for _, opt := range opts {
		opt(transport)
	}

	return transport
}

// newSession returns a fresh client configured with the transport's static
// settings. One session per call, never reused.
func (t *HTTP) newSession(timeout time.Duration) *retryablehttp.Client {
	session := retryablehttp.NewClient()
	session.RetryMax = t.retryMax
	session.RetryWaitMin = t.retryWaitMin
	session.RetryWaitMax = t.retryWaitMax
	session.Logger = nil
	session.HTTPClient = &http.Client{Timeout: timeout}

	// Exhausted retries must surface the last response, not an error, so
	// status classification stays with the Resource.
	session.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return session
}

// Send implements restbase.Transport.
func (t *HTTP) Send(ctx context.Context, req *restbase.TransportRequest) (*restbase.RawResponse, error) {
	session := t.newSession(req.Timeout)

	var rawBody interface{}
	if len(req.Body) > 0 {
		rawBody = req.Body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, req.URL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	for key, values := range t.headers {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	for key, values := range req.Headers {
		httpReq.Header.Del(key)

		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	if httpReq.Header.Get("User-Agent") == "" && t.userAgent != "" {
		httpReq.Header.Set("User-Agent", t.userAgent)
	}

	resp, err := session.Do(httpReq)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &restbase.RawResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}, nil
}

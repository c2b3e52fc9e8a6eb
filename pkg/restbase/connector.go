package restbase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sweetpay/restbase/internal/constants"
)

// TransportRequest is the fully prepared request handed to a Transport.
type TransportRequest struct {
	Method  string
	URL     string
	Headers http.Header
	Body    []byte
	Timeout time.Duration
}

// RawResponse is the raw result returned by a Transport.
type RawResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Transport is the network capability a Connector dispatches through.
//
// Implementations must not share mutable per-call state between concurrent
// Send calls; the reference HTTP implementation creates a fresh session for
// every call.
type Transport interface {
	Send(ctx context.Context, req *TransportRequest) (*RawResponse, error)
}

// Codec serializes outgoing parameters and deserializes response bodies.
type Codec interface {
	Encode(method string, params interface{}) ([]byte, error)
	Decode(raw []byte) (interface{}, error)
}

// HeaderBuilder computes the headers sent on every request. It is invoked
// exactly once, during Connector construction, after the credential and
// environment fields are final.
type HeaderBuilder interface {
	BuildHeaders(token string, test bool) http.Header
}

// HeaderBuilderFunc adapts a function to the HeaderBuilder interface.
type HeaderBuilderFunc func(token string, test bool) http.Header

// BuildHeaders implements HeaderBuilder.
func (f HeaderBuilderFunc) BuildHeaders(token string, test bool) http.Header {
	return f(token, test)
}

// RequestArgs carries the ancillary request arguments a pre-process hook may
// mutate. The method and URL are deliberately not part of it.
type RequestArgs struct {
	Headers http.Header
	Body    []byte
	Timeout time.Duration
}

// PreProcessHook runs after encoding and before dispatch. Typical uses are
// per-call headers (e.g. time-dependent authentication) or body rewriting.
type PreProcessHook func(ctx context.Context, method, url string, args *RequestArgs) error

// PostProcessHook runs after decoding and may transform or replace the
// response envelope.
type PostProcessHook func(ctx context.Context, resp *Response) (*Response, error)

// ConnectorConfig configures a Connector.
type ConnectorConfig struct {
	// Token is the opaque credential sent with every request.
	Token string

	// Test selects the test environment when true, production otherwise.
	Test bool

	// Timeout bounds each transport dispatch. Defaults to
	// constants.DefaultTimeout when zero.
	Timeout time.Duration

	// Codec is required.
	Codec Codec

	// Headers is required. It is consulted once, at construction.
	Headers HeaderBuilder

	// Transport is required.
	Transport Transport

	// PreProcess and PostProcess are optional pipeline hooks.
	PreProcess  PreProcessHook
	PostProcess PostProcessHook

	// Logger defaults to a no-op logger.
	Logger Logger
}

// Connector performs one full request/response exchange per call: encode,
// pre-process, dispatch, decode, post-process, in that order.
type Connector struct {
	token     string
	test      bool
	timeout   time.Duration
	headers   http.Header
	codec     Codec
	transport Transport
	pre       PreProcessHook
	post      PostProcessHook
	logger    Logger
}

// NewConnector validates the configured capabilities and computes the static
// headers. A missing Codec, HeaderBuilder, or Transport is a contract error.
func NewConnector(cfg ConnectorConfig) (*Connector, error) {
	if cfg.Codec == nil {
		return nil, ErrCodecRequired
	}

	if cfg.Headers == nil {
		return nil, ErrHeaderBuilderRequired
	}

	if cfg.Transport == nil {
		return nil, ErrTransportRequired
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = constants.DefaultTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = NewNoopLogger()
	}

	conn := &Connector{
		token:     cfg.Token,
		test:      cfg.Test,
		timeout:   timeout,
		codec:     cfg.Codec,
		transport: cfg.Transport,
		pre:       cfg.PreProcess,
		post:      cfg.PostProcess,
		logger:    logger,
	}

	// Computed last: the headers may depend on the token and environment,
	// and are never recomputed for the Connector's lifetime.
	conn.headers = cfg.Headers.BuildHeaders(cfg.Token, cfg.Test)

	return conn, nil
}

// Test reports whether the Connector targets the test environment.
func (c *Connector) Test() bool {
	return c.test
}

// Timeout returns the per-dispatch timeout.
func (c *Connector) Timeout() time.Duration {
	return c.timeout
}

// Headers returns the headers computed at construction. Callers must treat
// the returned value as read-only.
func (c *Connector) Headers() http.Header {
	return c.headers
}

// MakeRequest runs the five-stage pipeline against url with the given
// HTTP-style method (case-insensitive) and optional outgoing parameters.
// Transport failures are returned as *TransportError.
func (c *Connector) MakeRequest(ctx context.Context, url, method string, params interface{}) (*Response, error) {
	method = strings.ToUpper(method)

	body, err := c.codec.Encode(method, params)
	if err != nil {
		return nil, fmt.Errorf("encoding request data: %w", err)
	}

	args := &RequestArgs{
		Headers: cloneHeader(c.headers),
		Body:    body,
		Timeout: c.timeout,
	}

	if c.pre != nil {
		err = c.pre(ctx, method, url, args)
		if err != nil {
			return nil, fmt.Errorf("pre-processing request: %w", err)
		}
	}

	c.logger.Info("sending request", map[string]interface{}{
		"method": method,
		"url":    url,
	})

	raw, err := c.transport.Send(ctx, &TransportRequest{
		Method:  method,
		URL:     url,
		Headers: args.Headers,
		Body:    args.Body,
		Timeout: args.Timeout,
	})
	if err != nil {
		return nil, &TransportError{Method: method, URL: url, Err: err}
	}

	c.logger.Info("received response", map[string]interface{}{
		"method":      method,
		"url":         url,
		"status_code": raw.StatusCode,
	})

	data, err := c.codec.Decode(raw.Body)
	if err != nil {
		return nil, fmt.Errorf("decoding response data: %w", err)
	}

	resp := NewResponse(raw, raw.StatusCode, data)

	if c.post != nil {
		resp, err = c.post(ctx, resp)
		if err != nil {
			return nil, fmt.Errorf("post-processing request: %w", err)
		}
	}

	return resp, nil
}

// cloneHeader copies h so per-call hooks never mutate the Connector's
// construction-time headers.
func cloneHeader(h http.Header) http.Header {
	clone := make(http.Header, len(h))
	for key, values := range h {
		clone[key] = append([]string(nil), values...)
	}

	return clone
}

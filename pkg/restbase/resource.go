package restbase

import (
	"context"
	"path"
	"strings"
)

// Classifier decides whether a response is a success or a domain error. It
// must either return the data to surface to the caller or an error carrying
// the offending code, payload, and raw response (typically an *APIError).
type Classifier interface {
	CheckResponse(code int, data interface{}, raw *RawResponse) (interface{}, error)
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(code int, data interface{}, raw *RawResponse) (interface{}, error)

// CheckResponse implements Classifier.
func (f ClassifierFunc) CheckResponse(code int, data interface{}, raw *RawResponse) (interface{}, error) {
	return f(code, data, raw)
}

// Endpoints holds the environment-specific base URLs of a Resource. A
// variant left empty is a configuration error when resolved.
type Endpoints struct {
	Test       string
	Production string
}

// ResourceConfig configures a Resource.
type ResourceConfig struct {
	// Test selects which of the Endpoints is resolved by URL.
	Test bool

	// Endpoints are the environment base URLs.
	Endpoints Endpoints

	// Classifier is required.
	Classifier Classifier

	// Connector is required and exclusively owned by the Resource.
	Connector *Connector
}

// Resource owns environment-aware URL construction and response
// classification for one API area. Concrete resources embed it and add
// their operations.
type Resource struct {
	test       bool
	endpoints  Endpoints
	classifier Classifier
	conn       *Connector
}

// NewResource validates the configuration and returns the Resource base.
func NewResource(cfg ResourceConfig) (*Resource, error) {
	if cfg.Classifier == nil {
		return nil, ErrClassifierRequired
	}

	if cfg.Connector == nil {
		return nil, ErrConnectorRequired
	}

	return &Resource{
		test:       cfg.Test,
		endpoints:  cfg.Endpoints,
		classifier: cfg.Classifier,
		conn:       cfg.Connector,
	}, nil
}

// Test reports whether the Resource targets the test environment.
func (r *Resource) Test() bool {
	return r.test
}

// Connector returns the owned Connector.
func (r *Resource) Connector() *Connector {
	return r.conn
}

// URL resolves the test or production base URL depending on the environment
// flag. An unconfigured variant is a configuration error.
func (r *Resource) URL() (string, error) {
	if r.test {
		if r.endpoints.Test == "" {
			return "", ErrNoTestURL
		}

		return r.endpoints.Test, nil
	}

	if r.endpoints.Production == "" {
		return "", ErrNoProductionURL
	}

	return r.endpoints.Production, nil
}

// BuildURL joins the base URL with path segments, normalizing separators.
// Segments are not URL-encoded; callers pre-encode where needed.
func (r *Resource) BuildURL(segments ...string) (string, error) {
	base, err := r.URL()
	if err != nil {
		return "", err
	}

	if len(segments) == 0 {
		return base, nil
	}

	joined := path.Join(segments...)

	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(joined, "/"), nil
}

// Call performs one API call through the owned Connector and classifies the
// result. When no error is returned, the operation succeeded and the
// returned data is what the classifier surfaced.
func (r *Resource) Call(ctx context.Context, url, method string, data interface{}) (interface{}, error) {
	resp, err := r.conn.MakeRequest(ctx, url, method, data)
	if err != nil {
		return nil, err
	}

	return r.classifier.CheckResponse(resp.Code(), resp.Data(), resp.Raw())
}

package restbase

import (
	"errors"
	"fmt"
)

// Contract errors: a Connector or Resource was constructed without one of
// its required capabilities.
var (
	ErrCodecRequired         = errors.New("codec is required")
	ErrHeaderBuilderRequired = errors.New("header builder is required")
	ErrTransportRequired     = errors.New("transport is required")
	ErrClassifierRequired    = errors.New("response classifier is required")
	ErrConnectorRequired     = errors.New("connector is required")
	ErrRegistryRequired      = errors.New("registry is required")
)

// Configuration errors raised during URL resolution.
var (
	ErrNoTestURL       = errors.New("no URL configured for the test environment")
	ErrNoProductionURL = errors.New("no URL configured for the production environment")
)

// ErrStubReturnType is returned when an intercepted operation's stub was
// configured with a return value of the wrong type.
var ErrStubReturnType = errors.New("stub return value has wrong type")

// NotRegisteredError is returned by NewClient when a requested
// (namespace, version) pair has no entry in the registry.
type NotRegisteredError struct {
	Namespace string
	Version   int
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("no resource registered for namespace=%s and version=%d", e.Namespace, e.Version)
}

// APIError is the domain error raised by a Resource's classifier when a
// response fails classification. It carries the offending status code,
// decoded payload, and raw response handle for diagnostics.
type APIError struct {
	Message  string
	Data     interface{}
	Code     int
	Response *RawResponse
	Err      error
}

func (e *APIError) Error() string {
	msg := e.Message
	if e.Code != 0 {
		msg = fmt.Sprintf("%s (code: %d)", msg, e.Code)
	}

	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}

	return msg
}

// Unwrap returns the wrapped underlying error, if any.
func (e *APIError) Unwrap() error {
	return e.Err
}

// Fields returns the error's attributes as a field map suitable for
// structured logging.
func (e *APIError) Fields() map[string]interface{} {
	return map[string]interface{}{
		"msg":      e.Message,
		"data":     e.Data,
		"code":     e.Code,
		"response": e.Response,
		"exc":      e.Err,
	}
}

// TransportError wraps a failure surfaced by the Transport (timeout,
// connection failure, protocol error) so callers see a uniform taxonomy.
// The underlying error stays reachable through errors.Is and errors.As.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure: %s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying transport failure.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsAPIError reports whether err is or wraps an *APIError.
func IsAPIError(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr)
}

// IsTransportError reports whether err is or wraps a *TransportError.
func IsTransportError(err error) bool {
	trErr := &TransportError{}

	return errors.As(err, &trErr)
}

// StatusCode extracts the status code carried by an *APIError in err's
// chain. The second return value reports whether one was found.
func StatusCode(err error) (int, bool) {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code, true
	}

	return 0, false
}

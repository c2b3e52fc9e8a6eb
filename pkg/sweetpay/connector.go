package sweetpay

import (
	"net/http"

	"github.com/sweetpay/restbase/internal/constants"
	"github.com/sweetpay/restbase/pkg/restbase"
)

// headerBuilder computes the static headers sent with every Sweetpay
// request. Invoked once per Connector, at construction.
type headerBuilder struct{}

// BuildHeaders implements restbase.HeaderBuilder.
func (headerBuilder) BuildHeaders(token string, test bool) http.Header {
	headers := make(http.Header)
	headers.Set("Authorization", token)
	headers.Set("User-Agent", constants.UserAgent)
	headers.Set("Content-Type", "application/json")
	headers.Set("Accept", "application/json")

	return headers
}

// classifier accepts 2xx responses and turns everything else into an
// *restbase.APIError carrying the offending code, payload, and raw handle.
type classifier struct{}

// CheckResponse implements restbase.Classifier.
func (classifier) CheckResponse(code int, data interface{}, raw *restbase.RawResponse) (interface{}, error) {
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return data, nil
	}

	return nil, &restbase.APIError{
		Message:  "the API request was unsuccessful",
		Data:     data,
		Code:     code,
		Response: raw,
	}
}

// newConnector builds the Connector a Sweetpay resource owns: JSON codec,
// Authorization-token headers, and the transport handed down by the Client.
func newConnector(b restbase.Binding) (*restbase.Connector, error) {
	return b.NewConnector(restbase.ConnectorConfig{
		Token:     b.Token,
		Test:      b.Test,
		Timeout:   b.Timeout,
		Codec:     restbase.JSONCodec{},
		Headers:   headerBuilder{},
		Transport: b.Transport,
		Logger:    b.Logger,
	})
}

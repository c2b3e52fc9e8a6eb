package sweetpay

import (
	"context"
	"net/http"

	"github.com/sweetpay/restbase/pkg/restbase"
)

// Operation names for the checkout resource, used for interception.
const (
	OpCreateSession = "checkout.create_session"
	OpGetSession    = "checkout.get_session"
)

// Checkout environment base URLs.
const (
	checkoutTestURL       = "https://checkout.test.sweetpay.com/api"
	checkoutProductionURL = "https://checkout.sweetpay.com/api"
)

// CheckoutResource talks to the checkout sessions API.
type CheckoutResource struct {
	*restbase.Resource
}

// NewCheckoutResource builds the checkout resource with its own Connector.
func NewCheckoutResource(b restbase.Binding) (*CheckoutResource, error) {
	conn, err := newConnector(b)
	if err != nil {
		return nil, err
	}

	base, err := restbase.NewResource(restbase.ResourceConfig{
		Test: b.Test,
		Endpoints: restbase.Endpoints{
			Test:       checkoutTestURL,
			Production: checkoutProductionURL,
		},
		Classifier: classifier{},
		Connector:  conn,
	})
	if err != nil {
		return nil, err
	}

	return &CheckoutResource{Resource: base}, nil
}

// CreateSession creates a checkout session.
func (r *CheckoutResource) CreateSession(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	return restbase.Call(ctx, OpCreateSession, []interface{}{params}, func(ctx context.Context) (interface{}, error) {
		url, err := r.BuildURL("sessions")
		if err != nil {
			return nil, err
		}

		return r.Call(ctx, url, http.MethodPost, params)
	})
}

// GetSession fetches a checkout session by ID.
func (r *CheckoutResource) GetSession(ctx context.Context, sessionID string) (interface{}, error) {
	return restbase.Call(ctx, OpGetSession, []interface{}{sessionID}, func(ctx context.Context) (interface{}, error) {
		url, err := r.BuildURL("sessions", sessionID)
		if err != nil {
			return nil, err
		}

		return r.Call(ctx, url, http.MethodGet, nil)
	})
}

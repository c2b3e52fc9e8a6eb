package sweetpay

import (
	"context"
	"net/http"

	"github.com/sweetpay/restbase/pkg/restbase"
)

// Operation names for the subscription resource, used for interception.
const (
	OpSearchSubscriptions = "subscription.search"
	OpGetSubscription     = "subscription.get"
	OpCancelSubscription  = "subscription.cancel"
)

// Subscription environment base URLs.
const (
	subscriptionTestURL       = "https://subscription.test.sweetpay.com/api"
	subscriptionProductionURL = "https://subscription.sweetpay.com/api"
)

// SubscriptionResource talks to the subscription API.
type SubscriptionResource struct {
	*restbase.Resource
}

// NewSubscriptionResource builds the subscription resource with its own
// Connector.
func NewSubscriptionResource(b restbase.Binding) (*SubscriptionResource, error) {
	conn, err := newConnector(b)
	if err != nil {
		return nil, err
	}

	base, err := restbase.NewResource(restbase.ResourceConfig{
		Test: b.Test,
		Endpoints: restbase.Endpoints{
			Test:       subscriptionTestURL,
			Production: subscriptionProductionURL,
		},
		Classifier: classifier{},
		Connector:  conn,
	})
	if err != nil {
		return nil, err
	}

	return &SubscriptionResource{Resource: base}, nil
}

// Search queries subscriptions matching the given criteria.
func (r *SubscriptionResource) Search(ctx context.Context, criteria map[string]interface{}) (interface{}, error) {
	return restbase.Call(ctx, OpSearchSubscriptions, []interface{}{criteria}, func(ctx context.Context) (interface{}, error) {
		url, err := r.BuildURL("search")
		if err != nil {
			return nil, err
		}

		return r.Call(ctx, url, http.MethodPost, criteria)
	})
}

// Get fetches a subscription by ID.
func (r *SubscriptionResource) Get(ctx context.Context, subscriptionID string) (interface{}, error) {
	return restbase.Call(ctx, OpGetSubscription, []interface{}{subscriptionID}, func(ctx context.Context) (interface{}, error) {
		url, err := r.BuildURL(subscriptionID)
		if err != nil {
			return nil, err
		}

		return r.Call(ctx, url, http.MethodGet, nil)
	})
}

// Cancel cancels a subscription by ID.
func (r *SubscriptionResource) Cancel(ctx context.Context, subscriptionID string) (interface{}, error) {
	return restbase.Call(ctx, OpCancelSubscription, []interface{}{subscriptionID}, func(ctx context.Context) (interface{}, error) {
		url, err := r.BuildURL(subscriptionID, "cancel")
		if err != nil {
			return nil, err
		}

		return r.Call(ctx, url, http.MethodPost, nil)
	})
}

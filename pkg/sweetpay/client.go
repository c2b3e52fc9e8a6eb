// Package sweetpay is a concrete client built on the restbase scaffolding:
// checkout and subscription resources, JSON codec, Authorization-token
// headers, and the reference HTTP transport by default.
package sweetpay

import (
	"fmt"
	"time"

	"github.com/sweetpay/restbase/internal/transport"
	"github.com/sweetpay/restbase/pkg/restbase"
)

// Resource namespaces.
const (
	NamespaceCheckout     = "checkout"
	NamespaceSubscription = "subscription"
)

// DefaultVersions selects version 1 of every namespace.
var DefaultVersions = map[string]int{
	NamespaceCheckout:     1,
	NamespaceSubscription: 1,
}

// registry is built once and shared read-only by every Client.
var registry = restbase.NewRegistry(map[restbase.Key]restbase.ResourceFactory{
	{Namespace: NamespaceCheckout, Version: 1}: func(b restbase.Binding) (interface{}, error) {
		return NewCheckoutResource(b)
	},
	{Namespace: NamespaceSubscription, Version: 1}: func(b restbase.Binding) (interface{}, error) {
		return NewSubscriptionResource(b)
	},
})

// Config configures a Sweetpay client.
type Config struct {
	// Token is the API token.
	Token string

	// Test selects the test environment.
	Test bool

	// Versions maps namespaces to resource versions. Defaults to
	// DefaultVersions.
	Versions map[string]int

	// Timeout bounds each request dispatch.
	Timeout time.Duration

	// Transport overrides the default HTTP transport.
	Transport restbase.Transport

	// Logger receives the per-request log records.
	Logger restbase.Logger
}

// Client is the entry point to the Sweetpay API. The resource fields are
// populated for the namespaces requested at construction and nil otherwise.
type Client struct {
	base *restbase.Client

	Checkout      *CheckoutResource
	Subscriptions *SubscriptionResource
}

// New binds the requested resources and returns the client.
func New(cfg Config) (*Client, error) {
	versions := cfg.Versions
	if versions == nil {
		versions = DefaultVersions
	}

	tr := cfg.Transport
	if tr == nil {
		tr = transport.NewHTTP()
	}

	base, err := restbase.NewClient(registry, restbase.Config{
		Token:     cfg.Token,
		Test:      cfg.Test,
		Versions:  versions,
		Timeout:   cfg.Timeout,
		Transport: tr,
		Logger:    cfg.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating sweetpay client: %w", err)
	}

	client := &Client{base: base}

	if resource, ok := base.Resource(NamespaceCheckout); ok {
		client.Checkout = resource.(*CheckoutResource)
	}

	if resource, ok := base.Resource(NamespaceSubscription); ok {
		client.Subscriptions = resource.(*SubscriptionResource)
	}

	return client, nil
}

// Test reports whether the client targets the test environment.
func (c *Client) Test() bool {
	return c.base.Test()
}

// Resource returns the resource bound under namespace.
func (c *Client) Resource(namespace string) (interface{}, bool) {
	return c.base.Resource(namespace)
}

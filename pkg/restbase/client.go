package restbase

import (
	"fmt"
	"time"

	"github.com/sweetpay/restbase/internal/constants"
)

// Key identifies a resource implementation in a Registry.
type Key struct {
	Namespace string
	Version   int
}

// Binding carries the construction arguments a Client hands to each
// resource factory.
type Binding struct {
	Token        string
	Test         bool
	Timeout      time.Duration
	Transport    Transport
	Logger       Logger
	NewConnector ConnectorFactory
}

// ResourceFactory builds one resource instance from a Binding.
type ResourceFactory func(b Binding) (interface{}, error)

// ConnectorFactory builds the Connector a resource owns. NewConnector is
// the default; concrete clients may override it per Config.
type ConnectorFactory func(cfg ConnectorConfig) (*Connector, error)

// Registry maps (namespace, version) pairs to resource factories. It is
// built once per concrete client type and immutable afterwards, so sharing
// it read-only across client instances is safe.
type Registry struct {
	factories map[Key]ResourceFactory
}

// NewRegistry copies the given factories into an immutable Registry.
func NewRegistry(factories map[Key]ResourceFactory) *Registry {
	copied := make(map[Key]ResourceFactory, len(factories))
	for key, factory := range factories {
		copied[key] = factory
	}

	return &Registry{factories: copied}
}

// Lookup returns the factory registered for the namespace and version.
func (r *Registry) Lookup(namespace string, version int) (ResourceFactory, bool) {
	factory, ok := r.factories[Key{Namespace: namespace, Version: version}]

	return factory, ok
}

// Len returns the number of registered implementations.
func (r *Registry) Len() int {
	return len(r.factories)
}

// Config configures a Client.
type Config struct {
	// Token is the opaque credential passed to every resource.
	Token string

	// Test selects the test environment for all bound resources.
	Test bool

	// Versions maps each requested namespace to the resource version to
	// bind for it. Every entry must be present in the registry.
	Versions map[string]int

	// Timeout bounds each transport dispatch. Defaults to
	// constants.DefaultTimeout when zero.
	Timeout time.Duration

	// Transport is required; resources dispatch through it.
	Transport Transport

	// Logger defaults to a no-op logger.
	Logger Logger

	// NewConnector optionally overrides the Connector implementation used
	// by the bound resources. Defaults to NewConnector.
	NewConnector ConnectorFactory
}

// Client binds one resource instance per requested namespace, resolved
// through a Registry. Construction fails fast on the first unregistered
// (namespace, version) pair.
type Client struct {
	token     string
	test      bool
	timeout   time.Duration
	resources map[string]interface{}
}

// NewClient resolves and instantiates the requested resources.
func NewClient(registry *Registry, cfg Config) (*Client, error) {
	if registry == nil {
		return nil, ErrRegistryRequired
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

	connectorFactory := cfg.NewConnector
	if connectorFactory == nil {
		connectorFactory = NewConnector
	}

	binding := Binding{
		Token:        cfg.Token,
		Test:         cfg.Test,
		Timeout:      timeout,
		Transport:    cfg.Transport,
		Logger:       logger,
		NewConnector: connectorFactory,
	}

	resources := make(map[string]interface{}, len(cfg.Versions))

	for namespace, version := range cfg.Versions {
		factory, ok := registry.Lookup(namespace, version)
		if !ok {
			return nil, &NotRegisteredError{Namespace: namespace, Version: version}
		}

		resource, err := factory(binding)
		if err != nil {
			return nil, fmt.Errorf("binding resource %s: %w", namespace, err)
		}

		resources[namespace] = resource
	}

	return &Client{
		token:     cfg.Token,
		test:      cfg.Test,
		timeout:   timeout,
		resources: resources,
	}, nil
}

// Token returns the credential the resources were bound with.
func (c *Client) Token() string {
	return c.token
}

// Test reports whether the Client targets the test environment.
func (c *Client) Test() bool {
	return c.test
}

// Timeout returns the timeout the bound resources were constructed with.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Resource returns the resource bound under namespace.
func (c *Client) Resource(namespace string) (interface{}, bool) {
	resource, ok := c.resources[namespace]

	return resource, ok
}

// Namespaces returns the namespaces with a bound resource.
func (c *Client) Namespaces() []string {
	names := make([]string, 0, len(c.resources))
	for namespace := range c.resources {
		names = append(names, namespace)
	}

	return names
}

// ResourceAs returns the resource bound under namespace, typed. It fails
// when the namespace is unbound or holds a different implementation.
func ResourceAs[T any](c *Client, namespace string) (T, error) {
	var zero T

	resource, ok := c.Resource(namespace)
	if !ok {
		return zero, fmt.Errorf("no resource bound for namespace %q", namespace)
	}

	typed, ok := resource.(T)
	if !ok {
		return zero, fmt.Errorf("resource bound for namespace %q is %T, not %T", namespace, resource, zero)
	}

	return typed, nil
}

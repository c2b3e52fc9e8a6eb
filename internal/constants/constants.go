package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Timeouts.
const (
	// DefaultTimeout bounds each transport dispatch unless overridden.
	DefaultTimeout = 15 * time.Second
)

// Retry defaults for the HTTP transport. Retries are off unless a consumer
// opts in on the transport.
const (
	// DefaultRetryWaitMin is the minimum wait between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Wire defaults.
const (
	// UserAgent is the default User-Agent header value.
	UserAgent = "restbase-go/1.0"

	// NATSMethodHeader carries the request method on a NATS message.
	NATSMethodHeader = "Restbase-Method"

	// NATSURLHeader carries the request URL on a NATS message.
	NATSURLHeader = "Restbase-Url"

	// NATSStatusHeader carries the status code on a NATS reply.
	NATSStatusHeader = "Restbase-Status"
)

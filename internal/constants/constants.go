// Package constants centralizes shared defaults used across the client and
// the CLI.
package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// TokenExchangeTimeout bounds the OAuth2 client-credentials exchange.
	TokenExchangeTimeout = 10 * time.Second
)

// Retry defaults. The core performs no implicit retries; transport-level
// retries are opt-in via Config.RetryMax.
const (
	// DefaultRetryMax disables transport retries.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait between opt-in retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait between opt-in retries.
	DefaultRetryWaitMax = 10 * time.Second
)

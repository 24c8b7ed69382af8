package constants

import "errors"

// Static errors shared by internal packages.
var (
	ErrTokenURLRequired = errors.New("token URL is required")
	ErrMalformedToken   = errors.New("access token is not a well-formed JWT")
	ErrNoExpiryClaim    = errors.New("access token carries no expiry claim")
)

package client

import "errors"

var (
	// ErrSignerNotConfigured is returned when a signed operation runs on a
	// client built without a JWS signer. Authenticated endpoints have no
	// unsigned fallback.
	ErrSignerNotConfigured = errors.New("client: JWS signer not configured")

	// ErrConfig is returned for unusable client configuration.
	ErrConfig = errors.New("client: invalid configuration")
)

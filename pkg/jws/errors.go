package jws

import (
	"errors"
	"fmt"
)

var (
	// ErrSigning is returned when producing a signature fails. Signing
	// failures are not transient and are never retried.
	ErrSigning = errors.New("jws: signing failed")

	// ErrFormat is returned when a token is not a well-formed detached JWS.
	ErrFormat = errors.New("jws: malformed detached token")

	// ErrNotDetached is returned when a token carries an embedded payload
	// segment where the detached form requires an empty one. It matches
	// ErrFormat in errors.Is checks.
	ErrNotDetached = fmt.Errorf("%w: payload segment is not empty", ErrFormat)
)

package client

import (
	"context"
	"fmt"

	"github.com/polishapi-project/polishapi-go/pkg/headers"
	"github.com/polishapi-project/polishapi-go/pkg/jws"
)

// RequestAuthenticator turns a base header set plus a request payload into
// the authenticated header set actually sent to the gateway.
type RequestAuthenticator interface {
	// Authenticate returns a new header set derived from base carrying
	// the payload's signature. base itself is never modified.
	Authenticate(ctx context.Context, payload string, base headers.RequestHeaders) (headers.RequestHeaders, error)
}

// SignerAuthenticator authenticates requests by signing each payload with
// a detached JWS signer. The signer is injected once at construction: code
// holding a SignerAuthenticator can produce signatures, code without one
// cannot.
type SignerAuthenticator struct {
	signer jws.Signer
}

var _ RequestAuthenticator = (*SignerAuthenticator)(nil)

// NewSignerAuthenticator creates an authenticator around signer.
func NewSignerAuthenticator(signer jws.Signer) (*SignerAuthenticator, error) {
	if signer == nil {
		return nil, ErrSignerNotConfigured
	}
	return &SignerAuthenticator{signer: signer}, nil
}

// KeyID returns the key id of the underlying signer.
func (a *SignerAuthenticator) KeyID() string {
	return a.signer.KeyID()
}

// Authenticate signs payload and returns a copy of base with the token in
// X-JWS-SIGNATURE.
func (a *SignerAuthenticator) Authenticate(ctx context.Context, payload string, base headers.RequestHeaders) (headers.RequestHeaders, error) {
	if err := ctx.Err(); err != nil {
		return headers.RequestHeaders{}, fmt.Errorf("context error: %w", err)
	}

	token, err := a.signer.Sign(payload)
	if err != nil {
		return headers.RequestHeaders{}, fmt.Errorf("failed to sign payload: %w", err)
	}

	return base.WithSignature(token), nil
}

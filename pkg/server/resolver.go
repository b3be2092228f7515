package server

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"

	jose "github.com/go-jose/go-jose/v4"
)

// ErrUnknownKey is returned when no public key is registered for a kid.
var ErrUnknownKey = errors.New("server: unknown signing key")

// KeyResolver maps the kid of an incoming token to the RSA public key that
// verifies it.
type KeyResolver interface {
	ResolveKey(ctx context.Context, keyID string) (*rsa.PublicKey, error)
}

// StaticKeyResolver resolves keys from a fixed in-memory map. Suitable when
// the set of trusted signing keys is known at startup. Register keys before
// serving traffic; Add is not safe to call concurrently with ResolveKey.
type StaticKeyResolver struct {
	keys map[string]*rsa.PublicKey
}

var _ KeyResolver = (*StaticKeyResolver)(nil)

// NewStaticKeyResolver creates an empty resolver.
func NewStaticKeyResolver() *StaticKeyResolver {
	return &StaticKeyResolver{keys: make(map[string]*rsa.PublicKey)}
}

// Add registers publicKey under keyID, replacing any previous entry.
func (r *StaticKeyResolver) Add(keyID string, publicKey *rsa.PublicKey) *StaticKeyResolver {
	r.keys[keyID] = publicKey
	return r
}

// ResolveKey looks up keyID among the registered keys.
func (r *StaticKeyResolver) ResolveKey(_ context.Context, keyID string) (*rsa.PublicKey, error) {
	publicKey, ok := r.keys[keyID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, keyID)
	}
	return publicKey, nil
}

// JWKSKeyResolver resolves keys from a JSON Web Key Set, the publication
// format produced by keys.PublicJWKS.
type JWKSKeyResolver struct {
	set jose.JSONWebKeySet
}

var _ KeyResolver = (*JWKSKeyResolver)(nil)

// NewJWKSKeyResolver creates a resolver over set.
func NewJWKSKeyResolver(set jose.JSONWebKeySet) *JWKSKeyResolver {
	return &JWKSKeyResolver{set: set}
}

// ResolveKey returns the RSA public key with the given kid from the set.
func (r *JWKSKeyResolver) ResolveKey(_ context.Context, keyID string) (*rsa.PublicKey, error) {
	matches := r.set.Key(keyID)
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, keyID)
	}
	publicKey, ok := matches[0].Key.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: key %q is not an RSA public key", ErrUnknownKey, keyID)
	}
	return publicKey, nil
}

package keys

import (
	"crypto"
	"encoding/base64"
	"fmt"

	"github.com/go-jose/go-jose/v4"
)

// PublicJWK returns the public half of the key as a JSON Web Key, the
// distribution format verifying parties consume.
func (k *KeyMaterial) PublicJWK() jose.JSONWebKey {
	return jose.JSONWebKey{
		Key:       &k.privateKey.PublicKey,
		KeyID:     k.keyID,
		Algorithm: "RS256",
		Use:       "sig",
	}
}

// PublicJWKS wraps PublicJWK in a single-key JSON Web Key Set.
func (k *KeyMaterial) PublicJWKS() jose.JSONWebKeySet {
	return jose.JSONWebKeySet{
		Keys: []jose.JSONWebKey{k.PublicJWK()},
	}
}

// Thumbprint returns the base64url-encoded RFC 7638 SHA-256 thumbprint of
// the public key. Useful as a stable key id when none was assigned.
func (k *KeyMaterial) Thumbprint() (string, error) {
	jwk := k.PublicJWK()
	tp, err := jwk.Thumbprint(crypto.SHA256)
	if err != nil {
		return "", fmt.Errorf("failed to compute thumbprint: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(tp), nil
}

// Copyright (C) 2025 PolishAPI Project
//
// This file is part of polishapi-go.
//
// polishapi-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// polishapi-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with polishapi-go.  If not, see <https://www.gnu.org/licenses/>.

package jws

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/polishapi-project/polishapi-go/pkg/keys"
)

// Signer produces detached JWS tokens over raw request payloads.
//
// Implementations must be safe for unlimited concurrent use; one Signer
// serves all requests of a client.
type Signer interface {
	// Sign returns the detached JWS for payload in compact form,
	// <protected>..<signature>. The payload never appears in the token.
	Sign(payload string) (string, error)

	// KeyID returns the key id placed in every protected header.
	KeyID() string
}

// RS256Signer implements Signer with RSASSA-PKCS1-v1_5 over SHA-256.
// It is immutable after construction.
type RS256Signer struct {
	key *keys.KeyMaterial
}

var _ Signer = (*RS256Signer)(nil)

// NewRS256Signer creates a signer around the given key material.
func NewRS256Signer(key *keys.KeyMaterial) (*RS256Signer, error) {
	if key == nil {
		return nil, fmt.Errorf("jws: key material cannot be nil")
	}
	return &RS256Signer{key: key}, nil
}

// KeyID returns the key id advertised in the protected header.
func (s *RS256Signer) KeyID() string {
	return s.key.KeyID()
}

// Sign signs payload and returns the detached compact serialization.
//
// The signing input is <protected-b64> "." <payload> with the payload
// bytes taken verbatim (RFC 7797 unencoded payload). Both output segments
// use base64url without padding.
func (s *RS256Signer) Sign(payload string) (string, error) {
	headerJSON, err := json.Marshal(NewHeader(s.key.KeyID()))
	if err != nil {
		return "", fmt.Errorf("%w: marshal protected header: %v", ErrSigning, err)
	}

	headerB64 := base64.RawURLEncoding.EncodeToString(headerJSON)
	signingInput := headerB64 + "." + payload

	signature, err := s.key.Sign([]byte(signingInput))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSigning, err)
	}

	signatureB64 := base64.RawURLEncoding.EncodeToString(signature)

	return headerB64 + ".." + signatureB64, nil
}

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
	"crypto"
	"crypto/rsa"
	"crypto/sha256"
	"fmt"
)

// Verifier checks detached JWS tokens against the payloads they were
// issued for. It is immutable after construction and safe for concurrent
// use.
type Verifier struct {
	publicKey *rsa.PublicKey
}

// NewVerifier creates a verifier checking RS256 signatures against
// publicKey.
func NewVerifier(publicKey *rsa.PublicKey) (*Verifier, error) {
	if publicKey == nil {
		return nil, fmt.Errorf("jws: public key cannot be nil")
	}
	return &Verifier{publicKey: publicKey}, nil
}

// Verify reports whether token is a valid detached signature over payload.
//
// The signing input is rebuilt from the token's own protected segment and
// the caller-supplied payload, then checked with RSASSA-PKCS1-v1_5 over
// SHA-256. A token that parses but fails the cryptographic check yields
// (false, nil); an error is returned only for malformed tokens.
func (v *Verifier) Verify(token, payload string) (bool, error) {
	parsed, err := Parse(token)
	if err != nil {
		return false, err
	}

	signingInput := parsed.Protected + "." + payload
	digest := sha256.Sum256([]byte(signingInput))

	if err := rsa.VerifyPKCS1v15(v.publicKey, crypto.SHA256, digest[:], parsed.Signature); err != nil {
		return false, nil
	}

	return true, nil
}

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

package keys

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
)

// ErrKeyFormat is returned when key material cannot be parsed.
// Error messages never include the key bytes themselves.
var ErrKeyFormat = errors.New("keys: invalid key material")

// KeyMaterial holds an RSA private key together with the key id advertised
// in JWS protected headers. It is immutable after construction and safe for
// concurrent use by any number of goroutines.
type KeyMaterial struct {
	privateKey *rsa.PrivateKey
	keyID      string
}

// LoadDER parses a DER-encoded RSA private key in either PKCS#1 or PKCS#8
// form and binds it to the given key id.
func LoadDER(der []byte, keyID string) (*KeyMaterial, error) {
	if len(der) == 0 {
		return nil, fmt.Errorf("%w: empty DER input", ErrKeyFormat)
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(der)
	if err != nil {
		parsed, pkcs8Err := x509.ParsePKCS8PrivateKey(der)
		if pkcs8Err != nil {
			return nil, fmt.Errorf("%w: not a PKCS#1 or PKCS#8 private key", ErrKeyFormat)
		}
		rsaKey, ok := parsed.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: unsupported key type %T, need RSA", ErrKeyFormat, parsed)
		}
		privateKey = rsaKey
	}

	if err := privateKey.Validate(); err != nil {
		return nil, fmt.Errorf("%w: key failed validation", ErrKeyFormat)
	}

	return &KeyMaterial{privateKey: privateKey, keyID: keyID}, nil
}

// LoadPEM parses a PEM-encoded RSA private key and binds it to the given
// key id. The first PEM block is used whatever its type label says; any
// content after that block is ignored.
func LoadPEM(pemText string, keyID string) (*KeyMaterial, error) {
	block, _ := pem.Decode([]byte(pemText))
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrKeyFormat)
	}
	return LoadDER(block.Bytes, keyID)
}

// Generate creates a fresh RSA key with the given modulus size in bits.
// Intended for tests, examples and the keygen CLI command; production keys
// normally arrive as QSeal certificates issued to the TPP.
func Generate(bits int, keyID string) (*KeyMaterial, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate private key: %w", err)
	}
	return &KeyMaterial{privateKey: privateKey, keyID: keyID}, nil
}

// KeyID returns the key id advertised alongside signatures.
func (k *KeyMaterial) KeyID() string {
	return k.keyID
}

// Public returns the RSA public key half.
func (k *KeyMaterial) Public() *rsa.PublicKey {
	return &k.privateKey.PublicKey
}

// Size returns the modulus size in bytes. Signatures produced with this key
// decode to exactly this many bytes.
func (k *KeyMaterial) Size() int {
	return k.privateKey.Size()
}

// Sign signs message with RSASSA-PKCS1-v1_5 over SHA-256 and returns the
// raw signature bytes.
func (k *KeyMaterial) Sign(message []byte) ([]byte, error) {
	digest := sha256.Sum256(message)
	signature, err := rsa.SignPKCS1v15(nil, k.privateKey, crypto.SHA256, digest[:])
	if err != nil {
		return nil, fmt.Errorf("failed to sign: %w", err)
	}
	return signature, nil
}

// MarshalPKCS8PEM encodes the private key as an unencrypted PKCS#8 PEM
// block, the form LoadPEM reads back.
func (k *KeyMaterial) MarshalPKCS8PEM() ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(k.privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal private key: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), nil
}

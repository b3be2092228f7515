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

package main

import (
	"fmt"
	"log"

	"github.com/polishapi-project/polishapi-go/pkg/jws"
	"github.com/polishapi-project/polishapi-go/pkg/keys"
)

func main() {
	fmt.Println("PolishAPI Go - Sign Payload Example")
	fmt.Println("=====================================")

	// Generate a signing key
	fmt.Println("\n1. Generating RSA signing key...")
	key, err := keys.Generate(2048, "example-qseal-2025")
	if err != nil {
		log.Fatalf("Failed to generate key: %v", err)
	}
	fmt.Printf("   Key ID: %s\n", key.KeyID())
	fmt.Printf("   Modulus size: %d bytes\n", key.Size())

	// Create the detached JWS signer
	fmt.Println("\n2. Creating detached JWS signer...")
	signer, err := jws.NewRS256Signer(key)
	if err != nil {
		log.Fatalf("Failed to create signer: %v", err)
	}
	fmt.Println("   Signer created successfully!")

	// Sign a sample PolishAPI payload
	fmt.Println("\n3. Signing a sample payload...")
	payload := `{"requestHeader":{"requestId":"11111111-1111-1111-1111-111111111111","sendDate":"2025-08-25T10:00:00Z"},"accountNumber":"PL61109010140000071219812874"}`
	token, err := signer.Sign(payload)
	if err != nil {
		log.Fatalf("Failed to sign payload: %v", err)
	}
	fmt.Printf("   Payload: %s\n", payload)
	fmt.Printf("   X-JWS-SIGNATURE: %s\n", token)

	// Decode the protected header
	fmt.Println("\n4. Decoding the protected header...")
	parsed, err := jws.Parse(token)
	if err != nil {
		log.Fatalf("Failed to parse token: %v", err)
	}
	header, err := parsed.Header()
	if err != nil {
		log.Fatalf("Failed to decode header: %v", err)
	}
	fmt.Printf("   alg: %s\n", header.Algorithm)
	fmt.Printf("   kid: %s\n", header.KeyID)
	fmt.Printf("   b64: %v\n", header.Base64)
	fmt.Printf("   crit: %v\n", header.Critical)

	// Verify the token against the payload
	fmt.Println("\n5. Verifying the signature...")
	verifier, err := jws.NewVerifier(key.Public())
	if err != nil {
		log.Fatalf("Failed to create verifier: %v", err)
	}
	ok, err := verifier.Verify(token, payload)
	if err != nil {
		log.Fatalf("Failed to verify token: %v", err)
	}
	fmt.Printf("   Signature valid: %v\n", ok)

	// Verification fails for different payload bytes
	fmt.Println("\n6. Verifying against a tampered payload...")
	tampered := `{"requestHeader":{"requestId":"11111111-1111-1111-1111-111111111111","sendDate":"2025-08-25T10:00:00Z"},"accountNumber":"PL00000000000000000000000000"}`
	ok, err = verifier.Verify(token, tampered)
	if err != nil {
		log.Fatalf("Failed to verify token: %v", err)
	}
	fmt.Printf("   Signature valid: %v (as expected, the body changed)\n", ok)

	fmt.Println("\n✅ Example completed successfully!")
}

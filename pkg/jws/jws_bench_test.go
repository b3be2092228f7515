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
	"testing"

	"github.com/polishapi-project/polishapi-go/pkg/keys"
)

const benchPayload = `{"requestId":"11111111-1111-1111-1111-111111111111","amount":"10.00","currency":"PLN"}`

func newBenchSigner(b *testing.B) (*RS256Signer, *keys.KeyMaterial) {
	b.Helper()
	km, err := keys.Generate(2048, "bench-key")
	if err != nil {
		b.Fatalf("failed to generate key: %v", err)
	}
	signer, err := NewRS256Signer(km)
	if err != nil {
		b.Fatalf("failed to create signer: %v", err)
	}
	return signer, km
}

// Benchmark detached signing over a typical payment payload
func BenchmarkRS256Signer_Sign(b *testing.B) {
	signer, _ := newBenchSigner(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := signer.Sign(benchPayload); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark one shared signer across goroutines
func BenchmarkRS256Signer_Sign_Parallel(b *testing.B) {
	signer, _ := newBenchSigner(b)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := signer.Sign(benchPayload); err != nil {
				b.Fatal(err)
			}
		}
	})
}

// Benchmark verification of a valid token
func BenchmarkVerifier_Verify(b *testing.B) {
	signer, km := newBenchSigner(b)
	token, err := signer.Sign(benchPayload)
	if err != nil {
		b.Fatalf("failed to sign: %v", err)
	}
	verifier, err := NewVerifier(km.Public())
	if err != nil {
		b.Fatalf("failed to create verifier: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ok, err := verifier.Verify(token, benchPayload)
		if err != nil || !ok {
			b.Fatalf("verify failed: ok=%v err=%v", ok, err)
		}
	}
}

// Benchmark token parsing alone
func BenchmarkParse(b *testing.B) {
	signer, _ := newBenchSigner(b)
	token, err := signer.Sign(benchPayload)
	if err != nil {
		b.Fatalf("failed to sign: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(token); err != nil {
			b.Fatal(err)
		}
	}
}

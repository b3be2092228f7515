// Package jws produces and verifies the detached JWS signatures PolishAPI
// requires on every authenticated request.
//
// A detached token has the compact form
//
//	<protected-b64>..<signature-b64>
//
// with an empty middle segment: the signed payload travels in the HTTP
// body, not inside the token (RFC 7797, b64=false). The recipient rebuilds
// the signing input from the token's protected segment plus the body it
// received and checks the RS256 signature over that.
//
// # Signing
//
//	km, _ := keys.LoadPEM(pemText, "my-qseal-2025")
//	signer, _ := jws.NewRS256Signer(km)
//
//	token, err := signer.Sign(`{"requestId":"..."}`)
//	// token goes into the X-JWS-SIGNATURE header, the payload into the body
//
// Signing is a pure CPU-bound operation; there is no context parameter and
// no retry. A failed Sign is reported once with ErrSigning and left to the
// caller.
//
// # Verifying
//
//	verifier, _ := jws.NewVerifier(km.Public())
//	ok, err := verifier.Verify(token, receivedBody)
//
// Verify distinguishes the two failure classes: a malformed token is an
// error (ErrFormat, or ErrNotDetached when a payload segment was embedded),
// while a well-formed token that simply does not match the payload is
// (false, nil).
//
// # Key Selection
//
// Multi-key verifiers first parse the token and read the kid from its
// header, then verify with the matching key:
//
//	parsed, _ := jws.Parse(token)
//	header, _ := parsed.Header()
//	key := lookup(header.KeyID)
//
// # Concurrency
//
// Signer and Verifier are immutable after construction. One instance of
// each serves any number of goroutines without locking.
package jws

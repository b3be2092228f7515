// Package server provides HTTP middleware for detached JWS request
// verification.
//
// The server package implements HTTP middleware that verifies the detached
// JWS token carried in the X-JWS-SIGNATURE header of incoming PolishAPI
// requests against the raw request body. It is the receiving half of the
// signing performed by the client package.
//
// # Features
//
//   - Detached JWS (RFC 7797, "b64":false) verification for HTTP requests
//   - RS256 signature validation over the exact body bytes received
//   - Key selection by kid through a pluggable KeyResolver
//   - JWKS and static in-memory key sources
//   - Optional verification mode (allow unsigned requests)
//   - CORS preflight support (OPTIONS requests)
//   - Custom error handler support
//   - Request body preservation
//
// # Basic Usage
//
//	// Register the trusted signing keys
//	resolver := server.NewStaticKeyResolver().
//	    Add("my-qseal-2025", tppPublicKey)
//	middleware := server.NewJWSAuthMiddleware(resolver)
//
//	// Wrap HTTP handler
//	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//	    // Extract the verified signing key id from context
//	    keyID, ok := server.KeyIDFromContext(r.Context())
//	    if !ok {
//	        http.Error(w, "Unauthorized", http.StatusUnauthorized)
//	        return
//	    }
//
//	    fmt.Fprintf(w, "Signed by: %s", keyID)
//	})
//
//	// Apply middleware
//	http.Handle("/v3_0.1/", middleware.Wrap(handler))
//
// # JWKS Key Source
//
//	// Keys published as a JSON Web Key Set, e.g. from keys.PublicJWKS
//	resolver := server.NewJWKSKeyResolver(keySet)
//	middleware := server.NewJWSAuthMiddleware(resolver)
//
// # Optional Verification
//
//	// Allow unsigned requests to pass through
//	middleware.SetOptional(true)
//
// # Custom Error Handler
//
//	middleware.SetErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
//	    log.Printf("signature verification failed: %v", err)
//	    http.Error(w, "Custom error message", http.StatusForbidden)
//	})
//
// # How It Works
//
// The JWSAuthMiddleware performs the following steps for each request:
//
//  1. Skips verification for OPTIONS requests (CORS preflight)
//  2. Checks for the X-JWS-SIGNATURE header
//  3. Buffers the request body and restores it for downstream handlers
//  4. Parses the token and decodes its protected header
//  5. Rejects algorithms other than RS256
//  6. Resolves the public key for the header's kid
//  7. Verifies the signature over the received body bytes
//  8. Adds the verified kid to the request context
//  9. Calls the next handler in the chain
//
// If verification fails at any step, the middleware returns 401
// Unauthorized and does not call the next handler.
//
// # Body Preservation
//
// The middleware reads and preserves the request body so it can be used by
// downstream handlers. The body is buffered in memory during verification
// and restored before calling the next handler.
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    // Body is available even after middleware verification
//	    body, err := io.ReadAll(r.Body)
//	    if err != nil {
//	        http.Error(w, "Error reading body", http.StatusBadRequest)
//	        return
//	    }
//
//	    // Process body...
//	}
//
// # Thread Safety
//
// The middleware is safe for concurrent use by multiple goroutines once
// configured. Register resolver keys and set handlers before serving
// traffic.
//
// See the client package for the corresponding client that generates these
// signatures automatically.
package server

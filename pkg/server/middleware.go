package server

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/polishapi-project/polishapi-go/pkg/headers"
	"github.com/polishapi-project/polishapi-go/pkg/jws"
)

type contextKey string

const signingKeyIDKey contextKey = "jws_key_id"

// ErrorHandler handles verification errors
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// JWSAuthMiddleware provides HTTP middleware for detached JWS verification
type JWSAuthMiddleware struct {
	resolver     KeyResolver
	errorHandler ErrorHandler
	optional     bool
}

// NewJWSAuthMiddleware creates middleware that verifies X-JWS-SIGNATURE
// tokens against public keys from resolver
func NewJWSAuthMiddleware(resolver KeyResolver) *JWSAuthMiddleware {
	return &JWSAuthMiddleware{
		resolver:     resolver,
		errorHandler: defaultErrorHandler,
		optional:     false,
	}
}

// SetErrorHandler sets a custom error handler
func (m *JWSAuthMiddleware) SetErrorHandler(handler ErrorHandler) {
	m.errorHandler = handler
}

// SetOptional sets whether signature verification is optional
// If true, requests without a signature header are allowed to pass through
func (m *JWSAuthMiddleware) SetOptional(optional bool) {
	m.optional = optional
}

// Wrap wraps an HTTP handler with detached JWS verification
func (m *JWSAuthMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip verification for OPTIONS requests (CORS preflight)
		if r.Method == "OPTIONS" {
			next.ServeHTTP(w, r)
			return
		}

		token := r.Header.Get(headers.HeaderJWSSignature)
		if token == "" {
			if m.optional {
				next.ServeHTTP(w, r)
				return
			}
			m.errorHandler(w, r, fmt.Errorf("missing %s header", headers.HeaderJWSSignature))
			return
		}

		// Read the body to preserve it for the handler; the signature
		// covers exactly these bytes.
		var bodyBytes []byte
		if r.Body != nil {
			bodyBytes, _ = io.ReadAll(r.Body)
			r.Body.Close()
		}
		r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		parsed, err := jws.Parse(token)
		if err != nil {
			m.errorHandler(w, r, fmt.Errorf("invalid signature token: %w", err))
			return
		}
		header, err := parsed.Header()
		if err != nil {
			m.errorHandler(w, r, fmt.Errorf("invalid signature token: %w", err))
			return
		}
		if header.Algorithm != jws.AlgorithmRS256 {
			m.errorHandler(w, r, fmt.Errorf("unsupported algorithm %q", header.Algorithm))
			return
		}

		ctx := r.Context()
		publicKey, err := m.resolver.ResolveKey(ctx, header.KeyID)
		if err != nil {
			m.errorHandler(w, r, fmt.Errorf("key resolution failed: %w", err))
			return
		}

		verifier, err := jws.NewVerifier(publicKey)
		if err != nil {
			m.errorHandler(w, r, fmt.Errorf("key resolution failed: %w", err))
			return
		}
		ok, err := verifier.Verify(token, string(bodyBytes))
		if err != nil {
			m.errorHandler(w, r, fmt.Errorf("invalid signature token: %w", err))
			return
		}
		if !ok {
			m.errorHandler(w, r, fmt.Errorf("signature verification failed"))
			return
		}

		// Add the verified signing key id to context
		ctx = context.WithValue(ctx, signingKeyIDKey, header.KeyID)
		r = r.WithContext(ctx)

		next.ServeHTTP(w, r)
	})
}

// KeyIDFromContext extracts the verified signing key id from request context
func KeyIDFromContext(ctx context.Context) (string, bool) {
	keyID, ok := ctx.Value(signingKeyIDKey).(string)
	return keyID, ok
}

// defaultErrorHandler is the default error handler
func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	http.Error(w, fmt.Sprintf("Unauthorized: %s", err.Error()), http.StatusUnauthorized)
}

package headers

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Builder assembles RequestHeaders starting from the defaults.
type Builder struct {
	headers RequestHeaders
}

// NewBuilder creates a builder seeded with NewRequestHeaders.
func NewBuilder() *Builder {
	return &Builder{headers: NewRequestHeaders()}
}

// Authorization sets a bearer token. The "Bearer " prefix is added here;
// callers pass the raw token.
func (b *Builder) Authorization(token string) *Builder {
	b.headers.Authorization = "Bearer " + token
	return b
}

// AcceptLanguage overrides the default language.
func (b *Builder) AcceptLanguage(language string) *Builder {
	b.headers.AcceptLanguage = language
	return b
}

// RequestID overrides the generated correlation id.
func (b *Builder) RequestID(id uuid.UUID) *Builder {
	b.headers.XRequestID = id
	return b
}

// Build returns the assembled headers.
func (b *Builder) Build() RequestHeaders {
	return b.headers
}

// ValidateAuthorization checks that value is a bearer authorization header
// with a non-empty token.
func ValidateAuthorization(value string) error {
	if !strings.HasPrefix(value, "Bearer ") {
		return fmt.Errorf("headers: authorization must start with %q", "Bearer ")
	}
	if strings.TrimPrefix(value, "Bearer ") == "" {
		return fmt.Errorf("headers: authorization token cannot be empty")
	}
	return nil
}

// ValidateRequestID checks that id is usable as a correlation id.
func ValidateRequestID(id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("headers: request id cannot be nil")
	}
	return nil
}

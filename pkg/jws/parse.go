package jws

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// DetachedSignature is a parsed detached JWS token.
type DetachedSignature struct {
	// Protected is the base64url-encoded protected header exactly as it
	// appeared in the token. Verification reuses these bytes unmodified,
	// so re-encoding quirks of the producer cannot break the check.
	Protected string

	// Signature holds the decoded signature bytes.
	Signature []byte
}

// Parse splits token into its protected header and signature. A valid
// token has the detached shape <protected>..<signature>: exactly three
// dot-separated segments with an empty middle one. Tokens carrying an
// embedded payload are rejected with ErrNotDetached.
func Parse(token string) (*DetachedSignature, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: expected 3 segments, got %d", ErrFormat, len(parts))
	}

	if parts[1] != "" {
		return nil, ErrNotDetached
	}

	if parts[0] == "" {
		return nil, fmt.Errorf("%w: empty protected header segment", ErrFormat)
	}
	if parts[2] == "" {
		return nil, fmt.Errorf("%w: empty signature segment", ErrFormat)
	}

	if _, err := base64.RawURLEncoding.DecodeString(parts[0]); err != nil {
		return nil, fmt.Errorf("%w: protected header segment is not base64url", ErrFormat)
	}

	signature, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: signature segment is not base64url", ErrFormat)
	}

	return &DetachedSignature{
		Protected: parts[0],
		Signature: signature,
	}, nil
}

// DecodeHeader decodes a base64url protected header segment into a Header.
// Verifying parties use it to pick the right key from the kid member.
func DecodeHeader(protected string) (*Header, error) {
	headerJSON, err := base64.RawURLEncoding.DecodeString(protected)
	if err != nil {
		return nil, fmt.Errorf("%w: protected header segment is not base64url", ErrFormat)
	}

	var header Header
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return nil, fmt.Errorf("%w: protected header is not valid JSON", ErrFormat)
	}

	return &header, nil
}

// Header decodes the protected header of the parsed token.
func (d *DetachedSignature) Header() (*Header, error) {
	return DecodeHeader(d.Protected)
}

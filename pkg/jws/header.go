package jws

// AlgorithmRS256 is the only signature algorithm PolishAPI permits for
// X-JWS-SIGNATURE tokens.
const AlgorithmRS256 = "RS256"

// Header is the JWS protected header carried by every detached token.
//
// Field declaration order fixes the serialized form:
//
//	{"alg":"RS256","kid":"<key id>","b64":false,"crit":["b64"]}
//
// JWS itself does not require any member order; the fixed order here only
// makes tokens reproducible byte for byte across runs.
//
// b64 is always false: the payload travels in the HTTP body and is signed
// verbatim rather than base64-encoded into the token (RFC 7797). crit
// names b64 so verifiers that do not understand unencoded payloads must
// reject the token instead of misreading it.
type Header struct {
	Algorithm string   `json:"alg"`
	KeyID     string   `json:"kid"`
	Base64    bool     `json:"b64"`
	Critical  []string `json:"crit"`
}

// NewHeader returns the protected header announcing a signature by keyID.
func NewHeader(keyID string) Header {
	return Header{
		Algorithm: AlgorithmRS256,
		KeyID:     keyID,
		Base64:    false,
		Critical:  []string{"b64"},
	}
}

package headers

import (
	"net/http"

	"github.com/google/uuid"
)

// Canonical names of the PolishAPI request headers this package manages.
const (
	HeaderAuthorization  = "Authorization"
	HeaderAcceptEncoding = "Accept-Encoding"
	HeaderAcceptLanguage = "Accept-Language"
	HeaderAcceptCharset  = "Accept-Charset"
	HeaderJWSSignature   = "X-JWS-SIGNATURE"
	HeaderRequestID      = "X-REQUEST-ID"
)

// Default values sent when the caller does not override them.
const (
	DefaultAcceptEncoding = "gzip, deflate"
	DefaultAcceptLanguage = "en-US"
	DefaultAcceptCharset  = "utf-8"
)

// RequestHeaders carries the per-request metadata attached to every
// authenticated PolishAPI call. It is a plain value type: copies are
// independent and callers never share mutable state through one.
type RequestHeaders struct {
	Authorization  string
	AcceptEncoding string
	AcceptLanguage string
	AcceptCharset  string
	XJWSSignature  string
	XRequestID     uuid.UUID
}

// NewRequestHeaders returns headers carrying the PolishAPI defaults and a
// fresh correlation id.
func NewRequestHeaders() RequestHeaders {
	return RequestHeaders{
		AcceptEncoding: DefaultAcceptEncoding,
		AcceptLanguage: DefaultAcceptLanguage,
		AcceptCharset:  DefaultAcceptCharset,
		XRequestID:     uuid.New(),
	}
}

// WithSignature returns a copy of h carrying the given detached JWS token.
// The receiver is left untouched, so one base header set can be reused
// across many signed requests.
func (h RequestHeaders) WithSignature(signature string) RequestHeaders {
	h.XJWSSignature = signature
	return h
}

// Apply writes the populated fields onto an outgoing request. Empty
// Authorization and X-JWS-SIGNATURE values and a nil request id are
// skipped rather than sent blank.
func (h RequestHeaders) Apply(req *http.Request) {
	if h.Authorization != "" {
		req.Header.Set(HeaderAuthorization, h.Authorization)
	}
	if h.AcceptEncoding != "" {
		req.Header.Set(HeaderAcceptEncoding, h.AcceptEncoding)
	}
	if h.AcceptLanguage != "" {
		req.Header.Set(HeaderAcceptLanguage, h.AcceptLanguage)
	}
	if h.AcceptCharset != "" {
		req.Header.Set(HeaderAcceptCharset, h.AcceptCharset)
	}
	if h.XJWSSignature != "" {
		req.Header.Set(HeaderJWSSignature, h.XJWSSignature)
	}
	if h.XRequestID != uuid.Nil {
		req.Header.Set(HeaderRequestID, h.XRequestID.String())
	}
}

// Package headers models the header set PolishAPI expects on every
// authenticated request: the bearer Authorization, the X-JWS-SIGNATURE
// detached token, the X-REQUEST-ID correlation id, and the Accept-*
// negotiation trio.
//
// RequestHeaders is a value type. The signature is never written in place:
// WithSignature hands back a signed copy and leaves the original alone, so
// a base header set prepared once can serve many requests.
//
//	base := headers.NewBuilder().
//	    Authorization(accessToken).
//	    AcceptLanguage("pl-PL").
//	    Build()
//
//	signed := base.WithSignature(token)
//	signed.Apply(req)
//
// X-REQUEST-ID is a UUID minted per header set. Banks echo it back, which
// makes it the correlation handle between TPP logs and ASPSP logs.
package headers

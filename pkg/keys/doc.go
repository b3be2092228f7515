// Package keys loads and holds the RSA key material used to produce
// detached JWS signatures for PolishAPI requests.
//
// Key material is bound to a key id at load time. The pair is immutable
// afterwards: rotating a key means loading a new KeyMaterial and building a
// new signer around it.
//
// # Loading Keys
//
// Keys arrive either as raw DER or as PEM text:
//
//	km, err := keys.LoadPEM(string(pemBytes), "my-qseal-2025")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// LoadDER accepts both PKCS#1 ("BEGIN RSA PRIVATE KEY") and PKCS#8
// ("BEGIN PRIVATE KEY") encodings. Non-RSA keys are rejected with
// ErrKeyFormat since PolishAPI mandates RS256.
//
// LoadPEM reads the first PEM block it finds and ignores anything after
// it. Files carrying a key followed by certificates therefore load the
// key; files where a certificate comes first will fail to parse.
//
// # Publishing Keys
//
// Verifying parties need the public half. PublicJWK and PublicJWKS export
// it in JSON Web Key form:
//
//	jwks := km.PublicJWKS()
//	data, _ := json.Marshal(jwks)
//
// # Error Handling
//
// All parse failures wrap ErrKeyFormat:
//
//	if errors.Is(err, keys.ErrKeyFormat) {
//	    // unusable key material
//	}
//
// Error messages describe the structural problem and never echo the key
// bytes.
package keys

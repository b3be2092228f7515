// Package client provides an HTTP client with automatic detached JWS
// request signing.
//
// The client package implements an HTTP client wrapper for PolishAPI
// gateways that signs every outgoing request body with a detached JWS
// (RFC 7515 with the RFC 7797 "b64":false option) and carries the token
// in the X-JWS-SIGNATURE header, alongside the bearer token and a fresh
// X-REQUEST-ID correlation identifier.
//
// # Features
//
//   - Automatic detached JWS generation for all request payloads
//   - RS256 signatures over the exact body bytes sent on the wire
//   - Configurable base URL, timeout, user agent and logger
//   - Context-aware request execution
//   - Custom HTTP client injection
//   - YAML configuration file support
//
// # Basic Usage
//
//	// Load the signing key and build a signer
//	key, _ := keys.LoadPEM(pemBytes, "my-qseal-2025")
//	signer, _ := jws.NewRS256Signer(key)
//
//	// Create the client against the gateway
//	cfg, _ := client.NewConfig("https://api.bank.example.com/v3_0.1/")
//	c, _ := client.NewClient(cfg, nil)
//	c.WithSigner(signer)
//
//	// Send a signed POST request
//	ctx := context.Background()
//	payload := `{"requestHeader":{...},"accountNumber":"PL61..."}`
//	resp, err := c.Post(ctx, "accounts/v3_0.1/getAccount", accessToken, payload)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer resp.Body.Close()
//
// # Configuration Files
//
//	cfg, err := client.LoadConfigFile("polishapi.yaml")
//
// with a file of the shape:
//
//	base_url: https://api.bank.example.com/v3_0.1/
//	client_id: my-tpp-id
//	timeout_seconds: 30
//	user_agent: my-tpp/1.0
//
// # Custom HTTP Client
//
//	httpClient := &http.Client{
//	    Timeout: 10 * time.Second,
//	}
//	c, _ := client.NewClient(cfg, httpClient)
//
// # Signing Without Sending
//
// When the HTTP transport lives elsewhere, the client can still produce
// the signature value for a payload:
//
//	token, err := c.SignPayload(ctx, payload)
//	// token goes into the X-JWS-SIGNATURE header of your own request
//
// or the full authenticated header set:
//
//	hdrs, err := c.AuthHeaders(ctx, accessToken, payload)
//	hdrs.Apply(req)
//
// # How It Works
//
// Call serializes nothing itself: the caller passes the exact JSON string
// to sign and send. The client asks its RequestAuthenticator for a header
// set containing the detached JWS over that string, writes the same string
// verbatim as the request body, and executes the request. Because the
// payload is never re-encoded, the gateway verifies exactly the bytes it
// reads off the wire.
//
// Attempting a signed call on a client with no signer fails fast with
// ErrSignerNotConfigured before any network traffic happens.
//
// # Error Handling
//
//	resp, err := c.Post(ctx, path, accessToken, payload)
//	if err != nil {
//	    // Handle configuration errors, signing errors, network errors
//	    // or context cancellation
//	    log.Printf("request failed: %v", err)
//	    return
//	}
//
//	if resp.StatusCode != http.StatusOK {
//	    body, _ := io.ReadAll(resp.Body)
//	    log.Printf("HTTP error %d: %s", resp.StatusCode, body)
//	}
//
// # Thread Safety
//
// Client is safe for concurrent use by multiple goroutines. The underlying
// http.Client is designed for this purpose and the signer holds no mutable
// state.
//
// # Context Cancellation
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	resp, err := c.Post(ctx, path, accessToken, payload)
//
// See the server package for the corresponding middleware that verifies
// these signatures on the receiving end.
package client

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"

	"github.com/polishapi-project/polishapi-go/pkg/client"
	"github.com/polishapi-project/polishapi-go/pkg/jws"
	"github.com/polishapi-project/polishapi-go/pkg/keys"
	"github.com/polishapi-project/polishapi-go/pkg/server"
)

func main() {
	fmt.Println("PolishAPI Go - Signed Round-Trip Example")
	fmt.Println("==========================================")

	ctx := context.Background()

	// Generate the TPP signing key
	fmt.Println("\n1. Generating TPP signing key...")
	key, err := keys.Generate(2048, "tpp-qseal-2025")
	if err != nil {
		log.Fatalf("Failed to generate key: %v", err)
	}
	fmt.Printf("   Key ID: %s\n", key.KeyID())

	// Start the ASPSP-side server that trusts the key
	fmt.Println("\n2. Starting gateway with JWS verification...")
	resolver := server.NewStaticKeyResolver().Add(key.KeyID(), key.Public())
	middleware := server.NewJWSAuthMiddleware(resolver)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "cannot read body", http.StatusBadRequest)
			return
		}
		keyID, _ := server.KeyIDFromContext(r.Context())
		fmt.Printf("   [gateway] verified request signed by %q: %s\n", keyID, body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"responseHeader":{"requestId":"11111111-1111-1111-1111-111111111111"}}`))
	})

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}
	httpServer := &http.Server{Handler: middleware.Wrap(handler)}
	go func() {
		if err := httpServer.Serve(listener); err != http.ErrServerClosed {
			log.Printf("server stopped: %v", err)
		}
	}()
	defer httpServer.Close()

	baseURL := "http://" + listener.Addr().String() + "/v3_0.1/"
	fmt.Printf("   Listening on %s\n", baseURL)

	// Create the signing client
	fmt.Println("\n3. Creating PolishAPI client with signer...")
	cfg, err := client.NewConfig(baseURL)
	if err != nil {
		log.Fatalf("Failed to create config: %v", err)
	}
	signer, err := jws.NewRS256Signer(key)
	if err != nil {
		log.Fatalf("Failed to create signer: %v", err)
	}
	c, err := client.NewClient(cfg, nil)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	c.WithSigner(signer)
	fmt.Println("   Client created successfully!")

	// Send a signed request
	fmt.Println("\n4. Sending signed request...")
	payload := `{"requestHeader":{"requestId":"11111111-1111-1111-1111-111111111111"},"accountNumber":"PL61109010140000071219812874"}`
	resp, err := c.Post(ctx, "accounts/getAccount", "demo-access-token", payload)
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	respBody, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	fmt.Printf("   Status: %s\n", resp.Status)
	fmt.Printf("   Response: %s\n", respBody)

	// An unsigned request is rejected
	fmt.Println("\n5. Sending unsigned request for comparison...")
	plainReq, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"accounts/getAccount", nil)
	if err != nil {
		log.Fatalf("Failed to create request: %v", err)
	}
	plainResp, err := http.DefaultClient.Do(plainReq)
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	plainBody, _ := io.ReadAll(plainResp.Body)
	plainResp.Body.Close()
	fmt.Printf("   Status: %s\n", plainResp.Status)
	fmt.Printf("   Response: %s", plainBody)

	fmt.Println("\n✅ Example completed successfully!")
}

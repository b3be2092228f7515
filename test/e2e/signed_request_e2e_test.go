// Copyright (C) 2025 PolishAPI Project
//
// This file is part of polishapi-go.
//
// polishapi-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// polishapi-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with polishapi-go.  If not, see <https://www.gnu.org/licenses/>.

package e2e

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jose "github.com/go-jose/go-jose/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polishapi-project/polishapi-go/pkg/client"
	"github.com/polishapi-project/polishapi-go/pkg/headers"
	"github.com/polishapi-project/polishapi-go/pkg/jws"
	"github.com/polishapi-project/polishapi-go/pkg/keys"
	"github.com/polishapi-project/polishapi-go/pkg/server"
)

// TestE2E_SignedRequestCycle tests the complete signed request/response
// cycle between the client and the verifying gateway middleware.
func TestE2E_SignedRequestCycle(t *testing.T) {
	// Setup: TPP signing key trusted by the gateway
	tppKey, err := keys.Generate(2048, "tpp-qseal-2025")
	require.NoError(t, err)

	resolver := server.NewStaticKeyResolver().Add(tppKey.KeyID(), tppKey.Public())
	middleware := server.NewJWSAuthMiddleware(resolver)

	// Gateway with two signed endpoints
	mux := http.NewServeMux()
	mux.HandleFunc("/v3_0.1/accounts/getAccount", func(w http.ResponseWriter, r *http.Request) {
		keyID, ok := server.KeyIDFromContext(r.Context())
		if !ok {
			http.Error(w, "no verified key", http.StatusInternalServerError)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "failed to read body", http.StatusBadRequest)
			return
		}

		var req map[string]interface{}
		if err := json.Unmarshal(body, &req); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"account":  req["accountNumber"],
			"signedBy": keyID,
		})
	})
	mux.HandleFunc("/v3_0.1/payments/domestic", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"paymentStatus": "submitted"})
	})

	testServer := httptest.NewServer(middleware.Wrap(mux))
	defer testServer.Close()

	newClient := func(t *testing.T, key *keys.KeyMaterial) *client.Client {
		t.Helper()
		cfg, err := client.NewConfig(testServer.URL + "/v3_0.1/")
		require.NoError(t, err)
		signer, err := jws.NewRS256Signer(key)
		require.NoError(t, err)
		c, err := client.NewClient(cfg, nil)
		require.NoError(t, err)
		return c.WithSigner(signer)
	}

	t.Run("GetAccount_Success", func(t *testing.T) {
		c := newClient(t, tppKey)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		payload := `{"requestHeader":{"requestId":"11111111-1111-1111-1111-111111111111"},"accountNumber":"PL61109010140000071219812874"}`
		resp, err := c.Post(ctx, "accounts/getAccount", "access-token", payload)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "PL61109010140000071219812874", result["account"])
		assert.Equal(t, "tpp-qseal-2025", result["signedBy"])
	})

	t.Run("Payment_Success", func(t *testing.T) {
		c := newClient(t, tppKey)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		payload := `{"amount":"100.50","currency":"PLN","recipient":"PL27114020040000300201355387"}`
		resp, err := c.Post(ctx, "payments/domestic", "access-token", payload)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("TamperedBody_Rejected", func(t *testing.T) {
		signer, err := jws.NewRS256Signer(tppKey)
		require.NoError(t, err)
		token, err := signer.Sign(`{"amount":"100.50"}`)
		require.NoError(t, err)

		// Send a different body than the one signed
		req, err := http.NewRequest(http.MethodPost, testServer.URL+"/v3_0.1/payments/domestic", strings.NewReader(`{"amount":"99999.99"}`))
		require.NoError(t, err)
		req.Header.Set(headers.HeaderJWSSignature, token)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("UnknownKey_Rejected", func(t *testing.T) {
		rogueKey, err := keys.Generate(2048, "rogue-key")
		require.NoError(t, err)
		c := newClient(t, rogueKey)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		resp, err := c.Post(ctx, "accounts/getAccount", "access-token", `{"accountNumber":"PL61109010140000071219812874"}`)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("MissingSignature_Rejected", func(t *testing.T) {
		resp, err := http.Post(testServer.URL+"/v3_0.1/payments/domestic", "application/json", strings.NewReader(`{}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Timeout_HandledCorrectly", func(t *testing.T) {
		c := newClient(t, tppKey)

		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Nanosecond)
		defer cancel()
		time.Sleep(time.Millisecond)

		_, err := c.Post(ctx, "accounts/getAccount", "access-token", `{}`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "context")
	})
}

// TestE2E_JWKSPublication tests key publication and resolution through a
// JSON Web Key Set endpoint.
func TestE2E_JWKSPublication(t *testing.T) {
	tppKey, err := keys.Generate(2048, "tpp-qseal-2025")
	require.NoError(t, err)

	// TPP publishes its public keys
	mux := http.NewServeMux()
	mux.HandleFunc("/.well-known/jwks.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(tppKey.PublicJWKS())
	})

	tppServer := httptest.NewServer(mux)
	defer tppServer.Close()

	// Gateway fetches the key set
	resp, err := http.Get(tppServer.URL + "/.well-known/jwks.json")
	require.NoError(t, err)
	defer resp.Body.Close()

	var fetched jose.JSONWebKeySet
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&fetched))
	require.Len(t, fetched.Keys, 1)

	// Tokens signed by the TPP verify against the fetched set
	resolver := server.NewJWKSKeyResolver(fetched)
	publicKey, err := resolver.ResolveKey(context.Background(), "tpp-qseal-2025")
	require.NoError(t, err)

	signer, err := jws.NewRS256Signer(tppKey)
	require.NoError(t, err)
	payload := `{"requestId":"11111111-1111-1111-1111-111111111111"}`
	token, err := signer.Sign(payload)
	require.NoError(t, err)

	verifier, err := jws.NewVerifier(publicKey)
	require.NoError(t, err)
	ok, err := verifier.Verify(token, payload)
	require.NoError(t, err)
	assert.True(t, ok)
}

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

package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/polishapi-project/polishapi-go/pkg/headers"
	"github.com/polishapi-project/polishapi-go/pkg/jws"
)

// Client is the HTTP shell shared by all PolishAPI service calls. It owns
// the gateway base URL, the transport, and once configured, the request
// signer. One Client serves any number of goroutines.
type Client struct {
	config     *Config
	httpClient *http.Client
	auth       RequestAuthenticator
	logger     zerolog.Logger
}

// NewClient creates a client for the given configuration.
// If httpClient is nil, one is built with the configured timeout.
func NewClient(config *Config, httpClient *http.Client) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config cannot be nil", ErrConfig)
	}
	if _, err := url.ParseRequestURI(config.BaseURL); err != nil {
		return nil, fmt.Errorf("%w: invalid base URL: %v", ErrConfig, err)
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}

	return &Client{
		config:     config,
		httpClient: httpClient,
		logger:     config.Logger,
	}, nil
}

// WithSigner equips the client with a detached JWS signer and returns the
// client for chaining. A nil signer leaves the client unsigned.
func (c *Client) WithSigner(signer jws.Signer) *Client {
	if signer == nil {
		return c
	}
	c.auth = &SignerAuthenticator{signer: signer}
	return c
}

// WithAuthenticator replaces the request authenticator wholesale. Useful
// when signing happens outside the process, e.g. in an HSM service.
func (c *Client) WithAuthenticator(auth RequestAuthenticator) *Client {
	c.auth = auth
	return c
}

// Config returns the client configuration.
func (c *Client) Config() *Config {
	return c.config
}

// SignPayload produces the detached JWS token for payload using the
// configured signer. Without a signer it fails with
// ErrSignerNotConfigured; signed endpoints are never called unsigned.
func (c *Client) SignPayload(ctx context.Context, payload string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("context error: %w", err)
	}
	if c.auth == nil {
		return "", ErrSignerNotConfigured
	}

	signed, err := c.auth.Authenticate(ctx, payload, headers.RequestHeaders{})
	if err != nil {
		return "", err
	}

	return signed.XJWSSignature, nil
}

// AuthHeaders builds the full authenticated header set for one request:
// bearer token, detached signature over payload, fresh correlation id.
func (c *Client) AuthHeaders(ctx context.Context, accessToken, payload string) (headers.RequestHeaders, error) {
	if c.auth == nil {
		return headers.RequestHeaders{}, ErrSignerNotConfigured
	}

	base := headers.NewBuilder().Authorization(accessToken).Build()
	return c.auth.Authenticate(ctx, payload, base)
}

// NewRequest creates a request against path resolved on the base URL,
// carrying the protocol's common headers.
func (c *Client) NewRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	endpoint, err := c.resolve(path)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", method, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Encoding", headers.DefaultAcceptEncoding)
	req.Header.Set("Accept-Charset", headers.DefaultAcceptCharset)
	req.Header.Set("User-Agent", c.config.UserAgent)

	return req, nil
}

// Call signs payload, attaches the authenticated headers and executes the
// request. payload is the exact JSON string that was signed; it ships
// verbatim as the body so the gateway verifies the same bytes it reads.
func (c *Client) Call(ctx context.Context, method, path, accessToken, payload string) (*http.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	hdrs, err := c.AuthHeaders(ctx, accessToken, payload)
	if err != nil {
		return nil, err
	}

	req, err := c.NewRequest(ctx, method, path, strings.NewReader(payload))
	if err != nil {
		return nil, err
	}
	hdrs.Apply(req)

	evt := c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", hdrs.XRequestID.String()).
		Int("payload_bytes", len(payload))
	if ka, ok := c.auth.(interface{ KeyID() string }); ok {
		evt = evt.Str("kid", ka.KeyID())
	}
	evt.Msg("sending signed request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}

	return resp, nil
}

// Post sends a signed POST request, the verb every PolishAPI operation
// uses.
func (c *Client) Post(ctx context.Context, path, accessToken, payload string) (*http.Response, error) {
	return c.Call(ctx, http.MethodPost, path, accessToken, payload)
}

func (c *Client) resolve(path string) (string, error) {
	base, err := url.Parse(c.config.BaseURL)
	if err != nil {
		return "", fmt.Errorf("%w: invalid base URL: %v", ErrConfig, err)
	}
	ref, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("%w: invalid path: %v", ErrConfig, err)
	}
	return base.ResolveReference(ref).String(), nil
}

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

// Command polishapi-jws signs and verifies PolishAPI request payloads with
// detached JWS tokens from the command line.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/polishapi-project/polishapi-go/pkg/client"
	"github.com/polishapi-project/polishapi-go/pkg/jws"
	"github.com/polishapi-project/polishapi-go/pkg/keys"
)

type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Keygen KeygenCmd `cmd:"" help:"Generate an RSA signing key"`
	Sign   SignCmd   `cmd:"" help:"Sign a payload, printing the detached JWS token"`
	Verify VerifyCmd `cmd:"" help:"Verify a detached JWS token against a payload"`
	Jwks   JwksCmd   `cmd:"" help:"Print the public JWKS for a signing key"`
	Send   SendCmd   `cmd:"" help:"Sign a payload and POST it to a configured gateway"`
}

type KeygenCmd struct {
	Bits  int    `default:"2048" help:"RSA modulus size in bits"`
	KeyID string `name:"kid" required:"" help:"Key id bound to the key"`
	Out   string `short:"o" type:"path" help:"Write the PEM key here instead of stdout"`
}

func (c *KeygenCmd) Run(logger zerolog.Logger) error {
	key, err := keys.Generate(c.Bits, c.KeyID)
	if err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}

	pemBytes, err := key.MarshalPKCS8PEM()
	if err != nil {
		return err
	}

	if c.Out == "" {
		_, err = os.Stdout.Write(pemBytes)
		return err
	}

	if err := os.WriteFile(c.Out, pemBytes, 0o600); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}
	logger.Info().Str("kid", c.KeyID).Int("bits", c.Bits).Str("path", c.Out).Msg("key written")
	return nil
}

type SignCmd struct {
	Key     string `required:"" type:"filecontent" help:"Path to the PEM signing key"`
	KeyID   string `name:"kid" required:"" help:"Key id for the protected header"`
	Payload string `arg:"" optional:"" help:"Payload to sign; reads stdin when omitted"`
}

func (c *SignCmd) Run(logger zerolog.Logger) error {
	payload, err := payloadOrStdin(c.Payload)
	if err != nil {
		return err
	}

	key, err := keys.LoadPEM(c.Key, c.KeyID)
	if err != nil {
		return err
	}

	signer, err := jws.NewRS256Signer(key)
	if err != nil {
		return err
	}

	token, err := signer.Sign(payload)
	if err != nil {
		return err
	}

	logger.Debug().Str("kid", c.KeyID).Int("payload_bytes", len(payload)).Msg("payload signed")
	fmt.Println(token)
	return nil
}

type VerifyCmd struct {
	Key     string `required:"" type:"filecontent" help:"Path to the signer's PEM key"`
	Token   string `arg:"" required:"" help:"Detached JWS token to verify"`
	Payload string `arg:"" optional:"" help:"Payload the token covers; reads stdin when omitted"`
}

func (c *VerifyCmd) Run(logger zerolog.Logger) error {
	payload, err := payloadOrStdin(c.Payload)
	if err != nil {
		return err
	}

	// The kid only identifies the key towards the gateway; verification
	// here uses the key file directly.
	key, err := keys.LoadPEM(c.Key, "cli")
	if err != nil {
		return err
	}

	parsed, err := jws.Parse(c.Token)
	if err != nil {
		return err
	}
	header, err := parsed.Header()
	if err != nil {
		return err
	}
	logger.Debug().Str("alg", header.Algorithm).Str("kid", header.KeyID).Msg("token parsed")

	verifier, err := jws.NewVerifier(key.Public())
	if err != nil {
		return err
	}

	ok, err := verifier.Verify(c.Token, payload)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("signature is not valid for this payload")
	}

	fmt.Printf("valid signature by kid %q\n", header.KeyID)
	return nil
}

type JwksCmd struct {
	Key   string `required:"" type:"filecontent" help:"Path to the PEM signing key"`
	KeyID string `name:"kid" required:"" help:"Key id to advertise"`
}

func (c *JwksCmd) Run(logger zerolog.Logger) error {
	key, err := keys.LoadPEM(c.Key, c.KeyID)
	if err != nil {
		return err
	}

	jwks, err := json.MarshalIndent(key.PublicJWKS(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JWKS: %w", err)
	}

	fmt.Println(string(jwks))
	return nil
}

type SendCmd struct {
	Config  string `required:"" type:"path" help:"Path to the YAML client configuration"`
	Key     string `required:"" type:"filecontent" help:"Path to the PEM signing key"`
	KeyID   string `name:"kid" required:"" help:"Key id for the protected header"`
	Path    string `required:"" help:"Endpoint path relative to the configured base URL"`
	Token   string `help:"OAuth2 access token for the Authorization header"`
	Payload string `arg:"" optional:"" help:"JSON payload; reads stdin when omitted"`
}

func (c *SendCmd) Run(ctx context.Context, logger zerolog.Logger) error {
	payload, err := payloadOrStdin(c.Payload)
	if err != nil {
		return err
	}

	cfg, err := client.LoadConfigFile(c.Config)
	if err != nil {
		return err
	}
	cfg.WithLogger(logger)

	key, err := keys.LoadPEM(c.Key, c.KeyID)
	if err != nil {
		return err
	}
	signer, err := jws.NewRS256Signer(key)
	if err != nil {
		return err
	}

	cl, err := client.NewClient(cfg, nil)
	if err != nil {
		return err
	}
	cl.WithSigner(signer)

	resp, err := cl.Post(ctx, c.Path, c.Token, payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	logger.Info().Str("status", resp.Status).Int("response_bytes", len(body)).Msg("response received")
	fmt.Println(string(body))
	return nil
}

func payloadOrStdin(payload string) (string, error) {
	if payload != "" {
		return payload, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read payload from stdin: %w", err)
	}
	return string(data), nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var cli CLI
	cliCtx := kong.Parse(&cli,
		kong.Name("polishapi-jws"),
		kong.Description("Detached JWS signing utilities for PolishAPI requests."),
		kong.UsageOnError(),
	)

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if cli.Verbose {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	cliCtx.BindTo(ctx, (*context.Context)(nil))
	cliCtx.Bind(logger)

	if err := cliCtx.Run(); err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

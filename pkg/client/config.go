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
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	polishapi "github.com/polishapi-project/polishapi-go"
)

// DefaultTimeout bounds each HTTP request when the caller does not bring
// an http.Client of their own.
const DefaultTimeout = 30 * time.Second

// Config carries the client settings shared by every request.
type Config struct {
	// BaseURL is the ASPSP gateway root, e.g. https://api.bank.example.com.
	BaseURL string

	// ClientID and ClientSecret identify the TPP towards the gateway.
	ClientID     string
	ClientSecret string

	// Timeout bounds each request when no custom http.Client is supplied.
	Timeout time.Duration

	// UserAgent is sent on every request.
	UserAgent string

	// Logger receives debug-level request logs. Defaults to a no-op
	// logger; key material is never logged at any level.
	Logger zerolog.Logger
}

// NewConfig creates a configuration for the given gateway base URL.
func NewConfig(baseURL string) (*Config, error) {
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("%w: invalid base URL: %v", ErrConfig, err)
	}

	return &Config{
		BaseURL:   baseURL,
		Timeout:   DefaultTimeout,
		UserAgent: "polishapi-go/" + polishapi.Version,
		Logger:    zerolog.Nop(),
	}, nil
}

// WithClientID sets the TPP client id.
func (c *Config) WithClientID(clientID string) *Config {
	c.ClientID = clientID
	return c
}

// WithClientSecret sets the TPP client secret.
func (c *Config) WithClientSecret(clientSecret string) *Config {
	c.ClientSecret = clientSecret
	return c
}

// WithTimeout sets the per-request timeout.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// WithUserAgent overrides the default user agent.
func (c *Config) WithUserAgent(userAgent string) *Config {
	c.UserAgent = userAgent
	return c
}

// WithLogger sets the logger used for request logging.
func (c *Config) WithLogger(logger zerolog.Logger) *Config {
	c.Logger = logger
	return c
}

// fileConfig is the YAML shape read by LoadConfigFile.
type fileConfig struct {
	BaseURL        string `yaml:"base_url"`
	ClientID       string `yaml:"client_id"`
	ClientSecret   string `yaml:"client_secret"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	UserAgent      string `yaml:"user_agent"`
}

// LoadConfigFile reads a YAML client configuration:
//
//	base_url: https://api.bank.example.com
//	client_id: my-tpp
//	client_secret: s3cret
//	timeout_seconds: 30
//	user_agent: my-app/1.0
//
// Omitted fields keep the NewConfig defaults.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config file: %v", ErrConfig, err)
	}

	cfg, err := NewConfig(fc.BaseURL)
	if err != nil {
		return nil, err
	}
	cfg.ClientID = fc.ClientID
	cfg.ClientSecret = fc.ClientSecret
	if fc.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(fc.TimeoutSeconds) * time.Second
	}
	if fc.UserAgent != "" {
		cfg.UserAgent = fc.UserAgent
	}

	return cfg, nil
}

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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig("https://api.bank.example.com/v3_0.1/")
	require.NoError(t, err)

	assert.Equal(t, "https://api.bank.example.com/v3_0.1/", cfg.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Contains(t, cfg.UserAgent, "polishapi-go/")
	assert.Empty(t, cfg.ClientID)
	assert.Empty(t, cfg.ClientSecret)
}

func TestNewConfig_InvalidBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
	}{
		{"empty", ""},
		{"relative path", "v3_0.1/accounts"},
		{"spaces", "not a url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewConfig(tt.baseURL)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, ErrConfig)
		})
	}
}

func TestConfig_Chaining(t *testing.T) {
	cfg, err := NewConfig("https://api.bank.example.com/")
	require.NoError(t, err)

	cfg.WithClientID("tpp-1").
		WithClientSecret("s3cret").
		WithTimeout(5 * time.Second).
		WithUserAgent("my-app/2.0")

	assert.Equal(t, "tpp-1", cfg.ClientID)
	assert.Equal(t, "s3cret", cfg.ClientSecret)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "my-app/2.0", cfg.UserAgent)
}

func TestLoadConfigFile(t *testing.T) {
	content := `base_url: https://api.bank.example.com/v3_0.1/
client_id: my-tpp
client_secret: s3cret
timeout_seconds: 10
user_agent: my-app/1.0
`
	path := filepath.Join(t.TempDir(), "polishapi.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.bank.example.com/v3_0.1/", cfg.BaseURL)
	assert.Equal(t, "my-tpp", cfg.ClientID)
	assert.Equal(t, "s3cret", cfg.ClientSecret)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "my-app/1.0", cfg.UserAgent)
}

func TestLoadConfigFile_DefaultsForOmittedFields(t *testing.T) {
	content := "base_url: https://api.bank.example.com/\n"
	path := filepath.Join(t.TempDir(), "polishapi.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Contains(t, cfg.UserAgent, "polishapi-go/")
}

func TestLoadConfigFile_MissingFile(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigFile_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "polishapi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: [unclosed"), 0o600))

	_, err := LoadConfigFile(path)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestLoadConfigFile_MissingBaseURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "polishapi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("client_id: my-tpp\n"), 0o600))

	_, err := LoadConfigFile(path)
	assert.ErrorIs(t, err, ErrConfig)
}

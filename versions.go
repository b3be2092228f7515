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

// Package polishapi provides version information for polishapi-go and the
// PolishAPI specification it targets.
package polishapi

const (
	// Version is the current version of polishapi-go
	Version = "0.1.0"

	// PolishAPIVersion is the PolishAPI specification version this library targets.
	// Endpoint paths are versioned accordingly, e.g. /v3_0.1/auth/v3_0.1/token.
	PolishAPIVersion = "3.0.1"

	// MinPolishAPIVersion is the minimum PolishAPI version compatible with this library
	MinPolishAPIVersion = "3.0"

	// JWSAlgorithm is the signature algorithm mandated for X-JWS-SIGNATURE
	JWSAlgorithm = "RS256"
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	LibraryVersion      string
	PolishAPIVersion    string
	MinPolishAPIVersion string
	JWSAlgorithm        string
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		LibraryVersion:      Version,
		PolishAPIVersion:    PolishAPIVersion,
		MinPolishAPIVersion: MinPolishAPIVersion,
		JWSAlgorithm:        JWSAlgorithm,
	}
}

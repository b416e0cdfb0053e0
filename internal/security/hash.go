// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package security provides the hashing, encryption and random token
// primitives used for credentials and personal data at rest.
package security

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"
)

// Hash normalizes x (trim, upper case) and returns base64(sha256(x)).
// Used for email lookup and refresh token storage.
func Hash(x string) string {
	sum := sha256.Sum256([]byte(strings.ToUpper(strings.TrimSpace(x))))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// RandomToken returns n random bytes encoded with base64url without padding.
func RandomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return EncodeURL(b), nil
}

func EncodeURL(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// DecodeURL accepts both padded and unpadded base64url input.
func DecodeURL(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
}

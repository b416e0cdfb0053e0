// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/canonical/tenant-identity-service/internal/security"
)

const (
	purposeEmailConfirmation = "email_confirmation"
	purposeSignup            = "signup"
	purposePasswordReset     = "password_reset"
)

var errInvalidToken = errors.New("invalid token")

type purposeClaims struct {
	Purpose string `json:"purpose"`
	Stamp   string `json:"stamp"`
	// TenantID is only set on tokens that act on one tenant
	TenantID string `json:"tid,omitempty"`
	jwt.RegisteredClaims
}

// userTokens signs single purpose tokens bound to a user's security stamp.
// Rotating the stamp invalidates every outstanding token of the user.
type userTokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func (t *userTokens) sign(purpose, userID, tenantID, stamp string) (string, error) {
	now := t.now()

	claims := purposeClaims{
		Purpose:  purpose,
		Stamp:    stamp,
		TenantID: tenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return security.EncodeURL([]byte(raw)), nil
}

// verify returns the stamp the token was bound to. tenantID must match the
// tid claim exactly, empty for tokens not bound to a tenant.
func (t *userTokens) verify(purpose, userID, tenantID, encoded string) (string, error) {
	raw, err := security.DecodeURL(encoded)
	if err != nil {
		return "", errInvalidToken
	}

	claims := new(purposeClaims)
	_, err = jwt.ParseWithClaims(
		string(raw),
		claims,
		func(*jwt.Token) (interface{}, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithSubject(userID),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errInvalidToken, err)
	}

	if claims.Purpose != purpose || claims.Stamp == "" || claims.TenantID != tenantID {
		return "", errInvalidToken
	}

	return claims.Stamp, nil
}

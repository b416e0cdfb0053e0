// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/canonical/tenant-identity-service/internal/types"
)

const (
	MinExpirationMinutes = 1
	MaxExpirationMinutes = 1440
)

var ErrInvalidAccessToken = errors.New("invalid access token")

type IssuerConfig struct {
	Secret            []byte
	Issuer            string
	Audience          string
	ExpirationMinutes int
}

// AccessClaims is the payload of an access token.
type AccessClaims struct {
	Email       string   `json:"email"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	TenantID    string   `json:"tid,omitempty"`
	Roles       []string `json:"role"`
	Permissions []string `json:"permissions"`
	jwt.RegisteredClaims
}

// Issuer mints and verifies HS256 access tokens, it keeps no state.
type Issuer struct {
	secret   []byte
	issuer   string
	audience string
	lifetime time.Duration
	emails   EmailDecrypterInterface
	now      func() time.Time
}

var _ IssuerInterface = (*Issuer)(nil)

func (i *Issuer) Issue(user *types.User, tenantID string, roles, permissions []string) (string, time.Time, error) {
	email, err := i.emails.DecryptEmail(user)
	if err != nil {
		return "", time.Time{}, err
	}

	jti, err := uuid.NewRandom()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate token id: %w", err)
	}

	now := i.now()
	expiresAt := now.Add(i.lifetime)

	if roles == nil {
		roles = []string{}
	}

	if permissions == nil {
		permissions = []string{}
	}

	claims := AccessClaims{
		Email:       email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		TenantID:    tenantID,
		Roles:       roles,
		Permissions: permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ID:        jti.String(),
			Issuer:    i.issuer,
			Audience:  jwt.ClaimStrings{i.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	return signed, expiresAt, nil
}

// Parse verifies signature, issuer, audience and expiry of raw.
func (i *Issuer) Parse(raw string) (*AccessClaims, error) {
	claims := new(AccessClaims)

	_, err := jwt.ParseWithClaims(
		raw,
		claims,
		func(*jwt.Token) (interface{}, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithAudience(i.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAccessToken, err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidAccessToken)
	}

	return claims, nil
}

func NewIssuer(cfg IssuerConfig, emails EmailDecrypterInterface) (*Issuer, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("jwt secret is required")
	}

	if cfg.ExpirationMinutes < MinExpirationMinutes || cfg.ExpirationMinutes > MaxExpirationMinutes {
		return nil, fmt.Errorf("jwt expiration must be between %d and %d minutes, got %d", MinExpirationMinutes, MaxExpirationMinutes, cfg.ExpirationMinutes)
	}

	i := new(Issuer)

	i.secret = cfg.Secret
	i.issuer = cfg.Issuer
	i.audience = cfg.Audience
	i.lifetime = time.Duration(cfg.ExpirationMinutes) * time.Minute
	i.emails = emails
	i.now = time.Now

	return i, nil
}

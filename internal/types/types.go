// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type TenantStatus string

const (
	TenantPending   TenantStatus = "PENDING"
	TenantActive    TenantStatus = "ACTIVE"
	TenantSuspended TenantStatus = "SUSPENDED"
	TenantInactive  TenantStatus = "INACTIVE"
)

func (s TenantStatus) Valid() bool {
	switch s {
	case TenantPending, TenantActive, TenantSuspended, TenantInactive:
		return true
	}

	return false
}

type Tenant struct {
	ID        string       `db:"id"`
	TradeName string       `db:"trade_name"`
	LegalName string       `db:"legal_name"`
	Document  string       `db:"document"`
	Status    TenantStatus `db:"status"`
	Enabled   bool         `db:"enabled"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
}

type User struct {
	ID                 string    `db:"id"`
	EmailEncrypted     string    `db:"email_encrypted"`
	EmailHash          string    `db:"email_hash"`
	FirstName          string    `db:"first_name"`
	LastName           string    `db:"last_name"`
	FullName           string    `db:"full_name"`
	NormalizedFullName string    `db:"normalized_full_name"`
	PasswordHash       string    `db:"password_hash"`
	SecurityStamp      string    `db:"security_stamp"`
	Enabled            bool      `db:"enabled"`
	EmailConfirmed     bool      `db:"email_confirmed"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`

	// Memberships is only populated by lookups that eager load them
	Memberships []*Membership `db:"-"`
}

// MemberOf returns the enabled membership of the user in tenantID, if any.
func (u *User) MemberOf(tenantID string) *Membership {
	for _, m := range u.Memberships {
		if m.TenantID == tenantID && m.Enabled {
			return m
		}
	}

	return nil
}

type Membership struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	TenantID  string    `db:"tenant_id"`
	RoleID    string    `db:"role_id"`
	Role      Role      `db:"-"`
	Enabled   bool      `db:"enabled"`
	CreatedAt time.Time `db:"created_at"`
}

type RoleRecord struct {
	ID          string   `db:"id"`
	Name        Role     `db:"name"`
	Permissions []string `db:"-"`
}

type RefreshToken struct {
	ID        string     `db:"id"`
	UserID    string     `db:"user_id"`
	TenantID  string     `db:"tenant_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
	CreatedAt time.Time  `db:"created_at"`
}

// IsActive is true when the token was never revoked and has not expired at now.
func (r *RefreshToken) IsActive(now time.Time) bool {
	return r.RevokedAt == nil && now.Before(r.ExpiresAt)
}

type Invitation struct {
	ID         string     `db:"id"`
	TenantID   string     `db:"tenant_id"`
	UserID     string     `db:"user_id"`
	RoleID     string     `db:"role_id"`
	Role       Role       `db:"role"`
	Enabled    bool       `db:"enabled"`
	AcceptedAt *time.Time `db:"accepted_at"`
	CreatedAt  time.Time  `db:"created_at"`
}

type OutboxStatus string

const (
	OutboxPending OutboxStatus = "PENDING"
	OutboxLeased  OutboxStatus = "LEASED"
	OutboxSent    OutboxStatus = "SENT"
	OutboxDead    OutboxStatus = "DEAD"
)

type OutboxMessage struct {
	ID             string       `db:"id"`
	Kind           string       `db:"kind"`
	Recipient      string       `db:"recipient"`
	Subject        string       `db:"subject"`
	Payload        []byte       `db:"payload"`
	DedupeKey      string       `db:"dedupe_key"`
	Status         OutboxStatus `db:"status"`
	AttemptCount   int          `db:"attempt_count"`
	NextAttemptAt  time.Time    `db:"next_attempt_at"`
	LeaseOwner     string       `db:"lease_owner"`
	LeaseExpiresAt *time.Time   `db:"lease_expires_at"`
	LastError      string       `db:"last_error"`
	ProcessedAt    *time.Time   `db:"processed_at"`
	CreatedAt      time.Time    `db:"created_at"`
}

// SessionGrant is what an access token is minted from: the tenant the
// session is bound to and the caller's roles and permissions in it.
type SessionGrant struct {
	TenantID    string   `json:"tenantId,omitempty"`
	Roles       []string `json:"roles"`
	Permissions []string `json:"permissions"`
}

type TokenPair struct {
	AccessToken           string    `json:"accessToken"`
	AccessTokenExpiresAt  time.Time `json:"accessTokenExpiresAt"`
	RefreshToken          string    `json:"refreshToken"`
	RefreshTokenExpiresAt time.Time `json:"refreshTokenExpiresAt"`
}

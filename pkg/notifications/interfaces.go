// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"
	"time"

	"github.com/canonical/tenant-identity-service/internal/mail"
	"github.com/canonical/tenant-identity-service/internal/types"
)

type NotifierInterface interface {
	SignupConfirmation(ctx context.Context, r Recipient, tenantName, tenantID, token string) error
	EmailConfirmation(ctx context.Context, r Recipient, token string) error
	Invitation(ctx context.Context, r Recipient, tenantName, tenantID, token string) error
	MemberAdded(ctx context.Context, r Recipient, tenantName, tenantID string) error
	PasswordReset(ctx context.Context, r Recipient, token string) error
}

type OutboxStorageInterface interface {
	EnqueueOutboxMessage(ctx context.Context, m *types.OutboxMessage) error
}

type WorkerStorageInterface interface {
	LeaseOutboxMessages(ctx context.Context, owner string, now time.Time, leaseTTL time.Duration, limit uint64) ([]*types.OutboxMessage, error)
	MarkOutboxSent(ctx context.Context, id, owner string, now time.Time) error
	MarkOutboxRetry(ctx context.Context, id, owner string, nextAttemptAt time.Time, lastError string) error
	MarkOutboxDead(ctx context.Context, id, owner string, now time.Time, lastError string) error
}

type SenderInterface interface {
	Send(ctx context.Context, msg mail.Message) (string, error)
}

type CipherInterface interface {
	Encrypt(string) (string, error)
	Decrypt(string) (string, error)
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/tenant-identity-service/internal/types"
)

// EnqueueOutboxMessage is a no-op when a message with the same dedupe key exists.
func (s *Storage) EnqueueOutboxMessage(ctx context.Context, m *types.OutboxMessage) error {
	ctx, span := s.tracer.Start(ctx, "storage.EnqueueOutboxMessage")
	defer span.End()

	id, err := newID()
	if err != nil {
		return err
	}

	nextAttempt := m.NextAttemptAt
	if nextAttempt.IsZero() {
		nextAttempt = time.Now().UTC()
	}

	_, err = s.db.Statement(ctx).
		Insert(OutboxMessages.Table).
		Columns("id", "kind", "recipient", "subject", "payload", "dedupe_key", "status", "attempt_count", "next_attempt_at").
		Values(id, m.Kind, m.Recipient, m.Subject, m.Payload, m.DedupeKey, string(types.OutboxPending), 0, nextAttempt).
		Suffix("ON CONFLICT (dedupe_key) DO NOTHING").
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to enqueue outbox message: %w", err)
	}

	return nil
}

// LeaseOutboxMessages claims up to limit due messages for owner. Pending
// messages past next_attempt_at and leases that expired are both eligible,
// concurrent workers skip rows locked by each other. Every lease counts as
// an attempt, the returned attempt_count includes the one being made.
func (s *Storage) LeaseOutboxMessages(ctx context.Context, owner string, now time.Time, leaseTTL time.Duration, limit uint64) ([]*types.OutboxMessage, error) {
	ctx, span := s.tracer.Start(ctx, "storage.LeaseOutboxMessages")
	defer span.End()

	due := sq.Select("id").
		From(OutboxMessages.Table).
		Where(sq.Or{
			sq.And{sq.Eq{"status": string(types.OutboxPending)}, sq.LtOrEq{"next_attempt_at": now}},
			sq.And{sq.Eq{"status": string(types.OutboxLeased)}, sq.Lt{"lease_expires_at": now}},
		}).
		OrderBy("next_attempt_at").
		Limit(limit).
		Suffix("FOR UPDATE SKIP LOCKED")

	rows, err := s.db.Statement(ctx).
		Update(OutboxMessages.Table).
		Set("status", string(types.OutboxLeased)).
		Set("attempt_count", sq.Expr("attempt_count + 1")).
		Set("lease_owner", owner).
		Set("lease_expires_at", now.Add(leaseTTL)).
		Where(sq.Expr("id IN (?)", due)).
		Suffix("RETURNING id, kind, recipient, subject, payload, dedupe_key, status, attempt_count, next_attempt_at, lease_owner, lease_expires_at, created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to lease outbox messages: %w", err)
	}
	defer rows.Close()

	messages := make([]*types.OutboxMessage, 0)
	for rows.Next() {
		var (
			m          types.OutboxMessage
			leaseOwner sql.NullString
			leaseExp   sql.NullTime
		)

		if err := rows.Scan(&m.ID, &m.Kind, &m.Recipient, &m.Subject, &m.Payload, &m.DedupeKey, &m.Status, &m.AttemptCount, &m.NextAttemptAt, &leaseOwner, &leaseExp, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan outbox message: %w", err)
		}

		m.LeaseOwner = leaseOwner.String
		if leaseExp.Valid {
			m.LeaseExpiresAt = &leaseExp.Time
		}

		messages = append(messages, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return messages, nil
}

func (s *Storage) ackOutbox(ctx context.Context, id, owner string, set map[string]interface{}) error {
	result, err := s.db.Statement(ctx).
		Update(OutboxMessages.Table).
		SetMap(set).
		Where(sq.Eq{"id": id, "lease_owner": owner, "status": string(types.OutboxLeased)}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update outbox message: %w", err)
	}

	return expectAffected(result)
}

func (s *Storage) MarkOutboxSent(ctx context.Context, id, owner string, now time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkOutboxSent")
	defer span.End()

	return s.ackOutbox(ctx, id, owner, map[string]interface{}{
		"status":           string(types.OutboxSent),
		"processed_at":     now,
		"lease_owner":      nil,
		"lease_expires_at": nil,
	})
}

func (s *Storage) MarkOutboxRetry(ctx context.Context, id, owner string, nextAttemptAt time.Time, lastError string) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkOutboxRetry")
	defer span.End()

	return s.ackOutbox(ctx, id, owner, map[string]interface{}{
		"status":           string(types.OutboxPending),
		"next_attempt_at":  nextAttemptAt,
		"last_error":       lastError,
		"lease_owner":      nil,
		"lease_expires_at": nil,
	})
}

func (s *Storage) MarkOutboxDead(ctx context.Context, id, owner string, now time.Time, lastError string) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkOutboxDead")
	defer span.End()

	return s.ackOutbox(ctx, id, owner, map[string]interface{}{
		"status":           string(types.OutboxDead),
		"last_error":       lastError,
		"processed_at":     now,
		"lease_owner":      nil,
		"lease_expires_at": nil,
	})
}

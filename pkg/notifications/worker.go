// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/canonical/tenant-identity-service/internal/logging"
	"github.com/canonical/tenant-identity-service/internal/mail"
	"github.com/canonical/tenant-identity-service/internal/monitoring"
	"github.com/canonical/tenant-identity-service/internal/storage"
	"github.com/canonical/tenant-identity-service/internal/tracing"
	"github.com/canonical/tenant-identity-service/internal/types"
)

const (
	outcomeSent  = "sent"
	outcomeRetry = "retry"
	outcomeDead  = "dead"

	maxErrorLength = 1024
)

type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    uint64
	LeaseTTL     time.Duration
	MaxAttempts  int
	// RetryBaseDelay and RetryMaxDelay bound the delay between attempts.
	RetryBaseDelay time.Duration
	RetryMaxDelay  time.Duration
}

// Worker delivers outbox messages at least once. The outbox id is sent as
// idempotency key so the provider drops redeliveries.
type Worker struct {
	storage WorkerStorageInterface
	sender  SenderInterface
	cipher  CipherInterface
	cfg     WorkerConfig
	owner   string
	now     func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Run polls until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	w.logger.Infof("outbox worker %s started", w.owner)

	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	for {
		n, err := w.ProcessBatch(ctx)
		if ctx.Err() != nil {
			w.logger.Infof("outbox worker %s stopped", w.owner)
			return
		}

		if err != nil {
			w.logger.Errorf("outbox batch failed: %v", err)
		}

		// drain without waiting while full batches keep coming
		if err == nil && uint64(n) == w.cfg.BatchSize {
			continue
		}

		select {
		case <-ctx.Done():
			w.logger.Infof("outbox worker %s stopped", w.owner)
			return
		case <-ticker.C:
		}
	}
}

// ProcessBatch leases due messages and tries to deliver each one.
func (w *Worker) ProcessBatch(ctx context.Context) (int, error) {
	ctx, span := w.tracer.Start(ctx, "notifications.Worker.ProcessBatch")
	defer span.End()

	messages, err := w.storage.LeaseOutboxMessages(ctx, w.owner, w.now(), w.cfg.LeaseTTL, w.cfg.BatchSize)
	if err != nil {
		return 0, err
	}

	for _, m := range messages {
		w.process(ctx, m)
	}

	return len(messages), nil
}

func (w *Worker) process(ctx context.Context, m *types.OutboxMessage) {
	ctx, span := w.tracer.Start(ctx, "notifications.Worker.process")
	defer span.End()

	// leases that expired without an ack still count
	if m.AttemptCount > w.cfg.MaxAttempts {
		w.logger.Warnf("outbox message %s is dead after %d unacknowledged attempts", m.ID, m.AttemptCount-1)
		w.ack(ctx, m, outcomeDead, w.storage.MarkOutboxDead(ctx, m.ID, w.owner, w.now(), "lease expired too many times"))
		return
	}

	msg, err := w.open(m)
	if err != nil {
		w.ack(ctx, m, outcomeDead, w.storage.MarkOutboxDead(ctx, m.ID, w.owner, w.now(), truncate(err.Error())))
		return
	}

	_, err = w.sender.Send(ctx, msg)
	if err == nil {
		w.ack(ctx, m, outcomeSent, w.storage.MarkOutboxSent(ctx, m.ID, w.owner, w.now()))
		return
	}

	attempts := m.AttemptCount
	if errors.Is(err, mail.ErrRejected) || attempts >= w.cfg.MaxAttempts {
		w.logger.Warnf("outbox message %s is dead after %d attempts: %v", m.ID, attempts, err)
		w.ack(ctx, m, outcomeDead, w.storage.MarkOutboxDead(ctx, m.ID, w.owner, w.now(), truncate(err.Error())))
		return
	}

	next := w.now().Add(w.RetryDelay(attempts))
	w.logger.Debugf("outbox message %s failed attempt %d, retrying at %s: %v", m.ID, attempts, next.Format(time.RFC3339), err)
	w.ack(ctx, m, outcomeRetry, w.storage.MarkOutboxRetry(ctx, m.ID, w.owner, next, truncate(err.Error())))
}

func (w *Worker) ack(ctx context.Context, m *types.OutboxMessage, outcome string, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		w.logger.Warnf("lease on outbox message %s was lost before ack", m.ID)
		return
	}

	if err != nil {
		w.logger.Errorf("failed to ack outbox message %s: %v", m.ID, err)
		return
	}

	if mErr := w.monitor.SetOutboxMetric(map[string]string{"kind": m.Kind, "outcome": outcome}, 1); mErr != nil {
		w.logger.Debugf("failed to record outbox metric: %v", mErr)
	}
}

func (w *Worker) open(m *types.OutboxMessage) (mail.Message, error) {
	to, err := w.cipher.Decrypt(m.Recipient)
	if err != nil {
		return mail.Message{}, fmt.Errorf("failed to decrypt recipient: %w", err)
	}

	var env sealed
	if err := json.Unmarshal(m.Payload, &env); err != nil {
		return mail.Message{}, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	raw, err := w.cipher.Decrypt(env.Data)
	if err != nil {
		return mail.Message{}, fmt.Errorf("failed to decrypt payload: %w", err)
	}

	var data mail.TemplateData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return mail.Message{}, fmt.Errorf("failed to unmarshal template data: %w", err)
	}

	html, err := mail.Render(mail.Kind(m.Kind), data)
	if err != nil {
		return mail.Message{}, err
	}

	return mail.Message{To: to, Subject: m.Subject, HTML: html, IdempotencyKey: m.ID}, nil
}

// RetryDelay is the capped exponential delay before attempt+1.
func (w *Worker) RetryDelay(attempt int) time.Duration {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = w.cfg.RetryBaseDelay
	b.MaxInterval = w.cfg.RetryMaxDelay
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	b.Reset()

	d := b.InitialInterval
	for i := 0; i < attempt; i++ {
		d = b.NextBackOff()
	}

	return d
}

func truncate(s string) string {
	if len(s) <= maxErrorLength {
		return s
	}

	return s[:maxErrorLength]
}

func NewWorker(s WorkerStorageInterface, sender SenderInterface, cipher CipherInterface, cfg WorkerConfig, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Worker {
	w := new(Worker)

	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 20
	}
	if cfg.LeaseTTL <= 0 {
		cfg.LeaseTTL = 30 * time.Second
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 8
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = 10 * time.Second
	}
	if cfg.RetryMaxDelay <= 0 {
		cfg.RetryMaxDelay = 30 * time.Minute
	}

	w.storage = s
	w.sender = sender
	w.cipher = cipher
	w.cfg = cfg
	w.owner = uuid.NewString()
	w.now = time.Now

	w.tracer = tracer
	w.monitor = monitor
	w.logger = logger

	return w
}

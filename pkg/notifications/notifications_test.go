// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-identity-service/internal/mail"
	"github.com/canonical/tenant-identity-service/internal/security"
	"github.com/canonical/tenant-identity-service/internal/storage"
	"github.com/canonical/tenant-identity-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package notifications -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package notifications -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package notifications -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package notifications -destination ./mock_interfaces.go -source=./interfaces.go

const (
	testKey = "MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY="
	testIV  = "MDEyMzQ1Njc4OWFiY2RlZg=="
)

type fixture struct {
	outbox  *MockOutboxStorageInterface
	leases  *MockWorkerStorageInterface
	sender  *MockSenderInterface
	monitor *MockMonitorInterface
	logger  *MockLoggerInterface

	notifier *Notifier
	worker   *Worker
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	cipher, err := security.NewCipher(testKey, testIV)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mockTracer := NewMockTracingInterface(ctrl)
	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	)

	f := &fixture{
		outbox:  NewMockOutboxStorageInterface(ctrl),
		leases:  NewMockWorkerStorageInterface(ctrl),
		sender:  NewMockSenderInterface(ctrl),
		monitor: NewMockMonitorInterface(ctrl),
		logger:  NewMockLoggerInterface(ctrl),
	}

	f.logger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	f.logger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()

	links := Links{
		BaseURL:           "https://app.example.com/",
		ConfirmSignupPath: "/confirm-signup",
		ConfirmEmailPath:  "/confirm-email",
		AcceptInvitePath:  "/accept-invite",
		ResetPasswordPath: "/reset-password",
	}

	f.notifier = NewNotifier(f.outbox, cipher, links, mockTracer, f.monitor, f.logger)
	f.worker = NewWorker(f.leases, f.sender, cipher, WorkerConfig{
		PollInterval:   10 * time.Millisecond,
		BatchSize:      10,
		LeaseTTL:       time.Minute,
		MaxAttempts:    3,
		RetryBaseDelay: time.Second,
		RetryMaxDelay:  time.Minute,
	}, mockTracer, f.monitor, f.logger)

	return f
}

// queue runs fn against the notifier and returns the stored message.
func (f *fixture) queue(t *testing.T, fn func(n *Notifier) error) *types.OutboxMessage {
	var stored *types.OutboxMessage
	f.outbox.EXPECT().EnqueueOutboxMessage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m *types.OutboxMessage) error {
			stored = m
			return nil
		},
	)

	if err := fn(f.notifier); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored.ID = "0195f1a2-0000-7000-8000-00000000e001"

	return stored
}

var jane = Recipient{UserID: "user-1", Email: "jane@example.com", Name: "Jane"}

func TestNotifierKeepsSecretsEncrypted(t *testing.T) {
	f := newFixture(t)

	m := f.queue(t, func(n *Notifier) error {
		return n.Invitation(context.Background(), jane, "Acme", "tenant-1", "secret-token")
	})

	if m.Kind != string(mail.KindInvitation) || m.Subject == "" {
		t.Fatalf("unexpected message %+v", m)
	}

	if m.Recipient == jane.Email || strings.Contains(string(m.Payload), "secret-token") {
		t.Fatal("recipient and token must not be stored in clear")
	}

	if !strings.HasPrefix(m.DedupeKey, "invitation:user-1:") || strings.Contains(m.DedupeKey, "secret-token") {
		t.Fatalf("unexpected dedupe key %q", m.DedupeKey)
	}
}

func TestNotifierDedupeKeys(t *testing.T) {
	f := newFixture(t)

	first := f.queue(t, func(n *Notifier) error { return n.PasswordReset(context.Background(), jane, "token-a") })
	again := f.queue(t, func(n *Notifier) error { return n.PasswordReset(context.Background(), jane, "token-a") })
	other := f.queue(t, func(n *Notifier) error { return n.PasswordReset(context.Background(), jane, "token-b") })

	if first.DedupeKey != again.DedupeKey {
		t.Fatal("the same token must produce the same dedupe key")
	}

	if first.DedupeKey == other.DedupeKey {
		t.Fatal("different tokens must produce different dedupe keys")
	}
}

func TestWorkerDelivers(t *testing.T) {
	f := newFixture(t)

	m := f.queue(t, func(n *Notifier) error {
		return n.SignupConfirmation(context.Background(), jane, "Acme", "tenant-1", "tok")
	})

	f.leases.EXPECT().LeaseOutboxMessages(gomock.Any(), f.worker.owner, gomock.Any(), time.Minute, uint64(10)).Return([]*types.OutboxMessage{m}, nil)
	f.sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg mail.Message) (string, error) {
			if msg.To != jane.Email || msg.IdempotencyKey != m.ID || msg.Subject != m.Subject {
				t.Errorf("unexpected message %+v", msg)
			}
			if !strings.Contains(msg.HTML, "https://app.example.com/confirm-signup?tenantId=tenant-1&amp;token=tok&amp;userId=user-1") {
				t.Errorf("missing confirmation link in %s", msg.HTML)
			}
			return "msg_1", nil
		},
	)
	f.leases.EXPECT().MarkOutboxSent(gomock.Any(), m.ID, f.worker.owner, gomock.Any()).Return(nil)
	f.monitor.EXPECT().SetOutboxMetric(map[string]string{"kind": "signup_confirmation", "outcome": "sent"}, float64(1)).Return(nil)

	n, err := f.worker.ProcessBatch(context.Background())
	if err != nil || n != 1 {
		t.Fatalf("expected one processed message, got %d %v", n, err)
	}
}

func TestWorkerFailures(t *testing.T) {
	tests := []struct {
		name     string
		attempts int
		corrupt  bool
		unsent   bool
		sendErr  error
		setup    func(f *fixture, m *types.OutboxMessage)
	}{
		{
			name:     "transient failure is retried",
			attempts: 1,
			sendErr:  errors.New("502"),
			setup: func(f *fixture, m *types.OutboxMessage) {
				f.leases.EXPECT().MarkOutboxRetry(gomock.Any(), m.ID, f.worker.owner, gomock.Any(), "502").DoAndReturn(
					func(_ context.Context, _, _ string, next time.Time, _ string) error {
						if d := time.Until(next); d <= 0 || d > 2*time.Second {
							t.Errorf("unexpected retry time %v", next)
						}
						return nil
					},
				)
				f.monitor.EXPECT().SetOutboxMetric(map[string]string{"kind": "password_reset", "outcome": "retry"}, float64(1)).Return(nil)
			},
		},
		{
			name:     "last attempt goes dead",
			attempts: 3,
			sendErr:  errors.New("502"),
			setup: func(f *fixture, m *types.OutboxMessage) {
				f.logger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
				f.leases.EXPECT().MarkOutboxDead(gomock.Any(), m.ID, f.worker.owner, gomock.Any(), "502").Return(nil)
				f.monitor.EXPECT().SetOutboxMetric(map[string]string{"kind": "password_reset", "outcome": "dead"}, float64(1)).Return(nil)
			},
		},
		{
			name:     "rejected by provider goes dead",
			attempts: 1,
			sendErr:  mail.ErrRejected,
			setup: func(f *fixture, m *types.OutboxMessage) {
				f.logger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
				f.leases.EXPECT().MarkOutboxDead(gomock.Any(), m.ID, f.worker.owner, gomock.Any(), gomock.Any()).Return(nil)
				f.monitor.EXPECT().SetOutboxMetric(gomock.Any(), float64(1)).Return(nil)
			},
		},
		{
			name:     "expired leases exhaust the attempts without sending",
			attempts: 4,
			unsent:   true,
			setup: func(f *fixture, m *types.OutboxMessage) {
				f.logger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
				f.leases.EXPECT().MarkOutboxDead(gomock.Any(), m.ID, f.worker.owner, gomock.Any(), "lease expired too many times").Return(nil)
				f.monitor.EXPECT().SetOutboxMetric(map[string]string{"kind": "password_reset", "outcome": "dead"}, float64(1)).Return(nil)
			},
		},
		{
			name:     "undecodable payload goes dead without sending",
			attempts: 1,
			corrupt:  true,
			unsent:   true,
			setup: func(f *fixture, m *types.OutboxMessage) {
				f.leases.EXPECT().MarkOutboxDead(gomock.Any(), m.ID, f.worker.owner, gomock.Any(), gomock.Any()).Return(nil)
				f.monitor.EXPECT().SetOutboxMetric(gomock.Any(), float64(1)).Return(nil)
			},
		},
		{
			name:     "lost lease is only logged",
			attempts: 1,
			sendErr:  nil,
			setup: func(f *fixture, m *types.OutboxMessage) {
				f.logger.EXPECT().Warnf(gomock.Any(), gomock.Any())
				f.leases.EXPECT().MarkOutboxSent(gomock.Any(), m.ID, f.worker.owner, gomock.Any()).Return(storage.ErrNotFound)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFixture(t)

			m := f.queue(t, func(n *Notifier) error { return n.PasswordReset(context.Background(), jane, "tok") })
			m.AttemptCount = test.attempts
			if test.corrupt {
				m.Payload = []byte(`{"data":"garbage"}`)
			}
			if !test.unsent {
				f.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", test.sendErr)
			}

			f.leases.EXPECT().LeaseOutboxMessages(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]*types.OutboxMessage{m}, nil)
			test.setup(f, m)

			if _, err := f.worker.ProcessBatch(context.Background()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestWorkerRetryDelay(t *testing.T) {
	f := newFixture(t)

	if d := f.worker.RetryDelay(1); d != time.Second {
		t.Fatalf("expected base delay, got %v", d)
	}

	if f.worker.RetryDelay(3) <= f.worker.RetryDelay(2) {
		t.Fatal("expected growing delays")
	}

	if d := f.worker.RetryDelay(50); d != time.Minute {
		t.Fatalf("expected capped delay, got %v", d)
	}
}

func TestWorkerRunStopsOnCancel(t *testing.T) {
	f := newFixture(t)

	ctx, cancel := context.WithCancel(context.Background())

	f.leases.EXPECT().LeaseOutboxMessages(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).MinTimes(1).DoAndReturn(
		func(context.Context, string, time.Time, time.Duration, uint64) ([]*types.OutboxMessage, error) {
			cancel()
			return []*types.OutboxMessage{}, nil
		},
	)

	done := make(chan struct{})
	go func() {
		f.worker.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop")
	}
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package notifications queues transactional email in the outbox table and
// delivers it in the background.
package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/canonical/tenant-identity-service/internal/logging"
	"github.com/canonical/tenant-identity-service/internal/mail"
	"github.com/canonical/tenant-identity-service/internal/monitoring"
	"github.com/canonical/tenant-identity-service/internal/security"
	"github.com/canonical/tenant-identity-service/internal/tracing"
	"github.com/canonical/tenant-identity-service/internal/types"
)

type Links struct {
	BaseURL           string
	ConfirmSignupPath string
	ConfirmEmailPath  string
	AcceptInvitePath  string
	ResetPasswordPath string
}

type Recipient struct {
	UserID string
	Email  string
	Name   string
}

// sealed is the stored payload, recipient data and links carry tokens and
// are only kept encrypted.
type sealed struct {
	Data string `json:"data"`
}

type Notifier struct {
	storage OutboxStorageInterface
	cipher  CipherInterface
	links   Links

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ NotifierInterface = (*Notifier)(nil)

func (n *Notifier) link(path string, query map[string]string) string {
	values := url.Values{}
	for k, v := range query {
		values.Set(k, v)
	}

	return strings.TrimRight(n.links.BaseURL, "/") + "/" + strings.TrimLeft(path, "/") + "?" + values.Encode()
}

func (n *Notifier) enqueue(ctx context.Context, kind mail.Kind, r Recipient, dedupeKey string, data mail.TemplateData) error {
	subject, err := mail.Subject(kind)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	encData, err := n.cipher.Encrypt(string(raw))
	if err != nil {
		return fmt.Errorf("failed to encrypt email payload: %w", err)
	}

	encRecipient, err := n.cipher.Encrypt(r.Email)
	if err != nil {
		return fmt.Errorf("failed to encrypt recipient: %w", err)
	}

	payload, err := json.Marshal(sealed{Data: encData})
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	err = n.storage.EnqueueOutboxMessage(ctx, &types.OutboxMessage{
		Kind:      string(kind),
		Recipient: encRecipient,
		Subject:   subject,
		Payload:   payload,
		DedupeKey: dedupeKey,
	})
	if err != nil {
		return err
	}

	n.logger.Debugf("queued %s email for user %s", kind, r.UserID)

	return nil
}

func tokenKey(kind mail.Kind, userID, token string) string {
	return fmt.Sprintf("%s:%s:%s", kind, userID, security.Hash(token))
}

func (n *Notifier) SignupConfirmation(ctx context.Context, r Recipient, tenantName, tenantID, token string) error {
	ctx, span := n.tracer.Start(ctx, "notifications.Notifier.SignupConfirmation")
	defer span.End()

	return n.enqueue(ctx, mail.KindSignupConfirmation, r, tokenKey(mail.KindSignupConfirmation, r.UserID, token), mail.TemplateData{
		Name:       r.Name,
		TenantName: tenantName,
		Link:       n.link(n.links.ConfirmSignupPath, map[string]string{"userId": r.UserID, "tenantId": tenantID, "token": token}),
	})
}

func (n *Notifier) EmailConfirmation(ctx context.Context, r Recipient, token string) error {
	ctx, span := n.tracer.Start(ctx, "notifications.Notifier.EmailConfirmation")
	defer span.End()

	return n.enqueue(ctx, mail.KindEmailConfirmation, r, tokenKey(mail.KindEmailConfirmation, r.UserID, token), mail.TemplateData{
		Name: r.Name,
		Link: n.link(n.links.ConfirmEmailPath, map[string]string{"userId": r.UserID, "token": token}),
	})
}

func (n *Notifier) Invitation(ctx context.Context, r Recipient, tenantName, tenantID, token string) error {
	ctx, span := n.tracer.Start(ctx, "notifications.Notifier.Invitation")
	defer span.End()

	return n.enqueue(ctx, mail.KindInvitation, r, tokenKey(mail.KindInvitation, r.UserID, token), mail.TemplateData{
		Name:       r.Name,
		TenantName: tenantName,
		Link:       n.link(n.links.AcceptInvitePath, map[string]string{"userId": r.UserID, "tenantId": tenantID, "token": token}),
	})
}

func (n *Notifier) MemberAdded(ctx context.Context, r Recipient, tenantName, tenantID string) error {
	ctx, span := n.tracer.Start(ctx, "notifications.Notifier.MemberAdded")
	defer span.End()

	return n.enqueue(ctx, mail.KindMemberAdded, r, fmt.Sprintf("%s:%s:%s", mail.KindMemberAdded, r.UserID, tenantID), mail.TemplateData{
		Name:       r.Name,
		TenantName: tenantName,
	})
}

func (n *Notifier) PasswordReset(ctx context.Context, r Recipient, token string) error {
	ctx, span := n.tracer.Start(ctx, "notifications.Notifier.PasswordReset")
	defer span.End()

	return n.enqueue(ctx, mail.KindPasswordReset, r, tokenKey(mail.KindPasswordReset, r.UserID, token), mail.TemplateData{
		Name: r.Name,
		Link: n.link(n.links.ResetPasswordPath, map[string]string{"userId": r.UserID, "token": token}),
	})
}

func NewNotifier(s OutboxStorageInterface, cipher CipherInterface, links Links, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Notifier {
	n := new(Notifier)

	n.storage = s
	n.cipher = cipher
	n.links = links

	n.tracer = tracer
	n.monitor = monitor
	n.logger = logger

	return n
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package mail delivers transactional email through the Resend REST API.
package mail

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/canonical/tenant-identity-service/internal/logging"
	"github.com/canonical/tenant-identity-service/internal/monitoring"
	"github.com/canonical/tenant-identity-service/internal/tracing"
)

const (
	DefaultBaseURL = "https://api.resend.com"
	requestTimeout = 15 * time.Second
)

// ErrRejected marks provider answers that will not succeed on retry.
var ErrRejected = errors.New("email rejected by provider")

type Config struct {
	BaseURL string
	APIKey  string
	From    string
}

type Message struct {
	To      string
	Subject string
	HTML    string
	// IdempotencyKey lets the provider drop duplicates of a redelivered message.
	IdempotencyKey string
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

type Client struct {
	http *resty.Client
	from string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ SenderInterface = (*Client)(nil)

func (c *Client) Send(ctx context.Context, msg Message) (string, error) {
	ctx, span := c.tracer.Start(ctx, "mail.Client.Send")
	defer span.End()

	var (
		result  sendResponse
		failure errorResponse
	)

	req := c.http.R().
		SetContext(ctx).
		SetBody(sendRequest{From: c.from, To: []string{msg.To}, Subject: msg.Subject, HTML: msg.HTML}).
		SetResult(&result).
		SetError(&failure)

	if msg.IdempotencyKey != "" {
		req.SetHeader("Idempotency-Key", msg.IdempotencyKey)
	}

	resp, err := req.Post("/emails")
	if err != nil {
		c.setAvailability(0)
		return "", fmt.Errorf("failed to call email provider: %w", err)
	}

	c.setAvailability(1)

	switch status := resp.StatusCode(); {
	case status < 300:
		return result.ID, nil
	case status == http.StatusTooManyRequests || status >= 500:
		return "", fmt.Errorf("email provider returned %d: %s", status, failure.Message)
	default:
		return "", fmt.Errorf("%w: status %d %s: %s", ErrRejected, status, failure.Name, failure.Message)
	}
}

func (c *Client) setAvailability(v float64) {
	if err := c.monitor.SetDependencyAvailability(map[string]string{"component": "email"}, v); err != nil {
		c.logger.Debugf("failed to record email provider availability: %v", err)
	}
}

func NewClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	c := new(Client)

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c.http = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	c.from = cfg.From

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}

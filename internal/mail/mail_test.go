// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/tenant-identity-service/internal/logging"
	"github.com/canonical/tenant-identity-service/internal/monitoring"
	"github.com/canonical/tenant-identity-service/internal/tracing"
)

func newTestClient(url string) *Client {
	logger := logging.NewNoopLogger()

	return NewClient(
		Config{BaseURL: url, APIKey: "re_test", From: "no-reply@example.com"},
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("test", logger),
		logger,
	)
}

func TestClientSend(t *testing.T) {
	var got sendRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		assert.Equal(t, "outbox-1", r.Header.Get("Idempotency-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_123"}`))
	}))
	defer srv.Close()

	id, err := newTestClient(srv.URL).Send(context.Background(), Message{
		To:             "jane@example.com",
		Subject:        "Hello",
		HTML:           "<p>hi</p>",
		IdempotencyKey: "outbox-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "msg_123", id)
	assert.Equal(t, "no-reply@example.com", got.From)
	assert.Equal(t, []string{"jane@example.com"}, got.To)
	assert.Equal(t, "Hello", got.Subject)
}

func TestClientSendFailures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		rejected bool
	}{
		{name: "validation error is permanent", status: http.StatusUnprocessableEntity, rejected: true},
		{name: "bad api key is permanent", status: http.StatusUnauthorized, rejected: true},
		{name: "rate limited is transient", status: http.StatusTooManyRequests, rejected: false},
		{name: "server error is transient", status: http.StatusBadGateway, rejected: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(test.status)
				_, _ = w.Write([]byte(`{"name":"error","message":"nope"}`))
			}))
			defer srv.Close()

			_, err := newTestClient(srv.URL).Send(context.Background(), Message{To: "jane@example.com"})

			require.Error(t, err)
			assert.Equal(t, test.rejected, errors.Is(err, ErrRejected))
		})
	}
}

func TestClientSendUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestClient(url).Send(context.Background(), Message{To: "jane@example.com"})

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrRejected))
}

func TestRender(t *testing.T) {
	for kind := range templates {
		t.Run(string(kind), func(t *testing.T) {
			body, err := Render(kind, TemplateData{Name: "<b>Jane</b>", TenantName: "Acme", Link: "https://app.example.com/x?token=abc"})
			require.NoError(t, err)

			assert.Contains(t, body, "Hi &lt;b&gt;Jane&lt;/b&gt;")
			assert.False(t, strings.Contains(body, "<b>Jane</b>"))

			subject, err := Subject(kind)
			require.NoError(t, err)
			assert.NotEmpty(t, subject)
		})
	}

	_, err := Render(Kind("unknown"), TemplateData{})
	assert.Error(t, err)
}

func TestRenderLink(t *testing.T) {
	body, err := Render(KindInvitation, TemplateData{Name: "Jane", TenantName: "Acme", Link: "https://app.example.com/accept?userId=1&token=abc"})
	require.NoError(t, err)

	assert.Contains(t, body, `href="https://app.example.com/accept?userId=1&amp;token=abc"`)
	assert.Contains(t, body, "Acme")
}

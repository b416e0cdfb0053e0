// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNoopTracerStartsNonRecordingSpan(t *testing.T) {
	tracer := NewNoopTracer()

	ctx, span := tracer.Start(context.Background(), "tracing.TestNoop")
	defer span.End()

	if ctx == nil {
		t.Fatalf("expected a context")
	}

	if span.IsRecording() {
		t.Fatalf("noop span should not be recording")
	}
}

func TestMiddlewareSkipsMetricsScrape(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{path: "/api/v0/metrics", expected: false},
		{path: "/api/v1/tenant/signup", expected: true},
		{path: "/api/v1/auth/login", expected: true},
	}

	for _, test := range tests {
		t.Run(test.path, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, test.path, nil)

			if traced(r) != test.expected {
				t.Fatalf("expected traced=%v for %s", test.expected, test.path)
			}
		})
	}
}

func TestMiddlewareSpanName(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/tenant/invite", nil)

	if name := spanName("server", r); name != "POST /api/v1/tenant/invite" {
		t.Fatalf("unexpected span name %s", name)
	}
}

func TestMiddlewareServesRequests(t *testing.T) {
	h := NewMiddleware(nil, nil).OpenTelemetry(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusTeapot {
		t.Fatalf("expected the wrapped handler status, got %d", w.Code)
	}
}

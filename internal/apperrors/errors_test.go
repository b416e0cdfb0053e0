// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name     string
		err      error
		expected Kind
		domain   bool
	}{
		{name: "validation", err: Validation("tenant %s exists", "acme"), expected: KindValidation, domain: true},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", NotFound("user")), expected: KindNotFound, domain: true},
		{name: "unauthorized", err: Unauthorized("invalid token"), expected: KindUnauthorized, domain: true},
		{name: "plain error", err: cause, expected: KindInternal, domain: false},
		{name: "wrapped infrastructure", err: Wrap(KindInternal, cause, "db"), expected: KindInternal, domain: false},
		{name: "service unavailable", err: ServiceUnavailable(cause, "redis"), expected: KindServiceUnavailable, domain: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if k := KindOf(test.err); k != test.expected {
				t.Fatalf("expected kind %s got %s", test.expected, k)
			}

			if d := IsDomain(test.err); d != test.domain {
				t.Fatalf("expected domain %v got %v", test.domain, d)
			}
		})
	}
}

func TestValidationReasonsMessage(t *testing.T) {
	err := ValidationReasons("password policy", "too short", "blank")

	if err.Error() != "password policy: too short; blank" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := ServiceUnavailable(cause, "cache unavailable")

	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be reachable")
	}
}

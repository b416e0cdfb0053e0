// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package tenancy resolves the tenant a request acts on and threads it
// through the request context.
package tenancy

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// HeaderName carries an explicit tenant selection.
const HeaderName = "X-Tenant-Id"

// ClaimFunc extracts the tenant claim of the authenticated caller, if any.
type ClaimFunc func(context.Context) (string, bool)

type Resolver struct {
	defaultTenantID string
	claim           ClaimFunc
}

// Resolve picks, in order, a well formed X-Tenant-Id header, the tenant
// claim of the authenticated caller and the configured default. It never fails.
func (r *Resolver) Resolve(req *http.Request) string {
	if h := strings.TrimSpace(req.Header.Get(HeaderName)); h != "" {
		if id, err := uuid.Parse(h); err == nil {
			return id.String()
		}
	}

	if r.claim != nil {
		if tid, ok := r.claim(req.Context()); ok && tid != "" {
			return tid
		}
	}

	return r.defaultTenantID
}

func NewResolver(defaultTenantID string, claim ClaimFunc) *Resolver {
	r := new(Resolver)
	r.defaultTenantID = defaultTenantID
	r.claim = claim

	return r
}

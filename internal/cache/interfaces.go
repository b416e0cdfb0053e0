// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"time"
)

type CacheInterface interface {
	SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error
	GetDelJSON(ctx context.Context, key string, v interface{}) (bool, error)
	Ping(ctx context.Context) error
}

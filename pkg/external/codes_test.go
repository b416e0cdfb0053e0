// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package external

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/tenant-identity-service/internal/apperrors"
	"github.com/canonical/tenant-identity-service/internal/cache"
	"github.com/canonical/tenant-identity-service/internal/logging"
	"github.com/canonical/tenant-identity-service/internal/monitoring"
	"github.com/canonical/tenant-identity-service/internal/security"
	"github.com/canonical/tenant-identity-service/internal/tracing"
	"github.com/canonical/tenant-identity-service/internal/types"
)

func setupCodeBridge(t *testing.T) (*miniredis.Miniredis, *CodeBridge) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	logger := logging.NewNoopLogger()
	c := cache.NewCache(client, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	return mr, NewCodeBridge(c, 0)
}

func TestCodeBridgeRedeemsOnce(t *testing.T) {
	_, bridge := setupCodeBridge(t)
	ctx := context.Background()

	code, err := bridge.Issue(ctx, LoginCode{
		UserID:      "user-1",
		TenantID:    "tenant-1",
		Roles:       []string{"Admin"},
		Permissions: []string{"tenants:read"},
		Provider:    "google",
	})
	require.NoError(t, err)
	require.NotEmpty(t, code)

	payload, err := bridge.Redeem(ctx, code)
	require.NoError(t, err)
	assert.Equal(t, "user-1", payload.UserID)
	assert.Equal(t, "google", payload.Provider)
	assert.Equal(t, &types.SessionGrant{TenantID: "tenant-1", Roles: []string{"Admin"}, Permissions: []string{"tenants:read"}}, payload.Grant())
	assert.False(t, payload.IssuedAt.IsZero())

	_, err = bridge.Redeem(ctx, code)
	assert.True(t, apperrors.Is(err, apperrors.KindUnauthorized))
}

func TestCodeBridgeStoresOnlyTheHash(t *testing.T) {
	mr, bridge := setupCodeBridge(t)

	code, err := bridge.Issue(context.Background(), LoginCode{UserID: "user-1", Provider: "google"})
	require.NoError(t, err)

	assert.Equal(t, []string{codeKeyPrefix + security.Hash(code)}, mr.Keys())
	assert.Equal(t, DefaultCodeTTL, mr.TTL(codeKeyPrefix+security.Hash(code)))
}

func TestCodeBridgeExpires(t *testing.T) {
	mr, bridge := setupCodeBridge(t)
	ctx := context.Background()

	code, err := bridge.Issue(ctx, LoginCode{UserID: "user-1", Provider: "google"})
	require.NoError(t, err)

	mr.FastForward(DefaultCodeTTL + time.Second)

	_, err = bridge.Redeem(ctx, code)
	assert.True(t, apperrors.Is(err, apperrors.KindUnauthorized))
}

func TestCodeBridgeUnknownCode(t *testing.T) {
	_, bridge := setupCodeBridge(t)

	for _, code := range []string{"", "never-issued"} {
		_, err := bridge.Redeem(context.Background(), code)
		assert.True(t, apperrors.Is(err, apperrors.KindUnauthorized), code)
	}
}

func TestCodeBridgeCacheDown(t *testing.T) {
	mr, bridge := setupCodeBridge(t)
	mr.Close()

	_, err := bridge.Issue(context.Background(), LoginCode{UserID: "user-1", Provider: "google"})
	assert.True(t, apperrors.Is(err, apperrors.KindServiceUnavailable))
}

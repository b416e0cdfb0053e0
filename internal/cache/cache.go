// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package cache holds short lived JSON values in redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/canonical/tenant-identity-service/internal/logging"
	"github.com/canonical/tenant-identity-service/internal/monitoring"
	"github.com/canonical/tenant-identity-service/internal/tracing"
)

type Config struct {
	Addr     string
	Password string
	DB       int
}

type Cache struct {
	client *redis.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ CacheInterface = (*Cache)(nil)

func (c *Cache) SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error {
	ctx, span := c.tracer.Start(ctx, "cache.Cache.SetJSON")
	defer span.End()

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}

	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache key: %w", err)
	}

	return nil
}

// GetDelJSON reads and removes key atomically, a value can be taken once.
// It returns false when the key does not exist or already expired.
func (c *Cache) GetDelJSON(ctx context.Context, key string, v interface{}) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "cache.Cache.GetDelJSON")
	defer span.End()

	raw, err := c.client.GetDel(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to take cache key: %w", err)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	return true, nil
}

func (c *Cache) Ping(ctx context.Context) error {
	ctx, span := c.tracer.Start(ctx, "cache.Cache.Ping")
	defer span.End()

	err := c.client.Ping(ctx).Err()

	status := 1.0
	if err != nil {
		status = 0
	}

	if mErr := c.monitor.SetDependencyAvailability(map[string]string{"component": "redis"}, status); mErr != nil {
		c.logger.Debugf("failed to record redis availability: %v", mErr)
	}

	return err
}

func (c *Cache) Close() error {
	return c.client.Close()
}

func NewClient(cfg Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func NewCache(client *redis.Client, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Cache {
	c := new(Cache)

	c.client = client

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}

// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/fleetops/finance-hub/internal/application/adapter"
)

// permissionCacheKeyPrefix namespaces permission entries in redis.
const permissionCacheKeyPrefix = "permissions:"

// redisPermissionCache implements the adapter.PermissionCache interface on redis.
type redisPermissionCache struct {
	client *redis.Client
}

// NewRedisPermissionCache creates a new redis-backed permission cache.
func NewRedisPermissionCache(client *redis.Client) adapter.PermissionCache {
	return &redisPermissionCache{
		client: client,
	}
}

// Get returns the cached permission list for a user and whether it was present.
func (c *redisPermissionCache) Get(ctx context.Context, userID uuid.UUID) ([]string, bool, error) {
	raw, err := c.client.Get(ctx, permissionCacheKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read permission cache: %w", err)
	}

	var permissions []string
	if err := json.Unmarshal([]byte(raw), &permissions); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached permissions: %w", err)
	}

	return permissions, true, nil
}

// Set stores the permission list for a user with the given TTL.
func (c *redisPermissionCache) Set(ctx context.Context, userID uuid.UUID, permissions []string, ttl time.Duration) error {
	data, err := json.Marshal(permissions)
	if err != nil {
		return fmt.Errorf("failed to encode permissions: %w", err)
	}

	if err := c.client.Set(ctx, permissionCacheKey(userID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write permission cache: %w", err)
	}
	return nil
}

// Invalidate drops the cached permission list for a user.
func (c *redisPermissionCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Del(ctx, permissionCacheKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate permission cache: %w", err)
	}
	return nil
}

// permissionCacheKey builds the redis key for a user's permissions.
func permissionCacheKey(userID uuid.UUID) string {
	return permissionCacheKeyPrefix + userID.String()
}

package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/arabshield/platform-api/internal/core/domain"
)

const roleTTL = 5 * time.Minute

// RoleCache caches resolved user roles in Redis with a short TTL.
// Key format: role:<user_id>
type RoleCache struct {
	client *redis.Client
}

// NewRoleCache creates a RoleCache wrapping the given Redis client.
func NewRoleCache(client *redis.Client) *RoleCache {
	return &RoleCache{client: client}
}

// GetRole returns the cached role for a user and whether it was present.
func (c *RoleCache) GetRole(ctx context.Context, userID string) (domain.Role, bool, error) {
	val, err := c.client.Get(ctx, c.key(userID)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("role cache get: %w", err)
	}
	return domain.Role(val), true, nil
}

// SetRole caches a user's role (expires after roleTTL).
func (c *RoleCache) SetRole(ctx context.Context, userID string, role domain.Role) error {
	return c.client.Set(ctx, c.key(userID), string(role), roleTTL).Err()
}

// Invalidate drops the cached role, forcing the next lookup to hit the store.
func (c *RoleCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}

func (c *RoleCache) key(userID string) string {
	return "role:" + userID
}

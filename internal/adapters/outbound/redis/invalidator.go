package redis

import (
	"context"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/evolvehq/evolve-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CacheInvalidator implements domain.CacheInvalidator on Redis. Aggregates are
// cached by read-side services under deterministic keys; after a commit the
// unit of work calls Invalidate so stale entries never outlive the write.
type CacheInvalidator struct {
	client *redis.Client
	prefix string
}

// NewCacheInvalidator creates a new instance of CacheInvalidator.
func NewCacheInvalidator(client *redis.Client, prefix string) CacheInvalidator {
	return CacheInvalidator{client: client, prefix: prefix}
}

// Key builds the cache key for an aggregate.
func (ci CacheInvalidator) Key(entity domain.EntityType, id uuid.UUID) string {
	return strings.Join([]string{ci.prefix, string(entity), id.String()}, ":")
}

// Invalidate drops the cached entry for the given aggregate.
func (ci CacheInvalidator) Invalidate(ctx context.Context, entity domain.EntityType, id uuid.UUID) error {
	return ci.client.Del(ctx, ci.Key(entity, id)).Err()
}

// NoopInvalidator is registered when no Redis address is configured.
type NoopInvalidator struct{}

// Invalidate does nothing.
func (NoopInvalidator) Invalidate(ctx context.Context, entity domain.EntityType, id uuid.UUID) error {
	return nil
}

// InitCacheInvalidator initializes the CacheInvalidator dependency. When
// REDIS_ADDR is left at its default, caching is disabled and a no-op
// invalidator is registered instead.
type InitCacheInvalidator struct {
	Logger    *zap.Logger `resolve:""`
	Addr      string      `config:"REDIS_ADDR" default:"-"`
	Password  string      `config:"REDIS_PASSWORD" default:""`
	DB        int         `config:"REDIS_DB" default:"0"`
	KeyPrefix string      `config:"REDIS_KEY_PREFIX" default:"evolve"`
	client    *redis.Client
}

// Initialize connects to Redis and registers the CacheInvalidator in the
// dependency container.
func (ici *InitCacheInvalidator) Initialize(ctx context.Context) (context.Context, error) {
	if ici.Addr == "-" {
		ici.Logger.Info("InitCacheInvalidator: no Redis address configured, cache invalidation disabled")
		depend.Register[domain.CacheInvalidator](NoopInvalidator{})
		return ctx, nil
	}

	if ici.client == nil {
		ici.client = redis.NewClient(&redis.Options{
			Addr:     ici.Addr,
			Password: ici.Password,
			DB:       ici.DB,
		})
	}

	if err := ici.client.Ping(ctx).Err(); err != nil {
		return ctx, fmt.Errorf("failed to connect to redis: %w", err)
	}

	depend.Register[domain.CacheInvalidator](NewCacheInvalidator(ici.client, ici.KeyPrefix))
	return ctx, nil
}

// Close shuts down the Redis client.
func (ici *InitCacheInvalidator) Close() {
	if ici.client == nil {
		return
	}
	if err := ici.client.Close(); err != nil {
		ici.Logger.Error("InitCacheInvalidator: failed to close redis client", zap.Error(err))
	}
}

// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"digital_mechanic/internal/feature/vehicles/domain/entity"
	"digital_mechanic/internal/feature/vehicles/usecase"
)

// CachingVehicleRepository decorates a VehicleRepository with Redis caching
// of per-owner vehicle lists.
type CachingVehicleRepository struct {
	inner     usecase.VehicleRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.VehicleRepository = (*CachingVehicleRepository)(nil)

// NewCachingVehicleRepository decorates a VehicleRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "vehicles".
// A nil rdb disables caching.
func NewCachingVehicleRepository(rdb *redis.Client, ttl time.Duration, inner usecase.VehicleRepository, namespace string) *CachingVehicleRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "vehicles"
	}
	return &CachingVehicleRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create stores the vehicle and invalidates the owner's cached list.
func (c *CachingVehicleRepository) Create(ctx context.Context, v *entity.Vehicle) error {
	if err := c.inner.Create(ctx, v); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	// Best effort: the entry also expires after ttl
	_ = c.rdb.Del(ctx, c.cacheKey(v.OwnerID)).Err()
	return nil
}

// FindByOwner checks the cache first, then falls back to the inner repository.
func (c *CachingVehicleRepository) FindByOwner(ctx context.Context, ownerID string) ([]entity.Vehicle, error) {
	if c.rdb == nil {
		return c.inner.FindByOwner(ctx, ownerID)
	}

	key := c.cacheKey(ownerID)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Vehicle
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the store
	out, err := c.inner.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

func (c *CachingVehicleRepository) cacheKey(ownerID string) string {
	return c.namespace + ":owner:" + safe(ownerID)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}

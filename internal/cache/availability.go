package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/miamente/miamente-sub002/internal/dto"
)

const availabilityTTL = 30 * time.Second

// AvailabilityCache keeps public free-slot listings in redis for a
// short TTL. Staleness is bounded by the TTL; correctness still comes
// from the booking transaction, which re-checks the slot status.
type AvailabilityCache struct {
	rdb *redis.Client
	log *zap.Logger
}

// New returns a disabled cache when rdb is nil.
func New(rdb *redis.Client, log *zap.Logger) *AvailabilityCache {
	return &AvailabilityCache{rdb: rdb, log: log}
}

func Key(professionalID uint, from, to string) string {
	return fmt.Sprintf("availability:%d:%s:%s", professionalID, from, to)
}

func (c *AvailabilityCache) Get(ctx context.Context, key string) ([]dto.PublicSlot, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("availability cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var slots []dto.PublicSlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *AvailabilityCache) Set(ctx context.Context, key string, slots []dto.PublicSlot) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key, raw, availabilityTTL).Err(); err != nil {
		c.log.Warn("availability cache write failed", zap.Error(err))
	}
}

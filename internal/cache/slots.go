package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	domain "github.com/shearbook/barbershop-api/internal/domain/booking"
)

const slotsTTL = 30 * time.Second

// SlotsCache keeps the computed slot list per (shop, date) for a short TTL.
// It is advisory only: a nil client or a Redis failure falls through to the
// database-backed computation.
type SlotsCache struct {
	client *redis.Client
}

func NewSlotsCache(client *redis.Client) *SlotsCache {
	return &SlotsCache{client: client}
}

func slotsKey(shopID uuid.UUID, date string) string {
	return fmt.Sprintf("slots:%s:%s", shopID, date)
}

func (c *SlotsCache) Get(ctx context.Context, shopID uuid.UUID, date string) ([]domain.Slot, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, slotsKey(shopID, date)).Result()
	if err != nil {
		return nil, false
	}

	var slots []domain.Slot
	if err := json.Unmarshal([]byte(data), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *SlotsCache) Set(ctx context.Context, shopID uuid.UUID, date string, slots []domain.Slot) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(slots)
	if err != nil {
		return
	}
	c.client.Set(ctx, slotsKey(shopID, date), data, slotsTTL)
}

// Invalidate drops the cached list after any occupancy mutation.
func (c *SlotsCache) Invalidate(ctx context.Context, shopID uuid.UUID, date string) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, slotsKey(shopID, date))
}

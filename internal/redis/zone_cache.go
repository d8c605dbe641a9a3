package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/sanjjiiev/Smart-Sheild/internal/domain"
)

// ZoneCache keeps the pending-accident map projection for a short TTL so
// dashboard polling does not hit Postgres on every refresh.
type ZoneCache struct {
	client *goredis.Client
	key    string
}

func NewZoneCache(r *Redis) *ZoneCache {
	return &ZoneCache{
		client: r.Client,
		key:    "accidents:pending-zones",
	}
}

// Get returns the cached zones, or (nil, nil) on a miss.
func (c *ZoneCache) Get(ctx context.Context) ([]domain.AccidentZone, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var zones []domain.AccidentZone
	if err := json.Unmarshal(data, &zones); err != nil {
		return nil, err
	}

	return zones, nil
}

func (c *ZoneCache) Set(ctx context.Context, zones []domain.AccidentZone, ttl time.Duration) error {
	b, err := json.Marshal(zones)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

// StatsCache fronts the home-page aggregate queries with a short-TTL blob.
type StatsCache struct {
	client *goredis.Client
	key    string
}

func NewStatsCache(r *Redis) *StatsCache {
	return &StatsCache{
		client: r.Client,
		key:    "stats:home",
	}
}

func (c *StatsCache) GetHome(ctx context.Context) (*domain.HomeStats, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var stats domain.HomeStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (c *StatsCache) SetHome(ctx context.Context, stats *domain.HomeStats, ttl time.Duration) error {
	b, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}

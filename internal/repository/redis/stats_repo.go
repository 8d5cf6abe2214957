package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	StatsKey = "impact:stats"
	StatsTTL = 5 * time.Minute
)

// StatsCacheRepository caches the rendered impact aggregates. Writers delete
// the key after every donation; readers rebuild it from the database on miss.
type StatsCacheRepository struct {
	ttl time.Duration
}

func NewStatsCacheRepository() *StatsCacheRepository {
	return &StatsCacheRepository{ttl: StatsTTL}
}

// Get returns the cached stats and whether the key was present.
func (r *StatsCacheRepository) Get(ctx context.Context, dst any) (bool, error) {
	raw, err := Client.Get(ctx, StatsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (r *StatsCacheRepository) Set(ctx context.Context, stats any) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return Client.Set(ctx, StatsKey, raw, r.ttl).Err()
}

// Invalidate drops the cached aggregates after a funding write.
func (r *StatsCacheRepository) Invalidate(ctx context.Context) error {
	if err := Client.Del(ctx, StatsKey).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}

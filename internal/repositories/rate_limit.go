package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/archive-viewer/internal/logger"
)

// RateLimitRepository keeps fixed-window request counters in Redis.
type RateLimitRepository struct {
	client *redis.Client
}

// NewRateLimitRepository creates a new repository instance.
func NewRateLimitRepository(client *redis.Client) *RateLimitRepository {
	return &RateLimitRepository{client: client}
}

// Increment bumps the counter for key and returns its new value.
// The window starts with the first hit.
func (r *RateLimitRepository) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	key = fmt.Sprintf("rate_limit:%s", key)

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		logger.Log.Errorw("rate limit increment failed", "key", key, "error", err)
		return 0, err
	}

	if count == 1 {
		if err := r.client.Expire(ctx, key, window).Err(); err != nil {
			logger.Log.Errorw("rate limit expire failed", "key", key, "error", err)
			return count, err
		}
	}

	return count, nil
}

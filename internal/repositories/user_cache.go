package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/archive-viewer/internal/logger"
)

// ErrCacheMiss is returned when no user id is cached for a username.
var ErrCacheMiss = errors.New("user id not found in cache")

// UserIDCacheRepository caches resolved username to user id lookups in Redis.
type UserIDCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached ids
}

// NewUserIDCacheRepository creates a new repository instance with the given TTL.
func NewUserIDCacheRepository(client *redis.Client, expiration time.Duration) *UserIDCacheRepository {
	return &UserIDCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func userIDKey(username string) string {
	return fmt.Sprintf("user_id:%s", strings.ToLower(username))
}

// GetUserID returns the cached user id for a username, matched case-insensitively.
func (r *UserIDCacheRepository) GetUserID(ctx context.Context, username string) (string, error) {
	key := userIDKey(username)

	val, err := r.client.Get(ctx, key).Result()
	logger.Log.Debugw("cache get",
		"key", key,
		"result", val,
		"error", err,
	)
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", err
	}

	return val, nil
}

// SetUserID caches the user id for a username with expiration.
func (r *UserIDCacheRepository) SetUserID(ctx context.Context, username, userID string) error {
	key := userIDKey(username)
	err := r.client.Set(ctx, key, userID, r.exp).Err()

	logger.Log.Debugw("cache set",
		"key", key,
		"user_id", userID,
		"error", err,
	)

	return err
}

package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimitRepository_Increment(t *testing.T) {
	rdb, teardown := setupRedisContainer(t)
	defer teardown()

	ctx := context.Background()
	repo := NewRateLimitRepository(rdb)

	for want := int64(1); want <= 3; want++ {
		got, err := repo.Increment(ctx, "search:127.0.0.1", time.Second)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	ttl, err := rdb.TTL(ctx, "rate_limit:search:127.0.0.1").Result()
	assert.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	time.Sleep(2 * time.Second)

	got, err := repo.Increment(ctx, "search:127.0.0.1", time.Second)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

package feedback

import (
	"context"
	"testing"
	"time"

	myErr "melodia/internal/types/errors"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func setupGuard(t *testing.T) (*LikeGuard, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return NewLikeGuard(rdb, zaptest.NewLogger(t).Sugar(), 5*time.Second), mr
}

func TestLikeGuard_SecondToggleInFlight(t *testing.T) {
	guard, mr := setupGuard(t)
	defer mr.Close()

	ctx := context.Background()

	release, err := guard.Acquire(ctx, "f1", "u1")
	require.NoError(t, err)
	assert.True(t, mr.Exists("like-guard:f1:u1"))

	_, err = guard.Acquire(ctx, "f1", "u1")
	assert.Equal(t, myErr.ErrToggleInFlight, err)

	// other users and other feedback are independent
	releaseOther, err := guard.Acquire(ctx, "f1", "u2")
	require.NoError(t, err)
	releaseOther()

	release()
	assert.False(t, mr.Exists("like-guard:f1:u1"))

	release, err = guard.Acquire(ctx, "f1", "u1")
	require.NoError(t, err)
	release()
}

func TestLikeGuard_ExpiresWithTTL(t *testing.T) {
	guard, mr := setupGuard(t)
	defer mr.Close()

	ctx := context.Background()

	_, err := guard.Acquire(ctx, "f1", "u1")
	require.NoError(t, err)

	mr.FastForward(6 * time.Second)

	release, err := guard.Acquire(ctx, "f1", "u1")
	require.NoError(t, err)
	release()
}

func TestLikeGuard_RedisDown(t *testing.T) {
	guard, mr := setupGuard(t)
	mr.Close()

	_, err := guard.Acquire(context.Background(), "f1", "u1")
	assert.Error(t, err)
	assert.NotEqual(t, myErr.ErrToggleInFlight, err)
}

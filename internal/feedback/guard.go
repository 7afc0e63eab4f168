package feedback

import (
	"context"
	"fmt"
	"time"

	myErr "melodia/internal/types/errors"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Guard - не дает одному пользователю запустить второй toggle того же комментария,
// пока первый еще выполняется
type Guard interface {
	// Acquire returns a release func or ErrToggleInFlight when the key is taken.
	Acquire(ctx context.Context, feedbackID, userID string) (func(), error)
}

type LikeGuard struct {
	RedisClient *redis.Client
	Logger      *zap.SugaredLogger
	ttl         time.Duration
}

func NewLikeGuard(redisClient *redis.Client, logger *zap.SugaredLogger, ttl time.Duration) *LikeGuard {
	return &LikeGuard{
		RedisClient: redisClient,
		Logger:      logger,
		ttl:         ttl,
	}
}

func guardKey(feedbackID, userID string) string {
	return fmt.Sprintf("like-guard:%s:%s", feedbackID, userID)
}

func (g *LikeGuard) Acquire(ctx context.Context, feedbackID, userID string) (func(), error) {
	key := guardKey(feedbackID, userID)

	ok, err := g.RedisClient.SetNX(ctx, key, time.Now().Unix(), g.ttl).Result()
	if err != nil {
		g.Logger.Error(
			"Failed to set like guard in Redis",
			zap.Error(err),
			zap.String("key", key),
		)

		return nil, err
	}

	if !ok {
		g.Logger.Infof("Toggle for feedback %s by user %s already in flight", feedbackID, userID)

		return nil, myErr.ErrToggleInFlight
	}

	release := func() {
		// TTL cleans the key up if this Del is lost
		if err := g.RedisClient.Del(context.Background(), key).Err(); err != nil {
			g.Logger.Warnf("Failed to release like guard %s: %v", key, err)
		}
	}

	return release, nil
}

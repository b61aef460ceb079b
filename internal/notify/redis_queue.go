package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const QueueKeyPrefix = "workly:toasts:"

func QueueKey(userID string) string {
	return QueueKeyPrefix + userID
}

// RedisQueue keeps a per-user list of pending notifications until the UI drains it.
type RedisQueue struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisQueue(rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) *RedisQueue {
	l := zap.L().Named("notify.redis")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notify.redis")
	}
	return &RedisQueue{rdb: rdb, ttl: ttl, logger: l}
}

func (q *RedisQueue) Notify(ctx context.Context, n Notification) error {
	if n.UserID == "" {
		// nobody to deliver to
		return nil
	}
	n = n.stamp()

	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("notify: marshal: %w", err)
	}

	key := QueueKey(n.UserID)
	if err := q.rdb.RPush(ctx, key, string(payload)).Err(); err != nil {
		q.logger.Error("push notification failed", zap.String("key", key), zap.Error(err))
		return err
	}
	if q.ttl > 0 {
		if err := q.rdb.Expire(ctx, key, q.ttl).Err(); err != nil {
			q.logger.Warn("set notification ttl failed", zap.String("key", key), zap.Error(err))
		}
	}
	return nil
}

// Drain returns and removes every pending notification of userID, oldest first.
func (q *RedisQueue) Drain(ctx context.Context, userID string) ([]Notification, error) {
	key := QueueKey(userID)

	var lrange *redis.StringSliceCmd
	_, err := q.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		lrange = pipe.LRange(ctx, key, 0, -1)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		q.logger.Error("drain notifications failed", zap.String("key", key), zap.Error(err))
		return nil, err
	}

	out := make([]Notification, 0, len(lrange.Val()))
	for _, raw := range lrange.Val() {
		var n Notification
		if err := json.Unmarshal([]byte(raw), &n); err != nil {
			q.logger.Warn("skip malformed notification", zap.String("key", key), zap.Error(err))
			continue
		}
		n.UserID = userID
		out = append(out, n)
	}
	return out, nil
}

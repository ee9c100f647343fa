package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/domain"
	"github.com/hetpatoliya0206/ZeroWaste-Connect/pkg/e"

	"github.com/redis/go-redis/v9"
)

// NotificationQueue buffers NGO notifications between the donation
// transaction and the sender workers. Enqueue happens only after commit.
type NotificationQueue struct {
	client *redis.Client
	key    string
}

func NewNotificationQueue(client *redis.Client, key string) *NotificationQueue {
	return &NotificationQueue{client: client, key: key}
}

func (q *NotificationQueue) Enqueue(ctx context.Context, payload domain.NotificationPayload) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *NotificationQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.NotificationPayload, error) {
	var p domain.NotificationPayload

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return p, e.ErrQueueEmpty
		}
		return p, err
	}
	if len(res) < 2 {
		return p, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &p); err != nil {
		return p, err
	}
	return p, nil
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sanjjiiev/Smart-Sheild/internal/domain"
	"github.com/sanjjiiev/Smart-Sheild/pkg/e"
)

// AlertQueue decouples the dispatch pipeline from SMTP: dispatch enqueues
// after the accident record is persisted, the sender drains on its own clock.
type AlertQueue struct {
	client *redis.Client
	key    string
}

func NewAlertQueue(client *redis.Client, key string) *AlertQueue {
	return &AlertQueue{client: client, key: key}
}

func (q *AlertQueue) Enqueue(ctx context.Context, alert domain.AccidentAlert) error {
	b, err := json.Marshal(alert)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *AlertQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.AccidentAlert, error) {
	var a domain.AccidentAlert

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return a, e.ErrAlertQueueEmpty
		}
		return a, err
	}
	if len(res) < 2 {
		return a, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &a); err != nil {
		return a, err
	}
	return a, nil
}

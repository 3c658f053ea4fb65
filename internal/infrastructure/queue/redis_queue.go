package queue

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

const ReconcileQueueKey = "reconcile_queue"

// RedisQueue is the reconcile job queue: the server LPushes, the worker
// BRPops.
type RedisQueue struct {
	rdb *redis.Client
}

func NewRedisQueue(rdb *redis.Client) *RedisQueue {
	return &RedisQueue{rdb: rdb}
}

func (q *RedisQueue) Enqueue(ctx context.Context, job Job) error {
	if job.EnqueuedAt.IsZero() {
		job.EnqueuedAt = time.Now()
	}
	serialized, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return q.rdb.LPush(ctx, ReconcileQueueKey, serialized).Err()
}

// Pop blocks until a job is available or the timeout elapses. A nil job with
// nil error means the timeout hit.
func (q *RedisQueue) Pop(ctx context.Context, timeout time.Duration) (*Job, error) {
	val, err := q.rdb.BRPop(ctx, timeout, ReconcileQueueKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return DeserializeJob(val[1])
}

package notify

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const confirmationList = "orders:confirmations"

// RedisQueue はRedisのリストをキューとして使う。
// EnqueueはLPUSH、workerがBRPOPで取り出す。
type RedisQueue struct {
	client *redis.Client
}

func NewRedisQueue(client *redis.Client) *RedisQueue {
	return &RedisQueue{client: client}
}

func (q *RedisQueue) Enqueue(ctx context.Context, orderID int64) error {
	return q.client.LPush(ctx, confirmationList, strconv.FormatInt(orderID, 10)).Err()
}

// Dequeue は1件取り出す。timeout内に無ければ (0, false, nil)。
func (q *RedisQueue) Dequeue(ctx context.Context) (int64, bool, error) {
	res, err := q.client.BRPop(ctx, 5*time.Second, confirmationList).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	//BRPopは [key, value] を返す
	if len(res) != 2 {
		return 0, false, nil
	}
	id, err := strconv.ParseInt(res[1], 10, 64)
	if err != nil {
		return 0, false, nil
	}
	return id, true, nil
}

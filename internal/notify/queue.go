package notify

import (
	"context"
	"sync"
)

// Queue は注文確認メールの依頼を積む口。
// webhook処理はEnqueueして即returnし、送信はworkerが別でやる。
type Queue interface {
	Enqueue(ctx context.Context, orderID int64) error
}

// MemoryQueue はテスト用。
type MemoryQueue struct {
	mu       sync.Mutex
	OrderIDs []int64
}

func NewMemoryQueue() *MemoryQueue {
	return &MemoryQueue{}
}

func (q *MemoryQueue) Enqueue(ctx context.Context, orderID int64) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.OrderIDs = append(q.OrderIDs, orderID)
	return nil
}

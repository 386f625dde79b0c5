package cart

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore はテスト用のインメモリ実装。
// Redis版と同じくJSONで往復させる。
type MemoryStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: map[string][]byte{}}
}

func (s *MemoryStore) Load(ctx context.Context, sessionID string) (Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.blobs[sessionID]
	if !ok {
		return New(), nil
	}

	var c Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		return New(), nil
	}
	return c, nil
}

func (s *MemoryStore) Save(ctx context.Context, sessionID string, c Cart) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[sessionID] = raw
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, sessionID)
	return nil
}

package cart

import "context"

// Store はセッションID→カートの置き場。
// ハンドラからは暗黙のセッションではなく、これを注入して使う。
type Store interface {
	//無ければ空カートを返す
	Load(ctx context.Context, sessionID string) (Cart, error)
	Save(ctx context.Context, sessionID string, c Cart) error
	Clear(ctx context.Context, sessionID string) error
}

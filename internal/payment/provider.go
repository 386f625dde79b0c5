package payment

import (
	"context"
	"fmt"

	"bigcorp/internal/domain/model"

	"github.com/shopspring/decimal"
)

// LineItem は決済プロバイダに渡す1行分。
type LineItem struct {
	ProductID int64
	Title     string
	UnitPrice decimal.Decimal
	Quantity  int64
}

// Provider は決済方法1つにつき1実装。
// CreateSession はホスト型決済ページへのリダイレクトURLを返す。
// リダイレクト無しのプロバイダは空文字を返してよい。
type Provider interface {
	Name() string
	CreateSession(ctx context.Context, order model.Order, items []LineItem) (string, error)
}

// Registry は支払い方法タグ→Providerの引き当て。
// プロバイダを増やすときはここに登録するだけでよい。
type Registry struct {
	providers map[string]Provider
}

func NewRegistry(providers ...Provider) *Registry {
	m := make(map[string]Provider, len(providers))
	for _, p := range providers {
		m[p.Name()] = p
	}
	return &Registry{providers: m}
}

func (r *Registry) Get(method string) (Provider, error) {
	p, ok := r.providers[method]
	if !ok {
		return nil, fmt.Errorf("unknown payment method: %s", method)
	}
	return p, nil
}

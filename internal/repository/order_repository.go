package repository

import (
	"context"

	"bigcorp/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error

	//支払い済みにする（既に支払い済みなら false を返すだけで何もしない）
	MarkPaid(ctx context.Context, orderID int64) (bool, error)
}

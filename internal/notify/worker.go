package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"bigcorp/internal/domain/model"
	repo "bigcorp/internal/repository"
)

// Mailer は確認メールの送信口。
type Mailer interface {
	SendOrderConfirmation(ctx context.Context, email string, order model.Order, items []model.OrderItem) error
}

// LogMailer は実送信の代わりにログへ出す。
type LogMailer struct{}

func (LogMailer) SendOrderConfirmation(ctx context.Context, email string, order model.Order, items []model.OrderItem) error {
	slog.InfoContext(ctx, "order confirmation sent",
		"order_id", order.ID,
		"email", email,
		"total", order.TotalPrice.StringFixed(2),
		"items", len(items),
	)
	return nil
}

// Dequeuer はworkerが読む側のキュー。
type Dequeuer interface {
	Dequeue(ctx context.Context) (int64, bool, error)
}

// Worker はキューから注文IDを取り出して確認メールを送る。
// リクエストパスの外で回るので、失敗はログに残して次へ進む。
type Worker struct {
	queue      Dequeuer
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	addresses  repo.AddressRepository
	mailer     Mailer
}

func NewWorker(queue Dequeuer, orders repo.OrderRepository, orderItems repo.OrderItemRepository, addresses repo.AddressRepository, mailer Mailer) *Worker {
	return &Worker{
		queue:      queue,
		orders:     orders,
		orderItems: orderItems,
		addresses:  addresses,
		mailer:     mailer,
	}
}

// Run はctxが閉じるまでキューを読み続ける。
func (w *Worker) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		orderID, ok, err := w.queue.Dequeue(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			slog.ErrorContext(ctx, "confirmation dequeue failed", "error", err)
			continue
		}
		if !ok {
			continue
		}

		if err := w.process(ctx, orderID); err != nil {
			slog.ErrorContext(ctx, "confirmation failed", "order_id", orderID, "error", err)
		}
	}
}

func (w *Worker) process(ctx context.Context, orderID int64) error {
	order, err := w.orders.FindByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("load order %d: %w", orderID, err)
	}

	addr, err := w.addresses.FindByID(ctx, order.ShippingAddressID)
	if err != nil {
		return fmt.Errorf("load address %d: %w", order.ShippingAddressID, err)
	}

	items, err := w.orderItems.ListByOrderID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("load items for order %d: %w", orderID, err)
	}

	return w.mailer.SendOrderConfirmation(ctx, addr.Email, order, items)
}

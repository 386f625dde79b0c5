package usecase

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"bigcorp/internal/notify"
	"bigcorp/internal/payment"
	repo "bigcorp/internal/repository"
)

// WebhookUsecase は決済完了イベントの取り込み。
// 署名が通らないものは一切副作用を起こさない。
type WebhookUsecase struct {
	orders        repo.OrderRepository
	queue         notify.Queue
	webhookSecret string
}

func NewWebhookUsecase(orders repo.OrderRepository, queue notify.Queue, webhookSecret string) *WebhookUsecase {
	return &WebhookUsecase{
		orders:        orders,
		queue:         queue,
		webhookSecret: webhookSecret,
	}
}

// HandleStripeEvent は署名検証→照合→支払い済みマーク→通知キュー投入。
// nilを返したら200。知らないイベント種別は無視して200。
func (u *WebhookUsecase) HandleStripeEvent(ctx context.Context, payload []byte, signatureHeader string) error {
	if err := payment.VerifyStripeSignature(payload, signatureHeader, u.webhookSecret); err != nil {
		return NewHTTPError(http.StatusBadRequest, "invalid signature")
	}

	ev, err := payment.ParseEvent(payload)
	if err != nil {
		return NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if ev.Type != payment.EventCheckoutCompleted {
		return nil
	}

	session := ev.Data.Object
	if session.Mode != "payment" || session.PaymentStatus != "paid" {
		return nil
	}

	orderID, err := strconv.ParseInt(session.ClientReferenceID, 10, 64)
	if err != nil || orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid client_reference_id")
	}

	//paid→paidの再配信は何もしない
	changed, err := u.orders.MarkPaid(ctx, orderID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !changed {
		return nil
	}

	//確認メールはリクエストパスの外へ
	if err := u.queue.Enqueue(ctx, orderID); err != nil {
		slog.ErrorContext(ctx, "confirmation enqueue failed", "order_id", orderID, "error", err)
	}
	return nil
}

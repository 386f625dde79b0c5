package usecase

import (
	"context"
	"fmt"
	"testing"

	"bigcorp/internal/domain/model"
	"bigcorp/internal/notify"
	"bigcorp/internal/payment"
	repo "bigcorp/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type WebhookOrderRepoMock struct{ mock.Mock }

func (m *WebhookOrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	panic("not used in WebhookUsecase tests")
}

func (m *WebhookOrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	panic("not used in WebhookUsecase tests")
}

func (m *WebhookOrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	panic("not used in WebhookUsecase tests")
}

func (m *WebhookOrderRepoMock) MarkPaid(ctx context.Context, orderID int64) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

const webhookSecret = "whsec_test"

func paidEventPayload(orderID int64) []byte {
	return []byte(fmt.Sprintf(`{
		"type": "checkout.session.completed",
		"data": {"object": {"id": "cs_1", "mode": "payment", "payment_status": "paid", "client_reference_id": "%d"}}
	}`, orderID))
}

func signed(payload []byte) string {
	return payment.SignPayload(payload, "1700000000", webhookSecret)
}

// 署名が通らなければ何があっても副作用なし
func TestWebhookUsecase_InvalidSignatureNoSideEffects(t *testing.T) {
	orders := new(WebhookOrderRepoMock)
	queue := notify.NewMemoryQueue()
	uc := NewWebhookUsecase(orders, queue, webhookSecret)

	payload := paidEventPayload(42)
	badSig := payment.SignPayload(payload, "1700000000", "whsec_wrong")

	err := uc.HandleStripeEvent(context.Background(), payload, badSig)
	assertErrContains(t, err, "invalid signature")

	orders.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything)
	assert.Empty(t, queue.OrderIDs)
}

func TestWebhookUsecase_MalformedPayload(t *testing.T) {
	orders := new(WebhookOrderRepoMock)
	uc := NewWebhookUsecase(orders, notify.NewMemoryQueue(), webhookSecret)

	payload := []byte(`not json at all`)

	err := uc.HandleStripeEvent(context.Background(), payload, signed(payload))
	assertErrContains(t, err, "invalid payload")
	orders.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything)
}

// 知らないイベント種別は受け取って無視
func TestWebhookUsecase_UnrecognizedEventTypeIgnored(t *testing.T) {
	orders := new(WebhookOrderRepoMock)
	uc := NewWebhookUsecase(orders, notify.NewMemoryQueue(), webhookSecret)

	payload := []byte(`{"type": "invoice.created", "data": {"object": {}}}`)

	err := uc.HandleStripeEvent(context.Background(), payload, signed(payload))
	assert.NoError(t, err)
	orders.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything)
}

func TestWebhookUsecase_UnpaidStatusIgnored(t *testing.T) {
	orders := new(WebhookOrderRepoMock)
	uc := NewWebhookUsecase(orders, notify.NewMemoryQueue(), webhookSecret)

	payload := []byte(`{
		"type": "checkout.session.completed",
		"data": {"object": {"mode": "payment", "payment_status": "unpaid", "client_reference_id": "42"}}
	}`)

	err := uc.HandleStripeEvent(context.Background(), payload, signed(payload))
	assert.NoError(t, err)
	orders.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything)
}

func TestWebhookUsecase_PaidEventMarksOrderAndEnqueues(t *testing.T) {
	orders := new(WebhookOrderRepoMock)
	queue := notify.NewMemoryQueue()
	uc := NewWebhookUsecase(orders, queue, webhookSecret)

	orders.On("MarkPaid", mock.Anything, int64(42)).Return(true, nil)

	payload := paidEventPayload(42)
	err := uc.HandleStripeEvent(context.Background(), payload, signed(payload))
	require.NoError(t, err)

	orders.AssertExpectations(t)
	assert.Equal(t, []int64{42}, queue.OrderIDs)
}

// 再配信：2回目は支払い済みなので何もしない（エラーでもない）
func TestWebhookUsecase_DuplicateDeliveryIsNoop(t *testing.T) {
	orders := new(WebhookOrderRepoMock)
	queue := notify.NewMemoryQueue()
	uc := NewWebhookUsecase(orders, queue, webhookSecret)

	orders.On("MarkPaid", mock.Anything, int64(42)).Return(true, nil).Once()
	orders.On("MarkPaid", mock.Anything, int64(42)).Return(false, nil).Once()

	payload := paidEventPayload(42)

	require.NoError(t, uc.HandleStripeEvent(context.Background(), payload, signed(payload)))
	require.NoError(t, uc.HandleStripeEvent(context.Background(), payload, signed(payload)))

	//通知は1回だけ
	assert.Equal(t, []int64{42}, queue.OrderIDs)
}

func TestWebhookUsecase_UnknownOrder(t *testing.T) {
	orders := new(WebhookOrderRepoMock)
	uc := NewWebhookUsecase(orders, notify.NewMemoryQueue(), webhookSecret)

	orders.On("MarkPaid", mock.Anything, int64(404)).Return(false, repo.ErrNotFound)

	payload := paidEventPayload(404)
	err := uc.HandleStripeEvent(context.Background(), payload, signed(payload))
	assertErrContains(t, err, "not found")
}

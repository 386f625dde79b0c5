package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"bigcorp/internal/domain/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const MethodYooKassa = "yookassa"

// YooKassa は合計金額を固定レートでRUBに換算して決済を作る。
// リトライで二重決済しないよう Idempotence-Key を毎回生成して付ける。
type YooKassa struct {
	shopID    string
	secretKey string
	apiBase   string
	rate      decimal.Decimal
	returnURL string
	client    *http.Client

	//テストでキーを固定できるように差し替え可能
	newIdempotenceKey func() string
}

func NewYooKassa(shopID, secretKey, apiBase string, rate decimal.Decimal, returnURL string, timeout time.Duration) *YooKassa {
	return &YooKassa{
		shopID:            shopID,
		secretKey:         secretKey,
		apiBase:           strings.TrimRight(apiBase, "/"),
		rate:              rate,
		returnURL:         returnURL,
		client:            &http.Client{Timeout: timeout},
		newIdempotenceKey: uuid.NewString,
	}
}

func (y *YooKassa) Name() string { return MethodYooKassa }

type yooKassaAmount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type yooKassaRequest struct {
	Amount       yooKassaAmount `json:"amount"`
	Capture      bool           `json:"capture"`
	Confirmation struct {
		Type      string `json:"type"`
		ReturnURL string `json:"return_url"`
	} `json:"confirmation"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata"`
}

func (y *YooKassa) CreateSession(ctx context.Context, order model.Order, items []LineItem) (string, error) {
	req := yooKassaRequest{
		Amount: yooKassaAmount{
			Value:    order.TotalPrice.Mul(y.rate).Round(2).StringFixed(2),
			Currency: "RUB",
		},
		Capture:     true,
		Description: fmt.Sprintf("Order #%d", order.ID),
		Metadata: map[string]string{
			"order_id": strconv.FormatInt(order.ID, 10),
		},
	}
	req.Confirmation.Type = "redirect"
	req.Confirmation.ReturnURL = y.returnURL

	payload, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		y.apiBase+"/v3/payments", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	httpReq.SetBasicAuth(y.shopID, y.secretKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Idempotence-Key", y.newIdempotenceKey())

	resp, err := y.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("yookassa: create payment: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("yookassa: create payment: status %d: %s", resp.StatusCode, body)
	}

	var out struct {
		ID           string `json:"id"`
		Confirmation struct {
			ConfirmationURL string `json:"confirmation_url"`
		} `json:"confirmation"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("yookassa: decode payment: %w", err)
	}
	return out.Confirmation.ConfirmationURL, nil
}

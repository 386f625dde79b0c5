package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bigcorp/internal/domain/model"

	"github.com/shopspring/decimal"
)

const MethodStripe = "stripe"

// Stripe はStripe Checkoutのホスト型決済セッションを作る。
// 金額は最小通貨単位（セント）の整数、注文IDを client_reference_id に埋めて
// webhookで照合する。
type Stripe struct {
	secretKey  string
	apiBase    string
	currency   string
	successURL string
	cancelURL  string
	client     *http.Client
}

func NewStripe(secretKey, apiBase, currency, successURL, cancelURL string, timeout time.Duration) *Stripe {
	return &Stripe{
		secretKey:  secretKey,
		apiBase:    strings.TrimRight(apiBase, "/"),
		currency:   currency,
		successURL: successURL,
		cancelURL:  cancelURL,
		client:     &http.Client{Timeout: timeout},
	}
}

func (s *Stripe) Name() string { return MethodStripe }

var centFactor = decimal.NewFromInt(100)

// MinorUnits は10.00 → 1000のように最小通貨単位へ変換する。
func MinorUnits(d decimal.Decimal) int64 {
	return d.Mul(centFactor).Round(0).IntPart()
}

func (s *Stripe) CreateSession(ctx context.Context, order model.Order, items []LineItem) (string, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", s.successURL)
	form.Set("cancel_url", s.cancelURL)
	form.Set("client_reference_id", strconv.FormatInt(order.ID, 10))

	for i, item := range items {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form.Set(prefix+"[price_data][currency]", s.currency)
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(MinorUnits(item.UnitPrice), 10))
		form.Set(prefix+"[price_data][product_data][name]", item.Title)
		form.Set(prefix+"[quantity]", strconv.FormatInt(item.Quantity, 10))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.apiBase+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("stripe: create session: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("stripe: create session: status %d: %s", resp.StatusCode, body)
	}

	var out struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("stripe: decode session: %w", err)
	}
	if out.URL == "" {
		return "", fmt.Errorf("stripe: session %s has no url", out.ID)
	}
	return out.URL, nil
}

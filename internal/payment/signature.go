package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Stripe-Signature ヘッダの検証。
// 形式は "t=<unix>,v1=<hex>"、署名対象は "<t>.<payload>" のHMAC-SHA256。
var ErrBadSignature = errors.New("invalid webhook signature")

func VerifyStripeSignature(payload []byte, header string, secret string) error {
	var timestamp, v1 string

	for _, part := range strings.Split(header, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			timestamp = kv[1]
		case "v1":
			v1 = kv[1]
		}
	}

	if timestamp == "" || v1 == "" {
		return ErrBadSignature
	}

	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s.%s", timestamp, payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(v1)) {
		return ErrBadSignature
	}
	return nil
}

// SignPayload はテスト用にヘッダ値を組み立てる。
func SignPayload(payload []byte, timestamp string, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s.%s", timestamp, payload)
	return fmt.Sprintf("t=%s,v1=%s", timestamp, hex.EncodeToString(mac.Sum(nil)))
}

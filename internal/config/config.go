package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	DatabaseURL      string // あれば接続文字列を直接使う
	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresHost     string // DBホスト（localhost）
	PostgresPort     int    // DBポート（5432）
	PostgresSSLMode  string

	RedisAddr string // カートと通知キューの置き場
	CartTTL   time.Duration

	StripeSecretKey     string // Stripe APIキー
	StripeWebhookSecret string // webhook署名シークレット
	StripeAPIBase       string
	Currency            string // Stripe側の通貨コード（usd）

	YooKassaShopID    string
	YooKassaSecretKey string
	YooKassaAPIBase   string
	CurrencyRate      decimal.Decimal // USD→RUBの固定換算レート

	PaymentTimeout time.Duration // 決済プロバイダ呼び出しの上限

	SuccessURL string // 決済後に戻すURL
	FailURL    string
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port: getenv("PORT", "8080"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "bigcorp"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		RedisAddr: getenv("REDIS_ADDR", "localhost:6379"),

		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		StripeAPIBase:       getenv("STRIPE_API_BASE", "https://api.stripe.com"),
		Currency:            getenv("CURRENCY", "usd"),

		YooKassaShopID:    os.Getenv("YOOKASSA_SHOP_ID"),
		YooKassaSecretKey: os.Getenv("YOOKASSA_SECRET_KEY"),
		YooKassaAPIBase:   getenv("YOOKASSA_API_BASE", "https://api.yookassa.ru"),

		SuccessURL: getenv("PAYMENT_SUCCESS_URL", "http://localhost:8080/payment-success"),
		FailURL:    getenv("PAYMENT_FAIL_URL", "http://localhost:8080/payment-fail"),
	}

	pgPort, err := atoiEnv("POSTGRES_PORT", 5432)
	if err != nil {
		return Config{}, err
	}
	cfg.PostgresPort = pgPort

	rate, err := decimalEnv("CURRENCY_RATE", "92.50")
	if err != nil {
		return Config{}, err
	}
	cfg.CurrencyRate = rate

	ttlSec, err := atoiEnv("CART_TTL_SECONDS", 60*60*24*14)
	if err != nil {
		return Config{}, err
	}
	cfg.CartTTL = time.Duration(ttlSec) * time.Second

	timeoutSec, err := atoiEnv("PAYMENT_TIMEOUT_SECONDS", 10)
	if err != nil {
		return Config{}, err
	}
	cfg.PaymentTimeout = time.Duration(timeoutSec) * time.Second

	//必須チェック
	if cfg.StripeSecretKey == "" {
		return Config{}, fmt.Errorf("STRIPE_SECRET_KEY is required")
	}
	if cfg.StripeWebhookSecret == "" {
		return Config{}, fmt.Errorf("STRIPE_WEBHOOK_SECRET is required")
	}
	if cfg.YooKassaShopID == "" {
		return Config{}, fmt.Errorf("YOOKASSA_SHOP_ID is required")
	}
	if cfg.YooKassaSecretKey == "" {
		return Config{}, fmt.Errorf("YOOKASSA_SECRET_KEY is required")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func decimalEnv(key string, def string) (decimal.Decimal, error) {
	v := os.Getenv(key)
	if v == "" {
		v = def
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s must be decimal: %w", key, err)
	}
	return d, nil
}

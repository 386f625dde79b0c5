package main

import (
	"context"
	"log/slog"
	"os"

	"bigcorp/internal/cart"
	"bigcorp/internal/config"
	"bigcorp/internal/domain/model"
	"bigcorp/internal/handler"
	"bigcorp/internal/infra/db"
	infraRepo "bigcorp/internal/infra/repository"
	"bigcorp/internal/notify"
	"bigcorp/internal/payment"
	"bigcorp/internal/server"
	"bigcorp/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	//JSONログをデフォルトにする
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	//.envは無くてもよい
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		slog.Error("db connect failed", "error", err)
		os.Exit(1)
	}
	if err := gormDB.AutoMigrate(
		&model.Category{},
		&model.Product{},
		&model.ShippingAddress{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		slog.Error("migrate failed", "error", err)
		os.Exit(1)
	}

	//Redis（カート置き場と通知キュー）
	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(gormDB)
	addressRepo := infraRepo.NewAddressGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//カートストア
	cartStore := cart.NewRedisStore(redisClient, cfg.CartTTL)

	//決済プロバイダ
	providers := payment.NewRegistry(
		payment.NewStripe(cfg.StripeSecretKey, cfg.StripeAPIBase, cfg.Currency,
			cfg.SuccessURL, cfg.FailURL, cfg.PaymentTimeout),
		payment.NewYooKassa(cfg.YooKassaShopID, cfg.YooKassaSecretKey, cfg.YooKassaAPIBase,
			cfg.CurrencyRate, cfg.SuccessURL, cfg.PaymentTimeout),
	)

	//確認メールキュー＋worker
	queue := notify.NewRedisQueue(redisClient)
	worker := notify.NewWorker(queue, orderRepo, orderItemRepo, addressRepo, notify.LogMailer{})

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	go worker.Run(workerCtx)

	//Usecase生成
	catalogUC := usecase.NewCatalogUsecase(productRepo, categoryRepo)
	cartUC := usecase.NewCartUsecase(cartStore, productRepo)
	shippingUC := usecase.NewShippingUsecase(addressRepo)
	checkoutUC := usecase.NewCheckoutUsecase(txManager, cartStore, providers, cfg.PaymentTimeout)
	webhookUC := usecase.NewWebhookUsecase(orderRepo, queue, cfg.StripeWebhookSecret)

	//Handler生成
	catalogH := handler.NewCatalogHandler(catalogUC)
	cartH := handler.NewCartHandler(cartUC)
	paymentH := handler.NewPaymentHandler(shippingUC, checkoutUC, cartUC)
	webhookH := handler.NewWebhookHandler(webhookUC)

	//Server起動
	addr := ":" + cfg.Port
	if err := server.Start(addr, catalogH, cartH, paymentH, webhookH); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

package server

import (
	"bigcorp/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func Start(addr string, catalogH *handler.CatalogHandler, cartH *handler.CartHandler, paymentH *handler.PaymentHandler, webhookH *handler.WebhookHandler) error {
	e := New(catalogH, cartH, paymentH, webhookH)
	return e.Start(addr)
}

// New はルート登録済みのechoを作る（テストからも使う）。
func New(catalogH *handler.CatalogHandler, cartH *handler.CartHandler, paymentH *handler.PaymentHandler, webhookH *handler.WebhookHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	catalogH.RegisterRoutes(e)
	cartH.RegisterRoutes(e)
	paymentH.RegisterRoutes(e)
	webhookH.RegisterRoutes(e)

	return e
}

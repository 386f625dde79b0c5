package handler

import (
	"io"
	"net/http"

	"bigcorp/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 決済プロバイダからの非同期通知
type WebhookHandler struct {
	uc *usecase.WebhookUsecase
}

func NewWebhookHandler(uc *usecase.WebhookUsecase) *WebhookHandler {
	return &WebhookHandler{uc: uc}
}

func (h *WebhookHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/payment/webhook/stripe", h.stripe)
}

func (h *WebhookHandler) stripe(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	sig := c.Request().Header.Get("Stripe-Signature")

	if err := h.uc.HandleStripeEvent(c.Request().Context(), payload, sig); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusOK)
}

package handler

import (
	"net/http"

	"bigcorp/internal/middleware"
	"bigcorp/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 配送先・チェックアウト・注文確定のHTTP
type PaymentHandler struct {
	shippingUC *usecase.ShippingUsecase
	checkoutUC *usecase.CheckoutUsecase
	cartUC     *usecase.CartUsecase
}

func NewPaymentHandler(shippingUC *usecase.ShippingUsecase, checkoutUC *usecase.CheckoutUsecase, cartUC *usecase.CartUsecase) *PaymentHandler {
	return &PaymentHandler{
		shippingUC: shippingUC,
		checkoutUC: checkoutUC,
		cartUC:     cartUC,
	}
}

type CompleteOrderRequest struct {
	usecase.ShippingInput
	PaymentMethod string `json:"payment_method"`
}

func (h *PaymentHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("")
	g.Use(middleware.Session())

	g.GET("/shipping", h.getShipping)
	g.POST("/shipping", h.postShipping)
	g.GET("/checkout", h.checkout)
	g.POST("/complete-order", h.completeOrder)
	g.GET("/payment-success", h.paymentSuccess)
	g.GET("/payment-fail", h.paymentFail)
}

func (h *PaymentHandler) getShipping(c echo.Context) error {
	out, err := h.shippingUC.GetShipping(c.Request().Context(), currentUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentHandler) postShipping(c echo.Context) error {
	var req usecase.ShippingInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.shippingUC.SaveShipping(c.Request().Context(), currentUserID(c), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentHandler) checkout(c echo.Context) error {
	out, err := h.checkoutUC.Checkout(c.Request().Context(), middleware.SessionID(c), currentUserID(c), h.cartUC, h.shippingUC)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentHandler) completeOrder(c echo.Context) error {
	var req CompleteOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.checkoutUC.CompleteOrder(c.Request().Context(), middleware.SessionID(c), currentUserID(c), usecase.CompleteOrderInput{
		Shipping:      req.ShippingInput,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return writeError(c, err)
	}

	if out.RedirectURL != "" {
		return c.JSON(http.StatusOK, out)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "order completed"})
}

func (h *PaymentHandler) paymentSuccess(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse{Message: "payment successful"})
}

func (h *PaymentHandler) paymentFail(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse{Message: "payment failed, please try again"})
}

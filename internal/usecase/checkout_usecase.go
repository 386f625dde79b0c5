package usecase

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"bigcorp/internal/cart"
	"bigcorp/internal/domain/model"
	"bigcorp/internal/payment"
	repo "bigcorp/internal/repository"
)

// CheckoutUsecase はカートを注文に確定して決済セッションを作る。
// 注文と明細の作成は1トランザクション、決済セッション作成が失敗したら
// 補償として注文をCANCELEDに落とす。
type CheckoutUsecase struct {
	tx        repo.TransactionManager
	store     cart.Store
	providers *payment.Registry

	//決済プロバイダ呼び出しの上限
	paymentTimeout time.Duration
}

func NewCheckoutUsecase(tx repo.TransactionManager, store cart.Store, providers *payment.Registry, paymentTimeout time.Duration) *CheckoutUsecase {
	return &CheckoutUsecase{
		tx:             tx,
		store:          store,
		providers:      providers,
		paymentTimeout: paymentTimeout,
	}
}

type CompleteOrderInput struct {
	Shipping      ShippingInput
	PaymentMethod string
}

type CompleteOrderOutput struct {
	OrderID int64 `json:"order_id"`
	//ホスト型決済ページ。空なら汎用の成功応答でよい。
	RedirectURL string `json:"redirect_url,omitempty"`
}

// CheckoutSummary は確認画面用のカートと保存済み住所。
type CheckoutSummary struct {
	Cart     CartResponse      `json:"cart"`
	Shipping *ShippingResponse `json:"shipping,omitempty"`
}

func (u *CheckoutUsecase) Checkout(ctx context.Context, sessionID string, userID *int64, cartUC *CartUsecase, shippingUC *ShippingUsecase) (CheckoutSummary, error) {
	cartResp, err := cartUC.GetCart(ctx, sessionID)
	if err != nil {
		return CheckoutSummary{}, err
	}

	out := CheckoutSummary{Cart: cartResp}

	if userID != nil {
		shipping, err := shippingUC.GetShipping(ctx, userID)
		if err == nil {
			out.Shipping = &shipping
		}
	}
	return out, nil
}

func (u *CheckoutUsecase) CompleteOrder(ctx context.Context, sessionID string, userID *int64, in CompleteOrderInput) (CompleteOrderOutput, error) {
	if err := in.Shipping.validate(); err != nil {
		return CompleteOrderOutput{}, err
	}

	provider, err := u.providers.Get(in.PaymentMethod)
	if err != nil {
		return CompleteOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid payment_method")
	}

	c, err := u.store.Load(ctx, sessionID)
	if err != nil {
		return CompleteOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "cart store error")
	}
	if len(c) == 0 {
		return CompleteOrderOutput{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	var created model.Order
	var lineItems []payment.LineItem

	//住所解決＋注文＋明細はトランザクション
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		address, err := u.resolveAddress(ctx, r.Addresses(), userID, in.Shipping)
		if err != nil {
			return err
		}

		//カート各行のスナップショット
		products, err := r.Products().FindByIDs(ctx, c.ProductIDs())
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		byID := make(map[string]model.Product, len(products))
		for _, p := range products {
			byID[cart.Key(p.ID)] = p
		}

		orderItems := make([]model.OrderItem, 0, len(c))
		for key, line := range c {
			p, ok := byID[key]
			if !ok || !p.Available {
				//消えた・非公開の商品が混ざったままでは確定させない
				return NewHTTPError(http.StatusBadRequest, "invalid")
			}

			orderItems = append(orderItems, model.OrderItem{
				ProductID:         p.ID,
				TitleSnapshot:     p.Title,
				UnitPriceSnapshot: line.Price,
				Quantity:          line.Quantity,
				UserID:            userID,
			})

			lineItems = append(lineItems, payment.LineItem{
				ProductID: p.ID,
				Title:     p.Title,
				UnitPrice: line.Price,
				Quantity:  line.Quantity,
			})
		}

		orderID, err := r.Orders().Create(ctx, model.Order{
			UserID:            userID,
			ShippingAddressID: address.ID,
			Status:            model.OrderStatusPending,
			TotalPrice:        c.TotalPrice(),
			Paid:              false,
			PaymentMethod:     in.PaymentMethod,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		created = model.Order{
			ID:                orderID,
			UserID:            userID,
			ShippingAddressID: address.ID,
			Status:            model.OrderStatusPending,
			TotalPrice:        c.TotalPrice(),
			PaymentMethod:     in.PaymentMethod,
		}
		return nil
	})
	if err != nil {
		return CompleteOrderOutput{}, err
	}

	//決済セッション作成（時間上限つき）
	payCtx, cancel := context.WithTimeout(ctx, u.paymentTimeout)
	defer cancel()

	redirectURL, err := provider.CreateSession(payCtx, created, lineItems)
	if err != nil {
		//補償：作った注文をキャンセルに落とす
		u.cancelOrder(ctx, created.ID)
		slog.ErrorContext(ctx, "payment session failed",
			"order_id", created.ID, "provider", provider.Name(), "error", err)
		return CompleteOrderOutput{}, NewHTTPError(http.StatusBadGateway, "payment provider error")
	}

	//確定できたのでカートを空にする
	if err := u.store.Clear(ctx, sessionID); err != nil {
		slog.ErrorContext(ctx, "cart clear failed", "order_id", created.ID, "error", err)
	}

	return CompleteOrderOutput{
		OrderID:     created.ID,
		RedirectURL: redirectURL,
	}, nil
}

// 住所解決。ログインユーザーは既存を上書き、ゲストは毎回新規。
func (u *CheckoutUsecase) resolveAddress(ctx context.Context, addresses repo.AddressRepository, userID *int64, in ShippingInput) (model.ShippingAddress, error) {
	address := model.ShippingAddress{
		UserID:           userID,
		FullName:         in.FullName,
		Email:            in.Email,
		StreetAddress:    in.StreetAddress,
		ApartmentAddress: in.ApartmentAddress,
		City:             in.City,
		Country:          in.Country,
		Zip:              in.Zip,
	}

	if userID != nil {
		existing, err := addresses.FindByUserID(ctx, *userID)
		if err == nil {
			address.ID = existing.ID
			if err := addresses.Update(ctx, address); err != nil {
				return model.ShippingAddress{}, NewHTTPError(http.StatusInternalServerError, "db error")
			}
			return address, nil
		}
		if err != repo.ErrNotFound {
			return model.ShippingAddress{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}

	created, err := addresses.Create(ctx, address)
	if err != nil {
		return model.ShippingAddress{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *CheckoutUsecase) cancelOrder(ctx context.Context, orderID int64) {
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		return r.Orders().UpdateStatus(ctx, orderID, model.OrderStatusCanceled)
	})
	if err != nil {
		slog.ErrorContext(ctx, "order cancel failed", "order_id", orderID, "error", err)
	}
}

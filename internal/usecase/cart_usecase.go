package usecase

import (
	"context"
	"net/http"

	"bigcorp/internal/cart"
	repo "bigcorp/internal/repository"

	"github.com/shopspring/decimal"
)

// CartUsecase は /cart の業務ロジック。
// カート本体はセッションIDをキーに cart.Store へ置く。
type CartUsecase struct {
	store       cart.Store
	productRepo repo.ProductRepository
}

func NewCartUsecase(store cart.Store, productRepo repo.ProductRepository) *CartUsecase {
	return &CartUsecase{
		store:       store,
		productRepo: productRepo,
	}
}

// CartItemResponse は表示用に現在の商品情報を合流させた1行。
// price と total はスナップショット単価から計算する。
type CartItemResponse struct {
	ProductID int64           `json:"product_id"`
	Title     string          `json:"title"`
	Available bool            `json:"available"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
}

type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	Quantity   int64              `json:"quantity"`
	TotalPrice decimal.Decimal    `json:"total_price"`
}

type AddCartInput struct {
	ProductID int64
	Quantity  int64
}

type UpdateCartInput struct {
	ProductID int64
	Quantity  int64
}

// GetCart はカート取得（無ければ空を返す）。
func (u *CartUsecase) GetCart(ctx context.Context, sessionID string) (CartResponse, error) {
	c, err := u.store.Load(ctx, sessionID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "cart store error")
	}
	return u.buildCartResponse(ctx, c)
}

// AddToCart はカートに追加（同一商品は数量加算、単価は現在価格で取り直し）。
func (u *CartUsecase) AddToCart(ctx context.Context, sessionID string, in AddCartInput) (CartResponse, error) {
	if in.ProductID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	//商品チェック（公開のみ）
	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !p.Available {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid")
	}

	c, err := u.store.Load(ctx, sessionID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "cart store error")
	}

	c.Add(p, in.Quantity)

	if err := u.store.Save(ctx, sessionID, c); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "cart store error")
	}
	return u.buildCartResponse(ctx, c)
}

// 数量の上書き（単価スナップショットも取り直す）
func (u *CartUsecase) UpdateCartItem(ctx context.Context, sessionID string, in UpdateCartInput) (CartResponse, error) {
	if in.ProductID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	c, err := u.store.Load(ctx, sessionID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "cart store error")
	}
	if _, ok := c[cart.Key(in.ProductID)]; !ok {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	c.Update(p, in.Quantity)

	if err := u.store.Save(ctx, sessionID, c); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "cart store error")
	}
	return u.buildCartResponse(ctx, c)
}

// 行削除（無い商品なら何もしないで今のカートを返す）
func (u *CartUsecase) DeleteCartItem(ctx context.Context, sessionID string, productID int64) (CartResponse, error) {
	if productID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	c, err := u.store.Load(ctx, sessionID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "cart store error")
	}

	c.Delete(productID)

	if err := u.store.Save(ctx, sessionID, c); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "cart store error")
	}
	return u.buildCartResponse(ctx, c)
}

// 現在の商品情報と合流させてCartResponseを作る。
// 商品が消えたり非公開になった行は表示から外すが、合計はスナップショットで数える。
func (u *CartUsecase) buildCartResponse(ctx context.Context, c cart.Cart) (CartResponse, error) {
	products, err := u.productRepo.FindByIDs(ctx, c.ProductIDs())
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items := make([]CartItemResponse, 0, len(products))
	for _, p := range products {
		line, ok := c[cart.Key(p.ID)]
		if !ok || !p.Available {
			continue
		}

		items = append(items, CartItemResponse{
			ProductID: p.ID,
			Title:     p.Title,
			Available: p.Available,
			Price:     line.Price,
			Quantity:  line.Quantity,
			Total:     line.Price.Mul(decimal.NewFromInt(line.Quantity)),
		})
	}

	return CartResponse{
		Items:      items,
		Quantity:   c.Len(),
		TotalPrice: c.TotalPrice(),
	}, nil
}

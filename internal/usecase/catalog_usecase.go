package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"bigcorp/internal/domain/model"
	repo "bigcorp/internal/repository"

	"github.com/shopspring/decimal"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// CatalogUsecase は商品・カテゴリの公開API。
type CatalogUsecase struct {
	productRepo  repo.ProductRepository
	categoryRepo repo.CategoryRepository
}

func NewCatalogUsecase(productRepo repo.ProductRepository, categoryRepo repo.CategoryRepository) *CatalogUsecase {
	return &CatalogUsecase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

type ProductResponse struct {
	ID         int64           `json:"id"`
	CategoryID int64           `json:"category_id"`
	Title      string          `json:"title"`
	Brand      string          `json:"brand"`
	Slug       string          `json:"slug"`
	Price      decimal.Decimal `json:"price"`
	Available  bool            `json:"available"`
}

type ProductDetailResponse struct {
	ProductResponse
	Description string `json:"description"`
}

type CategoryProductsResponse struct {
	Category struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
		Slug string `json:"slug"`
	} `json:"category"`
	Products []ProductResponse `json:"products"`
}

// 公開商品の一覧
func (u *CatalogUsecase) ListProducts(ctx context.Context) ([]ProductResponse, error) {
	products, err := u.productRepo.ListAvailable(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// スラッグで商品1件
func (u *CatalogUsecase) ProductDetail(ctx context.Context, slug string) (ProductDetailResponse, error) {
	p, err := u.productRepo.FindBySlug(ctx, slug)
	if err == repo.ErrNotFound {
		return ProductDetailResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return ProductDetailResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductDetailResponse{
		ProductResponse: toProductResponse(p),
		Description:     p.Description,
	}, nil
}

// カテゴリのスラッグで商品一覧
func (u *CatalogUsecase) ListByCategory(ctx context.Context, categorySlug string) (CategoryProductsResponse, error) {
	c, err := u.categoryRepo.FindBySlug(ctx, categorySlug)
	if err == repo.ErrNotFound {
		return CategoryProductsResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CategoryProductsResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	products, err := u.productRepo.ListByCategoryID(ctx, c.ID)
	if err != nil {
		return CategoryProductsResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	var out CategoryProductsResponse
	out.Category.ID = c.ID
	out.Category.Name = c.Name
	out.Category.Slug = c.Slug
	out.Products = make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out.Products = append(out.Products, toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p model.Product) ProductResponse {
	return ProductResponse{
		ID:         p.ID,
		CategoryID: p.CategoryID,
		Title:      p.Title,
		Brand:      p.Brand,
		Slug:       p.Slug,
		Price:      p.Price,
		Available:  p.Available,
	}
}

package repository

import (
	"context"
	"errors"

	"bigcorp/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（保存・取得）だけを約束。
// 公開系の取得は available=true の商品だけを返す。
type ProductRepository interface {
	ListAvailable(ctx context.Context) ([]model.Product, error)
	ListByCategoryID(ctx context.Context, categoryID int64) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	FindBySlug(ctx context.Context, slug string) (model.Product, error)
	//複数IDまとめて取得（カート表示用）
	FindByIDs(ctx context.Context, ids []int64) ([]model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
}

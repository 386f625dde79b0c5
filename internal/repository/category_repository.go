package repository

import (
	"context"

	"bigcorp/internal/domain/model"
)

type CategoryRepository interface {
	FindBySlug(ctx context.Context, slug string) (model.Category, error)
	FindByID(ctx context.Context, id int64) (model.Category, error)
	Create(ctx context.Context, c model.Category) (model.Category, error)
}

package repository

import (
	"context"

	"bigcorp/internal/domain/model"
)

// 住所(ShippingAddress)を保存・取得する窓口
type AddressRepository interface {
	//作成後はaddress（IDなどが埋まったもの）を返す
	Create(ctx context.Context, address model.ShippingAddress) (model.ShippingAddress, error)

	//ユーザーの住所を1件取得（観測上ユーザーにつき1件）
	FindByUserID(ctx context.Context, userID int64) (model.ShippingAddress, error)

	FindByID(ctx context.Context, addressID int64) (model.ShippingAddress, error)

	Update(ctx context.Context, address model.ShippingAddress) error
}

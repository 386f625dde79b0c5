package repository

import (
	"context"
	"errors"

	"bigcorp/internal/domain/model"
	repo "bigcorp/internal/repository"

	"gorm.io/gorm"
)

type AddressGormRepository struct {
	db *gorm.DB
}

func NewAddressGormRepository(db *gorm.DB) *AddressGormRepository {
	return &AddressGormRepository{db: db}
}

func (r *AddressGormRepository) Create(ctx context.Context, address model.ShippingAddress) (model.ShippingAddress, error) {
	if err := r.db.WithContext(ctx).Create(&address).Error; err != nil {
		return model.ShippingAddress{}, err
	}
	return address, nil
}

// ユーザーの住所を1件取得（新しいものを優先）
func (r *AddressGormRepository) FindByUserID(ctx context.Context, userID int64) (model.ShippingAddress, error) {
	var a model.ShippingAddress
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id desc").
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ShippingAddress{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ShippingAddress{}, err
	}
	return a, nil
}

func (r *AddressGormRepository) FindByID(ctx context.Context, addressID int64) (model.ShippingAddress, error) {
	var a model.ShippingAddress
	err := r.db.WithContext(ctx).Where("id = ?", addressID).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ShippingAddress{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ShippingAddress{}, err
	}
	return a, nil
}

func (r *AddressGormRepository) Update(ctx context.Context, address model.ShippingAddress) error {
	res := r.db.WithContext(ctx).Model(&model.ShippingAddress{}).
		Where("id = ?", address.ID).
		Updates(map[string]interface{}{
			"full_name":         address.FullName,
			"email":             address.Email,
			"street_address":    address.StreetAddress,
			"apartment_address": address.ApartmentAddress,
			"city":              address.City,
			"country":           address.Country,
			"zip":               address.Zip,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

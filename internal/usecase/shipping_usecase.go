package usecase

import (
	"context"
	"net/http"
	"strings"

	"bigcorp/internal/domain/model"
	repo "bigcorp/internal/repository"
)

// ShippingUsecase は配送先住所の取得・保存。
// ユーザーにつき住所は1件で、あれば上書きする。
type ShippingUsecase struct {
	addressRepo repo.AddressRepository
}

func NewShippingUsecase(addressRepo repo.AddressRepository) *ShippingUsecase {
	return &ShippingUsecase{addressRepo: addressRepo}
}

type ShippingInput struct {
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	StreetAddress    string `json:"street_address"`
	ApartmentAddress string `json:"apartment_address"`
	City             string `json:"city"`
	Country          string `json:"country"`
	Zip              string `json:"zip"`
}

type ShippingResponse struct {
	ID               int64  `json:"id"`
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	StreetAddress    string `json:"street_address"`
	ApartmentAddress string `json:"apartment_address"`
	City             string `json:"city"`
	Country          string `json:"country"`
	Zip              string `json:"zip"`
}

// 必須フィールドの検証。足りなければフィールド名入りの400。
func (in ShippingInput) validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"full_name", in.FullName},
		{"email", in.Email},
		{"street_address", in.StreetAddress},
		{"city", in.City},
		{"country", in.Country},
		{"zip", in.Zip},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return NewHTTPError(http.StatusBadRequest, f.name+" is required")
		}
	}
	if !strings.Contains(in.Email, "@") {
		return NewHTTPError(http.StatusBadRequest, "email is invalid")
	}
	return nil
}

// GetShipping はユーザーの保存済み住所を返す。未ログイン・未登録なら404。
func (u *ShippingUsecase) GetShipping(ctx context.Context, userID *int64) (ShippingResponse, error) {
	if userID == nil {
		return ShippingResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	a, err := u.addressRepo.FindByUserID(ctx, *userID)
	if err == repo.ErrNotFound {
		return ShippingResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return ShippingResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toShippingResponse(a), nil
}

// SaveShipping は住所を保存する。既存があれば上書き、無ければ新規作成。
func (u *ShippingUsecase) SaveShipping(ctx context.Context, userID *int64, in ShippingInput) (ShippingResponse, error) {
	if err := in.validate(); err != nil {
		return ShippingResponse{}, err
	}

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

	//ゲストは毎回新規作成
	if userID == nil {
		created, err := u.addressRepo.Create(ctx, address)
		if err != nil {
			return ShippingResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return toShippingResponse(created), nil
	}

	existing, err := u.addressRepo.FindByUserID(ctx, *userID)
	if err == repo.ErrNotFound {
		created, err := u.addressRepo.Create(ctx, address)
		if err != nil {
			return ShippingResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return toShippingResponse(created), nil
	}
	if err != nil {
		return ShippingResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	address.ID = existing.ID
	if err := u.addressRepo.Update(ctx, address); err != nil {
		return ShippingResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toShippingResponse(address), nil
}

func toShippingResponse(a model.ShippingAddress) ShippingResponse {
	return ShippingResponse{
		ID:               a.ID,
		FullName:         a.FullName,
		Email:            a.Email,
		StreetAddress:    a.StreetAddress,
		ApartmentAddress: a.ApartmentAddress,
		City:             a.City,
		Country:          a.Country,
		Zip:              a.Zip,
	}
}

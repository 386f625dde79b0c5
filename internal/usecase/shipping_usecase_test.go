package usecase

import (
	"context"
	"testing"

	"bigcorp/internal/domain/model"
	repo "bigcorp/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ShippingAddressRepoMock struct{ mock.Mock }

func (m *ShippingAddressRepoMock) Create(ctx context.Context, address model.ShippingAddress) (model.ShippingAddress, error) {
	args := m.Called(ctx, address)
	a, _ := args.Get(0).(model.ShippingAddress)
	return a, args.Error(1)
}

func (m *ShippingAddressRepoMock) FindByUserID(ctx context.Context, userID int64) (model.ShippingAddress, error) {
	args := m.Called(ctx, userID)
	a, _ := args.Get(0).(model.ShippingAddress)
	return a, args.Error(1)
}

func (m *ShippingAddressRepoMock) FindByID(ctx context.Context, addressID int64) (model.ShippingAddress, error) {
	panic("not used in ShippingUsecase tests")
}

func (m *ShippingAddressRepoMock) Update(ctx context.Context, address model.ShippingAddress) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func TestShippingUsecase_SaveShipping_MissingFields(t *testing.T) {
	uc := NewShippingUsecase(new(ShippingAddressRepoMock))

	cases := []struct {
		mutate func(*ShippingInput)
		want   string
	}{
		{func(in *ShippingInput) { in.FullName = "" }, "full_name is required"},
		{func(in *ShippingInput) { in.Email = "" }, "email is required"},
		{func(in *ShippingInput) { in.StreetAddress = "" }, "street_address is required"},
		{func(in *ShippingInput) { in.City = "" }, "city is required"},
		{func(in *ShippingInput) { in.Country = "" }, "country is required"},
		{func(in *ShippingInput) { in.Zip = "" }, "zip is required"},
		{func(in *ShippingInput) { in.Email = "no-at-sign" }, "email is invalid"},
	}

	for _, tc := range cases {
		in := validShipping()
		tc.mutate(&in)

		_, err := uc.SaveShipping(context.Background(), nil, in)
		assertErrContains(t, err, tc.want)
	}
}

func TestShippingUsecase_SaveShipping_GuestAlwaysCreates(t *testing.T) {
	aRepo := new(ShippingAddressRepoMock)
	aRepo.On("Create", mock.Anything, mock.MatchedBy(func(a model.ShippingAddress) bool {
		return a.UserID == nil
	})).Return(model.ShippingAddress{ID: 1, City: "Tokyo"}, nil)

	uc := NewShippingUsecase(aRepo)

	out, err := uc.SaveShipping(context.Background(), nil, validShipping())
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)

	aRepo.AssertNotCalled(t, "FindByUserID", mock.Anything, mock.Anything)
}

func TestShippingUsecase_SaveShipping_UserCreatesWhenAbsent(t *testing.T) {
	userID := int64(9)

	aRepo := new(ShippingAddressRepoMock)
	aRepo.On("FindByUserID", mock.Anything, userID).Return(model.ShippingAddress{}, repo.ErrNotFound)
	aRepo.On("Create", mock.Anything, mock.MatchedBy(func(a model.ShippingAddress) bool {
		return a.UserID != nil && *a.UserID == userID
	})).Return(model.ShippingAddress{ID: 2}, nil)

	uc := NewShippingUsecase(aRepo)

	out, err := uc.SaveShipping(context.Background(), &userID, validShipping())
	require.NoError(t, err)
	assert.Equal(t, int64(2), out.ID)
}

func TestShippingUsecase_SaveShipping_UserOverwritesExisting(t *testing.T) {
	userID := int64(9)

	aRepo := new(ShippingAddressRepoMock)
	aRepo.On("FindByUserID", mock.Anything, userID).Return(model.ShippingAddress{ID: 33, UserID: &userID}, nil)
	aRepo.On("Update", mock.Anything, mock.MatchedBy(func(a model.ShippingAddress) bool {
		return a.ID == 33 && a.FullName == "Taro Yamada"
	})).Return(nil)

	uc := NewShippingUsecase(aRepo)

	out, err := uc.SaveShipping(context.Background(), &userID, validShipping())
	require.NoError(t, err)
	assert.Equal(t, int64(33), out.ID)

	aRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestShippingUsecase_GetShipping_GuestNotFound(t *testing.T) {
	uc := NewShippingUsecase(new(ShippingAddressRepoMock))

	_, err := uc.GetShipping(context.Background(), nil)
	assertErrContains(t, err, "not found")
}

func TestShippingUsecase_GetShipping_ReturnsSaved(t *testing.T) {
	userID := int64(9)

	aRepo := new(ShippingAddressRepoMock)
	aRepo.On("FindByUserID", mock.Anything, userID).Return(model.ShippingAddress{
		ID:       33,
		UserID:   &userID,
		FullName: "Taro Yamada",
		City:     "Tokyo",
	}, nil)

	uc := NewShippingUsecase(aRepo)

	out, err := uc.GetShipping(context.Background(), &userID)
	require.NoError(t, err)
	assert.Equal(t, "Tokyo", out.City)
}

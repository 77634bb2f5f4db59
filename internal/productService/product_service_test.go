package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"listing-service/internal/listingerrors"
	model "listing-service/internal/models"
	"listing-service/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

var (
	seller   = &model.AuthContext{ID: 7}
	stranger = &model.AuthContext{ID: 9}
	admin    = &model.AuthContext{ID: 1, IsAdmin: true}
)

func validInput() model.ProductInput {
	return model.ProductInput{
		Name:          "lamp",
		Description:   "desk lamp",
		PictureURL:    "http://pictures/lamp.png",
		Category:      "Home",
		OriginalPrice: 15,
		EndDate:       time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func storedLamp() model.Product {
	in := validInput()
	return model.Product{
		ID:            3,
		Name:          in.Name,
		Description:   in.Description,
		PictureURL:    in.PictureURL,
		OriginalPrice: in.OriginalPrice,
		Category:      in.Category,
		EndDate:       in.EndDate,
		SellerID:      7,
	}
}

func requireValidationError(t *testing.T, err error) {
	t.Helper()
	require.True(t, errors.Is(err, listingerrors.ErrInvalidInput), "expected invalid input, got: %v", err)
	var vErr *listingerrors.ValidationError
	require.True(t, errors.As(err, &vErr))
	require.Equal(t, listingerrors.RequiredProductFields, vErr.Fields)
}

// Tests CreateProduct
func TestProductService_CreateProduct(t *testing.T) {
	tests := []struct {
		name          string
		caller        *model.AuthContext
		input         model.ProductInput
		mockSetup     func(repo *repository.MockProductStore)
		expectedError error
	}{
		{
			name:   "valid_product",
			caller: seller,
			input:  validInput(),
			mockSetup: func(repo *repository.MockProductStore) {
				want := storedLamp()
				want.ID = 0
				repo.EXPECT().Insert(gomock.Any(), want).Return(storedLamp(), nil)
			},
		},
		{
			name:          "anonymous_caller",
			caller:        nil,
			input:         validInput(),
			mockSetup:     func(repo *repository.MockProductStore) {},
			expectedError: listingerrors.ErrUnauthenticated,
		},
		{
			name:          "anonymous_caller_with_invalid_payload",
			caller:        nil,
			input:         model.ProductInput{},
			mockSetup:     func(repo *repository.MockProductStore) {},
			expectedError: listingerrors.ErrUnauthenticated,
		},
		{
			name:   "missing_name",
			caller: seller,
			input: func() model.ProductInput {
				in := validInput()
				in.Name = ""
				return in
			}(),
			mockSetup:     func(repo *repository.MockProductStore) {},
			expectedError: listingerrors.ErrInvalidInput,
		},
		{
			name:   "missing_end_date",
			caller: seller,
			input: func() model.ProductInput {
				in := validInput()
				in.EndDate = time.Time{}
				return in
			}(),
			mockSetup:     func(repo *repository.MockProductStore) {},
			expectedError: listingerrors.ErrInvalidInput,
		},
		{
			name:   "seller_account_gone",
			caller: seller,
			input:  validInput(),
			mockSetup: func(repo *repository.MockProductStore) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(model.Product{}, listingerrors.ErrUserNotFound)
			},
			expectedError: listingerrors.ErrUnauthenticated,
		},
		{
			name:   "store_failure",
			caller: seller,
			input:  validInput(),
			mockSetup: func(repo *repository.MockProductStore) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(model.Product{}, errors.New("disk full"))
			},
			expectedError: errors.New("disk full"),
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockProductStore(ctrl)
			tc.mockSetup(mockRepo)
			service := NewProductService(mockRepo)

			created, err := service.CreateProduct(context.Background(), tc.caller, tc.input)
			switch {
			case tc.expectedError == nil:
				require.NoError(t, err)
				require.Equal(t, int64(3), created.ID)
				require.Equal(t, seller.ID, created.SellerID)
			case errors.Is(tc.expectedError, listingerrors.ErrInvalidInput):
				requireValidationError(t, err)
			case errors.Is(tc.expectedError, listingerrors.ErrUnauthenticated):
				require.True(t, errors.Is(err, listingerrors.ErrUnauthenticated), "got: %v", err)
			default:
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.expectedError.Error())
			}
		})
	}
}

// Tests UpdateProduct
func TestProductService_UpdateProduct(t *testing.T) {
	replacement := validInput()
	replacement.Name = "floor lamp"
	replacement.OriginalPrice = 30

	updated := storedLamp()
	updated.Name = "floor lamp"
	updated.OriginalPrice = 30

	tests := []struct {
		name          string
		caller        *model.AuthContext
		productID     int64
		input         model.ProductInput
		mockSetup     func(repo *repository.MockProductStore)
		expectedError error
	}{
		{
			name:      "seller_updates",
			caller:    seller,
			productID: 3,
			input:     replacement,
			mockSetup: func(repo *repository.MockProductStore) {
				repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(storedLamp(), nil)
				repo.EXPECT().ReplaceFields(gomock.Any(), int64(3), replacement).Return(updated, nil)
			},
		},
		{
			name:      "admin_updates",
			caller:    admin,
			productID: 3,
			input:     replacement,
			mockSetup: func(repo *repository.MockProductStore) {
				repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(storedLamp(), nil)
				repo.EXPECT().ReplaceFields(gomock.Any(), int64(3), replacement).Return(updated, nil)
			},
		},
		{
			name:          "anonymous_caller",
			caller:        nil,
			productID:     3,
			input:         replacement,
			mockSetup:     func(repo *repository.MockProductStore) {},
			expectedError: listingerrors.ErrUnauthenticated,
		},
		{
			name:      "unknown_product",
			caller:    admin,
			productID: 4321,
			input:     replacement,
			mockSetup: func(repo *repository.MockProductStore) {
				repo.EXPECT().FindByID(gomock.Any(), int64(4321)).Return(model.Product{}, listingerrors.ErrProductNotFound)
			},
			expectedError: listingerrors.ErrProductNotFound,
		},
		{
			name:      "unknown_product_with_invalid_payload",
			caller:    seller,
			productID: 4321,
			input:     model.ProductInput{},
			mockSetup: func(repo *repository.MockProductStore) {
				repo.EXPECT().FindByID(gomock.Any(), int64(4321)).Return(model.Product{}, listingerrors.ErrProductNotFound)
			},
			expectedError: listingerrors.ErrProductNotFound,
		},
		{
			name:      "stranger_forbidden",
			caller:    stranger,
			productID: 3,
			input:     replacement,
			mockSetup: func(repo *repository.MockProductStore) {
				repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(storedLamp(), nil)
			},
			expectedError: listingerrors.ErrForbidden,
		},
		{
			name:      "stranger_with_invalid_payload_is_forbidden_first",
			caller:    stranger,
			productID: 3,
			input:     model.ProductInput{Name: "x"},
			mockSetup: func(repo *repository.MockProductStore) {
				repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(storedLamp(), nil)
			},
			expectedError: listingerrors.ErrForbidden,
		},
		{
			name:      "partial_payload",
			caller:    seller,
			productID: 3,
			input:     model.ProductInput{Name: "floor lamp"},
			mockSetup: func(repo *repository.MockProductStore) {
				repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(storedLamp(), nil)
			},
			expectedError: listingerrors.ErrInvalidInput,
		},
		{
			name:      "deleted_between_load_and_write",
			caller:    seller,
			productID: 3,
			input:     replacement,
			mockSetup: func(repo *repository.MockProductStore) {
				repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(storedLamp(), nil)
				repo.EXPECT().ReplaceFields(gomock.Any(), int64(3), replacement).Return(model.Product{}, listingerrors.ErrProductNotFound)
			},
			expectedError: listingerrors.ErrProductNotFound,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockProductStore(ctrl)
			tc.mockSetup(mockRepo)
			service := NewProductService(mockRepo)

			got, err := service.UpdateProduct(context.Background(), tc.caller, tc.productID, tc.input)
			if tc.expectedError != nil {
				if errors.Is(tc.expectedError, listingerrors.ErrInvalidInput) {
					requireValidationError(t, err)
					return
				}
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, "floor lamp", got.Name)
			require.Equal(t, 30.0, got.OriginalPrice)
			require.Equal(t, int64(7), got.SellerID)
		})
	}
}

// Tests DeleteProduct
func TestProductService_DeleteProduct(t *testing.T) {
	tests := []struct {
		name          string
		caller        *model.AuthContext
		productID     int64
		mockSetup     func(repo *repository.MockProductStore)
		expectedError error
	}{
		{
			name:      "seller_deletes",
			caller:    seller,
			productID: 3,
			mockSetup: func(repo *repository.MockProductStore) {
				repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(storedLamp(), nil)
				repo.EXPECT().Remove(gomock.Any(), int64(3)).Return(nil)
			},
		},
		{
			name:      "admin_deletes",
			caller:    admin,
			productID: 3,
			mockSetup: func(repo *repository.MockProductStore) {
				repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(storedLamp(), nil)
				repo.EXPECT().Remove(gomock.Any(), int64(3)).Return(nil)
			},
		},
		{
			name:          "anonymous_caller",
			caller:        nil,
			productID:     3,
			mockSetup:     func(repo *repository.MockProductStore) {},
			expectedError: listingerrors.ErrUnauthenticated,
		},
		{
			name:      "unknown_product",
			caller:    seller,
			productID: 4321,
			mockSetup: func(repo *repository.MockProductStore) {
				repo.EXPECT().FindByID(gomock.Any(), int64(4321)).Return(model.Product{}, listingerrors.ErrProductNotFound)
			},
			expectedError: listingerrors.ErrProductNotFound,
		},
		{
			name:      "stranger_forbidden",
			caller:    stranger,
			productID: 3,
			mockSetup: func(repo *repository.MockProductStore) {
				repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(storedLamp(), nil)
			},
			expectedError: listingerrors.ErrForbidden,
		},
		{
			name:      "deleted_concurrently",
			caller:    seller,
			productID: 3,
			mockSetup: func(repo *repository.MockProductStore) {
				repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(storedLamp(), nil)
				repo.EXPECT().Remove(gomock.Any(), int64(3)).Return(listingerrors.ErrProductNotFound)
			},
			expectedError: listingerrors.ErrProductNotFound,
		},
		{
			name:      "store_failure_on_load",
			caller:    seller,
			productID: 3,
			mockSetup: func(repo *repository.MockProductStore) {
				repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(model.Product{}, errors.New("timeout"))
			},
			expectedError: errors.New("timeout"),
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockProductStore(ctrl)
			tc.mockSetup(mockRepo)
			service := NewProductService(mockRepo)

			err := service.DeleteProduct(context.Background(), tc.caller, tc.productID)
			if tc.expectedError == nil {
				require.NoError(t, err)
				return
			}
			if errors.Is(err, tc.expectedError) {
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.expectedError.Error())
		})
	}
}

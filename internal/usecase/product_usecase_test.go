package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ihsanbank/core/internal/domain"
	"github.com/ihsanbank/core/internal/usecase"
	"github.com/ihsanbank/core/internal/usecase/mocks"
)

func TestProductUseCase_CreateProduct(t *testing.T) {
	tests := []struct {
		name        string
		input       usecase.CreateProductInput
		expectError error
	}{
		{
			name: "wadiah product",
			input: usecase.CreateProductInput{
				Code:          "WAD-01",
				Name:          "Wadiah Basic",
				Type:          domain.ProductTypeWadiah,
				ProfitSharing: domain.ProfitSharingNone,
			},
		},
		{
			name: "mudharabah with valid nisbah",
			input: usecase.CreateProductInput{
				Code:           "MUD-01",
				Name:           "Mudharabah Savings",
				Type:           domain.ProductTypeMudharabah,
				ProfitSharing:  domain.ProfitSharingRevenue,
				CustomerNisbah: "0.6",
				BankNisbah:     "0.4",
			},
		},
		{
			name: "wadiah cannot share profit",
			input: usecase.CreateProductInput{
				Code:          "WAD-02",
				Name:          "Wadiah Plus",
				Type:          domain.ProductTypeWadiah,
				ProfitSharing: domain.ProfitSharingRevenue,
			},
			expectError: domain.ErrProfitSharingNotAllowed,
		},
		{
			name: "mudharabah nisbah must sum to one",
			input: usecase.CreateProductInput{
				Code:           "MUD-02",
				Name:           "Mudharabah Broken",
				Type:           domain.ProductTypeMudharabah,
				ProfitSharing:  domain.ProfitSharingProfitLoss,
				CustomerNisbah: "0.6",
				BankNisbah:     "0.5",
			},
			expectError: domain.ErrInvalidNisbah,
		},
		{
			name: "unparseable nisbah",
			input: usecase.CreateProductInput{
				Code:           "MUD-03",
				Name:           "Mudharabah Broken",
				Type:           domain.ProductTypeMudharabah,
				ProfitSharing:  domain.ProfitSharingRevenue,
				CustomerNisbah: "most of it",
				BankNisbah:     "the rest",
			},
			expectError: domain.ErrInvalidNisbah,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cache := mocks.NewMockCache(ctrl)

			uc := usecase.NewProductUseCase(mocks.NewMockProductRepository(), cache, mocks.NewMockIDGenerator())

			product, err := uc.CreateProduct(context.Background(), tt.input)

			if tt.expectError != nil {
				require.ErrorIs(t, err, tt.expectError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.input.Code, product.Code)
		})
	}
}

func TestProductUseCase_GetProductByCode(t *testing.T) {
	t.Run("cache hit skips the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := mocks.NewMockCache(ctrl)
		productRepo := mocks.NewMockProductRepository()

		cached, err := json.Marshal(&domain.Product{ID: "prod-1", Code: "WAD-01", Name: "Wadiah Basic"})
		require.NoError(t, err)

		cache.EXPECT().Get(gomock.Any(), "product:code:WAD-01").Return(string(cached), nil)

		productRepo.GetByCodeFunc = func(ctx context.Context, code string) (*domain.Product, error) {
			t.Fatal("repository consulted on cache hit")
			return nil, nil
		}

		uc := usecase.NewProductUseCase(productRepo, cache, mocks.NewMockIDGenerator())

		product, err := uc.GetProductByCode(context.Background(), "WAD-01")
		require.NoError(t, err)
		assert.Equal(t, "prod-1", product.ID)
	})

	t.Run("cache miss reads through and populates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := mocks.NewMockCache(ctrl)
		productRepo := mocks.NewMockProductRepository()

		productRepo.Create(context.Background(), &domain.Product{ID: "prod-1", Code: "WAD-01"})

		cache.EXPECT().Get(gomock.Any(), "product:code:WAD-01").Return("", errors.New("not found"))
		cache.EXPECT().Set(gomock.Any(), "product:code:WAD-01", gomock.Any(), usecase.ProductCacheTTL).Return(nil)

		uc := usecase.NewProductUseCase(productRepo, cache, mocks.NewMockIDGenerator())

		product, err := uc.GetProductByCode(context.Background(), "WAD-01")
		require.NoError(t, err)
		assert.Equal(t, "prod-1", product.ID)
	})

	t.Run("cache write failure does not fail the read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := mocks.NewMockCache(ctrl)
		productRepo := mocks.NewMockProductRepository()

		productRepo.Create(context.Background(), &domain.Product{ID: "prod-1", Code: "WAD-01"})

		cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", errors.New("redis down"))
		cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		uc := usecase.NewProductUseCase(productRepo, cache, mocks.NewMockIDGenerator())

		product, err := uc.GetProductByCode(context.Background(), "WAD-01")
		require.NoError(t, err)
		assert.Equal(t, "prod-1", product.ID)
	})

	t.Run("unknown code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := mocks.NewMockCache(ctrl)

		cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", errors.New("not found"))

		uc := usecase.NewProductUseCase(mocks.NewMockProductRepository(), cache, mocks.NewMockIDGenerator())

		_, err := uc.GetProductByCode(context.Background(), "NOPE")
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ihsanbank/core/internal/domain"
)

// ProductUseCase handles deposit product configuration. Reads go through
// the cache; products change rarely but are consulted on every account
// opening.
type ProductUseCase struct {
	productRepo ProductRepository
	cache       Cache
	idGen       IDGenerator
}

// NewProductUseCase creates a new ProductUseCase.
func NewProductUseCase(productRepo ProductRepository, cache Cache, idGen IDGenerator) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		cache:       cache,
		idGen:       idGen,
	}
}

// CreateProductInput represents input for creating a product.
type CreateProductInput struct {
	Code           string
	Name           string
	Type           domain.ProductType
	ProfitSharing  domain.ProfitSharingType
	CustomerNisbah string
	BankNisbah     string
}

// CreateProduct validates the type / profit-sharing pairing against the
// rule table and stores the product.
func (uc *ProductUseCase) CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	customerNisbah, bankNisbah, err := parseNisbah(input.CustomerNisbah, input.BankNisbah)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	product := &domain.Product{
		ID:             uc.idGen.Generate(),
		Code:           input.Code,
		Name:           input.Name,
		Type:           input.Type,
		ProfitSharing:  input.ProfitSharing,
		CustomerNisbah: customerNisbah,
		BankNisbah:     bankNisbah,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProductByCode retrieves a product by its code, cache first.
func (uc *ProductUseCase) GetProductByCode(ctx context.Context, code string) (*domain.Product, error) {
	cacheKey := "product:code:" + code

	if cached, err := uc.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		var product domain.Product
		if err := json.Unmarshal([]byte(cached), &product); err == nil {
			return &product, nil
		}
	}

	product, err := uc.productRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(product); err == nil {
		// Cache write failures only cost the next lookup a query.
		_ = uc.cache.Set(ctx, cacheKey, string(encoded), ProductCacheTTL)
	}

	return product, nil
}

// GetProduct retrieves a product by id.
func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

// ListProducts lists all products.
func (uc *ProductUseCase) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return uc.productRepo.List(ctx)
}

func parseNisbah(customer, bank string) (decimal.Decimal, decimal.Decimal, error) {
	if customer == "" && bank == "" {
		return decimal.Zero, decimal.Zero, nil
	}

	c, err := decimal.NewFromString(customer)
	if err != nil {
		return decimal.Zero, decimal.Zero, domain.ErrInvalidNisbah
	}

	b, err := decimal.NewFromString(bank)
	if err != nil {
		return decimal.Zero, decimal.Zero, domain.ErrInvalidNisbah
	}

	return c, b, nil
}

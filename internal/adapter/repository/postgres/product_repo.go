package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ihsanbank/core/internal/domain"
)

const productColumns = `id, code, name, type, profit_sharing, customer_nisbah, bank_nisbah, created_at, updated_at`

// ProductRepository implements usecase.ProductRepository.
type ProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// Create inserts a new product.
func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		product.ID,
		product.Code,
		product.Name,
		product.Type,
		product.ProfitSharing,
		decimalToNumeric(product.CustomerNisbah),
		decimalToNumeric(product.BankNisbah),
		product.CreatedAt,
		product.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateNumber
	}

	return err
}

// GetByID retrieves a product by ID.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	return scanProduct(r.pool.QueryRow(ctx, query, id))
}

// GetByCode retrieves a product by its code.
func (r *ProductRepository) GetByCode(ctx context.Context, code string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE code = $1`

	return scanProduct(r.pool.QueryRow(ctx, query, code))
}

// List retrieves all products.
func (r *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY code`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		product, err := scanProductRow(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	product, err := scanProductRow(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return product, nil
}

func scanProductRow(row pgx.Row) (*domain.Product, error) {
	var product domain.Product
	var customerNisbah, bankNisbah pgtype.Numeric

	err := row.Scan(
		&product.ID,
		&product.Code,
		&product.Name,
		&product.Type,
		&product.ProfitSharing,
		&customerNisbah,
		&bankNisbah,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	product.CustomerNisbah = numericToDecimal(customerNisbah)
	product.BankNisbah = numericToDecimal(bankNisbah)

	return &product, nil
}

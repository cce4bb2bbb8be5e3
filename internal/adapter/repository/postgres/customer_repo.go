package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ihsanbank/core/internal/domain"
	"github.com/ihsanbank/core/internal/usecase"
)

const customerColumns = `id, customer_number, kind, status, email, phone, branch_code, personal_details, corporate_details, created_at, updated_at`

// CustomerRepository implements usecase.CustomerRepository. The variant
// payloads are stored as JSONB; only one of the two columns is non-null.
type CustomerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository creates a new CustomerRepository.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

// Create inserts a new customer.
func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	var personalJSON, corporateJSON []byte
	var err error

	if customer.Personal != nil {
		personalJSON, err = json.Marshal(customer.Personal)
		if err != nil {
			return err
		}
	}

	if customer.Corporate != nil {
		corporateJSON, err = json.Marshal(customer.Corporate)
		if err != nil {
			return err
		}
	}

	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = r.pool.Exec(ctx, query,
		customer.ID,
		customer.CustomerNumber,
		customer.Kind,
		customer.Status,
		customer.Email,
		customer.Phone,
		customer.BranchCode,
		personalJSON,
		corporateJSON,
		customer.CreatedAt,
		customer.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateNumber
	}

	return err
}

// GetByID retrieves a customer by ID.
func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	customer, err := scanCustomerRow(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}

	return customer, nil
}

// UpdateStatus updates the lifecycle status of a customer.
func (r *CustomerRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, id string, status domain.CustomerStatus, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		UPDATE customers
		SET status = $2, updated_at = $3
		WHERE id = $1
	`

	_, err := pgxTx.Exec(ctx, query, id, status, updatedAt)
	return err
}

// List retrieves customers with pagination.
func (r *CustomerRepository) List(ctx context.Context, limit, offset int) ([]*domain.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*domain.Customer
	for rows.Next() {
		customer, err := scanCustomerRow(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}

	return customers, rows.Err()
}

func scanCustomerRow(row pgx.Row) (*domain.Customer, error) {
	var customer domain.Customer
	var personalJSON, corporateJSON []byte

	err := row.Scan(
		&customer.ID,
		&customer.CustomerNumber,
		&customer.Kind,
		&customer.Status,
		&customer.Email,
		&customer.Phone,
		&customer.BranchCode,
		&personalJSON,
		&corporateJSON,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if personalJSON != nil {
		customer.Personal = &domain.PersonalDetails{}
		if err := json.Unmarshal(personalJSON, customer.Personal); err != nil {
			return nil, err
		}
	}

	if corporateJSON != nil {
		customer.Corporate = &domain.CorporateDetails{}
		if err := json.Unmarshal(corporateJSON, customer.Corporate); err != nil {
			return nil, err
		}
	}

	return &customer, nil
}

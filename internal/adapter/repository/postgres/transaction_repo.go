package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ihsanbank/core/internal/domain"
	"github.com/ihsanbank/core/internal/usecase"
)

const transactionColumns = `id, transaction_number, account_id, counterparty_account_id, type, amount, balance_before, balance_after, channel, description, reference_number, created_by, created_at`

// TransactionRepository implements usecase.TransactionRepository. The
// table is insert-only; there are no update or delete paths.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// Create inserts a transaction record within an existing transaction.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Transaction, record *domain.Transaction) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := pgxTx.Exec(ctx, query,
		record.ID,
		record.TransactionNumber,
		record.AccountID,
		record.CounterpartyAccountID,
		record.Type,
		decimalToNumeric(record.Amount),
		decimalToNumeric(record.BalanceBefore),
		decimalToNumeric(record.BalanceAfter),
		record.Channel,
		record.Description,
		record.ReferenceNumber,
		record.CreatedBy,
		record.CreatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateNumber
	}

	return err
}

// GetByID retrieves a transaction record by ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	record, err := scanTransactionRow(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}

	return record, nil
}

// ListByAccount lists an account's records, newest first.
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE account_id = $1
		ORDER BY created_at DESC, transaction_number DESC
		LIMIT $2 OFFSET $3
	`

	return r.list(ctx, query, accountID, limit, offset)
}

// ListByReference lists all legs sharing a transfer reference.
func (r *TransactionRepository) ListByReference(ctx context.Context, referenceNumber string) ([]*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE reference_number = $1
		ORDER BY transaction_number
	`

	return r.list(ctx, query, referenceNumber)
}

func (r *TransactionRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.Transaction
	for rows.Next() {
		record, err := scanTransactionRow(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

func scanTransactionRow(row pgx.Row) (*domain.Transaction, error) {
	var record domain.Transaction
	var amount, balanceBefore, balanceAfter pgtype.Numeric

	err := row.Scan(
		&record.ID,
		&record.TransactionNumber,
		&record.AccountID,
		&record.CounterpartyAccountID,
		&record.Type,
		&amount,
		&balanceBefore,
		&balanceAfter,
		&record.Channel,
		&record.Description,
		&record.ReferenceNumber,
		&record.CreatedBy,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Amount = numericToDecimal(amount)
	record.BalanceBefore = numericToDecimal(balanceBefore)
	record.BalanceAfter = numericToDecimal(balanceAfter)

	return &record, nil
}

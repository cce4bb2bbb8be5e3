package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// LedgerRepository implements usecase.LedgerRepository.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// CheckConsistency sums all account balances and all signed transaction
// amounts in one query so both totals come from the same snapshot.
func (r *LedgerRepository) CheckConsistency(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(balance) FROM accounts), 0) AS total_balance,
			COALESCE((
				SELECT SUM(
					CASE WHEN type IN ('WITHDRAWAL', 'TRANSFER_OUT')
						THEN -amount
						ELSE amount
					END
				)
				FROM transactions
			), 0) AS total_recorded
	`

	var totalBalance, totalRecorded pgtype.Numeric
	if err := r.pool.QueryRow(ctx, query).Scan(&totalBalance, &totalRecorded); err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return numericToDecimal(totalBalance), numericToDecimal(totalRecorded), nil
}

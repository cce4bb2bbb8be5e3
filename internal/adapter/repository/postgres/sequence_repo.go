package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ihsanbank/core/internal/domain"
	"github.com/ihsanbank/core/internal/usecase"
)

// SequenceRepository implements usecase.SequenceRepository. Counters are
// created lazily on first use and read with FOR UPDATE, so a number can
// only be minted while holding the counter's row lock.
type SequenceRepository struct {
	pool *pgxpool.Pool
}

// NewSequenceRepository creates a new SequenceRepository.
func NewSequenceRepository(pool *pgxpool.Pool) *SequenceRepository {
	return &SequenceRepository{pool: pool}
}

// GetForUpdate locks and returns the named counter, creating it at zero
// if it does not exist yet.
func (r *SequenceRepository) GetForUpdate(ctx context.Context, tx usecase.Transaction, name string) (*domain.SequenceCounter, error) {
	pgxTx := tx.(*Tx).PgxTx()

	insert := `
		INSERT INTO sequence_counters (name, last_value, prefix, created_at, updated_at)
		VALUES ($1, 0, '', now(), now())
		ON CONFLICT (name) DO NOTHING
	`

	if _, err := pgxTx.Exec(ctx, insert, name); err != nil {
		return nil, err
	}

	query := `
		SELECT name, last_value, prefix, created_at, updated_at
		FROM sequence_counters
		WHERE name = $1
		FOR UPDATE
	`

	var counter domain.SequenceCounter
	err := pgxTx.QueryRow(ctx, query, name).Scan(
		&counter.Name,
		&counter.LastValue,
		&counter.Prefix,
		&counter.CreatedAt,
		&counter.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &counter, nil
}

// SetValue persists a counter's new last issued value.
func (r *SequenceRepository) SetValue(ctx context.Context, tx usecase.Transaction, name string, value int64, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		UPDATE sequence_counters
		SET last_value = $2, updated_at = $3
		WHERE name = $1
	`

	_, err := pgxTx.Exec(ctx, query, name, value, updatedAt)
	return err
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ihsanbank/core/internal/domain"
	"github.com/ihsanbank/core/internal/usecase"
)

const approvalColumns = `id, entity_type, entity_id, request_type, status, branch_code, requested_by, requested_at, reviewed_by, reviewed_at, review_notes`

// ApprovalRepository implements usecase.ApprovalRepository. A partial
// unique index on (entity_type, entity_id) WHERE status = 'PENDING'
// enforces the single-pending rule even under concurrent submits.
type ApprovalRepository struct {
	pool *pgxpool.Pool
}

// NewApprovalRepository creates a new ApprovalRepository.
func NewApprovalRepository(pool *pgxpool.Pool) *ApprovalRepository {
	return &ApprovalRepository{pool: pool}
}

// Create inserts a new approval request.
func (r *ApprovalRepository) Create(ctx context.Context, req *domain.ApprovalRequest) error {
	query := `
		INSERT INTO approval_requests (` + approvalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		req.ID,
		req.EntityType,
		req.EntityID,
		req.RequestType,
		req.Status,
		req.BranchCode,
		req.RequestedBy,
		req.RequestedAt,
		req.ReviewedBy,
		req.ReviewedAt,
		req.ReviewNotes,
	)
	if isUniqueViolation(err) {
		return domain.ErrDuplicatePendingRequest
	}

	return err
}

// GetByID retrieves an approval request by ID.
func (r *ApprovalRepository) GetByID(ctx context.Context, id string) (*domain.ApprovalRequest, error) {
	query := `SELECT ` + approvalColumns + ` FROM approval_requests WHERE id = $1`

	return scanApproval(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate retrieves an approval request with a FOR UPDATE lock,
// so two checkers cannot review the same request at once.
func (r *ApprovalRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.ApprovalRequest, error) {
	pgxTx := tx.(*Tx).PgxTx()

	query := `SELECT ` + approvalColumns + ` FROM approval_requests WHERE id = $1 FOR UPDATE`

	return scanApproval(pgxTx.QueryRow(ctx, query, id))
}

// HasPending reports whether a pending request exists for the entity.
func (r *ApprovalRepository) HasPending(ctx context.Context, entityType domain.EntityType, entityID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM approval_requests
			WHERE entity_type = $1 AND entity_id = $2 AND status = 'PENDING'
		)
	`

	var exists bool
	err := r.pool.QueryRow(ctx, query, entityType, entityID).Scan(&exists)
	return exists, err
}

// UpdateReview persists the terminal review fields.
func (r *ApprovalRepository) UpdateReview(ctx context.Context, tx usecase.Transaction, req *domain.ApprovalRequest) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		UPDATE approval_requests
		SET status = $2, reviewed_by = $3, reviewed_at = $4, review_notes = $5
		WHERE id = $1
	`

	_, err := pgxTx.Exec(ctx, query,
		req.ID,
		req.Status,
		req.ReviewedBy,
		req.ReviewedAt,
		req.ReviewNotes,
	)

	return err
}

// ListPending lists pending requests, oldest first, with optional
// entity-type, branch and requester filters.
func (r *ApprovalRepository) ListPending(ctx context.Context, filter usecase.ApprovalFilter) ([]*domain.ApprovalRequest, error) {
	query := `
		SELECT ` + approvalColumns + `
		FROM approval_requests
		WHERE status = 'PENDING'
	`
	args := []any{}

	if filter.EntityType != nil {
		args = append(args, *filter.EntityType)
		query += fmt.Sprintf(` AND entity_type = $%d`, len(args))
	}

	if filter.BranchCode != nil {
		args = append(args, *filter.BranchCode)
		query += fmt.Sprintf(` AND branch_code = $%d`, len(args))
	}

	if filter.RequestedBy != nil {
		args = append(args, *filter.RequestedBy)
		query += fmt.Sprintf(` AND requested_by = $%d`, len(args))
	}

	query += ` ORDER BY requested_at ASC`

	args = append(args, filter.Limit)
	query += fmt.Sprintf(` LIMIT $%d`, len(args))

	args = append(args, filter.Offset)
	query += fmt.Sprintf(` OFFSET $%d`, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*domain.ApprovalRequest
	for rows.Next() {
		req, err := scanApprovalRow(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

func scanApproval(row pgx.Row) (*domain.ApprovalRequest, error) {
	req, err := scanApprovalRow(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrApprovalNotFound
	}
	if err != nil {
		return nil, err
	}

	return req, nil
}

func scanApprovalRow(row pgx.Row) (*domain.ApprovalRequest, error) {
	var req domain.ApprovalRequest

	err := row.Scan(
		&req.ID,
		&req.EntityType,
		&req.EntityID,
		&req.RequestType,
		&req.Status,
		&req.BranchCode,
		&req.RequestedBy,
		&req.RequestedAt,
		&req.ReviewedBy,
		&req.ReviewedAt,
		&req.ReviewNotes,
	)
	if err != nil {
		return nil, err
	}

	return &req, nil
}

package usecase

import (
	"context"
	"time"

	"github.com/ihsanbank/core/internal/domain"
	"github.com/ihsanbank/core/internal/infrastructure/metrics"
)

// SequenceUseCase mints human-readable identifiers from named counters.
// Every increment happens under the counter row's exclusive lock; a value
// is only handed out once its reservation has committed.
type SequenceUseCase struct {
	txManager TransactionManager
	seqRepo   SequenceRepository
	metrics   *metrics.Metrics
}

// NewSequenceUseCase creates a new SequenceUseCase.
func NewSequenceUseCase(txManager TransactionManager, seqRepo SequenceRepository, metrics *metrics.Metrics) *SequenceUseCase {
	return &SequenceUseCase{
		txManager: txManager,
		seqRepo:   seqRepo,
		metrics:   metrics,
	}
}

// Next issues the next identifier for a named counter in its own unit of
// work. An explicit prefix overrides the one stored on the counter row.
func (uc *SequenceUseCase) Next(ctx context.Context, name, prefix string) (string, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer tx.Rollback(ctx)

	value, err := uc.NextInTx(ctx, tx, name, prefix)
	if err != nil {
		return "", err
	}

	if err := tx.Commit(ctx); err != nil {
		return "", err
	}

	return value, nil
}

// NextInTx issues the next identifier inside an existing transaction, so
// ledger operations can mint numbers within their own atomic scope.
func (uc *SequenceUseCase) NextInTx(ctx context.Context, tx Transaction, name, prefix string) (string, error) {
	counter, err := uc.seqRepo.GetForUpdate(ctx, tx, name)
	if err != nil {
		return "", err
	}

	next := counter.LastValue + 1
	if err := uc.seqRepo.SetValue(ctx, tx, name, next, time.Now().UTC()); err != nil {
		return "", err
	}

	if prefix == "" {
		prefix = counter.Prefix
	}

	if uc.metrics != nil {
		uc.metrics.SequencesIssued.WithLabelValues(name).Inc()
	}

	return domain.FormatSequence(prefix, next), nil
}

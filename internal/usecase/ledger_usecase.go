package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ihsanbank/core/internal/infrastructure/metrics"
)

// LedgerUseCase exposes ledger-wide integrity checks.
type LedgerUseCase struct {
	ledgerRepo LedgerRepository
	metrics    *metrics.Metrics
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(ledgerRepo LedgerRepository, metrics *metrics.Metrics) *LedgerUseCase {
	return &LedgerUseCase{ledgerRepo: ledgerRepo, metrics: metrics}
}

// ConsistencyReport compares live balances against the transaction log.
type ConsistencyReport struct {
	Consistent    bool            `json:"consistent"`
	TotalBalance  decimal.Decimal `json:"total_balance"`
	TotalRecorded decimal.Decimal `json:"total_recorded"`
}

// CheckConsistency sums all account balances and all signed transaction
// amounts. Accounts open at zero and every mutation writes a record, so
// the two totals must agree; a mismatch means a half-applied operation.
func (uc *LedgerUseCase) CheckConsistency(ctx context.Context) (*ConsistencyReport, error) {
	totalBalance, totalRecorded, err := uc.ledgerRepo.CheckConsistency(ctx)
	if err != nil {
		return nil, err
	}

	consistent := totalBalance.Equal(totalRecorded)

	if uc.metrics != nil {
		result := "consistent"
		if !consistent {
			result = "inconsistent"
		}
		uc.metrics.ConsistencyChecks.WithLabelValues(result).Inc()
	}

	return &ConsistencyReport{
		Consistent:    consistent,
		TotalBalance:  totalBalance,
		TotalRecorded: totalRecorded,
	}, nil
}

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ihsanbank/core/internal/usecase"
	"github.com/ihsanbank/core/internal/usecase/mocks"
)

func TestLedgerUseCase_CheckConsistency(t *testing.T) {
	t.Run("balances match the transaction log", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ledgerRepo := mocks.NewMockLedgerRepository(ctrl)

		total := decimal.NewFromInt(12500)
		ledgerRepo.EXPECT().CheckConsistency(gomock.Any()).Return(total, total, nil)

		uc := usecase.NewLedgerUseCase(ledgerRepo, nil)

		report, err := uc.CheckConsistency(context.Background())
		require.NoError(t, err)
		assert.True(t, report.Consistent)
		assert.True(t, report.TotalBalance.Equal(total))
	})

	t.Run("mismatch is reported, not hidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ledgerRepo := mocks.NewMockLedgerRepository(ctrl)

		ledgerRepo.EXPECT().CheckConsistency(gomock.Any()).
			Return(decimal.NewFromInt(12500), decimal.NewFromInt(12400), nil)

		uc := usecase.NewLedgerUseCase(ledgerRepo, nil)

		report, err := uc.CheckConsistency(context.Background())
		require.NoError(t, err)
		assert.False(t, report.Consistent)
	})

	t.Run("store error surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ledgerRepo := mocks.NewMockLedgerRepository(ctrl)

		storeErr := errors.New("connection reset")
		ledgerRepo.EXPECT().CheckConsistency(gomock.Any()).
			Return(decimal.Zero, decimal.Zero, storeErr)

		uc := usecase.NewLedgerUseCase(ledgerRepo, nil)

		_, err := uc.CheckConsistency(context.Background())
		assert.ErrorIs(t, err, storeErr)
	})
}

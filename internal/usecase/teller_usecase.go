package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ihsanbank/core/internal/domain"
	"github.com/ihsanbank/core/internal/infrastructure/metrics"
)

// TellerUseCase handles single-account ledger operations (deposit,
// withdrawal). Each operation locks the account row, mutates the balance
// and writes its transaction record within one unit of work.
type TellerUseCase struct {
	txManager       TransactionManager
	accountRepo     AccountRepository
	transactionRepo TransactionRepository
	sequences       *SequenceUseCase
	idGen           IDGenerator
	retrier         Retrier
	metrics         *metrics.Metrics
}

// NewTellerUseCase creates a new TellerUseCase.
func NewTellerUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	transactionRepo TransactionRepository,
	sequences *SequenceUseCase,
	idGen IDGenerator,
	retrier Retrier,
	metrics *metrics.Metrics,
) *TellerUseCase {
	return &TellerUseCase{
		txManager:       txManager,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		sequences:       sequences,
		idGen:           idGen,
		retrier:         retrier,
		metrics:         metrics,
	}
}

// CashInput is the input for a deposit or withdrawal.
type CashInput struct {
	AccountID       string
	Amount          decimal.Decimal
	Description     string
	ReferenceNumber string
	PerformedBy     string
}

// TransactionResult pairs a posted transaction record with the account
// state observed at commit.
type TransactionResult struct {
	Transaction *domain.Transaction
	Account     *domain.Account
}

// Deposit credits an active account and records a DEPOSIT transaction.
func (uc *TellerUseCase) Deposit(ctx context.Context, input CashInput) (*TransactionResult, error) {
	return uc.post(ctx, input, domain.TransactionTypeDeposit)
}

// Withdraw debits an active account and records a WITHDRAWAL transaction.
func (uc *TellerUseCase) Withdraw(ctx context.Context, input CashInput) (*TransactionResult, error) {
	return uc.post(ctx, input, domain.TransactionTypeWithdrawal)
}

func (uc *TellerUseCase) post(ctx context.Context, input CashInput, txnType domain.TransactionType) (*TransactionResult, error) {
	// Cheap rejects before touching the store.
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	start := time.Now()

	var result *TransactionResult

	err := uc.retrier.Retry(ctx, func() error {
		res, err := uc.postOnce(ctx, input, txnType)
		if err != nil {
			return err
		}

		result = res

		return nil
	})
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.PostingErrors.WithLabelValues(errorLabel(err)).Inc()
		}
		return nil, err
	}

	if uc.metrics != nil {
		if txnType.IsDebit() {
			uc.metrics.WithdrawalsPosted.Inc()
		} else {
			uc.metrics.DepositsPosted.Inc()
		}
		uc.metrics.PostingDuration.Observe(time.Since(start).Seconds())

		amount, _ := input.Amount.Float64()
		uc.metrics.PostingAmount.Observe(amount)
	}

	return result, nil
}

func (uc *TellerUseCase) postOnce(ctx context.Context, input CashInput, txnType domain.TransactionType) (*TransactionResult, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	account, err := uc.accountRepo.GetByIDForUpdate(ctx, tx, input.AccountID)
	if err != nil {
		return nil, err
	}

	if txnType.IsDebit() {
		err = account.ValidateDebit(input.Amount)
	} else {
		err = account.ValidateCredit(input.Amount)
	}
	if err != nil {
		return nil, err
	}

	number, err := uc.sequences.NextInTx(ctx, tx, domain.SequenceTransactionNumber, "TXN")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	balanceBefore := account.Balance

	var balanceAfter decimal.Decimal
	if txnType.IsDebit() {
		balanceAfter = account.ApplyDebit(input.Amount)
	} else {
		balanceAfter = account.ApplyCredit(input.Amount)
	}

	record := &domain.Transaction{
		ID:                uc.idGen.Generate(),
		TransactionNumber: number,
		AccountID:         account.ID,
		Type:              txnType,
		Amount:            input.Amount,
		BalanceBefore:     balanceBefore,
		BalanceAfter:      balanceAfter,
		Channel:           domain.ChannelTeller,
		Description:       input.Description,
		ReferenceNumber:   input.ReferenceNumber,
		CreatedBy:         input.PerformedBy,
		CreatedAt:         now,
	}

	if err := uc.transactionRepo.Create(ctx, tx, record); err != nil {
		return nil, err
	}

	if err := uc.accountRepo.UpdateBalance(ctx, tx, account.ID, balanceAfter, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	account.Balance = balanceAfter
	account.Version++
	account.UpdatedAt = now

	return &TransactionResult{Transaction: record, Account: account}, nil
}

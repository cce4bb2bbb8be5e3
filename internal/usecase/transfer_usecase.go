package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ihsanbank/core/internal/domain"
	"github.com/ihsanbank/core/internal/infrastructure/metrics"
)

// TransferUseCase coordinates the two-leg atomic transfer between
// accounts. Validate enriches a raw request for confirmation screens;
// Execute re-validates under row locks and applies both legs, both
// records and both balance updates in one unit of work.
type TransferUseCase struct {
	txManager       TransactionManager
	accountRepo     AccountRepository
	transactionRepo TransactionRepository
	sequences       *SequenceUseCase
	idGen           IDGenerator
	retrier         Retrier
	metrics         *metrics.Metrics
}

// NewTransferUseCase creates a new TransferUseCase.
func NewTransferUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	transactionRepo TransactionRepository,
	sequences *SequenceUseCase,
	idGen IDGenerator,
	retrier Retrier,
	metrics *metrics.Metrics,
) *TransferUseCase {
	return &TransferUseCase{
		txManager:       txManager,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		sequences:       sequences,
		idGen:           idGen,
		retrier:         retrier,
		metrics:         metrics,
	}
}

// TransferRequest is an enriched, validated transfer awaiting execution.
type TransferRequest struct {
	FromAccountID   string
	ToAccountID     string
	ToAccountNumber string
	Amount          decimal.Decimal
	Description     string
	PerformedBy     string
}

// TransferResult captures both legs of an executed transfer.
type TransferResult struct {
	ReferenceNumber string
	OutTransaction  *domain.Transaction
	InTransaction   *domain.Transaction
	FromAccount     *domain.Account
	ToAccount       *domain.Account
}

// Validate checks a transfer request against current account state and
// returns the enriched request. Validation order is fixed: source, then
// destination (looked up by account number), then self-transfer, then
// amount, then funds.
func (uc *TransferUseCase) Validate(ctx context.Context, fromAccountID, toAccountNumber string, amount decimal.Decimal) (*TransferRequest, error) {
	from, err := uc.accountRepo.GetByID(ctx, fromAccountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrSourceAccountInvalid
		}
		return nil, err
	}
	if from.Status != domain.AccountStatusActive {
		return nil, domain.ErrSourceAccountInvalid
	}

	to, err := uc.accountRepo.GetByNumber(ctx, toAccountNumber)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrDestinationAccountInvalid
		}
		return nil, err
	}
	if to.Status != domain.AccountStatusActive {
		return nil, domain.ErrDestinationAccountInvalid
	}

	if from.ID == to.ID {
		return nil, domain.ErrSelfTransfer
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	if amount.GreaterThan(from.Balance) {
		return nil, domain.ErrInsufficientFunds
	}

	return &TransferRequest{
		FromAccountID:   from.ID,
		ToAccountID:     to.ID,
		ToAccountNumber: to.AccountNumber,
		Amount:          amount,
	}, nil
}

// Execute applies a validated transfer. Account state may have changed
// since Validate, so all checks re-run inside the transaction with both
// rows locked.
func (uc *TransferUseCase) Execute(ctx context.Context, req *TransferRequest) (*TransferResult, error) {
	if req.FromAccountID == req.ToAccountID {
		return nil, domain.ErrSelfTransfer
	}

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	start := time.Now()

	var result *TransferResult

	err := uc.retrier.Retry(ctx, func() error {
		res, err := uc.executeOnce(ctx, req)
		if err != nil {
			return err
		}

		result = res

		return nil
	})
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.TransferErrors.WithLabelValues(errorLabel(err)).Inc()
		}
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.TransfersExecuted.Inc()
		uc.metrics.TransferDuration.Observe(time.Since(start).Seconds())
	}

	return result, nil
}

func (uc *TransferUseCase) executeOnce(ctx context.Context, req *TransferRequest) (*TransferResult, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Lock both rows in sorted id order to avoid lock-order deadlocks.
	ids := []string{req.FromAccountID, req.ToAccountID}
	sort.Strings(ids)

	accounts, err := uc.accountRepo.GetByIDsForUpdate(ctx, tx, ids)
	if err != nil {
		return nil, err
	}

	var from, to *domain.Account
	for _, a := range accounts {
		switch a.ID {
		case req.FromAccountID:
			from = a
		case req.ToAccountID:
			to = a
		}
	}

	if from == nil || from.Status != domain.AccountStatusActive {
		return nil, domain.ErrSourceAccountInvalid
	}
	if to == nil || to.Status != domain.AccountStatusActive {
		return nil, domain.ErrDestinationAccountInvalid
	}

	if err := from.ValidateDebit(req.Amount); err != nil {
		return nil, err
	}
	if err := to.ValidateCredit(req.Amount); err != nil {
		return nil, err
	}

	reference, err := uc.sequences.NextInTx(ctx, tx, domain.SequenceReferenceNumber, "TRF")
	if err != nil {
		return nil, err
	}

	outNumber, err := uc.sequences.NextInTx(ctx, tx, domain.SequenceTransactionNumber, "TXN")
	if err != nil {
		return nil, err
	}

	inNumber, err := uc.sequences.NextInTx(ctx, tx, domain.SequenceTransactionNumber, "TXN")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	fromAfter := from.ApplyDebit(req.Amount)
	outRecord := &domain.Transaction{
		ID:                    uc.idGen.Generate(),
		TransactionNumber:     outNumber,
		AccountID:             from.ID,
		CounterpartyAccountID: &to.ID,
		Type:                  domain.TransactionTypeTransferOut,
		Amount:                req.Amount,
		BalanceBefore:         from.Balance,
		BalanceAfter:          fromAfter,
		Channel:               domain.ChannelTransfer,
		Description:           req.Description,
		ReferenceNumber:       reference,
		CreatedBy:             req.PerformedBy,
		CreatedAt:             now,
	}

	if err := uc.transactionRepo.Create(ctx, tx, outRecord); err != nil {
		return nil, err
	}

	if err := uc.accountRepo.UpdateBalance(ctx, tx, from.ID, fromAfter, now); err != nil {
		return nil, err
	}

	toAfter := to.ApplyCredit(req.Amount)
	inRecord := &domain.Transaction{
		ID:                    uc.idGen.Generate(),
		TransactionNumber:     inNumber,
		AccountID:             to.ID,
		CounterpartyAccountID: &from.ID,
		Type:                  domain.TransactionTypeTransferIn,
		Amount:                req.Amount,
		BalanceBefore:         to.Balance,
		BalanceAfter:          toAfter,
		Channel:               domain.ChannelTransfer,
		Description:           req.Description,
		ReferenceNumber:       reference,
		CreatedBy:             req.PerformedBy,
		CreatedAt:             now,
	}

	if err := uc.transactionRepo.Create(ctx, tx, inRecord); err != nil {
		return nil, err
	}

	if err := uc.accountRepo.UpdateBalance(ctx, tx, to.ID, toAfter, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	from.Balance = fromAfter
	from.Version++
	to.Balance = toAfter
	to.Version++

	return &TransferResult{
		ReferenceNumber: reference,
		OutTransaction:  outRecord,
		InTransaction:   inRecord,
		FromAccount:     from,
		ToAccount:       to,
	}, nil
}

package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ihsanbank/core/internal/domain"
	"github.com/ihsanbank/core/internal/infrastructure/metrics"
)

// AccountUseCase handles account opening (gated by approval) and the
// statement read path.
type AccountUseCase struct {
	accountRepo     AccountRepository
	transactionRepo TransactionRepository
	customerRepo    CustomerRepository
	products        *ProductUseCase
	approvals       *ApprovalUseCase
	sequences       *SequenceUseCase
	idGen           IDGenerator
	metrics         *metrics.Metrics
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(
	accountRepo AccountRepository,
	transactionRepo TransactionRepository,
	customerRepo CustomerRepository,
	products *ProductUseCase,
	approvals *ApprovalUseCase,
	sequences *SequenceUseCase,
	idGen IDGenerator,
	metrics *metrics.Metrics,
) *AccountUseCase {
	return &AccountUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		customerRepo:    customerRepo,
		products:        products,
		approvals:       approvals,
		sequences:       sequences,
		idGen:           idGen,
		metrics:         metrics,
	}
}

// OpenAccountInput represents an account-opening request.
type OpenAccountInput struct {
	CustomerID  string
	ProductCode string
	BranchCode  string
	RequestedBy string
}

// OpenAccount creates an INACTIVE account for an active customer and
// submits it for approval; the account only becomes usable once reviewed.
func (uc *AccountUseCase) OpenAccount(ctx context.Context, input OpenAccountInput) (*domain.Account, error) {
	customer, err := uc.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if !customer.IsActive() {
		return nil, domain.ErrCustomerNotActive
	}

	product, err := uc.products.GetProductByCode(ctx, input.ProductCode)
	if err != nil {
		return nil, err
	}

	number, err := uc.sequences.Next(ctx, domain.SequenceAccountNumber, "")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	account := &domain.Account{
		ID:            uc.idGen.Generate(),
		AccountNumber: number,
		CustomerID:    customer.ID,
		ProductID:     product.ID,
		Status:        domain.AccountStatusInactive,
		Balance:       decimal.Zero,
		Version:       0,
		BranchCode:    input.BranchCode,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	_, err = uc.approvals.Submit(ctx, SubmitInput{
		EntityType:  domain.EntityTypeAccount,
		EntityID:    account.ID,
		RequestType: domain.RequestTypeAccountOpening,
		BranchCode:  input.BranchCode,
		RequestedBy: input.RequestedBy,
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.AccountsOpened.Inc()
	}

	return account, nil
}

// GetAccount retrieves an account by id.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// GetAccountByNumber retrieves an account by its account number.
func (uc *AccountUseCase) GetAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	return uc.accountRepo.GetByNumber(ctx, accountNumber)
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	Limit  int
	Offset int
}

// ListAccounts lists accounts with pagination.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.Account, error) {
	if input.Limit <= 0 {
		input.Limit = DefaultListLimit
	}
	if input.Limit > MaxListLimit {
		input.Limit = MaxListLimit
	}

	return uc.accountRepo.List(ctx, input.Limit, input.Offset)
}

// ListByCustomer lists all accounts owned by a customer.
func (uc *AccountUseCase) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Account, error) {
	return uc.accountRepo.ListByCustomer(ctx, customerID)
}

// StatementInput represents input for the passbook/statement feed.
type StatementInput struct {
	AccountID string
	Limit     int
	Offset    int
}

// GetStatement lists an account's transaction records, newest first.
func (uc *AccountUseCase) GetStatement(ctx context.Context, input StatementInput) ([]*domain.Transaction, error) {
	if input.Limit <= 0 {
		input.Limit = DefaultListLimit
	}
	if input.Limit > MaxListLimit {
		input.Limit = MaxListLimit
	}

	return uc.transactionRepo.ListByAccount(ctx, input.AccountID, input.Limit, input.Offset)
}

// Activate implements EntityActivator for approved account openings.
func (uc *AccountUseCase) Activate(ctx context.Context, tx Transaction, entityID string) error {
	return uc.accountRepo.UpdateStatus(ctx, tx, entityID, domain.AccountStatusActive, time.Now().UTC())
}

// Reject implements EntityActivator for rejected account openings. The
// account is closed rather than deleted; the row stays for audit.
func (uc *AccountUseCase) Reject(ctx context.Context, tx Transaction, entityID, _ string) error {
	return uc.accountRepo.UpdateStatus(ctx, tx, entityID, domain.AccountStatusClosed, time.Now().UTC())
}

package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ihsanbank/core/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Account, error)
	GetByIDsForUpdate(ctx context.Context, tx Transaction, ids []string) ([]*domain.Account, error)
	UpdateBalance(ctx context.Context, tx Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
	UpdateStatus(ctx context.Context, tx Transaction, id string, status domain.AccountStatus, updatedAt time.Time) error
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Account, error)
}

// TransactionRepository defines data access for immutable transaction records.
type TransactionRepository interface {
	Create(ctx context.Context, tx Transaction, record *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Transaction, error)
	ListByReference(ctx context.Context, referenceNumber string) ([]*domain.Transaction, error)
}

// SequenceRepository defines data access for named sequence counters.
// GetForUpdate must take an exclusive row lock (and lazily create the
// counter at zero) so that read-increment-write is race free.
type SequenceRepository interface {
	GetForUpdate(ctx context.Context, tx Transaction, name string) (*domain.SequenceCounter, error)
	SetValue(ctx context.Context, tx Transaction, name string, value int64, updatedAt time.Time) error
}

// ApprovalFilter narrows pending-approval dashboard queries.
type ApprovalFilter struct {
	EntityType  *domain.EntityType
	BranchCode  *string
	RequestedBy *string
	Limit       int
	Offset      int
}

// ApprovalRepository defines data access for approval requests.
type ApprovalRepository interface {
	Create(ctx context.Context, req *domain.ApprovalRequest) error
	GetByID(ctx context.Context, id string) (*domain.ApprovalRequest, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.ApprovalRequest, error)
	HasPending(ctx context.Context, entityType domain.EntityType, entityID string) (bool, error)
	UpdateReview(ctx context.Context, tx Transaction, req *domain.ApprovalRequest) error
	ListPending(ctx context.Context, filter ApprovalFilter) ([]*domain.ApprovalRequest, error)
}

// CustomerRepository defines data access for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	UpdateStatus(ctx context.Context, tx Transaction, id string, status domain.CustomerStatus, updatedAt time.Time) error
	List(ctx context.Context, limit, offset int) ([]*domain.Customer, error)
}

// ProductRepository defines data access for deposit products.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetByCode(ctx context.Context, code string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
}

// LedgerRepository defines ledger-wide consistency queries.
type LedgerRepository interface {
	CheckConsistency(ctx context.Context) (totalBalance, totalRecorded decimal.Decimal, err error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique internal IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier re-runs a unit of work when the store reports a transient
// conflict (deadlock, serialization failure).
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// EntityActivator flips a gated entity's own lifecycle when its approval
// request reaches a terminal state. Implemented by the customer and
// account subsystems and registered with the approval workflow; runs in
// the same unit of work as the review itself.
type EntityActivator interface {
	Activate(ctx context.Context, tx Transaction, entityID string) error
	Reject(ctx context.Context, tx Transaction, entityID, notes string) error
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

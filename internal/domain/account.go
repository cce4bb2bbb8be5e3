package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus is the lifecycle status of an account.
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "ACTIVE"
	AccountStatusInactive AccountStatus = "INACTIVE"
	AccountStatusClosed   AccountStatus = "CLOSED"
	AccountStatusFrozen   AccountStatus = "FROZEN"
)

// Account is the money-holding ledger entity. Its balance is never
// negative and changes only through deposit, withdrawal and the two
// transfer legs.
type Account struct {
	ID            string
	AccountNumber string
	CustomerID    string
	ProductID     string
	Status        AccountStatus
	Balance       decimal.Decimal
	Version       int64
	BranchCode    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CanTransact reports whether ledger operations are allowed on the account.
func (a *Account) CanTransact() error {
	if a.Status != AccountStatusActive {
		return ErrAccountNotActive
	}
	return nil
}

// ValidateCredit checks preconditions for a deposit or incoming transfer leg.
func (a *Account) ValidateCredit(amount decimal.Decimal) error {
	if err := a.CanTransact(); err != nil {
		return err
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateDebit checks preconditions for a withdrawal or outgoing transfer leg.
func (a *Account) ValidateDebit(amount decimal.Decimal) error {
	if err := a.CanTransact(); err != nil {
		return err
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.Balance) {
		return ErrInsufficientFunds
	}
	return nil
}

// ApplyCredit returns the balance after a credit.
func (a *Account) ApplyCredit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Add(amount)
}

// ApplyDebit returns the balance after a debit.
func (a *Account) ApplyDebit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Sub(amount)
}

// Activate transitions an account out of the pre-approval INACTIVE state.
func (a *Account) Activate(now time.Time) {
	a.Status = AccountStatusActive
	a.UpdatedAt = now
}

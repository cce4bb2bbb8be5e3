package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger mutation.
type TransactionType string

const (
	TransactionTypeDeposit     TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal  TransactionType = "WITHDRAWAL"
	TransactionTypeTransferOut TransactionType = "TRANSFER_OUT"
	TransactionTypeTransferIn  TransactionType = "TRANSFER_IN"
)

// Channel identifies where a transaction originated.
type Channel string

const (
	ChannelTeller   Channel = "TELLER"
	ChannelTransfer Channel = "TRANSFER"
	ChannelSystem   Channel = "SYSTEM"
)

// Transaction is an immutable audit record of a single account mutation.
// BalanceBefore and BalanceAfter are the exact balances observed around
// the mutation; the log is authoritative.
type Transaction struct {
	ID                    string
	TransactionNumber     string
	AccountID             string
	CounterpartyAccountID *string
	Type                  TransactionType
	Amount                decimal.Decimal
	BalanceBefore         decimal.Decimal
	BalanceAfter          decimal.Decimal
	Channel               Channel
	Description           string
	ReferenceNumber       string
	CreatedBy             string
	CreatedAt             time.Time
}

// IsDebit reports whether the transaction decreases the account balance.
func (t TransactionType) IsDebit() bool {
	return t == TransactionTypeWithdrawal || t == TransactionTypeTransferOut
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ihsanbank/core/internal/domain"
	"github.com/ihsanbank/core/internal/usecase"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID            string               `json:"id"`
	AccountNumber string               `json:"account_number"`
	CustomerID    string               `json:"customer_id"`
	ProductID     string               `json:"product_id"`
	Status        domain.AccountStatus `json:"status"`
	Balance       decimal.Decimal      `json:"balance"`
	Version       int64                `json:"version"`
	BranchCode    string               `json:"branch_code"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:            a.ID,
		AccountNumber: a.AccountNumber,
		CustomerID:    a.CustomerID,
		ProductID:     a.ProductID,
		Status:        a.Status,
		Balance:       a.Balance,
		Version:       a.Version,
		BranchCode:    a.BranchCode,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ListAccountsResponse wraps a page of accounts.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// TransactionResponse represents a transaction record in API responses.
type TransactionResponse struct {
	ID                    string                 `json:"id"`
	TransactionNumber     string                 `json:"transaction_number"`
	AccountID             string                 `json:"account_id"`
	CounterpartyAccountID *string                `json:"counterparty_account_id,omitempty"`
	Type                  domain.TransactionType `json:"type"`
	Amount                decimal.Decimal        `json:"amount"`
	BalanceBefore         decimal.Decimal        `json:"balance_before"`
	BalanceAfter          decimal.Decimal        `json:"balance_after"`
	Channel               domain.Channel         `json:"channel"`
	Description           string                 `json:"description,omitempty"`
	ReferenceNumber       string                 `json:"reference_number,omitempty"`
	CreatedBy             string                 `json:"created_by"`
	CreatedAt             time.Time              `json:"created_at"`
}

// TransactionFromDomain converts domain transaction to response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:                    t.ID,
		TransactionNumber:     t.TransactionNumber,
		AccountID:             t.AccountID,
		CounterpartyAccountID: t.CounterpartyAccountID,
		Type:                  t.Type,
		Amount:                t.Amount,
		BalanceBefore:         t.BalanceBefore,
		BalanceAfter:          t.BalanceAfter,
		Channel:               t.Channel,
		Description:           t.Description,
		ReferenceNumber:       t.ReferenceNumber,
		CreatedBy:             t.CreatedBy,
		CreatedAt:             t.CreatedAt,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(transactions []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(transactions))
	for i, t := range transactions {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// PostingResponse pairs a posted transaction with the resulting account state.
type PostingResponse struct {
	Transaction *TransactionResponse `json:"transaction"`
	Account     *AccountResponse     `json:"account"`
}

// PostingFromResult converts a teller result to a response.
func PostingFromResult(res *usecase.TransactionResult) *PostingResponse {
	return &PostingResponse{
		Transaction: TransactionFromDomain(res.Transaction),
		Account:     AccountFromDomain(res.Account),
	}
}

// TransferResponse represents both legs of an executed transfer.
type TransferResponse struct {
	ReferenceNumber string               `json:"reference_number"`
	OutTransaction  *TransactionResponse `json:"out_transaction"`
	InTransaction   *TransactionResponse `json:"in_transaction"`
	FromAccount     *AccountResponse     `json:"from_account"`
	ToAccount       *AccountResponse     `json:"to_account"`
}

// TransferFromResult converts a transfer result to a response.
func TransferFromResult(res *usecase.TransferResult) *TransferResponse {
	return &TransferResponse{
		ReferenceNumber: res.ReferenceNumber,
		OutTransaction:  TransactionFromDomain(res.OutTransaction),
		InTransaction:   TransactionFromDomain(res.InTransaction),
		FromAccount:     AccountFromDomain(res.FromAccount),
		ToAccount:       AccountFromDomain(res.ToAccount),
	}
}

// TransferValidationResponse reports the outcome of a dry-run validation.
type TransferValidationResponse struct {
	Valid           bool            `json:"valid"`
	FromAccountID   string          `json:"from_account_id"`
	ToAccountID     string          `json:"to_account_id"`
	ToAccountNumber string          `json:"to_account_number"`
	Amount          decimal.Decimal `json:"amount"`
}

// CustomerResponse represents a customer in API responses.
type CustomerResponse struct {
	ID             string                   `json:"id"`
	CustomerNumber string                   `json:"customer_number"`
	Kind           domain.CustomerKind      `json:"kind"`
	Status         domain.CustomerStatus    `json:"status"`
	Email          string                   `json:"email,omitempty"`
	Phone          string                   `json:"phone,omitempty"`
	BranchCode     string                   `json:"branch_code"`
	Personal       *domain.PersonalDetails  `json:"personal,omitempty"`
	Corporate      *domain.CorporateDetails `json:"corporate,omitempty"`
	CreatedAt      time.Time                `json:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at"`
}

// CustomerFromDomain converts domain customer to response.
func CustomerFromDomain(c *domain.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:             c.ID,
		CustomerNumber: c.CustomerNumber,
		Kind:           c.Kind,
		Status:         c.Status,
		Email:          c.Email,
		Phone:          c.Phone,
		BranchCode:     c.BranchCode,
		Personal:       c.Personal,
		Corporate:      c.Corporate,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// CustomersFromDomain converts domain customers to responses.
func CustomersFromDomain(customers []*domain.Customer) []*CustomerResponse {
	result := make([]*CustomerResponse, len(customers))
	for i, c := range customers {
		result[i] = CustomerFromDomain(c)
	}
	return result
}

// ProductResponse represents a product in API responses.
type ProductResponse struct {
	ID             string                   `json:"id"`
	Code           string                   `json:"code"`
	Name           string                   `json:"name"`
	Type           domain.ProductType       `json:"type"`
	ProfitSharing  domain.ProfitSharingType `json:"profit_sharing"`
	CustomerNisbah decimal.Decimal          `json:"customer_nisbah"`
	BankNisbah     decimal.Decimal          `json:"bank_nisbah"`
	CreatedAt      time.Time                `json:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at"`
}

// ProductFromDomain converts domain product to response.
func ProductFromDomain(p *domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:             p.ID,
		Code:           p.Code,
		Name:           p.Name,
		Type:           p.Type,
		ProfitSharing:  p.ProfitSharing,
		CustomerNisbah: p.CustomerNisbah,
		BankNisbah:     p.BankNisbah,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// ProductsFromDomain converts domain products to responses.
func ProductsFromDomain(products []*domain.Product) []*ProductResponse {
	result := make([]*ProductResponse, len(products))
	for i, p := range products {
		result[i] = ProductFromDomain(p)
	}
	return result
}

// ApprovalResponse represents an approval request in API responses.
type ApprovalResponse struct {
	ID          string                `json:"id"`
	EntityType  domain.EntityType     `json:"entity_type"`
	EntityID    string                `json:"entity_id"`
	RequestType domain.RequestType    `json:"request_type"`
	Status      domain.ApprovalStatus `json:"status"`
	BranchCode  string                `json:"branch_code"`
	RequestedBy string                `json:"requested_by"`
	RequestedAt time.Time             `json:"requested_at"`
	ReviewedBy  *string               `json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time            `json:"reviewed_at,omitempty"`
	ReviewNotes *string               `json:"review_notes,omitempty"`
}

// ApprovalFromDomain converts domain approval request to response.
func ApprovalFromDomain(r *domain.ApprovalRequest) *ApprovalResponse {
	return &ApprovalResponse{
		ID:          r.ID,
		EntityType:  r.EntityType,
		EntityID:    r.EntityID,
		RequestType: r.RequestType,
		Status:      r.Status,
		BranchCode:  r.BranchCode,
		RequestedBy: r.RequestedBy,
		RequestedAt: r.RequestedAt,
		ReviewedBy:  r.ReviewedBy,
		ReviewedAt:  r.ReviewedAt,
		ReviewNotes: r.ReviewNotes,
	}
}

// ApprovalsFromDomain converts domain approval requests to responses.
func ApprovalsFromDomain(requests []*domain.ApprovalRequest) []*ApprovalResponse {
	result := make([]*ApprovalResponse, len(requests))
	for i, r := range requests {
		result[i] = ApprovalFromDomain(r)
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ihsanbank/core/internal/domain"
	"github.com/ihsanbank/core/internal/usecase"
)

// CashRequest represents a teller deposit or withdrawal request.
type CashRequest struct {
	AccountID       string          `json:"account_id"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description,omitempty"`
	ReferenceNumber string          `json:"reference_number,omitempty"`
	PerformedBy     string          `json:"performed_by"`
}

// ToUseCaseInput converts to use case input.
func (r *CashRequest) ToUseCaseInput() usecase.CashInput {
	return usecase.CashInput{
		AccountID:       r.AccountID,
		Amount:          r.Amount,
		Description:     r.Description,
		ReferenceNumber: r.ReferenceNumber,
		PerformedBy:     r.PerformedBy,
	}
}

// TransferRequest represents a request to validate or execute a transfer.
// The destination is addressed by account number, as written on a slip.
type TransferRequest struct {
	FromAccountID   string          `json:"from_account_id"`
	ToAccountNumber string          `json:"to_account_number"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description,omitempty"`
	PerformedBy     string          `json:"performed_by"`
}

// CreateCustomerRequest represents a customer registration request.
type CreateCustomerRequest struct {
	Kind        domain.CustomerKind      `json:"kind"`
	Email       string                   `json:"email"`
	Phone       string                   `json:"phone"`
	BranchCode  string                   `json:"branch_code"`
	Personal    *domain.PersonalDetails  `json:"personal,omitempty"`
	Corporate   *domain.CorporateDetails `json:"corporate,omitempty"`
	RequestedBy string                   `json:"requested_by"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateCustomerRequest) ToUseCaseInput() usecase.CreateCustomerInput {
	return usecase.CreateCustomerInput{
		Kind:        r.Kind,
		Email:       r.Email,
		Phone:       r.Phone,
		BranchCode:  r.BranchCode,
		Personal:    r.Personal,
		Corporate:   r.Corporate,
		RequestedBy: r.RequestedBy,
	}
}

// OpenAccountRequest represents an account-opening request.
type OpenAccountRequest struct {
	CustomerID  string `json:"customer_id"`
	ProductCode string `json:"product_code"`
	BranchCode  string `json:"branch_code"`
	RequestedBy string `json:"requested_by"`
}

// ToUseCaseInput converts to use case input.
func (r *OpenAccountRequest) ToUseCaseInput() usecase.OpenAccountInput {
	return usecase.OpenAccountInput{
		CustomerID:  r.CustomerID,
		ProductCode: r.ProductCode,
		BranchCode:  r.BranchCode,
		RequestedBy: r.RequestedBy,
	}
}

// CreateProductRequest represents a product definition request. Nisbah
// shares arrive as decimal strings to avoid float rounding on the wire.
type CreateProductRequest struct {
	Code           string                   `json:"code"`
	Name           string                   `json:"name"`
	Type           domain.ProductType       `json:"type"`
	ProfitSharing  domain.ProfitSharingType `json:"profit_sharing"`
	CustomerNisbah string                   `json:"customer_nisbah,omitempty"`
	BankNisbah     string                   `json:"bank_nisbah,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateProductRequest) ToUseCaseInput() usecase.CreateProductInput {
	return usecase.CreateProductInput{
		Code:           r.Code,
		Name:           r.Name,
		Type:           r.Type,
		ProfitSharing:  r.ProfitSharing,
		CustomerNisbah: r.CustomerNisbah,
		BankNisbah:     r.BankNisbah,
	}
}

// SubmitApprovalRequest represents a direct submission of an entity for
// review, outside the implicit submissions made by registration and
// account opening.
type SubmitApprovalRequest struct {
	EntityType  string `json:"entity_type"`
	EntityID    string `json:"entity_id"`
	RequestType string `json:"request_type"`
	BranchCode  string `json:"branch_code,omitempty"`
	RequestedBy string `json:"requested_by"`
}

// ToUseCaseInput converts to use case input.
func (r *SubmitApprovalRequest) ToUseCaseInput() usecase.SubmitInput {
	return usecase.SubmitInput{
		EntityType:  domain.EntityType(r.EntityType),
		EntityID:    r.EntityID,
		RequestType: domain.RequestType(r.RequestType),
		BranchCode:  r.BranchCode,
		RequestedBy: r.RequestedBy,
	}
}

// ReviewRequest represents an approve or reject decision.
type ReviewRequest struct {
	ReviewedBy string `json:"reviewed_by"`
	Notes      string `json:"notes,omitempty"`
}

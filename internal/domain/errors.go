package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound   = errors.New("account not found")
	ErrAccountNotActive  = errors.New("account is not active")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")

	// Transaction errors
	ErrTransactionNotFound = errors.New("transaction not found")

	// Transfer errors
	ErrSourceAccountInvalid      = errors.New("source account missing or not active")
	ErrDestinationAccountInvalid = errors.New("destination account missing or not active")
	ErrSelfTransfer              = errors.New("cannot transfer to the same account")

	// Approval errors
	ErrApprovalNotFound        = errors.New("approval request not found")
	ErrAlreadyReviewed         = errors.New("approval request already reviewed")
	ErrDuplicatePendingRequest = errors.New("a pending approval request already exists for this entity")

	// Customer errors
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrCustomerNotActive = errors.New("customer is not active")

	// Product errors
	ErrProductNotFound         = errors.New("product not found")
	ErrProfitSharingNotAllowed = errors.New("profit sharing type not allowed for product type")
	ErrInvalidNisbah           = errors.New("customer and bank nisbah must sum to one")

	// Persistence errors
	ErrDuplicateNumber = errors.New("generated number already exists")
)

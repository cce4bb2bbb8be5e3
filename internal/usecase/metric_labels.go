package usecase

import (
	"errors"

	"github.com/ihsanbank/core/internal/domain"
)

// errorLabel buckets posting and transfer failures into low-cardinality
// metric labels.
func errorLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, domain.ErrAccountNotActive):
		return "account_not_active"
	case errors.Is(err, domain.ErrSourceAccountInvalid):
		return "source_invalid"
	case errors.Is(err, domain.ErrDestinationAccountInvalid):
		return "destination_invalid"
	case errors.Is(err, domain.ErrSelfTransfer):
		return "self_transfer"
	default:
		return "internal"
	}
}

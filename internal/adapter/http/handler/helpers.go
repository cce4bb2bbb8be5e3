package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ihsanbank/core/internal/adapter/http/dto"
	"github.com/ihsanbank/core/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrTransactionNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrApprovalNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAccountNotActive),
		errors.Is(err, domain.ErrCustomerNotActive):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrAlreadyReviewed),
		errors.Is(err, domain.ErrDuplicatePendingRequest),
		errors.Is(err, domain.ErrDuplicateNumber):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrSelfTransfer),
		errors.Is(err, domain.ErrSourceAccountInvalid),
		errors.Is(err, domain.ErrDestinationAccountInvalid),
		errors.Is(err, domain.ErrProfitSharingNotAllowed),
		errors.Is(err, domain.ErrInvalidNisbah):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}

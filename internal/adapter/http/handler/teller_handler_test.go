package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ihsanbank/core/internal/adapter/http/dto"
	"github.com/ihsanbank/core/internal/domain"
	"github.com/ihsanbank/core/internal/usecase"
)

type tellerServiceStub struct {
	depositFn  func(ctx context.Context, input usecase.CashInput) (*usecase.TransactionResult, error)
	withdrawFn func(ctx context.Context, input usecase.CashInput) (*usecase.TransactionResult, error)
}

func (s *tellerServiceStub) Deposit(ctx context.Context, input usecase.CashInput) (*usecase.TransactionResult, error) {
	return s.depositFn(ctx, input)
}

func (s *tellerServiceStub) Withdraw(ctx context.Context, input usecase.CashInput) (*usecase.TransactionResult, error) {
	return s.withdrawFn(ctx, input)
}

func TestTellerHandler_Deposit_Success(t *testing.T) {
	result := &usecase.TransactionResult{
		Transaction: &domain.Transaction{
			ID:                "txn-1",
			TransactionNumber: "TXN0000001",
			AccountID:         "acc-1",
			Type:              domain.TransactionTypeDeposit,
			Amount:            decimal.NewFromInt(250),
		},
		Account: &domain.Account{
			ID:      "acc-1",
			Balance: decimal.NewFromInt(1250),
		},
	}

	var captured usecase.CashInput
	handler := NewTellerHandler(&tellerServiceStub{
		depositFn: func(ctx context.Context, input usecase.CashInput) (*usecase.TransactionResult, error) {
			captured = input
			return result, nil
		},
	})

	body, _ := json.Marshal(dto.CashRequest{
		AccountID:   "acc-1",
		Amount:      decimal.NewFromInt(250),
		PerformedBy: "teller-7",
	})

	req := httptest.NewRequest(http.MethodPost, "/teller/deposits", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Deposit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.AccountID != "acc-1" || captured.PerformedBy != "teller-7" {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.PostingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Transaction.TransactionNumber != "TXN0000001" {
		t.Fatalf("expected transaction number in response, got %+v", resp.Transaction)
	}
}

func TestTellerHandler_Deposit_InvalidJSON(t *testing.T) {
	handler := NewTellerHandler(&tellerServiceStub{
		depositFn: func(ctx context.Context, input usecase.CashInput) (*usecase.TransactionResult, error) {
			t.Fatal("Deposit should not be called for invalid payload")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/teller/deposits", bytes.NewBufferString("{invalid json"))
	rec := httptest.NewRecorder()

	handler.Deposit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTellerHandler_Withdraw_InsufficientFunds(t *testing.T) {
	handler := NewTellerHandler(&tellerServiceStub{
		withdrawFn: func(ctx context.Context, input usecase.CashInput) (*usecase.TransactionResult, error) {
			return nil, domain.ErrInsufficientFunds
		},
	})

	body, _ := json.Marshal(dto.CashRequest{
		AccountID:   "acc-1",
		Amount:      decimal.NewFromInt(5000),
		PerformedBy: "teller-7",
	})

	req := httptest.NewRequest(http.MethodPost, "/teller/withdrawals", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Withdraw(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestTellerHandler_Withdraw_AccountNotFound(t *testing.T) {
	handler := NewTellerHandler(&tellerServiceStub{
		withdrawFn: func(ctx context.Context, input usecase.CashInput) (*usecase.TransactionResult, error) {
			return nil, domain.ErrAccountNotFound
		},
	})

	body, _ := json.Marshal(dto.CashRequest{AccountID: "nope", Amount: decimal.NewFromInt(10)})
	req := httptest.NewRequest(http.MethodPost, "/teller/withdrawals", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Withdraw(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

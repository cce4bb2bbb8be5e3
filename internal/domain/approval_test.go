package domain

import (
	"errors"
	"testing"
	"time"
)

func TestApprovalRequest_Approve(t *testing.T) {
	now := time.Now().UTC()

	req := &ApprovalRequest{
		ID:          "req-1",
		EntityType:  EntityTypeCustomer,
		EntityID:    "cus-42",
		RequestType: RequestTypeCustomerRegistration,
		Status:      ApprovalStatusPending,
		RequestedBy: "teller-1",
		RequestedAt: now,
	}

	if err := req.Approve("supervisor-1", "documents verified", now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.Status != ApprovalStatusApproved {
		t.Errorf("expected APPROVED, got %s", req.Status)
	}
	if req.ReviewedBy == nil || *req.ReviewedBy != "supervisor-1" {
		t.Error("reviewer not recorded")
	}
	if req.ReviewedAt == nil {
		t.Error("review timestamp not recorded")
	}
	if req.ReviewNotes == nil || *req.ReviewNotes != "documents verified" {
		t.Error("review notes not recorded")
	}
}

func TestApprovalRequest_TerminalStatesAreFinal(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name   string
		status ApprovalStatus
	}{
		{name: "approved is final", status: ApprovalStatusApproved},
		{name: "rejected is final", status: ApprovalStatusRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &ApprovalRequest{Status: tt.status}

			if err := req.Approve("supervisor-2", "", now); !errors.Is(err, ErrAlreadyReviewed) {
				t.Errorf("approve: expected ErrAlreadyReviewed, got %v", err)
			}
			if err := req.Reject("supervisor-2", "", now); !errors.Is(err, ErrAlreadyReviewed) {
				t.Errorf("reject: expected ErrAlreadyReviewed, got %v", err)
			}
			if req.Status != tt.status {
				t.Errorf("status changed to %s", req.Status)
			}
		})
	}
}

func TestApprovalRequest_RejectWithoutNotes(t *testing.T) {
	now := time.Now().UTC()
	req := &ApprovalRequest{Status: ApprovalStatusPending}

	if err := req.Reject("supervisor-1", "", now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.Status != ApprovalStatusRejected {
		t.Errorf("expected REJECTED, got %s", req.Status)
	}
	if req.ReviewNotes != nil {
		t.Error("expected nil notes")
	}
}

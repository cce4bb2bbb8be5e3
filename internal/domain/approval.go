package domain

import "time"

// ApprovalStatus is the review state of an approval request.
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "PENDING"
	ApprovalStatusApproved ApprovalStatus = "APPROVED"
	ApprovalStatusRejected ApprovalStatus = "REJECTED"
)

// EntityType identifies the kind of entity gated by an approval request.
type EntityType string

const (
	EntityTypeCustomer EntityType = "CUSTOMER"
	EntityTypeAccount  EntityType = "ACCOUNT"
)

// IsValid reports whether the entity type is one the workflow gates.
func (t EntityType) IsValid() bool {
	switch t {
	case EntityTypeCustomer, EntityTypeAccount:
		return true
	}
	return false
}

// RequestType identifies why the approval was submitted.
type RequestType string

const (
	RequestTypeCustomerRegistration RequestType = "CUSTOMER_REGISTRATION"
	RequestTypeAccountOpening       RequestType = "ACCOUNT_OPENING"
)

// IsValid reports whether the request type is known.
func (t RequestType) IsValid() bool {
	switch t {
	case RequestTypeCustomerRegistration, RequestTypeAccountOpening:
		return true
	}
	return false
}

// ApprovalRequest gates the activation of a newly created entity. It is
// reviewed exactly once: PENDING -> APPROVED or PENDING -> REJECTED, both
// terminal.
type ApprovalRequest struct {
	ID          string
	EntityType  EntityType
	EntityID    string
	RequestType RequestType
	Status      ApprovalStatus
	BranchCode  string
	RequestedBy string
	RequestedAt time.Time
	ReviewedBy  *string
	ReviewedAt  *time.Time
	ReviewNotes *string
}

// IsTerminal reports whether the request has already been reviewed.
func (r *ApprovalRequest) IsTerminal() bool {
	return r.Status != ApprovalStatusPending
}

// Approve marks the request approved, recording the reviewer.
func (r *ApprovalRequest) Approve(reviewedBy, notes string, now time.Time) error {
	return r.review(ApprovalStatusApproved, reviewedBy, notes, now)
}

// Reject marks the request rejected, recording the reviewer.
func (r *ApprovalRequest) Reject(reviewedBy, notes string, now time.Time) error {
	return r.review(ApprovalStatusRejected, reviewedBy, notes, now)
}

func (r *ApprovalRequest) review(status ApprovalStatus, reviewedBy, notes string, now time.Time) error {
	if r.IsTerminal() {
		return ErrAlreadyReviewed
	}

	r.Status = status
	r.ReviewedBy = &reviewedBy
	r.ReviewedAt = &now
	if notes != "" {
		r.ReviewNotes = &notes
	}

	return nil
}

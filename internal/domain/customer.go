package domain

import "time"

// CustomerKind distinguishes the two customer variants.
type CustomerKind string

const (
	CustomerKindPersonal  CustomerKind = "PERSONAL"
	CustomerKindCorporate CustomerKind = "CORPORATE"
)

// CustomerStatus is the lifecycle status of a customer.
type CustomerStatus string

const (
	CustomerStatusPendingApproval CustomerStatus = "PENDING_APPROVAL"
	CustomerStatusActive          CustomerStatus = "ACTIVE"
	CustomerStatusRejected        CustomerStatus = "REJECTED"
	CustomerStatusClosed          CustomerStatus = "CLOSED"
)

// PersonalDetails is the PERSONAL variant payload.
type PersonalDetails struct {
	FullName       string
	IdentityNumber string
	DateOfBirth    time.Time
}

// CorporateDetails is the CORPORATE variant payload.
type CorporateDetails struct {
	CompanyName        string
	RegistrationNumber string
	ContactPerson      string
}

// Customer is a tagged variant: exactly one of Personal or Corporate is
// set, matching Kind. Core logic only touches the common fields.
type Customer struct {
	ID             string
	CustomerNumber string
	Kind           CustomerKind
	Status         CustomerStatus
	Email          string
	Phone          string
	BranchCode     string
	Personal       *PersonalDetails
	Corporate      *CorporateDetails
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DisplayName returns the variant-appropriate name.
func (c *Customer) DisplayName() string {
	switch c.Kind {
	case CustomerKindCorporate:
		if c.Corporate != nil {
			return c.Corporate.CompanyName
		}
	default:
		if c.Personal != nil {
			return c.Personal.FullName
		}
	}
	return c.CustomerNumber
}

// IsActive reports whether the customer may own active accounts.
func (c *Customer) IsActive() bool {
	return c.Status == CustomerStatusActive
}

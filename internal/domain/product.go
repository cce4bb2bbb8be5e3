package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductType is the Islamic contract type of a deposit product.
type ProductType string

const (
	ProductTypeWadiah     ProductType = "WADIAH"
	ProductTypeMudharabah ProductType = "MUDHARABAH"
)

// ProfitSharingType is how returns are shared with the customer.
type ProfitSharingType string

const (
	ProfitSharingNone       ProfitSharingType = "NONE"
	ProfitSharingRevenue    ProfitSharingType = "REVENUE_SHARING"
	ProfitSharingProfitLoss ProfitSharingType = "PROFIT_LOSS_SHARING"
)

// allowedProfitSharing is the exhaustive rule table mapping each product
// type to its permitted profit-sharing configurations.
var allowedProfitSharing = map[ProductType]map[ProfitSharingType]bool{
	ProductTypeWadiah: {
		ProfitSharingNone: true,
	},
	ProductTypeMudharabah: {
		ProfitSharingRevenue:    true,
		ProfitSharingProfitLoss: true,
	},
}

// Product is a deposit product configuration. Mudharabah products carry a
// nisbah pair; wadiah products carry none.
type Product struct {
	ID             string
	Code           string
	Name           string
	Type           ProductType
	ProfitSharing  ProfitSharingType
	CustomerNisbah decimal.Decimal
	BankNisbah     decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate checks the product type / profit-sharing pairing and, for
// mudharabah, that the nisbah pair sums to exactly one.
func (p *Product) Validate() error {
	allowed, ok := allowedProfitSharing[p.Type]
	if !ok || !allowed[p.ProfitSharing] {
		return ErrProfitSharingNotAllowed
	}

	if p.Type == ProductTypeMudharabah {
		if !p.CustomerNisbah.Add(p.BankNisbah).Equal(decimal.NewFromInt(1)) {
			return ErrInvalidNisbah
		}
		if p.CustomerNisbah.IsNegative() || p.BankNisbah.IsNegative() {
			return ErrInvalidNisbah
		}
	} else if !p.CustomerNisbah.IsZero() || !p.BankNisbah.IsZero() {
		return ErrInvalidNisbah
	}

	return nil
}

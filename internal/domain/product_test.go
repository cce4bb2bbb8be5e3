package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestProduct_Validate(t *testing.T) {
	half := decimal.NewFromFloat(0.5)
	sixty := decimal.NewFromFloat(0.6)
	forty := decimal.NewFromFloat(0.4)

	tests := []struct {
		name    string
		product Product
		wantErr error
	}{
		{
			name: "wadiah without profit sharing",
			product: Product{
				Type:          ProductTypeWadiah,
				ProfitSharing: ProfitSharingNone,
			},
			wantErr: nil,
		},
		{
			name: "wadiah with revenue sharing",
			product: Product{
				Type:          ProductTypeWadiah,
				ProfitSharing: ProfitSharingRevenue,
			},
			wantErr: ErrProfitSharingNotAllowed,
		},
		{
			name: "wadiah with nonzero nisbah",
			product: Product{
				Type:           ProductTypeWadiah,
				ProfitSharing:  ProfitSharingNone,
				CustomerNisbah: half,
			},
			wantErr: ErrInvalidNisbah,
		},
		{
			name: "mudharabah with valid nisbah",
			product: Product{
				Type:           ProductTypeMudharabah,
				ProfitSharing:  ProfitSharingRevenue,
				CustomerNisbah: sixty,
				BankNisbah:     forty,
			},
			wantErr: nil,
		},
		{
			name: "mudharabah profit loss sharing",
			product: Product{
				Type:           ProductTypeMudharabah,
				ProfitSharing:  ProfitSharingProfitLoss,
				CustomerNisbah: half,
				BankNisbah:     half,
			},
			wantErr: nil,
		},
		{
			name: "mudharabah nisbah does not sum to one",
			product: Product{
				Type:           ProductTypeMudharabah,
				ProfitSharing:  ProfitSharingRevenue,
				CustomerNisbah: half,
				BankNisbah:     forty,
			},
			wantErr: ErrInvalidNisbah,
		},
		{
			name: "mudharabah without profit sharing",
			product: Product{
				Type:          ProductTypeMudharabah,
				ProfitSharing: ProfitSharingNone,
			},
			wantErr: ErrProfitSharingNotAllowed,
		},
		{
			name: "mudharabah negative nisbah",
			product: Product{
				Type:           ProductTypeMudharabah,
				ProfitSharing:  ProfitSharingRevenue,
				CustomerNisbah: decimal.NewFromFloat(1.5),
				BankNisbah:     decimal.NewFromFloat(-0.5),
			},
			wantErr: ErrInvalidNisbah,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.product.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCustomer_DisplayName(t *testing.T) {
	personal := &Customer{
		Kind:     CustomerKindPersonal,
		Personal: &PersonalDetails{FullName: "Siti Rahma"},
	}
	if got := personal.DisplayName(); got != "Siti Rahma" {
		t.Errorf("expected personal name, got %q", got)
	}

	corporate := &Customer{
		Kind:      CustomerKindCorporate,
		Corporate: &CorporateDetails{CompanyName: "PT Amanah Sejahtera"},
	}
	if got := corporate.DisplayName(); got != "PT Amanah Sejahtera" {
		t.Errorf("expected company name, got %q", got)
	}

	bare := &Customer{Kind: CustomerKindPersonal, CustomerNumber: "CUS0000007"}
	if got := bare.DisplayName(); got != "CUS0000007" {
		t.Errorf("expected customer number fallback, got %q", got)
	}
}

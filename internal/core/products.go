package core

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type ProductType string

const (
	ProductTypeLife   ProductType = "life"
	ProductTypeHealth ProductType = "health"
	ProductTypeMotor  ProductType = "motor"
	ProductTypeHome   ProductType = "home"
)

// FeeSchedule is a product's fee configuration. Processing, issuance and
// medical-checkup fees are charged once per policy; the admin fee is
// charged once per policy year.
type FeeSchedule struct {
	Processing     decimal.Decimal `json:"processing"`
	PolicyIssuance decimal.Decimal `json:"policy_issuance"`
	MedicalCheckup decimal.Decimal `json:"medical_checkup"`
	AdminPerYear   decimal.Decimal `json:"admin_per_year"`
}

// FrequencyAdjustments is legacy product-level metadata: surcharge and
// discount fractions that predate per-plan base premiums. Retained for
// reporting; the rating path reads per-plan bases instead.
type FrequencyAdjustments struct {
	MonthlySurcharge    decimal.Decimal `json:"monthly_surcharge"`
	QuarterlySurcharge  decimal.Decimal `json:"quarterly_surcharge"`
	SemiAnnualSurcharge decimal.Decimal `json:"semi_annual_surcharge"`
	LumpSumDiscount     decimal.Decimal `json:"lump_sum_discount"`
}

type Product struct {
	ID     string      `json:"id"`
	Code   string      `json:"code"` // unique
	Name   string      `json:"name"`
	Type   ProductType `json:"type"`
	Active bool        `json:"active"`

	Fees        FeeSchedule          `json:"fees"`
	Adjustments FrequencyAdjustments `json:"adjustments"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProductRepo interface {
	List(ctx context.Context) ([]Product, error)
	GetByCode(ctx context.Context, code string) (Product, error)
	GetByID(ctx context.Context, id string) (Product, error)
	Create(ctx context.Context, p Product) error
	Update(ctx context.Context, p Product) error
	Delete(ctx context.Context, id string) error
}

func (p Product) Validate() error {
	if p.Code == "" {
		return fmt.Errorf("%w: missing product code", ErrValidation)
	}
	if p.Name == "" {
		return fmt.Errorf("%w: missing product name", ErrValidation)
	}
	switch p.Type {
	case ProductTypeLife, ProductTypeHealth, ProductTypeMotor, ProductTypeHome:
	default:
		return fmt.Errorf("%w: unknown product type %q", ErrValidation, p.Type)
	}
	for name, f := range map[string]decimal.Decimal{
		"processing":      p.Fees.Processing,
		"policy_issuance": p.Fees.PolicyIssuance,
		"medical_checkup": p.Fees.MedicalCheckup,
		"admin_per_year":  p.Fees.AdminPerYear,
	} {
		if f.IsNegative() {
			return fmt.Errorf("%w: fee %s must not be negative", ErrValidation, name)
		}
	}
	return nil
}

var (
	ErrProductNotFound = fmt.Errorf("%w: product not found", ErrNotFound)
	ErrProductInactive = fmt.Errorf("%w: product is not active", ErrConflict)
	ErrProductHasPlans = fmt.Errorf("%w: product still owns rate plans", ErrConflict)
	ErrProductExists   = fmt.Errorf("%w: product code already exists", ErrConflict)
)

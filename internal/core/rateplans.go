package core

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AgeBand maps a closed age interval [MinAge, MaxAge] to a premium
// multiplier.
type AgeBand struct {
	MinAge int             `json:"min_age"`
	MaxAge int             `json:"max_age"`
	Factor decimal.Decimal `json:"factor"`
}

// RateTable holds a plan's risk multipliers. A factor of 1.0 means no
// adjustment. The four categories are independent and applied
// multiplicatively, so resolution order never affects the premium.
type RateTable struct {
	AgeBands []AgeBand `json:"age_bands"`

	HealthExcellent decimal.Decimal `json:"health_excellent"`
	HealthGood      decimal.Decimal `json:"health_good"`
	HealthFair      decimal.Decimal `json:"health_fair"`
	HealthPoor      decimal.Decimal `json:"health_poor"`

	GenderMale   decimal.Decimal `json:"gender_male"`
	GenderFemale decimal.Decimal `json:"gender_female"`

	OccupationLow    decimal.Decimal `json:"occupation_low"`
	OccupationMedium decimal.Decimal `json:"occupation_medium"`
	OccupationHigh   decimal.Decimal `json:"occupation_high"`
}

// BasePremiums holds one independently configured base rate per payment
// frequency. Values are not derived from each other; a zero value means
// "unset" and triggers the calculator's fallback chain.
type BasePremiums struct {
	LumpSum    decimal.Decimal `json:"lump_sum"`
	Annual     decimal.Decimal `json:"annual"`
	SemiAnnual decimal.Decimal `json:"semi_annual"`
	Quarterly  decimal.Decimal `json:"quarterly"`
	Monthly    decimal.Decimal `json:"monthly"`
}

// RatePlan is the unit of rating configuration: a concrete coverage/term
// cell under a product, with its own base premiums and rate table.
type RatePlan struct {
	ID        string `json:"id"`
	Code      string `json:"code"` // unique
	ProductID string `json:"product_id"`
	Name      string `json:"name"`

	CoverageAmount int64 `json:"coverage_amount"`
	TermYears      int   `json:"term_years"`
	MinAge         int   `json:"min_age"`
	MaxAge         int   `json:"max_age"`

	RequiresMedicalExam bool `json:"requires_medical_exam"`
	Active              bool `json:"active"`

	Base  BasePremiums `json:"base_premiums"`
	Rates RateTable    `json:"rates"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RatePlanRepo interface {
	ListByProduct(ctx context.Context, productID string) ([]RatePlan, error)
	GetByCode(ctx context.Context, code string) (RatePlan, error)
	GetByID(ctx context.Context, id string) (RatePlan, error)
	Create(ctx context.Context, p RatePlan) error
	Update(ctx context.Context, p RatePlan) error
	Delete(ctx context.Context, id string) error
}

// ReferenceCounter reports how many policies or applications still point
// at a plan code. Hard deletes are refused while the count is non-zero.
type ReferenceCounter interface {
	CountPlanReferences(ctx context.Context, planCode string) (int64, error)
}

// Validate enforces the admin-time configuration invariants. Violations
// are data-quality errors (ErrInvalidConfig); they are caught on
// create/update so that quote-time resolution never has to fail.
func (p RatePlan) Validate() error {
	if p.Code == "" {
		return fmt.Errorf("%w: missing plan code", ErrValidation)
	}
	if p.Name == "" {
		return fmt.Errorf("%w: missing plan name", ErrValidation)
	}
	if p.ProductID == "" {
		return fmt.Errorf("%w: missing product reference", ErrValidation)
	}
	if p.TermYears < 1 {
		return fmt.Errorf("%w: term must be at least 1 year", ErrInvalidConfig)
	}
	if p.CoverageAmount <= 0 {
		return fmt.Errorf("%w: coverage must be > 0", ErrInvalidConfig)
	}
	if p.MinAge < 0 || p.MaxAge < p.MinAge {
		return fmt.Errorf("%w: invalid age range [%d, %d]", ErrInvalidConfig, p.MinAge, p.MaxAge)
	}

	// The fallback chain bottoms out at the monthly base (quarterly,
	// semi-annual) or the annual base (lump-sum). Both must be set.
	if !p.Base.Monthly.IsPositive() {
		return fmt.Errorf("%w: monthly base premium must be > 0", ErrInvalidConfig)
	}
	if !p.Base.Annual.IsPositive() {
		return fmt.Errorf("%w: annual base premium must be > 0", ErrInvalidConfig)
	}

	return p.Rates.validate(p.MinAge, p.MaxAge)
}

func (t RateTable) validate(minAge, maxAge int) error {
	if len(t.AgeBands) == 0 {
		return fmt.Errorf("%w: no age bands configured", ErrInvalidConfig)
	}
	for i, b := range t.AgeBands {
		if b.MaxAge < b.MinAge {
			return fmt.Errorf("%w: age band %d is inverted [%d, %d]", ErrInvalidConfig, i, b.MinAge, b.MaxAge)
		}
		if !b.Factor.IsPositive() {
			return fmt.Errorf("%w: age band %d factor must be > 0", ErrInvalidConfig, i)
		}
	}

	// Bands must be contiguous and cover [minAge, maxAge] exactly once.
	if t.AgeBands[0].MinAge > minAge {
		return fmt.Errorf("%w: age bands start at %d, plan minimum age is %d",
			ErrInvalidConfig, t.AgeBands[0].MinAge, minAge)
	}
	for i := 1; i < len(t.AgeBands); i++ {
		prev, cur := t.AgeBands[i-1], t.AgeBands[i]
		if cur.MinAge != prev.MaxAge+1 {
			return fmt.Errorf("%w: age bands %d and %d are not contiguous ([%d,%d] then [%d,%d])",
				ErrInvalidConfig, i-1, i, prev.MinAge, prev.MaxAge, cur.MinAge, cur.MaxAge)
		}
	}
	if last := t.AgeBands[len(t.AgeBands)-1]; last.MaxAge < maxAge {
		return fmt.Errorf("%w: age bands end at %d, plan maximum age is %d",
			ErrInvalidConfig, last.MaxAge, maxAge)
	}

	for name, f := range map[string]decimal.Decimal{
		"health_excellent":  t.HealthExcellent,
		"health_good":       t.HealthGood,
		"health_fair":       t.HealthFair,
		"health_poor":       t.HealthPoor,
		"gender_male":       t.GenderMale,
		"gender_female":     t.GenderFemale,
		"occupation_low":    t.OccupationLow,
		"occupation_medium": t.OccupationMedium,
		"occupation_high":   t.OccupationHigh,
	} {
		if !f.IsPositive() {
			return fmt.Errorf("%w: multiplier %s must be > 0", ErrInvalidConfig, name)
		}
	}
	return nil
}

var (
	ErrPlanNotFound = fmt.Errorf("%w: rate plan not found", ErrNotFound)
	ErrPlanInUse    = fmt.Errorf("%w: rate plan is referenced by policies or applications", ErrConflict)
)

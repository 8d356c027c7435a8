package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// QuoteRequest asks for a single-frequency premium for a specific plan.
// Ephemeral: requests are priced and discarded, never stored.
type QuoteRequest struct {
	PlanCode         string `json:"plan_code"`
	Age              int    `json:"age"`
	Gender           string `json:"gender"`
	HealthStatus     string `json:"health_status"`
	OccupationRisk   string `json:"occupation_risk"`
	PaymentFrequency string `json:"payment_frequency"`
}

// ComparisonRequest asks for payment options across frequencies for a
// product. PaymentFrequency is optional; empty or "all" returns every
// option.
type ComparisonRequest struct {
	ProductID        string `json:"product_id"`
	TermYears        int    `json:"term_years"`
	CoverageAmount   int64  `json:"coverage_amount"`
	PaymentFrequency string `json:"payment_frequency,omitempty"`

	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	HealthStatus   string `json:"health_status"`
	OccupationRisk string `json:"occupation_risk"`
}

// QuoteComparison is the product-level quoting result: one rated option
// per requested payment frequency, in fixed presentation order.
type QuoteComparison struct {
	ProductID      string             `json:"product_id"`
	ProductCode    string             `json:"product_code"`
	ProductName    string             `json:"product_name"`
	PlanCode       string             `json:"plan_code"`
	CoverageAmount int64              `json:"coverage_amount"`
	TermYears      int                `json:"term_years"`
	PaymentOptions []PremiumBreakdown `json:"payment_options"`
}

// QuoteService is the rating engine's boundary. Both operations are
// side-effect-free: a single configuration point-lookup, then pure
// computation. Nothing is cached between requests.
type QuoteService interface {
	CalculatePremium(ctx context.Context, req QuoteRequest) (PremiumBreakdown, error)
	GetPremiumQuotes(ctx context.Context, req ComparisonRequest) (QuoteComparison, error)
}

type quoteService struct {
	products ProductRepo
	plans    RatePlanRepo
}

func NewQuoteService(products ProductRepo, plans RatePlanRepo) QuoteService {
	return &quoteService{products: products, plans: plans}
}

func (s *quoteService) CalculatePremium(ctx context.Context, req QuoteRequest) (PremiumBreakdown, error) {
	if req.PlanCode == "" {
		return PremiumBreakdown{}, fmt.Errorf("%w: missing plan code", ErrValidation)
	}

	plan, err := s.plans.GetByCode(ctx, req.PlanCode)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return PremiumBreakdown{}, fmt.Errorf("%w: plan %q", ErrNotFound, req.PlanCode)
		}
		return PremiumBreakdown{}, err
	}
	if !plan.Active {
		return PremiumBreakdown{}, fmt.Errorf("%w: plan %q", ErrNotFound, req.PlanCode)
	}
	// Guards the schedule builder's division; valid plans always pass.
	if plan.TermYears < 1 {
		return PremiumBreakdown{}, fmt.Errorf("%w: plan %q has zero term", ErrInvalidConfig, plan.Code)
	}

	product, err := s.products.GetByID(ctx, plan.ProductID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return PremiumBreakdown{}, fmt.Errorf("%w: product for plan %q", ErrNotFound, plan.Code)
		}
		return PremiumBreakdown{}, err
	}

	m := plan.Rates.Resolve(Applicant{
		Age:            req.Age,
		Gender:         req.Gender,
		HealthStatus:   req.HealthStatus,
		OccupationRisk: req.OccupationRisk,
	})
	return BuildBreakdown(plan, product.Fees, ParseFrequency(req.PaymentFrequency), m), nil
}

func (s *quoteService) GetPremiumQuotes(ctx context.Context, req ComparisonRequest) (QuoteComparison, error) {
	if req.ProductID == "" {
		return QuoteComparison{}, fmt.Errorf("%w: missing product id", ErrValidation)
	}
	if req.TermYears < 1 {
		return QuoteComparison{}, fmt.Errorf("%w: term must be at least 1 year", ErrValidation)
	}

	product, err := s.products.GetByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return QuoteComparison{}, fmt.Errorf("%w: product %q", ErrNotFound, req.ProductID)
		}
		return QuoteComparison{}, err
	}
	if !product.Active {
		return QuoteComparison{}, fmt.Errorf("%w: product %q", ErrProductInactive, product.Code)
	}

	plan, err := s.selectPlan(ctx, product.ID, req.TermYears, req.CoverageAmount)
	if err != nil {
		return QuoteComparison{}, err
	}

	m := plan.Rates.Resolve(Applicant{
		Age:            req.Age,
		Gender:         req.Gender,
		HealthStatus:   req.HealthStatus,
		OccupationRisk: req.OccupationRisk,
	})

	options := CompareQuotes(plan, product.Fees, m)
	if f := strings.TrimSpace(req.PaymentFrequency); f != "" && !strings.EqualFold(f, "all") {
		want := ParseFrequency(f)
		for _, opt := range options {
			if opt.Frequency == want {
				options = []PremiumBreakdown{opt}
				break
			}
		}
	}

	return QuoteComparison{
		ProductID:      product.ID,
		ProductCode:    product.Code,
		ProductName:    product.Name,
		PlanCode:       plan.Code,
		CoverageAmount: plan.CoverageAmount,
		TermYears:      plan.TermYears,
		PaymentOptions: options,
	}, nil
}

// selectPlan picks the active plan of the product that matches the
// requested term, preferring an exact coverage match over the first
// term match.
func (s *quoteService) selectPlan(ctx context.Context, productID string, termYears int, coverage int64) (RatePlan, error) {
	plans, err := s.plans.ListByProduct(ctx, productID)
	if err != nil {
		return RatePlan{}, err
	}

	var fallback *RatePlan
	for i := range plans {
		p := plans[i]
		if !p.Active || p.TermYears != termYears {
			continue
		}
		if p.CoverageAmount == coverage {
			return p, nil
		}
		if fallback == nil {
			fallback = &plans[i]
		}
	}
	if fallback != nil {
		return *fallback, nil
	}
	return RatePlan{}, fmt.Errorf("%w: no active plan for a %d-year term", ErrNotFound, termYears)
}

package core_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coverledger/go-rating/internal/core"
)

// In-memory fakes for the repo interfaces.

type fakeProductRepo struct {
	byID map[string]core.Product
}

func (f *fakeProductRepo) List(ctx context.Context) ([]core.Product, error) {
	var out []core.Product
	for _, p := range f.byID {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (core.Product, error) {
	p, ok := f.byID[id]
	if !ok {
		return core.Product{}, core.ErrNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) GetByCode(ctx context.Context, code string) (core.Product, error) {
	for _, p := range f.byID {
		if p.Code == code {
			return p, nil
		}
	}
	return core.Product{}, core.ErrNotFound
}

func (f *fakeProductRepo) Create(ctx context.Context, p core.Product) error {
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProductRepo) Update(ctx context.Context, p core.Product) error {
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

type fakePlanRepo struct {
	plans []core.RatePlan
}

func (f *fakePlanRepo) ListByProduct(ctx context.Context, productID string) ([]core.RatePlan, error) {
	var out []core.RatePlan
	for _, p := range f.plans {
		if p.ProductID == productID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePlanRepo) GetByCode(ctx context.Context, code string) (core.RatePlan, error) {
	for _, p := range f.plans {
		if p.Code == code {
			return p, nil
		}
	}
	return core.RatePlan{}, core.ErrNotFound
}

func (f *fakePlanRepo) GetByID(ctx context.Context, id string) (core.RatePlan, error) {
	for _, p := range f.plans {
		if p.ID == id {
			return p, nil
		}
	}
	return core.RatePlan{}, core.ErrNotFound
}

func (f *fakePlanRepo) Create(ctx context.Context, p core.RatePlan) error {
	f.plans = append(f.plans, p)
	return nil
}

func (f *fakePlanRepo) Update(ctx context.Context, p core.RatePlan) error {
	for i := range f.plans {
		if f.plans[i].ID == p.ID {
			f.plans[i] = p
			return nil
		}
	}
	return core.ErrNotFound
}

func (f *fakePlanRepo) Delete(ctx context.Context, id string) error {
	for i := range f.plans {
		if f.plans[i].ID == id {
			f.plans = append(f.plans[:i], f.plans[i+1:]...)
			return nil
		}
	}
	return core.ErrNotFound
}

type fakeRefs struct{ count int64 }

func (f *fakeRefs) CountPlanReferences(ctx context.Context, planCode string) (int64, error) {
	return f.count, nil
}

func testProduct() core.Product {
	return core.Product{
		ID:     "prod-1",
		Code:   "term-life",
		Name:   "Term Life",
		Type:   core.ProductTypeLife,
		Active: true,
		Fees:   testFees(),
	}
}

func newQuoteService(products ...core.Product) (core.QuoteService, *fakePlanRepo) {
	pr := &fakeProductRepo{byID: map[string]core.Product{}}
	for _, p := range products {
		pr.byID[p.ID] = p
	}
	plans := &fakePlanRepo{plans: []core.RatePlan{testPlan()}}
	return core.NewQuoteService(pr, plans), plans
}

func TestCalculatePremium_WorkedExample(t *testing.T) {
	svc, _ := newQuoteService(testProduct())

	bd, err := svc.CalculatePremium(context.Background(), core.QuoteRequest{
		PlanCode:         "term-life-10",
		Age:              30,
		Gender:           "Female",
		HealthStatus:     "Good",
		OccupationRisk:   "Low",
		PaymentFrequency: "monthly",
	})

	require.NoError(t, err)
	assert.Equal(t, "110.00", bd.Premium.StringFixed(2))
	assert.Equal(t, 120, bd.Payments)
	assert.Equal(t, "9.17", bd.AmountPerPayment.StringFixed(2))
	assert.Equal(t, "1445.00", bd.GrandTotal.StringFixed(2))
}

func TestCalculatePremium_UnknownPlanIsNotFound(t *testing.T) {
	svc, _ := newQuoteService(testProduct())

	_, err := svc.CalculatePremium(context.Background(), core.QuoteRequest{PlanCode: "nope"})
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestCalculatePremium_DisabledPlanIsNotFound(t *testing.T) {
	svc, plans := newQuoteService(testProduct())
	plans.plans[0].Active = false

	_, err := svc.CalculatePremium(context.Background(), core.QuoteRequest{PlanCode: "term-life-10"})
	assert.ErrorIs(t, err, core.ErrNotFound)
}

// Malformed risk attributes never fail a quote; they degrade to the
// defined defaults.
func TestCalculatePremium_GarbageAttributesStillPrice(t *testing.T) {
	svc, _ := newQuoteService(testProduct())

	bd, err := svc.CalculatePremium(context.Background(), core.QuoteRequest{
		PlanCode:         "term-life-10",
		Age:              999,
		Gender:           "n/a",
		HealthStatus:     "meh",
		OccupationRisk:   "stunt pilot",
		PaymentFrequency: "whenever",
	})

	require.NoError(t, err)
	// unrecognized frequency parses to monthly
	assert.Equal(t, core.FrequencyMonthly, bd.Frequency)
	assert.Equal(t, "110.00", bd.Premium.StringFixed(2))
}

func TestGetPremiumQuotes_AllOptions(t *testing.T) {
	svc, _ := newQuoteService(testProduct())

	cmp, err := svc.GetPremiumQuotes(context.Background(), core.ComparisonRequest{
		ProductID:      "prod-1",
		TermYears:      10,
		CoverageAmount: 250000,
		Age:            30,
	})

	require.NoError(t, err)
	assert.Equal(t, "term-life", cmp.ProductCode)
	assert.Equal(t, "term-life-10", cmp.PlanCode)
	assert.Equal(t, int64(250000), cmp.CoverageAmount)
	require.Len(t, cmp.PaymentOptions, 5)
	assert.Equal(t, core.FrequencyLumpSum, cmp.PaymentOptions[0].Frequency)
	assert.True(t, cmp.PaymentOptions[0].Recommended)
}

func TestGetPremiumQuotes_SingleFrequency(t *testing.T) {
	svc, _ := newQuoteService(testProduct())

	cmp, err := svc.GetPremiumQuotes(context.Background(), core.ComparisonRequest{
		ProductID:        "prod-1",
		TermYears:        10,
		CoverageAmount:   250000,
		PaymentFrequency: "quarterly",
	})

	require.NoError(t, err)
	require.Len(t, cmp.PaymentOptions, 1)
	assert.Equal(t, core.FrequencyQuarterly, cmp.PaymentOptions[0].Frequency)
}

func TestGetPremiumQuotes_InactiveProduct(t *testing.T) {
	p := testProduct()
	p.Active = false
	svc, _ := newQuoteService(p)

	cmp, err := svc.GetPremiumQuotes(context.Background(), core.ComparisonRequest{
		ProductID: "prod-1",
		TermYears: 10,
	})

	assert.ErrorIs(t, err, core.ErrConflict)
	// Errors never come with a partially populated option list.
	assert.Empty(t, cmp.PaymentOptions)
}

func TestGetPremiumQuotes_NoMatchingTerm(t *testing.T) {
	svc, _ := newQuoteService(testProduct())

	_, err := svc.GetPremiumQuotes(context.Background(), core.ComparisonRequest{
		ProductID: "prod-1",
		TermYears: 37,
	})
	assert.ErrorIs(t, err, core.ErrNotFound)
}

// A zero term is rejected before the schedule builder can be reached.
func TestGetPremiumQuotes_ZeroTermRejected(t *testing.T) {
	svc, _ := newQuoteService(testProduct())

	_, err := svc.GetPremiumQuotes(context.Background(), core.ComparisonRequest{
		ProductID: "prod-1",
		TermYears: 0,
	})
	assert.ErrorIs(t, err, core.ErrValidation)
}

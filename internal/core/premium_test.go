package core_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/coverledger/go-rating/internal/core"
)

func TestBaseForFrequency_ConfiguredValuesWin(t *testing.T) {
	plan := testPlan()
	plan.Base.Quarterly = dec("310")
	plan.Base.SemiAnnual = dec("610")
	plan.Base.LumpSum = dec("10500")

	assert.Equal(t, "110", plan.BaseForFrequency(core.FrequencyMonthly).String())
	assert.Equal(t, "310", plan.BaseForFrequency(core.FrequencyQuarterly).String())
	assert.Equal(t, "610", plan.BaseForFrequency(core.FrequencySemiAnnual).String())
	assert.Equal(t, "1200", plan.BaseForFrequency(core.FrequencyAnnual).String())
	assert.Equal(t, "10500", plan.BaseForFrequency(core.FrequencyLumpSum).String())
}

func TestBaseForFrequency_FallbackChain(t *testing.T) {
	plan := testPlan()
	plan.Base.Monthly = dec("100")

	// quarterly = monthly × 3, semi-annual = monthly × 6 when unset
	assert.Equal(t, "300", plan.BaseForFrequency(core.FrequencyQuarterly).String())
	assert.Equal(t, "600", plan.BaseForFrequency(core.FrequencySemiAnnual).String())

	// lump-sum = annual × term years when unset
	assert.Equal(t, "12000", plan.BaseForFrequency(core.FrequencyLumpSum).String())
}

// An unrecognized frequency value selects the annual base. This is the
// calculator's own fallback, distinct from the request parser's
// monthly default.
func TestBaseForFrequency_UnknownFallsBackToAnnual(t *testing.T) {
	plan := testPlan()

	assert.Equal(t, "1200", plan.BaseForFrequency(core.PaymentFrequency("weekly")).String())
	assert.Equal(t, plan.Base.Annual.String(),
		plan.BaseForFrequency(core.DefaultRateFrequency).String())
}

// A zero monthly base yields a zero premium. Accepted as a plan data
// issue; the calculator does not special-case it.
func TestCalculatePremium_ZeroMonthlyBase(t *testing.T) {
	plan := testPlan()
	plan.Base.Monthly = decimal.Zero

	got := core.CalculatePremium(plan, core.FrequencyMonthly, neutralMultipliers())
	assert.True(t, got.IsZero())
}

func TestCalculatePremium_AppliesAllFourFactors(t *testing.T) {
	plan := testPlan()
	m := core.Multipliers{
		Age:        dec("1.1"),
		Gender:     dec("1.15"),
		Health:     dec("1.25"),
		Occupation: dec("1.2"),
	}

	// 1200 × 1.1 × 1.15 × 1.25 × 1.2 = 2277
	got := core.CalculatePremium(plan, core.FrequencyAnnual, m)
	assert.Equal(t, "2277.00", got.StringFixed(2))
}

// The four factors commute: any permutation of the multiplier tuple
// produces the same premium.
func TestCalculatePremium_Commutativity(t *testing.T) {
	plan := testPlan()
	factors := []decimal.Decimal{dec("1.1"), dec("0.95"), dec("1.6"), dec("1.02")}

	var premiums []string
	permute(factors, func(p []decimal.Decimal) {
		m := core.Multipliers{Age: p[0], Gender: p[1], Health: p[2], Occupation: p[3]}
		premiums = append(premiums, core.CalculatePremium(plan, core.FrequencyAnnual, m).String())
	})

	assert.Len(t, premiums, 24)
	for _, p := range premiums[1:] {
		assert.Equal(t, premiums[0], p)
	}
}

func permute(in []decimal.Decimal, visit func([]decimal.Decimal)) {
	var rec func(k int)
	rec = func(k int) {
		if k == len(in) {
			visit(in)
			return
		}
		for i := k; i < len(in); i++ {
			in[k], in[i] = in[i], in[k]
			rec(k + 1)
			in[k], in[i] = in[i], in[k]
		}
	}
	rec(0)
}

// Currency rounding is half away from zero, deterministically.
func TestCalculatePremium_RoundsHalfAwayFromZero(t *testing.T) {
	plan := testPlan()
	plan.Base.Monthly = dec("100.005")

	got := core.CalculatePremium(plan, core.FrequencyMonthly, neutralMultipliers())
	assert.Equal(t, "100.01", got.StringFixed(2))
}

package core_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/coverledger/go-rating/internal/core"
)

func TestRatePlanValidate_AcceptsWellFormedPlan(t *testing.T) {
	assert.NoError(t, testPlan().Validate())
}

func TestRatePlanValidate_AgeBandsMustBeContiguous(t *testing.T) {
	plan := testPlan()
	plan.Rates.AgeBands[2].MinAge = 37 // gap: [26,35] then [37,45]

	err := plan.Validate()
	assert.ErrorIs(t, err, core.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "not contiguous")
}

func TestRatePlanValidate_AgeBandsMustCoverPlanRange(t *testing.T) {
	plan := testPlan()

	plan.MaxAge = 70 // bands stop at 65
	assert.ErrorIs(t, plan.Validate(), core.ErrInvalidConfig)

	plan = testPlan()
	plan.MinAge = 16 // bands start at 18
	assert.ErrorIs(t, plan.Validate(), core.ErrInvalidConfig)
}

func TestRatePlanValidate_MultipliersMustBePositive(t *testing.T) {
	plan := testPlan()
	plan.Rates.HealthPoor = decimal.Zero
	assert.ErrorIs(t, plan.Validate(), core.ErrInvalidConfig)

	plan = testPlan()
	plan.Rates.AgeBands[0].Factor = dec("-0.5")
	assert.ErrorIs(t, plan.Validate(), core.ErrInvalidConfig)
}

// The base premium fallback chain bottoms out at the monthly and annual
// bases; both must be configured.
func TestRatePlanValidate_BaseChainMustNotBottomOutAtZero(t *testing.T) {
	plan := testPlan()
	plan.Base.Monthly = decimal.Zero
	assert.ErrorIs(t, plan.Validate(), core.ErrInvalidConfig)

	plan = testPlan()
	plan.Base.Annual = decimal.Zero
	assert.ErrorIs(t, plan.Validate(), core.ErrInvalidConfig)
}

func TestRatePlanValidate_TermAndCoverage(t *testing.T) {
	plan := testPlan()
	plan.TermYears = 0
	assert.ErrorIs(t, plan.Validate(), core.ErrInvalidConfig)

	plan = testPlan()
	plan.CoverageAmount = 0
	assert.ErrorIs(t, plan.Validate(), core.ErrInvalidConfig)
}

package core_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/coverledger/go-rating/internal/core"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// testRates is a neutral table (all factors 1.0) except where a test
// overrides a factor to observe its effect.
func testRates() core.RateTable {
	one := decimal.NewFromInt(1)
	return core.RateTable{
		AgeBands: []core.AgeBand{
			{MinAge: 18, MaxAge: 25, Factor: one},
			{MinAge: 26, MaxAge: 35, Factor: one},
			{MinAge: 36, MaxAge: 45, Factor: one},
			{MinAge: 46, MaxAge: 55, Factor: one},
			{MinAge: 56, MaxAge: 65, Factor: one},
		},
		HealthExcellent:  one,
		HealthGood:       one,
		HealthFair:       one,
		HealthPoor:       one,
		GenderMale:       one,
		GenderFemale:     one,
		OccupationLow:    one,
		OccupationMedium: one,
		OccupationHigh:   one,
	}
}

// testPlan mirrors the worked example used across the suite: annual
// base 1200, monthly base 110, 10-year term.
func testPlan() core.RatePlan {
	return core.RatePlan{
		ID:             "plan-1",
		Code:           "term-life-10",
		ProductID:      "prod-1",
		Name:           "Term Life 10-Year",
		CoverageAmount: 250000,
		TermYears:      10,
		MinAge:         18,
		MaxAge:         65,
		Active:         true,
		Base: core.BasePremiums{
			Annual:  dec("1200"),
			Monthly: dec("110"),
		},
		Rates:     testRates(),
		CreatedAt: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

func testFees() core.FeeSchedule {
	return core.FeeSchedule{
		Processing:     dec("50"),
		PolicyIssuance: dec("25"),
		MedicalCheckup: dec("120"),
		AdminPerYear:   dec("15"),
	}
}

func neutralMultipliers() core.Multipliers {
	one := decimal.NewFromInt(1)
	return core.Multipliers{Age: one, Gender: one, Health: one, Occupation: one}
}

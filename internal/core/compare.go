package core

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PremiumBreakdown is the full result of rating one plan at one payment
// frequency. It is computed fresh on every request and never persisted
// or cached; applicant inputs can change between requests.
type PremiumBreakdown struct {
	PlanCode  string           `json:"plan_code"`
	Frequency PaymentFrequency `json:"frequency"`

	BasePremium decimal.Decimal `json:"base_premium"`
	Multipliers Multipliers     `json:"multipliers"`

	// Premium is the per-period premium after multipliers;
	// PremiumForTerm is the premium across the whole policy term,
	// before fees.
	Premium        decimal.Decimal `json:"premium"`
	PremiumForTerm decimal.Decimal `json:"premium_for_term"`

	Payments         int             `json:"payments"`
	AmountPerPayment decimal.Decimal `json:"amount_per_payment"`

	Fees       FeeBreakdown    `json:"fees"`
	GrandTotal decimal.Decimal `json:"grand_total"`

	// Comparison fields, populated by CompareQuotes. Savings are
	// relative to the monthly option.
	SavingsVsMonthly  decimal.Decimal `json:"savings_vs_monthly"`
	SavingsPercentage decimal.Decimal `json:"savings_percentage"`
	Recommended       bool            `json:"recommended"`
	RecommendReason   string          `json:"recommend_reason,omitempty"`
}

// BuildBreakdown rates one plan at one frequency: resolve base, apply
// multipliers, spread the term premium over the payment schedule, and
// stack fees.
//
// The term premium is the per-period premium times the term in years
// for every scheduled frequency; a lump-sum premium already covers the
// full term and is taken as-is.
func BuildBreakdown(plan RatePlan, fees FeeSchedule, f PaymentFrequency, m Multipliers) PremiumBreakdown {
	premium := CalculatePremium(plan, f, m)

	termPremium := premium
	if f != FrequencyLumpSum {
		termPremium = premium.Mul(decimal.NewFromInt(int64(plan.TermYears)))
	}

	sched := BuildSchedule(termPremium, f, plan.TermYears)
	fb := AggregateFees(fees, plan.TermYears, termPremium)

	return PremiumBreakdown{
		PlanCode:         plan.Code,
		Frequency:        f,
		BasePremium:      plan.BaseForFrequency(f),
		Multipliers:      m,
		Premium:          premium,
		PremiumForTerm:   termPremium,
		Payments:         sched.Payments,
		AmountPerPayment: sched.AmountPerPayment,
		Fees:             fb,
		GrandTotal:       fb.GrandTotal,
	}
}

var percentScale = decimal.NewFromInt(100)

// CompareQuotes rates the plan at every payment frequency and annotates
// each option with its savings relative to monthly. The returned slice
// is always in the fixed order lump-sum, annual, semi-annual,
// quarterly, monthly; clients render it verbatim.
//
// The lump-sum option is marked recommended unconditionally; the
// recommendation is a fixed business rule, not an arg-min over grand
// totals.
func CompareQuotes(plan RatePlan, fees FeeSchedule, m Multipliers) []PremiumBreakdown {
	monthly := BuildBreakdown(plan, fees, FrequencyMonthly, m)

	options := make([]PremiumBreakdown, 0, 5)
	for _, f := range AllFrequencies() {
		opt := monthly
		if f != FrequencyMonthly {
			opt = BuildBreakdown(plan, fees, f, m)
			opt.SavingsVsMonthly = roundCurrency(monthly.GrandTotal.Sub(opt.GrandTotal))
			if monthly.GrandTotal.IsPositive() {
				opt.SavingsPercentage = opt.SavingsVsMonthly.
					Mul(percentScale).
					DivRound(monthly.GrandTotal, currencyPlaces)
			}
		}
		if f == FrequencyLumpSum {
			opt.Recommended = true
			opt.RecommendReason = fmt.Sprintf(
				"Pay once up front and save %s%% compared to monthly payments.",
				opt.SavingsPercentage.StringFixed(1))
		}
		options = append(options, opt)
	}
	return options
}

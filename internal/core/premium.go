package core

import "github.com/shopspring/decimal"

// currencyPlaces is the rounding precision for all money amounts.
// decimal.Round rounds half away from zero, which is the currency
// convention used throughout.
const currencyPlaces = 2

func roundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(currencyPlaces)
}

// BaseForFrequency selects the plan's base premium for a frequency,
// applying the fallback chain for unset (zero) values:
//
//	quarterly   → monthly × 3
//	semi-annual → monthly × 6
//	lump-sum    → annual × term years
//	unrecognized → annual (DefaultRateFrequency)
//
// Monthly has no fallback: a zero monthly base yields a zero premium,
// which is treated as a plan data issue, not handled here.
func (p RatePlan) BaseForFrequency(f PaymentFrequency) decimal.Decimal {
	switch f {
	case FrequencyMonthly:
		return p.Base.Monthly
	case FrequencyQuarterly:
		if p.Base.Quarterly.IsPositive() {
			return p.Base.Quarterly
		}
		return p.Base.Monthly.Mul(decimal.NewFromInt(3))
	case FrequencySemiAnnual:
		if p.Base.SemiAnnual.IsPositive() {
			return p.Base.SemiAnnual
		}
		return p.Base.Monthly.Mul(decimal.NewFromInt(6))
	case FrequencyLumpSum:
		if p.Base.LumpSum.IsPositive() {
			return p.Base.LumpSum
		}
		return p.Base.Annual.Mul(decimal.NewFromInt(int64(p.TermYears)))
	default:
		return p.Base.Annual
	}
}

// CalculatePremium combines the selected base premium with the four
// resolved risk multipliers and rounds to currency precision. Pure;
// never fails once given a plan.
func CalculatePremium(p RatePlan, f PaymentFrequency, m Multipliers) decimal.Decimal {
	return roundCurrency(p.BaseForFrequency(f).Mul(m.Product()))
}

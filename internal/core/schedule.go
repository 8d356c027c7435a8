package core

import "github.com/shopspring/decimal"

// PaymentSchedule is the installment plan for a quoted premium.
type PaymentSchedule struct {
	Payments         int             `json:"payments"`
	AmountPerPayment decimal.Decimal `json:"amount_per_payment"`
}

// BuildSchedule derives the installment count and per-installment amount
// from the full-term premium. Lump-sum is a single payment of the whole
// term premium, with no division.
//
// termYears >= 1 is a precondition the caller must have enforced; the
// quote service rejects a zero term before any schedule is built.
func BuildSchedule(termPremium decimal.Decimal, f PaymentFrequency, termYears int) PaymentSchedule {
	if f == FrequencyLumpSum {
		return PaymentSchedule{Payments: 1, AmountPerPayment: termPremium}
	}

	count := f.PaymentsPerYear() * termYears
	return PaymentSchedule{
		Payments:         count,
		AmountPerPayment: roundCurrency(termPremium.Div(decimal.NewFromInt(int64(count)))),
	}
}

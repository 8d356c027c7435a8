package core

import "github.com/shopspring/decimal"

// FeeBreakdown itemizes the fees stacked on top of a term premium.
type FeeBreakdown struct {
	OneTime    decimal.Decimal `json:"one_time"`    // processing + policy issuance
	Medical    decimal.Decimal `json:"medical"`     // medical-checkup fee
	TotalAdmin decimal.Decimal `json:"total_admin"` // admin fee × term years
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// AggregateFees adds the product's one-time and recurring fees to the
// full-term premium.
//
// The medical-checkup fee is charged unconditionally, even for plans
// whose RequiresMedicalExam flag is false. That matches the behavior
// quoting has always had; making it conditional is an open pricing
// question, so the flag is deliberately not consulted here.
func AggregateFees(fees FeeSchedule, termYears int, termPremium decimal.Decimal) FeeBreakdown {
	oneTime := fees.Processing.Add(fees.PolicyIssuance)
	totalAdmin := fees.AdminPerYear.Mul(decimal.NewFromInt(int64(termYears)))

	return FeeBreakdown{
		OneTime:    roundCurrency(oneTime),
		Medical:    roundCurrency(fees.MedicalCheckup),
		TotalAdmin: roundCurrency(totalAdmin),
		GrandTotal: roundCurrency(termPremium.Add(oneTime).Add(fees.MedicalCheckup).Add(totalAdmin)),
	}
}

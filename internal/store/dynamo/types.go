package dynamo

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/coverledger/go-rating/internal/core"
)

// Money amounts are stored as float64 attributes and converted to
// decimals at the boundary, mirroring the mongo backend.

type ProductItem struct {
	ID     string `dynamodbav:"id"`
	Code   string `dynamodbav:"code"`
	Name   string `dynamodbav:"name"`
	Type   string `dynamodbav:"type"`
	Active bool   `dynamodbav:"active"`

	FeeProcessing     float64 `dynamodbav:"fee_processing"`
	FeePolicyIssuance float64 `dynamodbav:"fee_policy_issuance"`
	FeeMedicalCheckup float64 `dynamodbav:"fee_medical_checkup"`
	FeeAdminPerYear   float64 `dynamodbav:"fee_admin_per_year"`

	AdjMonthlySurcharge    float64 `dynamodbav:"adj_monthly_surcharge"`
	AdjQuarterlySurcharge  float64 `dynamodbav:"adj_quarterly_surcharge"`
	AdjSemiAnnualSurcharge float64 `dynamodbav:"adj_semi_annual_surcharge"`
	AdjLumpSumDiscount     float64 `dynamodbav:"adj_lump_sum_discount"`

	CreatedAt time.Time `dynamodbav:"created_at"`
	UpdatedAt time.Time `dynamodbav:"updated_at"`
}

func (i ProductItem) ToCore() core.Product {
	return core.Product{
		ID:     i.ID,
		Code:   i.Code,
		Name:   i.Name,
		Type:   core.ProductType(i.Type),
		Active: i.Active,
		Fees: core.FeeSchedule{
			Processing:     decimal.NewFromFloat(i.FeeProcessing),
			PolicyIssuance: decimal.NewFromFloat(i.FeePolicyIssuance),
			MedicalCheckup: decimal.NewFromFloat(i.FeeMedicalCheckup),
			AdminPerYear:   decimal.NewFromFloat(i.FeeAdminPerYear),
		},
		Adjustments: core.FrequencyAdjustments{
			MonthlySurcharge:    decimal.NewFromFloat(i.AdjMonthlySurcharge),
			QuarterlySurcharge:  decimal.NewFromFloat(i.AdjQuarterlySurcharge),
			SemiAnnualSurcharge: decimal.NewFromFloat(i.AdjSemiAnnualSurcharge),
			LumpSumDiscount:     decimal.NewFromFloat(i.AdjLumpSumDiscount),
		},
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

func productItemFromCore(p core.Product) ProductItem {
	return ProductItem{
		ID:     p.ID,
		Code:   p.Code,
		Name:   p.Name,
		Type:   string(p.Type),
		Active: p.Active,

		FeeProcessing:     p.Fees.Processing.InexactFloat64(),
		FeePolicyIssuance: p.Fees.PolicyIssuance.InexactFloat64(),
		FeeMedicalCheckup: p.Fees.MedicalCheckup.InexactFloat64(),
		FeeAdminPerYear:   p.Fees.AdminPerYear.InexactFloat64(),

		AdjMonthlySurcharge:    p.Adjustments.MonthlySurcharge.InexactFloat64(),
		AdjQuarterlySurcharge:  p.Adjustments.QuarterlySurcharge.InexactFloat64(),
		AdjSemiAnnualSurcharge: p.Adjustments.SemiAnnualSurcharge.InexactFloat64(),
		AdjLumpSumDiscount:     p.Adjustments.LumpSumDiscount.InexactFloat64(),

		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type AgeBandItem struct {
	MinAge int     `dynamodbav:"min_age"`
	MaxAge int     `dynamodbav:"max_age"`
	Factor float64 `dynamodbav:"factor"`
}

type RatePlanItem struct {
	ID        string `dynamodbav:"id"`
	Code      string `dynamodbav:"code"`
	ProductID string `dynamodbav:"product_id"`
	Name      string `dynamodbav:"name"`

	CoverageAmount int64 `dynamodbav:"coverage_amount"`
	TermYears      int   `dynamodbav:"term_years"`
	MinAge         int   `dynamodbav:"min_age"`
	MaxAge         int   `dynamodbav:"max_age"`

	RequiresMedicalExam bool `dynamodbav:"requires_medical_exam"`
	Active              bool `dynamodbav:"active"`

	BaseLumpSum    float64 `dynamodbav:"base_lump_sum"`
	BaseAnnual     float64 `dynamodbav:"base_annual"`
	BaseSemiAnnual float64 `dynamodbav:"base_semi_annual"`
	BaseQuarterly  float64 `dynamodbav:"base_quarterly"`
	BaseMonthly    float64 `dynamodbav:"base_monthly"`

	AgeBands []AgeBandItem `dynamodbav:"age_bands"`

	HealthExcellent float64 `dynamodbav:"health_excellent"`
	HealthGood      float64 `dynamodbav:"health_good"`
	HealthFair      float64 `dynamodbav:"health_fair"`
	HealthPoor      float64 `dynamodbav:"health_poor"`

	GenderMale   float64 `dynamodbav:"gender_male"`
	GenderFemale float64 `dynamodbav:"gender_female"`

	OccupationLow    float64 `dynamodbav:"occupation_low"`
	OccupationMedium float64 `dynamodbav:"occupation_medium"`
	OccupationHigh   float64 `dynamodbav:"occupation_high"`

	CreatedAt time.Time `dynamodbav:"created_at"`
	UpdatedAt time.Time `dynamodbav:"updated_at"`
}

func (i RatePlanItem) ToCore() core.RatePlan {
	bands := make([]core.AgeBand, len(i.AgeBands))
	for n, b := range i.AgeBands {
		bands[n] = core.AgeBand{
			MinAge: b.MinAge,
			MaxAge: b.MaxAge,
			Factor: decimal.NewFromFloat(b.Factor),
		}
	}
	return core.RatePlan{
		ID:                  i.ID,
		Code:                i.Code,
		ProductID:           i.ProductID,
		Name:                i.Name,
		CoverageAmount:      i.CoverageAmount,
		TermYears:           i.TermYears,
		MinAge:              i.MinAge,
		MaxAge:              i.MaxAge,
		RequiresMedicalExam: i.RequiresMedicalExam,
		Active:              i.Active,
		Base: core.BasePremiums{
			LumpSum:    decimal.NewFromFloat(i.BaseLumpSum),
			Annual:     decimal.NewFromFloat(i.BaseAnnual),
			SemiAnnual: decimal.NewFromFloat(i.BaseSemiAnnual),
			Quarterly:  decimal.NewFromFloat(i.BaseQuarterly),
			Monthly:    decimal.NewFromFloat(i.BaseMonthly),
		},
		Rates: core.RateTable{
			AgeBands:         bands,
			HealthExcellent:  decimal.NewFromFloat(i.HealthExcellent),
			HealthGood:       decimal.NewFromFloat(i.HealthGood),
			HealthFair:       decimal.NewFromFloat(i.HealthFair),
			HealthPoor:       decimal.NewFromFloat(i.HealthPoor),
			GenderMale:       decimal.NewFromFloat(i.GenderMale),
			GenderFemale:     decimal.NewFromFloat(i.GenderFemale),
			OccupationLow:    decimal.NewFromFloat(i.OccupationLow),
			OccupationMedium: decimal.NewFromFloat(i.OccupationMedium),
			OccupationHigh:   decimal.NewFromFloat(i.OccupationHigh),
		},
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

func ratePlanItemFromCore(p core.RatePlan) RatePlanItem {
	bands := make([]AgeBandItem, len(p.Rates.AgeBands))
	for n, b := range p.Rates.AgeBands {
		bands[n] = AgeBandItem{
			MinAge: b.MinAge,
			MaxAge: b.MaxAge,
			Factor: b.Factor.InexactFloat64(),
		}
	}
	return RatePlanItem{
		ID:                  p.ID,
		Code:                p.Code,
		ProductID:           p.ProductID,
		Name:                p.Name,
		CoverageAmount:      p.CoverageAmount,
		TermYears:           p.TermYears,
		MinAge:              p.MinAge,
		MaxAge:              p.MaxAge,
		RequiresMedicalExam: p.RequiresMedicalExam,
		Active:              p.Active,

		BaseLumpSum:    p.Base.LumpSum.InexactFloat64(),
		BaseAnnual:     p.Base.Annual.InexactFloat64(),
		BaseSemiAnnual: p.Base.SemiAnnual.InexactFloat64(),
		BaseQuarterly:  p.Base.Quarterly.InexactFloat64(),
		BaseMonthly:    p.Base.Monthly.InexactFloat64(),

		AgeBands: bands,

		HealthExcellent: p.Rates.HealthExcellent.InexactFloat64(),
		HealthGood:      p.Rates.HealthGood.InexactFloat64(),
		HealthFair:      p.Rates.HealthFair.InexactFloat64(),
		HealthPoor:      p.Rates.HealthPoor.InexactFloat64(),

		GenderMale:   p.Rates.GenderMale.InexactFloat64(),
		GenderFemale: p.Rates.GenderFemale.InexactFloat64(),

		OccupationLow:    p.Rates.OccupationLow.InexactFloat64(),
		OccupationMedium: p.Rates.OccupationMedium.InexactFloat64(),
		OccupationHigh:   p.Rates.OccupationHigh.InexactFloat64(),

		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

package mongo

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/coverledger/go-rating/internal/core"
)

const (
	ColProducts     = "products"
	ColRatePlans    = "rate_plans"
	ColApplications = "applications"
	ColPolicies     = "policies"
)

// Money amounts are stored as float64 in documents and converted to
// decimals at the boundary; all arithmetic happens on decimals.

type ProductDoc struct {
	ID     string `bson:"_id"`
	Code   string `bson:"code"` // unique index
	Name   string `bson:"name"`
	Type   string `bson:"type"`
	Active bool   `bson:"active"`

	FeeProcessing     float64 `bson:"fee_processing"`
	FeePolicyIssuance float64 `bson:"fee_policy_issuance"`
	FeeMedicalCheckup float64 `bson:"fee_medical_checkup"`
	FeeAdminPerYear   float64 `bson:"fee_admin_per_year"`

	AdjMonthlySurcharge    float64 `bson:"adj_monthly_surcharge"`
	AdjQuarterlySurcharge  float64 `bson:"adj_quarterly_surcharge"`
	AdjSemiAnnualSurcharge float64 `bson:"adj_semi_annual_surcharge"`
	AdjLumpSumDiscount     float64 `bson:"adj_lump_sum_discount"`

	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func fromProductDoc(d ProductDoc) core.Product {
	return core.Product{
		ID:     d.ID,
		Code:   d.Code,
		Name:   d.Name,
		Type:   core.ProductType(d.Type),
		Active: d.Active,
		Fees: core.FeeSchedule{
			Processing:     decimal.NewFromFloat(d.FeeProcessing),
			PolicyIssuance: decimal.NewFromFloat(d.FeePolicyIssuance),
			MedicalCheckup: decimal.NewFromFloat(d.FeeMedicalCheckup),
			AdminPerYear:   decimal.NewFromFloat(d.FeeAdminPerYear),
		},
		Adjustments: core.FrequencyAdjustments{
			MonthlySurcharge:    decimal.NewFromFloat(d.AdjMonthlySurcharge),
			QuarterlySurcharge:  decimal.NewFromFloat(d.AdjQuarterlySurcharge),
			SemiAnnualSurcharge: decimal.NewFromFloat(d.AdjSemiAnnualSurcharge),
			LumpSumDiscount:     decimal.NewFromFloat(d.AdjLumpSumDiscount),
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toProductDoc(p core.Product) ProductDoc {
	return ProductDoc{
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

type AgeBandDoc struct {
	MinAge int     `bson:"min_age"`
	MaxAge int     `bson:"max_age"`
	Factor float64 `bson:"factor"`
}

type RatePlanDoc struct {
	ID        string `bson:"_id"`
	Code      string `bson:"code"` // unique index
	ProductID string `bson:"product_id"`
	Name      string `bson:"name"`

	CoverageAmount int64 `bson:"coverage_amount"`
	TermYears      int   `bson:"term_years"`
	MinAge         int   `bson:"min_age"`
	MaxAge         int   `bson:"max_age"`

	RequiresMedicalExam bool `bson:"requires_medical_exam"`
	Active              bool `bson:"active"`

	BaseLumpSum    float64 `bson:"base_lump_sum"`
	BaseAnnual     float64 `bson:"base_annual"`
	BaseSemiAnnual float64 `bson:"base_semi_annual"`
	BaseQuarterly  float64 `bson:"base_quarterly"`
	BaseMonthly    float64 `bson:"base_monthly"`

	AgeBands []AgeBandDoc `bson:"age_bands"`

	HealthExcellent float64 `bson:"health_excellent"`
	HealthGood      float64 `bson:"health_good"`
	HealthFair      float64 `bson:"health_fair"`
	HealthPoor      float64 `bson:"health_poor"`

	GenderMale   float64 `bson:"gender_male"`
	GenderFemale float64 `bson:"gender_female"`

	OccupationLow    float64 `bson:"occupation_low"`
	OccupationMedium float64 `bson:"occupation_medium"`
	OccupationHigh   float64 `bson:"occupation_high"`

	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func fromRatePlanDoc(d RatePlanDoc) core.RatePlan {
	bands := make([]core.AgeBand, len(d.AgeBands))
	for i, b := range d.AgeBands {
		bands[i] = core.AgeBand{
			MinAge: b.MinAge,
			MaxAge: b.MaxAge,
			Factor: decimal.NewFromFloat(b.Factor),
		}
	}
	return core.RatePlan{
		ID:                  d.ID,
		Code:                d.Code,
		ProductID:           d.ProductID,
		Name:                d.Name,
		CoverageAmount:      d.CoverageAmount,
		TermYears:           d.TermYears,
		MinAge:              d.MinAge,
		MaxAge:              d.MaxAge,
		RequiresMedicalExam: d.RequiresMedicalExam,
		Active:              d.Active,
		Base: core.BasePremiums{
			LumpSum:    decimal.NewFromFloat(d.BaseLumpSum),
			Annual:     decimal.NewFromFloat(d.BaseAnnual),
			SemiAnnual: decimal.NewFromFloat(d.BaseSemiAnnual),
			Quarterly:  decimal.NewFromFloat(d.BaseQuarterly),
			Monthly:    decimal.NewFromFloat(d.BaseMonthly),
		},
		Rates: core.RateTable{
			AgeBands:         bands,
			HealthExcellent:  decimal.NewFromFloat(d.HealthExcellent),
			HealthGood:       decimal.NewFromFloat(d.HealthGood),
			HealthFair:       decimal.NewFromFloat(d.HealthFair),
			HealthPoor:       decimal.NewFromFloat(d.HealthPoor),
			GenderMale:       decimal.NewFromFloat(d.GenderMale),
			GenderFemale:     decimal.NewFromFloat(d.GenderFemale),
			OccupationLow:    decimal.NewFromFloat(d.OccupationLow),
			OccupationMedium: decimal.NewFromFloat(d.OccupationMedium),
			OccupationHigh:   decimal.NewFromFloat(d.OccupationHigh),
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toRatePlanDoc(p core.RatePlan) RatePlanDoc {
	bands := make([]AgeBandDoc, len(p.Rates.AgeBands))
	for i, b := range p.Rates.AgeBands {
		bands[i] = AgeBandDoc{
			MinAge: b.MinAge,
			MaxAge: b.MaxAge,
			Factor: b.Factor.InexactFloat64(),
		}
	}
	return RatePlanDoc{
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

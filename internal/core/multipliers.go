package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Applicant carries the raw risk attributes supplied with a quote
// request. Values arrive as free-form strings from upstream forms and
// are never validated here; resolution degrades to defined defaults.
type Applicant struct {
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	HealthStatus   string `json:"health_status"`
	OccupationRisk string `json:"occupation_risk"`
}

// Multipliers is the resolved set of the four independent risk factors.
type Multipliers struct {
	Age        decimal.Decimal `json:"age"`
	Gender     decimal.Decimal `json:"gender"`
	Health     decimal.Decimal `json:"health"`
	Occupation decimal.Decimal `json:"occupation"`
}

var neutralFactor = decimal.NewFromInt(1)

// Product returns the combined factor. Multiplication is commutative,
// so the four categories can be resolved and applied in any order.
func (m Multipliers) Product() decimal.Decimal {
	return m.Age.Mul(m.Gender).Mul(m.Health).Mul(m.Occupation)
}

// Resolve maps an applicant's attributes onto the table's factors.
// Resolution never fails: unknown or missing inputs fall back to a
// defined default so unauthenticated quote previews are never blocked
// by a malformed attribute string.
func (t RateTable) Resolve(a Applicant) Multipliers {
	return Multipliers{
		Age:        t.AgeFactor(a.Age),
		Gender:     t.GenderFactor(a.Gender),
		Health:     t.HealthFactor(a.HealthStatus),
		Occupation: t.OccupationFactor(a.OccupationRisk),
	}
}

// AgeFactor looks the age up in the closed-interval bands. An age
// outside every band resolves to the neutral factor 1.0; that is the
// defined fallback, not an error.
func (t RateTable) AgeFactor(age int) decimal.Decimal {
	for _, b := range t.AgeBands {
		if age >= b.MinAge && age <= b.MaxAge {
			return b.Factor
		}
	}
	return neutralFactor
}

// GenderFactor matches "male" case-insensitively; every other value,
// including empty, resolves to the female factor. A two-way fallback,
// not a three-way enumeration.
func (t RateTable) GenderFactor(gender string) decimal.Decimal {
	if strings.EqualFold(strings.TrimSpace(gender), "male") {
		return t.GenderMale
	}
	return t.GenderFemale
}

// HealthFactor matches the four health levels case-insensitively and
// falls back to "good" for anything else.
func (t RateTable) HealthFactor(status string) decimal.Decimal {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "excellent":
		return t.HealthExcellent
	case "fair":
		return t.HealthFair
	case "poor":
		return t.HealthPoor
	default:
		return t.HealthGood
	}
}

// OccupationFactor matches the three risk levels case-insensitively and
// falls back to "low" for anything else.
func (t RateTable) OccupationFactor(risk string) decimal.Decimal {
	switch strings.ToLower(strings.TrimSpace(risk)) {
	case "medium":
		return t.OccupationMedium
	case "high":
		return t.OccupationHigh
	default:
		return t.OccupationLow
	}
}

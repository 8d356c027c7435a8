package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coverledger/go-rating/internal/core"
)

func riskRates() core.RateTable {
	t := testRates()
	t.AgeBands[1].Factor = dec("1.1") // [26,35]
	t.AgeBands[4].Factor = dec("1.8") // [56,65]
	t.HealthExcellent = dec("0.9")
	t.HealthGood = dec("1.05")
	t.HealthFair = dec("1.25")
	t.HealthPoor = dec("1.6")
	t.GenderMale = dec("1.15")
	t.GenderFemale = dec("0.95")
	t.OccupationLow = dec("1.02")
	t.OccupationMedium = dec("1.2")
	t.OccupationHigh = dec("1.5")
	return t
}

func TestAgeFactor_BandLookup(t *testing.T) {
	rates := riskRates()

	assert.Equal(t, "1.1", rates.AgeFactor(26).String())
	assert.Equal(t, "1.1", rates.AgeFactor(35).String())
	assert.Equal(t, "1.8", rates.AgeFactor(65).String())
	assert.Equal(t, "1", rates.AgeFactor(40).String())
}

// An age outside every band resolves to the neutral factor. Defined
// fallback policy, not an error.
func TestAgeFactor_OutsideBandsIsNeutral(t *testing.T) {
	rates := riskRates()

	assert.Equal(t, "1", rates.AgeFactor(17).String())
	assert.Equal(t, "1", rates.AgeFactor(66).String())
	assert.Equal(t, "1", rates.AgeFactor(0).String())
	assert.Equal(t, "1", rates.AgeFactor(-3).String())
}

func TestGenderFactor_TwoWayFallback(t *testing.T) {
	rates := riskRates()

	assert.Equal(t, "1.15", rates.GenderFactor("male").String())
	assert.Equal(t, "1.15", rates.GenderFactor("MALE").String())
	assert.Equal(t, "1.15", rates.GenderFactor("  Male ").String())

	// Everything else resolves to the female factor, documenting the
	// current two-way behavior exactly.
	assert.Equal(t, "0.95", rates.GenderFactor("female").String())
	assert.Equal(t, "0.95", rates.GenderFactor("nonbinary").String())
	assert.Equal(t, "0.95", rates.GenderFactor("").String())
}

func TestHealthFactor_FallsBackToGood(t *testing.T) {
	rates := riskRates()

	assert.Equal(t, "0.9", rates.HealthFactor("Excellent").String())
	assert.Equal(t, "1.25", rates.HealthFactor("fair").String())
	assert.Equal(t, "1.6", rates.HealthFactor("POOR").String())

	assert.Equal(t, "1.05", rates.HealthFactor("good").String())
	assert.Equal(t, "1.05", rates.HealthFactor("unknown").String())
	assert.Equal(t, "1.05", rates.HealthFactor("").String())
}

func TestOccupationFactor_FallsBackToLow(t *testing.T) {
	rates := riskRates()

	assert.Equal(t, "1.2", rates.OccupationFactor("Medium").String())
	assert.Equal(t, "1.5", rates.OccupationFactor("HIGH").String())

	assert.Equal(t, "1.02", rates.OccupationFactor("low").String())
	assert.Equal(t, "1.02", rates.OccupationFactor("astronaut").String())
	assert.Equal(t, "1.02", rates.OccupationFactor("").String())
}

// Resolution never fails: a fully garbage applicant still resolves to
// the defined defaults.
func TestResolve_NeverFails(t *testing.T) {
	rates := riskRates()

	m := rates.Resolve(core.Applicant{
		Age:            -1,
		Gender:         "x",
		HealthStatus:   "x",
		OccupationRisk: "x",
	})

	assert.Equal(t, "1", m.Age.String())
	assert.Equal(t, "0.95", m.Gender.String())
	assert.Equal(t, "1.05", m.Health.String())
	assert.Equal(t, "1.02", m.Occupation.String())
}

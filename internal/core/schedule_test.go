package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coverledger/go-rating/internal/core"
)

// Lump-sum is always exactly one payment covering the whole term,
// regardless of term length.
func TestBuildSchedule_LumpSumIsSinglePayment(t *testing.T) {
	for _, term := range []int{1, 5, 10, 30} {
		s := core.BuildSchedule(dec("12000"), core.FrequencyLumpSum, term)
		assert.Equal(t, 1, s.Payments, "term %d", term)
		assert.Equal(t, "12000", s.AmountPerPayment.String(), "term %d", term)
	}
}

func TestBuildSchedule_PaymentCounts(t *testing.T) {
	cases := []struct {
		freq core.PaymentFrequency
		term int
		want int
	}{
		{core.FrequencyAnnual, 10, 10},
		{core.FrequencySemiAnnual, 10, 20},
		{core.FrequencyQuarterly, 10, 40},
		{core.FrequencyMonthly, 10, 120},
		{core.FrequencyMonthly, 1, 12},
	}
	for _, tc := range cases {
		s := core.BuildSchedule(dec("1100"), tc.freq, tc.term)
		assert.Equal(t, tc.want, s.Payments, "%s/%dy", tc.freq, tc.term)
	}
}

// Worked example: monthly premium 110 over a 10-year term gives a term
// premium of 1100, spread across 120 payments of 9.17.
func TestBuildSchedule_DividesAndRounds(t *testing.T) {
	s := core.BuildSchedule(dec("1100"), core.FrequencyMonthly, 10)

	assert.Equal(t, 120, s.Payments)
	assert.Equal(t, "9.17", s.AmountPerPayment.StringFixed(2))
}

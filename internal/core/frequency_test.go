package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coverledger/go-rating/internal/core"
)

func TestParseFrequency_Aliases(t *testing.T) {
	cases := map[string]core.PaymentFrequency{
		"lumpsum":     core.FrequencyLumpSum,
		"Lump-Sum":    core.FrequencyLumpSum,
		"onetime":     core.FrequencyLumpSum,
		"SINGLE":      core.FrequencyLumpSum,
		"annual":      core.FrequencyAnnual,
		"Yearly":      core.FrequencyAnnual,
		"semiannual":  core.FrequencySemiAnnual,
		"semi-annual": core.FrequencySemiAnnual,
		"halfyearly":  core.FrequencySemiAnnual,
		"quarterly":   core.FrequencyQuarterly,
		"Monthly":     core.FrequencyMonthly,
		" monthly ":   core.FrequencyMonthly,
	}
	for in, want := range cases {
		assert.Equal(t, want, core.ParseFrequency(in), "input %q", in)
	}
}

// Unrecognized strings parse to monthly. The premium calculator has its
// own, different fallback (annual); both defaults are intentional.
func TestParseFrequency_UnknownFallsBackToMonthly(t *testing.T) {
	assert.Equal(t, core.FrequencyMonthly, core.ParseFrequency("fortnightly"))
	assert.Equal(t, core.FrequencyMonthly, core.ParseFrequency(""))
	assert.Equal(t, core.DefaultRequestFrequency, core.ParseFrequency("???"))
}

func TestPaymentsPerYear(t *testing.T) {
	assert.Equal(t, 1, core.FrequencyAnnual.PaymentsPerYear())
	assert.Equal(t, 2, core.FrequencySemiAnnual.PaymentsPerYear())
	assert.Equal(t, 4, core.FrequencyQuarterly.PaymentsPerYear())
	assert.Equal(t, 12, core.FrequencyMonthly.PaymentsPerYear())
	assert.Equal(t, 0, core.FrequencyLumpSum.PaymentsPerYear())
}

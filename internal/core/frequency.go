package core

import "strings"

// PaymentFrequency is the cadence of premium installments.
type PaymentFrequency string

const (
	FrequencyLumpSum    PaymentFrequency = "lump_sum"
	FrequencyAnnual     PaymentFrequency = "annual"
	FrequencySemiAnnual PaymentFrequency = "semi_annual"
	FrequencyQuarterly  PaymentFrequency = "quarterly"
	FrequencyMonthly    PaymentFrequency = "monthly"
)

// DefaultRequestFrequency is what the request parser falls back to for
// unrecognized input. Note: this deliberately differs from
// DefaultRateFrequency, which the premium calculator falls back to when
// handed a frequency outside the known set. The two defaults come from
// different parts of the legacy system and must not be unified without
// product-owner sign-off.
const DefaultRequestFrequency = FrequencyMonthly

// DefaultRateFrequency is the premium calculator's fallback for an
// unrecognized frequency value.
const DefaultRateFrequency = FrequencyAnnual

// AllFrequencies returns the five payment frequencies in presentation
// order. Clients render comparison quotes in exactly this order.
func AllFrequencies() []PaymentFrequency {
	return []PaymentFrequency{
		FrequencyLumpSum,
		FrequencyAnnual,
		FrequencySemiAnnual,
		FrequencyQuarterly,
		FrequencyMonthly,
	}
}

// ParseFrequency maps the accepted case-insensitive aliases onto a
// PaymentFrequency. Unrecognized input resolves to
// DefaultRequestFrequency rather than an error.
func ParseFrequency(s string) PaymentFrequency {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lumpsum", "lump-sum", "lump_sum", "onetime", "single":
		return FrequencyLumpSum
	case "annual", "yearly":
		return FrequencyAnnual
	case "semiannual", "semi-annual", "semi_annual", "halfyearly":
		return FrequencySemiAnnual
	case "quarterly":
		return FrequencyQuarterly
	case "monthly":
		return FrequencyMonthly
	default:
		return DefaultRequestFrequency
	}
}

// PaymentsPerYear returns the number of installments per policy year.
// Lump-sum has no per-year cadence and returns 0; the schedule builder
// special-cases it before consulting this table.
func (f PaymentFrequency) PaymentsPerYear() int {
	switch f {
	case FrequencyAnnual:
		return 1
	case FrequencySemiAnnual:
		return 2
	case FrequencyQuarterly:
		return 4
	case FrequencyMonthly:
		return 12
	default:
		return 0
	}
}

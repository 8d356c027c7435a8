package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coverledger/go-rating/internal/core"
)

func TestAggregateFees_Components(t *testing.T) {
	fb := core.AggregateFees(testFees(), 10, dec("1100"))

	assert.Equal(t, "75.00", fb.OneTime.StringFixed(2))     // 50 + 25
	assert.Equal(t, "120.00", fb.Medical.StringFixed(2))    // charged once
	assert.Equal(t, "150.00", fb.TotalAdmin.StringFixed(2)) // 15 × 10
	assert.Equal(t, "1445.00", fb.GrandTotal.StringFixed(2))
}

// grandTotal == premiumForTerm + oneTime + medical + adminPerYear×term,
// exactly to the cent, for every term length tried.
func TestAggregateFees_GrandTotalDecomposition(t *testing.T) {
	fees := testFees()
	for _, term := range []int{1, 7, 10, 25} {
		premium := dec("1234.56")
		fb := core.AggregateFees(fees, term, premium)

		sum := premium.Add(fb.OneTime).Add(fb.Medical).Add(fb.TotalAdmin)
		assert.True(t, fb.GrandTotal.Equal(sum), "term %d: %s != %s", term, fb.GrandTotal, sum)
	}
}

// The medical-checkup fee is charged whether or not the plan requires a
// medical exam. Documents the current behavior; flagged as a likely
// pricing gap in DESIGN.md.
func TestAggregateFees_MedicalFeeIsUnconditional(t *testing.T) {
	fees := testFees()
	fb := core.AggregateFees(fees, 1, dec("100"))

	assert.Equal(t, "120.00", fb.Medical.StringFixed(2))
	assert.Equal(t, "310.00", fb.GrandTotal.StringFixed(2)) // 100 + 75 + 120 + 15
}

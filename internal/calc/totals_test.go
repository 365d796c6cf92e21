package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docstudio/pkg/models"
)

const tolerance = 1e-9

func f(v float64) *float64 { return &v }

func TestLineTotal(t *testing.T) {
	item := models.LineItem{Description: "Service", Qty: 2, UnitPrice: 100, Discount: f(10)}
	require.InDelta(t, 180, LineTotal(item), tolerance)

	noDiscount := models.LineItem{Description: "Part", Qty: 3, UnitPrice: 9.5}
	require.InDelta(t, 28.5, LineTotal(noDiscount), tolerance)
}

func TestComputeTotalsSingleTax(t *testing.T) {
	items := []models.LineItem{{Description: "Service", Qty: 2, UnitPrice: 100, Discount: f(10)}}
	summary := models.Summary{Taxes: []models.Tax{{Label: "VAT", Rate: 18}}}

	totals := ComputeTotals(items, summary)

	require.InDelta(t, 180, totals.Subtotal, tolerance)
	require.InDelta(t, 180, totals.AfterGlobalDiscount, tolerance)
	require.InDelta(t, 32.4, totals.TaxAmount, tolerance)
	require.InDelta(t, 212.4, totals.Total, tolerance)
	require.Len(t, totals.Taxes, 1)
	assert.Equal(t, "VAT", totals.Taxes[0].Label)
	assert.InDelta(t, 32.4, totals.Taxes[0].Amount, tolerance)
}

func TestComputeTotalsGlobalDiscount(t *testing.T) {
	items := []models.LineItem{{Description: "Service", Qty: 2, UnitPrice: 100, Discount: f(10)}}
	summary := models.Summary{
		GlobalDiscount: f(50),
		Taxes:          []models.Tax{{Label: "VAT", Rate: 18}},
	}

	totals := ComputeTotals(items, summary)

	require.InDelta(t, 180, totals.Subtotal, tolerance)
	require.InDelta(t, 90, totals.AfterGlobalDiscount, tolerance)
	require.InDelta(t, 16.2, totals.TaxAmount, tolerance)
	require.InDelta(t, 106.2, totals.Total, tolerance)
}

func TestComputeTotalsTaxesDoNotCompound(t *testing.T) {
	// Both rates apply to the same post-discount base.
	items := []models.LineItem{{Description: "x", Qty: 1, UnitPrice: 100}}
	summary := models.Summary{Taxes: []models.Tax{
		{Label: "VAT", Rate: 10},
		{Label: "Levy", Rate: 5},
	}}

	totals := ComputeTotals(items, summary)

	require.InDelta(t, 10, totals.Taxes[0].Amount, tolerance)
	require.InDelta(t, 5, totals.Taxes[1].Amount, tolerance)
	require.InDelta(t, 115, totals.Total, tolerance)
}

func TestComputeTotalsEmptyItems(t *testing.T) {
	totals := ComputeTotals(nil, models.Summary{})

	assert.Zero(t, totals.Subtotal)
	assert.Zero(t, totals.AfterGlobalDiscount)
	assert.Zero(t, totals.TaxAmount)
	assert.Zero(t, totals.Total)
	assert.Empty(t, totals.Taxes)
}

func TestComputeTotalsInvariant(t *testing.T) {
	items := []models.LineItem{
		{Description: "a", Qty: 3, UnitPrice: 19.99},
		{Description: "b", Qty: 1, UnitPrice: 250, Discount: f(12.5)},
		{Description: "c", Qty: 0, UnitPrice: 40},
	}
	summary := models.Summary{
		GlobalDiscount: f(7.5),
		Taxes: []models.Tax{
			{Label: "VAT", Rate: 20},
			{Label: "Eco", Rate: 0.5},
		},
	}

	totals := ComputeTotals(items, summary)

	sum := 0.0
	for _, tax := range totals.Taxes {
		sum += tax.Amount
	}
	require.InDelta(t, totals.AfterGlobalDiscount+sum, totals.Total, tolerance)
	require.InDelta(t, totals.Subtotal*(1-7.5/100), totals.AfterGlobalDiscount, tolerance)
}

func TestComputeTotalsDeterministic(t *testing.T) {
	items := []models.LineItem{{Description: "a", Qty: 2.7, UnitPrice: 33.33, Discount: f(3)}}
	summary := models.Summary{Taxes: []models.Tax{{Label: "VAT", Rate: 19.6}}}

	first := ComputeTotals(items, summary)
	second := ComputeTotals(items, summary)
	assert.Equal(t, first, second)
}

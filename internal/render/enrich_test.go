package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docstudio/pkg/models"
)

func invoiceData() models.Data {
	return models.Data{
		"sender": map[string]any{"name": "ACME"},
		"invoice": map[string]any{
			"number":   "INV-1",
			"date":     "2025-03-08",
			"currency": "USD",
		},
		"items": []any{
			map[string]any{"description": "Service", "qty": 2.0, "unit_price": 100.0, "discount": 10.0},
			map[string]any{"description": "Part", "qty": 1.0, "unit_price": 20.0},
		},
		"summary": map[string]any{
			"taxes": []any{map[string]any{"label": "VAT", "rate": 18.0}},
		},
	}
}

func TestEnrichComputesTotals(t *testing.T) {
	view := Enrich(invoiceData(), EnrichOptions{Locale: "en"})

	totals, ok := view["totals"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 200, totals["subtotal"].(float64), 1e-9)
	assert.InDelta(t, 236, totals["total"].(float64), 1e-9)

	taxes, ok := totals["taxes"].([]any)
	require.True(t, ok)
	require.Len(t, taxes, 1)
	// In the view copy the tax amount is a display string.
	tax := taxes[0].(map[string]any)
	assert.Equal(t, "$36", tax["amount"])
}

func TestEnrichItemsWithTotals(t *testing.T) {
	view := Enrich(invoiceData(), EnrichOptions{Locale: "en"})

	items, ok := view["items_with_totals"].([]any)
	require.True(t, ok)
	require.Len(t, items, 2)

	first := items[0].(map[string]any)
	assert.Equal(t, 0, first["index"])
	assert.Equal(t, "Service", first["description"])
	assert.InDelta(t, 180, first["line_total"].(float64), 1e-9)
	assert.Equal(t, "$180", first["line_total_formatted"])
	assert.Equal(t, "$100", first["unit_price_formatted"])
	assert.Equal(t, "2", first["qty_formatted"])

	second := items[1].(map[string]any)
	assert.Equal(t, 1, second["index"])
	assert.Equal(t, "Part", second["description"])
}

func TestEnrichItemsKeepCustomFields(t *testing.T) {
	// Document types are user-defined, so items may carry fields beyond the
	// billing ones. They must survive into the loop entries.
	data := invoiceData()
	data["items"] = []any{
		map[string]any{
			"description": "Consulting",
			"qty":         2.0,
			"unit_price":  100.0,
			"unit":        "day",
			"sku":         "SRV-1",
		},
	}

	view := Enrich(data, EnrichOptions{Locale: "en"})
	items := view["items_with_totals"].([]any)
	require.Len(t, items, 1)

	entry := items[0].(map[string]any)
	assert.Equal(t, "day", entry["unit"])
	assert.Equal(t, "SRV-1", entry["sku"])
	assert.InDelta(t, 200, entry["line_total"].(float64), 1e-9)
	assert.Equal(t, "$200", entry["line_total_formatted"])
}

func TestEnrichFormattedBlock(t *testing.T) {
	view := Enrich(invoiceData(), EnrichOptions{Locale: "en"})

	formatted, ok := view["formatted"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "$200", formatted["subtotal"])
	assert.Equal(t, "$236", formatted["total"])
	assert.Equal(t, "Mar 8, 2025", formatted["date"])
}

func TestEnrichCurrencyFromData(t *testing.T) {
	// Without an explicit currency option, invoice.currency is used.
	view := Enrich(invoiceData(), EnrichOptions{Locale: "fr"})
	formatted := view["formatted"].(map[string]any)
	assert.Equal(t, "236 $", formatted["total"])
}

func TestEnrichDoesNotMutateInput(t *testing.T) {
	data := invoiceData()
	_ = Enrich(data, EnrichOptions{Locale: "en"})

	_, hasTotals := data["totals"]
	assert.False(t, hasTotals)
	_, hasItems := data["items_with_totals"]
	assert.False(t, hasItems)
	assert.Equal(t, invoiceData(), data)
}

func TestEnrichDeterministic(t *testing.T) {
	first := Enrich(invoiceData(), EnrichOptions{Locale: "en"})
	second := Enrich(invoiceData(), EnrichOptions{Locale: "en"})
	assert.Equal(t, first, second)
}

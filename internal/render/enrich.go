package render

import (
	"docstudio/internal/calc"
	"docstudio/internal/format"
	"docstudio/pkg/models"
)

// EnrichOptions controls how computed values are formatted for display.
// Currency falls back to the document's invoice.currency field when empty.
type EnrichOptions struct {
	Locale   string
	Currency string
}

// DefaultEnrichOptions are used when the caller supplies no overrides.
func DefaultEnrichOptions() EnrichOptions {
	return EnrichOptions{Locale: "en"}
}

// Enrich builds the view model the template engine consumes: the original
// document data plus computed totals, per-item derived values, and
// pre-formatted display strings. The input data is never mutated; a fresh
// copy is built on every call so rendering stays deterministic.
func Enrich(data models.Data, opts EnrichOptions) models.Data {
	if opts.Locale == "" {
		opts.Locale = "en"
	}
	currency := opts.Currency
	if currency == "" {
		if c, ok := data.Lookup("invoice.currency"); ok {
			currency, _ = c.(string)
		}
	}

	items := models.ItemsFrom(data)
	summary := models.SummaryFrom(data)
	totals := calc.ComputeTotals(items, summary)

	view := data.Clone()

	// Totals for the view carry display strings on each tax; the numeric
	// amounts stay intact under the top-level keys.
	viewTaxes := make([]any, 0, len(totals.Taxes))
	for _, tax := range totals.Taxes {
		viewTaxes = append(viewTaxes, map[string]any{
			"label":  tax.Label,
			"rate":   tax.Rate,
			"amount": format.Currency(tax.Amount, currency, opts.Locale),
		})
	}
	view["totals"] = map[string]any{
		"subtotal":              totals.Subtotal,
		"global_discount":       totals.GlobalDiscount,
		"after_global_discount": totals.AfterGlobalDiscount,
		"tax_amount":            totals.TaxAmount,
		"total":                 totals.Total,
		"taxes":                 viewTaxes,
	}

	// Items keep their source order; each entry is the item record itself
	// with the derived values attached, so user-defined fields (unit, sku,
	// a CV entry's role) stay reachable inside the loop. index mirrors the
	// position templates use to build field paths like
	// items.{index}.description.
	rawItems, _ := data.Lookup("items")
	seq, _ := rawItems.([]any)
	viewItems := make([]any, 0, len(seq))
	for _, e := range seq {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		item := models.ItemFrom(m)
		lineTotal := calc.LineTotal(item)
		entry := map[string]any(models.Data(m).Clone())
		entry["index"] = len(viewItems)
		entry["line_total"] = lineTotal
		entry["line_total_formatted"] = format.Currency(lineTotal, currency, opts.Locale)
		entry["unit_price_formatted"] = format.Currency(item.UnitPrice, currency, opts.Locale)
		entry["qty_formatted"] = format.Number(item.Qty, opts.Locale)
		viewItems = append(viewItems, entry)
	}
	view["items_with_totals"] = viewItems

	date := ""
	if d, ok := data.Lookup("invoice.date"); ok {
		date, _ = d.(string)
	}
	view["formatted"] = map[string]any{
		"subtotal":            format.Currency(totals.Subtotal, currency, opts.Locale),
		"afterGlobalDiscount": format.Currency(totals.AfterGlobalDiscount, currency, opts.Locale),
		"taxAmount":           format.Currency(totals.TaxAmount, currency, opts.Locale),
		"total":               format.Currency(totals.Total, currency, opts.Locale),
		"date":                format.Date(date, opts.Locale),
	}

	return view
}

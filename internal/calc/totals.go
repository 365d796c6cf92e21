// Package calc computes derived invoice amounts: per-line totals, subtotal,
// global discount, taxes, and grand total. All arithmetic is plain IEEE-754;
// rounding and display formatting belong to the format package, and range
// validation of the inputs happens before data reaches this engine.
package calc

import "docstudio/pkg/models"

// LineTotal returns qty * unit_price with the line discount applied.
// No rounding is performed at this stage.
func LineTotal(item models.LineItem) float64 {
	discount := 0.0
	if item.Discount != nil {
		discount = *item.Discount
	}
	return item.Qty * item.UnitPrice * (1 - discount/100)
}

// Subtotal sums the line totals over all items.
func Subtotal(items []models.LineItem) float64 {
	sum := 0.0
	for _, item := range items {
		sum += LineTotal(item)
	}
	return sum
}

// ComputeTotals derives the full totals block from items and summary.
// Every tax rate applies to the same post-global-discount base and the
// amounts are summed; taxes never compound on each other. An empty items
// sequence yields zero totals rather than an error.
func ComputeTotals(items []models.LineItem, summary models.Summary) models.Totals {
	subtotal := Subtotal(items)

	globalDiscount := 0.0
	if summary.GlobalDiscount != nil {
		globalDiscount = *summary.GlobalDiscount
	}
	afterDiscount := subtotal * (1 - globalDiscount/100)

	taxes := make([]models.TaxAmount, 0, len(summary.Taxes))
	taxAmount := 0.0
	for _, tax := range summary.Taxes {
		amount := afterDiscount * tax.Rate / 100
		taxAmount += amount
		taxes = append(taxes, models.TaxAmount{Tax: tax, Amount: amount})
	}

	return models.Totals{
		Subtotal:            subtotal,
		GlobalDiscount:      globalDiscount,
		AfterGlobalDiscount: afterDiscount,
		TaxAmount:           taxAmount,
		Total:               afterDiscount + taxAmount,
		Taxes:               taxes,
	}
}

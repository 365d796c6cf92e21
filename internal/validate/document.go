package validate

import (
	"fmt"
	"strings"

	"docstudio/pkg/models"
)

// Document checks filled-in document data against its document type before
// the data reaches the numeric engine and the renderer: required fields must
// be present, items non-empty for array fields, and numeric ranges respected.
// The renderer assumes these preconditions hold.
func Document(data models.Data, dt models.DocumentType) Result[models.Data] {
	var issues []string

	for _, section := range dt.Sections {
		for _, field := range section.Fields {
			if !field.Required {
				continue
			}
			value, ok := lookupField(data, section.ID, field.ID)
			if !ok || isEmptyValue(value) {
				issues = append(issues, fmt.Sprintf("%s.%s (%s): required", section.ID, field.ID, field.Name))
			}
		}
	}

	issues = append(issues, checkRanges(data)...)

	if len(issues) > 0 {
		return fail[models.Data](issues)
	}
	return pass(data)
}

// Field values normally live under their section key; top-level arrays like
// items are addressed by the bare field id.
func lookupField(data models.Data, sectionID, fieldID string) (any, bool) {
	if v, ok := data.Lookup(sectionID + "." + fieldID); ok {
		return v, true
	}
	return data.Lookup(fieldID)
}

func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []any:
		return len(t) == 0
	default:
		return false
	}
}

func checkRanges(data models.Data) []string {
	var issues []string
	for i, item := range models.ItemsFrom(data) {
		if item.Description == "" {
			issues = append(issues, fmt.Sprintf("items[%d].description: required", i))
		}
		if item.Qty < 0 {
			issues = append(issues, fmt.Sprintf("items[%d].qty: must not be negative", i))
		}
		if item.UnitPrice < 0 {
			issues = append(issues, fmt.Sprintf("items[%d].unit_price: must not be negative", i))
		}
		if item.Discount != nil && (*item.Discount < 0 || *item.Discount > 100) {
			issues = append(issues, fmt.Sprintf("items[%d].discount: must be between 0 and 100", i))
		}
	}
	summary := models.SummaryFrom(data)
	if summary.GlobalDiscount != nil && (*summary.GlobalDiscount < 0 || *summary.GlobalDiscount > 100) {
		issues = append(issues, "summary.global_discount: must be between 0 and 100")
	}
	for i, tax := range summary.Taxes {
		if tax.Label == "" {
			issues = append(issues, fmt.Sprintf("summary.taxes[%d].label: required", i))
		}
		if tax.Rate < 0 || tax.Rate > 100 {
			issues = append(issues, fmt.Sprintf("summary.taxes[%d].rate: must be between 0 and 100", i))
		}
	}
	return issues
}

package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docstudio/pkg/models"
)

func invoiceDocType() models.DocumentType {
	return models.DocumentType{
		ID:   "invoice",
		Name: "Invoice",
		Sections: []models.Section{
			{
				ID:   "invoice",
				Name: "Invoice",
				Fields: []models.Field{
					{ID: "number", Name: "Number", Type: models.FieldText, Required: true},
					{ID: "date", Name: "Date", Type: models.FieldDate, Required: true},
					{ID: "notes", Name: "Notes", Type: models.FieldTextarea},
				},
			},
			{
				ID:   "lines",
				Name: "Lines",
				Fields: []models.Field{
					{ID: "items", Name: "Items", Type: models.FieldArray, Required: true},
				},
			},
		},
	}
}

func invoiceDoc() models.Data {
	return models.Data{
		"invoice": map[string]any{
			"number": "INV-1",
			"date":   "2025-03-08",
		},
		"items": []any{
			map[string]any{"description": "Consulting", "qty": 2.0, "unit_price": 100.0},
		},
	}
}

func TestDocumentValid(t *testing.T) {
	result := Document(invoiceDoc(), invoiceDocType())
	require.True(t, result.Success, "issues: %v", result.Issues)
	assert.Empty(t, result.Issues)
}

func TestDocumentMissingRequiredField(t *testing.T) {
	data := invoiceDoc()
	data.Set("invoice.number", "   ")
	result := Document(data, invoiceDocType())
	require.False(t, result.Success)
	assert.Contains(t, result.Issues, "invoice.number (Number): required")
}

func TestDocumentRequiredArrayLooksUpBareKey(t *testing.T) {
	// items lives at the top level, not under the section key.
	result := Document(invoiceDoc(), invoiceDocType())
	assert.True(t, result.Success)

	data := invoiceDoc()
	data["items"] = []any{}
	result = Document(data, invoiceDocType())
	require.False(t, result.Success)
	assert.Contains(t, result.Issues, "lines.items (Items): required")
}

func TestDocumentOptionalFieldMayBeAbsent(t *testing.T) {
	result := Document(invoiceDoc(), invoiceDocType())
	assert.True(t, result.Success, "notes is optional")
}

func TestDocumentRangeChecks(t *testing.T) {
	disc := -10.0
	gd := 150.0
	data := invoiceDoc()
	data["items"] = []any{
		map[string]any{"description": "", "qty": -1.0, "unit_price": -5.0, "discount": disc},
	}
	data["summary"] = map[string]any{
		"global_discount": gd,
		"taxes": []any{
			map[string]any{"label": "", "rate": 120.0},
		},
	}

	result := Document(data, invoiceDocType())
	require.False(t, result.Success)
	assert.Contains(t, result.Issues, "items[0].description: required")
	assert.Contains(t, result.Issues, "items[0].qty: must not be negative")
	assert.Contains(t, result.Issues, "items[0].unit_price: must not be negative")
	assert.Contains(t, result.Issues, "items[0].discount: must be between 0 and 100")
	assert.Contains(t, result.Issues, "summary.global_discount: must be between 0 and 100")
	assert.Contains(t, result.Issues, "summary.taxes[0].label: required")
	assert.Contains(t, result.Issues, "summary.taxes[0].rate: must be between 0 and 100")
}

func TestDocumentBoundaryDiscounts(t *testing.T) {
	data := invoiceDoc()
	data["items"] = []any{
		map[string]any{"description": "A", "qty": 1.0, "unit_price": 10.0, "discount": 0.0},
		map[string]any{"description": "B", "qty": 1.0, "unit_price": 10.0, "discount": 100.0},
	}
	data["summary"] = map[string]any{"global_discount": 100.0}
	result := Document(data, invoiceDocType())
	assert.True(t, result.Success, "issues: %v", result.Issues)
}

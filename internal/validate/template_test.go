package validate

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docstudio/pkg/models"
)

func templateJSON(t *testing.T, tpl models.Template) []byte {
	t.Helper()
	raw, err := json.Marshal(tpl)
	require.NoError(t, err)
	return raw
}

const goodTemplateContent = `<div id="invoice-content" class="invoice-preview">
  <h1 data-field="invoice.number">{{invoice.number}}</h1>
  <table data-array-container="items">
    {{#items_with_totals}}
    <tr data-item-index="{{index}}">
      <td data-field="items.description">{{description}}</td>
      <td>{{line_total_formatted}}</td>
    </tr>
    {{/items_with_totals}}
  </table>
</div>`

func validTemplate() models.Template {
	return models.Template{
		ID:      "invoice-classic",
		Name:    "Classic",
		TypeID:  "invoice",
		Content: goodTemplateContent,
	}
}

func TestTemplateValid(t *testing.T) {
	result := Template(templateJSON(t, validTemplate()))
	require.True(t, result.Success, "issues: %v", result.Issues)
	require.NotNil(t, result.Data)
	assert.Equal(t, "invoice-classic", result.Data.ID)
}

func TestTemplateMissingDataField(t *testing.T) {
	tpl := validTemplate()
	tpl.Content = `<div id="invoice-content" class="invoice-preview">{{invoice.number}}</div>`
	result := Template(templateJSON(t, tpl))
	require.False(t, result.Success)
	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0], "data-field")
}

func TestTemplateStructuralRequired(t *testing.T) {
	result := Template([]byte(`{}`))
	require.False(t, result.Success)
	assert.ElementsMatch(t, []string{
		"id: required",
		"name: required",
		"typeId: required",
		"content: required",
	}, result.Issues)
}

func TestTemplateSyntaxIssueDoesNotAbort(t *testing.T) {
	tpl := validTemplate()
	// Unclosed section, and none of the markup conventions present.
	tpl.Content = `{{#items}}<p>{{description}}</p>`
	result := Template(templateJSON(t, tpl))
	require.False(t, result.Success)

	var hasSyntax, hasContentID bool
	for _, issue := range result.Issues {
		if issue == `Template must contain an element with an id ending in "-content"` {
			hasContentID = true
		}
		if strings.HasPrefix(issue, "Invalid template syntax") {
			hasSyntax = true
		}
	}
	assert.True(t, hasSyntax, "expected a syntax issue in %v", result.Issues)
	assert.True(t, hasContentID, "expected markup conventions to still run, got %v", result.Issues)
}

func TestTemplateLoopMarkers(t *testing.T) {
	tpl := validTemplate()
	tpl.Content = `<div id="i-content" class="i-preview" data-field="x">{{#items}}<p>{{.}}</p>{{/items}}</div>`
	result := Template(templateJSON(t, tpl))
	require.False(t, result.Success)
	assert.Contains(t, result.Issues, "Templates with loops must include a data-item-index attribute")
	assert.Contains(t, result.Issues, "Templates with loops must include a data-array-container attribute")

	// No loops, no marker requirement.
	tpl.Content = `<div id="i-content" class="i-preview" data-field="x">{{name}}</div>`
	result = Template(templateJSON(t, tpl))
	assert.True(t, result.Success, "issues: %v", result.Issues)
}

func TestTemplatePreviewClassTokenSuffix(t *testing.T) {
	tpl := validTemplate()
	// "preview" as a bare token does not count; only a "-preview" suffix does.
	tpl.Content = `<div id="i-content" class="preview" data-field="x">{{name}}</div>`
	result := Template(templateJSON(t, tpl))
	require.False(t, result.Success)
	assert.Contains(t, result.Issues, `Template must contain an element with a class ending in "-preview"`)

	tpl.Content = `<div id="i-content" class="card cv-preview" data-field="x">{{name}}</div>`
	result = Template(templateJSON(t, tpl))
	assert.True(t, result.Success, "issues: %v", result.Issues)
}

func TestTemplateKebabID(t *testing.T) {
	tpl := validTemplate()
	tpl.ID = "Invoice_Classic"
	result := Template(templateJSON(t, tpl))
	require.False(t, result.Success)
	assert.Contains(t, result.Issues, "ID must be kebab-case")
}

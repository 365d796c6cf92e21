package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docstudio/pkg/models"
)

func TestRendererBasic(t *testing.T) {
	r := NewRenderer(EnrichOptions{Locale: "en"})
	data := models.Data{"invoice": map[string]any{"number": "INV-1"}}

	out, err := r.Render(`<div id="x-content" class="x-preview">{{invoice.number}}</div>`, data)
	require.NoError(t, err)
	assert.Equal(t, `<div id="x-content" class="x-preview">INV-1</div>`, out)
}

func TestRendererInvalidTemplate(t *testing.T) {
	r := NewRenderer(EnrichOptions{Locale: "en"})

	_, err := r.Render("{{#items}}unclosed", models.Data{})
	require.Error(t, err)

	var renderErr *RenderError
	require.True(t, errors.As(err, &renderErr))
	assert.True(t, errors.Is(err, ErrInvalidTemplate))
}

func TestRendererNeverProducesPartialOutput(t *testing.T) {
	r := NewRenderer(EnrichOptions{Locale: "en"})
	out, err := r.Render("<p>before</p>{{#a}}{{/b}}", models.Data{})
	require.Error(t, err)
	assert.Empty(t, out)
}

func TestRendererStripsScriptInData(t *testing.T) {
	r := NewRenderer(EnrichOptions{Locale: "en"})
	data := models.Data{"note": "<script>alert(1)</script>"}

	// Raw interpolation bypasses escaping, so the sanitizer is the last line
	// of defense.
	out, err := r.Render("<div>{{{note}}}</div>", data)
	require.NoError(t, err)
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "alert(1)")
}

func TestRendererStripsEventHandlers(t *testing.T) {
	r := NewRenderer(EnrichOptions{Locale: "en"})
	data := models.Data{"v": `<div onclick="steal()">x</div>`}

	out, err := r.Render("{{{v}}}", data)
	require.NoError(t, err)
	assert.NotContains(t, out, "onclick")
	assert.Contains(t, out, "x")
}

func TestRendererFullInvoiceTemplate(t *testing.T) {
	r := NewRenderer(EnrichOptions{Locale: "en"})
	tpl := `<div id="invoice-content" class="invoice-preview">` +
		`<h1>{{sender.name}}</h1>` +
		`<table><tbody>{{#items_with_totals}}` +
		`<tr><td>{{description}}</td><td>{{line_total_formatted}}</td></tr>` +
		`{{/items_with_totals}}</tbody></table>` +
		`<p>Total: {{formatted.total}}</p></div>`

	out, err := r.Render(tpl, invoiceData())
	require.NoError(t, err)
	assert.Contains(t, out, "<h1>ACME</h1>")
	assert.Contains(t, out, "<td>Service</td><td>$180</td>")
	assert.Contains(t, out, "Total: $236")
}

func TestSanitizeKeepsAllowlistedMarkup(t *testing.T) {
	in := `<section class="a"><table><tr><td style="color:red">x</td></tr></table><img src="https://example.com/logo.png" alt="logo" width="100"/></section>`
	out := Sanitize(in)
	assert.Contains(t, out, "<section")
	assert.Contains(t, out, "<td")
	assert.Contains(t, out, "logo.png")
}

func TestSanitizeStripsDisallowedTagKeepsContent(t *testing.T) {
	out := Sanitize("<custom-widget><p>hello</p></custom-widget>")
	assert.NotContains(t, out, "custom-widget")
	assert.Contains(t, out, "<p>hello</p>")
}

func TestSanitizeStripsDisallowedAttributes(t *testing.T) {
	out := Sanitize(`<div class="ok" data-secret="1" contenteditable="true">x</div>`)
	assert.Contains(t, out, `class="ok"`)
	assert.NotContains(t, out, "data-secret")
	assert.NotContains(t, out, "contenteditable")
}

func TestSanitizeFiltersStyleDeclarations(t *testing.T) {
	out := Sanitize(`<div style="color: red; background-image: url(https://evil.example/x.png)">x</div>`)
	assert.Contains(t, out, "color")
	assert.NotContains(t, out, "evil.example")
	assert.NotContains(t, out, "url(")

	// A style attribute with no allowed declarations left is dropped.
	out = Sanitize(`<p style="behavior: url(bad.htc)">y</p>`)
	assert.NotContains(t, out, "style=")
	assert.Contains(t, out, "y")
}

func TestSanitizeNeutralizesJavascriptURL(t *testing.T) {
	out := Sanitize(`<img src="javascript:alert(1)">`)
	assert.NotContains(t, out, "javascript:")
}

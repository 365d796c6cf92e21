package assistant

import (
	"fmt"
	"strings"

	"docstudio/internal/validate"
	"docstudio/pkg/models"
)

// ArtifactKind selects which kind of artifact a prompt steers the model
// toward.
type ArtifactKind string

const (
	KindDocumentType ArtifactKind = "document-type"
	KindTemplate     ArtifactKind = "template"
	KindTheme        ArtifactKind = "theme"
)

// ParseKind converts a CLI/tool argument into an ArtifactKind.
func ParseKind(s string) (ArtifactKind, error) {
	switch ArtifactKind(strings.ToLower(strings.TrimSpace(s))) {
	case KindDocumentType:
		return KindDocumentType, nil
	case KindTemplate:
		return KindTemplate, nil
	case KindTheme:
		return KindTheme, nil
	default:
		return "", fmt.Errorf("unknown artifact kind %q (expected document-type, template, or theme)", s)
	}
}

const systemPreamble = `You are the built-in assistant of Document Studio, a browser-based
document-authoring application. Users define document types (invoice, CV,
legal contract, ...), author Mustache-style HTML templates and CSS themes for
them, and render live previews for printing or PDF export.

You produce and edit those artifacts on the user's behalf. Every artifact you
return is machine-validated before it is accepted, so follow the requirements
below exactly. Return ONLY a single JSON object, with no prose around it and
no trailing commas.`

const documentTypeGuide = `A document type declares the structure of one kind of document as an ordered
list of sections, each with an ordered list of fields.

JSON shape:
  {
    "id": "kebab-case-id",
    "name": "Display Name",
    "sections": [
      { "id": "section-id", "name": "Section Name", "fields": [
        { "id": "field-id", "name": "Field Name", "type": "text", "required": true }
      ]}
    ]
  }

Field types: text, textarea, email, tel, url, number, date, array.
Array fields repeat a sub-record and carry an "arrayItemSchema" listing the
fields of one item (used for line items, experience entries, and similar).`

const documentTypeExample = `{
  "id": "invoice",
  "name": "Invoice",
  "sections": [
    { "id": "sender", "name": "Sender", "fields": [
      { "id": "name", "name": "Company name", "type": "text", "required": true },
      { "id": "email", "name": "Email", "type": "email" }
    ]},
    { "id": "invoice", "name": "Invoice details", "fields": [
      { "id": "number", "name": "Invoice number", "type": "text", "required": true },
      { "id": "date", "name": "Issue date", "type": "date", "required": true },
      { "id": "currency", "name": "Currency", "type": "text" }
    ]},
    { "id": "lines", "name": "Line items", "fields": [
      { "id": "items", "name": "Items", "type": "array", "required": true,
        "arrayItemSchema": [
          { "id": "description", "name": "Description", "type": "text", "required": true },
          { "id": "qty", "name": "Quantity", "type": "number", "required": true },
          { "id": "unit_price", "name": "Unit price", "type": "number", "required": true },
          { "id": "discount", "name": "Discount %", "type": "number" }
        ] }
    ]}
  ]
}`

const templateGuide = `A template is Mustache-style HTML rendered against the enriched document
data. Available constructs: {{path}} (HTML-escaped variable with dotted path
lookup), {{#path}}...{{/path}} (loop over a sequence, or render once when the
value is truthy), {{^path}}...{{/path}} (render only when falsy/empty), and
{{{path}}} for raw output. Inside an {{#items_with_totals}} loop the current
item is in scope and enclosing fields (e.g. sender.name) remain reachable.

Useful computed paths: totals.subtotal, totals.total,
formatted.subtotal, formatted.total, formatted.date, items_with_totals
(each item carries index, line_total, line_total_formatted,
unit_price_formatted, qty_formatted).

JSON shape:
  { "id": "kebab-case-id", "name": "Display Name", "typeId": "document-type-id",
    "content": "<div id=\"...\">...</div>" }`

const templateExample = `{
  "id": "invoice-classic",
  "name": "Classic Invoice",
  "typeId": "invoice",
  "content": "<div id=\"invoice-content\" class=\"invoice-preview\"><header><h1 data-field=\"sender.name\">{{sender.name}}</h1><p>{{formatted.date}}</p></header><table data-array-container=\"items\"><tbody>{{#items_with_totals}}<tr data-item-index=\"{{index}}\"><td data-field=\"items.{{index}}.description\">{{description}}</td><td>{{qty_formatted}}</td><td>{{unit_price_formatted}}</td><td>{{line_total_formatted}}</td></tr>{{/items_with_totals}}</tbody></table><footer><p>Subtotal: {{formatted.subtotal}}</p>{{#totals.taxes}}<p>{{label}} ({{rate}}%): {{amount}}</p>{{/totals.taxes}}<p>Total: {{formatted.total}}</p></footer></div>"
}`

const themeGuide = `A theme is a plain CSS stylesheet scoped to the preview. Declare the studio
variables in a :root block, style the preview container class, and include
print rules so the document exports cleanly.

JSON shape:
  { "id": "kebab-case-id", "name": "Display Name", "content": "/* CSS */" }`

const themeExample = `{
  "id": "slate-minimal",
  "name": "Slate Minimal",
  "content": ":root { --color-bg: #ffffff; --color-fg: #1e293b; --color-accent: #0f766e; --font-mono: 'IBM Plex Mono', monospace; --h1: 2rem; --h2: 1.4rem; --text: 0.95rem; --page-w: 210mm; --page-pad: 18mm; }\n.invoice-preview { background: var(--color-bg); color: var(--color-fg); width: var(--page-w); padding: var(--page-pad); font-size: var(--text); }\n.invoice-preview h1 { font-size: var(--h1); color: var(--color-accent); }\n@media print { .invoice-preview { box-shadow: none; } }\n@page { size: A4; margin: 0; }"
}`

// SystemPrompt assembles the full system prompt for one artifact kind:
// shared preamble, kind guide, worked example, and a closing section
// restating every requirement the validator enforces.
func SystemPrompt(kind ArtifactKind) string {
	var sb strings.Builder
	sb.WriteString("# Document Studio assistant\n\n")
	sb.WriteString(systemPreamble)
	sb.WriteString("\n\n")

	switch kind {
	case KindDocumentType:
		sb.WriteString("## Authoring a document type\n\n")
		sb.WriteString(documentTypeGuide)
		sb.WriteString("\n\n## Example\n\n")
		sb.WriteString(documentTypeExample)
	case KindTemplate:
		sb.WriteString("## Authoring a template\n\n")
		sb.WriteString(templateGuide)
		sb.WriteString("\n\n## Example\n\n")
		sb.WriteString(templateExample)
	case KindTheme:
		sb.WriteString("## Authoring a theme\n\n")
		sb.WriteString(themeGuide)
		sb.WriteString("\n\n## Example\n\n")
		sb.WriteString(themeExample)
	}

	sb.WriteString("\n\n## Hard requirements\n\n")
	for _, req := range hardRequirements(kind) {
		sb.WriteString("- ")
		sb.WriteString(req)
		sb.WriteString("\n")
	}
	return sb.String()
}

// hardRequirements mirrors the validator rules for each kind so the model is
// steered toward passing validation on the first attempt.
func hardRequirements(kind ArtifactKind) []string {
	common := []string{
		`"id" must be kebab-case: lowercase letters and digits separated by single hyphens (e.g. "legal-contract")`,
		"return a single JSON object only, no markdown prose, no trailing commas",
	}
	switch kind {
	case KindDocumentType:
		return append(common,
			"at least one section, and every section has at least one field",
			"every field has an id, a name, and a valid type (text, textarea, email, tel, url, number, date, array)",
		)
	case KindTemplate:
		return append(common,
			`"content" must be valid Mustache-style syntax with balanced section tags`,
			`"content" must contain an element whose id ends in "-content"`,
			`"content" must contain an element whose class contains a token ending in "-preview"`,
			`mark editable fields with data-field="..." attributes`,
			`any template using {{#...}} loops must include data-item-index= and data-array-container= attributes`,
			`only these tags survive sanitization: div, span, p, headings, tables, lists, img, and semantic sectioning tags; only class, id, style, src, alt, width, height attributes are kept`,
		)
	case KindTheme:
		return append(common,
			fmt.Sprintf(`"content" must declare a :root { ... } block defining all of: %s`, strings.Join(validate.RequiredThemeVariables, ", ")),
			"include a @media print block and a @page { ... } block",
			`style at least one class ending in "-preview"`,
		)
	default:
		return common
	}
}

// CreatePrompt builds the user prompt for generating a new artifact from a
// plain-text description.
func CreatePrompt(kind ArtifactKind, description string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Create a new %s from this description:\n\n", kind))
	sb.WriteString(description)
	sb.WriteString("\n\nReturn only the JSON object.")
	return sb.String()
}

// TemplatePrompt builds the user prompt for generating a template bound to a
// specific document type, embedding the type so field paths line up.
func TemplatePrompt(dt models.DocumentType, currentJSON, description string) string {
	var sb strings.Builder
	sb.WriteString("Target document type (use its section and field ids for data paths and data-field attributes):\n\n")
	sb.WriteString(fmt.Sprintf("id: %s\nname: %s\n", dt.ID, dt.Name))
	for _, section := range dt.Sections {
		sb.WriteString(fmt.Sprintf("- section %s (%s): ", section.ID, section.Name))
		ids := make([]string, 0, len(section.Fields))
		for _, f := range section.Fields {
			ids = append(ids, fmt.Sprintf("%s:%s", f.ID, f.Type))
		}
		sb.WriteString(strings.Join(ids, ", "))
		sb.WriteString("\n")
	}
	if currentJSON != "" {
		sb.WriteString("\nCurrent template JSON to update (keep the same id):\n\n")
		sb.WriteString(currentJSON)
		sb.WriteString("\n\nRequested change:\n\n")
	} else {
		sb.WriteString("\nCreate a new template from this description:\n\n")
	}
	sb.WriteString(description)
	sb.WriteString("\n\nReturn only the JSON object.")
	return sb.String()
}

// UpdatePrompt builds the user prompt for editing an existing artifact.
func UpdatePrompt(kind ArtifactKind, currentJSON, request string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Update this %s. Keep the same id and apply only the requested change.\n\n", kind))
	sb.WriteString("Current JSON:\n\n")
	sb.WriteString(currentJSON)
	sb.WriteString("\n\nRequested change:\n\n")
	sb.WriteString(request)
	sb.WriteString("\n\nReturn only the full updated JSON object.")
	return sb.String()
}

package render

import "github.com/microcosm-cc/bluemonday"

// The preview allow-list is a fixed contract with the stylesheet and the
// template conventions, so the policy is configured explicitly instead of
// relying on bluemonday's defaults. Disallowed elements are stripped while
// their allowed descendants survive; script content, event handlers, and
// javascript: URLs are removed regardless of the lists below.

var allowedTags = []string{
	"div", "span", "p", "br", "hr",
	"h1", "h2", "h3", "h4", "h5", "h6",
	"strong", "em", "b", "i", "u", "small", "sub", "sup",
	"blockquote", "pre", "code",
	"table", "thead", "tbody", "tfoot", "tr", "th", "td", "caption", "colgroup", "col",
	"ul", "ol", "li", "dl", "dt", "dd",
	"img",
	"section", "article", "header", "footer", "main", "aside", "nav",
	"figure", "figcaption", "address", "time",
}

var allowedAttrs = []string{"class", "id", "style", "src", "alt", "width", "height"}

// Inline style declarations are filtered down to plain presentation
// properties, so a style attribute can never pull in external resources
// (background-image and other url() carriers are not listed).
var allowedStyleProps = []string{
	"color", "background-color", "opacity",
	"font-family", "font-size", "font-weight", "font-style",
	"text-align", "text-decoration", "text-transform",
	"line-height", "letter-spacing", "white-space", "vertical-align",
	"margin", "margin-top", "margin-right", "margin-bottom", "margin-left",
	"padding", "padding-top", "padding-right", "padding-bottom", "padding-left",
	"border", "border-top", "border-right", "border-bottom", "border-left",
	"border-collapse", "border-spacing", "border-radius",
	"width", "height", "min-width", "max-width", "display",
}

var previewPolicy = newPreviewPolicy()

func newPreviewPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(allowedTags...)
	p.AllowAttrs(allowedAttrs...).Globally()
	p.AllowStyles(allowedStyleProps...).Globally()
	p.AllowStandardURLs()
	p.SkipElementsContent("script", "style")
	return p
}

// Sanitize reduces rendered HTML to the preview allow-list.
func Sanitize(markup string) string {
	return previewPolicy.Sanitize(markup)
}

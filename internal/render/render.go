// Package render turns document data and a Mustache-style template into
// sanitized preview HTML: enrich the data with computed totals and formatted
// strings, substitute it into the template, then reduce the result to the
// preview tag/attribute allow-list.
package render

import (
	"fmt"

	"github.com/rs/zerolog"

	"docstudio/internal/logger"
	"docstudio/pkg/models"
)

// Renderer produces sanitized preview HTML from templates and document data.
type Renderer interface {
	// Render substitutes document data into template source and sanitizes
	// the result. Fails with *RenderError on malformed template syntax and
	// never returns partial output.
	Render(templateSrc string, data models.Data) (string, error)
}

// DefaultRenderer implements Renderer with the built-in template engine.
type DefaultRenderer struct {
	opts EnrichOptions
	log  zerolog.Logger
}

// NewRenderer creates a renderer with the given display options.
func NewRenderer(opts EnrichOptions) *DefaultRenderer {
	if opts.Locale == "" {
		opts.Locale = "en"
	}
	return &DefaultRenderer{
		opts: opts,
		log:  logger.WithComponent("renderer"),
	}
}

// Render implements Renderer.
func (r *DefaultRenderer) Render(templateSrc string, data models.Data) (string, error) {
	const op = "Render"

	tpl, err := Parse(templateSrc)
	if err != nil {
		r.log.Debug().Err(err).Msg("Template parse failed")
		return "", NewRenderError(op, fmt.Errorf("%w: %v", ErrInvalidTemplate, err), "")
	}

	view := Enrich(data, r.opts)
	out := Sanitize(tpl.Render(view))

	r.log.Debug().
		Int("template_bytes", len(templateSrc)).
		Int("output_bytes", len(out)).
		Str("locale", r.opts.Locale).
		Msg("Rendered document")

	return out, nil
}

package validate

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"docstudio/pkg/models"
)

// RequiredThemeVariables are the CSS custom properties every theme must
// declare; the default templates and the preview stylesheet resolve against
// them.
var RequiredThemeVariables = []string{
	"--color-bg",
	"--color-fg",
	"--color-accent",
	"--font-mono",
	"--h1",
	"--h2",
	"--text",
	"--page-w",
	"--page-pad",
}

var (
	rootBlock        = regexp.MustCompile(`:root\s*\{`)
	pageBlock        = regexp.MustCompile(`@page\s*\{`)
	previewClassRule = regexp.MustCompile(`\.[A-Za-z0-9_-]*-preview\s*\{`)
)

var themeStructuralRules = []rule[models.Theme]{
	func(t models.Theme) []string {
		var issues []string
		if t.ID == "" {
			issues = append(issues, "id: required")
		}
		if t.Name == "" {
			issues = append(issues, "name: required")
		}
		if t.Content == "" {
			issues = append(issues, "content: required")
		}
		return issues
	},
}

var themeConventionRules = []rule[models.Theme]{
	func(t models.Theme) []string {
		if !IsKebabCase(t.ID) {
			return []string{"ID must be kebab-case"}
		}
		return nil
	},
	func(t models.Theme) []string {
		if !rootBlock.MatchString(t.Content) {
			return []string{"Theme must declare a :root { ... } block"}
		}
		return nil
	},
	func(t models.Theme) []string {
		var issues []string
		for _, name := range RequiredThemeVariables {
			if !strings.Contains(t.Content, name) {
				issues = append(issues, fmt.Sprintf("Theme is missing required CSS variable %s", name))
			}
		}
		return issues
	},
	func(t models.Theme) []string {
		if !strings.Contains(t.Content, "@media print") {
			return []string{"Theme must contain a @media print block"}
		}
		return nil
	},
	func(t models.Theme) []string {
		if !pageBlock.MatchString(t.Content) {
			return []string{"Theme must contain a @page { ... } block"}
		}
		return nil
	},
	func(t models.Theme) []string {
		if !previewClassRule.MatchString(t.Content) {
			return []string{`Theme must style at least one class ending in "-preview"`}
		}
		return nil
	},
}

// Theme validates a candidate theme JSON payload.
func Theme(raw []byte) Result[models.Theme] {
	var t models.Theme
	if err := json.Unmarshal(raw, &t); err != nil {
		return fail[models.Theme]([]string{fmt.Sprintf("invalid JSON: %v", err)})
	}
	if issues := runRules(themeStructuralRules, t); len(issues) > 0 {
		return fail[models.Theme](issues)
	}
	if issues := runRules(themeConventionRules, t); len(issues) > 0 {
		return fail[models.Theme](issues)
	}
	return pass(t)
}

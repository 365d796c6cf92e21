package validate

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"docstudio/internal/render"
	"docstudio/pkg/models"
)

var (
	contentIDAttr  = regexp.MustCompile(`id=["'][^"']*-content["']`)
	classAttr      = regexp.MustCompile(`class=["']([^"']*)["']`)
	sectionOpener  = regexp.MustCompile(`\{\{\s*#`)
	itemIndexAttr  = "data-item-index="
	arrayContainer = "data-array-container="
)

var templateStructuralRules = []rule[models.Template]{
	func(t models.Template) []string {
		var issues []string
		if t.ID == "" {
			issues = append(issues, "id: required")
		}
		if t.Name == "" {
			issues = append(issues, "name: required")
		}
		if t.TypeID == "" {
			issues = append(issues, "typeId: required")
		}
		if t.Content == "" {
			issues = append(issues, "content: required")
		}
		return issues
	},
}

// Convention rules run best-effort: a syntax failure is recorded as an issue
// and the remaining checks still inspect the invalid content.
var templateConventionRules = []rule[models.Template]{
	func(t models.Template) []string {
		if !IsKebabCase(t.ID) {
			return []string{"ID must be kebab-case"}
		}
		return nil
	},
	func(t models.Template) []string {
		if _, err := render.Parse(t.Content); err != nil {
			return []string{fmt.Sprintf("Invalid template syntax: %v", err)}
		}
		return nil
	},
	func(t models.Template) []string {
		if !contentIDAttr.MatchString(t.Content) {
			return []string{`Template must contain an element with an id ending in "-content"`}
		}
		return nil
	},
	func(t models.Template) []string {
		if !hasPreviewClass(t.Content) {
			return []string{`Template must contain an element with a class ending in "-preview"`}
		}
		return nil
	},
	func(t models.Template) []string {
		if !strings.Contains(t.Content, "data-field=") {
			return []string{"Template should include data-field attributes so fields stay editable from the preview"}
		}
		return nil
	},
	func(t models.Template) []string {
		if !sectionOpener.MatchString(t.Content) {
			return nil
		}
		var issues []string
		if !strings.Contains(t.Content, itemIndexAttr) {
			issues = append(issues, "Templates with loops must include a data-item-index attribute")
		}
		if !strings.Contains(t.Content, arrayContainer) {
			issues = append(issues, "Templates with loops must include a data-array-container attribute")
		}
		return issues
	},
}

func hasPreviewClass(content string) bool {
	for _, m := range classAttr.FindAllStringSubmatch(content, -1) {
		for _, token := range strings.Fields(m[1]) {
			if strings.HasSuffix(token, "-preview") {
				return true
			}
		}
	}
	return false
}

// Template validates a candidate template JSON payload.
func Template(raw []byte) Result[models.Template] {
	var t models.Template
	if err := json.Unmarshal(raw, &t); err != nil {
		return fail[models.Template]([]string{fmt.Sprintf("invalid JSON: %v", err)})
	}
	if issues := runRules(templateStructuralRules, t); len(issues) > 0 {
		return fail[models.Template](issues)
	}
	if issues := runRules(templateConventionRules, t); len(issues) > 0 {
		return fail[models.Template](issues)
	}
	return pass(t)
}

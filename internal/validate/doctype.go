package validate

import (
	"encoding/json"
	"fmt"

	"docstudio/pkg/models"
)

var validFieldTypes = map[models.FieldType]bool{
	models.FieldText:     true,
	models.FieldTextarea: true,
	models.FieldEmail:    true,
	models.FieldTel:      true,
	models.FieldURL:      true,
	models.FieldNumber:   true,
	models.FieldDate:     true,
	models.FieldArray:    true,
}

// Structural rules check conformance to the DocumentType shape. They
// short-circuit: convention rules only run on structurally sound candidates.
var docTypeStructuralRules = []rule[models.DocumentType]{
	func(dt models.DocumentType) []string {
		var issues []string
		if dt.ID == "" {
			issues = append(issues, "id: required")
		}
		if dt.Name == "" {
			issues = append(issues, "name: required")
		}
		if dt.Sections == nil {
			issues = append(issues, "sections: required")
		}
		return issues
	},
	func(dt models.DocumentType) []string {
		var issues []string
		for i, section := range dt.Sections {
			if section.ID == "" {
				issues = append(issues, fmt.Sprintf("sections[%d].id: required", i))
			}
			if section.Name == "" {
				issues = append(issues, fmt.Sprintf("sections[%d].name: required", i))
			}
			for j, field := range section.Fields {
				if field.ID == "" {
					issues = append(issues, fmt.Sprintf("sections[%d].fields[%d].id: required", i, j))
				}
				if field.Name == "" {
					issues = append(issues, fmt.Sprintf("sections[%d].fields[%d].name: required", i, j))
				}
				if !validFieldTypes[field.Type] {
					issues = append(issues, fmt.Sprintf("sections[%d].fields[%d].type: invalid field type %q", i, j, string(field.Type)))
				}
			}
		}
		return issues
	},
}

var docTypeConventionRules = []rule[models.DocumentType]{
	func(dt models.DocumentType) []string {
		if !IsKebabCase(dt.ID) {
			return []string{"ID must be kebab-case"}
		}
		return nil
	},
	func(dt models.DocumentType) []string {
		if len(dt.Sections) == 0 {
			return []string{"Document type must have at least one section"}
		}
		return nil
	},
	func(dt models.DocumentType) []string {
		var issues []string
		for i, section := range dt.Sections {
			if len(section.Fields) == 0 {
				issues = append(issues, fmt.Sprintf("Section %d (%s) must have at least one field", i, section.Name))
			}
		}
		return issues
	},
}

// DocumentType validates a candidate document-type JSON payload.
func DocumentType(raw []byte) Result[models.DocumentType] {
	var dt models.DocumentType
	if err := json.Unmarshal(raw, &dt); err != nil {
		return fail[models.DocumentType]([]string{fmt.Sprintf("invalid JSON: %v", err)})
	}
	if issues := runRules(docTypeStructuralRules, dt); len(issues) > 0 {
		return fail[models.DocumentType](issues)
	}
	if issues := runRules(docTypeConventionRules, dt); len(issues) > 0 {
		return fail[models.DocumentType](issues)
	}
	return pass(dt)
}

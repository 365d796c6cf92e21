// Package validate gates document-type, template, and theme artifacts before
// they are stored or rendered. Checks are deliberately surface-level
// (regex/substring over the artifact text, not a full HTML/CSS parse): the
// artifacts are free-form, often LLM-generated, and the rules encode the
// minimum contract the renderer and the preview stylesheet require.
package validate

import "regexp"

// Result is the common shape shared by every validation pipeline. Success is
// true iff there are zero issues; Data is only populated on success so
// callers can never reach for partially-valid artifacts.
type Result[T any] struct {
	Success bool     `json:"success"`
	Data    *T       `json:"data,omitempty"`
	Error   string   `json:"error,omitempty"`
	Issues  []string `json:"issues,omitempty"`
}

const issuesFound = "Validation issues found"

func pass[T any](v T) Result[T] {
	return Result[T]{Success: true, Data: &v}
}

func fail[T any](issues []string) Result[T] {
	return Result[T]{Success: false, Error: issuesFound, Issues: issues}
}

// A rule inspects a candidate and returns zero or more issues. Each
// artifact kind evaluates an ordered rule table so adding or removing a
// check never touches control flow.
type rule[T any] func(T) []string

func runRules[T any](rules []rule[T], candidate T) []string {
	var issues []string
	for _, r := range rules {
		issues = append(issues, r(candidate)...)
	}
	return issues
}

var kebabCase = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// IsKebabCase reports whether an artifact id follows the kebab-case
// convention the studio requires.
func IsKebabCase(id string) bool {
	return kebabCase.MatchString(id)
}

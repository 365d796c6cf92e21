package assistant

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Models wrap JSON in prose or markdown fences more often than not. When a
// fenced code block is present only its content is parsed; otherwise the
// whole trimmed text must be JSON.
var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// ExtractJSON pulls a JSON payload out of a model text response. Fails with
// *ParseError when the candidate is not valid JSON even after
// fence-stripping.
func ExtractJSON(text string) (json.RawMessage, error) {
	payload := strings.TrimSpace(text)
	if m := fencedBlock.FindStringSubmatch(text); m != nil {
		payload = strings.TrimSpace(m[1])
	}
	var probe any
	if err := json.Unmarshal([]byte(payload), &probe); err != nil {
		return nil, &ParseError{Err: err}
	}
	return json.RawMessage(payload), nil
}

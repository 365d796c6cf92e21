package render

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"docstudio/pkg/models"
)

// The engine implements logic-less template substitution: variable
// interpolation with dotted paths, sections that loop over sequences or
// toggle on truthiness, inverted sections, and raw (unescaped) variables.
// Name resolution walks an explicit context stack outward so a template can
// reference enclosing fields (e.g. sender.name) from inside an items loop.

type nodeKind int

const (
	textNode nodeKind = iota
	varNode
	rawVarNode
	sectionNode
	invertedNode
)

type node struct {
	kind     nodeKind
	text     string // textNode only
	path     string
	children []node
}

// Template is a parsed template ready for substitution.
type Template struct {
	nodes []node
}

type frame struct {
	path     string
	inverted bool
	nodes    []node
}

// Parse compiles template source into a node tree. Unclosed tags, empty
// tags, and unbalanced sections fail with a descriptive error.
func Parse(src string) (*Template, error) {
	stack := []*frame{{}}
	pos := 0
	for pos < len(src) {
		rel := strings.Index(src[pos:], "{{")
		top := stack[len(stack)-1]
		if rel < 0 {
			top.nodes = append(top.nodes, node{kind: textNode, text: src[pos:]})
			break
		}
		if rel > 0 {
			top.nodes = append(top.nodes, node{kind: textNode, text: src[pos : pos+rel]})
			pos += rel
		}

		if strings.HasPrefix(src[pos:], "{{{") {
			end := strings.Index(src[pos+3:], "}}}")
			if end < 0 {
				return nil, fmt.Errorf("unclosed {{{ tag at offset %d", pos)
			}
			path := strings.TrimSpace(src[pos+3 : pos+3+end])
			if path == "" {
				return nil, fmt.Errorf("empty tag at offset %d", pos)
			}
			top.nodes = append(top.nodes, node{kind: rawVarNode, path: path})
			pos += 3 + end + 3
			continue
		}

		end := strings.Index(src[pos+2:], "}}")
		if end < 0 {
			return nil, fmt.Errorf("unclosed {{ tag at offset %d", pos)
		}
		tag := strings.TrimSpace(src[pos+2 : pos+2+end])
		pos += 2 + end + 2
		if tag == "" {
			return nil, fmt.Errorf("empty tag")
		}

		switch tag[0] {
		case '#':
			stack = append(stack, &frame{path: strings.TrimSpace(tag[1:])})
		case '^':
			stack = append(stack, &frame{path: strings.TrimSpace(tag[1:]), inverted: true})
		case '/':
			name := strings.TrimSpace(tag[1:])
			if len(stack) == 1 {
				return nil, fmt.Errorf("unexpected closing tag {{/%s}}", name)
			}
			closed := stack[len(stack)-1]
			if closed.path != name {
				return nil, fmt.Errorf("section {{#%s}} closed by {{/%s}}", closed.path, name)
			}
			stack = stack[:len(stack)-1]
			parent := stack[len(stack)-1]
			kind := sectionNode
			if closed.inverted {
				kind = invertedNode
			}
			parent.nodes = append(parent.nodes, node{kind: kind, path: closed.path, children: closed.nodes})
		case '!':
			// comment, drop
		case '&':
			path := strings.TrimSpace(tag[1:])
			if path == "" {
				return nil, fmt.Errorf("empty tag")
			}
			top.nodes = append(top.nodes, node{kind: rawVarNode, path: path})
		case '>':
			return nil, fmt.Errorf("partials are not supported: {{%s}}", tag)
		default:
			top.nodes = append(top.nodes, node{kind: varNode, path: tag})
		}
	}
	if len(stack) > 1 {
		return nil, fmt.Errorf("unclosed section {{#%s}}", stack[len(stack)-1].path)
	}
	return &Template{nodes: stack[0].nodes}, nil
}

// Render substitutes the view model into the template. Missing names render
// as empty strings; they are not errors.
func (t *Template) Render(view models.Data) string {
	var sb strings.Builder
	renderNodes(&sb, t.nodes, []any{map[string]any(view)})
	return sb.String()
}

func renderNodes(sb *strings.Builder, nodes []node, ctx []any) {
	for _, n := range nodes {
		switch n.kind {
		case textNode:
			sb.WriteString(n.text)
		case varNode:
			sb.WriteString(html.EscapeString(valueString(lookup(ctx, n.path))))
		case rawVarNode:
			sb.WriteString(valueString(lookup(ctx, n.path)))
		case sectionNode:
			v := lookup(ctx, n.path)
			if seq, ok := v.([]any); ok {
				for _, elem := range seq {
					renderNodes(sb, n.children, append(ctx, elem))
				}
				continue
			}
			if truthy(v) {
				renderNodes(sb, n.children, append(ctx, v))
			}
		case invertedNode:
			if !truthy(lookup(ctx, n.path)) {
				renderNodes(sb, n.children, ctx)
			}
		}
	}
}

// lookup resolves a dotted path against the context stack. The first path
// segment is searched from the innermost context outward; the remaining
// segments descend within the value it resolved to.
func lookup(ctx []any, path string) any {
	if path == "." {
		return ctx[len(ctx)-1]
	}
	segs := strings.Split(path, ".")
	for i := len(ctx) - 1; i >= 0; i-- {
		if v, ok := descend(ctx[i], segs[0]); ok {
			for _, seg := range segs[1:] {
				v, ok = descend(v, seg)
				if !ok {
					return nil
				}
			}
			return v
		}
	}
	return nil
}

func descend(v any, seg string) (any, bool) {
	switch t := v.(type) {
	case models.Data:
		out, ok := t[seg]
		return out, ok
	case map[string]any:
		out, ok := t[seg]
		return out, ok
	case []any:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= len(t) {
			return nil, false
		}
		return t[i], true
	default:
		return nil, false
	}
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case int:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	case models.Data:
		return len(t) > 0
	default:
		return true
	}
}

func valueString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Data is a document's field values as entered through the generated form or
// produced by the assistant. Document types are user-defined, so the shape is
// dynamic; dotted paths address nested fields (e.g. "items.0.description").
type Data map[string]any

// Lookup resolves a dotted path through nested maps and slices. Numeric
// segments index into slices. The second return value reports whether the
// full path resolved.
func (d Data) Lookup(path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	var cur any = map[string]any(d)
	for _, seg := range strings.Split(path, ".") {
		switch v := cur.(type) {
		case Data:
			next, ok := v[seg]
			if !ok {
				return nil, false
			}
			cur = next
		case map[string]any:
			next, ok := v[seg]
			if !ok {
				return nil, false
			}
			cur = next
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(v) {
				return nil, false
			}
			cur = v[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

// Set writes a value at a dotted path, creating intermediate maps as needed.
// Slice elements can be addressed by numeric segment but are never grown.
func (d Data) Set(path string, value any) {
	segs := strings.Split(path, ".")
	var cur any = map[string]any(d)
	for i, seg := range segs {
		last := i == len(segs)-1
		switch v := cur.(type) {
		case map[string]any:
			if last {
				v[seg] = value
				return
			}
			next, ok := v[seg]
			if !ok {
				m := map[string]any{}
				v[seg] = m
				next = m
			}
			cur = next
		case Data:
			if last {
				v[seg] = value
				return
			}
			next, ok := v[seg]
			if !ok {
				m := map[string]any{}
				v[seg] = m
				next = m
			}
			cur = next
		case []any:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(v) {
				return
			}
			if last {
				v[idx] = value
				return
			}
			cur = v[idx]
		default:
			return
		}
	}
}

// Clone returns a deep copy so enrichment never mutates the caller's data.
func (d Data) Clone() Data {
	return Data(cloneValue(map[string]any(d)).(map[string]any))
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case Data:
		return cloneValue(map[string]any(t))
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

// LineItem is one billable line of an invoice-like document.
type LineItem struct {
	Description string   `json:"description"`
	Qty         float64  `json:"qty"`
	UnitPrice   float64  `json:"unit_price"`
	Discount    *float64 `json:"discount,omitempty"` // percent, 0-100
}

// Tax is a named rate applied to the post-discount subtotal.
type Tax struct {
	Label string  `json:"label"`
	Rate  float64 `json:"rate"` // percent, 0-100
}

// Summary holds the document-level discount and taxes.
type Summary struct {
	GlobalDiscount *float64 `json:"global_discount,omitempty"` // percent, 0-100
	Taxes          []Tax    `json:"taxes,omitempty"`
}

// TaxAmount is a tax with its computed amount attached.
type TaxAmount struct {
	Tax
	Amount float64 `json:"amount"`
}

// Totals are derived from items and summary on every render, never stored.
type Totals struct {
	Subtotal            float64     `json:"subtotal"`
	GlobalDiscount      float64     `json:"global_discount"`
	AfterGlobalDiscount float64     `json:"after_global_discount"`
	TaxAmount           float64     `json:"tax_amount"`
	Total               float64     `json:"total"`
	Taxes               []TaxAmount `json:"taxes"`
}

// ItemsFrom decodes the "items" sequence out of dynamic document data.
// Numeric fields tolerate float64, int, and json.Number encodings.
func ItemsFrom(d Data) []LineItem {
	raw, ok := d.Lookup("items")
	if !ok {
		return nil
	}
	seq, ok := raw.([]any)
	if !ok {
		return nil
	}
	items := make([]LineItem, 0, len(seq))
	for _, e := range seq {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		items = append(items, ItemFrom(m))
	}
	return items
}

// ItemFrom decodes a single item record. Fields beyond the billing ones stay
// in the record itself; this only pulls out what the numeric engine needs.
func ItemFrom(m map[string]any) LineItem {
	item := LineItem{
		Description: stringField(m, "description"),
		Qty:         numField(m, "qty"),
		UnitPrice:   numField(m, "unit_price"),
	}
	if _, present := m["discount"]; present {
		disc := numField(m, "discount")
		item.Discount = &disc
	}
	return item
}

// SummaryFrom decodes the "summary" object out of dynamic document data.
func SummaryFrom(d Data) Summary {
	var s Summary
	raw, ok := d.Lookup("summary")
	if !ok {
		return s
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return s
	}
	if _, present := m["global_discount"]; present {
		gd := numField(m, "global_discount")
		s.GlobalDiscount = &gd
	}
	if taxes, ok := m["taxes"].([]any); ok {
		for _, e := range taxes {
			tm, ok := e.(map[string]any)
			if !ok {
				continue
			}
			s.Taxes = append(s.Taxes, Tax{
				Label: stringField(tm, "label"),
				Rate:  numField(tm, "rate"),
			})
		}
	}
	return s
}

func stringField(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

func numField(m map[string]any, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return f
	default:
		return 0
	}
}

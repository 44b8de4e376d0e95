package theme

import (
	"fmt"
	"math"
	"sort"
)

// ShapeError records a document entry that failed kind validation and was
// dropped. Dropping is recovery, not failure: the key is simply absent at
// that tier and resolution falls through to the next one.
type ShapeError struct {
	Path   string // dotted path, e.g. "colors.icon.gold"
	Reason string
}

func (e ShapeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// NewTree builds a typed tree from a decoded ui_theme document block.
// This is the single point where untyped config data becomes typed values;
// past here the resolution chain only handles well-formed entries. Invalid
// entries are skipped and reported, never fatal.
func NewTree(doc map[string]any) (*Tree, []ShapeError) {
	t := &Tree{
		colors: make(map[string]map[string]Color),
		layout: make(map[string]map[string]Layout),
	}
	var errs []ShapeError

	for category, keys := range section(doc, "colors") {
		for key, raw := range keys {
			c, err := parseColor(raw)
			if err != nil {
				errs = append(errs, ShapeError{
					Path:   "colors." + category + "." + key,
					Reason: err.Error(),
				})
				continue
			}
			if t.colors[category] == nil {
				t.colors[category] = make(map[string]Color)
			}
			t.colors[category][key] = c
		}
	}

	for category, keys := range section(doc, "layout") {
		for key, raw := range keys {
			l, err := parseLayout(raw)
			if err != nil {
				errs = append(errs, ShapeError{
					Path:   "layout." + category + "." + key,
					Reason: err.Error(),
				})
				continue
			}
			if t.layout[category] == nil {
				t.layout[category] = make(map[string]Layout)
			}
			t.layout[category][key] = l
		}
	}

	sort.Slice(errs, func(i, j int) bool { return errs[i].Path < errs[j].Path })
	return t, errs
}

// section extracts doc[name] as category → key → raw value.
func section(doc map[string]any, name string) map[string]map[string]any {
	out := make(map[string]map[string]any)
	block, _ := doc[name].(map[string]any)
	for category, v := range block {
		keys, ok := v.(map[string]any)
		if !ok {
			continue
		}
		out[category] = keys
	}
	return out
}

// parseColor accepts a sequence of exactly 3 or 4 integers in [0,255].
func parseColor(raw any) (Color, error) {
	seq, ok := raw.([]any)
	if !ok {
		return Color{}, fmt.Errorf("expected a sequence of components, got %T", raw)
	}
	if len(seq) != 3 && len(seq) != 4 {
		return Color{}, fmt.Errorf("expected 3 or 4 components, got %d", len(seq))
	}
	var ch [4]uint8
	for i, v := range seq {
		n, ok := asInt(v)
		if !ok {
			return Color{}, fmt.Errorf("component %d is not an integer: %v", i, v)
		}
		if n < 0 || n > 255 {
			return Color{}, fmt.Errorf("component %d out of range [0,255]: %d", i, n)
		}
		ch[i] = uint8(n)
	}
	if len(seq) == 4 {
		return RGBA(ch[0], ch[1], ch[2], ch[3]), nil
	}
	return RGB(ch[0], ch[1], ch[2]), nil
}

// parseLayout accepts a number or a flat mapping of sub-property → number.
func parseLayout(raw any) (Layout, error) {
	if f, ok := asFloat(raw); ok {
		return Num(f), nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return Layout{}, fmt.Errorf("expected a number or mapping of numbers, got %T", raw)
	}
	sub := make(map[string]float64, len(m))
	for k, v := range m {
		f, ok := asFloat(v)
		if !ok {
			return Layout{}, fmt.Errorf("sub-property %q is not a number: %v", k, v)
		}
		sub[k] = f
	}
	return Layout{Sub: sub}, nil
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n == math.Trunc(n) {
			return int(n), true
		}
	}
	return 0, false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

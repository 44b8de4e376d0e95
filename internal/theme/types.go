// Package theme resolves UI style values through a tiered fallback chain:
// level config → global config → compiled-in defaults → universal fallback.
// Every lookup is total; the worst case is a deterministic fallback value.
package theme

import "fmt"

// Kind selects which family of values a lookup targets.
type Kind int

const (
	KindColor Kind = iota
	KindLayout
)

func (k Kind) String() string {
	switch k {
	case KindColor:
		return "color"
	case KindLayout:
		return "layout"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Color is an RGB or RGBA value with byte-range channels.
// A source that supplies only 3 components is fully opaque (A=255).
type Color struct {
	R, G, B, A uint8
	HasAlpha   bool // true when the source supplied a 4th component
}

// RGB builds an opaque color.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 255} }

// RGBA builds a color with an explicit alpha channel.
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a, HasAlpha: true} }

// Components returns the color as 3 or 4 ints, matching the source shape.
func (c Color) Components() []int {
	if c.HasAlpha {
		return []int{int(c.R), int(c.G), int(c.B), int(c.A)}
	}
	return []int{int(c.R), int(c.G), int(c.B)}
}

// Hex returns the color as "#RRGGBB" (alpha dropped).
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Layout is a layout dimension: either a scalar number or a nested
// mapping of sub-property → number (e.g. a card's width and height).
// Sub is non-nil only in the mapping case.
type Layout struct {
	Num float64
	Sub map[string]float64
}

// Num wraps a scalar layout value.
func Num(v float64) Layout { return Layout{Num: v} }

// IsMap reports whether the value is a nested mapping.
func (l Layout) IsMap() bool { return l.Sub != nil }

// Value is a resolved theme value tagged with its kind.
type Value struct {
	Kind   Kind
	Color  Color
	Layout Layout
}

// Tree is an immutable mapping from category and key to a typed theme
// value, one section per kind. Trees are built once (compiled-in defaults
// or the loader boundary) and never mutated afterward; readers may share a
// *Tree across goroutines freely. A nil *Tree reads as empty.
type Tree struct {
	colors map[string]map[string]Color
	layout map[string]map[string]Layout
}

// Color looks up a color entry.
func (t *Tree) Color(category, key string) (Color, bool) {
	if t == nil {
		return Color{}, false
	}
	c, ok := t.colors[category][key]
	return c, ok
}

// Layout looks up a layout entry.
func (t *Tree) Layout(category, key string) (Layout, bool) {
	if t == nil {
		return Layout{}, false
	}
	l, ok := t.layout[category][key]
	return l, ok
}

// Len returns the number of entries of the given kind.
func (t *Tree) Len(kind Kind) int {
	if t == nil {
		return 0
	}
	n := 0
	if kind == KindColor {
		for _, keys := range t.colors {
			n += len(keys)
		}
		return n
	}
	for _, keys := range t.layout {
		n += len(keys)
	}
	return n
}

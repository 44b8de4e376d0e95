package theme

import (
	"sort"

	"go.uber.org/zap"
)

// fallbackColor is the universal fallback: opaque white. Returned only when
// a key is configured nowhere, including the default table.
var fallbackColor = RGB(255, 255, 255)

// Resolver answers style lookups against the store's current snapshots.
// Every accessor walks the same chain — level → global → default →
// universal fallback — and always returns a value; no error path is
// visible to the render loop. Accessors do no I/O and hold no cache, so a
// snapshot swap in the store is observed by the very next call.
type Resolver struct {
	store *Store
	log   *zap.Logger
}

// NewResolver creates a resolver over the given store. A nil logger
// disables diagnostics.
func NewResolver(store *Store, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{store: store, log: logger}
}

// Resolve walks the fallback chain for one category/key of the given kind.
func (r *Resolver) Resolve(category, key string, kind Kind) Value {
	if kind == KindColor {
		return Value{Kind: KindColor, Color: r.Color(category, key)}
	}
	return Value{Kind: KindLayout, Layout: r.Layout(category, key, Layout{})}
}

// Color resolves a color. Trees only hold shape-valid entries (the loader
// drops the rest), so a tier either has a usable value or misses.
func (r *Resolver) Color(category, key string) Color {
	if c, ok := r.store.Level().Color(category, key); ok {
		return c
	}
	if c, ok := r.store.Global().Color(category, key); ok {
		return c
	}
	if c, ok := defaults.Color(category, key); ok {
		return c
	}
	r.log.Warn("color not covered by default table, using white",
		zap.String("category", category), zap.String("key", key))
	return fallbackColor
}

// BackgroundColor resolves the background color for a screen, e.g.
// "main_menu" or "battle".
func (r *Resolver) BackgroundColor(page string) Color {
	return r.Color("background", page)
}

// TextColor resolves the color for a text role, e.g. "title" or "hint".
func (r *Resolver) TextColor(role string) Color {
	return r.Color("text", role)
}

// Layout resolves a layout value. The caller-supplied default sits between
// the default table and the universal zero: any configured tier wins over
// it, and it wins over the zero fallback.
func (r *Resolver) Layout(category, key string, def Layout) Layout {
	if l, ok := r.store.Level().Layout(category, key); ok {
		return l
	}
	if l, ok := r.store.Global().Layout(category, key); ok {
		return l
	}
	if l, ok := defaults.Layout(category, key); ok {
		return l
	}
	return def
}

// LayoutNum resolves a scalar layout value. A configured nested mapping is
// not a scalar, so it falls back to def.
func (r *Resolver) LayoutNum(category, key string, def float64) float64 {
	l := r.Layout(category, key, Num(def))
	if l.IsMap() {
		return def
	}
	return l.Num
}

// Entry is one resolved key in a theme snapshot.
type Entry struct {
	Category string
	Key      string
	Value    Value
}

// Snapshot resolves every key the default table covers through the full
// chain, in stable order. This is the effective theme as the interface
// layer would see it right now.
func (r *Resolver) Snapshot() []Entry {
	var out []Entry
	for _, category := range sortedKeys(defaults.colors) {
		for _, key := range sortedKeys(defaults.colors[category]) {
			out = append(out, Entry{
				Category: category,
				Key:      key,
				Value:    Value{Kind: KindColor, Color: r.Color(category, key)},
			})
		}
	}
	for _, category := range sortedKeys(defaults.layout) {
		for _, key := range sortedKeys(defaults.layout[category]) {
			out = append(out, Entry{
				Category: category,
				Key:      key,
				Value:    Value{Kind: KindLayout, Layout: r.Layout(category, key, Layout{})},
			})
		}
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

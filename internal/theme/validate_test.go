package theme_test

import (
	"strings"
	"testing"

	"github.com/ycheng317/theme-engine/internal/theme"
)

func TestNewTreeAcceptsRGBAndRGBA(t *testing.T) {
	tree, errs := theme.NewTree(map[string]any{
		"colors": map[string]any{
			"background": map[string]any{
				"battle": []any{40, 60, 40},
				"pause":  []any{0, 0, 0, 180},
			},
		},
	})
	if len(errs) != 0 {
		t.Fatalf("shape errors: %v", errs)
	}
	c, ok := tree.Color("background", "battle")
	if !ok || c != theme.RGB(40, 60, 40) {
		t.Fatalf("battle = %v ok=%v", c, ok)
	}
	c, ok = tree.Color("background", "pause")
	if !ok || c != theme.RGBA(0, 0, 0, 180) {
		t.Fatalf("pause = %v ok=%v", c, ok)
	}
	if got := c.Components(); len(got) != 4 || got[3] != 180 {
		t.Fatalf("pause components = %v", got)
	}
}

func TestNewTreeRejectsBadColors(t *testing.T) {
	cases := []struct {
		name string
		raw  any
	}{
		{"two components", []any{255, 255}},
		{"five components", []any{1, 2, 3, 4, 5}},
		{"channel above range", []any{0, 0, 300}},
		{"negative channel", []any{-1, 0, 0}},
		{"fractional channel", []any{0.5, 0, 0}},
		{"non numeric", []any{"red", 0, 0}},
		{"not a sequence", "white"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tree, errs := theme.NewTree(map[string]any{
				"colors": map[string]any{
					"icon": map[string]any{"gold": tc.raw},
				},
			})
			if len(errs) != 1 {
				t.Fatalf("want 1 shape error, got %v", errs)
			}
			if errs[0].Path != "colors.icon.gold" {
				t.Fatalf("error path = %q", errs[0].Path)
			}
			if _, ok := tree.Color("icon", "gold"); ok {
				t.Fatal("invalid entry must be absent from the tree")
			}
		})
	}
}

func TestNewTreeLayoutShapes(t *testing.T) {
	tree, errs := theme.NewTree(map[string]any{
		"layout": map[string]any{
			"padding": map[string]any{
				"small": 10,
				"fine":  12.5,
			},
			"button": map[string]any{
				"size": map[string]any{"width": 300, "height": 50},
				"bad":  "wide",
			},
		},
	})
	if len(errs) != 1 || errs[0].Path != "layout.button.bad" {
		t.Fatalf("shape errors = %v", errs)
	}
	if l, ok := tree.Layout("padding", "small"); !ok || l.Num != 10 {
		t.Fatalf("padding.small = %+v ok=%v", l, ok)
	}
	if l, ok := tree.Layout("padding", "fine"); !ok || l.Num != 12.5 {
		t.Fatalf("padding.fine = %+v ok=%v", l, ok)
	}
	l, ok := tree.Layout("button", "size")
	if !ok || !l.IsMap() || l.Sub["width"] != 300 || l.Sub["height"] != 50 {
		t.Fatalf("button.size = %+v ok=%v", l, ok)
	}
	if _, ok := tree.Layout("button", "bad"); ok {
		t.Fatal("invalid layout entry must be absent")
	}
}

func TestNewTreeRejectsMappingWithNonNumbers(t *testing.T) {
	_, errs := theme.NewTree(map[string]any{
		"layout": map[string]any{
			"card": map[string]any{
				"size": map[string]any{"width": 100, "shape": "round"},
			},
		},
	})
	if len(errs) != 1 || !strings.Contains(errs[0].Reason, "not a number") {
		t.Fatalf("shape errors = %v", errs)
	}
}

func TestNewTreeTolerantOfMissingSections(t *testing.T) {
	for _, doc := range []map[string]any{nil, {}, {"colors": "oops"}, {"colors": map[string]any{"icon": 3}}} {
		tree, errs := theme.NewTree(doc)
		if tree == nil || len(errs) != 0 {
			t.Fatalf("doc %v: tree=%v errs=%v", doc, tree, errs)
		}
		if n := tree.Len(theme.KindColor) + tree.Len(theme.KindLayout); n != 0 {
			t.Fatalf("doc %v: want empty tree, got %d entries", doc, n)
		}
	}
}

func TestColorHelpers(t *testing.T) {
	c := theme.RGB(255, 200, 50)
	if c.HasAlpha || c.A != 255 {
		t.Fatalf("RGB must be opaque: %+v", c)
	}
	if got := c.Components(); len(got) != 3 || got[0] != 255 || got[1] != 200 || got[2] != 50 {
		t.Fatalf("components = %v", got)
	}
	if got := c.Hex(); got != "#FFC832" {
		t.Fatalf("hex = %q", got)
	}
}

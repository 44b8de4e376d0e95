// Command preview prints the effective theme as it would resolve right
// now: one swatch line per color key and the layout table, with level
// overrides applied when a level is named. Handy while editing theme
// documents next to a running game.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/ycheng317/theme-engine/internal/config"
	"github.com/ycheng317/theme-engine/internal/theme"
)

var (
	swatchStyle = lipgloss.NewStyle().Width(6)
	keyStyle    = lipgloss.NewStyle().Width(34)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	headStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
)

func main() {
	configDir := flag.String("config", ".", "config base directory")
	campaign := flag.String("campaign", "", "campaign of the level to preview")
	level := flag.String("level", "", "level whose overrides to preview")
	flag.Parse()

	store := theme.NewStore()
	loader := config.NewLoader(*configDir, nil)
	resolver := theme.NewResolver(store, nil)

	global, err := loader.LoadGlobal()
	if err != nil {
		log.Fatal(err)
	}
	store.LoadGlobal(global)

	if *level != "" {
		lt, err := loader.LoadLevel(*campaign, *level)
		if err != nil {
			log.Fatal(err)
		}
		store.SetLevel(lt)
	}

	printSnapshot(resolver.Snapshot())
}

func printSnapshot(entries []theme.Entry) {
	lastKind := theme.Kind(-1)
	for _, e := range entries {
		if e.Value.Kind != lastKind {
			lastKind = e.Value.Kind
			fmt.Println(headStyle.Render(lastKind.String() + "s"))
		}
		name := keyStyle.Render(e.Category + "." + e.Key)
		switch e.Value.Kind {
		case theme.KindColor:
			c := e.Value.Color
			swatch := swatchStyle.Background(lipgloss.Color(c.Hex())).Render("")
			fmt.Fprintf(os.Stdout, "  %s %s %s %v\n",
				name, swatch, c.Hex(), dimStyle.Render(fmt.Sprint(c.Components())))
		case theme.KindLayout:
			l := e.Value.Layout
			if l.IsMap() {
				fmt.Fprintf(os.Stdout, "  %s %v\n", name, l.Sub)
			} else {
				fmt.Fprintf(os.Stdout, "  %s %g\n", name, l.Num)
			}
		}
	}
}

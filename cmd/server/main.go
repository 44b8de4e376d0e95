package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/ycheng317/theme-engine/internal/config"
	"github.com/ycheng317/theme-engine/internal/theme"
)

var (
	resolver *theme.Resolver
	reloader *config.Reloader
)

type colorResp struct {
	Components []int  `json:"components"`
	Hex        string `json:"hex"`
}

type layoutResp struct {
	Value any `json:"value"`
}

type themeEntry struct {
	Category string `json:"category"`
	Key      string `json:"key"`
	Kind     string `json:"kind"`
	Value    any    `json:"value"`
}

type statusResp struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func param(r *http.Request, key string) (string, bool) {
	s := r.URL.Query().Get(key)
	return s, s != ""
}

func colorJSON(c theme.Color) colorResp {
	return colorResp{Components: c.Components(), Hex: c.Hex()}
}

func layoutJSON(l theme.Layout) any {
	if l.IsMap() {
		return l.Sub
	}
	return l.Num
}

// GET /color?category=&key=
func handleColor(w http.ResponseWriter, r *http.Request) {
	category, ok := param(r, "category")
	if !ok {
		http.Error(w, "missing param category", http.StatusBadRequest)
		return
	}
	key, ok := param(r, "key")
	if !ok {
		http.Error(w, "missing param key", http.StatusBadRequest)
		return
	}
	writeJSON(w, colorJSON(resolver.Color(category, key)))
}

// GET /background?page=
func handleBackground(w http.ResponseWriter, r *http.Request) {
	page, ok := param(r, "page")
	if !ok {
		http.Error(w, "missing param page", http.StatusBadRequest)
		return
	}
	writeJSON(w, colorJSON(resolver.BackgroundColor(page)))
}

// GET /text?role=
func handleText(w http.ResponseWriter, r *http.Request) {
	role, ok := param(r, "role")
	if !ok {
		http.Error(w, "missing param role", http.StatusBadRequest)
		return
	}
	writeJSON(w, colorJSON(resolver.TextColor(role)))
}

// GET /layout?category=&key=&default=
func handleLayout(w http.ResponseWriter, r *http.Request) {
	category, ok := param(r, "category")
	if !ok {
		http.Error(w, "missing param category", http.StatusBadRequest)
		return
	}
	key, ok := param(r, "key")
	if !ok {
		http.Error(w, "missing param key", http.StatusBadRequest)
		return
	}
	def := 0.0
	if s, ok := param(r, "default"); ok {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			http.Error(w, "invalid default", http.StatusBadRequest)
			return
		}
		def = v
	}
	l := resolver.Layout(category, key, theme.Num(def))
	writeJSON(w, layoutResp{Value: layoutJSON(l)})
}

// GET /theme — the full resolved snapshot.
func handleTheme(w http.ResponseWriter, r *http.Request) {
	entries := resolver.Snapshot()
	out := make([]themeEntry, 0, len(entries))
	for _, e := range entries {
		te := themeEntry{Category: e.Category, Key: e.Key, Kind: e.Value.Kind.String()}
		if e.Value.Kind == theme.KindColor {
			te.Value = colorJSON(e.Value.Color)
		} else {
			te.Value = layoutJSON(e.Value.Layout)
		}
		out = append(out, te)
	}
	writeJSON(w, out)
}

// POST /level?campaign=&level= activates a level's overrides.
// DELETE /level clears them on level exit.
func handleLevel(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		campaign, ok := param(r, "campaign")
		if !ok {
			http.Error(w, "missing param campaign", http.StatusBadRequest)
			return
		}
		level, ok := param(r, "level")
		if !ok {
			http.Error(w, "missing param level", http.StatusBadRequest)
			return
		}
		if err := reloader.SetActiveLevel(campaign, level); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			writeJSON(w, statusResp{Err: err.Error()})
			return
		}
		writeJSON(w, statusResp{OK: true})
	case http.MethodDelete:
		reloader.ClearActiveLevel()
		writeJSON(w, statusResp{OK: true})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// POST /reload forces a global re-read, same path the watcher takes.
func handleReload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	reloader.ReloadGlobal()
	writeJSON(w, statusResp{OK: true})
}

func main() {
	configDir := flag.String("config", ".", "config base directory")
	addr := flag.String("addr", ":8080", "listen address")
	watch := flag.Duration("watch", 2*time.Second, "config poll interval, 0 disables watching")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	store := theme.NewStore()
	loader := config.NewLoader(*configDir, logger)
	resolver = theme.NewResolver(store, logger)
	reloader = config.NewReloader(loader, store, logger)
	reloader.Start(*watch)
	defer reloader.Stop()

	http.HandleFunc("/color", handleColor)
	http.HandleFunc("/background", handleBackground)
	http.HandleFunc("/text", handleText)
	http.HandleFunc("/layout", handleLayout)
	http.HandleFunc("/theme", handleTheme)
	http.HandleFunc("/level", handleLevel)
	http.HandleFunc("/reload", handleReload)

	logger.Info("listening", zap.String("addr", *addr))
	log.Fatal(http.ListenAndServe(*addr, nil))
}

package theme

// defaults is the compiled-in table: the last configured tier of the chain.
// It must cover every category/key the interface layer is documented to
// query, so that resolution stays total even with empty config sources.
// Keep it in lockstep with the accessor call sites; a gap here still
// resolves (universal fallback) but is logged as a diagnostic.
var defaults = &Tree{
	colors: map[string]map[string]Color{
		"background": {
			"main_menu": RGB(20, 20, 40),
			"campaign_select": RGB(30, 30, 50),
			"level_select": RGB(25, 30, 45),
			"character_select": RGB(30, 40, 60),
			"battle": RGB(40, 60, 40),
			"pause": RGBA(0, 0, 0, 180),
			"victory": RGB(40, 80, 40),
			"defeat": RGB(80, 40, 40),
		},
		"text": {
			"title": RGB(255, 200, 50),
			"normal": RGB(255, 255, 255),
			"subtitle": RGB(200, 200, 200),
			"hint": RGB(120, 120, 150),
			"success": RGB(100, 255, 100),
			"warning": RGB(255, 200, 50),
			"error": RGB(255, 100, 100),
			"info": RGB(150, 200, 255),
		},
		"button": {
			"normal_bg": RGB(60, 60, 90),
			"normal_border": RGB(100, 120, 160),
			"normal_text": RGB(220, 220, 220),
			"hover_bg": RGB(80, 80, 120),
			"hover_border": RGB(150, 180, 220),
			"hover_text": RGB(255, 255, 100),
			"disabled_bg": RGB(40, 40, 40),
			"disabled_border": RGB(80, 80, 80),
			"disabled_text": RGB(120, 120, 120),
		},
		"card": {
			"level_completed_bg": RGB(40, 80, 40),
			"level_completed_border": RGB(80, 160, 80),
			"level_completed_text": RGB(100, 255, 100),
			"level_unlocked_bg": RGB(60, 70, 90),
			"level_unlocked_hover_bg": RGB(80, 90, 120),
			"level_unlocked_border": RGB(100, 120, 160),
			"level_unlocked_hover_border": RGB(150, 180, 220),
			"level_unlocked_text": RGB(150, 200, 255),
			"level_locked_bg": RGB(40, 40, 40),
			"level_locked_border": RGB(80, 80, 80),
			"level_locked_text": RGB(150, 150, 150),
			"character_selected_bg": RGB(100, 150, 255),
			"character_selected_border": RGB(150, 200, 255),
			"character_hover_bg": RGB(70, 90, 120),
			"character_hover_border": RGB(150, 180, 220),
			"character_normal_bg": RGB(50, 60, 80),
			"character_normal_border": RGB(100, 120, 150),
		},
		"game_ui": {
			"grid_dark": RGB(50, 70, 50),
			"grid_light": RGB(60, 80, 60),
			"grid_border": RGB(80, 100, 80),
			"hp_bar_bg": RGB(100, 0, 0),
			"hp_bar_fg": RGB(0, 255, 0),
			"gold_text": RGB(255, 200, 50),
			"hp_text": RGB(255, 100, 100),
			"wave_text": RGB(200, 200, 200),
			"enemy_text": RGB(255, 150, 150),
		},
		"icon": {
			"gold": RGB(255, 200, 50),
			"hp": RGB(255, 100, 100),
			"wave": RGB(100, 200, 255),
			"reward": RGB(255, 200, 100),
			"exp": RGB(255, 150, 255),
		},
	},
	layout: map[string]map[string]Layout{
		"padding": {
			"small": Num(10),
			"normal": Num(20),
			"large": Num(40),
		},
		"button": {
			"width": Num(300),
			"height": Num(50),
			"spacing": Num(70),
		},
		"card": {
			"level_width": Num(360),
			"level_height": Num(140),
			"level_spacing_x": Num(20),
			"level_spacing_y": Num(20),
			"character_width": Num(150),
			"character_height": Num(200),
			"character_spacing": Num(20),
		},
	},
}

// Defaults returns the compiled-in default table. Callers must treat the
// returned tree as read-only.
func Defaults() *Tree { return defaults }

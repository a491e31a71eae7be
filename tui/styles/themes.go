package styles

import (
	"maps"
	"slices"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a Base16 palette. NewStyles samples it for every rendered
// element, so a board switches appearance wholesale when the theme
// changes.
type Theme struct {
	Name   string
	Base00 lipgloss.Color // Background
	Base01 lipgloss.Color // Lighter background
	Base02 lipgloss.Color // Selection
	Base03 lipgloss.Color // Comments / dim
	Base04 lipgloss.Color // Light foreground
	Base05 lipgloss.Color // Foreground
	Base06 lipgloss.Color // Light foreground
	Base07 lipgloss.Color // Light background
	Base08 lipgloss.Color // Red
	Base09 lipgloss.Color // Orange
	Base0A lipgloss.Color // Yellow
	Base0B lipgloss.Color // Green
	Base0C lipgloss.Color // Cyan
	Base0D lipgloss.Color // Blue
	Base0E lipgloss.Color // Magenta
	Base0F lipgloss.Color // Brown
}

// DefaultTheme is used when the configured theme slug is unknown.
var DefaultTheme = Themes["solarized-dark"]

// GetThemeByName returns a theme by its slug, or nil if not found.
func GetThemeByName(name string) *Theme {
	t, ok := Themes[name]
	if !ok {
		return nil
	}
	return &t
}

// ListThemes returns theme slugs in sorted order.
func ListThemes() []string {
	return sortedSlugs()
}

var sortedSlugs = sync.OnceValue(func() []string {
	return slices.Sorted(maps.Keys(Themes))
})

// Themes maps theme slugs to their Base16 palettes.
var Themes = map[string]Theme{
	"solarized-dark": {
		Name:   "Solarized Dark",
		Base00: "#002b36", Base01: "#073642", Base02: "#586e75", Base03: "#657b83",
		Base04: "#839496", Base05: "#93a1a1", Base06: "#eee8d5", Base07: "#fdf6e3",
		Base08: "#dc322f", Base09: "#cb4b16", Base0A: "#b58900", Base0B: "#859900",
		Base0C: "#2aa198", Base0D: "#268bd2", Base0E: "#6c71c4", Base0F: "#d33682",
	},
	"solarized-light": {
		Name:   "Solarized Light",
		Base00: "#fdf6e3", Base01: "#eee8d5", Base02: "#93a1a1", Base03: "#839496",
		Base04: "#657b83", Base05: "#586e75", Base06: "#073642", Base07: "#002b36",
		Base08: "#dc322f", Base09: "#cb4b16", Base0A: "#b58900", Base0B: "#859900",
		Base0C: "#2aa198", Base0D: "#268bd2", Base0E: "#6c71c4", Base0F: "#d33682",
	},
	"gruvbox-dark": {
		Name:   "Gruvbox Dark",
		Base00: "#282828", Base01: "#3c3836", Base02: "#504945", Base03: "#665c54",
		Base04: "#bdae93", Base05: "#d5c4a1", Base06: "#ebdbb2", Base07: "#fbf1c7",
		Base08: "#fb4934", Base09: "#fe8019", Base0A: "#fabd2f", Base0B: "#b8bb26",
		Base0C: "#8ec07c", Base0D: "#83a598", Base0E: "#d3869b", Base0F: "#d65d0e",
	},
	"nord": {
		Name:   "Nord",
		Base00: "#2e3440", Base01: "#3b4252", Base02: "#434c5e", Base03: "#4c566a",
		Base04: "#d8dee9", Base05: "#e5e9f0", Base06: "#eceff4", Base07: "#8fbcbb",
		Base08: "#bf616a", Base09: "#d08770", Base0A: "#ebcb8b", Base0B: "#a3be8c",
		Base0C: "#88c0d0", Base0D: "#81a1c1", Base0E: "#b48ead", Base0F: "#5e81ac",
	},
	"dracula": {
		Name:   "Dracula",
		Base00: "#282936", Base01: "#3a3c4e", Base02: "#4d4f68", Base03: "#626483",
		Base04: "#62d6e8", Base05: "#e9e9f4", Base06: "#f1f2f8", Base07: "#f7f7fb",
		Base08: "#ea51b2", Base09: "#b45bcf", Base0A: "#ebff87", Base0B: "#00f769",
		Base0C: "#a1efe4", Base0D: "#62d6e8", Base0E: "#b45bcf", Base0F: "#00f769",
	},
	"tokyo-night": {
		Name:   "Tokyo Night",
		Base00: "#1a1b26", Base01: "#16161e", Base02: "#2f3549", Base03: "#444b6a",
		Base04: "#787c99", Base05: "#a9b1d6", Base06: "#cbccd1", Base07: "#d5d6db",
		Base08: "#c0caf5", Base09: "#a9b1d6", Base0A: "#0db9d7", Base0B: "#9ece6a",
		Base0C: "#b4f9f8", Base0D: "#2ac3de", Base0E: "#bb9af7", Base0F: "#f7768e",
	},
	"catppuccin-mocha": {
		Name:   "Catppuccin Mocha",
		Base00: "#1e1e2e", Base01: "#181825", Base02: "#313244", Base03: "#45475a",
		Base04: "#585b70", Base05: "#cdd6f4", Base06: "#f5e0dc", Base07: "#b4befe",
		Base08: "#f38ba8", Base09: "#fab387", Base0A: "#f9e2af", Base0B: "#a6e3a1",
		Base0C: "#94e2d5", Base0D: "#89b4fa", Base0E: "#cba6f7", Base0F: "#f2cdcd",
	},
	"onedark": {
		Name:   "One Dark",
		Base00: "#282c34", Base01: "#353b45", Base02: "#3e4451", Base03: "#545862",
		Base04: "#565c64", Base05: "#abb2bf", Base06: "#b6bdca", Base07: "#c8ccd4",
		Base08: "#e06c75", Base09: "#d19a66", Base0A: "#e5c07b", Base0B: "#98c379",
		Base0C: "#56b6c2", Base0D: "#61afef", Base0E: "#c678dd", Base0F: "#be5046",
	},
}

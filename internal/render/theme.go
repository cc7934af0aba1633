package render

import (
	"sort"

	"github.com/gdamore/tcell/v2"
)

// Theme holds the glyphs and styles used to draw the map.
// DimWall and DimFloor draw remembered cells that are not lit this frame.
type Theme struct {
	Name      string
	CellWidth int // terminal columns per map cell

	Observer string
	Wall     string
	Floor    string
	Unseen   string
	DimWall  string
	DimFloor string

	ObserverStyle tcell.Style
	LitStyle      tcell.Style
	DimStyle      tcell.Style
}

// Themes lists the built-in themes by name.
var Themes = map[string]Theme{
	"ascii": {
		Name:          "ascii",
		CellWidth:     1,
		Observer:      "@",
		Wall:          "#",
		Floor:         ".",
		Unseen:        " ",
		DimWall:       "#",
		DimFloor:      ".",
		ObserverStyle: tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		LitStyle:      tcell.StyleDefault.Foreground(tcell.ColorWhite),
		DimStyle:      tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray),
	},
	// Emoji are drawn by the terminal in their own colors, so dim cells use
	// distinct glyphs instead of a foreground tint.
	"emoji": {
		Name:          "emoji",
		CellWidth:     2,
		Observer:      "🧙",
		Wall:          "🏠",
		Floor:         "🟫",
		Unseen:        " ",
		DimWall:       "🌑",
		DimFloor:      "🔲",
		ObserverStyle: tcell.StyleDefault,
		LitStyle:      tcell.StyleDefault,
		DimStyle:      tcell.StyleDefault,
	},
}

// DefaultTheme is the theme used when none is configured.
const DefaultTheme = "ascii"

// ThemeByName looks up a built-in theme.
func ThemeByName(name string) (Theme, bool) {
	t, ok := Themes[name]
	return t, ok
}

// ThemeNames returns the built-in theme names in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Package render draws the observer's view onto a tcell screen.
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"shadowcast/internal/gamemap"
	"shadowcast/internal/system"
)

// HUDRows is the number of screen rows reserved below the map.
const HUDRows = 4

// Frame is everything one redraw needs.
type Frame struct {
	Grid     *gamemap.Grid
	Vis      *system.Visibility // consumed: every entry is cleared by DrawFrame
	Seen     *system.Visibility // cells ever lit; nil disables the remembered map
	Observer gamemap.Point
}

// Renderer draws the map onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	theme  Theme
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen, theme Theme) *Renderer {
	r := &Renderer{screen: screen, theme: theme}
	r.Resize()
	return r
}

// Resize fits the viewport to the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera = NewCamera(w, max(h-HUDRows, 0), r.theme.CellWidth)
}

// DrawFrame paints the map and returns how many cells were lit.
//
// Per cell: the observer's cell gets the observer glyph, a lit cell its
// terrain glyph, a remembered cell its dim glyph, anything else the unseen
// glyph. Every cell of f.Vis is cleared on the way, including cells that are
// scrolled off screen, so the set is empty for the next Compute.
func (r *Renderer) DrawFrame(f Frame) int {
	r.screen.Clear()
	r.camera.Follow(f.Observer.X, f.Observer.Y, f.Grid.Width, f.Grid.Height)

	lit := 0
	for y := 0; y < f.Grid.Height; y++ {
		for x := 0; x < f.Grid.Width; x++ {
			visible := f.Vis.Take(x, y)
			if visible {
				lit++
				if f.Seen != nil {
					f.Seen.Mark(x, y)
				}
			}

			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			glyph, style := r.cellGlyph(f, x, y, visible)
			r.putGlyph(sx, sy, glyph, style)
		}
	}
	return lit
}

func (r *Renderer) cellGlyph(f Frame, x, y int, visible bool) (string, tcell.Style) {
	th := r.theme
	switch {
	case x == f.Observer.X && y == f.Observer.Y:
		return th.Observer, th.ObserverStyle
	case visible:
		if f.Grid.IsBlocked(x, y) {
			return th.Wall, th.LitStyle
		}
		return th.Floor, th.LitStyle
	case f.Seen != nil && f.Seen.Visible(x, y):
		if f.Grid.IsBlocked(x, y) {
			return th.DimWall, th.DimStyle
		}
		return th.DimFloor, th.DimStyle
	}
	return th.Unseen, tcell.StyleDefault
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen
// position (x, y), padding with spaces up to the theme's cell width.
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	r.screen.SetContent(x, y, runes[0], runes[1:], style)
	for col := runewidth.StringWidth(glyph); col < r.theme.CellWidth; col++ {
		r.screen.SetContent(x+col, y, ' ', nil, style)
	}
}

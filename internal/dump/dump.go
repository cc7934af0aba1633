// Package dump prints a single field-of-view frame as plain or coloured text.
package dump

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"shadowcast/internal/gamemap"
	"shadowcast/internal/render"
	"shadowcast/internal/system"
)

var (
	colorObserver = color.Style{color.FgYellow, color.OpBold}
	colorWall     = color.Style{color.FgWhite, color.OpBold}
	colorFloor    = color.Style{color.FgGray}
)

// Options controls how a frame is written.
type Options struct {
	Color bool // wrap glyphs in ANSI colour codes
	Width int  // maximum columns; 0 prints the whole map
}

// Write prints the frame seen from observer, one text line per map row.
// Lit cells show their terrain glyph, the observer '@', everything else a
// space. Like the screen renderer it consumes vis: every entry is cleared.
func Write(w io.Writer, grid *gamemap.Grid, vis *system.Visibility, observer gamemap.Point, opts Options) error {
	width, height := grid.Size()

	// Narrow terminals get a window that follows the observer.
	cols := width
	if opts.Width > 0 && opts.Width < width {
		cols = opts.Width
	}
	cam := render.NewCamera(cols, height, 1)
	cam.Follow(observer.X, observer.Y, width, height)

	bw := bufio.NewWriter(w)
	var line strings.Builder
	for y := 0; y < height; y++ {
		line.Reset()
		for x := 0; x < width; x++ {
			lit := vis.Take(x, y)
			if _, _, onScreen := cam.WorldToScreen(x, y); !onScreen {
				continue
			}
			line.WriteString(cellText(grid, x, y, lit, observer, opts.Color))
		}
		line.WriteByte('\n')
		if _, err := bw.WriteString(line.String()); err != nil {
			return fmt.Errorf("write row %d: %w", y, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush frame: %w", err)
	}
	return nil
}

func cellText(grid *gamemap.Grid, x, y int, lit bool, observer gamemap.Point, colored bool) string {
	var (
		glyph rune
		style color.Style
	)
	switch {
	case x == observer.X && y == observer.Y:
		glyph, style = gamemap.GlyphObserver, colorObserver
	case !lit:
		return " "
	case grid.IsBlocked(x, y):
		glyph, style = gamemap.GlyphWall, colorWall
	default:
		glyph, style = gamemap.GlyphFloor, colorFloor
	}
	if !colored {
		return string(glyph)
	}
	return style.Sprint(string(glyph))
}

package gamemap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"shadowcast/assets"
)

var (
	ErrEmptyLayout  = errors.New("layout has no rows")
	ErrRaggedLayout = errors.New("layout rows differ in length")
	ErrUnknownGlyph = errors.New("unknown layout glyph")
	ErrNoOpenCell   = errors.New("layout has no open cell")
)

// Parse builds a Grid from text rows. '#' is blocked, '.' is open and '@' is
// open and marks the observer start. Without '@' the start is the first open
// cell in row-major order.
func Parse(rows []string) (*Grid, Point, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, Point{}, ErrEmptyLayout
	}
	width := len([]rune(rows[0]))
	g := New(width, len(rows))

	start := Point{X: -1, Y: -1}
	first := Point{X: -1, Y: -1}
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, Point{}, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(runes), width, ErrRaggedLayout)
		}
		for x, r := range runes {
			switch r {
			case GlyphWall:
				continue
			case GlyphObserver:
				start = Point{X: x, Y: y}
			case GlyphFloor:
			default:
				return nil, Point{}, fmt.Errorf("%q at (%d,%d): %w", r, x, y, ErrUnknownGlyph)
			}
			g.Set(x, y, Open)
			if first.X < 0 {
				first = Point{X: x, Y: y}
			}
		}
	}

	if first.X < 0 {
		return nil, Point{}, ErrNoOpenCell
	}
	if start.X < 0 {
		start = first
	}
	return g, start, nil
}

// Load reads a layout file, one row per line. Trailing blank lines and
// carriage returns are ignored.
func Load(r io.Reader) (*Grid, Point, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, Point{}, fmt.Errorf("read layout: %w", err)
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	return Parse(rows)
}

// Default returns the built-in map and its observer start.
func Default() (*Grid, Point) {
	g, start, err := Parse(assets.DefaultLayout)
	if err != nil {
		panic(fmt.Sprintf("built-in layout: %v", err))
	}
	return g, start
}

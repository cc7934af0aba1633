// Package gamemap holds the static terrain grid the observer walks on.
package gamemap

// Rect is an axis-aligned rectangle used for rooms.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Grid is a fixed-size, row-major field of cells.
// Once handed to a game session it is never modified.
type Grid struct {
	Width, Height int
	cells         []Cell
}

// New creates a Grid filled with blocked cells.
func New(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}
}

// Size returns the grid dimensions.
func (g *Grid) Size() (int, int) {
	return g.Width, g.Height
}

// InBounds reports whether (x, y) is within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the cell at (x, y). Out-of-bounds coordinates read as Blocked.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Blocked
	}
	return g.cells[y*g.Width+x]
}

// Set replaces the cell at (x, y). Only used while building a grid.
func (g *Grid) Set(x, y int, c Cell) {
	g.cells[y*g.Width+x] = c
}

// IsBlocked reports whether (x, y) stops sight and movement.
// The area outside the grid counts as blocked so the map edge behaves
// exactly like a wall.
func (g *Grid) IsBlocked(x, y int) bool {
	return g.At(x, y) == Blocked
}

// Glyph returns the layout character drawn for (x, y).
func (g *Grid) Glyph(x, y int) rune {
	return g.At(x, y).Glyph()
}

// OpenCells returns the number of open cells.
func (g *Grid) OpenCells() int {
	n := 0
	for _, c := range g.cells {
		if c == Open {
			n++
		}
	}
	return n
}

// Clone returns an independent copy, used to derive variant maps in tests and
// generators without touching a grid that is already in use.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{Width: g.Width, Height: g.Height, cells: cells}
}

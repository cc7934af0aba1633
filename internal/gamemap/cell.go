package gamemap

// Cell classifies one map square.
type Cell uint8

const (
	Blocked Cell = iota
	Open
)

// Layout glyphs understood by Parse.
const (
	GlyphWall     = '#'
	GlyphFloor    = '.'
	GlyphObserver = '@'
)

// Glyph returns the layout character for c.
func (c Cell) Glyph() rune {
	if c == Open {
		return GlyphFloor
	}
	return GlyphWall
}

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Add returns p shifted by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

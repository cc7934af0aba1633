package render

// Camera translates between map coordinates and screen coordinates.
// Each map cell is CellWidth terminal columns wide.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
	CellWidth  int
}

// NewCamera creates a camera over a viewW×viewH terminal area.
func NewCamera(viewW, viewH, cellWidth int) *Camera {
	return &Camera{ViewWidth: viewW, ViewHeight: viewH, CellWidth: max(cellWidth, 1)}
}

// Follow keeps (cx, cy) in view on a mapW×mapH map. An axis that fits on
// screen is pinned to the map's edge; a larger axis centers on the target
// without scrolling past the map.
func (c *Camera) Follow(cx, cy, mapW, mapH int) {
	c.OffsetX = follow(cx, mapW, c.ViewWidth/c.CellWidth)
	c.OffsetY = follow(cy, mapH, c.ViewHeight)
}

func follow(target, mapSize, viewSize int) int {
	if viewSize <= 0 || mapSize <= viewSize {
		return 0
	}
	off := target - viewSize/2
	return min(max(off, 0), mapSize-viewSize)
}

// WorldToScreen converts map (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = (wx - c.OffsetX) * c.CellWidth
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx+c.CellWidth <= c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

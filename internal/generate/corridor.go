package generate

import "shadowcast/internal/gamemap"

// carveCorridor opens a tunnel between two room centers using cfg's style.
func carveCorridor(g *gamemap.Grid, x1, y1, x2, y2 int, cfg *Config) {
	a := gamemap.Point{X: x1, Y: y1}
	b := gamemap.Point{X: x2, Y: y2}

	switch cfg.CorridorStyle {
	case CorridorZShaped:
		midY := (y1 + y2) / 2
		carvePath(g, a, gamemap.Point{X: x1, Y: midY}, gamemap.Point{X: x2, Y: midY}, b)
	case CorridorStraight:
		carvePath(g, a, gamemap.Point{X: x2, Y: y1}, b)
	default:
		// L-shaped, bending at one of the two free corners.
		bend := gamemap.Point{X: x2, Y: y1}
		if cfg.Rand.Intn(2) == 1 {
			bend = gamemap.Point{X: x1, Y: y2}
		}
		carvePath(g, a, bend, b)
	}
}

// carvePath opens the axis-aligned segments joining consecutive points.
func carvePath(g *gamemap.Grid, pts ...gamemap.Point) {
	for i := 1; i < len(pts); i++ {
		carveSegment(g, pts[i-1], pts[i])
	}
}

// carveSegment opens every cell on a horizontal or vertical segment,
// endpoints included. Cells outside the grid are skipped.
func carveSegment(g *gamemap.Grid, from, to gamemap.Point) {
	x1, x2 := min(from.X, to.X), max(from.X, to.X)
	y1, y2 := min(from.Y, to.Y), max(from.Y, to.Y)
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			if g.InBounds(x, y) {
				g.Set(x, y, gamemap.Open)
			}
		}
	}
}

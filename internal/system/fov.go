package system

import "github.com/zyedidia/generic/stack"

// Grid is the terrain the field of view is cast over.
type Grid interface {
	Size() (width, height int)
	// IsBlocked must report true for coordinates outside the grid.
	IsBlocked(x, y int) bool
}

// DefaultFudge is the half-cell inset used for cell edge slopes. At 0.5 the
// cell edges touch, so a cell whose corner lies exactly on the edge of the
// wedge is lit. 0.495 narrows every cell slightly and leaves those cells dark.
const DefaultFudge = 0.5

// octant maps a (col, row) sweep position to a world offset:
//
//	worldX = cx + col*xx + row*xy
//	worldY = cy + col*yx + row*yy
//
// row counts away from the observer. col runs from one step past the diagonal
// back to the axis; that first cell belongs to the neighbouring octant and is
// only lit at fudge 0.5, while the wedge still starts at slope 1.
type octant struct {
	xx, xy, yx, yy int
}

var octants = [8]octant{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// scan is one pending row sweep: the first row to visit and the slope wedge
// [end, start] still open in that octant.
type scan struct {
	row        int
	start, end float64
	oct        octant
}

// FOV computes visibility with recursive shadowcasting.
type FOV struct {
	grid     Grid
	radius   int
	fudge    float64
	worklist bool
}

// FOVOption configures an FOV.
type FOVOption func(*FOV)

// WithRadius limits sight to cells strictly closer than r. Values <= 0 keep
// the default of max(width, height).
func WithRadius(r int) FOVOption {
	return func(f *FOV) {
		if r > 0 {
			f.radius = r
		}
	}
}

// WithFudge sets the cell edge inset. Values outside (0, 0.5] are ignored.
func WithFudge(k float64) FOVOption {
	return func(f *FOV) {
		if k > 0 && k <= 0.5 {
			f.fudge = k
		}
	}
}

// WithWorklist runs child scans from an explicit stack instead of recursing.
// The lit cells are identical.
func WithWorklist() FOVOption {
	return func(f *FOV) { f.worklist = true }
}

// NewFOV creates a field-of-view engine over grid.
func NewFOV(grid Grid, opts ...FOVOption) *FOV {
	w, h := grid.Size()
	f := &FOV{grid: grid, radius: max(w, h), fudge: DefaultFudge}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Radius returns the sight radius.
func (f *FOV) Radius() int { return f.radius }

// Fudge returns the cell edge inset.
func (f *FOV) Fudge() float64 { return f.fudge }

// Visibility allocates a set and computes the view from (cx, cy) into it.
func (f *FOV) Visibility(cx, cy int) *Visibility {
	w, h := f.grid.Size()
	vis := NewVisibility(w, h)
	f.Compute(vis, cx, cy)
	return vis
}

// Compute lights every cell visible from (cx, cy). vis must cover the grid
// and be empty; Compute never clears entries.
func (f *FOV) Compute(vis *Visibility, cx, cy int) {
	// The observer always sees its own cell.
	vis.Mark(cx, cy)

	if f.worklist {
		pending := stack.New[scan]()
		for _, oct := range octants {
			pending.Push(scan{row: 1, start: 1.0, end: 0.0, oct: oct})
		}
		for pending.Size() > 0 {
			f.castLight(vis, cx, cy, pending.Pop(), pending.Push)
		}
		return
	}

	var cast func(s scan)
	cast = func(s scan) {
		f.castLight(vis, cx, cy, s, cast)
	}
	for _, oct := range octants {
		cast(scan{row: 1, start: 1.0, end: 0.0, oct: oct})
	}
}

// castLight sweeps the rows of one wedge and hands every sub-wedge that
// continues past an obstruction to child.
//
// For a cell at (col, row):
//   - lSlope = (col + k) / (row - k) is its leading edge (toward the diagonal)
//   - rSlope = (col - k) / (row + k) is its trailing edge (toward the axis)
//
// A cell is inside the wedge while rSlope <= start and lSlope >= end.
func (f *FOV) castLight(vis *Visibility, cx, cy int, s scan, child func(scan)) {
	if s.start < s.end {
		return
	}
	k := f.fudge
	radiusSq := f.radius * f.radius
	start := s.start
	newStart := start

	for row := s.row; row <= f.radius; row++ {
		blocked := false

		for col := row + 1; col >= 0; col-- {
			lSlope := (float64(col) + k) / (float64(row) - k)
			rSlope := (float64(col) - k) / (float64(row) + k)

			if start < rSlope {
				continue // not yet inside the wedge
			}
			if s.end > lSlope {
				break // past the wedge; the rest of the row is too
			}

			wx := cx + col*s.oct.xx + row*s.oct.xy
			wy := cy + col*s.oct.yx + row*s.oct.yy

			if col*col+row*row < radiusSq {
				vis.Mark(wx, wy)
			}

			opaque := f.grid.IsBlocked(wx, wy)

			if blocked {
				if opaque {
					newStart = rSlope
					continue
				}
				// Wall run ended: resume with the narrowed wedge.
				blocked = false
				start = newStart
			} else if opaque && row < f.radius {
				blocked = true
				child(scan{row: row + 1, start: start, end: lSlope, oct: s.oct})
				newStart = rSlope
			}
		}
		if blocked {
			break // the row ended in shadow; nothing further is lit
		}
	}
}

package system

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shadowcast/internal/gamemap"
)

// openGrid creates a fully-open (all floor) grid for FOV tests.
func openGrid(width, height int) *gamemap.Grid {
	g := gamemap.New(width, height)
	for y := range height {
		for x := range width {
			g.Set(x, y, gamemap.Open)
		}
	}
	return g
}

func TestFOVOriginAlwaysVisible(t *testing.T) {
	g := openGrid(20, 20)
	vis := NewFOV(g, WithRadius(5)).Visibility(5, 5)

	if !vis.Visible(5, 5) {
		t.Error("observer's own cell must always be visible")
	}
}

func TestFOVObserverInsideWall(t *testing.T) {
	g := gamemap.New(5, 5) // all walls
	vis := NewFOV(g).Visibility(2, 2)

	assert.True(t, vis.Visible(2, 2))
	// The neighbouring walls and the knight's-move walls are lit: each
	// octant's first row reaches one cell past its diagonal.
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			dx, dy := x-2, y-2
			d := dx*dx + dy*dy
			want := d <= 2 || d == 5
			assert.Equal(t, want, vis.Visible(x, y), "(%d,%d)", x, y)
		}
	}
	assert.Equal(t, 17, vis.Count())

	tight := NewFOV(g, WithFudge(0.495)).Visibility(2, 2)
	assert.Equal(t, 9, tight.Count(), "narrower cells stop at the first ring")
}

func TestFOVNearbyTilesVisible(t *testing.T) {
	// Tiles at cardinal distance 3 on a fully open map must be lit with radius=5.
	// The FOV radius condition is: dx²+dy² < radius² → 9 < 25 → true.
	g := openGrid(20, 20)
	vis := NewFOV(g, WithRadius(5)).Visibility(10, 10)

	for _, pos := range [][2]int{{10, 7}, {10, 13}, {7, 10}, {13, 10}} {
		x, y := pos[0], pos[1]
		if !vis.Visible(x, y) {
			t.Errorf("tile (%d,%d) at distance 3 should be visible (radius=5)", x, y)
		}
	}
}

func TestFOVRadiusLimitsVisibility(t *testing.T) {
	// With radius=4, tiles at distance 5 are never reached.
	g := openGrid(20, 20)
	vis := NewFOV(g, WithRadius(4)).Visibility(10, 10)

	for _, pos := range [][2]int{{10, 15}, {10, 5}, {15, 10}, {5, 10}} {
		x, y := pos[0], pos[1]
		if vis.Visible(x, y) {
			t.Errorf("tile (%d,%d) at distance 5 should not be visible with radius=4", x, y)
		}
	}
}

func TestFOVRadiusCutoffIsCircular(t *testing.T) {
	g := openGrid(20, 20)
	const cx, cy, r = 10, 10, 4
	vis := NewFOV(g, WithRadius(r)).Visibility(cx, cy)

	for y := range 20 {
		for x := range 20 {
			dx, dy := x-cx, y-cy
			want := dx*dx+dy*dy < r*r
			assert.Equal(t, want, vis.Visible(x, y), "(%d,%d)", x, y)
		}
	}
}

func TestFOVOpenMapFullCoverage(t *testing.T) {
	sizes := [][2]int{{5, 5}, {7, 4}, {9, 3}, {1, 1}}
	for _, fudge := range []float64{0.5, 0.495} {
		for _, sz := range sizes {
			w, h := sz[0], sz[1]
			g := openGrid(w, h)
			fov := NewFOV(g, WithFudge(fudge))
			r := fov.Radius()
			require.Equal(t, max(w, h), r)

			for cy := range h {
				for cx := range w {
					vis := fov.Visibility(cx, cy)
					for y := range h {
						for x := range w {
							dx, dy := x-cx, y-cy
							want := dx*dx+dy*dy < r*r
							assert.Equal(t, want, vis.Visible(x, y),
								"k=%v %dx%d observer (%d,%d) cell (%d,%d)", fudge, w, h, cx, cy, x, y)
						}
					}
				}
			}
		}
	}
}

func TestFOVCardinalWallShadow(t *testing.T) {
	g := openGrid(5, 5)
	fov := NewFOV(g)
	require.GreaterOrEqual(t, fov.Radius(), 5)

	vis := fov.Visibility(2, 2)
	assert.Equal(t, 25, vis.Count(), "open 5x5 map is fully visible")

	g.Set(2, 1, gamemap.Blocked)
	vis = NewFOV(g).Visibility(2, 2)

	assert.True(t, vis.Visible(2, 1), "the wall itself is lit")
	assert.False(t, vis.Visible(2, 0), "cell directly behind the wall is shadowed")
	assert.True(t, vis.Visible(1, 0), "diagonal line west of the wall is clear")
	assert.True(t, vis.Visible(3, 0), "diagonal line east of the wall is clear")
}

func TestFOVDiagonalWallShadow(t *testing.T) {
	g := openGrid(5, 5)
	g.Set(3, 3, gamemap.Blocked)
	vis := NewFOV(g).Visibility(2, 2)

	assert.True(t, vis.Visible(3, 3), "the wall itself is lit")
	assert.False(t, vis.Visible(4, 4), "cell behind the diagonal wall is shadowed")
	assert.True(t, vis.Visible(3, 4))
	assert.True(t, vis.Visible(4, 3))
}

func TestFOVWallBlocksLight(t *testing.T) {
	// A wall at (10,8) blocks the tile at (10,7) from being lit when the
	// observer is at (10,10) with radius 8.
	g := openGrid(20, 20)
	g.Set(10, 8, gamemap.Blocked)
	vis := NewFOV(g, WithRadius(8)).Visibility(10, 10)

	if !vis.Visible(10, 8) {
		t.Error("the wall tile at (10,8) should be visible")
	}
	if vis.Visible(10, 7) {
		t.Error("tile (10,7) behind the wall at (10,8) should not be visible")
	}
	if !vis.Visible(9, 7) || !vis.Visible(11, 7) {
		t.Error("tiles beside the shadow should stay visible")
	}
}

func TestFOVAddingWallsOnlyShrinks(t *testing.T) {
	base, start := gamemap.Default()
	observers := []gamemap.Point{start, {X: 5, Y: 14}, {X: 40, Y: 9}}

	for _, obs := range observers {
		require.False(t, base.IsBlocked(obs.X, obs.Y))
		before := NewFOV(base).Visibility(obs.X, obs.Y)

		for y := range base.Height {
			for x := range base.Width {
				if base.IsBlocked(x, y) || (x == obs.X && y == obs.Y) {
					continue
				}
				walled := base.Clone()
				walled.Set(x, y, gamemap.Blocked)
				after := NewFOV(walled).Visibility(obs.X, obs.Y)

				for cy := range base.Height {
					for cx := range base.Width {
						if after.Visible(cx, cy) && !before.Visible(cx, cy) {
							t.Fatalf("observer %+v: wall at (%d,%d) revealed (%d,%d)", obs, x, y, cx, cy)
						}
					}
				}
			}
		}
	}
}

func TestFOVRepeatedComputeIsStable(t *testing.T) {
	g, start := gamemap.Default()
	fov := NewFOV(g)

	first := fov.Visibility(start.X, start.Y)
	second := fov.Visibility(start.X, start.Y)
	assert.True(t, first.Equal(second))

	reused := NewVisibility(g.Size())
	fov.Compute(reused, start.X, start.Y)
	reused.Reset()
	fov.Compute(reused, start.X, start.Y)
	assert.True(t, first.Equal(reused))
}

func TestFOVWorklistMatchesRecursion(t *testing.T) {
	g, _ := gamemap.Default()
	for _, fudge := range []float64{0.5, 0.495} {
		t.Run(fmt.Sprintf("k=%v", fudge), func(t *testing.T) {
			recursive := NewFOV(g, WithFudge(fudge))
			worklist := NewFOV(g, WithFudge(fudge), WithWorklist())
			for y := range g.Height {
				for x := range g.Width {
					if g.IsBlocked(x, y) {
						continue
					}
					want := recursive.Visibility(x, y)
					got := worklist.Visibility(x, y)
					require.True(t, want.Equal(got), "observer (%d,%d)", x, y)
				}
			}
		})
	}
}

func TestFOVOptionsIgnoreInvalidValues(t *testing.T) {
	g := openGrid(6, 4)
	fov := NewFOV(g, WithRadius(0), WithFudge(0.7))
	assert.Equal(t, 6, fov.Radius())
	assert.Equal(t, DefaultFudge, fov.Fudge())

	fov = NewFOV(g, WithRadius(3), WithFudge(0.495))
	assert.Equal(t, 3, fov.Radius())
	assert.Equal(t, 0.495, fov.Fudge())
}

func TestFOVTakeLeavesSetEmpty(t *testing.T) {
	g, start := gamemap.Default()
	vis := NewFOV(g).Visibility(start.X, start.Y)
	require.False(t, vis.Empty())

	w, h := vis.Size()
	for y := range h {
		for x := range w {
			vis.Take(x, y)
		}
	}
	assert.True(t, vis.Empty())
}

// referenceScan computes the same field of view in signed coordinates: each
// octant's rows run dy = -1, -2, ... and columns dx = dy-1 ... 0, with the
// cell edge slopes taken from the signed offsets. It is kept deliberately
// literal so the engine can be checked against it.
func referenceScan(g *gamemap.Grid, cx, cy int, k float64) *Visibility {
	w, h := g.Size()
	radius := max(w, h)
	vis := NewVisibility(w, h)
	vis.Mark(cx, cy)

	var cast func(row int, start, end float64, xx, xy, yx, yy int)
	cast = func(row int, start, end float64, xx, xy, yx, yy int) {
		if start < end {
			return
		}
		newStart := 0.0
		for dy := row; dy >= -radius; dy-- {
			blocked := false
			for dx := dy - 1; dx <= 0; dx++ {
				rs := (float64(dx) + k) / (float64(dy) - k)
				if start < rs {
					continue
				}
				ls := (float64(dx) - k) / (float64(dy) + k)
				if ls < end {
					break
				}
				x := cx + dx*xx + dy*xy
				y := cy + dx*yx + dy*yy
				if dx*dx+dy*dy < radius*radius && g.InBounds(x, y) {
					vis.Mark(x, y)
				}
				if blocked {
					if g.IsBlocked(x, y) {
						newStart = rs
						continue
					}
					blocked = false
					start = newStart
				} else if g.IsBlocked(x, y) && -radius < dy {
					blocked = true
					cast(dy-1, start, ls, xx, xy, yx, yy)
					newStart = rs
				}
			}
			if blocked {
				break
			}
		}
	}
	for _, o := range [][4]int{
		{1, 0, 0, 1}, {1, 0, 0, -1}, {-1, 0, 0, 1}, {-1, 0, 0, -1},
		{0, 1, 1, 0}, {0, 1, -1, 0}, {0, -1, 1, 0}, {0, -1, -1, 0},
	} {
		cast(-1, 1.0, 0.0, o[0], o[1], o[2], o[3])
	}
	return vis
}

func randomGrid(rng *rand.Rand, w, h int) *gamemap.Grid {
	g := openGrid(w, h)
	for y := range h {
		for x := range w {
			if rng.Float64() < 0.3 {
				g.Set(x, y, gamemap.Blocked)
			}
		}
	}
	return g
}

func TestFOVMatchesReferenceScan(t *testing.T) {
	def, _ := gamemap.Default()
	grids := []*gamemap.Grid{def}
	rng := rand.New(rand.NewSource(3))
	for range 20 {
		grids = append(grids, randomGrid(rng, 3+rng.Intn(18), 3+rng.Intn(10)))
	}

	for _, fudge := range []float64{0.5, 0.495} {
		t.Run(fmt.Sprintf("k=%v", fudge), func(t *testing.T) {
			for i, g := range grids {
				fov := NewFOV(g, WithFudge(fudge))
				for y := range g.Height {
					for x := range g.Width {
						if g.IsBlocked(x, y) {
							continue
						}
						want := referenceScan(g, x, y, fudge)
						got := fov.Visibility(x, y)
						require.True(t, want.Equal(got), "grid %d observer (%d,%d)", i, x, y)
					}
				}
			}
		})
	}
}

func TestFOVFudgeDecidesEdgeCells(t *testing.T) {
	// From the default start, the cells touched only on the wedge edge are
	// lit at 0.5 and dark at 0.495.
	g, start := gamemap.Default()
	wide := NewFOV(g).Visibility(start.X, start.Y)
	tight := NewFOV(g, WithFudge(0.495)).Visibility(start.X, start.Y)

	assert.Equal(t, 353, wide.Count())
	assert.Equal(t, 351, tight.Count())
	for y := range g.Height {
		for x := range g.Width {
			if tight.Visible(x, y) {
				assert.True(t, wide.Visible(x, y), "(%d,%d) lit only by the narrower cells", x, y)
			}
		}
	}
}

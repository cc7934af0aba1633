package system

import "shadowcast/internal/gamemap"

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall or out-of-bounds
)

func (r MoveResult) String() string {
	if r == MoveOK {
		return "ok"
	}
	return "blocked"
}

// Blocker answers whether a cell can be entered.
type Blocker interface {
	IsBlocked(x, y int) bool
}

// TryMove steps pos by (dx, dy). The step is refused when the destination is
// blocked, and the unchanged position is returned.
func TryMove(grid Blocker, pos gamemap.Point, dx, dy int) (gamemap.Point, MoveResult) {
	next := pos.Add(dx, dy)
	if grid.IsBlocked(next.X, next.Y) {
		return pos, MoveBlocked
	}
	return next, MoveOK
}

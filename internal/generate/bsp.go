package generate

import (
	"math/rand"

	"shadowcast/internal/gamemap"
)

// CorridorStyle selects the shape of connecting tunnels.
type CorridorStyle uint8

const (
	CorridorLShaped CorridorStyle = iota
	CorridorZShaped
	CorridorStraight
)

// Config drives procedural generation of one map.
type Config struct {
	MapWidth, MapHeight int
	MinLeafSize         int
	MaxLeafSize         int
	MinRoomSize         int
	RoomPadding         int
	CorridorStyle       CorridorStyle
	PillarCount         int // pillars scattered through larger rooms to cast shadows
	Rand                *rand.Rand
}

// DefaultConfig returns generation settings for a width×height map.
func DefaultConfig(width, height int, rng *rand.Rand) *Config {
	return &Config{
		MapWidth:      width,
		MapHeight:     height,
		MinLeafSize:   6,
		MaxLeafSize:   16,
		MinRoomSize:   3,
		RoomPadding:   1,
		CorridorStyle: CorridorStyle(rng.Intn(3)),
		PillarCount:   (width * height) / 80,
		Rand:          rng,
	}
}

// Level is a generated map with its rooms and observer start.
type Level struct {
	Grid  *gamemap.Grid
	Rooms []gamemap.Rect
	Start gamemap.Point
}

// bspLeaf is a node in the BSP tree. A split leaf always has both children.
type bspLeaf struct {
	X, Y, W, H  int
	left, right *bspLeaf
	room        *gamemap.Rect
}

// partition splits l recursively. Leaves larger than MaxLeafSize are always
// split; smaller ones stop one time in four.
func (l *bspLeaf) partition(cfg *Config) {
	small := l.W <= cfg.MaxLeafSize && l.H <= cfg.MaxLeafSize
	if small && cfg.Rand.Float64() > 0.75 {
		return
	}
	if !l.split(cfg) {
		return
	}
	l.left.partition(cfg)
	l.right.partition(cfg)
}

// split cuts l in two, leaving at least MinLeafSize on each side. Leaves
// more than 5:4 out of square are cut across their long side.
func (l *bspLeaf) split(cfg *Config) bool {
	horizontal := cfg.Rand.Intn(2) == 0
	switch {
	case l.W*4 >= l.H*5:
		horizontal = false
	case l.H*4 >= l.W*5:
		horizontal = true
	}

	span := l.W
	if horizontal {
		span = l.H
	}
	slack := span - 2*cfg.MinLeafSize
	if slack < 1 {
		return false
	}
	at := cfg.MinLeafSize + cfg.Rand.Intn(slack+1)

	first, second := bspLeaf{X: l.X, Y: l.Y, W: l.W, H: l.H}, bspLeaf{X: l.X, Y: l.Y, W: l.W, H: l.H}
	if horizontal {
		first.H = at
		second.Y, second.H = l.Y+at, l.H-at
	} else {
		first.W = at
		second.X, second.W = l.X+at, l.W-at
	}
	l.left, l.right = &first, &second
	return true
}

// createRooms recursively carves rooms inside terminal leaves.
func (l *bspLeaf) createRooms(lv *Level, cfg *Config) {
	if l.left != nil {
		l.left.createRooms(lv, cfg)
		l.right.createRooms(lv, cfg)
		return
	}
	g := lv.Grid
	pad := cfg.RoomPadding
	minSize := max(cfg.MinRoomSize, 3)

	availW := max(l.W-2*pad, minSize)
	availH := max(l.H-2*pad, minSize)
	rw := min(minSize+cfg.Rand.Intn(availW-minSize+1), l.W-2*pad)
	rh := min(minSize+cfg.Rand.Intn(availH-minSize+1), l.H-2*pad)

	rx := l.X + pad + cfg.Rand.Intn(max(1, l.W-rw-2*pad+1))
	ry := l.Y + pad + cfg.Rand.Intn(max(1, l.H-rh-2*pad+1))

	// Keep a solid 1-cell border around the map.
	rx = max(rx, 1)
	ry = max(ry, 1)
	if rx+rw >= g.Width {
		rw = g.Width - rx - 1
	}
	if ry+rh >= g.Height {
		rh = g.Height - ry - 1
	}
	if rw < 3 || rh < 3 {
		return
	}

	room := gamemap.Rect{X1: rx, Y1: ry, X2: rx + rw - 1, Y2: ry + rh - 1}
	l.room = &room

	for y := room.Y1; y <= room.Y2; y++ {
		for x := room.X1; x <= room.X2; x++ {
			g.Set(x, y, gamemap.Open)
		}
	}
	lv.Rooms = append(lv.Rooms, room)
}

// anyRoom returns the first room found under l, or nil.
func (l *bspLeaf) anyRoom() *gamemap.Rect {
	if l.room != nil || l.left == nil {
		return l.room
	}
	if r := l.left.anyRoom(); r != nil {
		return r
	}
	return l.right.anyRoom()
}

// connect joins the two halves of every split with a corridor, deepest
// splits first.
func (l *bspLeaf) connect(g *gamemap.Grid, cfg *Config) {
	if l.left == nil {
		return
	}
	l.left.connect(g, cfg)
	l.right.connect(g, cfg)

	a, b := l.left.anyRoom(), l.right.anyRoom()
	if a == nil || b == nil {
		return
	}
	ax, ay := a.Center()
	bx, by := b.Center()
	carveCorridor(g, ax, ay, bx, by, cfg)
}

// Generate builds a BSP map of connected rooms. The observer starts at the
// center of the first room.
func Generate(cfg *Config) *Level {
	lv := &Level{Grid: gamemap.New(cfg.MapWidth, cfg.MapHeight)}

	root := &bspLeaf{W: cfg.MapWidth, H: cfg.MapHeight}
	root.partition(cfg)
	root.createRooms(lv, cfg)
	root.connect(lv.Grid, cfg)

	lv.Start = gamemap.Point{X: 1, Y: 1}
	if len(lv.Rooms) > 0 {
		lv.Start.X, lv.Start.Y = lv.Rooms[0].Center()
	} else {
		// Too small for a room: open the start cell so the map stays walkable.
		lv.Grid.Set(1, 1, gamemap.Open)
	}

	placePillars(lv, cfg)
	return lv
}

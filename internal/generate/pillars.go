package generate

import "shadowcast/internal/gamemap"

// placePillars blocks up to cfg.PillarCount single cells inside rooms.
// Pillars sit only on interior cells at even offsets from the room's corner,
// so no two pillars touch and every room stays one connected open area.
func placePillars(lv *Level, cfg *Config) {
	if cfg.PillarCount <= 0 {
		return
	}
	var spots []gamemap.Point
	for _, room := range lv.Rooms {
		for y := room.Y1 + 2; y < room.Y2; y += 2 {
			for x := room.X1 + 2; x < room.X2; x += 2 {
				p := gamemap.Point{X: x, Y: y}
				if p == lv.Start {
					continue
				}
				spots = append(spots, p)
			}
		}
	}
	cfg.Rand.Shuffle(len(spots), func(i, j int) {
		spots[i], spots[j] = spots[j], spots[i]
	})
	for _, p := range spots[:min(cfg.PillarCount, len(spots))] {
		lv.Grid.Set(p.X, p.Y, gamemap.Blocked)
	}
}

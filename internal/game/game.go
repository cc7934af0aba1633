// Package game runs one interactive walking session: it reads keys, moves
// the observer and redraws the field of view.
package game

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"

	"shadowcast/internal/gamemap"
	"shadowcast/internal/render"
	"shadowcast/internal/system"
)

// Game is one observer walking one map on one screen.
type Game struct {
	screen     tcell.Screen
	ownsScreen bool
	renderer   *render.Renderer
	log        *slog.Logger

	grid     *gamemap.Grid
	fov      *system.FOV
	vis      *system.Visibility
	seen     *system.Visibility
	observer gamemap.Point

	memory  bool
	lit     int
	message string
}

// New creates a Game on the process terminal. Run finalizes the screen.
func New(cfg Config, grid *gamemap.Grid, start gamemap.Point, logger *slog.Logger) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	g, err := NewWithScreen(screen, cfg, grid, start, logger)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	g.ownsScreen = true
	return g, nil
}

// NewWithScreen creates a Game on an already initialized screen. The caller
// keeps ownership of the screen. grid is only read, so several games may
// share one.
func NewWithScreen(screen tcell.Screen, cfg Config, grid *gamemap.Grid, start gamemap.Point, logger *slog.Logger) (*Game, error) {
	theme, ok := render.ThemeByName(cfg.Theme)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrBadTheme, cfg.Theme)
	}
	if grid.IsBlocked(start.X, start.Y) {
		return nil, fmt.Errorf("start %d,%d is not an open cell", start.X, start.Y)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	w, h := grid.Size()
	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen, theme),
		log:      logger,
		grid:     grid,
		fov:      system.NewFOV(grid, cfg.FOVOptions()...),
		vis:      system.NewVisibility(w, h),
		seen:     system.NewVisibility(w, h),
		observer: start,
		memory:   cfg.Remember,
	}, nil
}

// Observer returns the observer's current cell.
func (g *Game) Observer() gamemap.Point { return g.observer }

// Memory reports whether remembered cells are drawn.
func (g *Game) Memory() bool { return g.memory }

// Lit returns how many cells were visible on the last frame.
func (g *Game) Lit() int { return g.lit }

// Message returns the status message shown under the map.
func (g *Game) Message() string { return g.message }

// Run draws the first frame and handles events until the player quits or
// the screen is finalized.
func (g *Game) Run() {
	if g.ownsScreen {
		defer g.screen.Fini()
	}

	g.log.Info("session start",
		"x", g.observer.X, "y", g.observer.Y,
		"radius", g.fov.Radius(), "fudge", g.fov.Fudge())
	g.refresh()

	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			g.log.Info("screen closed")
			return
		}
		if !g.HandleEvent(ev) {
			g.log.Info("session end", "x", g.observer.X, "y", g.observer.Y)
			return
		}
	}
}

// HandleEvent applies one screen event. It returns false when the session
// should end.
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Resize()
		g.refresh()
	case *tcell.EventKey:
		return g.processAction(keyToAction(ev))
	}
	return true
}

func (g *Game) processAction(action Action) bool {
	switch action {
	case ActionQuit:
		return false

	case ActionToggleMemory:
		g.memory = !g.memory
		if !g.memory {
			g.seen.Reset()
		}
		g.message = ""
		g.log.Debug("memory toggled", "on", g.memory)
		g.refresh()

	default:
		dx, dy := actionToDelta(action)
		if dx == 0 && dy == 0 {
			return true
		}
		next, result := system.TryMove(g.grid, g.observer, dx, dy)
		g.log.Debug("move", "dx", dx, "dy", dy, "result", result.String())
		switch result {
		case system.MoveOK:
			g.observer = next
			g.message = ""
			g.refresh()
		case system.MoveBlocked:
			// The map on screen is still current; only the status changes.
			g.message = gotext.Get("blocked")
			g.renderer.DrawHUD(g.status())
		}
	}
	return true
}

// refresh recomputes the view from the observer and redraws everything.
// The renderer empties g.vis while drawing.
func (g *Game) refresh() {
	g.fov.Compute(g.vis, g.observer.X, g.observer.Y)

	var seen *system.Visibility
	if g.memory {
		seen = g.seen
	}
	g.lit = g.renderer.DrawFrame(render.Frame{
		Grid:     g.grid,
		Vis:      g.vis,
		Seen:     seen,
		Observer: g.observer,
	})
	g.renderer.DrawHUD(g.status())
	g.log.Debug("frame", "x", g.observer.X, "y", g.observer.Y, "lit", g.lit)
}

func (g *Game) status() render.Status {
	return render.Status{
		Observer: g.observer,
		Lit:      g.lit,
		Radius:   g.fov.Radius(),
		Memory:   g.memory,
		Message:  g.message,
	}
}

package game

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"shadowcast/internal/gamemap"
	"shadowcast/internal/generate"
	"shadowcast/internal/render"
	"shadowcast/internal/system"
)

// minGenSize is the smallest map the BSP generator is asked to build.
const minGenSize = 12

var (
	ErrBadRadius   = errors.New("radius must not be negative")
	ErrBadFudge    = errors.New("fudge must be in (0, 0.5]")
	ErrBadTheme    = errors.New("unknown theme")
	ErrBadGenSize  = errors.New("generated map is too small")
	ErrMapConflict = errors.New("-map and -generate are mutually exclusive")
)

// Config holds everything a session needs besides the screen.
type Config struct {
	MapFile   string // text layout to load; empty uses the built-in map
	Generate  bool   // build a BSP map instead of loading one
	Seed      int64  // generator seed; 0 picks one from the clock
	GenWidth  int
	GenHeight int

	Radius   int     // 0 means max(width, height)
	Fudge    float64 // cell edge inset for slopes
	Worklist bool    // run the FOV scan from an explicit stack

	Theme    string
	Remember bool // start with the remembered map enabled

	LocaleDir string
	Lang      string

	LogPath string
	Dump    bool // print one frame to stdout and exit
}

// DefaultConfig returns the settings used when no flags are given.
func DefaultConfig() Config {
	return Config{
		GenWidth:  80,
		GenHeight: 24,
		Fudge:     system.DefaultFudge,
		Theme:     render.DefaultTheme,
		Lang:      "en_US",
	}
}

// RegisterFlags binds the config fields to fs, using the current values as
// defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.MapFile, "map", c.MapFile, "text map to load (# wall, . floor, @ start)")
	fs.BoolVar(&c.Generate, "generate", c.Generate, "generate a BSP map instead of loading one")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "generator seed (0 = random)")
	fs.IntVar(&c.GenWidth, "width", c.GenWidth, "generated map width")
	fs.IntVar(&c.GenHeight, "height", c.GenHeight, "generated map height")
	fs.IntVar(&c.Radius, "radius", c.Radius, "sight radius (0 = map size)")
	fs.Float64Var(&c.Fudge, "fudge", c.Fudge, "cell edge inset for slopes, e.g. 0.495")
	fs.BoolVar(&c.Worklist, "worklist", c.Worklist, "compute FOV with an explicit stack instead of recursion")
	fs.StringVar(&c.Theme, "theme", c.Theme, fmt.Sprintf("glyph theme %v", render.ThemeNames()))
	fs.BoolVar(&c.Remember, "remember", c.Remember, "start with the remembered map shown")
	fs.StringVar(&c.LocaleDir, "locales", c.LocaleDir, "gettext locale directory")
	fs.StringVar(&c.Lang, "lang", c.Lang, "locale language")
	fs.StringVar(&c.LogPath, "log", c.LogPath, "write debug log to this file")
	fs.BoolVar(&c.Dump, "dump", c.Dump, "print the first frame to stdout and exit")
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.Radius < 0 {
		return fmt.Errorf("%w: %d", ErrBadRadius, c.Radius)
	}
	if c.Fudge <= 0 || c.Fudge > 0.5 {
		return fmt.Errorf("%w: %g", ErrBadFudge, c.Fudge)
	}
	if _, ok := render.ThemeByName(c.Theme); !ok {
		return fmt.Errorf("%w %q", ErrBadTheme, c.Theme)
	}
	if c.MapFile != "" && c.Generate {
		return ErrMapConflict
	}
	if c.Generate && (c.GenWidth < minGenSize || c.GenHeight < minGenSize) {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrBadGenSize, c.GenWidth, c.GenHeight, minGenSize, minGenSize)
	}
	return nil
}

// FOVOptions translates the config into engine options.
func (c Config) FOVOptions() []system.FOVOption {
	opts := []system.FOVOption{system.WithRadius(c.Radius), system.WithFudge(c.Fudge)}
	if c.Worklist {
		opts = append(opts, system.WithWorklist())
	}
	return opts
}

// LoadGrid builds the map the config asks for: a layout file, a generated
// map, or the built-in layout.
func LoadGrid(c Config) (*gamemap.Grid, gamemap.Point, error) {
	switch {
	case c.MapFile != "":
		f, err := os.Open(c.MapFile)
		if err != nil {
			return nil, gamemap.Point{}, fmt.Errorf("open map: %w", err)
		}
		defer f.Close()
		grid, start, err := gamemap.Load(f)
		if err != nil {
			return nil, gamemap.Point{}, fmt.Errorf("load map %s: %w", c.MapFile, err)
		}
		return grid, start, nil

	case c.Generate:
		seed := c.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		lv := generate.Generate(generate.DefaultConfig(c.GenWidth, c.GenHeight, rand.New(rand.NewSource(seed))))
		return lv.Grid, lv.Start, nil
	}

	grid, start := gamemap.Default()
	return grid, start, nil
}

// SetupLocale points gotext at a locale directory. With no directory the
// English message ids are used as-is.
func SetupLocale(dir, lang string) {
	if dir == "" {
		return
	}
	gotext.Configure(dir, lang, "default")
}

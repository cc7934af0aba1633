package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"
	"github.com/mattn/go-runewidth"

	"shadowcast/internal/gamemap"
)

// Status is the information shown under the map.
type Status struct {
	Observer gamemap.Point
	Lit      int
	Radius   int
	Memory   bool
	Message  string
}

// DrawHUD renders the status bar and key help at the bottom of the screen,
// then shows the finished frame.
func (r *Renderer) DrawHUD(st Status) {
	_, screenH := r.screen.Size()
	hudY := screenH - HUDRows

	r.drawHLine(hudY, tcell.ColorGray)

	memory := gotext.Get("memory off")
	if st.Memory {
		memory = gotext.Get("memory on")
	}
	status := gotext.Get("pos %d,%d  lit %d  radius %d", st.Observer.X, st.Observer.Y, st.Lit, st.Radius) + "  " + memory
	r.drawText(0, hudY+1, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	help := gotext.Get("arrows/hjkl move  m memory  q quit")
	r.drawText(0, hudY+2, help, tcell.StyleDefault.Foreground(tcell.ColorGray))

	if st.Message != "" {
		r.drawText(0, hudY+3, st.Message, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}

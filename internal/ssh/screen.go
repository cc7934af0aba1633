package ssh

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// DefaultTerm is used when the client asks for a terminal type that is not
// in AllowedTerms.
const DefaultTerm = "xterm-256color"

// AllowedTerms lists the terminal types a client may select. The name ends
// up in the process environment and in a terminfo lookup, so anything else
// falls back to DefaultTerm.
var AllowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

// ErrNoPty is returned for sessions opened without a pseudo-terminal.
var ErrNoPty = errors.New("session has no pty")

// termMu serializes TERM changes: tcell reads it from the environment while
// building a terminfo screen.
var termMu sync.Mutex

// ResolveTerm returns requested when it is allowed and DefaultTerm otherwise.
func ResolveTerm(requested string) string {
	if AllowedTerms[requested] {
		return requested
	}
	return DefaultTerm
}

// NewScreen builds and initializes a tcell screen that draws through s.
// The caller must call Fini on it.
func NewScreen(s gossh.Session) (tcell.Screen, error) {
	pty, windows, ok := s.Pty()
	if !ok {
		return nil, ErrNoPty
	}

	tty := NewSessionTty(s, pty.Window, windows)

	termMu.Lock()
	err := os.Setenv("TERM", ResolveTerm(pty.Term))
	var screen tcell.Screen
	if err == nil {
		screen, err = tcell.NewTerminfoScreenFromTty(tty)
	}
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("terminal setup: %w", err)
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	return screen, nil
}

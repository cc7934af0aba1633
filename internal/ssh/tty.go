// Package ssh serves the walker over SSH: each session gets its own tcell
// screen drawn through the session channel.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// SessionTty implements tcell.Tty on top of a gliderlabs/ssh session.
// Keyboard input is read from the channel and frames are written back to it.
type SessionTty struct {
	session gossh.Session
	windows <-chan gossh.Window

	mu     sync.Mutex
	size   tcell.WindowSize
	resize func()

	watch sync.Once
}

// NewSessionTty wraps s. win is the size from the PTY request; windows
// delivers the client's later window-change requests.
func NewSessionTty(s gossh.Session, win gossh.Window, windows <-chan gossh.Window) *SessionTty {
	return &SessionTty{
		session: s,
		windows: windows,
		size:    tcell.WindowSize{Width: win.Width, Height: win.Height},
	}
}

func (t *SessionTty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.session.Write(b) }
func (t *SessionTty) Close() error                { return t.session.Close() }

// Start, Stop and Drain have nothing to do: the channel is opened and
// closed by the SSH server, and writes are not buffered here.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the most recent size reported by the client.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.size, nil
}

// NotifyResize sets the function called after each window change. tcell
// registers a callback on Init and clears it with nil on Fini; the channel
// is watched by a single goroutine until the session closes it.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.resize = cb
	t.mu.Unlock()

	t.watch.Do(func() { go t.watchWindows() })
}

func (t *SessionTty) watchWindows() {
	for win := range t.windows {
		t.mu.Lock()
		t.size = tcell.WindowSize{Width: win.Width, Height: win.Height}
		cb := t.resize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}

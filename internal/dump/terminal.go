package dump

import (
	"os"

	"golang.org/x/term"
)

// TerminalOptions picks colour and width for f: colour and the terminal
// width when f is a terminal, plain full-width text otherwise.
func TerminalOptions(f *os.File) Options {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return Options{}
	}
	opts := Options{Color: true}
	if width, _, err := term.GetSize(fd); err == nil {
		opts.Width = width
	}
	return opts
}

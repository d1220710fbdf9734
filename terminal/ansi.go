package terminal

import (
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// Restore sequences for crash paths where tcell cannot run Fini
var (
	csiSGR0          = []byte("\x1b[0m")
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)

var (
	modeMu    sync.Mutex
	modeFd    int
	modeState *term.State
)

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// SaveMode records the tty mode of f so EmergencyReset can restore it after raw mode
func SaveMode(f *os.File) error {
	fd := int(f.Fd())
	st, err := term.GetState(fd)
	if err != nil {
		return err
	}

	modeMu.Lock()
	modeFd, modeState = fd, st
	modeMu.Unlock()
	return nil
}

// EmergencyReset restores the terminal without tcell, best-effort
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	modeMu.Lock()
	defer modeMu.Unlock()
	if modeState != nil {
		term.Restore(modeFd, modeState)
	}
}

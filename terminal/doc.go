// Package terminal adapts a tcell screen into the game's draw sink, size query and event source.
//
// Features:
//   - Draw/Clear/Show over tcell cells with rune-width aware advance
//   - Bounded event polling fed by a single poller goroutine
//   - Scoped acquisition that restores the terminal on return, error and panic
//   - Emergency reset of cursor, colors, alternate screen and tty mode for crash paths
package terminal

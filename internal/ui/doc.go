// Package ui hosts the console in a Bubble Tea terminal program.
//
// # Architecture Overview
//
// The console engine produces a text block and a scroll progress value and
// expects its host to redraw them when notified. Here the host is a Bubble
// Tea program: the engine's observers write into state.Store, and View draws
// the latest snapshot as a bordered box with a progress bar underneath.
//
// Everything that touches the engine runs on the update loop:
//
//   - key presses call the scroll, lock, clear and settings operations
//   - frame ticks advance the live.Clock that drives the runtime watch
//   - window size events update the terminal size watch
//   - LogMsg values posted by feeds (file followers, heartbeat) call Log
//
// Feeds run on their own goroutines and only ever call Program.Send.
//
// # Package Structure
//
//   - ui.go: Options, Feed, message types and Run
//   - model.go: Model, Update and the main key handler
//   - input.go: the input line (log text or set a name=value watch)
//   - view.go: header, console box, progress bar and footer
//   - help.go: help overlay rendered from markdown with glamour
//   - keys.go: key bindings (bubbles/key) and short/full help
//   - theme.go: color themes and lipgloss styles
//
// # Key Bindings
//
//   - k/up, j/down: Scroll one line
//   - g/home, G/end: Scroll to newest/oldest window
//   - c: Clear console
//   - Space: Toggle lock (output frozen while locked)
//   - t: Toggle timestamps
//   - +/-: More/fewer visible lines
//   - i: Open the input line; enter submits, esc cancels
//   - T: Cycle theme
//   - h/?: Toggle help
//   - q or Ctrl+C: Exit
//
// Theme, timestamps and line count changes are saved to the prefs file.
package ui

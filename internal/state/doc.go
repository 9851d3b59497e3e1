// Package state holds the console output the view draws from.
//
// # Overview
//
// The console engine publishes two values through its observers: the
// rendered text block and the scroll progress. Store is where those land.
// The UI registers observers that call SetText and SetProgress, and the view
// reads a Snapshot when it draws. Feed goroutines record failures with
// RecordError so the view can surface them next to the console.
//
// # Concurrency Model
//
// Store uses a readers-writer lock:
//
//   - SetText, SetProgress, RecordError: write lock
//   - Snapshot: read lock, returns a copy
//
// The engine itself is single-threaded; Store is the one place where values
// produced on the update loop are read from elsewhere (the view, tests,
// background feeds reporting errors).
//
// # Snapshot
//
// Snapshot is returned by value. The error is re-wrapped so callers never
// share the stored instance; errors.Is still matches the original.
//
//	store := &state.Store{}
//	dereg := engine.OnTextChanged(store.SetText)
//	defer dereg()
//	snap := store.Snapshot()
//	for _, line := range snap.Lines() {
//		fmt.Println(line)
//	}
//
// The zero value is ready to use.
package state

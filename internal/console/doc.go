// Package console implements the scrollback engine behind backscroll.
//
// # Overview
//
// A Console accumulates two kinds of lines and renders a fixed-height window
// of them as a single text blob plus a scroll progress fraction:
//
//   - Value entries: anything passed to Log, classified once and rendered as
//     text. With dedup enabled, logging the same text again bumps a counter on
//     the existing line instead of appending a new one.
//   - Watch entries: a name bound to a live.Source. The line shows the most
//     recent value the source pushed and re-renders on every push.
//
// Every state change ends in a render pass that notifies the registered
// observers, first with the text and then with the progress. Hosts redraw
// from those callbacks.
//
// # Classification
//
// Log accepts any value. Classify maps it to one of a closed set of kinds:
//
//	number      42, 2.5         → "42", "2.5"
//	string      "hi", error     → "hi", err.Error()
//	boolean     true            → "true"
//	callable    live.Reader     → its current value, "[function]" if unreadable
//	            other funcs     → "[function]"
//	structured  struct/map/...  → one-line JSON, "[object]" when empty
//	absent      nil             → "[undefined]"
//	other       chan, ...       → "[type not found]"
//
// Classification never fails and never returns an error to the caller.
//
// # Rendering
//
// The buffer is insertion ordered. The window holds min(len, maxLines)
// entries and is printed newest first, one line per entry:
//
//	> message               value entry logged once
//	> [3] message           value entry logged three times
//	name: value             watch entry
//	name: [pending]         watch entry before its first value
//
// With timestamps enabled each line is prefixed with "[15:04:05.000] ".
//
// # Scrolling
//
// The scroll offset counts lines from the newest window and is never
// positive. Zero shows the newest entries; the bottom position
// -(max(len, maxLines) - maxLines) shows the oldest. ScrollToTop returns to
// zero and ScrollToBottom moves to the bottom position. Progress is
// offset / bottom, reported as 0 when there is nothing to scroll.
//
// # Locking
//
// While locked, operations still change state but no render pass runs and no
// observer is called. Unlocking renders once. Clear always notifies, locked
// or not.
//
// # Subscriptions
//
// Each watch entry owns one subscription. Clear cancels all of them and marks
// the entries detached, so a source that keeps pushing after Unsubscribe is
// ignored. An optional driver source (for example a frame clock) re-renders
// the console while at least one watch entry exists; each render pass checks
// for remaining watch entries and stops the driver when none are left.
//
// # Threading
//
// A Console is not safe for concurrent use. Hosts drive it from a single
// event loop and route pushes from other goroutines through that loop.
package console

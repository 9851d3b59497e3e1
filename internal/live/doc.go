// Package live defines values that change over time and the contract the
// console uses to read and follow them.
//
// # Contract
//
// A Reader exposes the value it holds right now. A Source additionally lets a
// caller subscribe to changes; Subscribe always delivers the current value
// once, immediately, before any later change, so a fresh subscriber never
// renders an empty state while waiting for the next update.
//
// Subscriptions are cancelled with Unsubscribe, which is safe to call more
// than once.
//
// # Implementations
//
//   - Value[T]: a settable value that notifies subscribers when it changes
//   - Clock: elapsed milliseconds since start, advanced by the host's frame ticks
//
// # Threading
//
// Nothing in this package takes locks. Values are owned by the host's event
// loop: producers on other goroutines post messages to that loop instead of
// calling Set directly.
package live

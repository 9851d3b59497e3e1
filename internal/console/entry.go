package console

import (
	"fmt"
	"strings"
	"time"

	"github.com/five82/backscroll/internal/live"
)

// EntryKind tags the two variants of Entry.
type EntryKind int

const (
	// EntryValue is a logged line with a repeat counter.
	EntryValue EntryKind = iota
	// EntryWatch is a named line kept fresh by a live source.
	EntryWatch
)

const timestampLayout = "15:04:05.000"

// Entry is one logical line held by the console.
type Entry struct {
	kind EntryKind

	// value entries
	content   string
	class     Kind
	count     int
	createdAt time.Time

	// watch entries
	name      string
	current   string
	ready     bool
	updatedAt time.Time
	sub       live.Subscription
	detached  bool
}

func newValueEntry(content string, class Kind, now time.Time) *Entry {
	return &Entry{kind: EntryValue, content: content, class: class, count: 1, createdAt: now}
}

func newWatchEntry(name string) *Entry {
	return &Entry{kind: EntryWatch, name: name}
}

// Kind reports which variant e is.
func (e *Entry) Kind() EntryKind { return e.kind }

// Content returns the rendered content of a value entry.
func (e *Entry) Content() string { return e.content }

// Class returns how the value of a value entry was classified.
func (e *Entry) Class() Kind { return e.class }

// Count returns how many times a value entry was logged.
func (e *Entry) Count() int { return e.count }

// Name returns the name of a watch entry.
func (e *Entry) Name() string { return e.name }

// Ready reports whether a watch entry has received its first value.
func (e *Entry) Ready() bool { return e.ready }

// set records a pushed value on a watch entry.
func (e *Entry) set(v any, now time.Time) {
	e.current = scalarText(v)
	e.ready = true
	e.updatedAt = now
}

// Line renders e as a single line without the trailing line break.
func (e *Entry) Line(timestamps bool) string {
	var b strings.Builder
	switch e.kind {
	case EntryWatch:
		if timestamps && e.ready {
			writeStamp(&b, e.updatedAt)
		}
		b.WriteString(e.name)
		b.WriteString(": ")
		if e.ready {
			b.WriteString(e.current)
		} else {
			b.WriteString(placeholderPending)
		}
	default:
		if timestamps {
			writeStamp(&b, e.createdAt)
		}
		b.WriteString("> ")
		if e.count > 1 {
			fmt.Fprintf(&b, "[%d] ", e.count)
		}
		b.WriteString(e.content)
	}
	return b.String()
}

func writeStamp(b *strings.Builder, t time.Time) {
	b.WriteString("[")
	b.WriteString(t.Format(timestampLayout))
	b.WriteString("] ")
}

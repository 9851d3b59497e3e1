package console

import "time"

// buffer is the insertion-ordered entry list. Newest entries are last.
type buffer struct {
	entries []*Entry
	dedup   bool
}

// logValue appends a value entry, or bumps the count of an existing value
// entry with the same content when dedup is on. A bumped entry keeps its
// position.
func (b *buffer) logValue(content string, class Kind, now time.Time) *Entry {
	if b.dedup {
		if e := b.findValue(content); e != nil {
			e.count++
			return e
		}
	}
	e := newValueEntry(content, class, now)
	b.entries = append(b.entries, e)
	return e
}

// appendValue appends a value entry without the dedup scan.
func (b *buffer) appendValue(content string, class Kind, now time.Time) *Entry {
	e := newValueEntry(content, class, now)
	b.entries = append(b.entries, e)
	return e
}

func (b *buffer) appendWatch(e *Entry) {
	b.entries = append(b.entries, e)
}

func (b *buffer) findValue(content string) *Entry {
	for _, e := range b.entries {
		if e.kind == EntryValue && e.content == content {
			return e
		}
	}
	return nil
}

func (b *buffer) len() int {
	return len(b.entries)
}

func (b *buffer) at(i int) *Entry {
	return b.entries[i]
}

func (b *buffer) watchCount() int {
	n := 0
	for _, e := range b.entries {
		if e.kind == EntryWatch {
			n++
		}
	}
	return n
}

// reset empties the buffer and returns what it held.
func (b *buffer) reset() []*Entry {
	removed := b.entries
	b.entries = nil
	return removed
}

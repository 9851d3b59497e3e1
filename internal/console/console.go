package console

import (
	"reflect"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/five82/backscroll/internal/live"
)

const defaultMaxLines = 10

// Options configure a Console.
type Options struct {
	// MaxLines is the viewport height. Zero uses the default of 10.
	MaxLines int
	// Dedup collapses repeated value entries into one line with a counter.
	Dedup      bool
	Timestamps bool
	Locked     bool
	// Driver, when set, re-renders the console on every change while at
	// least one watch entry exists.
	Driver live.Source
	Now    func() time.Time
	Logger *zap.Logger
}

// DefaultOptions returns a ten line console with dedup enabled.
func DefaultOptions() Options {
	return Options{MaxLines: defaultMaxLines, Dedup: true}
}

// Console is the scrollback engine. It is not safe for concurrent use; all
// calls, including pushes from live sources, must come from one goroutine.
type Console struct {
	buf  buffer
	subs subscriptions

	maxLines   int
	offset     int
	locked     bool
	timestamps bool

	text     string
	progress float64

	onText     observers[string]
	onProgress observers[float64]

	maxLinesSub live.Subscription

	now    func() time.Time
	logger *zap.Logger
}

// New returns an empty Console.
func New(opts Options) *Console {
	maxLines := opts.MaxLines
	if maxLines <= 0 {
		maxLines = defaultMaxLines
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{
		buf:        buffer{dedup: opts.Dedup},
		subs:       subscriptions{driver: opts.Driver, logger: logger},
		maxLines:   maxLines,
		locked:     opts.Locked,
		timestamps: opts.Timestamps,
		now:        now,
		logger:     logger,
	}
}

// OnTextChanged registers fn to receive the rendered text after every render
// pass. The returned func removes the registration.
func (c *Console) OnTextChanged(fn func(text string)) func() {
	return c.onText.add(fn)
}

// OnProgressChanged registers fn to receive the scroll progress after every
// render pass. The returned func removes the registration.
func (c *Console) OnProgressChanged(fn func(progress float64)) func() {
	return c.onProgress.add(fn)
}

// Log appends v as a value entry, or bumps the counter of an identical entry
// when dedup is enabled.
func (c *Console) Log(v any) {
	class, text := Classify(v)
	c.buf.logValue(text, class, c.now())
	c.refresh()
}

// Watch appends a line named name that follows src. A src that cannot be
// read is logged as "<name>: [not a signal]" instead.
func (c *Console) Watch(name string, src live.Source) {
	if !readable(src) {
		c.logger.Debug("watch source not readable", zap.String("name", name))
		c.buf.appendValue(name+": "+placeholderNotSignal, KindString, c.now())
		c.refresh()
		return
	}

	e := newWatchEntry(name)
	c.buf.appendWatch(e)
	c.subs.startDriver(c.refresh)
	// The subscription's immediate delivery performs the first render.
	c.subs.bind(e, src, c.push)
}

func (c *Console) push(e *Entry, v any) {
	e.set(v, c.now())
	c.refresh()
}

// ScrollUp moves the window one line toward the newest entries.
func (c *Console) ScrollUp() {
	c.reclamp()
	c.offset = min(0, c.offset+1)
	c.refresh()
}

// ScrollDown moves the window one line toward the oldest entries.
func (c *Console) ScrollDown() {
	c.reclamp()
	c.offset = max(c.offset-1, c.bottom())
	c.refresh()
}

// ScrollToTop returns to offset zero, where the newest entries are shown.
func (c *Console) ScrollToTop() {
	c.offset = 0
	c.refresh()
}

// ScrollToBottom moves to the oldest reachable window.
func (c *Console) ScrollToBottom() {
	c.offset = c.bottom()
	c.refresh()
}

// SetMaxLines changes the viewport height. Values below one are clamped.
func (c *Console) SetMaxLines(n int) {
	c.maxLines = max(n, 1)
	c.reclamp()
	c.refresh()
}

// BindMaxLines follows src and applies every numeric value it delivers as the
// viewport height. A new binding replaces the previous one. The returned func
// cancels the binding.
func (c *Console) BindMaxLines(src live.Source) func() {
	if c.maxLinesSub != nil {
		c.maxLinesSub.Unsubscribe()
		c.maxLinesSub = nil
	}
	if !readable(src) {
		return func() {}
	}
	sub := &onceSubscription{}
	c.maxLinesSub = sub
	sub.inner = src.Subscribe(func(v any) {
		if sub.done {
			return
		}
		n, ok := toInt(v)
		if !ok {
			c.logger.Debug("ignoring non-numeric max lines", zap.Any("value", v))
			return
		}
		c.SetMaxLines(n)
	})
	return func() {
		sub.Unsubscribe()
		if c.maxLinesSub == live.Subscription(sub) {
			c.maxLinesSub = nil
		}
	}
}

// SetLocked freezes or unfreezes output. Unlocking renders immediately.
func (c *Console) SetLocked(locked bool) {
	wasLocked := c.locked
	c.locked = locked
	if wasLocked && !locked {
		c.render()
	}
}

// SetTimestamps toggles the per-line time prefix.
func (c *Console) SetTimestamps(enabled bool) {
	c.timestamps = enabled
	c.refresh()
}

// Clear drops every entry, cancels every watch subscription and resets the
// scroll position. Observers are notified even while locked.
func (c *Console) Clear() {
	for _, e := range c.buf.reset() {
		c.subs.release(e)
	}
	c.subs.stopDriver()
	c.offset = 0
	c.text = ""
	c.progress = scrollProgress(c.offset, c.bottom())
	c.notify()
}

// Close cancels every subscription the console holds without rendering.
func (c *Console) Close() {
	for _, e := range c.buf.entries {
		c.subs.release(e)
	}
	c.subs.stopDriver()
	if c.maxLinesSub != nil {
		c.maxLinesSub.Unsubscribe()
		c.maxLinesSub = nil
	}
}

// Text returns the text of the last render pass.
func (c *Console) Text() string { return c.text }

// Progress returns the scroll progress of the last render pass.
func (c *Console) Progress() float64 { return c.progress }

// Len returns the number of entries in the buffer.
func (c *Console) Len() int { return c.buf.len() }

// ScrollOffset returns the current offset from the newest window (<= 0).
func (c *Console) ScrollOffset() int { return c.offset }

// MaxLines returns the viewport height.
func (c *Console) MaxLines() int { return c.maxLines }

// Locked reports whether output is frozen.
func (c *Console) Locked() bool { return c.locked }

// Timestamps reports whether lines carry a time prefix.
func (c *Console) Timestamps() bool { return c.timestamps }

// Watching returns the number of watch entries in the buffer.
func (c *Console) Watching() int { return c.buf.watchCount() }

// Entries returns a copy of the buffer in insertion order.
func (c *Console) Entries() []Entry {
	out := make([]Entry, len(c.buf.entries))
	for i, e := range c.buf.entries {
		out[i] = *e
		out[i].sub = nil
	}
	return out
}

func (c *Console) bottom() int {
	return bottomPosition(c.buf.len(), c.maxLines)
}

// reclamp keeps the offset inside [bottom, 0] while renders are suppressed.
func (c *Console) reclamp() {
	c.offset = clampOffset(c.offset, c.buf.len(), c.maxLines)
}

func (c *Console) refresh() {
	if c.locked {
		return
	}
	c.render()
}

func (c *Console) render() {
	n := c.buf.len()
	c.reclamp()

	var b strings.Builder
	for _, i := range window(n, c.maxLines, c.offset) {
		b.WriteString(c.buf.at(i).Line(c.timestamps))
		b.WriteByte('\n')
	}

	if c.buf.watchCount() == 0 {
		c.subs.stopDriver()
	}

	c.text = b.String()
	c.progress = scrollProgress(c.offset, c.bottom())
	c.notify()
}

func (c *Console) notify() {
	c.onText.notify(c.text)
	c.onProgress.notify(c.progress)
}

func readable(src live.Source) bool {
	if src == nil {
		return false
	}
	if rv := reflect.ValueOf(src); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return false
	}
	_, err := src.Current()
	return err == nil
}

func toInt(v any) (int, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return int(rv.Float()), true
	default:
		return 0, false
	}
}

package console

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/backscroll/internal/live"
)

// spy records every observer notification.
type spy struct {
	texts      []string
	progresses []float64
}

func (s *spy) attach(c *Console) {
	c.OnTextChanged(func(text string) { s.texts = append(s.texts, text) })
	c.OnProgressChanged(func(p float64) { s.progresses = append(s.progresses, p) })
}

func (s *spy) renders() int { return len(s.texts) }

func (s *spy) last() string {
	if len(s.texts) == 0 {
		return ""
	}
	return s.texts[len(s.texts)-1]
}

func newTestConsole(t *testing.T, opts Options) (*Console, *spy) {
	t.Helper()
	if opts.Now == nil {
		fixed := time.Date(2024, 3, 1, 12, 30, 45, 123_000_000, time.UTC)
		opts.Now = func() time.Time { return fixed }
	}
	c := New(opts)
	s := &spy{}
	s.attach(c)
	return c, s
}

func lines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func TestNew_Defaults(t *testing.T) {
	c := New(Options{})
	if c.MaxLines() != defaultMaxLines {
		t.Fatalf("MaxLines = %d, want %d", c.MaxLines(), defaultMaxLines)
	}
	if c.Len() != 0 || c.ScrollOffset() != 0 || c.Text() != "" || c.Progress() != 0 {
		t.Fatalf("new console not empty: len=%d offset=%d text=%q progress=%v", c.Len(), c.ScrollOffset(), c.Text(), c.Progress())
	}
	if !DefaultOptions().Dedup {
		t.Fatal("DefaultOptions().Dedup = false, want true")
	}
}

func TestLog_DedupCountsInPlace(t *testing.T) {
	c, s := newTestConsole(t, Options{MaxLines: 3, Dedup: true})

	c.Log("a")
	c.Log("b")
	c.Log("a")

	entries := c.Entries()
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Content() != "a" || entries[0].Count() != 2 {
		t.Fatalf("entries[0] = %q x%d, want a x2", entries[0].Content(), entries[0].Count())
	}
	if entries[1].Content() != "b" || entries[1].Count() != 1 {
		t.Fatalf("entries[1] = %q x%d, want b x1", entries[1].Content(), entries[1].Count())
	}

	want := "> b\n> [2] a\n"
	if c.Text() != want {
		t.Fatalf("Text = %q, want %q", c.Text(), want)
	}
	if s.renders() != 3 {
		t.Fatalf("renders = %d, want 3 (one per Log)", s.renders())
	}
}

func TestLog_DedupKeepsContentUnique(t *testing.T) {
	for _, n := range []int{1, 2, 7} {
		c, _ := newTestConsole(t, Options{MaxLines: 5, Dedup: true})
		for i := 0; i < n; i++ {
			c.Log(3.5)
		}
		if c.Len() != 1 {
			t.Fatalf("n=%d: Len = %d, want 1", n, c.Len())
		}
		if got := c.Entries()[0].Count(); got != n {
			t.Fatalf("n=%d: Count = %d, want %d", n, got, n)
		}
		want := "> 3.5\n"
		if n > 1 {
			want = "> [" + strconv.Itoa(n) + "] 3.5\n"
		}
		if c.Text() != want {
			t.Fatalf("n=%d: Text = %q, want %q", n, c.Text(), want)
		}
	}
}

func TestLog_NoDedupAppends(t *testing.T) {
	c, _ := newTestConsole(t, Options{MaxLines: 5})
	c.Log("a")
	c.Log("a")
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	if diff := cmp.Diff([]string{"> a", "> a"}, lines(c.Text())); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestLog_Placeholders(t *testing.T) {
	c, _ := newTestConsole(t, Options{MaxLines: 10, Dedup: true})
	c.Log(nil)
	c.Log(func() {})
	c.Log(struct{}{})
	c.Log(make(chan int))
	c.Log(live.NewValue("pinned"))

	want := []string{"> pinned", "> [type not found]", "> [object]", "> [function]", "> [undefined]"}
	if diff := cmp.Diff(want, lines(c.Text())); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_LineCountIsMinOfLengthAndMaxLines(t *testing.T) {
	for maxLines := 1; maxLines <= 5; maxLines++ {
		for length := 0; length <= 8; length++ {
			c, _ := newTestConsole(t, Options{MaxLines: maxLines})
			for i := 0; i < length; i++ {
				c.Log(i)
			}
			if length == 0 {
				c.ScrollToTop()
			}
			if got := len(lines(c.Text())); got != min(length, maxLines) {
				t.Fatalf("length=%d maxLines=%d: rendered %d lines, want %d", length, maxLines, got, min(length, maxLines))
			}
		}
	}
}

func TestScroll_StaysClamped(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c, _ := newTestConsole(t, Options{MaxLines: 4})
	for i := 0; i < 11; i++ {
		c.Log(i)
	}

	bottom := bottomPosition(c.Len(), c.MaxLines())
	for step := 0; step < 500; step++ {
		if rng.Intn(2) == 0 {
			c.ScrollUp()
		} else {
			c.ScrollDown()
		}
		if off := c.ScrollOffset(); off < bottom || off > 0 {
			t.Fatalf("step %d: offset %d outside [%d, 0]", step, off, bottom)
		}
		if p := c.Progress(); p < 0 || p > 1 {
			t.Fatalf("step %d: progress %v outside [0, 1]", step, p)
		}
	}
}

func TestScroll_WindowAndProgress(t *testing.T) {
	c, s := newTestConsole(t, Options{MaxLines: 2})
	for _, v := range []string{"a", "b", "c", "d", "e"} {
		c.Log(v)
	}
	if diff := cmp.Diff([]string{"> e", "> d"}, lines(c.Text())); diff != "" {
		t.Fatalf("initial window mismatch (-want +got):\n%s", diff)
	}

	c.ScrollDown()
	if diff := cmp.Diff([]string{"> d", "> c"}, lines(c.Text())); diff != "" {
		t.Fatalf("after ScrollDown mismatch (-want +got):\n%s", diff)
	}
	if c.ScrollOffset() != -1 {
		t.Fatalf("offset = %d, want -1", c.ScrollOffset())
	}

	c.ScrollToBottom()
	if diff := cmp.Diff([]string{"> b", "> a"}, lines(c.Text())); diff != "" {
		t.Fatalf("after ScrollToBottom mismatch (-want +got):\n%s", diff)
	}
	if c.Progress() != 1 {
		t.Fatalf("progress = %v, want 1", c.Progress())
	}

	c.ScrollUp()
	if c.ScrollOffset() != -2 || s.progresses[len(s.progresses)-1] != 2.0/3.0 {
		t.Fatalf("offset = %d progress = %v, want -2 and 2/3", c.ScrollOffset(), c.Progress())
	}

	c.ScrollToTop()
	if c.ScrollOffset() != 0 || c.Progress() != 0 {
		t.Fatalf("after ScrollToTop offset = %d progress = %v, want 0 and 0", c.ScrollOffset(), c.Progress())
	}

	c.ScrollUp()
	if c.ScrollOffset() != 0 {
		t.Fatalf("ScrollUp past top: offset = %d, want 0", c.ScrollOffset())
	}
}

func TestScroll_NoOverflowReportsZeroProgress(t *testing.T) {
	c, s := newTestConsole(t, Options{MaxLines: 5})
	c.Log("only")
	c.ScrollDown()
	c.ScrollToBottom()
	for i, p := range s.progresses {
		if p != 0 {
			t.Fatalf("progress[%d] = %v, want 0", i, p)
		}
	}
}

func TestSetMaxLines_ReclampsOffset(t *testing.T) {
	c, _ := newTestConsole(t, Options{MaxLines: 2})
	for i := 0; i < 6; i++ {
		c.Log(i)
	}
	c.ScrollToBottom()
	if c.ScrollOffset() != -4 {
		t.Fatalf("offset = %d, want -4", c.ScrollOffset())
	}

	c.SetMaxLines(5)
	if c.ScrollOffset() != -1 {
		t.Fatalf("offset after growing = %d, want -1", c.ScrollOffset())
	}
	if got := len(lines(c.Text())); got != 5 {
		t.Fatalf("rendered %d lines, want 5", got)
	}

	c.SetMaxLines(0)
	if c.MaxLines() != 1 {
		t.Fatalf("MaxLines = %d, want clamp to 1", c.MaxLines())
	}
}

func TestScroll_ReclampsWhileLocked(t *testing.T) {
	c, s := newTestConsole(t, Options{MaxLines: 2})
	for i := 0; i < 6; i++ {
		c.Log(i)
	}
	c.ScrollToBottom()
	c.SetLocked(true)
	renders := s.renders()

	c.SetMaxLines(5)
	if c.ScrollOffset() != -1 {
		t.Fatalf("offset after growing while locked = %d, want -1", c.ScrollOffset())
	}

	c.ScrollUp()
	if c.ScrollOffset() != 0 {
		t.Fatalf("offset after ScrollUp = %d, want 0", c.ScrollOffset())
	}
	c.ScrollDown()
	c.ScrollDown()
	if c.ScrollOffset() != -1 {
		t.Fatalf("offset after ScrollDown = %d, want -1", c.ScrollOffset())
	}
	if s.renders() != renders {
		t.Fatalf("renders while locked = %d, want %d", s.renders(), renders)
	}

	c.SetLocked(false)
	want := []string{"> 4", "> 3", "> 2", "> 1", "> 0"}
	if diff := cmp.Diff(want, lines(c.Text())); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
	if c.Progress() != 1 {
		t.Fatalf("progress = %v, want 1", c.Progress())
	}
}

func TestBindMaxLines_FollowsSource(t *testing.T) {
	c, _ := newTestConsole(t, Options{MaxLines: 10})
	for i := 0; i < 6; i++ {
		c.Log(i)
	}

	height := live.NewValue(3)
	unbind := c.BindMaxLines(height)
	if c.MaxLines() != 3 {
		t.Fatalf("MaxLines = %d, want 3 from immediate delivery", c.MaxLines())
	}

	height.Set(4)
	if c.MaxLines() != 4 {
		t.Fatalf("MaxLines = %d, want 4", c.MaxLines())
	}

	unbind()
	unbind()
	height.Set(2)
	if c.MaxLines() != 4 {
		t.Fatalf("MaxLines = %d after unbind, want 4", c.MaxLines())
	}
	if height.Subscribers() != 0 {
		t.Fatalf("subscribers = %d after unbind, want 0", height.Subscribers())
	}
}

func TestBindMaxLines_ReplacesPreviousBinding(t *testing.T) {
	c, _ := newTestConsole(t, Options{})
	first := live.NewValue(3)
	second := live.NewValue(6.0)

	c.BindMaxLines(first)
	c.BindMaxLines(second)
	if first.Subscribers() != 0 {
		t.Fatalf("first binding still subscribed")
	}
	first.Set(8)
	if c.MaxLines() != 6 {
		t.Fatalf("MaxLines = %d, want 6", c.MaxLines())
	}

	words := live.NewValue("tall")
	c.BindMaxLines(words)
	if c.MaxLines() != 6 {
		t.Fatalf("MaxLines = %d after non-numeric value, want 6", c.MaxLines())
	}
}

func TestLock_SuppressesRendersUntilUnlocked(t *testing.T) {
	c, s := newTestConsole(t, Options{MaxLines: 3, Dedup: true})
	c.Log("before")
	rendersBefore := s.renders()

	c.SetLocked(true)
	c.Log("a")
	c.Log("a")
	c.Watch("w", live.NewValue(1))
	c.ScrollDown()
	c.ScrollUp()
	c.ScrollToBottom()
	c.ScrollToTop()
	c.SetTimestamps(false)
	c.SetMaxLines(2)
	c.SetLocked(true)

	if s.renders() != rendersBefore {
		t.Fatalf("renders while locked = %d, want %d", s.renders(), rendersBefore)
	}
	if len(s.progresses) != rendersBefore {
		t.Fatalf("progress notifications while locked = %d, want %d", len(s.progresses), rendersBefore)
	}

	c.SetLocked(false)
	if s.renders() != rendersBefore+1 {
		t.Fatalf("renders after unlock = %d, want %d", s.renders(), rendersBefore+1)
	}
	if diff := cmp.Diff([]string{"w: 1", "> [2] a"}, lines(s.last())); diff != "" {
		t.Fatalf("unlocked render mismatch (-want +got):\n%s", diff)
	}

	c.SetLocked(false)
	if s.renders() != rendersBefore+1 {
		t.Fatalf("SetLocked(false) while unlocked rendered again")
	}
}

func TestClear_ResetsEvenWhenLocked(t *testing.T) {
	c, s := newTestConsole(t, Options{MaxLines: 2})
	for i := 0; i < 5; i++ {
		c.Log(i)
	}
	c.ScrollToBottom()
	c.SetLocked(true)

	c.Clear()

	if c.Len() != 0 || c.ScrollOffset() != 0 {
		t.Fatalf("after Clear len=%d offset=%d, want 0 and 0", c.Len(), c.ScrollOffset())
	}
	if s.last() != "" {
		t.Fatalf("last text = %q, want empty", s.last())
	}
	if got := s.progresses[len(s.progresses)-1]; got != 0 {
		t.Fatalf("last progress = %v, want 0", got)
	}
	if !c.Locked() {
		t.Fatal("Clear must not change the lock")
	}
}

func TestWatch_InitialValueThenPush(t *testing.T) {
	c, s := newTestConsole(t, Options{MaxLines: 5})
	handle := live.NewValue(5)

	c.Watch("x", handle)
	if s.last() != "x: 5\n" {
		t.Fatalf("first render = %q, want %q", s.last(), "x: 5\n")
	}

	handle.Set(7)
	if s.last() != "x: 7\n" {
		t.Fatalf("render after push = %q, want %q", s.last(), "x: 7\n")
	}
	if s.renders() != 2 {
		t.Fatalf("renders = %d, want 2 (initial + one push)", s.renders())
	}
}

func TestWatch_NotASignal(t *testing.T) {
	c, s := newTestConsole(t, Options{MaxLines: 5, Dedup: true})

	disposed := live.NewValue(1)
	disposed.Dispose()
	var missing *live.Value[int]

	c.Watch("gone", disposed)
	c.Watch("nil", nil)
	c.Watch("typed nil", missing)
	c.Watch("gone", disposed)

	want := []string{"> gone: [not a signal]", "> typed nil: [not a signal]", "> nil: [not a signal]", "> gone: [not a signal]"}
	if diff := cmp.Diff(want, lines(c.Text())); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
	if c.Watching() != 0 {
		t.Fatalf("Watching = %d, want 0", c.Watching())
	}
	if s.renders() != 4 {
		t.Fatalf("renders = %d, want 4", s.renders())
	}
}

func TestWatch_RendersInCallOrderAmongLogs(t *testing.T) {
	c, _ := newTestConsole(t, Options{MaxLines: 5, Dedup: true})
	c.Log("first")
	c.Watch("w", live.NewValue(true))
	c.Log("last")
	c.Log("first")

	want := []string{"> last", "w: true", "> [2] first"}
	if diff := cmp.Diff(want, lines(c.Text())); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestClear_TearsDownWatchSubscriptions(t *testing.T) {
	c, s := newTestConsole(t, Options{MaxLines: 5})
	a := live.NewValue(1)
	b := live.NewValue("x")
	c.Watch("a", a)
	c.Watch("b", b)

	c.Clear()
	if a.Subscribers() != 0 || b.Subscribers() != 0 {
		t.Fatalf("subscribers after Clear: a=%d b=%d, want 0", a.Subscribers(), b.Subscribers())
	}

	after := s.renders()
	a.Set(2)
	b.Set("y")
	if s.renders() != after {
		t.Fatalf("renders grew after Clear: %d -> %d", after, s.renders())
	}
}

// leakySource ignores Unsubscribe and keeps pushing.
type leakySource struct {
	fns []func(any)
}

func (l *leakySource) Current() (any, error) { return 0, nil }

func (l *leakySource) Subscribe(fn func(any)) live.Subscription {
	l.fns = append(l.fns, fn)
	fn(0)
	return live.SubscriptionFunc(func() {})
}

func (l *leakySource) push(v any) {
	for _, fn := range l.fns {
		fn(v)
	}
}

func TestClear_IgnoresPushesFromSourcesThatKeepFiring(t *testing.T) {
	c, s := newTestConsole(t, Options{MaxLines: 5})
	src := &leakySource{}
	c.Watch("leaky", src)
	src.push(1)
	if s.last() != "leaky: 1\n" {
		t.Fatalf("render = %q, want leaky: 1", s.last())
	}

	c.Clear()
	after := s.renders()
	src.push(2)
	if s.renders() != after {
		t.Fatalf("detached entry rendered after Clear")
	}
}

func TestDriver_RefreshesWhileWatchesExist(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := live.NewClock(start)
	c, s := newTestConsole(t, Options{MaxLines: 5, Driver: clock})

	c.Log("no watch yet")
	if clock.Subscribers() != 0 {
		t.Fatalf("driver subscribed without watches")
	}

	c.Watch("w", live.NewValue(1))
	if clock.Subscribers() != 1 {
		t.Fatalf("driver subscribers = %d, want 1", clock.Subscribers())
	}
	before := s.renders()
	clock.Tick(start.Add(time.Second))
	clock.Tick(start.Add(2 * time.Second))
	if s.renders() != before+2 {
		t.Fatalf("renders = %d, want %d", s.renders(), before+2)
	}

	c.Watch("v", live.NewValue(2))
	if clock.Subscribers() != 1 {
		t.Fatalf("second watch added a driver subscription")
	}

	c.Clear()
	if clock.Subscribers() != 0 {
		t.Fatalf("driver still subscribed after Clear")
	}
	after := s.renders()
	clock.Tick(start.Add(3 * time.Second))
	if s.renders() != after {
		t.Fatalf("driver tick rendered after Clear")
	}
}

func TestTimestamps_PrefixLines(t *testing.T) {
	c, _ := newTestConsole(t, Options{MaxLines: 5})
	c.Log("hello")
	c.Watch("w", live.NewValue(3))
	c.SetTimestamps(true)

	want := []string{"[12:30:45.123] w: 3", "[12:30:45.123] > hello"}
	if diff := cmp.Diff(want, lines(c.Text())); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
	if !c.Timestamps() {
		t.Fatal("Timestamps() = false, want true")
	}
}

func TestEntry_PendingWatchPlaceholder(t *testing.T) {
	e := newWatchEntry("idle")
	if got := e.Line(true); got != "idle: [pending]" {
		t.Fatalf("Line = %q, want %q", got, "idle: [pending]")
	}
}

func TestEntries_ExposeVariantFields(t *testing.T) {
	c, _ := newTestConsole(t, Options{MaxLines: 5, Dedup: true})
	c.Log(42)
	c.Log("hi")
	c.Log("hi")
	c.Watch("w", live.NewValue(false))

	es := c.Entries()
	if len(es) != 3 {
		t.Fatalf("Entries = %d, want 3", len(es))
	}
	if es[0].Kind() != EntryValue || es[0].Class() != KindNumber || es[0].Class().String() != "number" {
		t.Fatalf("entry 0 = kind %v class %v, want value number", es[0].Kind(), es[0].Class())
	}
	if es[1].Class() != KindString || es[1].Content() != "hi" || es[1].Count() != 2 {
		t.Fatalf("entry 1 = class %v content %q count %d, want string \"hi\" 2", es[1].Class(), es[1].Content(), es[1].Count())
	}
	if es[2].Kind() != EntryWatch || es[2].Name() != "w" || !es[2].Ready() {
		t.Fatalf("entry 2 = kind %v name %q ready %v, want ready watch w", es[2].Kind(), es[2].Name(), es[2].Ready())
	}
}

func TestObservers_Deregister(t *testing.T) {
	c := New(Options{MaxLines: 3})
	var texts, progresses int
	stopText := c.OnTextChanged(func(string) { texts++ })
	stopProgress := c.OnProgressChanged(func(float64) { progresses++ })

	c.Log("a")
	stopText()
	stopText()
	c.Log("b")
	stopProgress()
	c.Log("c")

	if texts != 1 || progresses != 2 {
		t.Fatalf("texts=%d progresses=%d, want 1 and 2", texts, progresses)
	}
	if c.onText.len() != 0 || c.onProgress.len() != 0 {
		t.Fatalf("observer lists not empty")
	}
}

func TestObservers_RemovalTakesEffectWithinPass(t *testing.T) {
	c := New(Options{MaxLines: 3})
	var calls []string
	var stopSecond func()
	c.OnTextChanged(func(string) {
		calls = append(calls, "first")
		stopSecond()
	})
	stopSecond = c.OnTextChanged(func(string) { calls = append(calls, "second") })

	c.Log("x")
	c.Log("y")
	if diff := cmp.Diff([]string{"first", "first"}, calls); diff != "" {
		t.Fatalf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestObservers_ReceiveTextBeforeProgress(t *testing.T) {
	c := New(Options{MaxLines: 3})
	var order []string
	c.OnProgressChanged(func(float64) { order = append(order, "progress") })
	c.OnTextChanged(func(string) { order = append(order, "text") })

	c.Log("x")
	if diff := cmp.Diff([]string{"text", "progress"}, order); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestClose_ReleasesSubscriptions(t *testing.T) {
	clock := live.NewClock(time.Now())
	c := New(Options{Driver: clock})
	v := live.NewValue(1)
	height := live.NewValue(4)
	c.Watch("v", v)
	c.BindMaxLines(height)

	c.Close()
	if v.Subscribers() != 0 || clock.Subscribers() != 0 || height.Subscribers() != 0 {
		t.Fatalf("subscriptions left after Close: v=%d clock=%d height=%d", v.Subscribers(), clock.Subscribers(), height.Subscribers())
	}
	if c.Len() != 1 {
		t.Fatalf("Close must keep entries, Len = %d", c.Len())
	}
}

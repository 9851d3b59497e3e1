package live

import "time"

// Clock reports elapsed milliseconds since it was started. It does not run a
// timer of its own; the host advances it from its frame tick.
type Clock struct {
	start time.Time
	ms    *Value[int64]
}

// NewClock returns a Clock reading zero at start.
func NewClock(start time.Time) *Clock {
	return &Clock{start: start, ms: NewValue[int64](0)}
}

// Tick advances the clock to now. Ticks that do not move the millisecond
// counter forward are ignored.
func (c *Clock) Tick(now time.Time) {
	elapsed := now.Sub(c.start).Milliseconds()
	if elapsed <= c.ms.Get() {
		return
	}
	c.ms.Set(elapsed)
}

// Elapsed returns the last ticked elapsed time.
func (c *Clock) Elapsed() time.Duration {
	return time.Duration(c.ms.Get()) * time.Millisecond
}

// Current implements Reader.
func (c *Clock) Current() (any, error) {
	return c.ms.Current()
}

// Subscribe implements Source.
func (c *Clock) Subscribe(fn func(any)) Subscription {
	return c.ms.Subscribe(fn)
}

// Subscribers reports how many subscriptions are following the clock.
func (c *Clock) Subscribers() int {
	return c.ms.Subscribers()
}

package console

import (
	"go.uber.org/zap"

	"github.com/five82/backscroll/internal/live"
)

// subscriptions owns the per-watch subscriptions and the shared driver.
type subscriptions struct {
	driver    live.Source
	driverSub live.Subscription
	logger    *zap.Logger
}

// onceSubscription makes Unsubscribe idempotent whatever the source does.
type onceSubscription struct {
	inner live.Subscription
	done  bool
}

func (o *onceSubscription) Unsubscribe() {
	if o.done {
		return
	}
	o.done = true
	if o.inner != nil {
		o.inner.Unsubscribe()
	}
}

// bind subscribes e to src. Pushes reach onPush until e is released.
func (s *subscriptions) bind(e *Entry, src live.Source, onPush func(*Entry, any)) {
	sub := &onceSubscription{}
	e.sub = sub
	sub.inner = src.Subscribe(func(v any) {
		if e.detached {
			return
		}
		onPush(e, v)
	})
	// The immediate delivery may have run before inner was assigned; a
	// release during that delivery is applied now.
	if e.detached && sub.inner != nil {
		sub.inner.Unsubscribe()
	}
	s.logger.Debug("watch bound", zap.String("name", e.name))
}

// release detaches e and cancels its subscription.
func (s *subscriptions) release(e *Entry) {
	if e.kind != EntryWatch {
		return
	}
	e.detached = true
	if e.sub != nil {
		e.sub.Unsubscribe()
	}
	s.logger.Debug("watch released", zap.String("name", e.name))
}

// startDriver subscribes to the shared driver if one is configured and not
// already running. The driver's immediate first delivery is skipped.
func (s *subscriptions) startDriver(onTick func()) {
	if s.driver == nil || s.driverSub != nil {
		return
	}
	primed := false
	sub := &onceSubscription{}
	s.driverSub = sub
	sub.inner = s.driver.Subscribe(func(any) {
		if !primed || sub.done {
			return
		}
		onTick()
	})
	primed = true
	s.logger.Debug("driver started")
}

// stopDriver cancels the shared driver subscription if it is running.
func (s *subscriptions) stopDriver() {
	if s.driverSub == nil {
		return
	}
	s.driverSub.Unsubscribe()
	s.driverSub = nil
	s.logger.Debug("driver stopped")
}

package live

// Value holds a comparable value and notifies subscribers when Set changes it.
type Value[T comparable] struct {
	current  T
	subs     []*subscriber
	disposed bool
}

type subscriber struct {
	fn     func(any)
	active bool
	owner  interface{ drop(*subscriber) }
}

func (s *subscriber) Unsubscribe() {
	if !s.active {
		return
	}
	s.active = false
	s.owner.drop(s)
}

// NewValue returns a Value holding initial.
func NewValue[T comparable](initial T) *Value[T] {
	return &Value[T]{current: initial}
}

// Get returns the held value.
func (v *Value[T]) Get() T {
	return v.current
}

// Set stores next and notifies subscribers if it differs from the held value.
// Set on a disposed value is a no-op.
func (v *Value[T]) Set(next T) {
	if v.disposed || next == v.current {
		return
	}
	v.current = next
	// Subscribers may unsubscribe (or subscribe) from inside a callback.
	subs := append([]*subscriber(nil), v.subs...)
	for _, s := range subs {
		if s.active {
			s.fn(next)
		}
	}
}

// Current implements Reader.
func (v *Value[T]) Current() (any, error) {
	if v.disposed {
		return nil, ErrDisposed
	}
	return v.current, nil
}

// Subscribe implements Source. Subscribing to a disposed value delivers
// nothing and returns an inert subscription.
func (v *Value[T]) Subscribe(fn func(any)) Subscription {
	s := &subscriber{fn: fn, owner: v}
	if v.disposed || fn == nil {
		return s
	}
	s.active = true
	v.subs = append(v.subs, s)
	fn(v.current)
	return s
}

// Subscribers reports how many subscriptions are active.
func (v *Value[T]) Subscribers() int {
	return len(v.subs)
}

// Dispose drops every subscriber; Current fails from then on.
func (v *Value[T]) Dispose() {
	if v.disposed {
		return
	}
	v.disposed = true
	for _, s := range v.subs {
		s.active = false
	}
	v.subs = nil
}

func (v *Value[T]) drop(target *subscriber) {
	for i, s := range v.subs {
		if s == target {
			v.subs = append(v.subs[:i], v.subs[i+1:]...)
			return
		}
	}
}

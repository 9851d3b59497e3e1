package live

import "errors"

// ErrDisposed is returned by Current once a value has been disposed.
var ErrDisposed = errors.New("live: value disposed")

// Reader exposes the current value of something that may change.
type Reader interface {
	Current() (any, error)
}

// Source is a Reader that can be followed.
type Source interface {
	Reader
	// Subscribe calls fn with the current value immediately and then with
	// every subsequent change until the subscription is cancelled.
	Subscribe(fn func(any)) Subscription
}

// Subscription is the handle returned by Source.Subscribe.
type Subscription interface {
	Unsubscribe()
}

// SubscriptionFunc adapts a plain func to Subscription.
type SubscriptionFunc func()

// Unsubscribe calls f.
func (f SubscriptionFunc) Unsubscribe() { f() }

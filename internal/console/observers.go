package console

type observer[T any] struct {
	id int
	fn func(T)
}

// observers is an ordered notification list with removable registrations.
type observers[T any] struct {
	next int
	list []observer[T]
}

func (o *observers[T]) add(fn func(T)) func() {
	if fn == nil {
		return func() {}
	}
	o.next++
	id := o.next
	o.list = append(o.list, observer[T]{id: id, fn: fn})
	return func() { o.remove(id) }
}

func (o *observers[T]) remove(id int) {
	for i, ob := range o.list {
		if ob.id == id {
			o.list = append(o.list[:i:i], o.list[i+1:]...)
			return
		}
	}
}

// notify calls every registered fn in registration order. A registration
// removed by an earlier callback in the same pass is skipped.
func (o *observers[T]) notify(v T) {
	ids := make([]int, len(o.list))
	for i, ob := range o.list {
		ids[i] = ob.id
	}
	for _, id := range ids {
		if fn := o.lookup(id); fn != nil {
			fn(v)
		}
	}
}

func (o *observers[T]) lookup(id int) func(T) {
	for _, ob := range o.list {
		if ob.id == id {
			return ob.fn
		}
	}
	return nil
}

func (o *observers[T]) len() int {
	return len(o.list)
}

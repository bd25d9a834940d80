package form

type entry[T any] struct {
	fn     func(T)
	active bool
}

// listeners is an ordered set of callbacks invoked synchronously.
type listeners[T any] struct {
	list []*entry[T]
}

func (l *listeners[T]) add(fn func(T)) func() {
	e := &entry[T]{fn: fn, active: true}
	l.list = append(l.list, e)
	return func() {
		if !e.active {
			return
		}
		e.active = false
		for i, x := range l.list {
			if x == e {
				l.list = append(l.list[:i:i], l.list[i+1:]...)
				break
			}
		}
	}
}

func (l *listeners[T]) emit(v T) {
	snapshot := append([]*entry[T](nil), l.list...)
	for _, e := range snapshot {
		if e.active {
			e.fn(v)
		}
	}
}

package evq

// Listener is a handle over one cursor in a Queue. It is not safe to
// share a single Listener between concurrent goroutines, and it must not
// be copied: Close on one copy would silently invalidate the others.
type Listener[T any] struct {
	q   *RawQueue[T]
	key ListenerKey
}

// Peek drains and returns every unread event in push order. With nothing
// pending, or on a closed listener, it returns nil.
func (l *Listener[T]) Peek() []T {
	if l.key == noKey {
		return nil
	}
	return l.q.Pull(l.key)
}

// PeekN drains and returns at most n of the earliest unread events.
// PeekN(0) reads nothing and leaves the cursor untouched.
func (l *Listener[T]) PeekN(n int) []T {
	if l.key == noKey {
		return nil
	}
	return l.q.PullN(l.key, n)
}

// With drains the unread events and hands them to f in one call.
func (l *Listener[T]) With(f func([]T)) { f(l.Peek()) }

// WithN drains at most n unread events and hands them to f in one call.
func (l *Listener[T]) WithN(n int, f func([]T)) { f(l.PeekN(n)) }

// Close removes the listener's cursor, releasing any events it alone was
// retaining. Close is idempotent; a closed listener reads empty.
func (l *Listener[T]) Close() {
	if l.key == noKey {
		return
	}
	l.q.RemoveListener(l.key)
	l.key = noKey
}

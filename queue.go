package evq

// Options configures a Queue.
type Options struct {
	// DropWithoutListeners discards pushes that arrive while no listener
	// is registered. The default retains them, which means a queue that is
	// pushed to but never listened to grows without bound; producers that
	// may run ahead of their first subscriber should set this.
	DropWithoutListeners bool
}

// Queue is the shared-ownership event buffer. Any number of holders
// (the producer and every live listener handle) may keep it reachable;
// it is reclaimed by the runtime when the last reference goes away.
type Queue[T any] struct {
	raw RawQueue[T]
}

// New creates an empty Queue with default options.
func New[T any]() *Queue[T] { return &Queue[T]{} }

// NewWithOptions creates an empty Queue with the provided options.
func NewWithOptions[T any](opts Options) *Queue[T] {
	return &Queue[T]{raw: RawQueue[T]{dropIdle: opts.DropWithoutListeners}}
}

// Push appends one event. It never fails.
func (q *Queue[T]) Push(item T) { q.raw.Push(item) }

// Extend appends each event in order.
func (q *Queue[T]) Extend(items ...T) { q.raw.Extend(items...) }

// Len reports how many events are currently retained.
func (q *Queue[T]) Len() int { return q.raw.Len() }

// IsEmpty reports whether no events are retained.
func (q *Queue[T]) IsEmpty() bool { return q.raw.IsEmpty() }

// Listeners reports how many listeners are registered.
func (q *Queue[T]) Listeners() int { return q.raw.Listeners() }

// Listen registers a new listener positioned at the current write
// position. The caller owns the handle and must Close it to release the
// cursor; until then the queue retains everything the listener has not
// read.
func (q *Queue[T]) Listen() *Listener[T] {
	return &Listener[T]{q: &q.raw, key: q.raw.CreateListener()}
}

// ListenScoped runs f with a listener that is closed on every exit path,
// including a panic inside f. Use it when the subscription should not
// outlive a lexical scope.
func (q *Queue[T]) ListenScoped(f func(*Listener[T])) {
	l := q.Listen()
	defer l.Close()
	f(l)
}

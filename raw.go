package evq

// ListenerKey identifies one registered cursor in a RawQueue. Keys are
// assigned from a per-queue counter and never reused, so a stale key from
// a removed listener can never alias a live one.
type ListenerKey uint64

// noKey is the zero ListenerKey; valid keys start at 1.
const noKey ListenerKey = 0

// RawQueue is the cursor-tracking event buffer underneath Queue. It is the
// key-based surface: callers register cursors, drain by key, and remove
// keys themselves. Most code wants Queue and its handles instead.
//
// The zero value is ready to use.
type RawQueue[T any] struct {
	items   []T
	base    uint64 // global index of items[0]
	cursors map[ListenerKey]uint64
	nextKey ListenerKey

	// dropIdle discards pushes while no cursor is registered instead of
	// retaining them indefinitely.
	dropIdle bool
}

// Push appends one event. It never fails and never trims.
func (q *RawQueue[T]) Push(item T) {
	if len(q.cursors) == 0 && q.dropIdle {
		q.base++
		return
	}
	q.items = append(q.items, item)
}

// Extend appends each event in order.
func (q *RawQueue[T]) Extend(items ...T) {
	for _, it := range items {
		q.Push(it)
	}
}

// CreateListener registers a new cursor at the current write position and
// returns its key. Events pushed before registration are never observed.
func (q *RawQueue[T]) CreateListener() ListenerKey {
	if q.cursors == nil {
		q.cursors = make(map[ListenerKey]uint64)
	}
	q.nextKey++
	key := q.nextKey
	q.cursors[key] = q.writePos()
	return key
}

// RemoveListener deletes the cursor for key and trims. Removing an unknown
// or already-removed key is a no-op, so double disposal is harmless.
func (q *RawQueue[T]) RemoveListener(key ListenerKey) {
	delete(q.cursors, key)
	q.trim()
}

// Pull returns everything between key's cursor and the current write
// position, in push order, and advances the cursor past it. A second Pull
// with no intervening Push returns nil. An unknown key reads empty.
func (q *RawQueue[T]) Pull(key ListenerKey) []T {
	cur, ok := q.cursors[key]
	if !ok {
		return nil
	}
	out := q.copyRange(cur, q.writePos())
	q.cursors[key] = q.writePos()
	q.trim()
	return out
}

// PullN returns at most n of the earliest unread events and advances the
// cursor by exactly the number returned. PullN with n <= 0 touches nothing;
// callers rely on that to probe without perturbing state.
func (q *RawQueue[T]) PullN(key ListenerKey, n int) []T {
	if n <= 0 {
		return nil
	}
	cur, ok := q.cursors[key]
	if !ok {
		return nil
	}
	end := cur + uint64(n)
	if wp := q.writePos(); end > wp {
		end = wp
	}
	out := q.copyRange(cur, end)
	q.cursors[key] = end
	q.trim()
	return out
}

// PullWith drains key's unread events and hands them to f in one call.
// f runs exactly once, with a nil slice when nothing is pending.
func (q *RawQueue[T]) PullWith(key ListenerKey, f func([]T)) {
	f(q.Pull(key))
}

// Len reports how many events are currently retained.
func (q *RawQueue[T]) Len() int { return len(q.items) }

// IsEmpty reports whether no events are retained.
func (q *RawQueue[T]) IsEmpty() bool { return len(q.items) == 0 }

// Listeners reports how many cursors are registered.
func (q *RawQueue[T]) Listeners() int { return len(q.cursors) }

func (q *RawQueue[T]) writePos() uint64 { return q.base + uint64(len(q.items)) }

func (q *RawQueue[T]) copyRange(from, to uint64) []T {
	if to <= from {
		return nil
	}
	out := make([]T, to-from)
	copy(out, q.items[from-q.base:to-q.base])
	return out
}

// trim drops the prefix every cursor has passed. With no cursors the
// buffer is left alone unless dropIdle is set, in which case nothing
// retained is readable anymore and it all goes.
func (q *RawQueue[T]) trim() {
	if len(q.cursors) == 0 {
		if q.dropIdle && len(q.items) > 0 {
			q.base += uint64(len(q.items))
			clear(q.items)
			q.items = q.items[:0]
		}
		return
	}
	min := q.writePos()
	for _, c := range q.cursors {
		if c < min {
			min = c
		}
	}
	if min == q.base {
		return
	}
	n := min - q.base
	kept := copy(q.items, q.items[n:])
	// Zero the tail so released events do not pin referents.
	clear(q.items[kept:])
	q.items = q.items[:kept]
	q.base = min
}

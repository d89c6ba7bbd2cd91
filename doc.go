// Package evq implements in-process, single-owner event distribution.
//
// # Overview
//
// The core is an append-only buffer with one read cursor per listener.
// Every listener drains independently; an item is released once every
// active cursor has passed it. Three primitives share the same read
// vocabulary (Peek, PeekN, With, WithN, plus the package-level Map and
// MapN functions):
//
//   - RawQueue / Queue: the multi-listener event buffer itself.
//   - Bidir / Secondary: a single-slot, two-direction mailbox pair for
//     1:1 request/reply, where each new Emit overwrites the pending value.
//   - Merge: treats several sources as one concatenated drain.
//
// API surface
//
//	q := evq.New[int]()
//	q.Push(0)                 // pushed before Listen; never observed below
//	l := q.Listen()
//	defer l.Close()
//	q.Push(1)
//	q.Push(2)
//	l.With(func(items []int) { /* items == [1 2] */ })
//
//	ch := evq.NewBidir[string, string]()
//	sec := ch.Secondary()
//	ch.Emit("ping")
//	sec.Bounce(func(s string) (string, bool) { return s + "/pong", true })
//	reply, ok := ch.RetrieveNewest() // "ping/pong", true
//
//	m := evq.Merge[int]{l1, l2}
//	m.With(func(items []int) { /* l1's drain, then l2's */ })
//
// # Ownership and concurrency
//
// None of these types are safe for concurrent mutation; confine a queue
// and its listeners to one goroutine at a time. The Bidir cell carries a
// mutex so its two ends may live on either side of a synchronous
// hand-off, but it is not a general multi-writer channel. No operation
// blocks; every call completes before returning.
//
// A Listener must be closed to release its cursor; until then the queue
// retains everything the listener has not read. Close is idempotent and
// a closed listener reads empty. ListenScoped closes the handle on every
// exit path, including panics.
package evq

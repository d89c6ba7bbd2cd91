package evq

import "sync"

// bidirCell is the single shared state behind both ends of a Bidir pair:
// one pending slot per direction, guarded by one mutex. A slot holds at
// most one value; writing replaces whatever was still unconsumed.
type bidirCell[P, S any] struct {
	mu          sync.Mutex
	toPrimary   *P
	toSecondary *S
}

// Bidir is the primary end of a single-slot bidirectional mailbox pair,
// designed for 1:1 request/reply. The first type parameter is what this
// end receives, the second what the secondary end receives.
//
// Each direction buffers exactly one value: a new Emit overwrites any
// value the other end has not yet consumed. The shared cell is mutex
// guarded so the two ends may live across a synchronous hand-off, but
// the pair still assumes one active user per direction at a time.
type Bidir[P, S any] struct {
	cell *bidirCell[P, S]
}

// Secondary is the mirror end of a Bidir pair: it receives S and emits P.
type Secondary[P, S any] struct {
	cell *bidirCell[P, S]
}

// NewBidir creates a mailbox pair with both slots empty.
func NewBidir[P, S any]() *Bidir[P, S] {
	return &Bidir[P, S]{cell: &bidirCell[P, S]{}}
}

// Secondary returns the other end of the pair. Every call returns a view
// over the same shared cell, never an independent copy.
func (b *Bidir[P, S]) Secondary() *Secondary[P, S] {
	return &Secondary[P, S]{cell: b.cell}
}

// Emit places v in the secondary-bound slot, replacing any unconsumed
// previous value.
func (b *Bidir[P, S]) Emit(v S) { slotPut(&b.cell.mu, &b.cell.toSecondary, v) }

// RetrieveNewest takes and clears the pending inbound value, if any.
func (b *Bidir[P, S]) RetrieveNewest() (P, bool) {
	return slotTake(&b.cell.mu, &b.cell.toPrimary)
}

// Bounce atomically consumes the pending inbound value and, if f returns
// a reply, places it in the outbound slot (replacing any unconsumed
// value there). With no inbound value, or when f declines, the outbound
// slot is left untouched.
func (b *Bidir[P, S]) Bounce(f func(P) (S, bool)) {
	slotBounce(&b.cell.mu, &b.cell.toPrimary, &b.cell.toSecondary, f)
}

// OutboundPending reports whether the value this end last emitted is
// still unconsumed.
func (b *Bidir[P, S]) OutboundPending() bool {
	return slotOccupied(&b.cell.mu, &b.cell.toSecondary)
}

// Peek drains the inbound slot, returning zero or one value. The pair
// behaves like a capacity-1 Queue on the read side.
func (b *Bidir[P, S]) Peek() []P { return slotPeek(&b.cell.mu, &b.cell.toPrimary) }

// PeekN behaves like Peek for any n > 0; at most one value can ever be
// pending. PeekN(0) reads nothing and leaves the slot untouched.
func (b *Bidir[P, S]) PeekN(n int) []P {
	if n <= 0 {
		return nil
	}
	return b.Peek()
}

// With drains the inbound slot and hands the result to f in one call.
func (b *Bidir[P, S]) With(f func([]P)) { f(b.Peek()) }

// WithN drains at most n inbound values and hands them to f in one call.
func (b *Bidir[P, S]) WithN(n int, f func([]P)) { f(b.PeekN(n)) }

// Emit places v in the primary-bound slot, replacing any unconsumed
// previous value.
func (s *Secondary[P, S]) Emit(v P) { slotPut(&s.cell.mu, &s.cell.toPrimary, v) }

// RetrieveNewest takes and clears the pending inbound value, if any.
func (s *Secondary[P, S]) RetrieveNewest() (S, bool) {
	return slotTake(&s.cell.mu, &s.cell.toSecondary)
}

// Bounce mirrors Bidir.Bounce with the directions swapped.
func (s *Secondary[P, S]) Bounce(f func(S) (P, bool)) {
	slotBounce(&s.cell.mu, &s.cell.toSecondary, &s.cell.toPrimary, f)
}

// OutboundPending reports whether the value this end last emitted is
// still unconsumed.
func (s *Secondary[P, S]) OutboundPending() bool {
	return slotOccupied(&s.cell.mu, &s.cell.toPrimary)
}

// Peek drains the inbound slot, returning zero or one value.
func (s *Secondary[P, S]) Peek() []S { return slotPeek(&s.cell.mu, &s.cell.toSecondary) }

// PeekN behaves like Peek for any n > 0; PeekN(0) touches nothing.
func (s *Secondary[P, S]) PeekN(n int) []S {
	if n <= 0 {
		return nil
	}
	return s.Peek()
}

// With drains the inbound slot and hands the result to f in one call.
func (s *Secondary[P, S]) With(f func([]S)) { f(s.Peek()) }

// WithN drains at most n inbound values and hands them to f in one call.
func (s *Secondary[P, S]) WithN(n int, f func([]S)) { f(s.PeekN(n)) }

// The two ends are structurally identical with the slots swapped, so the
// slot operations are implemented once and each end adapts direction.

func slotPut[V any](mu *sync.Mutex, slot **V, v V) {
	mu.Lock()
	defer mu.Unlock()
	*slot = &v
}

func slotTake[V any](mu *sync.Mutex, slot **V) (V, bool) {
	mu.Lock()
	defer mu.Unlock()
	if *slot == nil {
		var zero V
		return zero, false
	}
	v := **slot
	*slot = nil
	return v, true
}

func slotPeek[V any](mu *sync.Mutex, slot **V) []V {
	if v, ok := slotTake(mu, slot); ok {
		return []V{v}
	}
	return nil
}

func slotOccupied[V any](mu *sync.Mutex, slot **V) bool {
	mu.Lock()
	defer mu.Unlock()
	return *slot != nil
}

func slotBounce[In, Out any](mu *sync.Mutex, in **In, out **Out, f func(In) (Out, bool)) {
	mu.Lock()
	defer mu.Unlock()
	if *in == nil {
		return
	}
	v := **in
	*in = nil
	if reply, ok := f(v); ok {
		*out = &reply
	}
}

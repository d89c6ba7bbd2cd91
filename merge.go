package evq

// Merge presents an ordered collection of sources as one drain. Results
// are grouped by source position, then by original push order within
// each source; emissions from different sources are never interleaved by
// emission time. A Merge is itself a Source, so merges nest.
//
// A Merge holds no state of its own; construct one ad hoc for a combined
// read and let it go.
type Merge[T any] []Source[T]

// Peek drains every source in collection order and returns the
// concatenation.
func (m Merge[T]) Peek() []T {
	var out []T
	for _, src := range m {
		out = append(out, src.Peek()...)
	}
	return out
}

// PeekN drains sources in collection order until n events have been
// collected, leaving later sources untouched. PeekN(0) reads nothing.
func (m Merge[T]) PeekN(n int) []T {
	if n <= 0 {
		return nil
	}
	var out []T
	for _, src := range m {
		if len(out) == n {
			break
		}
		out = append(out, src.PeekN(n-len(out))...)
	}
	return out
}

// With drains every source and hands the concatenation to f in one call.
func (m Merge[T]) With(f func([]T)) { f(m.Peek()) }

// WithN drains at most n events and hands them to f in one call.
func (m Merge[T]) WithN(n int, f func([]T)) { f(m.PeekN(n)) }

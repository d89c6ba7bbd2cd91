package evq

// Source is the read capability shared by Listener, both ends of a
// Bidir, and Merge. Peek drains everything pending; PeekN drains at most
// n, with PeekN(0) guaranteed to touch nothing.
type Source[T any] interface {
	Peek() []T
	PeekN(n int) []T
}

// Map drains src and applies f to each event, returning the results in
// drain order. Go methods cannot introduce type parameters, so the
// element-wise transforms live here rather than on the handles.
func Map[T, R any](src Source[T], f func(T) R) []R {
	return apply(src.Peek(), f)
}

// MapN drains at most n events from src and applies f to each.
// MapN(src, 0, f) reads nothing and leaves src untouched.
func MapN[T, R any](src Source[T], n int, f func(T) R) []R {
	if n <= 0 {
		return nil
	}
	return apply(src.PeekN(n), f)
}

func apply[T, R any](items []T, f func(T) R) []R {
	if len(items) == 0 {
		return nil
	}
	out := make([]R, len(items))
	for i, it := range items {
		out[i] = f(it)
	}
	return out
}

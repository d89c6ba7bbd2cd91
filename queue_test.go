package evq

import "testing"

func TestListenerSkipsHistory(t *testing.T) {
	q := New[int]()
	q.Push(0)

	l := q.Listen()
	defer l.Close()

	q.Extend(1, 2, 3)

	if got := l.Peek(); len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("peek: %v", got)
	}
}

func TestQueueCleanup(t *testing.T) {
	q := New[int]()

	l1 := q.Listen()
	q.Push(10)
	if q.Len() != 1 {
		t.Fatalf("retained=%d, want 1", q.Len())
	}

	l2 := q.Listen()
	q.Push(20)

	if got := l1.Peek(); len(got) != 2 || got[0] != 10 || got[1] != 20 {
		t.Fatalf("l1 peek: %v", got)
	}
	if got := l2.Peek(); len(got) != 1 || got[0] != 20 {
		t.Fatalf("l2 peek: %v", got)
	}
	if got := l2.Peek(); got != nil {
		t.Fatalf("l2 second peek: %v", got)
	}
	if got := l2.Peek(); got != nil {
		t.Fatalf("l2 third peek: %v", got)
	}
	if q.Len() != 0 {
		t.Fatalf("retained=%d after full drain, want 0", q.Len())
	}

	for i := 0; i < 10; i++ {
		q.Push(30)
	}
	got := l2.Peek()
	if len(got) != 10 {
		t.Fatalf("l2 burst peek: %v", got)
	}
	for _, v := range got {
		if v != 30 {
			t.Fatalf("l2 burst peek: %v", got)
		}
	}

	// l1 never read the burst; closing it releases the backlog.
	l1.Close()
	if q.Len() != 0 {
		t.Fatalf("retained=%d after close, want 0", q.Len())
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	q := New[int]()
	l1 := q.Listen()
	l2 := q.Listen()
	q.Push(1)

	l1.Close()
	l1.Close()
	if q.Listeners() != 1 {
		t.Fatalf("listeners=%d, want 1", q.Listeners())
	}
	if got := l1.Peek(); got != nil {
		t.Fatalf("closed listener peeked %v", got)
	}
	if got := l2.Peek(); len(got) != 1 {
		t.Fatalf("survivor peek: %v", got)
	}
}

func TestListenScopedClosesOnPanic(t *testing.T) {
	q := New[int]()
	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected panic to propagate")
			}
		}()
		q.ListenScoped(func(l *Listener[int]) {
			q.Push(1)
			panic("boom")
		})
	}()
	if q.Listeners() != 0 {
		t.Fatalf("listeners=%d after panic, want 0", q.Listeners())
	}
	if q.Len() != 0 {
		t.Fatalf("retained=%d after scoped exit, want 0", q.Len())
	}
}

func TestListenScopedNormalExit(t *testing.T) {
	q := New[string]()
	q.ListenScoped(func(l *Listener[string]) {
		q.Push("a")
		q.Push("b")
		if got := l.Peek(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
			t.Fatalf("scoped peek: %v", got)
		}
	})
	if q.Listeners() != 0 {
		t.Fatalf("listeners=%d, want 0", q.Listeners())
	}
}

func TestWithAndWithN(t *testing.T) {
	q := New[int]()
	l := q.Listen()
	defer l.Close()
	q.Extend(1, 2, 3)

	l.WithN(0, func(items []int) {
		if items != nil {
			t.Fatalf("WithN(0): %v", items)
		}
	})
	l.WithN(2, func(items []int) {
		if len(items) != 2 || items[0] != 1 || items[1] != 2 {
			t.Fatalf("WithN(2): %v", items)
		}
	})
	l.With(func(items []int) {
		if len(items) != 1 || items[0] != 3 {
			t.Fatalf("With: %v", items)
		}
	})
}

func TestMapOverListener(t *testing.T) {
	q := New[int]()
	l := q.Listen()
	defer l.Close()
	q.Extend(1, 2, 3)

	if got := MapN(l, 0, func(v int) int { return v * 10 }); got != nil {
		t.Fatalf("MapN(0): %v", got)
	}
	got := Map(l, func(v int) string {
		if v == 1 {
			return "one"
		}
		return "many"
	})
	if len(got) != 3 || got[0] != "one" || got[1] != "many" {
		t.Fatalf("Map: %v", got)
	}
	if got := Map(l, func(v int) int { return v }); got != nil {
		t.Fatalf("Map after drain: %v", got)
	}
}

func TestDropWithoutListenersOption(t *testing.T) {
	q := NewWithOptions[int](Options{DropWithoutListeners: true})
	q.Extend(1, 2, 3)
	if q.Len() != 0 {
		t.Fatalf("retained=%d, want 0", q.Len())
	}
	l := q.Listen()
	defer l.Close()
	q.Push(4)
	if got := l.Peek(); len(got) != 1 || got[0] != 4 {
		t.Fatalf("peek: %v", got)
	}
}

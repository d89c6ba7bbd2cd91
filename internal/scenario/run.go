package scenario

import (
	"fmt"
	"sort"
	"time"

	"github.com/rzbill/evq"
	"github.com/rzbill/evq/pkg/log"
)

// Result reports one completed case.
type Result struct {
	Case       string
	Iterations int
	Elapsed    time.Duration
}

// PerOp returns the mean time per iteration.
func (r Result) PerOp() time.Duration {
	if r.Iterations == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Iterations)
}

type caseFunc func(cfg Config) error

var cases = map[string]caseFunc{
	"listener-peek": runListenerPeek,
	"listener-with": runListenerWith,
	"cleanup":       runCleanup,
	"raw-pull-with": runRawPullWith,
	"bidir-bounce":  runBidirBounce,
	"merge-with":    runMergeWith,
	"merge-map":     runMergeMap,
}

// CaseNames returns the known case names, sorted.
func CaseNames() []string {
	names := make([]string, 0, len(cases))
	for name := range cases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run executes the configured cases and returns one Result per case.
func Run(cfg Config, logger log.Logger) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(cfg.Cases))
	for _, name := range cfg.Cases {
		fn := cases[name]
		logger.Debug("case starting", log.Str("case", name), log.Int("iterations", cfg.Iterations))
		start := time.Now()
		for i := 0; i < cfg.Iterations; i++ {
			if err := fn(cfg); err != nil {
				return results, fmt.Errorf("case %s, iteration %d: %w", name, i, err)
			}
		}
		res := Result{Case: name, Iterations: cfg.Iterations, Elapsed: time.Since(start)}
		logger.Info("case complete",
			log.Str("case", name),
			log.Int("iterations", res.Iterations),
			log.Dur("elapsed", res.Elapsed),
			log.Dur("per_op", res.PerOp()),
		)
		results = append(results, res)
	}
	return results, nil
}

func runListenerPeek(cfg Config) error {
	q := evq.New[int]()
	q.Push(-1)
	l := q.Listen()
	defer l.Close()
	for i := 0; i < cfg.Burst; i++ {
		q.Push(i)
	}
	if got := l.Peek(); len(got) != cfg.Burst {
		return fmt.Errorf("peeked %d events, want %d", len(got), cfg.Burst)
	}
	return nil
}

func runListenerWith(cfg Config) error {
	q := evq.New[int]()
	q.Push(-1)
	l := q.Listen()
	defer l.Close()
	for i := 0; i < cfg.Burst; i++ {
		q.Push(i)
	}
	var n int
	l.With(func(items []int) { n = len(items) })
	if n != cfg.Burst {
		return fmt.Errorf("observed %d events, want %d", n, cfg.Burst)
	}
	return nil
}

func runCleanup(cfg Config) error {
	q := evq.New[int]()
	l1 := q.Listen()
	q.Push(10)
	l2 := q.Listen()
	q.Push(20)

	if got := l1.Peek(); len(got) != 2 {
		return fmt.Errorf("l1 drained %d events, want 2", len(got))
	}
	if got := l2.Peek(); len(got) != 1 {
		return fmt.Errorf("l2 drained %d events, want 1", len(got))
	}
	for i := 0; i < cfg.Burst; i++ {
		q.Push(30)
	}
	if got := l2.Peek(); len(got) != cfg.Burst {
		return fmt.Errorf("l2 burst drained %d events, want %d", len(got), cfg.Burst)
	}
	l1.Close()
	if q.Len() != 0 {
		return fmt.Errorf("%d events retained after close, want 0", q.Len())
	}
	l2.Close()
	return nil
}

func runRawPullWith(cfg Config) error {
	var q evq.RawQueue[int]
	k1 := q.CreateListener()
	q.Push(10)
	k2 := q.CreateListener()
	q.Push(20)

	var err error
	q.PullWith(k1, func(items []int) {
		if len(items) != 2 {
			err = fmt.Errorf("k1 drained %d events, want 2", len(items))
		}
	})
	if err != nil {
		return err
	}
	for i := 0; i < cfg.Burst; i++ {
		q.Push(30)
	}
	q.PullWith(k2, func(items []int) {
		if len(items) != cfg.Burst+1 {
			err = fmt.Errorf("k2 drained %d events, want %d", len(items), cfg.Burst+1)
		}
	})
	if err != nil {
		return err
	}
	q.RemoveListener(k1)
	q.RemoveListener(k2)
	return nil
}

func runBidirBounce(cfg Config) error {
	ch := evq.NewBidir[int, int]()
	sec := ch.Secondary()

	// Overwrites collapse the burst to the newest value.
	for i := 1; i <= cfg.Burst; i++ {
		ch.Emit(i)
	}
	if got, ok := sec.RetrieveNewest(); !ok || got != cfg.Burst {
		return fmt.Errorf("retrieved %d (ok=%v), want %d", got, ok, cfg.Burst)
	}
	sec.Emit(4)
	ch.Bounce(func(x int) (int, bool) { return x + 1, true })
	if got, ok := sec.RetrieveNewest(); !ok || got != 5 {
		return fmt.Errorf("bounce reply %d (ok=%v), want 5", got, ok)
	}
	return nil
}

func mergedListeners(cfg Config) ([]*evq.Queue[int], evq.Merge[int], int) {
	queues := make([]*evq.Queue[int], cfg.Sources)
	m := make(evq.Merge[int], cfg.Sources)
	for i := range queues {
		queues[i] = evq.New[int]()
		m[i] = queues[i].Listen()
	}
	// Interleave pushes round-robin across the sources.
	total := cfg.Sources * 2
	for i := 0; i < total; i++ {
		queues[i%cfg.Sources].Push(i)
	}
	return queues, m, total
}

func closeMerged(m evq.Merge[int]) {
	for _, src := range m {
		src.(*evq.Listener[int]).Close()
	}
}

func runMergeWith(cfg Config) error {
	_, m, total := mergedListeners(cfg)
	defer closeMerged(m)
	var err error
	m.With(func(items []int) {
		if len(items) != total {
			err = fmt.Errorf("merged %d events, want %d", len(items), total)
		}
	})
	return err
}

func runMergeMap(cfg Config) error {
	_, m, total := mergedListeners(cfg)
	defer closeMerged(m)
	got := evq.Map(m, func(v int) int { return v * 2 })
	if len(got) != total {
		return fmt.Errorf("mapped %d events, want %d", len(got), total)
	}
	return nil
}

// Package demo provides the evq demo subcommand, a narrated walk-through
// of the queue, bidir, and merge primitives.
package demo

import (
	"github.com/rzbill/evq"
	"github.com/rzbill/evq/pkg/log"
	"github.com/spf13/cobra"
)

// NewCommand builds the demo command.
func NewCommand(logger log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through queue draining, reclamation, bounce, and merge",
		Run: func(cmd *cobra.Command, args []string) {
			run(logger.WithComponent("demo"))
		},
	}
}

func run(l log.Logger) {
	q := evq.New[int]()

	l1 := q.Listen()
	q.Push(10)
	l.Info("pushed with one listener", log.Int("retained", q.Len()))

	l2 := q.Listen()
	q.Push(20)

	l.Info("listener 1 drains both", log.Int("count", len(l1.Peek())))
	l.Info("listener 2 only sees events after it subscribed", log.Int("count", len(l2.Peek())))
	l.Info("everything consumed", log.Int("retained", q.Len()))

	for i := 0; i < 10; i++ {
		q.Push(30)
	}
	l.Info("burst pushed; listener 1 has not read it", log.Int("retained", q.Len()))
	l2.Peek()
	l1.Close()
	l.Info("slowest listener closed; backlog reclaimed", log.Int("retained", q.Len()))
	l2.Close()

	ch := evq.NewBidir[int, int]()
	sec := ch.Secondary()
	ch.Emit(1)
	ch.Emit(2)
	ch.Emit(3)
	newest, _ := sec.RetrieveNewest()
	l.Info("single-slot channel keeps only the newest", log.Int("value", newest))
	sec.Emit(4)
	ch.Bounce(func(x int) (int, bool) { return x + 1, true })
	reply, _ := sec.RetrieveNewest()
	l.Info("bounce consumed the request and replied", log.Int("value", reply))

	qa := evq.New[int]()
	qb := evq.New[int]()
	la := qa.Listen()
	defer la.Close()
	lb := qb.Listen()
	defer lb.Close()
	qa.Push(0)
	qb.Push(1)
	qa.Push(2)
	qb.Push(3)
	merged := evq.Merge[int]{la, lb}.Peek()
	l.Info("merge groups by source, not by emission time", log.Str("order", order(merged)))
}

func order(items []int) string {
	out := make([]byte, 0, len(items)*2)
	for i, v := range items {
		if i > 0 {
			out = append(out, ',')
		}
		out = append(out, byte('0'+v))
	}
	return string(out)
}

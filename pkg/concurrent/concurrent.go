package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/zeusync/tickcore/pkg/sequence"
)

// Task is a long-running job that returns when ctx is done or it fails.
type Task func(ctx context.Context) error

// Supervise runs every task in its own goroutine with a shared context. The
// first failure cancels the rest, and its error is returned once all tasks
// have exited. Nil tasks are skipped.
func Supervise(ctx context.Context, tasks ...Task) error {
	g, ctx := errgroup.WithContext(ctx)

	for task := range sequence.From(tasks).Filter(func(t Task) bool { return t != nil }).Seq() {
		g.Go(func() error {
			return task(ctx)
		})
	}

	return g.Wait()
}

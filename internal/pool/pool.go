// Package pool executes independent per-file search tasks with bounded
// concurrency.
package pool

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/semaphore"

	"fileseek/internal/types"
)

// DefaultWorkers is the number of concurrent tasks when none is set.
const DefaultWorkers = 4

// Task inspects one file and returns its match records. A returned
// error marks the file as skipped; it never fails the batch. Anything
// worse than an I/O or decode problem should panic instead of being
// disguised as a skip.
type Task[T any] func(ctx context.Context, path string) ([]T, error)

// Pool bounds how many tasks run at once. A Pool is cheap and scoped to
// a single request; it holds no background goroutines between runs.
type Pool struct {
	workers int64
	log     *slog.Logger
}

// New creates a Pool with the given concurrency, defaulting to
// DefaultWorkers when workers is not positive.
func New(workers int, log *slog.Logger) *Pool {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if log == nil {
		log = slog.Default()
	}
	return &Pool{workers: int64(workers), log: log}
}

// Run drains paths, executing task with at most the pool's worker count
// in flight, and blocks until every submitted task has finished. Match
// order is task completion order. Failed tasks are absorbed into Skip
// records; sibling tasks keep running. On context cancellation the
// remaining paths are drained without being executed so the producer
// can exit.
func Run[T any](ctx context.Context, p *Pool, paths <-chan string, task Task[T]) ([]T, []types.Skip) {
	sem := semaphore.NewWeighted(p.workers)

	var (
		mu      sync.Mutex
		matches []T
		skipped []types.Skip
		wg      sync.WaitGroup
	)

	for path := range paths {
		if err := sem.Acquire(ctx, 1); err != nil {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			records, err := task(ctx, path)
			if err != nil {
				p.log.Debug("skipping file", "path", path, "error", err)
				mu.Lock()
				skipped = append(skipped, types.Skip{File: path, Reason: err.Error()})
				mu.Unlock()
				return
			}
			if len(records) == 0 {
				return
			}
			mu.Lock()
			matches = append(matches, records...)
			mu.Unlock()
		}()
	}

	wg.Wait()
	return matches, skipped
}

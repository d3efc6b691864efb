package pool

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"
)

func feed(paths ...string) <-chan string {
	ch := make(chan string, len(paths))
	for _, p := range paths {
		ch <- p
	}
	close(ch)
	return ch
}

func TestRun_CollectsAllMatches(t *testing.T) {
	p := New(4, nil)
	paths := feed("a", "b", "c", "d", "e")

	matches, skipped := Run(context.Background(), p, paths, func(ctx context.Context, path string) ([]string, error) {
		return []string{path + ":1", path + ":2"}, nil
	})

	if len(matches) != 10 {
		t.Errorf("got %d matches, want 10", len(matches))
	}
	if len(skipped) != 0 {
		t.Errorf("got %d skips, want 0", len(skipped))
	}
}

func TestRun_BoundsConcurrency(t *testing.T) {
	const workers = 2
	p := New(workers, nil)

	var inFlight, peak atomic.Int32
	paths := make(chan string, 16)
	for i := range 16 {
		paths <- fmt.Sprintf("file-%d", i)
	}
	close(paths)

	Run(context.Background(), p, paths, func(ctx context.Context, path string) ([]int, error) {
		n := inFlight.Add(1)
		for {
			old := peak.Load()
			if n <= old || peak.CompareAndSwap(old, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return nil, nil
	})

	if got := peak.Load(); got > workers {
		t.Errorf("peak concurrency = %d, want <= %d", got, workers)
	}
}

func TestRun_FailedTaskBecomesSkip(t *testing.T) {
	p := New(4, nil)
	paths := feed("good", "bad", "also-good")

	matches, skipped := Run(context.Background(), p, paths, func(ctx context.Context, path string) ([]string, error) {
		if path == "bad" {
			return nil, errors.New("unreadable")
		}
		return []string{path}, nil
	})

	if len(matches) != 2 {
		t.Errorf("got %d matches, want 2", len(matches))
	}
	if len(skipped) != 1 {
		t.Fatalf("got %d skips, want 1", len(skipped))
	}
	if skipped[0].File != "bad" || skipped[0].Reason != "unreadable" {
		t.Errorf("skip = %+v, want {bad unreadable}", skipped[0])
	}
}

func TestRun_CanceledContextDrainsProducer(t *testing.T) {
	p := New(1, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	paths := feed("a", "b", "c")
	var ran atomic.Int32
	matches, _ := Run(ctx, p, paths, func(ctx context.Context, path string) ([]string, error) {
		ran.Add(1)
		return []string{path}, nil
	})

	if got := ran.Load(); got != 0 {
		t.Errorf("tasks ran after cancellation: %d", got)
	}
	if len(matches) != 0 {
		t.Errorf("got %d matches, want 0", len(matches))
	}
}

func TestRun_DefaultWorkers(t *testing.T) {
	p := New(0, nil)
	if p.workers != DefaultWorkers {
		t.Errorf("workers = %d, want %d", p.workers, DefaultWorkers)
	}
}

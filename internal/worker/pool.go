// Package worker runs independent per-article jobs across a bounded
// set of goroutines. Jobs never share mutable state; each produces its
// own result, so the pool needs no coordination beyond the channels.
package worker

import (
	"context"
	"sync"
)

// indexed pairs a job or result with its position in the input slice.
type indexed[T any] struct {
	pos int
	val T
}

// Pool fans a slice of jobs out to a fixed number of workers and
// collects one result per job.
type Pool[J, R any] struct {
	workers int
	run     func(context.Context, J) R
}

// NewPool creates a pool. A non-positive worker count falls back to a
// single worker.
func NewPool[J, R any](workers int, run func(context.Context, J) R) *Pool[J, R] {
	if workers <= 0 {
		workers = 1
	}
	return &Pool[J, R]{workers: workers, run: run}
}

// Run executes all jobs and returns their results in input order.
// Cancelling the context stops feeding new jobs; in-flight jobs
// finish, so the returned slice is always a prefix of the input and
// callers detect a truncated run by comparing lengths.
func (p *Pool[J, R]) Run(ctx context.Context, jobs []J) []R {
	jobCh := make(chan indexed[J])
	resCh := make(chan indexed[R])

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobCh {
				resCh <- indexed[R]{pos: job.pos, val: p.run(ctx, job.val)}
			}
		}()
	}

	go func() {
		defer close(jobCh)
		for i, job := range jobs {
			if ctx.Err() != nil {
				return
			}
			select {
			case jobCh <- indexed[J]{pos: i, val: job}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resCh)
	}()

	// Jobs are fed in order, so completed positions form a prefix of
	// the input even when workers finish out of order.
	results := make([]R, len(jobs))
	done := 0
	for r := range resCh {
		results[r.pos] = r.val
		done++
	}
	return results[:done]
}

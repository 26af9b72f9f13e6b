package worker

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
)

type countJob struct {
	counter *atomic.Int64
	fail    bool
}

type countResult struct {
	err error
}

func (r *countResult) GetError() error { return r.err }

func (j *countJob) Execute(ctx context.Context) Result {
	j.counter.Add(1)
	if j.fail {
		return &countResult{err: fmt.Errorf("job failed")}
	}
	return &countResult{}
}

func TestPool_RunsAllJobs(t *testing.T) {
	var counter atomic.Int64

	pool := NewPool(4)
	pool.Start()

	const jobs = 8
	for i := 0; i < jobs; i++ {
		pool.Submit(&countJob{counter: &counter})
	}

	results := pool.Wait()

	if counter.Load() != jobs {
		t.Errorf("executed %d jobs, want %d", counter.Load(), jobs)
	}
	if len(results) != jobs {
		t.Errorf("got %d results, want %d", len(results), jobs)
	}
}

func TestPool_CollectsErrors(t *testing.T) {
	var counter atomic.Int64

	pool := NewPool(2)
	pool.Start()

	pool.Submit(&countJob{counter: &counter})
	pool.Submit(&countJob{counter: &counter, fail: true})
	pool.Submit(&countJob{counter: &counter})

	results := pool.Wait()

	failed := 0
	for _, r := range results {
		if r.GetError() != nil {
			failed++
		}
	}
	if failed != 1 {
		t.Errorf("got %d failed results, want 1", failed)
	}
}

func TestPool_ZeroWorkersClamped(t *testing.T) {
	var counter atomic.Int64

	pool := NewPool(0)
	pool.Start()
	pool.Submit(&countJob{counter: &counter})

	if results := pool.Wait(); len(results) != 1 {
		t.Errorf("got %d results, want 1", len(results))
	}
}

func TestPool_NoJobs(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	if results := pool.Wait(); len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}

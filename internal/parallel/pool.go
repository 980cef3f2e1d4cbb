// Package parallel provides a small fixed-size worker pool, trimmed
// down from a considerably larger elastic worker-pool toolkit found in
// the teacher repository (dynamic scaling, work stealing, rate
// limiting, backpressure, deadlock detection). None of that machinery
// fits this module's concurrency model: spec.md §5 asks only for
// optional, narrow parallelism across disjoint chart cells within a
// single bounded parse run, not an elastic job queue serving
// long-running or bursty workloads. What survives here is the part
// that does fit: a bounded set of goroutines draining a task channel,
// with panic recovery so one bad task cannot take the pool down.
package parallel

import (
	"context"
	"errors"
	"sync"
)

// ErrPoolShutdown is returned by Submit once the pool has been shut
// down.
var ErrPoolShutdown = errors.New("parallel: pool is shut down")

// Task is a unit of work submitted to a WorkerPool.
type Task func(ctx context.Context)

// WorkerPool runs submitted tasks across a fixed number of goroutines.
type WorkerPool struct {
	tasks    chan Task
	wg       sync.WaitGroup
	once     sync.Once
	shutdown chan struct{}
}

// NewWorkerPool starts a pool with the given number of workers and
// task queue depth.
func NewWorkerPool(workers, queueDepth int) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	if queueDepth < 1 {
		queueDepth = workers
	}
	p := &WorkerPool{
		tasks:    make(chan Task, queueDepth),
		shutdown: make(chan struct{}),
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		p.run(task)
	}
}

func (p *WorkerPool) run(task Task) {
	defer func() {
		_ = recover() // a panicking task must not take the whole pool down
	}()
	task(context.Background())
}

// Submit enqueues task, blocking until there is room or ctx is done.
// It returns ErrPoolShutdown if the pool has already been shut down.
func (p *WorkerPool) Submit(ctx context.Context, task Task) error {
	select {
	case <-p.shutdown:
		return ErrPoolShutdown
	default:
	}
	select {
	case p.tasks <- task:
		return nil
	case <-p.shutdown:
		return ErrPoolShutdown
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown closes the task queue and waits for in-flight tasks to
// drain. Safe to call more than once.
func (p *WorkerPool) Shutdown() {
	p.once.Do(func() {
		close(p.shutdown)
		close(p.tasks)
	})
	p.wg.Wait()
}

// Package pool runs password hashing and verification on a fixed pool of
// worker goroutines.
//
// The pwhash providers are deliberately CPU- and memory-intensive, blocking
// operations with no cancellation point.  Under concurrent load (a login
// endpoint, a bulk import) running them inline can monopolize every core.
// A [Dispatcher] bounds that work: a fixed number of workers drain a
// buffered job queue, and [Dispatcher.Submit] fails fast with [ErrQueueFull]
// instead of queueing unbounded work.
//
//	d := pool.NewDispatcher()
//	d.Start()
//	defer d.Stop()
//
//	job := pool.HashJob{
//	    Password:  password,
//	    Salt:      salt,
//	    Algorithm: "argon2i",
//	    Result:    make(chan pool.HashResult, 1),
//	}
//	if err := d.Submit(job); err != nil { /* shed load */ }
//	res := <-job.Result
package pool

import (
	"errors"
	"runtime"
	"sync"
)

// ErrQueueFull is returned by [Dispatcher.Submit] when the job buffer is at
// capacity.  Callers should treat it as backpressure and shed or retry.
var ErrQueueFull = errors.New("pool: job queue is full")

// Job is a closed interface; only job types in this package implement it.
type Job interface {
	execute()
}

// Dispatcher manages a fixed pool of worker goroutines processing hash and
// verify jobs.
type Dispatcher struct {
	jobs chan Job
	wg   sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with a job buffer sized at 2×NumCPU.
func NewDispatcher() *Dispatcher {
	return NewDispatcherSize(2 * runtime.NumCPU())
}

// NewDispatcherSize creates a Dispatcher with an explicit job buffer size.
func NewDispatcherSize(buffer int) *Dispatcher {
	return &Dispatcher{
		jobs: make(chan Job, buffer),
	}
}

// Start launches runtime.NumCPU() worker goroutines.
func (d *Dispatcher) Start() {
	n := runtime.NumCPU()
	d.wg.Add(n)
	for i := 0; i < n; i++ {
		go d.worker()
	}
}

// Stop closes the job queue and waits for the workers to drain it.  Jobs
// already submitted still complete and deliver their results.
func (d *Dispatcher) Stop() {
	close(d.jobs)
	d.wg.Wait()
}

// Submit enqueues a job without blocking.  Returns [ErrQueueFull] when the
// buffer is at capacity.
func (d *Dispatcher) Submit(job Job) error {
	select {
	case d.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for job := range d.jobs {
		job.execute()
	}
}

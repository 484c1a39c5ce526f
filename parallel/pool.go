// Package parallel runs independent jobs on a fixed number of goroutines.
package parallel

import (
	"errors"
	"runtime"
	"sync"
)

type (
	// WorkerFunc queues a job.  It blocks while all workers are busy.
	WorkerFunc func(func())
	// WaitFunc blocks until queued jobs have finished.  With done set no
	// further jobs may be queued and the workers exit.
	WaitFunc   func(done bool)
	CancelFunc func()
)

type Pool struct {
	wg      sync.WaitGroup
	workers int
	Do      WorkerFunc
	Wait    WaitFunc
	Cancel  CancelFunc
}

// Start launches numWorkers goroutines, or one per usable CPU when
// numWorkers is below one.  A pool of a single worker runs jobs inline.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		workers: numWorkers,
		Do: func(f func()) {
			f()
		},
		Wait:   func(bool) {},
		Cancel: func() {},
	}

	if numWorkers > 1 {
		workChan := make(chan func(), numWorkers)
		var pending sync.WaitGroup

		for range numWorkers {
			pool.wg.Go(func() {
				for f := range workChan {
					f()
					pending.Done()
				}
			})
		}

		pool.Do = func(f func()) {
			pending.Add(1)
			workChan <- f
		}

		pool.Cancel = sync.OnceFunc(func() { close(workChan) })
		pool.Wait = func(done bool) {
			pending.Wait()
			if done {
				pool.Cancel()
				pool.wg.Wait()
			}
		}
	}

	return pool
}

// Workers returns the number of goroutines of the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// ForEach calls f for every index in [0, n) through worker and waits for
// all calls to return.  The errors of failed calls are joined in index
// order.
func ForEach(worker WorkerFunc, wait WaitFunc, n int, f func(i int) error) error {
	errs := make([]error, n)
	for i := range n {
		worker(func() {
			errs[i] = f(i)
		})
	}
	wait(false)
	return errors.Join(errs...)
}

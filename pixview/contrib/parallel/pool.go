// Copyright 2025 The go-pixview Authors. SPDX-License-Identifier: Apache-2.0

package parallel

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Pool is a persistent worker pool that runs the pieces of split
// producers. Workers are spawned once at creation and reused, so a Pool
// should be shared by all parallel traversals of a program.
//
// Functions run on the pool must not submit work to the same pool.
type Pool struct {
	numWorkers int
	opts       Options
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// counter is a work-stealing index kept on its own cache line, since every
// worker hammers it.
type counter struct {
	_ cpu.CacheLinePad
	n atomic.Int64
	_ cpu.CacheLinePad
}

func (c *counter) next() int {
	return int(c.n.Add(1)) - 1
}

// New creates a pool with numWorkers workers and the default options.
// If numWorkers <= 0, PIXVIEW_WORKERS is used, or GOMAXPROCS if that is
// unset.
func New(numWorkers int) *Pool {
	opts := DefaultOptions()
	opts.Workers = numWorkers
	return NewWithOptions(opts)
}

// NewWithOptions creates a pool configured by opts.
func NewWithOptions(opts Options) *Pool {
	opts = opts.withDefaults()
	p := &Pool{
		numWorkers: opts.Workers,
		opts:       opts,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, opts.Workers*2),
	}
	for range opts.Workers {
		go p.worker()
	}
	tracer().Debugf("pool started: %d workers, %d pieces, min leaf length %d",
		opts.Workers, opts.Pieces, opts.MinLen)
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Options returns the options the pool splits producers with.
func (p *Pool) Options() Options {
	return p.opts
}

// Close shuts down the pool after pending work completes. A closed pool
// still accepts work and runs it on the calling goroutine.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
		tracer().Debugf("pool closed")
	})
}

// ParallelFor executes fn over [0, n) in one contiguous chunk per worker.
// Blocks until all work completes.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := range workers {
		start := i * chunkSize
		end := min(start+chunkSize, n)
		if start >= n {
			wg.Done()
			continue
		}
		p.workC <- workItem{
			fn:      func() { fn(start, end) },
			barrier: &wg,
		}
	}
	wg.Wait()
}

// ParallelForAtomic executes fn for each index in [0, n), with workers
// stealing the next index from a shared counter. This balances load when
// the cost per index varies, as it does for pieces of an overhang.
// Blocks until all work completes.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		for i := range n {
			fn(i)
		}
		return
	}

	var next counter
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					i := next.next()
					if i >= n {
						return
					}
					fn(i)
				}
			},
			barrier: &wg,
		}
	}
	wg.Wait()
}

// ParallelForAtomicBatched is ParallelForAtomic grabbing batchSize indices
// at a time. fn receives the half-open range [start, end).
func (p *Pool) ParallelForAtomicBatched(n int, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	batchSize = max(batchSize, 1)
	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	var next counter
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					start := next.next() * batchSize
					if start >= n {
						return
					}
					fn(start, min(start+batchSize, n))
				}
			},
			barrier: &wg,
		}
	}
	wg.Wait()
}

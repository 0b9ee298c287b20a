// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs independent reductions over many buffers on a
// persistent set of goroutines.
//
// Each reduction itself stays single-threaded; the pool only spreads whole
// buffers across workers. A Pool is created once and reused, so batches do
// not pay for goroutine spawns.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	sums := workerpool.Apply(pool, columns, reduce.Sum[float64])
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation
// and reused by every call.
type Pool struct {
	numWorkers int
	workC      chan workItem

	// mu guards closing workC; Each holds the read side while it sends.
	mu     sync.RWMutex
	closed bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with the given number of workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers),
	}
	for range numWorkers {
		go p.worker()
	}
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

// Close shuts down the pool after pending work completes.
// Calling Close multiple times, or concurrently with Each, is safe.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.workC)
	}
}

// Each calls fn(i) for every i in [0, n) and blocks until all calls return.
// Indices are handed out one at a time, so buffers of uneven size balance
// across workers. A closed pool runs fn sequentially.
func (p *Pool) Each(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	p.mu.RLock()
	if workers == 1 || p.closed {
		p.mu.RUnlock()
		for i := range n {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(i)
				}
			},
			barrier: &wg,
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}

// Apply runs fn on every input and returns the results in input order.
func Apply[T, R any](p *Pool, inputs []T, fn func(T) R) []R {
	out := make([]R, len(inputs))
	p.Each(len(inputs), func(i int) {
		out[i] = fn(inputs[i])
	})
	return out
}

// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for fanning
// independent, index-addressed tasks out across goroutines.
//
// Usage:
//
//	pool := workerpool.New(4)
//	defer pool.Close()
//
//	pool.Each(len(rows), func(i int) {
//	    rows[i] = compute(i)
//	})
//
// A pool with a single worker runs every task on the calling goroutine, in
// index order.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// reused until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers. If numWorkers <= 0 it uses
// GOMAXPROCS. A single-worker pool spawns no goroutines.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{numWorkers: numWorkers}
	if numWorkers == 1 {
		p.closed.Store(true)
		return p
	}

	p.workC = make(chan workItem, numWorkers)
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

// Close shuts down the workers. Calling Close multiple times is safe; a
// closed pool keeps working sequentially.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		if p.closed.Swap(true) {
			return
		}
		close(p.workC)
	})
}

// Each calls fn(i) for every i in [0, n) and blocks until all calls return.
// Indices are handed out one at a time, so uneven task costs balance across
// workers. On a single-worker or closed pool the calls happen in order on
// the calling goroutine.
func (p *Pool) Each(n int, fn func(i int)) {
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
	wg.Wait()
}

// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool with
// phase barriers. Workers are started once and reused across every phase of
// every radix pass, so a sort does not pay goroutine spawn and join costs
// per pass.
//
// Each call to ForEach or ParallelFor is one phase: it fans work out to the
// workers and returns only after every item has finished. There is no finer
// synchronization; callers give each item a disjoint slice of state.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for pass := range digits {
//	    pool.ForEach(len(partitions), func(p int) {
//	        count(partitions[p])
//	    })
//	    // every partition has been counted here
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// workChanBufferMultiplier is the multiplier for work channel buffer size.
const workChanBufferMultiplier = 2

// Pool is a persistent worker pool. It is safe for concurrent phases from
// different goroutines, but Close must not race with an in-flight phase.
type Pool struct {
	numWorkers int
	workC      chan workItem
	group      errgroup.Group // joins the workers on Close; workers never fail
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is a single unit of a phase.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers persistent workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*workChanBufferMultiplier),
	}
	for range numWorkers {
		p.group.Go(p.worker)
	}
	return p
}

// worker runs items until the work channel is closed. It always returns nil:
// a panicking item is fatal to the process, so there is no error to collect.
func (p *Pool) worker() error {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
	return nil
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Closed reports whether Close has been called.
func (p *Pool) Closed() bool {
	return p.closed.Load()
}

// Close stops the workers after pending items complete and waits for them
// to exit. The returned error is always nil; it exists so Close satisfies
// io.Closer. Calling Close multiple times is safe.
func (p *Pool) Close() error {
	var err error
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
		err = p.group.Wait()
	})
	return err
}

// ForEach calls fn(i) for every i in [0, n), one work item per index, and
// blocks until all calls have returned. A single item, or a closed pool,
// runs on the calling goroutine.
func (p *Pool) ForEach(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if n == 1 {
		fn(0)
		return
	}
	if p.closed.Load() {
		for i := range n {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(n)
	for i := range n {
		p.workC <- workItem{
			fn:      func() { fn(i) },
			barrier: &wg,
		}
	}
	wg.Wait()
}

// ParallelFor splits [0, n) into one contiguous chunk per worker and calls
// fn(start, end) for each chunk. Blocks until all chunks are done.
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
	chunks := (n + chunkSize - 1) / chunkSize
	p.ForEach(chunks, func(c int) {
		start := c * chunkSize
		fn(start, min(start+chunkSize, n))
	})
}

// Copyright ©2024 The gpufilter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package workpool provides bounded fan-out helpers for the embarrassingly
// parallel and per-column/per-row sequential stages of the block-parallel
// recursive filter. It hand-rolls a worker-channel dispatch rather than
// reaching for golang.org/x/sync/errgroup, following the same pattern
// gonum itself uses for its own block-parallel matrix multiply
// (gonum.org/v1/gonum/internal/asm, goblas.Dgemm): a bounded set of
// goroutines draining a buffered job channel, sized off
// runtime.GOMAXPROCS, with a serial fallback below a minimum useful
// parallel width.
package workpool

import (
	"runtime"
	"sync"
)

// MinParallel is the smallest job count worth the cost of spinning up a
// worker pool; below it, For runs serially on the calling goroutine.
const MinParallel = 4

// For calls fn(i) for every i in [0, n), distributing the calls across up
// to runtime.GOMAXPROCS(0) worker goroutines and blocking until all have
// completed. Distinct calls to fn must not write to the same memory.
func For(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if n < MinParallel || workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	jobs := make(chan int, n)
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				fn(i)
			}
		}()
	}
	wg.Wait()
}

// seehuhn.de/go/fractal - escape-time rendering of the Mandelbrot set
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package fractal

import (
	"runtime"
	"sync"
)

// An Executor runs per-cell work over the index range [0, n).
//
// Run calls fn on disjoint half-open ranges [lo, hi) which together cover
// [0, n) exactly once, and returns only after all calls have finished.
type Executor interface {
	Run(n int, fn func(lo, hi int))
}

// Sequential runs all work on the calling goroutine.
type Sequential struct{}

// Run implements [Executor].
func (Sequential) Run(n int, fn func(lo, hi int)) {
	if n > 0 {
		fn(0, n)
	}
}

// Parallel splits the index range into contiguous chunks, one per worker.
type Parallel struct {
	// Workers is the number of goroutines.
	// Values <= 0 mean runtime.GOMAXPROCS(0).
	Workers int
}

// minChunk is the smallest range handed to a worker goroutine.
// Smaller grids are processed with fewer workers.
const minChunk = 1024

// Run implements [Executor].
func (p Parallel) Run(n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}

	workers := p.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, (n+minChunk-1)/minChunk)
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn(lo, hi)
		}()
	}
	wg.Wait()
}

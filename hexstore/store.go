// Package hexstore provides dense array-backed storage engines for
// hexagonal grids.
//
// Each engine maps hex coordinates to array indices through an
// exact bijection determined by immutable shape metadata fixed at
// construction. Values may be mutated in place; changing the shape
// requires building a new map.
//
// Engines trade differently:
// HexagonalMap and HexModMap store hexagon-shaped regions,
// RombusMap stores an axial-aligned rhombus,
// and RectMap stores a screen-space rectangle in offset
// coordinates with a per-axis wraparound policy.
// For sparse or mutable-shape data use a plain map[hexgrid.Hex]T
// instead.
package hexstore

import (
	"iter"
	"sync"

	"github.com/Travis-Britz/hexgrid"
)

// Store is the capability contract shared by every storage engine.
type Store[T any] interface {
	// Get returns the value at h,
	// or false when h is outside the map shape.
	Get(h hexgrid.Hex) (T, bool)
	// Ref returns a pointer to the value at h for in-place
	// mutation, or nil when h is outside the map shape.
	Ref(h hexgrid.Hex) *T
	// At returns the value at h and panics when h is outside
	// the map shape.
	At(h hexgrid.Hex) T
	// Len returns the number of stored elements.
	Len() int
	// All yields every (coordinate, value) pair exactly once,
	// in an engine-defined but reproducible order.
	// The yielded pointers remain valid for the life of the map.
	All() iter.Seq2[hexgrid.Hex, *T]
	// Values yields every stored value in the same order as All.
	Values() iter.Seq[*T]
}

// number of elements below which parallel construction
// is not worth the goroutine overhead
const parallelThreshold = 1024

// fillChunked splits [0, n) into roughly equal chunks and runs
// fn over them from `workers` goroutines.
// Used by the parallel constructors: every engine's fill function
// is pure per coordinate, so chunks are independent.
func fillChunked(n, workers int, fn func(lo, hi int)) {
	if workers < 2 || n < parallelThreshold {
		fn(0, n)
		return
	}
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, min(lo+chunk, n))
	}
	wg.Wait()
}

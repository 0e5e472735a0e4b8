package hexstore

import (
	"fmt"
	"iter"

	"github.com/Travis-Britz/hexgrid"
)

// HexModMap stores a dense hexagon-shaped region as a single
// flat array indexed by the hexmod encoding of each coordinate.
//
// Compared to HexagonalMap it keeps one allocation and a flat
// iteration path; point lookups pay for a modulo instead of a
// second indirection.
// See https://observablehq.com/@sanderevers/hexmod-representation.
type HexModMap[T any] struct {
	inner  []T
	bounds hexgrid.Bounds
}

// NewHexMod builds a hexagon-shaped map around center with the
// given radius, calling fill exactly once per coordinate in the
// region.
func NewHexMod[T any](center hexgrid.Hex, radius uint32, fill func(hexgrid.Hex) T) *HexModMap[T] {
	return newHexMod(center, radius, 1, fill)
}

// NewHexModParallel is NewHexMod with the index space filled
// from up to `workers` goroutines.
// fill must be a pure function of the coordinate.
func NewHexModParallel[T any](center hexgrid.Hex, radius uint32, workers int, fill func(hexgrid.Hex) T) *HexModMap[T] {
	return newHexMod(center, radius, workers, fill)
}

func newHexMod[T any](center hexgrid.Hex, radius uint32, workers int, fill func(hexgrid.Hex) T) *HexModMap[T] {
	if fill == nil {
		panic("hexstore: nil fill func")
	}
	m := &HexModMap[T]{
		inner:  make([]T, hexgrid.RangeCount(radius)),
		bounds: hexgrid.NewBounds(center, radius),
	}
	fillChunked(len(m.inner), workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			m.inner[i] = fill(m.idxToHex(uint32(i)))
		}
	})
	return m
}

// Bounds returns the hexagonal bounds covered by the map.
func (m *HexModMap[T]) Bounds() hexgrid.Bounds {
	return m.bounds
}

// Len returns the number of stored elements, 3r(r+1)+1.
func (m *HexModMap[T]) Len() int {
	return len(m.inner)
}

func (m *HexModMap[T]) hexToIdx(h hexgrid.Hex) (uint32, bool) {
	if !m.bounds.InBounds(h) {
		return 0, false
	}
	return h.Sub(m.bounds.Center).ToHexmod(m.bounds.Radius), true
}

func (m *HexModMap[T]) idxToHex(i uint32) hexgrid.Hex {
	return hexgrid.FromHexmod(i, m.bounds.Radius).Add(m.bounds.Center)
}

// Get returns the value at h, or false when h is out of bounds.
func (m *HexModMap[T]) Get(h hexgrid.Hex) (T, bool) {
	if p := m.Ref(h); p != nil {
		return *p, true
	}
	var zero T
	return zero, false
}

// Ref returns a pointer to the value at h,
// or nil when h is out of bounds.
func (m *HexModMap[T]) Ref(h hexgrid.Hex) *T {
	i, ok := m.hexToIdx(h)
	if !ok {
		return nil
	}
	return &m.inner[i]
}

// At returns the value at h, panicking when h is out of bounds.
func (m *HexModMap[T]) At(h hexgrid.Hex) T {
	p := m.Ref(h)
	if p == nil {
		panic(fmt.Sprintf("hexstore: %v out of bounds %v", h, m.bounds))
	}
	return *p
}

// All yields every (coordinate, value) pair in hexmod index order.
func (m *HexModMap[T]) All() iter.Seq2[hexgrid.Hex, *T] {
	return func(yield func(hexgrid.Hex, *T) bool) {
		for i := range m.inner {
			if !yield(m.idxToHex(uint32(i)), &m.inner[i]) {
				return
			}
		}
	}
}

// Values yields every value in hexmod index order.
func (m *HexModMap[T]) Values() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range m.inner {
			if !yield(&m.inner[i]) {
				return
			}
		}
	}
}

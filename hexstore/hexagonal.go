package hexstore

import (
	"fmt"
	"iter"

	"github.com/Travis-Britz/hexgrid"
)

// HexagonalMap stores a dense hexagon-shaped region as nested
// rows with a row-dependent column offset.
//
// Point lookups beat a hash map by a wide margin on large maps;
// full iteration is somewhat slower.
// See https://www.redblobgames.com/grids/hexagons/#map-storage.
type HexagonalMap[T any] struct {
	inner  [][]T
	bounds hexgrid.Bounds
}

// NewHexagonal builds a hexagon-shaped map around center with
// the given radius, calling fill exactly once per coordinate in
// the region.
func NewHexagonal[T any](center hexgrid.Hex, radius uint32, fill func(hexgrid.Hex) T) *HexagonalMap[T] {
	return newHexagonal(center, radius, 1, fill)
}

// NewHexagonalParallel is NewHexagonal with rows filled from up
// to `workers` goroutines.
// fill must be a pure function of the coordinate.
func NewHexagonalParallel[T any](center hexgrid.Hex, radius uint32, workers int, fill func(hexgrid.Hex) T) *HexagonalMap[T] {
	return newHexagonal(center, radius, workers, fill)
}

func newHexagonal[T any](center hexgrid.Hex, radius uint32, workers int, fill func(hexgrid.Hex) T) *HexagonalMap[T] {
	if fill == nil {
		panic("hexstore: nil fill func")
	}
	r := int32(radius)
	inner := make([][]T, 2*r+1)
	fillChunked(len(inner), workers, func(lo, hi int) {
		for row := lo; row < hi; row++ {
			y := int32(row) - r
			xMin := max(-r, -y-r)
			xMax := min(r, r-y)
			cells := make([]T, xMax-xMin+1)
			for i := range cells {
				cells[i] = fill(center.Add(hexgrid.XY(xMin+int32(i), y)))
			}
			inner[row] = cells
		}
	})
	return &HexagonalMap[T]{
		inner:  inner,
		bounds: hexgrid.NewBounds(center, radius),
	}
}

// Bounds returns the hexagonal bounds covered by the map.
func (m *HexagonalMap[T]) Bounds() hexgrid.Bounds {
	return m.bounds
}

// Len returns the number of stored elements, 3r(r+1)+1.
func (m *HexagonalMap[T]) Len() int {
	return m.bounds.Count()
}

// hexToIdx maps an in-bounds coordinate to its [row, col] index.
// Rows are keyed by the shifted y axis; the leading columns of
// the upper rows are cut off by the hexagon's slanted edge,
// which the column offset accounts for.
func (m *HexagonalMap[T]) hexToIdx(h hexgrid.Hex) (row, col int32, ok bool) {
	if !m.bounds.InBounds(h) {
		return 0, 0, false
	}
	r := int32(m.bounds.Radius)
	key := h.Sub(m.bounds.Center).Add(hexgrid.Splat(r))
	return key.Y, key.X - max(0, r-key.Y), true
}

func (m *HexagonalMap[T]) idxToHex(row, col int32) hexgrid.Hex {
	r := int32(m.bounds.Radius)
	key := hexgrid.XY(col+max(0, r-row), row)
	return key.Sub(hexgrid.Splat(r)).Add(m.bounds.Center)
}

// Get returns the value at h, or false when h is out of bounds.
func (m *HexagonalMap[T]) Get(h hexgrid.Hex) (T, bool) {
	if p := m.Ref(h); p != nil {
		return *p, true
	}
	var zero T
	return zero, false
}

// Ref returns a pointer to the value at h,
// or nil when h is out of bounds.
func (m *HexagonalMap[T]) Ref(h hexgrid.Hex) *T {
	row, col, ok := m.hexToIdx(h)
	if !ok {
		return nil
	}
	return &m.inner[row][col]
}

// At returns the value at h, panicking when h is out of bounds.
func (m *HexagonalMap[T]) At(h hexgrid.Hex) T {
	p := m.Ref(h)
	if p == nil {
		panic(fmt.Sprintf("hexstore: %v out of bounds %v", h, m.bounds))
	}
	return *p
}

// All yields every (coordinate, value) pair in row order.
func (m *HexagonalMap[T]) All() iter.Seq2[hexgrid.Hex, *T] {
	return func(yield func(hexgrid.Hex, *T) bool) {
		for row := range m.inner {
			for col := range m.inner[row] {
				if !yield(m.idxToHex(int32(row), int32(col)), &m.inner[row][col]) {
					return
				}
			}
		}
	}
}

// Values yields every value in row order.
func (m *HexagonalMap[T]) Values() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for row := range m.inner {
			for col := range m.inner[row] {
				if !yield(&m.inner[row][col]) {
					return
				}
			}
		}
	}
}

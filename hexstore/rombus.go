package hexstore

import (
	"fmt"
	"iter"

	"github.com/Travis-Britz/hexgrid"
)

// RombusMap stores a dense rhombus-shaped region,
// rows*columns coordinates starting at an origin,
// as a row-major flat array.
type RombusMap[T any] struct {
	inner   []T
	origin  hexgrid.Hex
	rows    uint32
	columns uint32
}

// NewRombus builds a rhombus-shaped map of rows*columns
// coordinates whose first coordinate is origin,
// calling fill exactly once per coordinate.
func NewRombus[T any](origin hexgrid.Hex, rows, columns uint32, fill func(hexgrid.Hex) T) *RombusMap[T] {
	return newRombus(origin, rows, columns, 1, fill)
}

// NewRombusParallel is NewRombus with rows filled from up to
// `workers` goroutines.
// fill must be a pure function of the coordinate.
func NewRombusParallel[T any](origin hexgrid.Hex, rows, columns uint32, workers int, fill func(hexgrid.Hex) T) *RombusMap[T] {
	return newRombus(origin, rows, columns, workers, fill)
}

func newRombus[T any](origin hexgrid.Hex, rows, columns uint32, workers int, fill func(hexgrid.Hex) T) *RombusMap[T] {
	if fill == nil {
		panic("hexstore: nil fill func")
	}
	m := &RombusMap[T]{
		inner:   make([]T, int(rows)*int(columns)),
		origin:  origin,
		rows:    rows,
		columns: columns,
	}
	fillChunked(len(m.inner), workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			m.inner[i] = fill(m.idxToHex(i))
		}
	})
	return m
}

// Origin returns the first coordinate of the rhombus.
func (m *RombusMap[T]) Origin() hexgrid.Hex {
	return m.origin
}

// Rows returns the number of rows.
func (m *RombusMap[T]) Rows() uint32 { return m.rows }

// Columns returns the number of columns.
func (m *RombusMap[T]) Columns() uint32 { return m.columns }

// Len returns the number of stored elements, rows*columns.
func (m *RombusMap[T]) Len() int {
	return len(m.inner)
}

func (m *RombusMap[T]) hexToIdx(h hexgrid.Hex) (int, bool) {
	rel := h.Sub(m.origin)
	if rel.X < 0 || rel.X >= int32(m.columns) || rel.Y < 0 || rel.Y >= int32(m.rows) {
		return 0, false
	}
	return int(rel.Y)*int(m.columns) + int(rel.X), true
}

func (m *RombusMap[T]) idxToHex(i int) hexgrid.Hex {
	cols := int(m.columns)
	return m.origin.Add(hexgrid.XY(int32(i%cols), int32(i/cols)))
}

// Get returns the value at h, or false when h is out of bounds.
func (m *RombusMap[T]) Get(h hexgrid.Hex) (T, bool) {
	if p := m.Ref(h); p != nil {
		return *p, true
	}
	var zero T
	return zero, false
}

// Ref returns a pointer to the value at h,
// or nil when h is out of bounds.
func (m *RombusMap[T]) Ref(h hexgrid.Hex) *T {
	i, ok := m.hexToIdx(h)
	if !ok {
		return nil
	}
	return &m.inner[i]
}

// At returns the value at h, panicking when h is out of bounds.
func (m *RombusMap[T]) At(h hexgrid.Hex) T {
	p := m.Ref(h)
	if p == nil {
		panic(fmt.Sprintf("hexstore: %v out of rhombus at %v (%dx%d)", h, m.origin, m.rows, m.columns))
	}
	return *p
}

// All yields every (coordinate, value) pair in row-major order.
func (m *RombusMap[T]) All() iter.Seq2[hexgrid.Hex, *T] {
	return func(yield func(hexgrid.Hex, *T) bool) {
		for i := range m.inner {
			if !yield(m.idxToHex(i), &m.inner[i]) {
				return
			}
		}
	}
}

// Values yields every value in row-major order.
func (m *RombusMap[T]) Values() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range m.inner {
			if !yield(&m.inner[i]) {
				return
			}
		}
	}
}

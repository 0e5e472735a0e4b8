package hexstore

import (
	"fmt"
	"iter"

	"github.com/Travis-Britz/hexgrid"
)

// WrapPolicy controls how RectMap resolves offset coordinates
// outside the rectangle on one axis.
type WrapPolicy uint8

const (
	// WrapCycle wraps the coordinate around to the other side,
	// for seamless horizontal scrolling maps.
	WrapCycle WrapPolicy = iota
	// WrapClamp pins the coordinate to the nearest edge,
	// the usual choice for a latitude axis.
	WrapClamp
)

// RectMeta is the immutable shape metadata for a RectMap:
// the rectangle's position and dimensions in offset coordinates,
// the offset conversion mode, and the per-axis wrap policy.
//
// RectMeta is a value; the With methods return modified copies
// for chained configuration before building the map:
//
//	m := hexstore.RectFromHalfSize(8, 4).
//		WithOffsetMode(hexgrid.OffsetEvenRows).
//		WithWrap(hexstore.WrapCycle, hexstore.WrapClamp)
//	store := hexstore.NewRect(m, fill)
type RectMeta struct {
	mode  hexgrid.OffsetMode
	start [2]int32
	dim   [2]int32
	wrap  [2]WrapPolicy
}

func defaultRectMeta() RectMeta {
	return RectMeta{
		mode: hexgrid.OffsetOddRows,
		wrap: [2]WrapPolicy{WrapCycle, WrapClamp},
	}
}

// RectFromHalfSize returns metadata for a rectangle spanning
// columns -x..x-1 and rows -y..y-1 in offset coordinates.
func RectFromHalfSize(x, y uint32) RectMeta {
	m := defaultRectMeta()
	m.start = [2]int32{-int32(x), -int32(y)}
	m.dim = [2]int32{2 * int32(x), 2 * int32(y)}
	return m
}

// RectFromStartDim returns metadata for a rectangle spanning
// columns startX..startX+dimX-1 and rows startY..startY+dimY-1
// in offset coordinates.
func RectFromStartDim(startX, startY int32, dimX, dimY uint32) RectMeta {
	m := defaultRectMeta()
	m.start = [2]int32{startX, startY}
	m.dim = [2]int32{int32(dimX), int32(dimY)}
	return m
}

// RectFromStartEnd returns metadata for the rectangle between
// the componentwise minimum offset coordinate start and maximum
// end (exclusive).
func RectFromStartEnd(startX, startY, endX, endY int32) RectMeta {
	m := defaultRectMeta()
	m.start = [2]int32{startX, startY}
	m.dim = [2]int32{max(endX-startX, 0), max(endY-startY, 0)}
	return m
}

// WithOffsetMode returns a copy of the metadata using the given
// axial-to-offset conversion mode.
func (m RectMeta) WithOffsetMode(mode hexgrid.OffsetMode) RectMeta {
	m.mode = mode
	return m
}

// WithWrap returns a copy of the metadata using the given wrap
// policies for the column and row axes.
func (m RectMeta) WithWrap(col, row WrapPolicy) RectMeta {
	m.wrap = [2]WrapPolicy{col, row}
	return m
}

// OffsetMode returns the axial-to-offset conversion mode.
func (m RectMeta) OffsetMode() hexgrid.OffsetMode { return m.mode }

// Dim returns the rectangle dimensions as [columns, rows].
func (m RectMeta) Dim() [2]int32 { return m.dim }

// Wrap returns the per-axis wrap policies as [column, row].
func (m RectMeta) Wrap() [2]WrapPolicy { return m.wrap }

// Len returns the number of coordinates in the rectangle.
func (m RectMeta) Len() int {
	return int(m.dim[0]) * int(m.dim[1])
}

// Contains reports whether h falls inside the rectangle.
func (m RectMeta) Contains(h hexgrid.Hex) bool {
	return m.containsIJ(m.hexToIJ(h))
}

// WrapHex resolves h to the in-rectangle coordinate chosen by
// the per-axis wrap policies.
func (m RectMeta) WrapHex(h hexgrid.Hex) hexgrid.Hex {
	return m.ijToHex(m.wrapIJ(m.hexToIJ(h)))
}

func (m RectMeta) hexToIJ(h hexgrid.Hex) [2]int32 {
	return h.ToOffset(m.mode)
}

func (m RectMeta) ijToHex(ij [2]int32) hexgrid.Hex {
	return hexgrid.FromOffset(ij[0], ij[1], m.mode)
}

func (m RectMeta) containsIJ(ij [2]int32) bool {
	return ij[0] >= m.start[0] && ij[0] < m.start[0]+m.dim[0] &&
		ij[1] >= m.start[1] && ij[1] < m.start[1]+m.dim[1]
}

func (m RectMeta) ijToIdx(ij [2]int32) int {
	rc := [2]int32{ij[0] - m.start[0], ij[1] - m.start[1]}
	return int(rc[0]) + int(rc[1])*int(m.dim[0])
}

func (m RectMeta) idxToHex(i int) hexgrid.Hex {
	cols := int(m.dim[0])
	return m.ijToHex([2]int32{m.start[0] + int32(i%cols), m.start[1] + int32(i/cols)})
}

// wrapIJ resolves an out-of-rectangle offset coordinate
// axis by axis according to the wrap policies.
func (m RectMeta) wrapIJ(ij [2]int32) [2]int32 {
	for axis := range 2 {
		lo := m.start[axis]
		hi := lo + m.dim[axis]
		if m.dim[axis] <= 0 {
			panic("hexstore: wrapped lookup on empty rectangle")
		}
		switch m.wrap[axis] {
		case WrapCycle:
			for ij[axis] < lo {
				ij[axis] += m.dim[axis]
			}
			for ij[axis] >= hi {
				ij[axis] -= m.dim[axis]
			}
		case WrapClamp:
			ij[axis] = min(max(ij[axis], lo), hi-1)
		}
	}
	return ij
}

// RectMap stores a dense screen-space rectangle of hexes,
// addressed through offset coordinates,
// as a row-major flat array.
//
// Beyond the strict Store contract it resolves out-of-bounds
// coordinates through its wrap policies:
// WrappedGet and WrappedRef never miss on a non-empty map.
type RectMap[T any] struct {
	inner []T
	meta  RectMeta
}

// NewRect builds the rectangle described by meta,
// calling fill exactly once per coordinate.
func NewRect[T any](meta RectMeta, fill func(hexgrid.Hex) T) *RectMap[T] {
	return newRect(meta, 1, fill)
}

// NewRectParallel is NewRect with rows filled from up to
// `workers` goroutines.
// fill must be a pure function of the coordinate.
func NewRectParallel[T any](meta RectMeta, workers int, fill func(hexgrid.Hex) T) *RectMap[T] {
	return newRect(meta, workers, fill)
}

func newRect[T any](meta RectMeta, workers int, fill func(hexgrid.Hex) T) *RectMap[T] {
	if fill == nil {
		panic("hexstore: nil fill func")
	}
	m := &RectMap[T]{
		inner: make([]T, meta.Len()),
		meta:  meta,
	}
	fillChunked(len(m.inner), workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			m.inner[i] = fill(meta.idxToHex(i))
		}
	})
	return m
}

// Meta returns the map's shape metadata.
func (m *RectMap[T]) Meta() RectMeta {
	return m.meta
}

// Len returns the number of stored elements.
func (m *RectMap[T]) Len() int {
	return len(m.inner)
}

// Get returns the value at h, or false when h is outside the
// rectangle. The wrap policies do not apply; see WrappedGet.
func (m *RectMap[T]) Get(h hexgrid.Hex) (T, bool) {
	if p := m.Ref(h); p != nil {
		return *p, true
	}
	var zero T
	return zero, false
}

// Ref returns a pointer to the value at h,
// or nil when h is outside the rectangle.
func (m *RectMap[T]) Ref(h hexgrid.Hex) *T {
	ij := m.meta.hexToIJ(h)
	if !m.meta.containsIJ(ij) {
		return nil
	}
	return &m.inner[m.meta.ijToIdx(ij)]
}

// At returns the value at h, panicking when h is outside the
// rectangle.
func (m *RectMap[T]) At(h hexgrid.Hex) T {
	p := m.Ref(h)
	if p == nil {
		panic(fmt.Sprintf("hexstore: %v outside rectangle start %v dim %v", h, m.meta.start, m.meta.dim))
	}
	return *p
}

// WrappedGet returns the value at h after resolving it through
// the wrap policies. It always succeeds on a non-empty map
// and panics on an empty one.
func (m *RectMap[T]) WrappedGet(h hexgrid.Hex) T {
	return *m.WrappedRef(h)
}

// WrappedRef returns a pointer to the value at h after
// resolving it through the wrap policies.
func (m *RectMap[T]) WrappedRef(h hexgrid.Hex) *T {
	ij := m.meta.wrapIJ(m.meta.hexToIJ(h))
	return &m.inner[m.meta.ijToIdx(ij)]
}

// All yields every (coordinate, value) pair in row-major offset
// order.
func (m *RectMap[T]) All() iter.Seq2[hexgrid.Hex, *T] {
	return func(yield func(hexgrid.Hex, *T) bool) {
		for i := range m.inner {
			if !yield(m.meta.idxToHex(i), &m.inner[i]) {
				return
			}
		}
	}
}

// Values yields every value in row-major offset order.
func (m *RectMap[T]) Values() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range m.inner {
			if !yield(&m.inner[i]) {
				return
			}
		}
	}
}

package hexstore_test

import (
	"testing"

	"github.com/Travis-Britz/hexgrid"
	"github.com/Travis-Britz/hexgrid/hexstore"
)

func offsetOf(h hexgrid.Hex, m hexstore.RectMeta) [2]int32 {
	return h.ToOffset(m.OffsetMode())
}

func TestRectContains(t *testing.T) {
	meta := hexstore.RectFromHalfSize(8, 4)
	m := hexstore.NewRect(meta, func(h hexgrid.Hex) int { return 0 })
	if m.Len() != 16*8 {
		t.Errorf("expected %d elements; got %d", 16*8, m.Len())
	}
	if !meta.Contains(hexgrid.Zero) {
		t.Errorf("expected origin to be inside the rectangle")
	}
	for h := range m.All() {
		ij := offsetOf(h, meta)
		if ij[0] < -8 || ij[0] > 7 || ij[1] < -4 || ij[1] > 3 {
			t.Errorf("%v has offset %v outside the rectangle", h, ij)
		}
	}
}

func TestRectOffsetModes(t *testing.T) {
	modes := []hexgrid.OffsetMode{
		hexgrid.OffsetEvenColumns,
		hexgrid.OffsetOddColumns,
		hexgrid.OffsetEvenRows,
		hexgrid.OffsetOddRows,
	}
	for _, mode := range modes {
		meta := hexstore.RectFromStartDim(-3, -2, 7, 5).WithOffsetMode(mode)
		m := hexstore.NewRect(meta, func(h hexgrid.Hex) hexgrid.Hex { return h })
		n := 0
		for h, p := range m.All() {
			if *p != h {
				t.Errorf("mode %d: stored %v at %v", mode, *p, h)
			}
			n++
		}
		if n != 35 {
			t.Errorf("mode %d: expected 35 elements; got %d", mode, n)
		}
	}
}

func TestRectWrapCycle(t *testing.T) {
	meta := hexstore.RectFromStartDim(0, 0, 4, 3).WithWrap(hexstore.WrapCycle, hexstore.WrapCycle)
	m := hexstore.NewRect(meta, func(h hexgrid.Hex) [2]int32 { return offsetOf(h, meta) })

	tests := map[string]struct {
		query    [2]int32
		expected [2]int32
	}{
		"inside":         {[2]int32{1, 1}, [2]int32{1, 1}},
		"right of map":   {[2]int32{4, 0}, [2]int32{0, 0}},
		"left of map":    {[2]int32{-1, 2}, [2]int32{3, 2}},
		"below map":      {[2]int32{2, 3}, [2]int32{2, 0}},
		"above map":      {[2]int32{2, -1}, [2]int32{2, 2}},
		"far out":        {[2]int32{-9, 7}, [2]int32{3, 1}},
		"corner far out": {[2]int32{11, -4}, [2]int32{3, 2}},
	}
	for name, tc := range tests {
		query := hexgrid.FromOffset(tc.query[0], tc.query[1], meta.OffsetMode())
		if got := m.WrappedGet(query); got != tc.expected {
			t.Errorf("%s: expected %v; got %v", name, tc.expected, got)
		}
	}
}

func TestRectWrapClamp(t *testing.T) {
	meta := hexstore.RectFromStartDim(-2, -2, 5, 5).WithWrap(hexstore.WrapClamp, hexstore.WrapClamp)
	m := hexstore.NewRect(meta, func(h hexgrid.Hex) [2]int32 { return offsetOf(h, meta) })

	tests := map[string]struct {
		query    [2]int32
		expected [2]int32
	}{
		"inside":       {[2]int32{0, 0}, [2]int32{0, 0}},
		"past right":   {[2]int32{9, 1}, [2]int32{2, 1}},
		"past left":    {[2]int32{-8, 0}, [2]int32{-2, 0}},
		"past top":     {[2]int32{1, -9}, [2]int32{1, -2}},
		"past bottom":  {[2]int32{0, 30}, [2]int32{0, 2}},
		"both clamped": {[2]int32{-5, 12}, [2]int32{-2, 2}},
	}
	for name, tc := range tests {
		query := hexgrid.FromOffset(tc.query[0], tc.query[1], meta.OffsetMode())
		if got := m.WrappedGet(query); got != tc.expected {
			t.Errorf("%s: expected %v; got %v", name, tc.expected, got)
		}
	}
}

func TestRectWrapMixedAxes(t *testing.T) {
	// the default: cycle longitudes, clamp latitudes
	meta := hexstore.RectFromHalfSize(4, 2)
	m := hexstore.NewRect(meta, func(h hexgrid.Hex) [2]int32 { return offsetOf(h, meta) })
	query := hexgrid.FromOffset(5, 9, meta.OffsetMode())
	if got := m.WrappedGet(query); got != [2]int32{-3, 1} {
		t.Errorf("expected [-3 1]; got %v", got)
	}
	if got := m.WrappedRef(query); *got != [2]int32{-3, 1} {
		t.Errorf("expected [-3 1]; got %v", *got)
	}
}

func TestRectWrapHexStaysInside(t *testing.T) {
	meta := hexstore.RectFromHalfSize(3, 3)
	for _, h := range hexgrid.Range(hexgrid.Zero, 15) {
		wrapped := meta.WrapHex(h)
		if !meta.Contains(wrapped) {
			t.Errorf("wrap of %v landed outside at %v", h, wrapped)
		}
		if meta.Contains(h) && wrapped != h {
			t.Errorf("wrap moved in-bounds %v to %v", h, wrapped)
		}
	}
}

func TestRectFromStartEnd(t *testing.T) {
	meta := hexstore.RectFromStartEnd(-2, -1, 3, 4)
	if meta.Len() != 25 {
		t.Errorf("expected 25 coordinates; got %d", meta.Len())
	}
	if inverted := hexstore.RectFromStartEnd(3, 3, -1, -1); inverted.Len() != 0 {
		t.Errorf("expected empty rectangle; got %d", inverted.Len())
	}
}

func TestRectWrappedLookupPanicsWhenEmpty(t *testing.T) {
	// a zero-size axis has nothing to wrap onto;
	// the lookup must fail loudly instead of spinning
	meta := hexstore.RectFromStartEnd(3, 3, -1, -1)
	m := hexstore.NewRect(meta, func(h hexgrid.Hex) int { return 0 })
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for wrapped lookup on an empty rectangle")
		}
	}()
	m.WrappedGet(hexgrid.Zero)
}

package vscroll

import (
	"math"
	"sort"
)

// Range is an inclusive window of data indices.
type Range struct {
	Start int
	End   int
}

// EmptyRange is the window reported when nothing is materialized.
var EmptyRange = Range{Start: -1, End: -1}

// IsEmpty reports whether the range covers no index.
func (r Range) IsEmpty() bool {
	return r.Start < 0 || r.End < r.Start
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	if r.IsEmpty() {
		return 0
	}
	return r.End - r.Start + 1
}

// Contains reports whether index lies inside the range.
func (r Range) Contains(index int) bool {
	return !r.IsEmpty() && index >= r.Start && index <= r.End
}

// Padding is the empty space before the first and after the last cell.
type Padding struct {
	Start float64
	End   float64
}

// Size returns the total padding along the scroll axis.
func (p Padding) Size() float64 {
	return p.Start + p.End
}

// OffsetTable stores the start offset and size of every item along the
// scroll axis. Offsets include the leading padding.
type OffsetTable struct {
	offsets []float64
	sizes   []float64
}

// Len returns the number of items in the table.
func (t *OffsetTable) Len() int {
	return len(t.sizes)
}

// Reset resizes the table to count items of size defaultSize.
func (t *OffsetTable) Reset(count int, defaultSize float64) {
	if cap(t.sizes) < count {
		t.sizes = make([]float64, count)
		t.offsets = make([]float64, count)
	} else {
		t.sizes = t.sizes[:count]
		t.offsets = t.offsets[:count]
	}
	for i := range t.sizes {
		t.sizes[i] = defaultSize
	}
}

// Rebuild recomputes every offset from the stored sizes and returns the
// content end (last offset + last size + end padding).
func (t *OffsetTable) Rebuild(padding Padding, space float64) float64 {
	return t.RebuildFrom(0, math.MaxInt, 0, padding, space)
}

// RebuildFrom recomputes offsets starting at index from. Items up to and
// including knownEnd keep their stored size; items after it are reset to
// defaultSize.
func (t *OffsetTable) RebuildFrom(from, knownEnd int, defaultSize float64, padding Padding, space float64) float64 {
	if len(t.sizes) == 0 {
		return padding.Size()
	}
	from = max(0, min(from, len(t.sizes)-1))
	offset := padding.Start
	if from > 0 {
		offset = t.offsets[from-1] + t.sizes[from-1] + space
	}
	for i := from; i < len(t.sizes); i++ {
		if i > knownEnd {
			t.sizes[i] = defaultSize
		}
		t.offsets[i] = offset
		offset += t.sizes[i] + space
	}
	return t.ContentEnd(padding, space)
}

// ContentEnd returns the offset just past the last item, including the end
// padding.
func (t *OffsetTable) ContentEnd(padding Padding, space float64) float64 {
	n := len(t.sizes)
	if n == 0 {
		return padding.Size()
	}
	return t.offsets[n-1] + t.sizes[n-1] + padding.End
}

// Offset returns the start offset of item i.
func (t *OffsetTable) Offset(i int) float64 {
	return t.offsets[i]
}

// Size returns the stored size of item i.
func (t *OffsetTable) Size(i int) float64 {
	return t.sizes[i]
}

// SetSize stores a new size for item i without touching offsets.
func (t *OffsetTable) SetSize(i int, size float64) {
	t.sizes[i] = size
}

// FindStart returns the last index whose offset is at or before position.
// It returns 0 when position precedes the first item.
func (t *OffsetTable) FindStart(position float64) int {
	i := sort.Search(len(t.offsets), func(i int) bool {
		return t.offsets[i] > position
	})
	return max(0, i-1)
}

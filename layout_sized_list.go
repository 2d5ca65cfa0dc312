package vscroll

import "go.uber.org/atomic"

// SizedList lays out items whose lengths are reported up front by a
// SizedDataSource. Offsets are computed once per resize; cells are never
// measured.
type SizedList struct {
	linear

	space   float64
	padding Padding
	table   OffsetTable
	warned  atomic.Bool
}

// NewSizedList returns a list separating items by space. Its View's data
// source must implement SizedDataSource.
func NewSizedList(space float64) *SizedList {
	return &SizedList{space: space}
}

// SetPadding sets the space before the first and after the last cell.
func (l *SizedList) SetPadding(p Padding) *SizedList {
	l.padding = p
	return l
}

func (l *SizedList) source(v *View) (SizedDataSource, bool) {
	ds, ok := v.DataSource().(SizedDataSource)
	if !ok && l.warned.CompareAndSwap(false, true) {
		logger().Warn("sized list needs a SizedDataSource", "layout", "sized")
	}
	return ds, ok
}

func (l *SizedList) ComputeExtent(v *View) float64 {
	ds, ok := l.source(v)
	if !ok {
		return 0
	}
	count := ds.Count()
	l.table.Reset(count, 0)
	for i := range count {
		l.table.SetSize(i, ds.CellSize(i))
	}
	end := l.table.Rebuild(l.padding, l.space)
	return max(0, end-v.ViewportLength())
}

func (l *SizedList) Reposition(v *View, _ float64, resized bool) {
	count := v.DataSource().Count()
	if _, ok := l.source(v); !ok || count == 0 || l.table.Len() != count {
		v.releaseAll()
		return
	}

	s := v.Scroller()
	dir := s.Direction()
	pos := s.Position()
	v.SetContentOffset(pos)
	pos *= dir

	start := l.table.FindStart(pos)
	end := start
	remaining := v.ViewportLength() + pos - l.table.Offset(start)
	for i := start; i < count; i++ {
		remaining -= l.table.Size(i)
		end = i
		if remaining < 0 {
			break
		}
	}
	v.Pool().ReleaseOutOfRange(start, end)
	v.SetVisibleRange(Range{Start: start, End: end})

	for i := start; i <= end; i++ {
		c, fresh := v.Cell(i)
		size := l.table.Size(i)
		main := centre(v, l.table.Offset(i), size)
		if fresh || resized {
			c.SetPlacement(Placement{Main: main, Length: size})
		}
		v.NotifyReposition(c, i, main)
	}
}

func (l *SizedList) ScrollToIndex(v *View, index int, anchor float64, smooth bool) {
	count := v.DataSource().Count()
	if count == 0 {
		return
	}
	if l.table.Len() != count {
		l.ComputeExtent(v)
		if l.table.Len() != count {
			return
		}
	}
	s := v.Scroller()
	s.Stop()
	index = clampInt(index, 0, count-1)
	p := anchoredPosition(v, l.table.Offset(index), l.table.Size(index), anchor)
	v.SetTarget(v.ClampPosition(p))
	if !smooth {
		s.SetPosition(v.Target())
	}
}

package vscroll

import (
	"math"

	"go.uber.org/atomic"
)

// LazyList lays out items whose offsets are owned by a LazyDataSource, so the
// measured sizes survive data changes that only touch a few items.
type LazyList struct {
	linear

	space       float64
	defaultSize float64
	padding     Padding

	seek    indexSeek
	pending float64
	warned  atomic.Bool
}

// NewLazyList returns a list that estimates unmeasured items at defaultSize.
// Its View's data source must implement LazyDataSource.
func NewLazyList(defaultSize, space float64) *LazyList {
	return &LazyList{
		space:       space,
		defaultSize: defaultSize,
		seek:        indexSeek{index: -1},
		pending:     math.NaN(),
	}
}

// SetPadding sets the space before the first and after the last cell.
func (l *LazyList) SetPadding(p Padding) *LazyList {
	l.padding = p
	return l
}

func (l *LazyList) source(v *View) (LazyDataSource, bool) {
	ds, ok := v.DataSource().(LazyDataSource)
	if !ok && l.warned.CompareAndSwap(false, true) {
		logger().Warn("lazy list needs a LazyDataSource", "layout", "lazy")
	}
	return ds, ok
}

func (l *LazyList) deferNormalized(n float64) {
	l.pending = n
}

func (l *LazyList) ComputeExtent(v *View) float64 {
	ds, ok := l.source(v)
	if !ok {
		return 0
	}
	content := ds.TotalContentSize(l.padding, l.defaultSize, l.space)
	return max(0, content-v.ViewportLength())
}

func (l *LazyList) DragEnded(v *View, target float64) {
	l.seek.reset()
	l.linear.DragEnded(v, target)
}

func (l *LazyList) Wheel(v *View, delta float64) {
	l.seek.reset()
	l.linear.Wheel(v, delta)
}

func (l *LazyList) Reposition(v *View, scrollDelta float64, resized bool) {
	ds, ok := l.source(v)
	count := v.DataSource().Count()
	if !ok || count == 0 {
		v.releaseAll()
		return
	}

	s := v.Scroller()
	dir := s.Direction()
	vp := v.ViewportLength()
	pos := s.Position() * dir

	start := ds.FindStartIndex(pos)
	end := start
	remaining := vp + pos - ds.CellOffset(start)
	for i := start; i < count; i++ {
		remaining -= l.size(ds, i) + l.space
		end = i
		if remaining <= 0 {
			break
		}
	}
	v.Pool().ReleaseOutOfRange(start, end)

	sizeDelta := 0.0
	for i := start; i <= end; i++ {
		sizeDelta += l.place(v, ds, i, resized, 0, false)
		if end != i || end >= count-1 || ds.CellOffset(end+1) >= pos+vp {
			continue
		}
		end++
	}

	if sizeDelta != 0 && signum(scrollDelta) == -dir {
		shift := sizeDelta * -dir
		v.SetTarget(v.Target() + shift)
		s.SetPosition(s.Position() + shift)
	}

	if resized {
		p := v.ClampPosition(s.Position())
		v.SetTarget(p)
		s.SetPosition(p)
	}

	if l.seek.active() {
		i := min(l.seek.index, count-1)
		p := v.ClampPosition(anchoredPosition(v, ds.CellOffset(i), l.size(ds, i), l.seek.anchor))
		if math.Abs(p-s.Position()) < 1 {
			l.seek.reset()
		} else {
			v.SetTarget(p)
			if !l.seek.smooth {
				s.SetPosition(p)
			}
		}
	}

	// Fill backwards when the first cell no longer reaches the leading edge.
	pos = s.Position() * dir
	sizeDelta = 0
	for start > 0 && ds.CellOffset(start)+sizeDelta > pos {
		start--
		sizeDelta = l.place(v, ds, start, resized, sizeDelta, true)
	}

	visible := Range{Start: start, End: end}
	pos -= sizeDelta
	if sizeDelta != 0 {
		visible = Range{Start: ds.FindStartIndex(pos), End: ds.FindStartIndex(pos + vp)}
	}
	v.SetVisibleRange(visible)

	if !math.IsNaN(l.pending) {
		v.SetNormalizedPosition(l.pending)
		l.pending = math.NaN()
	}

	v.SetContentOffset(s.Position())
	shift := sizeDelta * dir
	v.SetTarget(v.Target() - shift)
	s.SetPosition(s.Position() - shift)
}

// place binds, measures and positions item index and returns sizeDelta plus
// the correction its measurement caused. shifted cells are offset by that
// total so they line up with cells placed before the offsets moved.
func (l *LazyList) place(v *View, ds LazyDataSource, index int, resized bool, sizeDelta float64, shifted bool) float64 {
	s := v.Scroller()
	c, fresh := v.Cell(index)
	size := ds.CellSize(index)
	stale := math.IsNaN(size)
	if stale {
		size = l.defaultSize
	}
	if fresh || resized || stale {
		if actual := v.measure(c, size); stale || !approximately(size, actual) {
			if !stale {
				sizeDelta += size - actual
			}
			size = actual
			ds.SetCellSize(index, size)
			content := ds.TotalContentSize(l.padding, l.defaultSize, l.space)
			s.SetExtent(max(0, content-v.ViewportLength()))
		}
	}

	main := centre(v, ds.CellOffset(index), size)
	if shifted {
		main -= sizeDelta * s.Direction()
	}
	c.SetPlacement(Placement{Main: main, Length: size})
	v.NotifyReposition(c, index, main)
	return sizeDelta
}

// size returns the stored size of item index, or the default for items
// replaced since they were last measured.
func (l *LazyList) size(ds LazyDataSource, index int) float64 {
	if size := ds.CellSize(index); !math.IsNaN(size) {
		return size
	}
	return l.defaultSize
}

func (l *LazyList) ScrollToIndex(v *View, index int, anchor float64, smooth bool) {
	count := v.DataSource().Count()
	if count == 0 {
		return
	}
	v.Scroller().Stop()
	l.seek = indexSeek{index: clampInt(index, 0, count-1), anchor: anchor, smooth: smooth}
}

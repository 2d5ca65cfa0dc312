package vscroll

// AutoList lays out items whose length is only known once they are bound.
// Unmeasured items are assumed to be defaultSize long; every measurement that
// disagrees patches the offset table from that item onwards.
type AutoList struct {
	linear

	space       float64
	defaultSize float64
	padding     Padding

	table    OffsetTable
	knownEnd int

	seek indexSeek
}

// indexSeek is a pending ScrollToIndex that is re-aimed every pass because
// offsets may move while measuring.
type indexSeek struct {
	index  int
	anchor float64
	smooth bool
}

func (s *indexSeek) reset() {
	s.index = -1
}

func (s *indexSeek) active() bool {
	return s.index >= 0
}

// NewAutoList returns a list that estimates unmeasured items at defaultSize.
func NewAutoList(defaultSize, space float64) *AutoList {
	return &AutoList{
		space:       space,
		defaultSize: defaultSize,
		knownEnd:    -1,
		seek:        indexSeek{index: -1},
	}
}

// SetPadding sets the space before the first and after the last cell.
func (l *AutoList) SetPadding(p Padding) *AutoList {
	l.padding = p
	return l
}

// KnownSizeEnd returns the highest index whose length has been measured, or
// -1.
func (l *AutoList) KnownSizeEnd() int {
	return l.knownEnd
}

// Offset returns the start offset of item i, including leading padding.
func (l *AutoList) Offset(i int) float64 {
	return l.table.Offset(i)
}

// Size returns the current length of item i.
func (l *AutoList) Size(i int) float64 {
	return l.table.Size(i)
}

func (l *AutoList) ComputeExtent(v *View) float64 {
	l.table.Reset(v.DataSource().Count(), l.defaultSize)
	l.knownEnd = -1
	end := l.table.Rebuild(l.padding, l.space)
	return max(0, end-v.ViewportLength())
}

func (l *AutoList) DragEnded(v *View, target float64) {
	l.seek.reset()
	l.linear.DragEnded(v, target)
}

func (l *AutoList) Wheel(v *View, delta float64) {
	l.seek.reset()
	l.linear.Wheel(v, delta)
}

func (l *AutoList) Reposition(v *View, scrollDelta float64, resized bool) {
	count := v.DataSource().Count()
	if count == 0 {
		v.releaseAll()
		return
	}

	s := v.Scroller()
	dir := s.Direction()
	vp := v.ViewportLength()
	pos := s.Position() * dir

	start := l.table.FindStart(pos)
	end := start
	remaining := vp + pos - l.table.Offset(start)
	for i := start; i < count; i++ {
		remaining -= l.table.Size(i)
		end = i
		if remaining < 0 {
			break
		}
	}
	v.Pool().ReleaseOutOfRange(start, end)

	sizeDelta := 0.0
	fill := l.table.Offset(start) - pos
	for i := start; i <= end; i++ {
		c, fresh := v.Cell(i)
		size := l.table.Size(i)
		if fresh || resized {
			if actual := v.measure(c, size); !approximately(size, actual) {
				sizeDelta += size - actual
				size = actual
				l.table.SetSize(i, actual)
				l.knownEnd = max(l.knownEnd, i)
				contentEnd := l.table.RebuildFrom(i, l.knownEnd, l.defaultSize, l.padding, l.space)
				s.SetExtent(max(0, contentEnd-vp))
			}
		}

		main := centre(v, l.table.Offset(i), size)
		c.SetPlacement(Placement{Main: main, Length: size})
		v.NotifyReposition(c, i, main)

		fill += size + l.space
		if end != i || fill >= vp {
			continue
		}
		if end < count-1 {
			end++
		} else if start > 0 {
			start--
			i = start - 1
		}
	}

	if sizeDelta != 0 && signum(scrollDelta) == -dir {
		shift := sizeDelta * -dir
		v.SetTarget(v.Target() + shift)
		s.SetPosition(s.Position() + shift)
	}

	if resized {
		p := v.ClampPosition(s.Position())
		if end == count-1 {
			p = s.Extent() * dir
		}
		v.SetTarget(p)
		s.SetPosition(p)
	}

	if l.seek.active() {
		i := min(l.seek.index, count-1)
		p := v.ClampPosition(anchoredPosition(v, l.table.Offset(i), l.table.Size(i), l.seek.anchor))
		if approximately(p, s.Position()) {
			l.seek.reset()
		} else {
			v.SetTarget(p)
			if !l.seek.smooth {
				s.SetPosition(p)
			}
		}
	}

	v.SetContentOffset(s.Position())
	v.SetVisibleRange(Range{Start: start, End: end})
}

func (l *AutoList) ScrollToIndex(v *View, index int, anchor float64, smooth bool) {
	count := v.DataSource().Count()
	if count == 0 {
		return
	}
	v.Scroller().Stop()
	l.seek = indexSeek{index: clampInt(index, 0, count-1), anchor: anchor, smooth: smooth}
}

func signum(f float64) float64 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	}
	return 0
}

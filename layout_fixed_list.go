package vscroll

// FixedList lays out items of identical length in a single column or row.
type FixedList struct {
	linear

	cellSize float64
	space    float64
	padding  Padding
}

// NewFixedList returns a list of cells cellSize long separated by space.
func NewFixedList(cellSize, space float64) *FixedList {
	return &FixedList{cellSize: cellSize, space: space}
}

// SetPadding sets the space before the first and after the last cell.
func (l *FixedList) SetPadding(p Padding) *FixedList {
	l.padding = p
	return l
}

func (l *FixedList) stride() float64 {
	return l.cellSize + l.space
}

func (l *FixedList) ComputeExtent(v *View) float64 {
	count := float64(v.DataSource().Count())
	return max(0, l.stride()*count-v.ViewportLength()-l.space+l.padding.Size())
}

func (l *FixedList) Reposition(v *View, _ float64, resized bool) {
	count := v.DataSource().Count()
	if count == 0 {
		v.releaseAll()
		return
	}

	s := v.Scroller()
	dir := s.Direction()
	stride := l.stride()
	pos := s.Position()
	v.SetContentOffset(pos)
	pos += l.padding.Start * -dir

	start := clampInt(floorInt(pos*dir/stride), 0, count-1)
	end := clampInt(floorInt((pos*dir+v.ViewportLength())/stride), start, count-1)
	v.Pool().ReleaseOutOfRange(start, end)
	v.SetVisibleRange(Range{Start: start, End: end})

	for i := start; i <= end; i++ {
		c, fresh := v.Cell(i)
		main := (float64(i)*stride - v.ViewportHalf() + l.cellSize*0.5 + l.padding.Start) * -dir
		if fresh || resized {
			c.SetPlacement(Placement{Main: main, Length: l.cellSize})
		}
		v.NotifyReposition(c, i, main)
	}
}

func (l *FixedList) ScrollToIndex(v *View, index int, anchor float64, smooth bool) {
	count := v.DataSource().Count()
	if count == 0 {
		return
	}
	s := v.Scroller()
	dir := s.Direction()
	stride := l.stride()
	index = clampInt(index, 0, count-1)
	offset := (v.ViewportLength() - stride) * (clamp01(anchor)*dir + 0.5)
	position := stride*float64(index)*dir + v.ViewportHalf() - stride*0.5 - offset
	v.SetTarget(v.ClampPosition(position))
	if !smooth {
		s.SetPosition(v.Target())
	}
}

package vscroll

import "math"

const wheelInterval = 0.1

// Carousel lays out identical cells centred on the viewport and snaps to one
// cell at a time. With looping enabled the content is unbounded and indices
// wrap around the data.
type Carousel struct {
	cellSize float64
	space    float64
	loop     bool

	cellCount  int
	index      int
	wheelDelta float64
	wheelTime  float64
}

// NewCarousel returns a looping carousel of cells cellSize long.
func NewCarousel(cellSize, space float64) *Carousel {
	return &Carousel{
		cellSize:  cellSize,
		space:     space,
		loop:      true,
		wheelTime: math.Inf(-1),
	}
}

// SetLoop toggles wrapping around the data.
func (c *Carousel) SetLoop(loop bool) *Carousel {
	c.loop = loop
	return c
}

func (c *Carousel) Loop() bool {
	return c.loop
}

// Index returns the selected position. It is not wrapped.
func (c *Carousel) Index() int {
	return c.index
}

// Selected returns the data index of the selected position.
func (c *Carousel) Selected(v *View) int {
	if v.DataSource() == nil {
		return 0
	}
	return DataIndex(v.DataSource().Count(), c.index)
}

// Indicator returns one page dot per data item, set for the selected one. It
// is nil when there is nothing to show.
func (c *Carousel) Indicator(v *View) []bool {
	if v.DataSource() == nil {
		return nil
	}
	count := v.DataSource().Count()
	if count == 0 {
		return nil
	}
	dots := make([]bool, count)
	dots[c.Selected(v)] = true
	return dots
}

func (c *Carousel) stride() float64 {
	return c.cellSize + c.space
}

func (c *Carousel) ComputeExtent(v *View) float64 {
	count := v.DataSource().Count()
	v.Pool().SetIndexMapper(func(index int) int {
		return DataIndex(v.DataSource().Count(), index)
	})
	c.cellCount = ceilInt(v.ViewportLength()/c.stride()) + 1
	if c.loop {
		return math.Inf(1)
	}
	c.cellCount = min(c.cellCount, count)
	return max(0, c.stride()*float64(count-1))
}

func (c *Carousel) Reposition(v *View, _ float64, resized bool) {
	count := v.DataSource().Count()
	if count == 0 {
		v.releaseAll()
		return
	}

	s := v.Scroller()
	dir := s.Direction()
	stride := c.stride()
	if !c.loop && resized {
		c.SetPositionIndex(v, c.index, false)
	}
	pos := s.Position()
	start := floorInt((pos*dir - v.ViewportHalf()) / stride)
	end := start + c.cellCount
	if !c.loop {
		start = clampInt(start, 0, count-1)
		end = min(start+c.cellCount, count-1)
	}

	v.Pool().ReleaseOutOfRange(start, end)
	v.SetVisibleRange(Range{Start: start, End: end})
	v.SetContentOffset(pos)
	for i := start; i <= end; i++ {
		cell, fresh := v.Cell(i)
		main := float64(i) * stride * -dir
		if fresh || resized {
			cell.SetPlacement(Placement{Main: main, Length: c.cellSize})
		}
		v.NotifyReposition(cell, i, main)
	}
}

// DragEnded snaps the released drag to a whole cell.
func (c *Carousel) DragEnded(v *View, target float64) {
	s := v.Scroller()
	v.SetTarget(target)
	stride := c.stride() * s.Direction()
	index := int(math.RoundToEven(s.Position() / stride))
	if s.Inertia() {
		index = int(math.RoundToEven(target / stride))
		v.SetTarget(float64(index) * stride)
	} else if velocity := s.Velocity(); index == c.index && math.Abs(velocity) >= s.VelocityThreshold() {
		index -= int(signum(velocity))
	}
	c.SetPositionIndex(v, index, true)
}

// Wheel steps one cell at a time, at most once per wheelInterval.
func (c *Carousel) Wheel(v *View, delta float64) {
	c.wheelDelta += delta
	now := v.Elapsed()
	if now-c.wheelTime > wheelInterval && c.wheelDelta != 0 {
		c.SetPositionIndex(v, c.index-int(signum(c.wheelDelta)), true)
		c.wheelTime = now
		c.wheelDelta = 0
	}
}

// Stopped snaps to the next cell in the direction of travel.
func (c *Carousel) Stopped(v *View, velocity float64) {
	s := v.Scroller()
	stop := s.Position() / c.stride() * s.Direction()
	index := floorInt(stop)
	if velocity < 0 {
		index = ceilInt(stop)
	}
	c.SetPositionIndex(v, index, true)
}

// Idle pins the target to the selected cell.
func (c *Carousel) Idle(v *View) {
	v.SetTarget(float64(c.index) * c.stride() * v.Scroller().Direction())
}

func (c *Carousel) ScrollToIndex(v *View, index int, _ float64, smooth bool) {
	c.SetPositionIndex(v, index, smooth)
}

// Next selects the following cell.
func (c *Carousel) Next(v *View) {
	c.SetPositionIndex(v, c.index+1, true)
}

// Prev selects the preceding cell.
func (c *Carousel) Prev(v *View) {
	c.SetPositionIndex(v, c.index-1, true)
}

// SetPositionIndex selects index, clamped unless looping. A smooth change
// animates there; otherwise the scroller jumps.
func (c *Carousel) SetPositionIndex(v *View, index int, smooth bool) {
	if v.DataSource() == nil {
		return
	}
	count := v.DataSource().Count()
	if count == 0 {
		return
	}
	if !c.loop {
		index = clampInt(index, 0, count-1)
	}
	if smooth && index == c.index {
		return
	}
	c.index = index
	v.NotifySelected(index)
	if !smooth {
		p := float64(index) * c.stride() * v.Scroller().Direction()
		v.SetTarget(p)
		v.Scroller().SetPosition(p)
	}
}

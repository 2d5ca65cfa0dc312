package vscroll

import "math"

type fakeCell struct {
	id        int
	src       *fakeSource
	index     int
	active    bool
	placement Placement
	destroyed bool
}

func (c *fakeCell) SetActive(active bool) { c.active = active }
func (c *fakeCell) SetPlacement(p Placement) { c.placement = p }
func (c *fakeCell) Destroy() { c.destroyed = true }

func (c *fakeCell) Measure(Axis, float64) float64 {
	return c.src.size(c.index)
}

type fakeSource struct {
	count       int
	defaultSize float64
	sizes       map[int]float64
	types       map[int]int
	created     int
	bound       []int
}

func newFakeSource(count int) *fakeSource {
	return &fakeSource{count: count, defaultSize: 100, sizes: map[int]float64{}}
}

func (s *fakeSource) size(i int) float64 {
	if size, ok := s.sizes[i]; ok {
		return size
	}
	return s.defaultSize
}

func (s *fakeSource) Count() int { return s.count }

func (s *fakeSource) NewCell(int) Cell {
	s.created++
	return &fakeCell{id: s.created, src: s}
}

func (s *fakeSource) Bind(index int, c Cell) {
	c.(*fakeCell).index = index
	s.bound = append(s.bound, index)
}

type typedSource struct {
	*fakeSource
}

func (s typedSource) CellType(index int) int {
	return s.types[index]
}

type sizedSource struct {
	*fakeSource
}

func (s sizedSource) CellSize(index int) float64 {
	return s.size(index)
}

type lazySource struct {
	*LazyItems[string]
	src *fakeSource
}

func newLazySource(n int) *lazySource {
	items := make([]string, n)
	src := newFakeSource(n)
	return &lazySource{LazyItems: NewLazyItems(items...), src: src}
}

func (s *lazySource) NewCell(index int) Cell { return s.src.NewCell(index) }

func (s *lazySource) Bind(index int, c Cell) { s.src.Bind(index, c) }

type fakeScrollbar struct {
	value  float64
	thumb  float64
	hidden bool
}

func (b *fakeScrollbar) SetValueWithoutNotify(v float64) { b.value = v }
func (b *fakeScrollbar) SetThumbSize(size float64) { b.thumb = size }
func (b *fakeScrollbar) SetHidden(hidden bool) { b.hidden = hidden }

const frame = 0.1

func newTestView(l Layout, axis Axis, ds DataSource, length float64) *View {
	v := NewView(l)
	v.Scroller().SetAxis(axis)
	v.SetDataSource(ds)
	v.SetViewport(length, 80)
	v.Tick(frame)
	return v
}

// scrollTo jumps and runs one frame so the layout catches up.
func scrollTo(v *View, position float64) {
	v.SetScrollPosition(position)
	v.Tick(frame)
}

func cellAt(t interface{ Fatalf(string, ...any) }, v *View, index int) *fakeCell {
	c, ok := v.Pool().TryGetVisible(index)
	if !ok {
		t.Fatalf("index %d not visible; visible=%v", index, v.Pool().Visible())
	}
	return c.(*fakeCell)
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

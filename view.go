package vscroll

import "math"

const noPointer = math.MinInt

const (
	defaultWheelStep = 100.0
	minThumbSize     = 0.05
)

// Scrollbar is an optional indicator kept in sync with a View.
type Scrollbar interface {
	// SetValueWithoutNotify moves the thumb without firing change handlers.
	SetValueWithoutNotify(normalized float64)
	SetThumbSize(size float64)
	SetHidden(hidden bool)
}

// View drives a virtualized scroll area. It ties a DataSource, a Scroller, a
// CellPool and a Layout together and advances them once per Tick. All
// methods must be called from the thread that calls Tick.
type View struct {
	ds        DataSource
	scroller  *Scroller
	pool      *CellPool
	layout    Layout
	scrollbar Scrollbar

	length  float64
	breadth float64
	half    float64

	target        float64
	contentOffset float64
	visible       Range
	wheelStep     float64
	elapsed       float64

	count   int
	dirty   bool
	resized bool
	pointer int

	enabled    bool
	scrollable bool
	draggable  bool

	selected   func(index int)
	reposition func(c Cell, index int, distance float64)
}

// NewView returns a view using layout and a default vertical scroller.
func NewView(layout Layout) *View {
	return &View{
		scroller:   NewScroller(),
		pool:       NewCellPool(),
		layout:     layout,
		visible:    EmptyRange,
		wheelStep:  defaultWheelStep,
		dirty:      true,
		pointer:    noPointer,
		enabled:    true,
		scrollable: true,
		draggable:  true,
	}
}

// SetDataSource attaches ds, discarding every pooled cell. A nil source
// turns every operation into a no-op.
func (v *View) SetDataSource(ds DataSource) *View {
	v.ds = ds
	v.pool.SetDataSource(ds)
	v.visible = EmptyRange
	v.dirty = true
	return v
}

// DataSource returns the attached data source.
func (v *View) DataSource() DataSource {
	return v.ds
}

// SetLayout replaces the layout and schedules a rebuild.
func (v *View) SetLayout(layout Layout) *View {
	v.pool.ReleaseAll()
	v.pool.SetIndexMapper(nil)
	v.layout = layout
	v.visible = EmptyRange
	v.dirty = true
	return v
}

func (v *View) Layout() Layout {
	return v.layout
}

// SetScroller replaces the physics engine.
func (v *View) SetScroller(s *Scroller) *View {
	v.scroller = s
	v.dirty = true
	return v
}

func (v *View) Scroller() *Scroller {
	return v.scroller
}

func (v *View) Pool() *CellPool {
	return v.pool
}

// SetViewport sets the viewport length along the scroll axis and its breadth
// across it. A change schedules a rebuild.
func (v *View) SetViewport(length, breadth float64) *View {
	if length == v.length && breadth == v.breadth {
		return v
	}
	v.length = max(0, length)
	v.breadth = max(0, breadth)
	v.dirty = true
	return v
}

func (v *View) ViewportLength() float64 {
	return v.length
}

func (v *View) ViewportBreadth() float64 {
	return v.breadth
}

func (v *View) ViewportHalf() float64 {
	return v.half
}

// SetScrollbar attaches an indicator. Nil detaches it.
func (v *View) SetScrollbar(sb Scrollbar) *View {
	v.scrollbar = sb
	v.dirty = true
	return v
}

// SetWheelStep sets the distance one wheel step scrolls in linear layouts.
func (v *View) SetWheelStep(step float64) *View {
	v.wheelStep = step
	return v
}

func (v *View) WheelStep() float64 {
	return v.wheelStep
}

// SetEnabled toggles all pointer and wheel input.
func (v *View) SetEnabled(enabled bool) *View {
	v.enabled = enabled
	return v
}

// SetScrollable toggles wheel input.
func (v *View) SetScrollable(scrollable bool) *View {
	v.scrollable = scrollable
	return v
}

// SetDraggable toggles drag movement.
func (v *View) SetDraggable(draggable bool) *View {
	v.draggable = draggable
	return v
}

// SetSelectedFunc sets a handler fired when a carousel settles on a new
// index. The index is not wrapped.
func (v *View) SetSelectedFunc(handler func(index int)) *View {
	v.selected = handler
	return v
}

// SetRepositionFunc sets a handler fired for every visible cell on every
// reposition pass with its distance from the viewport centre in half
// viewports.
func (v *View) SetRepositionFunc(handler func(c Cell, index int, distance float64)) *View {
	v.reposition = handler
	return v
}

// MarkDirty schedules a full rebuild on the next tick.
func (v *View) MarkDirty() {
	v.dirty = true
}

// Refresh releases every cell and recomputes the extent.
func (v *View) Refresh() {
	v.pool.ReleaseAll()
	v.resize()
}

// RefreshAt refreshes and then moves to a normalized position.
func (v *View) RefreshAt(normalized float64) {
	v.Refresh()
	v.SetNormalizedPosition(normalized)
	if d, ok := v.layout.(interface{ deferNormalized(float64) }); ok {
		d.deferNormalized(normalized)
	}
}

func (v *View) resize() {
	if v.ds == nil || v.scroller == nil || v.layout == nil {
		return
	}
	v.half = v.length * 0.5
	extent := v.layout.ComputeExtent(v)
	v.scroller.Initialize(extent)
	v.resized = true
	logger().Debug("view resized",
		"axis", v.scroller.Axis().String(),
		"count", v.ds.Count(),
		"viewport", v.length,
		"extent", extent)

	if v.scrollbar == nil {
		return
	}
	if math.IsInf(extent, 0) || extent <= 0 {
		v.scrollbar.SetHidden(true)
		return
	}
	v.scrollbar.SetHidden(false)
	v.scrollbar.SetThumbSize(max(clamp01(v.length/(extent+v.length)), minThumbSize))
}

// Tick advances the view by dt seconds.
func (v *View) Tick(dt float64) {
	if v.ds == nil || v.layout == nil {
		return
	}
	v.elapsed += dt
	if v.scroller.IsIdle() {
		v.layout.Idle(v)
	}
	count := v.ds.Count()
	if count != v.count || v.dirty {
		v.Refresh()
		v.count = count
		v.dirty = false
	}

	delta := v.scroller.Update(v.target, dt)
	if v.scrollbar != nil {
		v.scrollbar.SetValueWithoutNotify(v.scroller.NormalizedPosition())
	}
	v.layout.Reposition(v, delta, v.resized)
	v.resized = false
}

// Elapsed returns the total time passed to Tick.
func (v *View) Elapsed() float64 {
	return v.elapsed
}

// Animating reports whether the next Tick would change anything.
func (v *View) Animating() bool {
	if v.ds == nil || v.layout == nil {
		return false
	}
	if v.dirty || v.ds.Count() != v.count || !v.scroller.IsIdle() {
		return true
	}
	v.layout.Idle(v)
	return v.target != v.scroller.Position()
}

// BeginDrag starts a drag for the pointer in e. It is ignored while another
// pointer is dragging.
func (v *View) BeginDrag(e PointerEvent) {
	if v.ds == nil || !v.enabled || v.pointer != noPointer {
		return
	}
	v.pointer = e.ID
	v.scroller.BeginDrag(e)
}

// Drag moves the active pointer.
func (v *View) Drag(e PointerEvent) {
	if v.ds == nil || v.pointer != e.ID || !v.draggable {
		return
	}
	v.scroller.Drag(e)
}

// EndDrag releases the active pointer.
func (v *View) EndDrag(e PointerEvent) {
	if v.ds == nil || v.pointer != e.ID {
		return
	}
	v.pointer = noPointer
	v.layout.DragEnded(v, v.scroller.EndDrag(e))
}

// Dragging reports whether a pointer is active.
func (v *View) Dragging() bool {
	return v.pointer != noPointer
}

// Scroll applies a wheel event.
func (v *View) Scroll(e WheelEvent) {
	if v.ds == nil || !v.enabled || !v.scrollable {
		return
	}
	v.scroller.Stop()
	v.layout.Wheel(v, e.Axial())
}

// StopScroll cancels any motion.
func (v *View) StopScroll() {
	if v.layout == nil {
		return
	}
	velocity := v.scroller.Velocity()
	v.scroller.Stop()
	v.layout.Stopped(v, velocity)
}

// SetNormalizedPosition jumps to a fraction of the extent.
func (v *View) SetNormalizedPosition(normalized float64) {
	v.scroller.Stop()
	v.scroller.SetNormalizedPosition(normalized)
	v.target = v.scroller.Position()
}

func (v *View) NormalizedPosition() float64 {
	return v.scroller.NormalizedPosition()
}

// SetPositionIndex scrolls so that index sits at anchor inside the viewport.
// It does nothing without a data source.
func (v *View) SetPositionIndex(index int, anchor float64, smooth bool) {
	if v.ds == nil || v.layout == nil {
		return
	}
	v.layout.ScrollToIndex(v, index, anchor, smooth)
}

// SetScrollPosition jumps to an absolute scroll position.
func (v *View) SetScrollPosition(position float64) {
	v.target = position
	v.scroller.SetPosition(position)
}

func (v *View) ScrollPosition() float64 {
	return v.scroller.Position()
}

// Target returns the position the scroller is heading to.
func (v *View) Target() float64 {
	return v.target
}

// SetTarget sets the position the scroller heads to on the next tick.
func (v *View) SetTarget(target float64) {
	v.target = target
}

// ClampPosition clamps p into the scroller's bounds.
func (v *View) ClampPosition(p float64) float64 {
	return v.scroller.ClampPosition(p)
}

// ContentOffset returns the offset of the content origin from the viewport
// centre along the scroll axis, as written by the last reposition pass.
func (v *View) ContentOffset() float64 {
	return v.contentOffset
}

// SetContentOffset is called by layouts once they have settled the content
// position for this pass.
func (v *View) SetContentOffset(offset float64) {
	v.contentOffset = offset
}

// VisibleRange returns the indices materialized by the last pass.
func (v *View) VisibleRange() Range {
	return v.visible
}

// SetVisibleRange is called by layouts at the end of a pass.
func (v *View) SetVisibleRange(r Range) {
	v.visible = r
}

// LeadingEdge returns the distance from the viewport's leading edge (top or
// left) to the leading edge of a cell with placement p, growing towards the
// trailing edge.
func (v *View) LeadingEdge(p Placement) float64 {
	dir := v.scroller.Direction()
	return v.half - dir*(v.contentOffset+p.Main) - p.Length/2
}

// Cell returns the cell bound to index, creating and binding one when none
// is visible. fresh reports whether the cell was just bound.
func (v *View) Cell(index int) (c Cell, fresh bool) {
	if c, ok := v.pool.TryGetVisible(index); ok {
		return c, false
	}
	c = v.pool.Get(index)
	c.SetActive(true)
	v.ds.Bind(v.pool.dataIndex(index), c)
	return c, true
}

// NotifyReposition fires the reposition handler for a cell whose centre is
// at main.
func (v *View) NotifyReposition(c Cell, index int, main float64) {
	if v.reposition == nil {
		return
	}
	distance := 0.0
	if v.half > 0 {
		distance = math.Abs(main+v.contentOffset) / v.half
	}
	v.reposition(c, index, distance)
}

// NotifySelected fires the selected handler.
func (v *View) NotifySelected(index int) {
	if v.selected != nil {
		v.selected(index)
	}
}

// releaseAll empties the window for a zero count.
func (v *View) releaseAll() {
	v.pool.ReleaseAll()
	v.visible = EmptyRange
}

// measure returns the real length of a freshly bound cell, or fallback when
// the cell cannot measure itself.
func (v *View) measure(c Cell, fallback float64) float64 {
	if m, ok := c.(Measurer); ok {
		return m.Measure(v.scroller.Axis(), v.breadth)
	}
	return fallback
}

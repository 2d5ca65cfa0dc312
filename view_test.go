package vscroll

import (
	"math"
	"testing"
)

func TestView_TracksOnePointer(t *testing.T) {
	v := newTestView(NewFixedList(100, 0), Vertical, newFakeSource(10), 250)

	v.BeginDrag(PointerEvent{ID: 1})
	v.BeginDrag(PointerEvent{ID: 2})
	v.Drag(PointerEvent{ID: 2, Position: Point{Y: 50}})
	if got := v.ScrollPosition(); got != 0 {
		t.Errorf("second pointer moved the view to %v", got)
	}

	v.Drag(PointerEvent{ID: 1, Position: Point{Y: 40}})
	if got := v.ScrollPosition(); got != 40 {
		t.Errorf("position = %v, want 40", got)
	}

	v.EndDrag(PointerEvent{ID: 2})
	if !v.Dragging() {
		t.Errorf("releasing a foreign pointer ended the drag")
	}
	v.EndDrag(PointerEvent{ID: 1, Position: Point{Y: 40}})
	if v.Dragging() {
		t.Errorf("still dragging after release")
	}
}

func TestView_InputSwitches(t *testing.T) {
	type tc struct {
		configure func(v *View)
		drag      float64
		wheel     float64
	}

	tests := map[string]tc{
		"enabled": {
			configure: func(*View) {},
			drag:      40,
			wheel:     100,
		},
		"disabled": {
			configure: func(v *View) { v.SetEnabled(false) },
		},
		"not draggable": {
			configure: func(v *View) { v.SetDraggable(false) },
			wheel:     100,
		},
		"not scrollable": {
			configure: func(v *View) { v.SetScrollable(false) },
			drag:      40,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			v := newTestView(NewFixedList(100, 0), Vertical, newFakeSource(10), 250)
			tt.configure(v)

			v.BeginDrag(PointerEvent{ID: 1})
			v.Drag(PointerEvent{ID: 1, Position: Point{Y: 40}})
			if got := v.ScrollPosition(); got != tt.drag {
				t.Errorf("drag moved to %v, want %v", got, tt.drag)
			}
			v.EndDrag(PointerEvent{ID: 1, Position: Point{Y: 40}})

			v.SetScrollPosition(0)
			v.Scroll(WheelEvent{Delta: Point{Y: -1}})
			if got := v.Target(); got != tt.wheel {
				t.Errorf("wheel target = %v, want %v", got, tt.wheel)
			}
		})
	}
}

func TestView_WheelFollowsAxis(t *testing.T) {
	type tc struct {
		axis  Axis
		delta Point
		want  float64
	}

	tests := map[string]tc{
		"vertical down":   {axis: Vertical, delta: Point{Y: -1}, want: 100},
		"vertical up":     {axis: Vertical, delta: Point{Y: 2}, want: -200},
		"horizontal":      {axis: Horizontal, delta: Point{Y: -1}, want: -100},
		"sideways wheel":  {axis: Horizontal, delta: Point{X: -1}, want: -100},
		"diagonal mostly": {axis: Vertical, delta: Point{X: 0.2, Y: -1}, want: 100},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			v := newTestView(NewFixedList(100, 0), tt.axis, newFakeSource(10), 250)
			v.Scroll(WheelEvent{Delta: tt.delta})
			if got := v.Target(); got != tt.want {
				t.Errorf("Target() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestView_WheelTargetIsClampedOnIdle(t *testing.T) {
	v := newTestView(NewFixedList(100, 0), Vertical, newFakeSource(10), 250)
	v.Scroll(WheelEvent{Delta: Point{Y: 3}})
	v.Tick(frame)
	if got := v.Target(); got != 0 {
		t.Errorf("Target() = %v, want clamped 0", got)
	}
}

func TestView_Scrollbar(t *testing.T) {
	type tc struct {
		layout Layout
		count  int
		thumb  float64
		hidden bool
	}

	tests := map[string]tc{
		"proportional thumb": {
			layout: NewFixedList(100, 0),
			count:  10,
			thumb:  0.25,
		},
		"minimum thumb": {
			layout: NewFixedList(100, 0),
			count:  1000,
			thumb:  minThumbSize,
		},
		"content fits": {
			layout: NewFixedList(100, 0),
			count:  2,
			hidden: true,
		},
		"unbounded carousel": {
			layout: NewCarousel(100, 0),
			count:  5,
			hidden: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sb := &fakeScrollbar{}
			v := newTestView(tt.layout, Vertical, newFakeSource(tt.count), 250)
			v.SetScrollbar(sb)
			v.Tick(frame)

			if sb.hidden != tt.hidden {
				t.Errorf("hidden = %v, want %v", sb.hidden, tt.hidden)
			}
			if !tt.hidden && !near(sb.thumb, tt.thumb) {
				t.Errorf("thumb = %v, want %v", sb.thumb, tt.thumb)
			}
		})
	}
}

func TestView_ScrollbarFollowsPosition(t *testing.T) {
	sb := &fakeScrollbar{}
	v := newTestView(NewFixedList(100, 0), Vertical, newFakeSource(10), 250)
	v.SetScrollbar(sb)
	scrollTo(v, 375)
	if !near(sb.value, 0.5) {
		t.Errorf("scrollbar value = %v, want 0.5", sb.value)
	}
}

func TestView_NormalizedPosition(t *testing.T) {
	type tc struct {
		axis       Axis
		normalized float64
		want       float64
	}

	tests := map[string]tc{
		"vertical end":     {axis: Vertical, normalized: 1, want: 750},
		"horizontal end":   {axis: Horizontal, normalized: 1, want: -750},
		"vertical middle":  {axis: Vertical, normalized: 0.2, want: 150},
		"clamped past end": {axis: Vertical, normalized: 3, want: 750},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			v := newTestView(NewFixedList(100, 0), tt.axis, newFakeSource(10), 250)
			v.SetNormalizedPosition(tt.normalized)
			if got := v.ScrollPosition(); !near(got, tt.want) {
				t.Errorf("position = %v, want %v", got, tt.want)
			}
			v.Tick(frame)
			if got := v.NormalizedPosition(); !near(got, min(tt.normalized, 1)) {
				t.Errorf("NormalizedPosition() = %v, want %v", got, min(tt.normalized, 1))
			}
		})
	}
}

func TestView_WithoutDataSource(t *testing.T) {
	v := NewView(NewFixedList(100, 0))
	v.SetViewport(250, 80)

	v.Tick(frame)
	v.SetPositionIndex(3, 0, false)
	v.BeginDrag(PointerEvent{ID: 1})
	v.Scroll(WheelEvent{Delta: Point{Y: -1}})

	if v.Dragging() || v.Animating() {
		t.Errorf("view without data reacted to input")
	}
	if !v.VisibleRange().IsEmpty() {
		t.Errorf("VisibleRange() = %+v, want empty", v.VisibleRange())
	}
}

func TestView_EmptyData(t *testing.T) {
	for _, l := range []Layout{NewFixedList(100, 0), NewFixedGrid(100, 50, 3), NewCarousel(100, 0)} {
		v := newTestView(l, Vertical, newFakeSource(0), 250)
		if !v.VisibleRange().IsEmpty() || v.Pool().VisibleCount() != 0 {
			t.Errorf("%T bound cells for empty data", l)
		}
		if e := v.Scroller().Extent(); e != 0 && !math.IsInf(e, 1) {
			t.Errorf("%T extent = %v, want 0 or unbounded", l, v.Scroller().Extent())
		}
	}
}

func TestView_Animating(t *testing.T) {
	v := newTestView(NewFixedList(100, 0), Vertical, newFakeSource(10), 250)
	if v.Animating() {
		t.Fatalf("settled view reports animating")
	}

	v.SetTarget(200)
	if !v.Animating() {
		t.Errorf("pending target not reported")
	}
	for range 100 {
		v.Tick(1.0 / 60)
	}
	if v.Animating() {
		t.Errorf("still animating at %v", v.ScrollPosition())
	}

	v.SetViewport(500, 80)
	if !v.Animating() {
		t.Errorf("viewport change not reported")
	}
	v.Tick(frame)
	if got := v.Scroller().Extent(); got != 500 {
		t.Errorf("extent after resize = %v, want 500", got)
	}
}

func TestView_CountChangeRefreshes(t *testing.T) {
	src := newFakeSource(2)
	v := newTestView(NewFixedList(100, 0), Vertical, src, 250)

	src.count = 10
	if !v.Animating() {
		t.Errorf("count change not reported")
	}
	v.Tick(frame)
	if got := v.Scroller().Extent(); got != 750 {
		t.Errorf("extent = %v, want 750", got)
	}
	if got := v.VisibleRange(); got != (Range{Start: 0, End: 2}) {
		t.Errorf("VisibleRange() = %+v, want [0,2]", got)
	}
}

func TestView_CellsAreRecycled(t *testing.T) {
	src := newFakeSource(10)
	v := newTestView(NewFixedList(100, 0), Vertical, src, 250)

	for p := 0.0; p <= 750; p += 25 {
		scrollTo(v, p)
	}
	if src.created > 4 {
		t.Errorf("created %d cells, want at most 4 for a 250 viewport", src.created)
	}
	if got := v.VisibleRange(); got != (Range{Start: 7, End: 9}) {
		t.Errorf("VisibleRange() = %+v, want [7,9]", got)
	}
}

func TestView_RepositionDistance(t *testing.T) {
	v := newTestView(NewFixedList(100, 0), Vertical, newFakeSource(10), 200)
	got := map[int]float64{}
	v.SetRepositionFunc(func(_ Cell, index int, distance float64) {
		got[index] = distance
	})
	scrollTo(v, 50)

	// Cell 1 spans [100, 200] against a [50, 250] viewport.
	if !near(got[1], 0) {
		t.Errorf("cell 1 distance = %v, want 0", got[1])
	}
	if !near(got[0], 1) {
		t.Errorf("cell 0 distance = %v, want 1", got[0])
	}
}

func TestView_SetLayoutRebuilds(t *testing.T) {
	src := newFakeSource(10)
	v := newTestView(NewFixedList(100, 0), Vertical, src, 250)

	v.SetLayout(NewFixedGrid(100, 50, 2))
	v.Tick(frame)
	if got := v.VisibleRange(); got != (Range{Start: 0, End: 5}) {
		t.Errorf("VisibleRange() = %+v, want [0,5]", got)
	}
	if got := v.Scroller().Extent(); got != 250 {
		t.Errorf("extent = %v, want 250", got)
	}
}

package vscroll

import (
	"slices"
	"testing"
)

func TestFixedList_VisibleWindow(t *testing.T) {
	type tc struct {
		axis     Axis
		position float64
		want     Range
	}

	tests := map[string]tc{
		"vertical at start": {
			axis:     Vertical,
			position: 0,
			want:     Range{Start: 0, End: 2},
		},
		"horizontal at start": {
			axis:     Horizontal,
			position: 0,
			want:     Range{Start: 0, End: 2},
		},
		"horizontal scrolled": {
			axis:     Horizontal,
			position: -500,
			want:     Range{Start: 5, End: 7},
		},
		"vertical scrolled": {
			axis:     Vertical,
			position: 500,
			want:     Range{Start: 5, End: 7},
		},
		"vertical at end": {
			axis:     Vertical,
			position: 750,
			want:     Range{Start: 7, End: 9},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			v := newTestView(NewFixedList(100, 0), tt.axis, newFakeSource(10), 250)
			scrollTo(v, tt.position)

			if got := v.VisibleRange(); got != tt.want {
				t.Errorf("VisibleRange() = %+v, want %+v", got, tt.want)
			}
			var want []int
			for i := tt.want.Start; i <= tt.want.End; i++ {
				want = append(want, i)
			}
			if got := v.Pool().Visible(); !slices.Equal(got, want) {
				t.Errorf("bound indices = %v, want %v", got, want)
			}
		})
	}
}

func TestFixedList_Extent(t *testing.T) {
	tests := map[string]struct {
		count   int
		space   float64
		padding Padding
		want    float64
	}{
		"plain":             {count: 10, want: 750},
		"with space":        {count: 10, space: 10, want: 840},
		"with padding":      {count: 10, padding: Padding{Start: 20, End: 30}, want: 800},
		"fits the viewport": {count: 2, want: 0},
		"empty":             {count: 0, want: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := NewFixedList(100, tt.space).SetPadding(tt.padding)
			v := newTestView(l, Vertical, newFakeSource(tt.count), 250)
			if got := v.Scroller().Extent(); got != tt.want {
				t.Errorf("extent = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFixedList_PlacementsStackFromLeadingEdge(t *testing.T) {
	for _, axis := range []Axis{Vertical, Horizontal} {
		t.Run(axis.String(), func(t *testing.T) {
			v := newTestView(NewFixedList(100, 10), axis, newFakeSource(10), 250)
			for i := 0; i <= 2; i++ {
				c := cellAt(t, v, i)
				if got, want := v.LeadingEdge(c.placement), float64(i)*110; !near(got, want) {
					t.Errorf("cell %d leading edge = %v, want %v", i, got, want)
				}
			}

			scrollTo(v, 55*axis.Direction())
			c := cellAt(t, v, 1)
			if got := v.LeadingEdge(c.placement); !near(got, 55) {
				t.Errorf("cell 1 leading edge after scrolling 55 = %v, want 55", got)
			}
		})
	}
}

func TestFixedList_ScrollToIndex(t *testing.T) {
	type tc struct {
		axis   Axis
		index  int
		anchor float64
		want   float64
	}

	tests := map[string]tc{
		"leading edge": {axis: Vertical, index: 4, anchor: 0, want: 400},
		"trailing":     {axis: Vertical, index: 4, anchor: 1, want: 250},
		"centre":       {axis: Vertical, index: 4, anchor: 0.5, want: 325},
		"horizontal":   {axis: Horizontal, index: 4, anchor: 0, want: -400},
		"clamped":      {axis: Vertical, index: 99, anchor: 0, want: 750},
		"before start": {axis: Vertical, index: -3, anchor: 0, want: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			v := newTestView(NewFixedList(100, 0), tt.axis, newFakeSource(10), 250)
			v.SetPositionIndex(tt.index, tt.anchor, false)
			if got := v.ScrollPosition(); !near(got, tt.want) {
				t.Errorf("position = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFixedList_SmoothScrollToIndex(t *testing.T) {
	v := newTestView(NewFixedList(100, 0), Vertical, newFakeSource(10), 250)
	v.SetPositionIndex(5, 0, true)
	if v.ScrollPosition() != 0 {
		t.Fatalf("smooth jump moved immediately")
	}
	for range 100 {
		v.Tick(1.0 / 60)
	}
	if v.ScrollPosition() != 500 {
		t.Errorf("position = %v, want 500", v.ScrollPosition())
	}
	if v.Animating() {
		t.Errorf("still animating after arriving")
	}
}

func TestFixedGrid_VisibleWindow(t *testing.T) {
	type tc struct {
		axis     Axis
		position float64
		want     Range
	}

	tests := map[string]tc{
		"first rows": {
			axis:     Vertical,
			position: 0,
			want:     Range{Start: 0, End: 8},
		},
		"last rows are partial": {
			axis:     Vertical,
			position: 150,
			want:     Range{Start: 3, End: 9},
		},
		"horizontal": {
			axis:     Horizontal,
			position: -150,
			want:     Range{Start: 3, End: 9},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			g := NewFixedGrid(100, 50, 3)
			v := newTestView(g, tt.axis, newFakeSource(10), 250)
			if got := v.Scroller().Extent(); got != 150 {
				t.Fatalf("extent = %v, want 150", got)
			}
			scrollTo(v, tt.position)
			if got := v.VisibleRange(); got != tt.want {
				t.Errorf("VisibleRange() = %+v, want %+v", got, tt.want)
			}
			if got := v.Pool().VisibleCount(); got != tt.want.Len() {
				t.Errorf("bound cells = %d, want %d", got, tt.want.Len())
			}
		})
	}
}

func TestFixedGrid_ColumnsAreCentred(t *testing.T) {
	type tc struct {
		axis Axis
		want []float64
	}

	tests := map[string]tc{
		"vertical runs left to right":   {axis: Vertical, want: []float64{-50, 0, 50}},
		"horizontal runs top to bottom": {axis: Horizontal, want: []float64{50, 0, -50}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			v := newTestView(NewFixedGrid(100, 50, 3), tt.axis, newFakeSource(10), 250)
			for col, want := range tt.want {
				c := cellAt(t, v, col)
				if c.placement.Cross != want {
					t.Errorf("column %d cross = %v, want %v", col, c.placement.Cross, want)
				}
				if c.placement.Breadth != 50 {
					t.Errorf("column %d breadth = %v, want 50", col, c.placement.Breadth)
				}
			}
		})
	}
}

func TestFixedGrid_ZeroColumnsTreatedAsOne(t *testing.T) {
	g := NewFixedGrid(100, 50, 0)
	if g.Columns() != 1 {
		t.Errorf("Columns() = %d, want 1", g.Columns())
	}
}

func TestSizedList_OffsetsFromReportedSizes(t *testing.T) {
	src := newFakeSource(6)
	src.sizes = map[int]float64{0: 50, 1: 200, 2: 30}
	v := newTestView(NewSizedList(10), Vertical, sizedSource{src}, 250)

	if got, want := v.Scroller().Extent(), 50+200+30+3*100+5*10-250.0; got != want {
		t.Fatalf("extent = %v, want %v", got, want)
	}
	if got := v.VisibleRange(); got != (Range{Start: 0, End: 2}) {
		t.Errorf("VisibleRange() = %+v, want [0,2]", got)
	}
	c := cellAt(t, v, 1)
	if c.placement.Length != 200 {
		t.Errorf("cell 1 length = %v, want 200", c.placement.Length)
	}
	if got := v.LeadingEdge(c.placement); got != 60 {
		t.Errorf("cell 1 leading edge = %v, want 60", got)
	}

	v.SetPositionIndex(3, 0, false)
	if got := v.ScrollPosition(); got != 310 {
		t.Errorf("position after ScrollToIndex(3) = %v, want 310", got)
	}
	v.SetPositionIndex(5, 0, false)
	if got := v.ScrollPosition(); got != 380 {
		t.Errorf("position after ScrollToIndex(5) = %v, want clamped 380", got)
	}
}

func TestSizedList_RequiresSizedSource(t *testing.T) {
	v := newTestView(NewSizedList(0), Vertical, newFakeSource(5), 250)
	if v.Pool().VisibleCount() != 0 {
		t.Errorf("bound cells without a SizedDataSource")
	}
	if v.Scroller().Extent() != 0 {
		t.Errorf("extent = %v, want 0", v.Scroller().Extent())
	}
}

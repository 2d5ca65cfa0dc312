package main

import (
	"math"
	"testing"

	"github.com/ayn2op/vscroll"
	"github.com/ayn2op/vscroll/ebitenhost"
)

func TestCardScale(t *testing.T) {
	type tc struct {
		distance float64
		want     float32
	}

	tests := map[string]tc{
		"centre":    {distance: 0, want: 1},
		"half way":  {distance: 0.5, want: 0.9},
		"edge":      {distance: 1, want: minCardScale},
		"past edge": {distance: 3, want: minCardScale},
		"negative":  {distance: -1, want: 1},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := cardScale(tc.distance); math.Abs(float64(got-tc.want)) > 1e-6 {
				t.Fatalf("cardScale(%v) = %v, want %v", tc.distance, got, tc.want)
			}
		})
	}
}

func TestDeck_BindsPaletteAndScales(t *testing.T) {
	carousel := vscroll.NewCarousel(100, 0)
	view := vscroll.NewView(carousel).SetScroller(vscroll.NewScroller().SetAxis(vscroll.Horizontal))
	d := newDeck(view, 10, 100)
	d.driver.Layout(300, 200)
	view.Tick(0)

	if view.Pool().VisibleCount() == 0 {
		t.Fatal("no cards are visible")
	}
	view.Pool().Each(func(index int, c vscroll.Cell) {
		cell := c.(*ebitenhost.RectCell)
		if cell.Color != palette[vscroll.DataIndex(10, index)%len(palette)] {
			t.Errorf("card %d color = %v", index, cell.Color)
		}
		if cell.Placement().Breadth != 125 {
			t.Errorf("card %d breadth = %v, want 125", index, cell.Placement().Breadth)
		}
	})

	selected, ok := view.Pool().TryGetVisible(0)
	if !ok {
		t.Fatal("selected card is not visible")
	}
	if got := selected.(*ebitenhost.RectCell).Scale; got != 1 {
		t.Fatalf("selected card scale = %v, want 1", got)
	}
}

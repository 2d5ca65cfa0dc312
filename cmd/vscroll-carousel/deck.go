package main

import (
	"image/color"
	"log/slog"

	"github.com/ayn2op/vscroll"
	"github.com/ayn2op/vscroll/ebitenhost"
)

// Cards shrink to this scale at the viewport edges.
const minCardScale = 0.6

// deck is the carousel's data source: one card per palette entry, repeated.
type deck struct {
	count     int
	cardWidth float32
	driver    *ebitenhost.Driver
}

func newDeck(view *vscroll.View, count int, cardWidth float32) *deck {
	d := &deck{count: count, cardWidth: cardWidth}
	view.SetDataSource(d)
	view.SetRepositionFunc(d.reposition)
	view.SetSelectedFunc(func(index int) {
		slog.Debug("card selected", "index", index, "card", vscroll.DataIndex(count, index))
	})
	d.driver = ebitenhost.NewDriver(view).SetBackground(color.RGBA{0x1d, 0x1d, 0x1f, 0xff})
	return d
}

func (d *deck) Count() int { return d.count }

func (d *deck) NewCell(int) vscroll.Cell {
	return ebitenhost.NewRectCell(nil)
}

func (d *deck) Bind(index int, c vscroll.Cell) {
	c.(*ebitenhost.RectCell).Color = palette[index%len(palette)]
}

// reposition scales a card by its distance from the centre and gives it a
// fixed height across the scroll axis.
func (d *deck) reposition(c vscroll.Cell, _ int, distance float64) {
	cell, ok := c.(*ebitenhost.RectCell)
	if !ok {
		return
	}
	cell.Scale = cardScale(distance)
	p := cell.Placement()
	if p.Breadth == 0 {
		p.Breadth = float64(d.cardWidth) * 1.25
		cell.SetPlacement(p)
	}
}

// cardScale eases from 1 at the centre to minCardScale at the edges.
func cardScale(distance float64) float32 {
	t := min(max(distance, 0), 1)
	return float32(1 - (1-minCardScale)*t*t)
}

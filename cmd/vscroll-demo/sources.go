package main

import (
	"fmt"
	"strings"

	"github.com/ayn2op/vscroll"
)

var words = strings.Fields("the quick brown fox jumps over a lazy dog while seven wizards quietly hex every jovial beaver")

// message returns a deterministic sentence whose length varies with index.
func message(index int) string {
	n := 3 + (index*7)%len(words)
	parts := make([]string, 0, n)
	for i := range n {
		parts = append(parts, words[(index+i)%len(words)])
	}
	return fmt.Sprintf("#%d %s", index, strings.Join(parts, " "))
}

// labels is a fixed size source: one short label per cell.
type labels struct {
	count int
}

func (s *labels) Count() int { return s.count }

func (s *labels) NewCell(int) vscroll.Cell {
	return vscroll.NewTextCell().SetAlignment(vscroll.AlignmentCenter)
}

func (s *labels) Bind(index int, c vscroll.Cell) {
	c.(*vscroll.TextCell).SetText(fmt.Sprintf("item %d", index))
}

// messages wrap to a height only known after measuring.
type messages struct {
	count int
}

func (s *messages) Count() int { return s.count }

func (s *messages) NewCell(int) vscroll.Cell {
	return newMessageCell()
}

func (s *messages) Bind(index int, c vscroll.Cell) {
	c.(*vscroll.TextCell).SetText(message(index))
}

// lazyMessages keeps its own offset table for LazyList.
type lazyMessages struct {
	*vscroll.LazyItems[string]
}

func newLazyMessages(count int) *lazyMessages {
	items := make([]string, count)
	for i := range items {
		items[i] = message(i)
	}
	return &lazyMessages{LazyItems: vscroll.NewLazyItems(items...)}
}

func (s *lazyMessages) NewCell(int) vscroll.Cell {
	return newMessageCell()
}

func (s *lazyMessages) Bind(index int, c vscroll.Cell) {
	c.(*vscroll.TextCell).SetText(s.At(index))
}

// paragraphs have an explicit line count, so their sizes are known up front.
type paragraphs struct {
	count int
}

func (s *paragraphs) Count() int { return s.count }

func (s *paragraphs) lines(index int) int {
	return index%4 + 1
}

func (s *paragraphs) CellSize(index int) float64 {
	return float64(s.lines(index))
}

func (s *paragraphs) NewCell(int) vscroll.Cell {
	return vscroll.NewTextCell()
}

func (s *paragraphs) Bind(index int, c vscroll.Cell) {
	lines := make([]string, s.lines(index))
	for i := range lines {
		lines[i] = fmt.Sprintf("#%d line %d", index, i+1)
	}
	c.(*vscroll.TextCell).SetText(strings.Join(lines, "\n"))
}

func newMessageCell() *vscroll.TextCell {
	cell := vscroll.NewTextCell()
	cell.SetBorderPadding(0, 1, 1, 1)
	return cell
}

// sourceFor returns a data source suited to the layout kind.
func sourceFor(kind string, count int) vscroll.DataSource {
	switch kind {
	case vscroll.LayoutAuto:
		return &messages{count: count}
	case vscroll.LayoutLazy:
		return newLazyMessages(count)
	case vscroll.LayoutSized:
		return &paragraphs{count: count}
	}
	return &labels{count: count}
}

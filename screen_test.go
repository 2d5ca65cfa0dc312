package vscroll

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v3"
)

type screenCell struct {
	str   string
	style tcell.Style
}

// fakeScreen records Put calls. Every other Screen method panics through the
// nil embedded interface.
type fakeScreen struct {
	tcell.Screen
	width, height int
	cells         map[[2]int]screenCell
}

func newFakeScreen(width, height int) *fakeScreen {
	return &fakeScreen{width: width, height: height, cells: map[[2]int]screenCell{}}
}

func (s *fakeScreen) Size() (int, int) {
	return s.width, s.height
}

func (s *fakeScreen) Put(x, y int, str string, style tcell.Style) (string, int) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return str, 0
	}
	s.cells[[2]int{x, y}] = screenCell{str: str, style: style}
	return "", 1
}

func (s *fakeScreen) Get(x, y int) (string, tcell.Style, int) {
	c, ok := s.cells[[2]int{x, y}]
	if !ok {
		return " ", tcell.StyleDefault, 1
	}
	return c.str, c.style, 1
}

func (s *fakeScreen) str(x, y int) string {
	str, _, _ := s.Get(x, y)
	return str
}

// row returns the text of row y between columns from and to.
func (s *fakeScreen) row(y, from, to int) string {
	var b strings.Builder
	for x := from; x < to; x++ {
		b.WriteString(s.str(x, y))
	}
	return b.String()
}

// textSource feeds TextCells labelled "item N".
type textSource struct {
	count   int
	created int
}

func (s *textSource) Count() int { return s.count }

func (s *textSource) NewCell(int) Cell {
	s.created++
	return NewTextCell()
}

func (s *textSource) Bind(index int, c Cell) {
	c.(*TextCell).SetText(fmt.Sprintf("item %d", index))
}

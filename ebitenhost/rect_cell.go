package ebitenhost

import (
	"image/color"

	"github.com/ayn2op/vscroll"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Bounds is a cell's screen rect in pixels.
type Bounds struct {
	X, Y, Width, Height float32
}

// DrawableCell is a cell the Driver can draw.
type DrawableCell interface {
	vscroll.Cell
	Placement() vscroll.Placement
	Draw(dst *ebiten.Image, bounds Bounds)
}

// RectCell is a filled rectangle. Scale shrinks it around its centre, which
// carousels use to emphasise the selected cell.
type RectCell struct {
	Color color.Color
	Scale float32

	active    bool
	placement vscroll.Placement
}

// NewRectCell returns an inactive cell of the given color at full scale.
func NewRectCell(c color.Color) *RectCell {
	return &RectCell{Color: c, Scale: 1}
}

func (c *RectCell) SetActive(active bool) {
	c.active = active
}

func (c *RectCell) Active() bool {
	return c.active
}

func (c *RectCell) SetPlacement(p vscroll.Placement) {
	c.placement = p
}

func (c *RectCell) Placement() vscroll.Placement {
	return c.placement
}

// scaled returns b shrunk by the cell's scale around its centre.
func (c *RectCell) scaled(b Bounds) Bounds {
	scale := min(max(c.Scale, 0), 1)
	width, height := b.Width*scale, b.Height*scale
	return Bounds{
		X:      b.X + (b.Width-width)/2,
		Y:      b.Y + (b.Height-height)/2,
		Width:  width,
		Height: height,
	}
}

// Draw fills the cell's bounds. Inactive cells draw nothing.
func (c *RectCell) Draw(dst *ebiten.Image, bounds Bounds) {
	if !c.active || c.Color == nil {
		return
	}
	b := c.scaled(bounds)
	vector.DrawFilledRect(dst, b.X, b.Y, b.Width, b.Height, c.Color, false)
}

var _ DrawableCell = &RectCell{}

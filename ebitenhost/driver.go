// Package ebitenhost runs a vscroll.View inside an ebiten game: it feeds the
// view mouse, wheel and arrow key input, ticks it once per frame and draws
// its cells.
package ebitenhost

import (
	"image"
	"image/color"

	"github.com/ayn2op/vscroll"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Driver implements ebiten.Game for a single view. The viewport fills the
// window unless SetViewport pins it to a rect.
type Driver struct {
	view       *vscroll.View
	tracker    pointerTracker
	background color.Color
	fill       bool
}

// NewDriver returns a driver for view with a black background.
func NewDriver(view *vscroll.View) *Driver {
	return &Driver{view: view, background: color.Black, fill: true}
}

func (d *Driver) View() *vscroll.View {
	return d.view
}

// SetBackground sets the viewport fill color. Nil leaves the screen as is.
func (d *Driver) SetBackground(c color.Color) *Driver {
	d.background = c
	return d
}

// SetViewport pins the viewport to a rect in screen pixels.
func (d *Driver) SetViewport(x, y, width, height int) *Driver {
	d.fill = false
	d.setViewport(rect{X: x, Y: y, Width: width, Height: height})
	return d
}

func (d *Driver) setViewport(r rect) {
	d.tracker.viewport = r
	if d.view.Scroller().Axis() == vscroll.Horizontal {
		d.view.SetViewport(float64(r.Width), float64(r.Height))
	} else {
		d.view.SetViewport(float64(r.Height), float64(r.Width))
	}
}

// Update reads this frame's input and advances the view by one tick.
func (d *Driver) Update() error {
	x, y := ebiten.CursorPosition()
	wheelX, wheelY := ebiten.Wheel()
	apply(d.view, d.tracker.next(pointerState{
		X:       x,
		Y:       y,
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		WheelX:  wheelX,
		WheelY:  wheelY,
	}))

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown), inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		step(d.view, 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp), inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		step(d.view, -1)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		d.view.StopScroll()
	}

	d.view.Tick(1 / float64(ebiten.TPS()))
	return nil
}

// step moves one cell in carousels and one wheel step in lists.
func step(v *vscroll.View, direction int) {
	if carousel, ok := v.Layout().(*vscroll.Carousel); ok {
		if direction > 0 {
			carousel.Next(v)
		} else {
			carousel.Prev(v)
		}
		return
	}
	v.Scroll(vscroll.WheelEvent{Delta: vscroll.Point{Y: -float64(direction)}})
}

// Draw fills the viewport and draws every visible DrawableCell clipped to it.
func (d *Driver) Draw(screen *ebiten.Image) {
	r := d.tracker.viewport
	clip, ok := screen.SubImage(image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)).(*ebiten.Image)
	if !ok {
		return
	}
	if d.background != nil {
		clip.Fill(d.background)
	}
	d.view.Pool().Each(func(_ int, c vscroll.Cell) {
		if cell, ok := c.(DrawableCell); ok {
			cell.Draw(clip, cellBounds(d.view, r, cell.Placement()))
		}
	})
}

// Layout keeps the logical screen the size of the window.
func (d *Driver) Layout(outsideWidth, outsideHeight int) (int, int) {
	if d.fill {
		d.setViewport(rect{Width: outsideWidth, Height: outsideHeight})
	}
	return outsideWidth, outsideHeight
}

// cellBounds converts a placement into screen pixels inside r. A zero
// breadth fills the viewport across the scroll axis.
func cellBounds(v *vscroll.View, r rect, p vscroll.Placement) Bounds {
	lead := float32(v.LeadingEdge(p))
	length := float32(p.Length)

	if v.Scroller().Axis() == vscroll.Horizontal {
		y, breadth := float32(r.Y), float32(r.Height)
		if p.Breadth > 0 {
			breadth = float32(p.Breadth)
			y += float32(r.Height)/2 - float32(p.Cross) - breadth/2
		}
		return Bounds{X: float32(r.X) + lead, Y: y, Width: length, Height: breadth}
	}

	x, breadth := float32(r.X), float32(r.Width)
	if p.Breadth > 0 {
		breadth = float32(p.Breadth)
		x += float32(r.Width)/2 + float32(p.Cross) - breadth/2
	}
	return Bounds{X: x, Y: float32(r.Y) + lead, Width: breadth, Height: length}
}

var _ ebiten.Game = &Driver{}

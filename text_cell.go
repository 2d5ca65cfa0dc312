package vscroll

import (
	"strings"

	"github.com/gdamore/tcell/v3"
)

// CellView is a cell that a ScrollView can draw. The view converts the cell's
// placement into a screen rect before drawing it.
type CellView interface {
	Cell
	Placement() Placement
	SetRect(x, y, width, height int)
	Draw(screen tcell.Screen)
}

// TextCell is a recyclable cell showing word-wrapped text. It measures itself
// for the auto-measured and lazy layouts: the wrapped line count in vertical
// views, the widest line in horizontal ones.
type TextCell struct {
	*Box

	text      string
	textStyle tcell.Style
	alignment Alignment

	active    bool
	placement Placement
}

// NewTextCell returns an empty, inactive text cell.
func NewTextCell() *TextCell {
	box := NewBox()
	box.SetBackgroundColor(Styles.CellBackgroundColor)
	return &TextCell{
		Box:       box,
		textStyle: tcell.StyleDefault.Foreground(Styles.PrimaryTextColor).Background(Styles.CellBackgroundColor),
	}
}

// SetText sets the cell's text. Newlines start new lines.
func (c *TextCell) SetText(text string) *TextCell {
	if c.text != text {
		c.text = text
		c.MarkDirty()
	}
	return c
}

func (c *TextCell) Text() string {
	return c.text
}

func (c *TextCell) SetTextStyle(style tcell.Style) *TextCell {
	if c.textStyle != style {
		c.textStyle = style
		c.MarkDirty()
	}
	return c
}

// SetBackgroundColor sets the background of the box and the text.
func (c *TextCell) SetBackgroundColor(color tcell.Color) *TextCell {
	c.Box.SetBackgroundColor(color)
	c.SetTextStyle(c.textStyle.Background(color))
	return c
}

func (c *TextCell) SetAlignment(alignment Alignment) *TextCell {
	if c.alignment != alignment {
		c.alignment = alignment
		c.MarkDirty()
	}
	return c
}

// SetActive shows or hides the cell. The pool deactivates released cells.
func (c *TextCell) SetActive(active bool) {
	if c.active != active {
		c.active = active
		c.MarkDirty()
	}
}

func (c *TextCell) Active() bool {
	return c.active
}

func (c *TextCell) SetPlacement(p Placement) {
	if c.placement != p {
		c.placement = p
		c.MarkDirty()
	}
}

func (c *TextCell) Placement() Placement {
	return c.placement
}

// Measure returns the cell's length along axis when it is breadth cells
// wide or tall, frame included.
func (c *TextCell) Measure(axis Axis, breadth float64) float64 {
	frameWidth, frameHeight := c.frameSize()
	if axis == Horizontal {
		width := 0
		for line := range strings.SplitSeq(c.text, "\n") {
			width = max(width, TaggedStringWidth(line))
		}
		return float64(max(width, 1) + frameWidth)
	}
	lines := wrappedHeight(c.text, int(breadth)-frameWidth)
	return float64(max(lines, 1) + frameHeight)
}

// Destroy unhooks the cell from the view it was drawn in.
func (c *TextCell) Destroy() {
	c.active = false
	c.clearDirtyParent()
}

// Draw draws the frame and the wrapped text. Inactive cells draw nothing.
func (c *TextCell) Draw(screen tcell.Screen) {
	defer c.MarkClean()
	if !c.active {
		return
	}
	c.drawFrame(screen)

	x, y, width, height := c.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	for row, line := range WordWrap(c.text, width) {
		if row >= height {
			break
		}
		printWithStyle(screen, strings.TrimRight(line, " "), x, y+row, width, c.alignment, c.textStyle)
	}
}

var (
	_ CellView  = &TextCell{}
	_ Measurer  = &TextCell{}
	_ Destroyer = &TextCell{}
)

package vscroll

import (
	"github.com/gdamore/tcell/v3"
	"go.uber.org/atomic"
)

// Box implements the Primitive interface with an empty background and optional
// elements such as a border, a title and a footer. Box itself does not hold
// any content but serves as the base of ScrollView, ScrollBar and TextCell.
type Box struct {
	// The position of the rect.
	x, y, width, height int

	// The inner rect reserved for the box's content. If innerX is negative,
	// the rect is undefined and must be calculated.
	innerX, innerY, innerWidth, innerHeight int

	// Border padding.
	paddingTop, paddingBottom, paddingLeft, paddingRight int

	backgroundColor tcell.Color
	// If set to true, the background of this box is not cleared while drawing.
	dontClear bool

	borders     Borders
	borderSet   BorderSet
	borderStyle tcell.Style

	title          string
	titleStyle     tcell.Style
	titleAlignment Alignment

	footer          string
	footerStyle     tcell.Style
	footerAlignment Alignment

	hasFocus bool

	// dirty indicates whether this primitive needs to be redrawn.
	dirty atomic.Bool
	// dirtyParent is notified when this primitive transitions from clean to
	// dirty.
	dirtyParent atomic.Pointer[Box]

	focus, blur func()
}

// NewBox returns a Box without a border.
func NewBox() *Box {
	b := &Box{
		width:           15,
		height:          10,
		innerX:          -1,
		backgroundColor: Styles.PrimitiveBackgroundColor,

		borderStyle: tcell.StyleDefault.Foreground(Styles.BorderColor).Background(Styles.PrimitiveBackgroundColor),
		borderSet:   BorderSetPlain(),

		titleStyle:      tcell.StyleDefault.Foreground(Styles.TitleColor).Background(Styles.PrimitiveBackgroundColor),
		titleAlignment:  AlignmentCenter,
		footerStyle:     tcell.StyleDefault.Foreground(Styles.TitleColor).Background(Styles.PrimitiveBackgroundColor),
		footerAlignment: AlignmentLeft,
	}
	b.dirty.Store(true)
	return b
}

// SetBorderPadding sets the size of the borders around the box content.
func (b *Box) SetBorderPadding(top, bottom, left, right int) *Box {
	if b.paddingTop != top || b.paddingBottom != bottom || b.paddingLeft != left || b.paddingRight != right {
		b.paddingTop, b.paddingBottom, b.paddingLeft, b.paddingRight = top, bottom, left, right
		b.innerX = -1
		b.MarkDirty()
	}
	return b
}

// GetRect returns the current position of the rectangle, x, y, width, and
// height.
func (b *Box) GetRect() (int, int, int, int) {
	return b.x, b.y, b.width, b.height
}

// GetInnerRect returns the position of the inner rectangle (x, y, width,
// height), without the border and without any padding. Width and height values
// will clamp to 0 and thus never be negative.
func (b *Box) GetInnerRect() (int, int, int, int) {
	if b.innerX >= 0 {
		return b.innerX, b.innerY, b.innerWidth, b.innerHeight
	}

	x, y, width, height := b.GetRect()
	if b.title != "" || b.borders.Has(BordersTop) {
		y++
	}
	if b.borders.Has(BordersLeft) {
		x++
	}
	frameWidth, frameHeight := b.frameSize()
	x += b.paddingLeft
	y += b.paddingTop
	width -= frameWidth
	height -= frameHeight
	return x, y, max(width, 0), max(height, 0)
}

// frameSize returns how many columns and rows the frame and padding take
// from the rect.
func (b *Box) frameSize() (width, height int) {
	if b.title != "" || b.borders.Has(BordersTop) {
		height++
	}
	if b.footer != "" || b.borders.Has(BordersBottom) {
		height++
	}
	if b.borders.Has(BordersLeft) {
		width++
	}
	if b.borders.Has(BordersRight) {
		width++
	}
	return width + b.paddingLeft + b.paddingRight, height + b.paddingTop + b.paddingBottom
}

// SetRect sets a new position of the primitive.
func (b *Box) SetRect(x, y, width, height int) {
	if b.x != x || b.y != y || b.width != width || b.height != height {
		b.x, b.y, b.width, b.height = x, y, width, height
		b.innerX = -1
		b.MarkDirty()
	}
}

// IsDirty returns whether this primitive needs redrawing.
func (b *Box) IsDirty() bool {
	return b.dirty.Load()
}

// MarkDirty marks this primitive, and the parent it was bound to, as needing
// a redraw.
func (b *Box) MarkDirty() {
	if b.dirty.Swap(true) {
		return
	}
	if parent := b.dirtyParent.Load(); parent != nil {
		parent.MarkDirty()
	}
}

// MarkClean marks this primitive as clean.
func (b *Box) MarkClean() {
	b.dirty.Store(false)
}

func (b *Box) setDirtyParent(parent *Box) {
	if parent == nil || parent == b {
		return
	}
	b.dirtyParent.Store(parent)
}

// detachDirtyParent stops forwarding dirty marks to parent, unless the box
// has been bound to another parent since.
func (b *Box) detachDirtyParent(parent *Box) {
	b.dirtyParent.CompareAndSwap(parent, nil)
}

func (b *Box) clearDirtyParent() {
	b.dirtyParent.Store(nil)
}

type dirtyParentSetter interface {
	setDirtyParent(parent *Box)
}

func bindDirtyParent(child any, parent *Box) {
	if setter, ok := child.(dirtyParentSetter); ok && parent != nil {
		setter.setDirtyParent(parent)
	}
}

// InputHandler ignores key events.
func (b *Box) InputHandler(*tcell.EventKey) Command {
	return nil
}

// MouseHandler focuses the box on a left click inside it.
func (b *Box) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if action == MouseLeftDown && b.InRect(event.Position()) {
		return nil, SetFocusCommand{Target: b}
	}
	return nil, nil
}

// InRect returns true if the given coordinate is within the bounds of the box's
// rectangle.
func (b *Box) InRect(x, y int) bool {
	rectX, rectY, width, height := b.GetRect()
	return x >= rectX && x < rectX+width && y >= rectY && y < rectY+height
}

// InInnerRect returns true if the given coordinate is within the bounds of the
// box's inner rectangle (within the border and padding).
func (b *Box) InInnerRect(x, y int) bool {
	rectX, rectY, width, height := b.GetInnerRect()
	return x >= rectX && x < rectX+width && y >= rectY && y < rectY+height
}

// SetBackgroundColor sets the box's background color.
func (b *Box) SetBackgroundColor(color tcell.Color) *Box {
	if b.backgroundColor != color {
		b.backgroundColor = color
		b.borderStyle = b.borderStyle.Background(color)
		b.MarkDirty()
	}
	return b
}

func (b *Box) GetBackgroundColor() tcell.Color {
	return b.backgroundColor
}

// SetDontClear keeps whatever is on screen under the box instead of filling
// it with the background color.
func (b *Box) SetDontClear(dontClear bool) *Box {
	b.dontClear = dontClear
	return b
}

func (b *Box) GetBorders() Borders {
	return b.borders
}

// SetBorders sets which borders to draw.
func (b *Box) SetBorders(flag Borders) *Box {
	if b.borders != flag {
		b.borders = flag
		b.innerX = -1
		b.MarkDirty()
	}
	return b
}

func (b *Box) SetBorderSet(borderSet BorderSet) *Box {
	if b.borderSet != borderSet {
		b.borderSet = borderSet
		b.MarkDirty()
	}
	return b
}

func (b *Box) SetBorderStyle(style tcell.Style) *Box {
	if b.borderStyle != style {
		b.borderStyle = style
		b.MarkDirty()
	}
	return b
}

func (b *Box) GetTitle() string {
	return b.title
}

func (b *Box) SetTitle(title string) *Box {
	if b.title != title {
		b.title = title
		b.innerX = -1
		b.MarkDirty()
	}
	return b
}

func (b *Box) SetTitleAlignment(alignment Alignment) *Box {
	if b.titleAlignment != alignment {
		b.titleAlignment = alignment
		b.MarkDirty()
	}
	return b
}

func (b *Box) GetFooter() string {
	return b.footer
}

// SetFooter sets a line of text drawn over the bottom border.
func (b *Box) SetFooter(footer string) *Box {
	if b.footer != footer {
		b.footer = footer
		b.innerX = -1
		b.MarkDirty()
	}
	return b
}

func (b *Box) SetFooterStyle(style tcell.Style) *Box {
	if b.footerStyle != style {
		b.footerStyle = style
		b.MarkDirty()
	}
	return b
}

// Draw draws this primitive onto the screen.
func (b *Box) Draw(screen tcell.Screen) {
	b.drawFrame(screen)
}

// drawFrame fills the background and draws border, title and footer, then
// remembers the inner rect for the content.
func (b *Box) drawFrame(screen tcell.Screen) {
	if b.width <= 0 || b.height <= 0 {
		return
	}

	if !b.dontClear {
		background := tcell.StyleDefault.Background(b.backgroundColor)
		for y := b.y; y < b.y+b.height; y++ {
			for x := b.x; x < b.x+b.width; x++ {
				screen.Put(x, y, " ", background)
			}
		}
	}

	right, bottom := b.x+b.width-1, b.y+b.height-1
	if b.borders != BordersNone && b.width >= 2 && b.height >= 2 {
		set := b.borderSet
		for x := b.x + 1; x < right; x++ {
			if b.borders.Has(BordersTop) {
				screen.Put(x, b.y, set.Horizontal, b.borderStyle)
			}
			if b.borders.Has(BordersBottom) {
				screen.Put(x, bottom, set.Horizontal, b.borderStyle)
			}
		}
		for y := b.y + 1; y < bottom; y++ {
			if b.borders.Has(BordersLeft) {
				screen.Put(b.x, y, set.Vertical, b.borderStyle)
			}
			if b.borders.Has(BordersRight) {
				screen.Put(right, y, set.Vertical, b.borderStyle)
			}
		}
		if b.borders == BordersAll {
			screen.Put(b.x, b.y, set.TopLeft, b.borderStyle)
			screen.Put(right, b.y, set.TopRight, b.borderStyle)
			screen.Put(b.x, bottom, set.BottomLeft, b.borderStyle)
			screen.Put(right, bottom, set.BottomRight, b.borderStyle)
		}
	}

	if b.title != "" && b.width >= 4 {
		printWithStyle(screen, b.title, b.x+1, b.y, b.width-2, b.titleAlignment, b.titleStyle)
	}
	if b.footer != "" && b.width >= 4 {
		printWithStyle(screen, b.footer, b.x+1, bottom, b.width-2, b.footerAlignment, b.footerStyle)
	}

	b.innerX = -1
	b.innerX, b.innerY, b.innerWidth, b.innerHeight = b.GetInnerRect()
}

// SetFocusFunc sets a callback invoked when this primitive receives focus.
func (b *Box) SetFocusFunc(callback func()) *Box {
	b.focus = callback
	return b
}

// SetBlurFunc sets a callback invoked when this primitive loses focus.
func (b *Box) SetBlurFunc(callback func()) *Box {
	b.blur = callback
	return b
}

// Focus is called when this primitive directly receives focus.
func (b *Box) Focus(delegate func(p Primitive)) {
	if !b.hasFocus {
		b.hasFocus = true
		b.MarkDirty()
	}
	if b.focus != nil {
		b.focus()
	}
}

// Blur is called when this primitive directly loses focus.
func (b *Box) Blur() {
	if b.hasFocus {
		b.hasFocus = false
		b.MarkDirty()
	}
	if b.blur != nil {
		b.blur()
	}
}

func (b *Box) HasFocus() bool {
	return b.hasFocus
}

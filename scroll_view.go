package vscroll

import (
	"math"
	"strconv"
	"strings"

	"github.com/ayn2op/vscroll/keybind"
	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

// ScrollAction is a keyboard command understood by ScrollView.
type ScrollAction int

const (
	ScrollStepBackward ScrollAction = iota
	ScrollStepForward
	ScrollPageBackward
	ScrollPageForward
	ScrollToStart
	ScrollToEnd
	ScrollStop
)

// DefaultScrollKeys returns the key map NewScrollView installs.
func DefaultScrollKeys() *keybind.Map[ScrollAction] {
	return keybind.NewMap[ScrollAction]().
		Set(ScrollStepBackward, keybind.NewKeybind(
			keybind.WithKeys("up", "k", "left", "h"),
			keybind.WithHelp("↑/k", "back"),
		)).
		Set(ScrollStepForward, keybind.NewKeybind(
			keybind.WithKeys("down", "j", "right", "l"),
			keybind.WithHelp("↓/j", "forward"),
		)).
		Set(ScrollPageBackward, keybind.NewKeybind(
			keybind.WithKeys("pgup", "ctrl+b"),
			keybind.WithHelp("pgup", "page back"),
		)).
		Set(ScrollPageForward, keybind.NewKeybind(
			keybind.WithKeys("pgdn", "ctrl+f", "space"),
			keybind.WithHelp("pgdn", "page forward"),
		)).
		Set(ScrollToStart, keybind.NewKeybind(
			keybind.WithKeys("home", "g"),
			keybind.WithHelp("home/g", "start"),
		)).
		Set(ScrollToEnd, keybind.NewKeybind(
			keybind.WithKeys("end", "G"),
			keybind.WithHelp("end/G", "end"),
		)).
		Set(ScrollStop, keybind.NewKeybind(
			keybind.WithKeys("esc"),
			keybind.WithHelp("esc", "stop"),
		))
}

// DefaultTerminalWheelStep is how many rows or columns one wheel notch
// scrolls in a ScrollView.
const DefaultTerminalWheelStep = 3

// The mouse is a single pointer.
const mousePointer = 0

// ScrollView hosts a View in a terminal. One view unit is one terminal cell.
// Cells that implement CellView are drawn at their placements and clipped to
// the viewport. An optional ScrollBar takes the last column (vertical views)
// or row (horizontal views). Carousels get a row of page dots at the bottom.
//
// ScrollView implements Animator: the Application ticks the view every frame
// and redraws while it moves.
type ScrollView struct {
	*Box

	view *View
	bar  *ScrollBar
	keys *keybind.Map[ScrollAction]

	indicator bool
	// The page dot row of the last draw, or -1.
	indicatorY int

	// The viewport rect of the last draw.
	viewX, viewY, viewWidth, viewHeight int
}

// NewScrollView wraps view with a scroll bar and the default keys.
func NewScrollView(view *View) *ScrollView {
	s := &ScrollView{
		Box:        NewBox(),
		view:       view,
		keys:       DefaultScrollKeys(),
		indicator:  true,
		indicatorY: -1,
	}
	view.SetWheelStep(DefaultTerminalWheelStep)
	s.SetScrollBar(NewScrollBar())
	return s
}

// View returns the hosted view.
func (s *ScrollView) View() *View {
	return s.view
}

// ScrollBar returns the scroll bar, or nil.
func (s *ScrollView) ScrollBar() *ScrollBar {
	return s.bar
}

// SetScrollBar replaces the scroll bar. A nil bar gives its space back to the
// viewport.
func (s *ScrollView) SetScrollBar(bar *ScrollBar) *ScrollView {
	if s.bar != nil {
		s.bar.SetChangedFunc(nil)
		s.bar.detachDirtyParent(s.Box)
	}
	s.bar = bar
	if bar == nil {
		s.view.SetScrollbar(nil)
	} else {
		bindDirtyParent(bar, s.Box)
		bar.SetChangedFunc(s.view.SetNormalizedPosition)
		s.view.SetScrollbar(bar)
	}
	s.view.MarkDirty()
	s.MarkDirty()
	return s
}

// SetIndicatorVisible shows or hides the page dots under a carousel.
func (s *ScrollView) SetIndicatorVisible(visible bool) *ScrollView {
	if s.indicator != visible {
		s.indicator = visible
		s.MarkDirty()
	}
	return s
}

// Keys returns the key map so callers can rebind or disable actions.
func (s *ScrollView) Keys() *keybind.Map[ScrollAction] {
	return s.keys
}

// SetKeys replaces the key map.
func (s *ScrollView) SetKeys(keys *keybind.Map[ScrollAction]) *ScrollView {
	s.keys = keys
	return s
}

// Animate advances the view by dt seconds and reports whether a redraw is
// needed.
func (s *ScrollView) Animate(dt float64) bool {
	if s.view.Animating() {
		s.view.Tick(dt)
		return true
	}
	return s.IsDirty()
}

// layoutRects splits the inner rect into the viewport, the scroll bar and the
// page dot row.
func (s *ScrollView) layoutRects() (x, y, width, height int) {
	x, y, width, height = s.GetInnerRect()
	s.indicatorY = -1
	if _, ok := s.view.Layout().(*Carousel); ok && s.indicator && height > 1 {
		height--
		s.indicatorY = y + height
	}
	if s.bar == nil {
		return x, y, width, height
	}
	if s.view.Scroller().Axis() == Horizontal {
		s.bar.SetOrientation(OrientationHorizontal)
		height = max(height-1, 0)
		s.bar.SetRect(x, y+height, width, 1)
	} else {
		s.bar.SetOrientation(OrientationVertical)
		width = max(width-1, 0)
		s.bar.SetRect(x+width, y, 1, height)
	}
	return x, y, width, height
}

// Draw draws the frame, the visible cells and the scroll bar.
func (s *ScrollView) Draw(screen tcell.Screen) {
	defer s.MarkClean()
	s.drawFrame(screen)

	x, y, width, height := s.layoutRects()
	s.viewX, s.viewY, s.viewWidth, s.viewHeight = x, y, width, height
	if s.view.Scroller().Axis() == Horizontal {
		s.view.SetViewport(float64(width), float64(height))
	} else {
		s.view.SetViewport(float64(height), float64(width))
	}
	if s.view.Animating() {
		s.view.Tick(0)
	}

	if width > 0 && height > 0 {
		clipped := newClippedScreen(screen, x, y, width, height)
		s.view.Pool().Each(func(_ int, c Cell) {
			cv, ok := c.(CellView)
			if !ok {
				return
			}
			bindDirtyParent(c, s.Box)
			cv.SetRect(s.cellRect(cv.Placement()))
			cv.Draw(clipped)
		})
	}

	if s.bar != nil {
		s.bar.Draw(screen)
	}
	s.drawIndicator(screen)
}

// drawIndicator centres one dot per carousel item on the indicator row, or a
// "3/12" counter when the dots do not fit.
func (s *ScrollView) drawIndicator(screen tcell.Screen) {
	carousel, ok := s.view.Layout().(*Carousel)
	if !ok || s.indicatorY < 0 {
		return
	}
	dots := carousel.Indicator(s.view)
	if len(dots) == 0 {
		return
	}
	x, _, width, _ := s.GetInnerRect()

	var text string
	if 2*len(dots)-1 > width {
		text = strconv.Itoa(carousel.Selected(s.view)+1) + "/" + strconv.Itoa(len(dots))
	} else {
		var b strings.Builder
		for i, on := range dots {
			if i > 0 {
				b.WriteByte(' ')
			}
			if on {
				b.WriteString("●")
			} else {
				b.WriteString("○")
			}
		}
		text = b.String()
	}
	style := tcell.StyleDefault.Foreground(Styles.SecondaryTextColor).Background(s.backgroundColor)
	Print(screen, text, x, s.indicatorY, width, AlignmentCenter, style)
}

// cellRect converts a placement into a screen rect inside the viewport.
func (s *ScrollView) cellRect(p Placement) (x, y, width, height int) {
	lead := s.view.LeadingEdge(p)
	start := int(math.Round(lead))
	length := int(math.Round(lead+p.Length)) - start

	if s.view.Scroller().Axis() == Horizontal {
		top, breadth := s.viewY, s.viewHeight
		if p.Breadth > 0 {
			breadth = int(math.Round(p.Breadth))
			top += int(math.Round(float64(s.viewHeight)/2 - p.Cross - p.Breadth/2))
		}
		return s.viewX + start, top, length, breadth
	}

	left, breadth := s.viewX, s.viewWidth
	if p.Breadth > 0 {
		breadth = int(math.Round(p.Breadth))
		left += int(math.Round(float64(s.viewWidth)/2 + p.Cross - p.Breadth/2))
	}
	return left, s.viewY + start, breadth, length
}

// localPoint converts screen coordinates into y-up viewport coordinates.
func (s *ScrollView) localPoint(x, y int) Point {
	return Point{
		X: float64(x - s.viewX),
		Y: float64(s.viewY + s.viewHeight - 1 - y),
	}
}

func (s *ScrollView) inViewport(x, y int) bool {
	return x >= s.viewX && x < s.viewX+s.viewWidth && y >= s.viewY && y < s.viewY+s.viewHeight
}

// InputHandler runs the action bound to the pressed key.
func (s *ScrollView) InputHandler(event *tcell.EventKey) Command {
	if s.keys == nil {
		return nil
	}
	action, ok := s.keys.Lookup(event)
	if !ok || !s.handleAction(action) {
		return nil
	}
	return RedrawCommand{}
}

// handleAction applies a keyboard action and reports whether it applied.
// Carousels move one cell per step or page.
func (s *ScrollView) handleAction(action ScrollAction) bool {
	v := s.view
	if v.DataSource() == nil {
		return false
	}
	if carousel, ok := v.Layout().(*Carousel); ok {
		return s.handleCarouselAction(carousel, action)
	}

	dir := v.Scroller().Direction()
	switch action {
	case ScrollStepBackward:
		v.Scroll(WheelEvent{Delta: Point{Y: 1}})
	case ScrollStepForward:
		v.Scroll(WheelEvent{Delta: Point{Y: -1}})
	case ScrollPageBackward:
		v.Scroller().Stop()
		v.SetTarget(v.ClampPosition(v.Target() - v.ViewportLength()*dir))
	case ScrollPageForward:
		v.Scroller().Stop()
		v.SetTarget(v.ClampPosition(v.Target() + v.ViewportLength()*dir))
	case ScrollToStart:
		v.SetNormalizedPosition(0)
	case ScrollToEnd:
		v.SetNormalizedPosition(1)
	case ScrollStop:
		v.StopScroll()
	default:
		return false
	}
	return true
}

func (s *ScrollView) handleCarouselAction(carousel *Carousel, action ScrollAction) bool {
	v := s.view
	switch action {
	case ScrollStepBackward, ScrollPageBackward:
		carousel.Prev(v)
	case ScrollStepForward, ScrollPageForward:
		carousel.Next(v)
	case ScrollToStart:
		carousel.SetPositionIndex(v, 0, true)
	case ScrollToEnd:
		carousel.SetPositionIndex(v, v.DataSource().Count()-1, true)
	case ScrollStop:
		v.StopScroll()
	default:
		return false
	}
	return true
}

// MouseHandler drags the content with the left button and scrolls with the
// wheel. The view captures the mouse while dragging.
func (s *ScrollView) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()
	return s.handleMouse(action, x, y)
}

func (s *ScrollView) handleMouse(action MouseAction, x, y int) (Primitive, Command) {
	if s.bar != nil && !s.bar.Hidden() && (s.bar.grab >= 0 || s.bar.InRect(x, y)) {
		capture, cmd := s.bar.handleMouse(action, x, y)
		if action == MouseLeftDown {
			cmd = AppendCommand(SetFocusCommand{Target: s}, cmd)
		}
		return capture, cmd
	}

	v := s.view
	pointer := PointerEvent{ID: mousePointer, Position: s.localPoint(x, y)}
	switch action {
	case MouseLeftDown:
		if !s.inViewport(x, y) {
			return nil, nil
		}
		v.BeginDrag(pointer)
		return s, BatchCommand{SetFocusCommand{Target: s}, RedrawCommand{}}
	case MouseMove:
		if !v.Dragging() {
			return nil, nil
		}
		v.Drag(pointer)
		return s, RedrawCommand{}
	case MouseLeftUp:
		if !v.Dragging() {
			return nil, nil
		}
		v.EndDrag(pointer)
		return nil, RedrawCommand{}
	}

	if !s.InRect(x, y) {
		return nil, nil
	}
	var delta Point
	switch action {
	case MouseScrollUp:
		delta.Y = 1
	case MouseScrollDown:
		delta.Y = -1
	case MouseScrollLeft:
		delta.X = 1
	case MouseScrollRight:
		delta.X = -1
	default:
		return nil, nil
	}
	v.Scroll(WheelEvent{Delta: delta})
	return nil, RedrawCommand{}
}

// clippedScreen drops every write outside its rect, so cells that straddle
// the viewport edge never paint over the frame.
type clippedScreen struct {
	tcell.Screen
	x      int
	y      int
	width  int
	height int
}

func newClippedScreen(screen tcell.Screen, x, y, width, height int) *clippedScreen {
	return &clippedScreen{
		Screen: screen,
		x:      x,
		y:      y,
		width:  width,
		height: height,
	}
}

func (s *clippedScreen) inBounds(x, y int) bool {
	return x >= s.x && x < s.x+s.width && y >= s.y && y < s.y+s.height
}

// Size reports the clip rect's far corner so printing stops at the clip.
func (s *clippedScreen) Size() (int, int) {
	width, height := s.Screen.Size()
	return min(width, s.x+s.width), min(height, s.y+s.height)
}

func (s *clippedScreen) Put(x int, y int, str string, style tcell.Style) (string, int) {
	if !s.inBounds(x, y) {
		return str, 0
	}
	return s.Screen.Put(x, y, str, style)
}

func (s *clippedScreen) PutStr(x int, y int, str string) {
	s.PutStrStyled(x, y, str, tcell.StyleDefault)
}

func (s *clippedScreen) PutStrStyled(x int, y int, str string, style tcell.Style) {
	if y < s.y || y >= s.y+s.height {
		return
	}

	gr := uniseg.NewGraphemes(str)
	for gr.Next() {
		cluster := gr.Str()
		width := max(uniseg.StringWidth(cluster), 1)
		if x >= s.x+s.width {
			return
		}
		if x >= s.x && x+width <= s.x+s.width {
			s.Screen.Put(x, y, cluster, style)
		}
		x += width
	}
}

func (s *clippedScreen) ShowCursor(x int, y int) {
	if !s.inBounds(x, y) {
		s.Screen.ShowCursor(-1, -1)
		return
	}
	s.Screen.ShowCursor(x, y)
}

var (
	_ Primitive = &ScrollView{}
	_ Animator  = &ScrollView{}
)

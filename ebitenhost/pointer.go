package ebitenhost

import "github.com/ayn2op/vscroll"

// mousePointer is the pointer ID used for the mouse.
const mousePointer = 0

// pointerState is one frame of raw input in screen pixels, y down.
type pointerState struct {
	X, Y           int
	Pressed        bool
	WheelX, WheelY float64
}

type inputKind int

const (
	inputBegin inputKind = iota
	inputDrag
	inputEnd
	inputWheel
)

// input is a view call derived from one frame of pointer state.
type input struct {
	kind    inputKind
	pointer vscroll.PointerEvent
	wheel   vscroll.WheelEvent
}

// rect is a viewport in screen pixels.
type rect struct {
	X, Y, Width, Height int
}

func (r rect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// pointerTracker turns per-frame button and wheel state into drag and wheel
// inputs. A drag starts when the button goes down inside the viewport and
// follows the cursor until the button is released, wherever the cursor is.
type pointerTracker struct {
	viewport rect
	pressed  bool
	active   bool
	lastX    int
	lastY    int
}

// local converts screen pixels into y-up viewport coordinates.
func (t *pointerTracker) local(x, y int) vscroll.Point {
	return vscroll.Point{
		X: float64(x - t.viewport.X),
		Y: float64(t.viewport.Y + t.viewport.Height - y),
	}
}

func (t *pointerTracker) pointer(x, y int) vscroll.PointerEvent {
	return vscroll.PointerEvent{ID: mousePointer, Position: t.local(x, y)}
}

// next returns the inputs for this frame's state.
func (t *pointerTracker) next(s pointerState) []input {
	var inputs []input
	justPressed := s.Pressed && !t.pressed
	t.pressed = s.Pressed
	switch {
	case justPressed && t.viewport.contains(s.X, s.Y):
		t.active = true
		inputs = append(inputs, input{kind: inputBegin, pointer: t.pointer(s.X, s.Y)})
	case s.Pressed && t.active && (s.X != t.lastX || s.Y != t.lastY):
		inputs = append(inputs, input{kind: inputDrag, pointer: t.pointer(s.X, s.Y)})
	case !s.Pressed && t.active:
		t.active = false
		inputs = append(inputs, input{kind: inputEnd, pointer: t.pointer(s.X, s.Y)})
	}
	t.lastX, t.lastY = s.X, s.Y

	if (s.WheelX != 0 || s.WheelY != 0) && t.viewport.contains(s.X, s.Y) {
		inputs = append(inputs, input{
			kind:  inputWheel,
			wheel: vscroll.WheelEvent{Delta: vscroll.Point{X: s.WheelX, Y: s.WheelY}},
		})
	}
	return inputs
}

// apply forwards inputs to v.
func apply(v *vscroll.View, inputs []input) {
	for _, in := range inputs {
		switch in.kind {
		case inputBegin:
			v.BeginDrag(in.pointer)
		case inputDrag:
			v.Drag(in.pointer)
		case inputEnd:
			v.EndDrag(in.pointer)
		case inputWheel:
			v.Scroll(in.wheel)
		}
	}
}

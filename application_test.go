package vscroll

import (
	"slices"
	"testing"

	"github.com/gdamore/tcell/v3"
)

type recordingPrimitive struct {
	*Box
	actions []MouseAction
	capture bool
	frames  []float64
}

func newRecordingPrimitive() *recordingPrimitive {
	return &recordingPrimitive{Box: NewBox()}
}

func (p *recordingPrimitive) MouseHandler(action MouseAction, _ *tcell.EventMouse) (Primitive, Command) {
	p.actions = append(p.actions, action)
	if p.capture && action == MouseLeftDown {
		return p, RedrawCommand{}
	}
	return nil, nil
}

func (p *recordingPrimitive) Animate(dt float64) bool {
	p.frames = append(p.frames, dt)
	return len(p.frames) == 1
}

func TestApplication_ExecuteCommand(t *testing.T) {
	other := NewBox()

	type tc struct {
		cmd  Command
		want bool
	}
	tests := map[string]tc{
		"nil":             {cmd: nil, want: false},
		"redraw":          {cmd: RedrawCommand{}, want: true},
		"quit":            {cmd: QuitCommand{}, want: false},
		"focus change":    {cmd: SetFocusCommand{Target: other}, want: true},
		"focus nil":       {cmd: SetFocusCommand{}, want: false},
		"batch redraws":   {cmd: BatchCommand{nil, RedrawCommand{}}, want: true},
		"empty batch":     {cmd: BatchCommand{}, want: false},
		"unknown command": {cmd: "noop", want: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			app := NewApplication()
			if got := app.executeCommand(tc.cmd); got != tc.want {
				t.Fatalf("executeCommand(%#v) = %v, want %v", tc.cmd, got, tc.want)
			}
		})
	}
}

func TestApplication_SetFocusBlursPrevious(t *testing.T) {
	first, second := NewBox(), NewBox()
	app := NewApplication().SetRoot(first)
	if !first.HasFocus() {
		t.Fatal("root not focused")
	}

	app.executeCommand(SetFocusCommand{Target: second})
	if first.HasFocus() || !second.HasFocus() {
		t.Fatalf("focus = (%v, %v), want (false, true)", first.HasFocus(), second.HasFocus())
	}
	if app.GetFocus() != Primitive(second) {
		t.Fatal("GetFocus does not return the new focus")
	}
	if app.executeCommand(SetFocusCommand{Target: second}) {
		t.Fatal("refocusing the same primitive requested a redraw")
	}
}

func TestApplication_MouseActions(t *testing.T) {
	root := newRecordingPrimitive()
	app := NewApplication().SetRoot(root)

	app.handleMouse(tcell.NewEventMouse(2, 3, tcell.ButtonPrimary, tcell.ModNone))
	if want := []MouseAction{MouseMove, MouseLeftDown}; !slices.Equal(root.actions, want) {
		t.Fatalf("press actions = %v, want %v", root.actions, want)
	}

	root.actions = nil
	app.handleMouse(tcell.NewEventMouse(2, 3, tcell.ButtonNone, tcell.ModNone))
	if want := []MouseAction{MouseLeftUp, MouseLeftClick}; !slices.Equal(root.actions, want) {
		t.Fatalf("release actions = %v, want %v", root.actions, want)
	}

	root.actions = nil
	app.handleMouse(tcell.NewEventMouse(2, 3, tcell.WheelDown, tcell.ModNone))
	if want := []MouseAction{MouseScrollDown}; !slices.Equal(root.actions, want) {
		t.Fatalf("wheel actions = %v, want %v", root.actions, want)
	}
}

func TestApplication_DragIsNotAClick(t *testing.T) {
	root := newRecordingPrimitive()
	root.capture = true
	app := NewApplication().SetRoot(root)

	if !app.handleMouse(tcell.NewEventMouse(2, 3, tcell.ButtonPrimary, tcell.ModNone)) {
		t.Fatal("captured press did not request a redraw")
	}
	if app.mouseCapturingPrimitive != Primitive(root) {
		t.Fatal("press did not capture the mouse")
	}

	root.actions = nil
	app.handleMouse(tcell.NewEventMouse(2, 6, tcell.ButtonPrimary, tcell.ModNone))
	app.handleMouse(tcell.NewEventMouse(2, 6, tcell.ButtonNone, tcell.ModNone))
	if want := []MouseAction{MouseMove, MouseLeftUp}; !slices.Equal(root.actions, want) {
		t.Fatalf("drag actions = %v, want %v", root.actions, want)
	}
	if app.mouseCapturingPrimitive != nil {
		t.Fatal("release did not end the capture")
	}
}

func TestApplication_AnimatesRoot(t *testing.T) {
	root := newRecordingPrimitive()
	app := NewApplication().SetRoot(root)

	if !app.animate(0.016) {
		t.Fatal("first frame reported no change")
	}
	if app.animate(0.016) {
		t.Fatal("second frame reported a change")
	}
	if len(root.frames) != 2 {
		t.Fatalf("frames = %v, want two", root.frames)
	}

	if NewApplication().SetRoot(NewBox()).animate(0.016) {
		t.Fatal("a plain box animated")
	}
}

func TestApplication_SetFrameRate(t *testing.T) {
	type tc struct {
		fps  int
		want float64
	}
	tests := map[string]tc{
		"sixty":   {fps: 60, want: 1.0 / 60},
		"thirty":  {fps: 30, want: 1.0 / 30},
		"clamped": {fps: 0, want: 1},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			app := NewApplication().SetFrameRate(tc.fps)
			if got := app.frameInterval.Seconds(); got < tc.want-1e-6 || got > tc.want+1e-6 {
				t.Fatalf("frame interval = %v, want %v", got, tc.want)
			}
		})
	}
}

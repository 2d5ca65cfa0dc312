package vscroll

import "math"

// Layout maps data indices to positions along the scroll axis. A View calls
// ComputeExtent after every resize and Reposition once per tick; the other
// methods translate input into a new target position.
type Layout interface {
	// ComputeExtent returns the scrollable distance beyond one viewport,
	// which may be +Inf for looping content.
	ComputeExtent(v *View) float64
	// Reposition materializes the cells covering the current position.
	// scrollDelta is how far the scroller moved this tick.
	Reposition(v *View, scrollDelta float64, resized bool)
	// DragEnded receives the rest position projected by the scroller.
	DragEnded(v *View, target float64)
	// Wheel receives an axial wheel delta in steps.
	Wheel(v *View, delta float64)
	// Stopped is called after StopScroll with the velocity it cancelled.
	Stopped(v *View, velocity float64)
	// Idle is called before each tick while the scroller is idle.
	Idle(v *View)
	// ScrollToIndex moves so index sits at anchor (0 leading edge, 1
	// trailing edge) inside the viewport.
	ScrollToIndex(v *View, index int, anchor float64, smooth bool)
}

// linear provides the input handling shared by the non-looping layouts.
type linear struct{}

func (linear) DragEnded(v *View, target float64) {
	v.SetTarget(target)
}

func (linear) Wheel(v *View, delta float64) {
	s := v.Scroller()
	v.SetTarget(s.Position() + delta*v.WheelStep()*-s.Direction())
}

func (linear) Stopped(*View, float64) {}

func (linear) Idle(v *View) {
	v.SetTarget(v.ClampPosition(v.Target()))
}

// anchoredPosition returns the scroll position that puts an item of the given
// offset and size at anchor inside the viewport.
func anchoredPosition(v *View, offset, size, anchor float64) float64 {
	return (offset - (v.ViewportLength()-size)*anchor) * v.Scroller().Direction()
}

// centre returns the main-axis placement of an item that starts at offset.
func centre(v *View, offset, size float64) float64 {
	return (offset - v.ViewportHalf() + size*0.5) * -v.Scroller().Direction()
}

func floorInt(f float64) int {
	return int(math.Floor(f))
}

func ceilInt(f float64) int {
	return int(math.Ceil(f))
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

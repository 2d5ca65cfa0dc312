package vscroll

import "math"

// Axis is the direction a View scrolls along.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Direction returns the sign convention of the axis. Horizontal positions
// grow negative as content moves left; vertical positions grow positive as
// content moves up.
func (a Axis) Direction() float64 {
	if a == Horizontal {
		return -1
	}
	return 1
}

// Component returns the coordinate of p along the axis.
func (a Axis) Component(p Point) float64 {
	if a == Horizontal {
		return p.X
	}
	return p.Y
}

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Status is the state of the scroll physics.
type Status int

const (
	Idle Status = iota
	Dragging
	Settling
)

func (s Status) String() string {
	switch s {
	case Dragging:
		return "dragging"
	case Settling:
		return "settling"
	default:
		return "idle"
	}
}

// Point is a position in y-up local coordinates.
type Point struct {
	X, Y float64
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// PointerEvent is a pointer contact in the viewport's local coordinates.
type PointerEvent struct {
	ID       int
	Position Point
}

// WheelEvent carries a wheel or trackpad delta in wheel steps.
type WheelEvent struct {
	Delta Point
}

// Axial returns the dominant component of the delta: the vertical one unless
// the delta points mostly sideways.
func (e WheelEvent) Axial() float64 {
	length := math.Hypot(e.Delta.X, e.Delta.Y)
	if length == 0 {
		return 0
	}
	if math.Abs(e.Delta.X/length) < 0.5 {
		return e.Delta.Y
	}
	return e.Delta.X
}

const (
	defaultDeceleration      = 10000.0
	defaultMaxVelocity       = 10000.0
	defaultVelocityThreshold = 10.0
	defaultElasticDuration   = 0.05
	defaultFrameTime         = 1.0 / 60
	minDeceleration          = 1e-3
	minSmoothTime            = 0.05
	easeRate                 = 10.0
	snapDistance             = 0.1
)

// Scroller tracks a one-dimensional scroll position under dragging, inertia
// and elastic bounds.
type Scroller struct {
	axis              Axis
	inertia           bool
	deceleration      float64
	maxVelocity       float64
	dragSensitivity   float64
	velocityThreshold float64
	elasticDuration   float64

	status      Status
	position    float64
	dragDelta   float64
	extent      float64
	velocity    float64
	elasticTime float64
	pointer     Point
	dragged     bool
	frameTime   float64

	changed func(position float64)
}

// NewScroller returns a vertical scroller with inertia enabled and an
// unbounded extent.
func NewScroller() *Scroller {
	return &Scroller{
		axis:              Vertical,
		inertia:           true,
		deceleration:      defaultDeceleration,
		maxVelocity:       defaultMaxVelocity,
		dragSensitivity:   1,
		velocityThreshold: defaultVelocityThreshold,
		elasticDuration:   defaultElasticDuration,
		extent:            math.Inf(1),
		frameTime:         defaultFrameTime,
	}
}

// SetAxis sets the scroll axis.
func (s *Scroller) SetAxis(axis Axis) *Scroller {
	s.axis = axis
	return s
}

// SetInertia toggles settling after a drag is released.
func (s *Scroller) SetInertia(inertia bool) *Scroller {
	s.inertia = inertia
	return s
}

// SetDeceleration sets the inertial deceleration in units/s². Non-positive
// values are clamped to a small epsilon.
func (s *Scroller) SetDeceleration(deceleration float64) *Scroller {
	s.deceleration = max(deceleration, minDeceleration)
	return s
}

// SetMaxVelocity sets the velocity cap in units/s.
func (s *Scroller) SetMaxVelocity(velocity float64) *Scroller {
	s.maxVelocity = math.Abs(velocity)
	return s
}

// SetDragSensitivity scales drag deltas. It is clamped to [0.1, 1].
func (s *Scroller) SetDragSensitivity(sensitivity float64) *Scroller {
	s.dragSensitivity = clamp(sensitivity, 0.1, 1)
	return s
}

// SetVelocityThreshold sets the speed below which settling stops.
func (s *Scroller) SetVelocityThreshold(threshold float64) *Scroller {
	s.velocityThreshold = math.Abs(threshold)
	return s
}

// SetElasticDuration sets how long velocity takes to die out past a bound.
func (s *Scroller) SetElasticDuration(duration float64) *Scroller {
	if duration <= 0 {
		duration = defaultElasticDuration
	}
	s.elasticDuration = duration
	return s
}

// SetChangedFunc sets a handler called whenever the position changes.
func (s *Scroller) SetChangedFunc(handler func(position float64)) *Scroller {
	s.changed = handler
	return s
}

func (s *Scroller) Axis() Axis {
	return s.axis
}

func (s *Scroller) Direction() float64 {
	return s.axis.Direction()
}

func (s *Scroller) Inertia() bool {
	return s.inertia
}

func (s *Scroller) Status() Status {
	return s.status
}

func (s *Scroller) IsIdle() bool {
	return s.status == Idle
}

func (s *Scroller) IsDragging() bool {
	return s.status == Dragging
}

func (s *Scroller) IsSettling() bool {
	return s.status == Settling
}

// VelocityThreshold returns the speed below which settling stops.
func (s *Scroller) VelocityThreshold() float64 {
	return s.velocityThreshold
}

// Velocity returns the current velocity with the axis sign removed, so that
// positive values always move towards the end of the content.
func (s *Scroller) Velocity() float64 {
	return s.velocity * -s.Direction()
}

// Extent returns the scrollable distance beyond one viewport.
func (s *Scroller) Extent() float64 {
	return s.extent
}

// SetExtent replaces the extent without touching position or state.
func (s *Scroller) SetExtent(extent float64) {
	s.extent = extent
}

// Position returns the current scroll position.
func (s *Scroller) Position() float64 {
	return s.position
}

// SetPosition moves the scroller. Values approximately equal to the current
// position are ignored.
func (s *Scroller) SetPosition(position float64) {
	if approximately(s.position, position) {
		return
	}
	s.position = position
	if s.changed != nil {
		s.changed(position)
	}
}

// Bounds returns the valid position range for the axis.
func (s *Scroller) Bounds() (lo, hi float64) {
	if s.axis == Horizontal {
		return -s.extent, 0
	}
	return 0, s.extent
}

// ClampPosition clamps p into the valid range. Unbounded scrollers return p.
func (s *Scroller) ClampPosition(p float64) float64 {
	if math.IsInf(s.extent, 0) {
		return p
	}
	lo, hi := s.Bounds()
	return clamp(p, lo, hi)
}

// NormalizedPosition maps the position into [0, 1]. It is 0 when the extent
// is zero or unbounded.
func (s *Scroller) NormalizedPosition() float64 {
	if s.extent == 0 || math.IsInf(s.extent, 0) {
		return 0
	}
	return clamp01(s.position * s.Direction() / s.extent)
}

// SetNormalizedPosition moves to the fraction n of the extent.
func (s *Scroller) SetNormalizedPosition(n float64) {
	if s.extent == 0 || math.IsInf(s.extent, 0) {
		return
	}
	s.SetPosition(clamp01(n) * s.extent * s.Direction())
}

// Initialize sets a new extent, clamps the position into it and stops any
// motion.
func (s *Scroller) Initialize(extent float64) {
	s.extent = max(0, extent)
	if !math.IsInf(extent, 1) {
		s.SetPosition(s.ClampPosition(s.position))
	}
	s.velocity = 0
	s.status = Idle
}

// BeginDrag starts tracking a pointer at the given local point.
func (s *Scroller) BeginDrag(e PointerEvent) {
	s.status = Dragging
	s.velocity = 0
	s.elasticTime = 0
	s.dragDelta = 0
	s.pointer = e.Position
}

// Drag moves the position by the pointer movement along the axis.
func (s *Scroller) Drag(e PointerEvent) {
	delta := s.axis.Component(e.Position.Sub(s.pointer)) * s.dragSensitivity
	s.pointer = e.Position
	s.dragged = true
	dt := s.frameTime
	s.velocity = lerp(s.velocity, delta/dt, dt*easeRate)
	s.dragDelta += delta
	s.SetPosition(s.position + delta)
}

// EndDrag finishes a drag and returns the position the content should come
// to rest at.
func (s *Scroller) EndDrag(PointerEvent) float64 {
	if !s.inertia {
		s.status = Idle
		return s.position
	}
	s.status = Settling
	s.velocity = clamp(s.velocity, -s.maxVelocity, s.maxVelocity)
	return s.position + s.velocity*s.velocity/(s.deceleration*2)*sign(s.velocity)
}

// Update advances the physics by dt seconds towards target and returns how
// far the position moved.
func (s *Scroller) Update(target, dt float64) float64 {
	if dt > 0 {
		s.frameTime = dt
	}
	if s.status == Dragging {
		// A zero-length update is a redraw, not a frame without drag events.
		if dt <= 0 {
			return 0
		}
		if !s.dragged {
			s.velocity = lerp(s.velocity, 0, dt*easeRate)
		}
		s.dragged = false
		delta := s.dragDelta
		s.dragDelta = 0
		return delta
	}

	speed := s.velocity
	pos := s.position
	if s.status == Settling {
		smoothTime := max(minSmoothTime, math.Abs(speed)/s.deceleration)
		pos, speed = smoothDamp(pos, target, speed, smoothTime, s.maxVelocity, dt)
		if !math.IsInf(s.extent, 1) && s.outward(pos, speed) {
			s.elasticTime += dt / s.elasticDuration
			speed = lerp(speed, 0, s.elasticTime)
		}
		s.velocity = speed
		if math.Abs(speed) < s.velocityThreshold {
			s.Stop()
		}
	} else {
		if math.Abs(pos-target) < snapDistance {
			pos = target
		} else {
			pos = lerp(pos, target, dt*easeRate)
		}
		s.velocity = 0
	}

	delta := pos - s.position
	s.SetPosition(pos)
	return delta
}

// outward reports whether pos is past a bound and speed carries it further.
func (s *Scroller) outward(pos, speed float64) bool {
	lo, hi := s.Bounds()
	return (pos > hi && speed > 0) || (pos < lo && speed < 0)
}

// Stop halts all motion and ends any overscroll bounce.
func (s *Scroller) Stop() {
	s.status = Idle
	s.velocity = 0
	s.elasticTime = 0
}

// smoothDamp is a critically damped spring towards target, returning the new
// value and velocity.
func smoothDamp(current, target, velocity, smoothTime, maxSpeed, dt float64) (float64, float64) {
	if dt <= 0 {
		return current, velocity
	}
	smoothTime = max(0.0001, smoothTime)
	omega := 2 / smoothTime
	x := omega * dt
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)
	change := current - target
	original := target
	maxChange := maxSpeed * smoothTime
	change = clamp(change, -maxChange, maxChange)
	target = current - change
	temp := (velocity + omega*change) * dt
	velocity = (velocity - omega*temp) * exp
	out := target + (change+temp)*exp
	if (original-current > 0) == (out > original) {
		out = original
		velocity = (out - original) / dt
	}
	return out, velocity
}

func lerp(a, b, t float64) float64 {
	t = clamp01(t)
	return a*(1-t) + b*t
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// approximately compares floats with a tolerance relative to their size.
func approximately(a, b float64) bool {
	return math.Abs(b-a) < max(1e-6*max(math.Abs(a), math.Abs(b)), 1e-9)
}

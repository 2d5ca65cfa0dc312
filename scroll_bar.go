package vscroll

import (
	"math"

	"github.com/gdamore/tcell/v3"
)

// TrackClickBehavior configures what a click on the track outside the thumb
// does.
type TrackClickBehavior uint8

const (
	// TrackClickBehaviorPage moves one viewport towards the click.
	TrackClickBehaviorPage TrackClickBehavior = iota
	// TrackClickBehaviorJumpToClick centres the thumb on the click and starts
	// dragging it.
	TrackClickBehaviorJumpToClick
)

// Orientation is the direction a ScrollBar runs in.
type Orientation uint8

const (
	OrientationVertical Orientation = iota
	OrientationHorizontal
)

const subcell = 8

// GlyphSet defines the track and fractional thumb glyphs. Lower and Left
// glyphs fill a cell from its bottom or left edge, Upper and Right glyphs from
// its top or right edge. Index i covers (i+1)/8 of the cell.
type GlyphSet struct {
	TrackVertical   string
	TrackHorizontal string

	ThumbVerticalLower   [8]string
	ThumbVerticalUpper   [8]string
	ThumbHorizontalLeft  [8]string
	ThumbHorizontalRight [8]string
}

// MinimalGlyphSet returns the legacy-computing set with a blank track.
func MinimalGlyphSet() GlyphSet {
	g := LegacyComputingGlyphSet()
	g.TrackVertical = " "
	g.TrackHorizontal = " "
	return g
}

// LegacyComputingGlyphSet returns legacy-computing symbols for full 1/8
// fractional fidelity.
func LegacyComputingGlyphSet() GlyphSet {
	return GlyphSet{
		TrackVertical:   "│",
		TrackHorizontal: "─",

		ThumbVerticalLower:   [8]string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"},
		ThumbVerticalUpper:   [8]string{"▔", "🮂", "🮃", "▀", "🮄", "🮅", "🮆", "█"},
		ThumbHorizontalLeft:  [8]string{"▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"},
		ThumbHorizontalRight: [8]string{"▕", "🮇", "🮈", "▐", "🮉", "🮊", "🮋", "█"},
	}
}

// UnicodeGlyphSet returns a standard-unicode-only approximation set.
func UnicodeGlyphSet() GlyphSet {
	return GlyphSet{
		TrackVertical:   "│",
		TrackHorizontal: "─",

		ThumbVerticalLower:   [8]string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"},
		ThumbVerticalUpper:   [8]string{"▔", "▔", "▀", "▀", "▀", "▀", "█", "█"},
		ThumbHorizontalLeft:  [8]string{"▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"},
		ThumbHorizontalRight: [8]string{"▕", "▕", "▐", "▐", "▐", "▐", "█", "█"},
	}
}

// ScrollBar draws a scroll indicator with 1/8 cell precision. It implements
// Scrollbar, so a View keeps it in sync, and it reports clicks and drags on
// the track through its changed handler.
//
// The value is normalized: 0 is the start of the content and 1 the end. The
// thumb size is the visible fraction of the content.
type ScrollBar struct {
	*Box

	orientation Orientation
	value       float64
	thumbSize   float64
	hidden      bool

	trackStyle tcell.Style
	thumbStyle tcell.Style
	glyphSet   GlyphSet
	showTrack  bool

	trackClickBehavior TrackClickBehavior

	// Subcell distance from the thumb start to the grab point, or -1 when the
	// thumb is not being dragged.
	grab int

	changed func(value float64)
}

// NewScrollBar returns a vertical scroll bar with a full-size thumb.
func NewScrollBar() *ScrollBar {
	return &ScrollBar{
		Box:        NewBox(),
		thumbSize:  1,
		trackStyle: tcell.StyleDefault.Foreground(Styles.ScrollBarTrackColor).Background(Styles.PrimitiveBackgroundColor),
		thumbStyle: tcell.StyleDefault.Foreground(Styles.ScrollBarThumbColor).Background(Styles.PrimitiveBackgroundColor),
		glyphSet:   MinimalGlyphSet(),
		showTrack:  true,
		grab:       -1,
	}
}

// SetOrientation sets whether the bar runs vertically or horizontally.
func (s *ScrollBar) SetOrientation(orientation Orientation) *ScrollBar {
	if s.orientation != orientation {
		s.orientation = orientation
		s.MarkDirty()
	}
	return s
}

func (s *ScrollBar) Orientation() Orientation {
	return s.orientation
}

// SetValue moves the thumb and notifies the changed handler.
func (s *ScrollBar) SetValue(value float64) *ScrollBar {
	s.SetValueWithoutNotify(value)
	if s.changed != nil {
		s.changed(s.value)
	}
	return s
}

// SetValueWithoutNotify moves the thumb without notifying the changed
// handler.
func (s *ScrollBar) SetValueWithoutNotify(value float64) {
	value = clamp01(value)
	if s.value != value {
		s.value = value
		s.MarkDirty()
	}
}

func (s *ScrollBar) Value() float64 {
	return s.value
}

// SetThumbSize sets the thumb length as a fraction of the track.
func (s *ScrollBar) SetThumbSize(size float64) {
	size = clamp01(size)
	if s.thumbSize != size {
		s.thumbSize = size
		s.MarkDirty()
	}
}

func (s *ScrollBar) ThumbSize() float64 {
	return s.thumbSize
}

// SetHidden hides the bar. A hidden bar draws nothing and ignores the mouse.
func (s *ScrollBar) SetHidden(hidden bool) {
	if s.hidden != hidden {
		s.hidden = hidden
		s.MarkDirty()
	}
}

func (s *ScrollBar) Hidden() bool {
	return s.hidden
}

// SetChangedFunc sets the handler called when the user moves the thumb.
func (s *ScrollBar) SetChangedFunc(handler func(value float64)) *ScrollBar {
	s.changed = handler
	return s
}

// SetGlyphSet applies a glyph set.
func (s *ScrollBar) SetGlyphSet(g GlyphSet) *ScrollBar {
	s.glyphSet = g
	s.MarkDirty()
	return s
}

// SetTrackClickBehavior sets behavior used for track clicks.
func (s *ScrollBar) SetTrackClickBehavior(behavior TrackClickBehavior) *ScrollBar {
	s.trackClickBehavior = behavior
	return s
}

// SetThumbStyle sets the thumb style.
func (s *ScrollBar) SetThumbStyle(style tcell.Style) *ScrollBar {
	if s.thumbStyle != style {
		s.thumbStyle = style
		s.MarkDirty()
	}
	return s
}

// SetTrackStyle sets the track style.
func (s *ScrollBar) SetTrackStyle(style tcell.Style) *ScrollBar {
	if s.trackStyle != style {
		s.trackStyle = style
		s.MarkDirty()
	}
	return s
}

// SetTrackGlyph sets the track symbol for the current orientation and its
// visibility.
func (s *ScrollBar) SetTrackGlyph(glyph string, visible bool) *ScrollBar {
	if s.orientation == OrientationHorizontal {
		s.glyphSet.TrackHorizontal = glyph
	} else {
		s.glyphSet.TrackVertical = glyph
	}
	s.showTrack = visible
	s.MarkDirty()
	return s
}

// trackCells returns the track length in cells.
func (s *ScrollBar) trackCells() int {
	_, _, width, height := s.GetInnerRect()
	if s.orientation == OrientationHorizontal {
		return width
	}
	return height
}

type scrollMetrics struct {
	trackCells int
	trackLen   int
	thumbLen   int
	thumbStart int
}

func (m scrollMetrics) travel() int {
	return max(m.trackLen-m.thumbLen, 0)
}

// computeScrollMetrics returns the bar geometry in subcell units. The thumb
// is at least one cell long.
func computeScrollMetrics(trackCells int, thumbSize, value float64) scrollMetrics {
	trackLen := trackCells * subcell
	if trackLen == 0 {
		return scrollMetrics{}
	}
	thumbLen := int(math.Round(float64(trackLen) * clamp01(thumbSize)))
	thumbLen = min(max(thumbLen, subcell), trackLen)
	m := scrollMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: thumbLen}
	m.thumbStart = int(math.Round(float64(m.travel()) * clamp01(value)))
	return m
}

func (s *ScrollBar) metrics() scrollMetrics {
	return computeScrollMetrics(s.trackCells(), s.thumbSize, s.value)
}

// cellFill returns the cell-local start and length of the thumb coverage of
// cell cellIndex, in subcells.
func cellFill(m scrollMetrics, cellIndex int) (start int, fillLen int) {
	if m.thumbLen == 0 {
		return 0, 0
	}
	cellStart := cellIndex * subcell
	cellEnd := cellStart + subcell
	thumbEnd := m.thumbStart + m.thumbLen
	start = max(m.thumbStart, cellStart)
	end := min(thumbEnd, cellEnd)
	if end <= start {
		return 0, 0
	}
	fillLen = min(end-start, subcell)
	start = min(max(start-cellStart, 0), subcell)
	return start, fillLen
}

// glyph picks the symbol for a cell whose thumb coverage starts at start and
// spans fillLen subcells. Coverage starting at 0 touches the cell's leading
// edge (top or left).
func (s *ScrollBar) glyph(start, fillLen int) (string, tcell.Style) {
	horizontal := s.orientation == OrientationHorizontal
	if fillLen <= 0 {
		switch {
		case !s.showTrack:
			return " ", s.trackStyle
		case horizontal:
			return s.glyphSet.TrackHorizontal, s.trackStyle
		}
		return s.glyphSet.TrackVertical, s.trackStyle
	}
	ix := min(fillLen, subcell) - 1
	switch {
	case horizontal && start == 0:
		return s.glyphSet.ThumbHorizontalLeft[ix], s.thumbStyle
	case horizontal:
		return s.glyphSet.ThumbHorizontalRight[ix], s.thumbStyle
	case start == 0:
		return s.glyphSet.ThumbVerticalUpper[ix], s.thumbStyle
	}
	return s.glyphSet.ThumbVerticalLower[ix], s.thumbStyle
}

// Draw draws the scroll bar.
func (s *ScrollBar) Draw(screen tcell.Screen) {
	defer s.MarkClean()
	s.drawFrame(screen)
	if s.hidden {
		return
	}

	x, y, _, _ := s.GetInnerRect()
	m := s.metrics()
	for cell := 0; cell < m.trackCells; cell++ {
		start, fillLen := cellFill(m, cell)
		glyph, style := s.glyph(start, fillLen)
		if s.orientation == OrientationHorizontal {
			screen.Put(x+cell, y, glyph, style)
		} else {
			screen.Put(x, y+cell, glyph, style)
		}
	}
}

// trackPosition returns the subcell at the centre of the track cell under
// (x, y).
func (s *ScrollBar) trackPosition(x, y int) int {
	innerX, innerY, _, _ := s.GetInnerRect()
	cell := y - innerY
	if s.orientation == OrientationHorizontal {
		cell = x - innerX
	}
	return cell*subcell + subcell/2
}

// moveThumb places the thumb start at thumbStart subcells and notifies.
func (s *ScrollBar) moveThumb(m scrollMetrics, thumbStart int) {
	if m.travel() == 0 {
		return
	}
	s.SetValue(float64(thumbStart) / float64(m.travel()))
}

// page moves one viewport towards the start (-1) or end (+1).
func (s *ScrollBar) page(direction float64) {
	if s.thumbSize >= 1 {
		return
	}
	step := s.thumbSize / (1 - s.thumbSize)
	s.SetValue(s.value + direction*step)
}

// MouseHandler moves the thumb on clicks and drags. While the thumb is held
// the bar captures the mouse.
func (s *ScrollBar) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if s.hidden {
		return nil, nil
	}
	x, y := event.Position()
	return s.handleMouse(action, x, y)
}

func (s *ScrollBar) handleMouse(action MouseAction, x, y int) (Primitive, Command) {
	m := s.metrics()
	switch action {
	case MouseLeftDown:
		if !s.InInnerRect(x, y) || m.trackLen == 0 {
			return nil, nil
		}
		pos := s.trackPosition(x, y)
		switch {
		case pos >= m.thumbStart && pos < m.thumbStart+m.thumbLen:
			s.grab = pos - m.thumbStart
		case s.trackClickBehavior == TrackClickBehaviorJumpToClick:
			s.grab = m.thumbLen / 2
			s.moveThumb(m, pos-s.grab)
		case pos < m.thumbStart:
			s.page(-1)
			return nil, RedrawCommand{}
		default:
			s.page(1)
			return nil, RedrawCommand{}
		}
		return s, RedrawCommand{}
	case MouseMove:
		if s.grab < 0 {
			return nil, nil
		}
		s.moveThumb(m, s.trackPosition(x, y)-s.grab)
		return s, RedrawCommand{}
	case MouseLeftUp:
		if s.grab < 0 {
			return nil, nil
		}
		s.grab = -1
		return nil, RedrawCommand{}
	}
	return nil, nil
}

var (
	_ Primitive = &ScrollBar{}
	_ Scrollbar = &ScrollBar{}
)

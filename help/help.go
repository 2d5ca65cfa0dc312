// Package help renders a one-line key help footer from keybind maps.
package help

import (
	"github.com/ayn2op/vscroll"
	"github.com/ayn2op/vscroll/keybind"
	"github.com/gdamore/tcell/v3"
)

// KeyMap is anything that lists its bindings for help, such as
// *keybind.Map.
type KeyMap interface {
	ShortHelp() []keybind.Help
}

// Help draws the help entries of its key maps on a single line. Entries that
// do not fit are replaced by an ellipsis.
type Help struct {
	*vscroll.Box
	Styles Styles

	keyMaps   []KeyMap
	separator string
	ellipsis  string
}

func New() *Help {
	return &Help{
		Box:       vscroll.NewBox(),
		Styles:    DefaultStyles(),
		separator: " • ",
		ellipsis:  "…",
	}
}

// SetKeyMaps sets the key maps shown, in order.
func (h *Help) SetKeyMaps(keyMaps ...KeyMap) *Help {
	h.keyMaps = keyMaps
	h.MarkDirty()
	return h
}

// SetSeparator sets the separator drawn between entries.
func (h *Help) SetSeparator(separator string) *Help {
	h.separator = separator
	h.MarkDirty()
	return h
}

// SetEllipsis sets the ellipsis marker used when entries are dropped.
func (h *Help) SetEllipsis(ellipsis string) *Help {
	h.ellipsis = ellipsis
	h.MarkDirty()
	return h
}

// SetStyles sets help styles.
func (h *Help) SetStyles(styles Styles) *Help {
	h.Styles = styles
	h.MarkDirty()
	return h
}

// Draw draws this primitive onto the screen.
func (h *Help) Draw(screen tcell.Screen) {
	defer h.MarkClean()
	h.Box.Draw(screen)

	x, y, width, height := h.GetInnerRect()
	if height <= 0 {
		return
	}
	drawSegments(screen, x, y, width, h.segments(width))
}

// Line returns the text Draw would show at the given width.
func (h *Help) Line(maxWidth int) string {
	var line string
	for _, s := range h.segments(maxWidth) {
		line += s.text
	}
	return line
}

type segment struct {
	text  string
	style tcell.Style
}

func (h *Help) entries() []keybind.Help {
	var helps []keybind.Help
	for _, keyMap := range h.keyMaps {
		helps = append(helps, keyMap.ShortHelp()...)
	}
	return helps
}

func (h *Help) segments(maxWidth int) []segment {
	items := make([][]segment, 0, 8)
	for _, entry := range h.entries() {
		if item := itemSegments(entry, h.Styles.KeyStyle, h.Styles.DescStyle); len(item) > 0 {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil
	}

	sepText := h.separator
	if sepText == "" {
		sepText = " "
	}
	sep := segment{text: sepText, style: h.Styles.SeparatorStyle}

	out := append([]segment(nil), items[0]...)
	if maxWidth > 0 && segmentsWidth(out) > maxWidth {
		return nil
	}
	for i := 1; i < len(items); i++ {
		candidate := append(append([]segment(nil), out...), sep)
		candidate = append(candidate, items[i]...)
		if maxWidth > 0 && segmentsWidth(candidate) > maxWidth {
			return append(out, h.truncationTail(out, maxWidth)...)
		}
		out = candidate
	}
	return out
}

// truncationTail returns the ellipsis segments if they fully fit after
// current.
func (h *Help) truncationTail(current []segment, maxWidth int) []segment {
	if maxWidth <= 0 || h.ellipsis == "" {
		return nil
	}
	tail := []segment{
		{text: " ", style: h.Styles.EllipsisStyle},
		{text: h.ellipsis, style: h.Styles.EllipsisStyle},
	}
	if segmentsWidth(current)+segmentsWidth(tail) <= maxWidth {
		return tail
	}
	return nil
}

func drawSegments(screen tcell.Screen, x, y, width int, segments []segment) {
	for _, s := range segments {
		if s.text == "" || width <= 0 {
			continue
		}
		printed := vscroll.Print(screen, s.text, x, y, width, vscroll.AlignmentLeft, s.style)
		x += printed
		width -= printed
	}
}

func itemSegments(entry keybind.Help, keyStyle, descStyle tcell.Style) []segment {
	switch {
	case entry.Key == "" && entry.Desc == "":
		return nil
	case entry.Key == "":
		return []segment{{text: entry.Desc, style: descStyle}}
	case entry.Desc == "":
		return []segment{{text: entry.Key, style: keyStyle}}
	default:
		return []segment{{text: entry.Key, style: keyStyle}, {text: " ", style: descStyle}, {text: entry.Desc, style: descStyle}}
	}
}

func segmentsWidth(segments []segment) int {
	width := 0
	for _, s := range segments {
		width += vscroll.TaggedStringWidth(s.text)
	}
	return width
}

var _ vscroll.Primitive = &Help{}

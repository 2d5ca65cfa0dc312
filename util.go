package vscroll

import (
	"github.com/gdamore/tcell/v3"
)

type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
)

// Print prints text onto the screen into the box at (x,y,maxWidth,1), not
// exceeding that box. It returns the width actually printed.
func Print(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style) int {
	_, printed := printWithStyle(screen, text, x, y, maxWidth, alignment, style)
	return printed
}

// printWithStyle prints one line of text and returns the number of bytes and
// cells printed. Text that does not fit is cut at a grapheme boundary on the
// right, or on both sides when centred.
func printWithStyle(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style) (length, printedWidth int) {
	totalWidth, totalHeight := screen.Size()
	if maxWidth <= 0 || len(text) == 0 || y < 0 || y >= totalHeight {
		return 0, 0
	}

	textWidth := TaggedStringWidth(text)
	switch alignment {
	case AlignmentRight:
		if textWidth < maxWidth {
			x += maxWidth - textWidth
			maxWidth = textWidth
		}
	case AlignmentCenter:
		if textWidth < maxWidth {
			x += (maxWidth - textWidth) / 2
			maxWidth = textWidth
		} else {
			var state *stepState
			for skip := (textWidth - maxWidth) / 2; len(text) > 0 && skip > 0; {
				_, text, state = step(text, state)
				skip -= state.Width()
			}
		}
	}

	rightBorder := x + maxWidth
	var state *stepState
	for len(text) > 0 && x < rightBorder && x < totalWidth {
		var c string
		c, text, state = step(text, state)
		width := state.Width()
		if x+width > rightBorder {
			break
		}
		if width > 0 {
			screen.Put(x, y, c, style)
			for offset := 1; offset < width; offset++ {
				screen.Put(x+offset, y, " ", style)
			}
		}
		x += width
		length += state.GrossLength()
		printedWidth += width
	}
	return length, printedWidth
}

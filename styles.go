package vscroll

import (
	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
)

// Theme defines the colors used when terminal primitives are created.
type Theme struct {
	PrimitiveBackgroundColor tcell.Color // Main background color for primitives.
	CellBackgroundColor      tcell.Color // Background of text cells.
	SelectedBackgroundColor  tcell.Color // Background of the selected carousel cell.
	BorderColor              tcell.Color // Box borders.
	TitleColor               tcell.Color // Box titles and footers.
	PrimaryTextColor         tcell.Color // Primary text.
	SecondaryTextColor       tcell.Color // Secondary text, e.g. cell indices.
	ScrollBarThumbColor      tcell.Color
	ScrollBarTrackColor      tcell.Color
}

// Styles is the theme used by NewBox, NewTextCell and NewScrollBar. The
// default is a black background with white text.
var Styles = Theme{
	PrimitiveBackgroundColor: color.Black,
	CellBackgroundColor:      color.Black,
	SelectedBackgroundColor:  color.Navy,
	BorderColor:              color.White,
	TitleColor:               color.White,
	PrimaryTextColor:         color.White,
	SecondaryTextColor:       color.Yellow,
	ScrollBarThumbColor:      color.White,
	ScrollBarTrackColor:      color.Gray,
}

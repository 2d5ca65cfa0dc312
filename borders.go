package vscroll

// BorderSet holds the glyphs a Box frame is drawn with.
type BorderSet struct {
	Horizontal  string
	Vertical    string
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
}

func BorderSetPlain() BorderSet {
	return BorderSet{
		Horizontal:  "─",
		Vertical:    "│",
		TopLeft:     "┌",
		TopRight:    "┐",
		BottomLeft:  "└",
		BottomRight: "┘",
	}
}

func BorderSetRound() BorderSet {
	b := BorderSetPlain()
	b.TopLeft, b.TopRight, b.BottomLeft, b.BottomRight = "╭", "╮", "╰", "╯"
	return b
}

func BorderSetThick() BorderSet {
	return BorderSet{
		Horizontal:  "━",
		Vertical:    "┃",
		TopLeft:     "┏",
		TopRight:    "┓",
		BottomLeft:  "┗",
		BottomRight: "┛",
	}
}

func BorderSetDouble() BorderSet {
	return BorderSet{
		Horizontal:  "═",
		Vertical:    "║",
		TopLeft:     "╔",
		TopRight:    "╗",
		BottomLeft:  "╚",
		BottomRight: "╝",
	}
}

// BorderSetByName maps a configuration name to a border set. Unknown names
// select the plain set.
func BorderSetByName(name string) BorderSet {
	switch name {
	case "round":
		return BorderSetRound()
	case "thick":
		return BorderSetThick()
	case "double":
		return BorderSetDouble()
	}
	return BorderSetPlain()
}

type Borders uint

const (
	BordersTop Borders = 1 << iota
	BordersBottom
	BordersLeft
	BordersRight

	BordersNone Borders = 0
	BordersAll  Borders = BordersTop | BordersBottom | BordersLeft | BordersRight
)

func (b Borders) Has(flag Borders) bool {
	return b&flag != 0
}

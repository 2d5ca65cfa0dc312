package help

import (
	"github.com/ayn2op/vscroll"
	"github.com/gdamore/tcell/v3"
)

type Styles struct {
	KeyStyle       tcell.Style
	DescStyle      tcell.Style
	SeparatorStyle tcell.Style
	EllipsisStyle  tcell.Style
}

// DefaultStyles derives the help styles from vscroll.Styles.
func DefaultStyles() Styles {
	base := tcell.StyleDefault.Background(vscroll.Styles.PrimitiveBackgroundColor)
	dim := base.Foreground(vscroll.Styles.SecondaryTextColor).Dim(true)
	return Styles{
		KeyStyle:       base.Foreground(vscroll.Styles.SecondaryTextColor),
		DescStyle:      base.Foreground(vscroll.Styles.PrimaryTextColor),
		SeparatorStyle: dim,
		EllipsisStyle:  dim,
	}
}

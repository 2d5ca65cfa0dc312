package vscroll

// FixedGrid lays out identical cells in rows of a fixed number of columns.
// Rows run along the scroll axis and each row is centred across it.
type FixedGrid struct {
	linear

	cellLength  float64
	cellBreadth float64
	space       float64
	crossSpace  float64
	columns     int
	padding     Padding
}

// NewFixedGrid returns a grid of columns cells per row. Each cell is
// cellLength along the scroll axis and cellBreadth across it.
func NewFixedGrid(cellLength, cellBreadth float64, columns int) *FixedGrid {
	return &FixedGrid{
		cellLength:  cellLength,
		cellBreadth: cellBreadth,
		columns:     max(1, columns),
	}
}

// SetSpace sets the gap between rows and between columns.
func (g *FixedGrid) SetSpace(rows, columns float64) *FixedGrid {
	g.space = rows
	g.crossSpace = columns
	return g
}

// SetPadding sets the space before the first and after the last row.
func (g *FixedGrid) SetPadding(p Padding) *FixedGrid {
	g.padding = p
	return g
}

// SetColumns sets the number of cells per row. Values below 1 become 1.
func (g *FixedGrid) SetColumns(columns int) *FixedGrid {
	g.columns = max(1, columns)
	return g
}

func (g *FixedGrid) Columns() int {
	return g.columns
}

func (g *FixedGrid) rowStride() float64 {
	return g.cellLength + g.space
}

func (g *FixedGrid) colStride() float64 {
	return g.cellBreadth + g.crossSpace
}

func (g *FixedGrid) rows(count int) int {
	return (count + g.columns - 1) / g.columns
}

func (g *FixedGrid) ComputeExtent(v *View) float64 {
	rows := float64(g.rows(v.DataSource().Count()))
	return max(0, g.rowStride()*rows-v.ViewportLength()-g.space) + g.padding.Size()
}

func (g *FixedGrid) Reposition(v *View, _ float64, resized bool) {
	count := v.DataSource().Count()
	if count == 0 {
		v.releaseAll()
		return
	}

	s := v.Scroller()
	dir := s.Direction()
	rowStride := g.rowStride()
	colStride := g.colStride()
	pos := s.Position()
	v.SetContentOffset(pos)
	pos += g.padding.Start * -dir

	lastRow := g.rows(count) - 1
	startRow := clampInt(floorInt(pos*dir/rowStride), 0, lastRow)
	endRow := clampInt(floorInt((pos*dir+v.ViewportLength()-1)/rowStride), startRow, lastRow)
	start := startRow * g.columns
	end := min((endRow+1)*g.columns, count) - 1
	v.Pool().ReleaseOutOfRange(start, end)
	v.SetVisibleRange(Range{Start: start, End: end})

	for row := startRow; row <= endRow; row++ {
		main := (float64(row)*rowStride - v.ViewportHalf() + g.cellLength*0.5 + g.padding.Start) * -dir
		for col := range g.columns {
			i := row*g.columns + col
			if i >= count {
				break
			}
			c, fresh := v.Cell(i)
			if fresh || resized {
				cross := colStride*float64(col) - colStride*float64(g.columns-1)*0.5
				if s.Axis() == Horizontal {
					cross *= dir
				}
				c.SetPlacement(Placement{
					Main:    main,
					Cross:   cross,
					Length:  g.cellLength,
					Breadth: g.cellBreadth,
				})
			}
			v.NotifyReposition(c, i, main)
		}
	}
}

func (g *FixedGrid) ScrollToIndex(v *View, index int, anchor float64, smooth bool) {
	count := v.DataSource().Count()
	if count == 0 {
		return
	}
	s := v.Scroller()
	dir := s.Direction()
	rowStride := g.rowStride()
	row := clampInt(index, 0, count-1) / g.columns
	offset := (v.ViewportLength() - rowStride) * (clamp01(anchor)*dir + 0.5)
	position := rowStride*float64(row)*dir + v.ViewportHalf() - rowStride*0.5 - offset
	v.SetTarget(v.ClampPosition(position))
	if !smooth {
		s.SetPosition(v.Target())
	}
}

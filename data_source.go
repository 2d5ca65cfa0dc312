package vscroll

// Placement is where a cell sits relative to the content origin. Main and
// Cross locate the cell centre (positive is up and right). Length is the
// cell's extent along the scroll axis and Breadth across it; a zero Breadth
// means the cell fills the viewport's breadth.
type Placement struct {
	Main    float64
	Cross   float64
	Length  float64
	Breadth float64
}

// Cell is a recyclable visual handle owned by a CellPool.
type Cell interface {
	SetActive(active bool)
	SetPlacement(p Placement)
}

// Measurer is implemented by cells whose size depends on their content. The
// measured layouts call Measure after binding to learn the cell's real length
// along axis when laid out with the given breadth.
type Measurer interface {
	Measure(axis Axis, breadth float64) float64
}

// Destroyer is implemented by cells holding resources that must be released
// when the pool discards them.
type Destroyer interface {
	Destroy()
}

// DataSource supplies items to a View.
type DataSource interface {
	// Count returns the number of items.
	Count() int
	// NewCell returns a fresh cell suitable for index.
	NewCell(index int) Cell
	// Bind writes the content of item index into cell.
	Bind(index int, cell Cell)
}

// CellTyper lets a DataSource bucket cells by type. Sources that do not
// implement it use type 0 for every index.
type CellTyper interface {
	CellType(index int) int
}

// SizedDataSource reports the length of every item up front.
type SizedDataSource interface {
	DataSource
	CellSize(index int) float64
}

// LazyDataSource owns the offset table used by LazyList.
type LazyDataSource interface {
	SizedDataSource
	// TotalContentSize assigns defaultSize to unmeasured items, rebuilds the
	// offsets and returns the full content length including padding.
	TotalContentSize(padding Padding, defaultSize, space float64) float64
	// FindStartIndex returns the last index whose offset is at or before
	// position.
	FindStartIndex(position float64) int
	CellOffset(index int) float64
	SetCellSize(index int, size float64)
}

func cellType(ds DataSource, index int) int {
	if t, ok := ds.(CellTyper); ok {
		return t.CellType(index)
	}
	return 0
}

// DataIndex wraps a looping position into [0, count). It returns 0 when count
// is 0.
func DataIndex(count, position int) int {
	if count == 0 {
		return 0
	}
	return (position%count + count) % count
}

package vscroll

import "slices"

// CellPool binds cells to data indices and recycles them through per-type
// free lists. A cell is either bound to exactly one index or sits in exactly
// one free list.
type CellPool struct {
	ds DataSource

	visible map[int]Cell
	order   []int
	types   map[int]int
	free    map[int][]Cell

	mapIndex func(index int) int
}

// NewCellPool returns an empty pool.
func NewCellPool() *CellPool {
	return &CellPool{
		visible: make(map[int]Cell),
		types:   make(map[int]int),
		free:    make(map[int][]Cell),
	}
}

// SetDataSource discards every pooled cell and switches to ds.
func (p *CellPool) SetDataSource(ds DataSource) {
	p.Clear()
	p.ds = ds
}

// SetIndexMapper sets a function that maps raw layout indices to data
// indices before the data source is consulted. Looping layouts use it to wrap
// indices; nil restores the identity.
func (p *CellPool) SetIndexMapper(fn func(index int) int) {
	p.mapIndex = fn
}

func (p *CellPool) dataIndex(index int) int {
	if p.mapIndex == nil {
		return index
	}
	return p.mapIndex(index)
}

// TryGetVisible returns the cell bound to index, provided its type still
// matches the data source.
func (p *CellPool) TryGetVisible(index int) (Cell, bool) {
	c, ok := p.visible[index]
	if !ok || p.ds == nil {
		return nil, false
	}
	if p.types[index] != cellType(p.ds, p.dataIndex(index)) {
		return nil, false
	}
	return c, true
}

// Get binds a cell to index, reusing a free cell of the right type when one
// is available. The caller binds content.
func (p *CellPool) Get(index int) Cell {
	p.Release(index)
	di := p.dataIndex(index)
	t := cellType(p.ds, di)

	var c Cell
	if stack := p.free[t]; len(stack) > 0 {
		c = stack[len(stack)-1]
		p.free[t] = stack[:len(stack)-1]
	} else {
		c = p.ds.NewCell(di)
	}

	p.visible[index] = c
	p.types[index] = t
	p.order = append(p.order, index)
	return c
}

// Release returns the cell bound to index to its free list and deactivates
// it. It is a no-op for unbound indices.
func (p *CellPool) Release(index int) {
	c, ok := p.visible[index]
	if !ok {
		return
	}
	t := p.types[index]
	delete(p.visible, index)
	delete(p.types, index)
	if i := slices.Index(p.order, index); i >= 0 {
		p.order = slices.Delete(p.order, i, i+1)
	}
	p.free[t] = append(p.free[t], c)
	c.SetActive(false)
}

// ReleaseOutOfRange releases every bound index outside [start, end].
func (p *CellPool) ReleaseOutOfRange(start, end int) {
	snapshot := slices.Clone(p.order)
	for i := len(snapshot) - 1; i >= 0; i-- {
		index := snapshot[i]
		if index >= start && index <= end {
			continue
		}
		p.Release(index)
	}
}

// ReleaseAll moves every bound cell to its free list.
func (p *CellPool) ReleaseAll() {
	snapshot := slices.Clone(p.order)
	for i := len(snapshot) - 1; i >= 0; i-- {
		p.Release(snapshot[i])
	}
}

// Clear discards every cell, bound or free.
func (p *CellPool) Clear() {
	for _, index := range p.order {
		destroy(p.visible[index])
	}
	for _, stack := range p.free {
		for _, c := range stack {
			destroy(c)
		}
	}
	clear(p.visible)
	clear(p.types)
	clear(p.free)
	p.order = p.order[:0]
	logger().Debug("cell pool cleared")
}

func destroy(c Cell) {
	if d, ok := c.(Destroyer); ok {
		d.Destroy()
	}
}

// Visible returns the bound indices in ascending order.
func (p *CellPool) Visible() []int {
	indices := slices.Clone(p.order)
	slices.Sort(indices)
	return indices
}

// VisibleCount returns the number of bound cells.
func (p *CellPool) VisibleCount() int {
	return len(p.visible)
}

// FreeCount returns the number of recycled cells of the given type.
func (p *CellPool) FreeCount(cellType int) int {
	return len(p.free[cellType])
}

// Each calls fn for every bound cell in ascending index order.
func (p *CellPool) Each(fn func(index int, c Cell)) {
	for _, index := range p.Visible() {
		fn(index, p.visible[index])
	}
}

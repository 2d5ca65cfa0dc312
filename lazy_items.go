package vscroll

import (
	"fmt"
	"math"
	"slices"
	"sort"
)

// LazyItems stores a slice of items together with the offset table a LazyList
// reads. Items added or replaced are unmeasured until the list lays them out.
// Embed it in a type that implements NewCell and Bind to get a
// LazyDataSource.
type LazyItems[T any] struct {
	items   []T
	sizes   []float64
	offsets []float64
}

// NewLazyItems returns a store holding items.
func NewLazyItems[T any](items ...T) *LazyItems[T] {
	l := &LazyItems[T]{}
	l.Append(items...)
	return l
}

// Count returns the number of items.
func (l *LazyItems[T]) Count() int {
	return len(l.items)
}

// At returns item index.
func (l *LazyItems[T]) At(index int) T {
	l.check(index)
	return l.items[index]
}

// Set replaces item index and forgets its measured size. The offset is kept
// so lookups stay ordered until the list measures the item again.
func (l *LazyItems[T]) Set(index int, item T) {
	l.check(index)
	l.items[index] = item
	l.sizes[index] = math.NaN()
}

// Append adds items at the end.
func (l *LazyItems[T]) Append(items ...T) {
	l.items = append(l.items, items...)
	for range items {
		l.sizes = append(l.sizes, math.NaN())
		l.offsets = append(l.offsets, 0)
	}
}

// Insert adds item before index.
func (l *LazyItems[T]) Insert(index int, item T) {
	l.items = slices.Insert(l.items, index, item)
	l.sizes = slices.Insert(l.sizes, index, math.NaN())
	l.offsets = slices.Insert(l.offsets, index, 0)
}

// RemoveAt deletes item index.
func (l *LazyItems[T]) RemoveAt(index int) {
	l.check(index)
	l.items = slices.Delete(l.items, index, index+1)
	l.sizes = slices.Delete(l.sizes, index, index+1)
	l.offsets = slices.Delete(l.offsets, index, index+1)
}

// Clear removes every item.
func (l *LazyItems[T]) Clear() {
	l.items = l.items[:0]
	l.sizes = l.sizes[:0]
	l.offsets = l.offsets[:0]
}

// All returns the items. The slice must not be modified.
func (l *LazyItems[T]) All() []T {
	return l.items
}

// TotalContentSize gives unmeasured items defaultSize, rebuilds every offset
// and returns the content length including padding.
func (l *LazyItems[T]) TotalContentSize(padding Padding, defaultSize, space float64) float64 {
	offset := padding.Start
	n := len(l.items)
	for i := range n {
		l.offsets[i] = offset
		if math.IsNaN(l.sizes[i]) {
			l.sizes[i] = defaultSize
		}
		offset += l.sizes[i]
		if i < n-1 {
			offset += space
		}
	}
	return offset + padding.End
}

// FindStartIndex returns the last index whose offset is at or before
// position, or 0.
func (l *LazyItems[T]) FindStartIndex(position float64) int {
	i := sort.Search(len(l.offsets), func(i int) bool {
		return l.offsets[i] > position
	})
	return max(0, i-1)
}

func (l *LazyItems[T]) CellSize(index int) float64 {
	l.check(index)
	return l.sizes[index]
}

func (l *LazyItems[T]) CellOffset(index int) float64 {
	l.check(index)
	return l.offsets[index]
}

func (l *LazyItems[T]) SetCellSize(index int, size float64) {
	l.check(index)
	l.sizes[index] = size
}

func (l *LazyItems[T]) check(index int) {
	if index < 0 || index >= len(l.items) {
		panic(fmt.Sprintf("vscroll: index %d out of range [0, %d)", index, len(l.items)))
	}
}

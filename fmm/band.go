package fmm

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// bandItem is one tentative arrival time for a grid cell. Multiple items
// for the same cell may coexist in the band; only the first one popped
// (the smallest) is authoritative.
type bandItem[T constraints.Float] struct {
	distance T     // tentative arrival time
	index    []int // in-bounds grid index, owned by the item
}

// bandHeap is a min-heap of *bandItem ordered by distance ascending,
// driven through container/heap. Ties break arbitrarily.
type bandHeap[T constraints.Float] []*bandItem[T]

// Len returns the number of items in the heap.
func (h bandHeap[T]) Len() int { return len(h) }

// Less defines the comparison: smaller distance → higher priority.
func (h bandHeap[T]) Less(i, j int) bool { return h[i].distance < h[j].distance }

// Swap swaps two elements in the heap.
func (h bandHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *bandItem[T].
func (h *bandHeap[T]) Push(x interface{}) { *h = append(*h, x.(*bandItem[T])) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop.
func (h *bandHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// narrowBand stores the not-yet-frozen cells adjacent to the frozen
// front, keyed by tentative arrival time. It lives for the duration of a
// single march.
type narrowBand[T constraints.Float] struct {
	items bandHeap[T]
}

// newNarrowBand returns an empty narrow band.
func newNarrowBand[T constraints.Float]() *narrowBand[T] {
	nb := &narrowBand[T]{items: make(bandHeap[T], 0)}
	heap.Init(&nb.items)

	return nb
}

// empty reports whether the band holds no items.
func (nb *narrowBand[T]) empty() bool {
	return nb.items.Len() == 0
}

// push inserts a tentative arrival time for index. The index slice is
// stored as-is and must be owned by the caller's item, never a reused
// scratch buffer. O(log n).
func (nb *narrowBand[T]) push(distance T, index []int) {
	heap.Push(&nb.items, &bandItem[T]{distance: distance, index: index})
}

// pop removes and returns the smallest tentative arrival time and its
// index. Must not be called on an empty band. O(log n).
func (nb *narrowBand[T]) pop() (T, []int) {
	item := heap.Pop(&nb.items).(*bandItem[T])

	return item.distance, item.index
}

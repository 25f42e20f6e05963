package pairqueue

import "container/heap"

// Queue is a min-heap of Records ordered by (valuation, exponent).
// The zero value is ready to use.
type Queue struct {
	h recordHeap
}

// Push inserts r into the queue. Complexity: O(log N).
func (q *Queue) Push(r Record) {
	heap.Push(&q.h, r)
}

// PopMin removes and returns the Record with the smallest (valuation,
// exponent) key. The second return value is false if the queue is
// empty. Complexity: O(log N).
func (q *Queue) PopMin() (Record, bool) {
	if q.h.Len() == 0 {
		return Record{}, false
	}

	return heap.Pop(&q.h).(Record), true
}

// Empty reports whether the queue has no pending records.
func (q *Queue) Empty() bool {
	return q.h.Len() == 0
}

// Len returns the number of pending records.
func (q *Queue) Len() int {
	return q.h.Len()
}

// recordHeap implements heap.Interface for a min-heap of Record,
// ordered by the lexicographic (V, E) key.
type recordHeap []Record

func (h recordHeap) Len() int            { return len(h) }
func (h recordHeap) Less(i, j int) bool  { return less(h[i], h[j]) }
func (h recordHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *recordHeap) Push(x interface{}) { *h = append(*h, x.(Record)) }
func (h *recordHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// Package queue provides the FIFO work queue used for frontier seeds.
package queue

// FIFO is a first-in first-out queue backed by a ring buffer.
// Not safe for concurrent use.
type FIFO[T any] struct {
	items []T
	head  int
}

// NewFIFO creates a FIFO pre-loaded with the given items in order.
func NewFIFO[T any](items ...T) *FIFO[T] {
	q := &FIFO[T]{}
	q.items = append(q.items, items...)
	return q
}

// Len returns the number of queued items.
func (q *FIFO[T]) Len() int { return len(q.items) - q.head }

// Push appends an item to the back of the queue.
func (q *FIFO[T]) Push(item T) {
	q.items = append(q.items, item)
}

// Pop removes and returns the front item.
// The second return value is false if the queue is empty.
func (q *FIFO[T]) Pop() (T, bool) {
	var zero T
	if q.head >= len(q.items) {
		return zero, false
	}
	item := q.items[q.head]
	q.items[q.head] = zero // Avoid memory leak
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return item, true
}

// Filter removes every queued item for which keep returns false,
// preserving the order of the survivors.
func (q *FIFO[T]) Filter(keep func(T) bool) {
	kept := q.items[:0] // in-place: write index never passes read index
	for _, item := range q.items[q.head:] {
		if keep(item) {
			kept = append(kept, item)
		}
	}
	var zero T
	for i := len(kept); i < len(q.items); i++ {
		q.items[i] = zero // Avoid memory leak
	}
	q.items = kept
	q.head = 0
}

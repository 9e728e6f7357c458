// Package queue provides a FIFO queue over singly linked nodes.
//
// The queue keeps both a head and a tail pointer so that Add and Poll run in
// O(1). Poll never fails: an empty queue reports ok == false instead.
//
// A LinkedQueue is not safe for concurrent use.
package queue

// node is the queue's private link.
type node[T any] struct {
	value T
	next  *node[T]
}

// LinkedQueue is a FIFO queue. The zero value is an empty queue ready to use.
type LinkedQueue[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// New creates an empty queue.
func New[T any]() *LinkedQueue[T] {
	return &LinkedQueue[T]{}
}

// Of creates a queue holding elements in the given order.
func Of[T any](elements ...T) *LinkedQueue[T] {
	q := New[T]()
	for _, e := range elements {
		q.Add(e)
	}
	return q
}

// Add appends element at the tail.
func (q *LinkedQueue[T]) Add(element T) {
	n := &node[T]{value: element}
	if q.head == nil {
		q.head, q.tail = n, n
	} else {
		q.tail.next = n
		q.tail = n
	}
	q.size++
}

// Poll removes and returns the element at the head.
// When the queue is empty it returns the zero value and false.
func (q *LinkedQueue[T]) Poll() (T, bool) {
	if q.head == nil {
		var zero T
		return zero, false
	}
	h := q.head
	q.head = h.next
	h.next = nil
	if q.head == nil {
		q.tail = nil
	}
	q.size--
	return h.value, true
}

// Size returns the number of queued elements.
func (q *LinkedQueue[T]) Size() int { return q.size }

// IsEmpty reports whether the queue holds no elements.
func (q *LinkedQueue[T]) IsEmpty() bool { return q.size == 0 }

// Clear drops every element.
func (q *LinkedQueue[T]) Clear() {
	q.head, q.tail = nil, nil
	q.size = 0
}

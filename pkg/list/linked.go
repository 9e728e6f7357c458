package list

import (
	"iter"

	"github.com/matzehuels/structkit/pkg/errors"
)

type node[T any] struct {
	value T
	next  *node[T]
}

// LinkedList is a singly linked list with O(1) access to both ends.
// The zero value is an empty list ready to use. It is not safe for
// concurrent use.
type LinkedList[T comparable] struct {
	head *node[T]
	tail *node[T]
	size int
}

// NewLinkedList creates an empty linked list.
func NewLinkedList[T comparable]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// OfLinked creates a linked list holding elements in order.
func OfLinked[T comparable](elements ...T) *LinkedList[T] {
	l := NewLinkedList[T]()
	for _, e := range elements {
		l.Add(e)
	}
	return l
}

// Add appends element at the tail in O(1).
func (l *LinkedList[T]) Add(element T) {
	n := &node[T]{value: element}
	if l.head == nil {
		l.head, l.tail = n, n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.size++
}

// Insert places element at index, shifting the current occupant and its
// successors one position back. Valid indices are [0, Size()]; index ==
// Size() appends and moves the tail.
func (l *LinkedList[T]) Insert(index int, element T) error {
	if index < 0 || index > l.size {
		return errors.OutOfBounds(index, l.size)
	}
	if index == l.size {
		l.Add(element)
		return nil
	}

	n := &node[T]{value: element}
	if index == 0 {
		n.next = l.head
		l.head = n
	} else {
		prev := l.nodeAt(index - 1)
		n.next = prev.next
		prev.next = n
	}
	l.size++
	return nil
}

// Set replaces the element at index. Valid indices are [0, Size()).
func (l *LinkedList[T]) Set(index int, element T) error {
	if err := l.checkElementIndex(index); err != nil {
		return err
	}
	l.nodeAt(index).value = element
	return nil
}

// Get returns the element at index. Valid indices are [0, Size()).
func (l *LinkedList[T]) Get(index int) (T, error) {
	if err := l.checkElementIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return l.nodeAt(index).value, nil
}

// First returns the head element in O(1).
func (l *LinkedList[T]) First() (T, error) {
	if l.head == nil {
		var zero T
		return zero, errors.New(errors.ErrCodeNoSuchElement, "list is empty")
	}
	return l.head.value, nil
}

// Last returns the tail element in O(1).
func (l *LinkedList[T]) Last() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, errors.New(errors.ErrCodeNoSuchElement, "list is empty")
	}
	return l.tail.value, nil
}

// Remove detaches and returns the element at index. Valid indices are
// [0, Size()).
func (l *LinkedList[T]) Remove(index int) (T, error) {
	if err := l.checkElementIndex(index); err != nil {
		var zero T
		return zero, err
	}

	var removed *node[T]
	if index == 0 {
		removed = l.head
		l.head = removed.next
		if l.head == nil {
			l.tail = nil
		}
	} else {
		prev := l.nodeAt(index - 1)
		removed = prev.next
		prev.next = removed.next
		if removed == l.tail {
			l.tail = prev
		}
	}
	removed.next = nil
	l.size--
	return removed.value, nil
}

// Contains reports whether an element equal to element is present.
func (l *LinkedList[T]) Contains(element T) bool {
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.value == element {
			return true
		}
	}
	return false
}

// Size returns the number of elements.
func (l *LinkedList[T]) Size() int { return l.size }

// IsEmpty reports whether the list holds no elements.
func (l *LinkedList[T]) IsEmpty() bool { return l.size == 0 }

// Clear drops every element in O(1).
func (l *LinkedList[T]) Clear() {
	l.head, l.tail = nil, nil
	l.size = 0
}

// All yields index/element pairs from head to tail.
func (l *LinkedList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(i, cur.value) {
				return
			}
			i++
		}
	}
}

func (l *LinkedList[T]) checkElementIndex(index int) error {
	if index < 0 || index >= l.size {
		return errors.OutOfBounds(index, l.size)
	}
	return nil
}

// nodeAt walks from the head to the node at index. The index must be valid.
func (l *LinkedList[T]) nodeAt(index int) *node[T] {
	cur := l.head
	for range index {
		cur = cur.next
	}
	return cur
}

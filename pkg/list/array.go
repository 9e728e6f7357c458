package list

import (
	"iter"

	"github.com/matzehuels/structkit/pkg/errors"
)

// DefaultCapacity is the buffer size used by [NewDefaultArrayList].
const DefaultCapacity = 5

// ArrayList is a list over a contiguous buffer with amortized O(1) append.
// Elements occupy positions [0, Size()) of the buffer; the remaining slots
// hold zero values. Capacity doubles on overflow and is never reduced.
//
// The zero value is an empty list without a buffer; the first write
// allocates [DefaultCapacity] slots. ArrayList is not safe for concurrent use.
type ArrayList[T comparable] struct {
	data []T
	size int
}

// NewArrayList creates an empty list with the given initial capacity.
// A capacity of zero or less is rejected with an INVALID_ARGUMENT error.
func NewArrayList[T comparable](capacity int) (*ArrayList[T], error) {
	if capacity <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "capacity must be positive, got %d", capacity)
	}
	return &ArrayList[T]{data: make([]T, capacity)}, nil
}

// NewDefaultArrayList creates an empty list with [DefaultCapacity].
func NewDefaultArrayList[T comparable]() *ArrayList[T] {
	return &ArrayList[T]{data: make([]T, DefaultCapacity)}
}

// OfArray creates a list holding elements in order, with a buffer sized to
// fit them exactly (or [DefaultCapacity] when there are none).
func OfArray[T comparable](elements ...T) *ArrayList[T] {
	capacity := len(elements)
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	l := &ArrayList[T]{data: make([]T, capacity)}
	for _, e := range elements {
		l.Add(e)
	}
	return l
}

// Add appends element, doubling the buffer first when it is full.
func (l *ArrayList[T]) Add(element T) {
	l.grow()
	l.data[l.size] = element
	l.size++
}

// Insert places element at index, shifting elements at and after index one
// slot to the right. Valid indices are [0, Size()].
func (l *ArrayList[T]) Insert(index int, element T) error {
	if index < 0 || index > l.size {
		return errors.OutOfBounds(index, l.size)
	}
	l.grow()
	copy(l.data[index+1:l.size+1], l.data[index:l.size])
	l.data[index] = element
	l.size++
	return nil
}

// Get returns the element at index in O(1). Valid indices are [0, Size()).
func (l *ArrayList[T]) Get(index int) (T, error) {
	if err := l.checkElementIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return l.data[index], nil
}

// Set replaces the element at index in O(1). Valid indices are [0, Size()).
func (l *ArrayList[T]) Set(index int, element T) error {
	if err := l.checkElementIndex(index); err != nil {
		return err
	}
	l.data[index] = element
	return nil
}

// First returns the element at position 0.
func (l *ArrayList[T]) First() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, errors.New(errors.ErrCodeNoSuchElement, "list is empty")
	}
	return l.data[0], nil
}

// Last returns the element at position Size()-1.
func (l *ArrayList[T]) Last() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, errors.New(errors.ErrCodeNoSuchElement, "list is empty")
	}
	return l.data[l.size-1], nil
}

// Remove deletes and returns the element at index, shifting its successors
// one slot to the left and zeroing the vacated trailing slot.
func (l *ArrayList[T]) Remove(index int) (T, error) {
	if err := l.checkElementIndex(index); err != nil {
		var zero T
		return zero, err
	}
	removed := l.data[index]
	copy(l.data[index:l.size-1], l.data[index+1:l.size])
	var zero T
	l.data[l.size-1] = zero
	l.size--
	return removed, nil
}

// Contains reports whether an element equal to element is stored in
// [0, Size()). Unused trailing slots are never compared.
func (l *ArrayList[T]) Contains(element T) bool {
	for _, v := range l.data[:l.size] {
		if v == element {
			return true
		}
	}
	return false
}

// Size returns the number of elements.
func (l *ArrayList[T]) Size() int { return l.size }

// Cap returns the current buffer capacity.
func (l *ArrayList[T]) Cap() int { return len(l.data) }

// IsEmpty reports whether the list holds no elements.
func (l *ArrayList[T]) IsEmpty() bool { return l.size == 0 }

// Clear zeroes every slot and resets the size. Capacity is kept.
func (l *ArrayList[T]) Clear() {
	clear(l.data)
	l.size = 0
}

// All yields index/element pairs in order.
func (l *ArrayList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < l.size; i++ {
			if !yield(i, l.data[i]) {
				return
			}
		}
	}
}

// grow doubles the buffer when the next write would not fit.
func (l *ArrayList[T]) grow() {
	if l.size < len(l.data) {
		return
	}
	capacity := len(l.data) * 2
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	bigger := make([]T, capacity)
	copy(bigger, l.data)
	l.data = bigger
}

// checkElementIndex rejects indices outside [0, Size()).
func (l *ArrayList[T]) checkElementIndex(index int) error {
	if index < 0 || index >= l.size {
		return errors.OutOfBounds(index, l.size)
	}
	return nil
}

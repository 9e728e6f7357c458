package list

import "iter"

// List is an indexed sequential container of comparable elements.
type List[T comparable] interface {
	// Add appends element at the end.
	Add(element T)
	// Insert places element before the element currently at index.
	Insert(index int, element T) error
	// Set replaces the element at index.
	Set(index int, element T) error
	// Get returns the element at index.
	Get(index int) (T, error)
	// First returns the first element.
	First() (T, error)
	// Last returns the last element.
	Last() (T, error)
	// Remove deletes and returns the element at index.
	Remove(index int) (T, error)
	// Contains reports whether an element equal to element is present.
	Contains(element T) bool
	// Size returns the number of elements.
	Size() int
	// IsEmpty reports whether the list holds no elements.
	IsEmpty() bool
	// Clear removes every element.
	Clear()
	// All yields index/element pairs in order.
	All() iter.Seq2[int, T]
}

// Values copies the elements of l into a new slice, in order.
func Values[T comparable](l List[T]) []T {
	out := make([]T, 0, l.Size())
	for _, v := range l.All() {
		out = append(out, v)
	}
	return out
}

var (
	_ List[int] = (*LinkedList[int])(nil)
	_ List[int] = (*ArrayList[int])(nil)
)

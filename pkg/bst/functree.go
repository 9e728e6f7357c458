package bst

import (
	"iter"

	"github.com/matzehuels/structkit/internal/nilness"
	"github.com/matzehuels/structkit/pkg/errors"
)

// FuncTree is a binary search tree ordered by a caller-supplied comparator.
// compare(a, b) must return a negative number when a < b, zero when they are
// equal and a positive number when a > b, and must define a total order.
type FuncTree[T any] struct {
	c       core[T]
	compare func(a, b T) int
}

// NewFunc creates an empty tree ordered by compare.
func NewFunc[T any](compare func(a, b T) int) *FuncTree[T] {
	return &FuncTree[T]{compare: compare}
}

// Insert adds element and reports whether a new node was created.
// Nil elements are rejected with an INVALID_ARGUMENT error.
func (t *FuncTree[T]) Insert(element T) (bool, error) {
	if nilness.IsNil(element) {
		return false, errors.New(errors.ErrCodeInvalidArgument, "cannot insert a nil element")
	}
	return t.c.insert(element, t.compare), nil
}

// Contains reports whether an element equal to element is stored.
// Nil elements are rejected with an INVALID_ARGUMENT error.
func (t *FuncTree[T]) Contains(element T) (bool, error) {
	if nilness.IsNil(element) {
		return false, errors.New(errors.ErrCodeInvalidArgument, "cannot search for a nil element")
	}
	return contains(t.c.root, element, t.compare), nil
}

// Size returns the number of elements.
func (t *FuncTree[T]) Size() int { return t.c.size }

// Depth returns the number of edges on the longest root-to-leaf path.
func (t *FuncTree[T]) Depth() int { return t.c.depth() }

// InOrderTraversal calls visit once per element in ascending order.
func (t *FuncTree[T]) InOrderTraversal(visit func(T)) { inOrder(t.c.root, visit) }

// All yields the elements in ascending order.
func (t *FuncTree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) { yieldInOrder(t.c.root, yield) }
}

// Root returns the root element, if any.
func (t *FuncTree[T]) Root() (T, bool) { return root(t.c.root) }

// VisitEdges calls visit for every parent/child link in pre-order.
func (t *FuncTree[T]) VisitEdges(visit func(Edge[T])) { preOrderEdges(t.c.root, visit) }

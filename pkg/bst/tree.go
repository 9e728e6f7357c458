package bst

import (
	"cmp"
	"iter"
)

type node[T any] struct {
	value T
	left  *node[T]
	right *node[T]
}

// core holds the recursive algorithms shared by Tree and FuncTree.
type core[T any] struct {
	root *node[T]
	size int
}

func (c *core[T]) insert(element T, compare func(a, b T) int) bool {
	if c.root == nil {
		c.root = &node[T]{value: element}
		c.size++
		return true
	}
	return c.insertAt(c.root, element, compare)
}

func (c *core[T]) insertAt(n *node[T], element T, compare func(a, b T) int) bool {
	switch d := compare(element, n.value); {
	case d < 0:
		if n.left == nil {
			n.left = &node[T]{value: element}
			c.size++
			return true
		}
		return c.insertAt(n.left, element, compare)
	case d > 0:
		if n.right == nil {
			n.right = &node[T]{value: element}
			c.size++
			return true
		}
		return c.insertAt(n.right, element, compare)
	}
	return false
}

func contains[T any](n *node[T], element T, compare func(a, b T) int) bool {
	if n == nil {
		return false
	}
	switch d := compare(element, n.value); {
	case d < 0:
		return contains(n.left, element, compare)
	case d > 0:
		return contains(n.right, element, compare)
	}
	return true
}

func (c *core[T]) depth() int {
	if c.root == nil {
		return 0
	}
	return height(c.root) - 1
}

// height counts nodes on the longest downward path; nil contributes 0.
func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

func inOrder[T any](n *node[T], visit func(T)) {
	if n == nil {
		return
	}
	inOrder(n.left, visit)
	visit(n.value)
	inOrder(n.right, visit)
}

// yieldInOrder is inOrder with early termination for iterators.
func yieldInOrder[T any](n *node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return yieldInOrder(n.left, yield) && yield(n.value) && yieldInOrder(n.right, yield)
}

// Edge describes a parent/child link in the tree.
type Edge[T any] struct {
	Parent T
	Child  T
	Left   bool // Child is the parent's left child
}

func preOrderEdges[T any](n *node[T], visit func(Edge[T])) {
	if n == nil {
		return
	}
	if n.left != nil {
		visit(Edge[T]{Parent: n.value, Child: n.left.value, Left: true})
	}
	if n.right != nil {
		visit(Edge[T]{Parent: n.value, Child: n.right.value})
	}
	preOrderEdges(n.left, visit)
	preOrderEdges(n.right, visit)
}

// Tree is a binary search tree over naturally ordered elements.
// The zero value is an empty tree ready to use. It is not safe for
// concurrent use.
type Tree[T cmp.Ordered] struct {
	c core[T]
}

// New creates an empty tree.
func New[T cmp.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// Of creates a tree by inserting elements in order. Duplicates are dropped.
func Of[T cmp.Ordered](elements ...T) *Tree[T] {
	t := New[T]()
	for _, e := range elements {
		t.Insert(e)
	}
	return t
}

// Insert adds element and reports whether a new node was created.
// Inserting a duplicate returns false and leaves the tree unchanged.
func (t *Tree[T]) Insert(element T) bool { return t.c.insert(element, cmp.Compare[T]) }

// Contains reports whether an element equal to element is stored. O(depth).
func (t *Tree[T]) Contains(element T) bool {
	return contains(t.c.root, element, cmp.Compare[T])
}

// Size returns the number of elements.
func (t *Tree[T]) Size() int { return t.c.size }

// Depth returns the number of edges on the longest root-to-leaf path.
func (t *Tree[T]) Depth() int { return t.c.depth() }

// InOrderTraversal calls visit once per element in ascending order.
func (t *Tree[T]) InOrderTraversal(visit func(T)) { inOrder(t.c.root, visit) }

// All yields the elements in ascending order.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) { yieldInOrder(t.c.root, yield) }
}

// Root returns the root element, if any.
func (t *Tree[T]) Root() (T, bool) { return root(t.c.root) }

// VisitEdges calls visit for every parent/child link in pre-order, left
// child before right child.
func (t *Tree[T]) VisitEdges(visit func(Edge[T])) { preOrderEdges(t.c.root, visit) }

func root[T any](n *node[T]) (T, bool) {
	if n == nil {
		var zero T
		return zero, false
	}
	return n.value, true
}

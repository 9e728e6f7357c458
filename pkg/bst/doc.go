// Package bst provides an unbalanced binary search tree whose operations are
// written recursively.
//
// # Ordering
//
// Every node satisfies the strict BST property: all values in its left
// subtree compare less than its own value and all values in its right subtree
// compare greater. Equal values are duplicates and are rejected by Insert,
// which then returns false and leaves the tree untouched.
//
// [Tree] works with any [cmp.Ordered] element type. [FuncTree] accepts an
// explicit three-way comparator for element types without a natural order
// (structs, pointers); because such types can be nil, [FuncTree.Contains]
// rejects nil elements with an INVALID_ARGUMENT error.
//
// # Depth
//
// [Tree.Depth] counts edges on the longest root-to-leaf path. An empty tree
// and a single-node tree both have depth 0; inserting 1, 2, 3 in that order
// builds a degenerate right chain with depth 2.
//
// # Recursion
//
// No rebalancing is performed, so adversarial insertion orders (sorted input)
// produce a chain and recursion as deep as the element count. This is a known
// limitation of the structure rather than something the package guards
// against.
package bst

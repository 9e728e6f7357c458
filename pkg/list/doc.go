// Package list provides two indexed sequential containers behind one
// interface.
//
// # Implementations
//
// [LinkedList] keeps a singly linked chain with head and tail pointers:
// append, [LinkedList.First] and [LinkedList.Last] are O(1), indexed access is
// O(n).
//
// [ArrayList] keeps a contiguous buffer whose capacity doubles when an insert
// would overflow it: append is amortized O(1), indexed reads and writes are
// O(1), positional insert and remove shift the tail of the buffer in O(n).
// Capacity never shrinks.
//
// # Index ranges
//
// Both implementations use the same ranges and report violations as
// INDEX_OUT_OF_BOUNDS errors from [github.com/matzehuels/structkit/pkg/errors]:
//
//   - Insert: [0, Size()]; Size() appends
//   - Get, Set, Remove: [0, Size())
//
// First and Last on an empty list report NO_SUCH_ELEMENT. A failed call never
// mutates the list.
//
// # Differential contract
//
// For any sequence of operations the two implementations observe identical
// external behaviour: same return values, same errors, same contents. The
// tests in this package and the diff runner in
// [github.com/matzehuels/structkit/pkg/script] check this.
package list

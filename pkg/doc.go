// Package pkg holds the structkit libraries: classic linked data structures
// and the tooling built around them.
//
// # Overview
//
// The packages fall into three groups:
//
//  1. Containers: [node], [stack], [queue], [list] and [bst]
//  2. Exercises: [fileio], [funcs] and [flights]
//  3. Tooling: [script], [render], [cache], [observability], [errors] and
//     [buildinfo]
//
// # Containers
//
// [node] is the singly linked node every container builds on, with helpers
// to link chains and circles and to detect cycles.
//
// [stack.LinkedStack] and [queue.LinkedQueue] are LIFO and FIFO containers
// over nodes. [list.LinkedList] and [list.ArrayList] implement the same
// [list.List] interface, so scripts can run against both and compare.
//
// [bst.Tree] is an unbalanced recursive binary search tree for ordered
// types; [bst.FuncTree] takes a comparison function instead.
//
// # Quick Start
//
//	s := stack.New[int]()
//	_ = s.Push(1)
//	_ = s.Push(2)
//	top, _ := s.Pop() // 2
//
//	t := bst.Of(5, 3, 8)
//	for v := range t.All() {
//	    fmt.Println(v) // 3 5 8
//	}
//
// # Errors
//
// Failures carry an [errors.Code] such as EMPTY_STACK or
// INDEX_OUT_OF_BOUNDS. Test for them with [errors.Is]:
//
//	if _, err := s.Pop(); errors.Is(err, errors.ErrCodeEmptyStack) {
//	    // nothing to pop
//	}
//
// # Scripts
//
// [script] executes TOML operation scripts against any container and
// records each step. [render] turns trees and node chains into Graphviz
// DOT, SVG or PNG, and [cache] keeps rendered diagrams on disk or in Redis.
package pkg

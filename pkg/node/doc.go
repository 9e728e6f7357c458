// Package node provides the singly linked node primitive and builders for
// small hand-made chains.
//
// # Overview
//
// A [Node] holds one element and a pointer to the next node. The builders
// cover the shapes that come up when exercising linked algorithms:
//
//   - [Create]: a single unlinked node
//   - [Link]: point one node at another (no validation, may close a cycle)
//   - [PairOf]: two nodes, first → second
//   - [ClosedPairOf]: two nodes referencing each other
//   - [ChainOf]: an acyclic chain in argument order
//   - [CircleOf]: the same chain with the last node pointing back at the first
//
// The node is deliberately an open primitive: fields are exported and no
// builder tracks a size. Containers elsewhere in this module define their own
// unexported node types instead of reusing this one, so their links are never
// reachable from the outside.
//
// # Cycles
//
// [CircleOf] and [ClosedPairOf] return rings. Naive traversal of a ring never
// terminates. Use [IsCircular] before walking an unknown chain, [Len] or
// [Values] for bounded traversal, and [BreakCycle] to turn a ring back into a
// chain once it is no longer needed.
package node

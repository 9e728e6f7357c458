package node

import (
	"github.com/matzehuels/structkit/pkg/errors"
)

// Node is a single element of a singly linked chain.
// The zero value is an unlinked node holding the zero element.
type Node[T any] struct {
	Element T
	Next    *Node[T]
}

// Create builds a single node holding element with no successor.
func Create[T any](element T) *Node[T] {
	return &Node[T]{Element: element}
}

// Link sets first's successor to second, overwriting any existing link.
// Linking a node to one of its predecessors creates a cycle.
func Link[T any](first, second *Node[T]) {
	first.Next = second
}

// PairOf builds two nodes where the first links to the second.
func PairOf[T any](first, second T) *Node[T] {
	return &Node[T]{Element: first, Next: Create(second)}
}

// ClosedPairOf builds two nodes that link to each other and returns the first.
// The result is a ring of length two.
func ClosedPairOf[T any](first, second T) *Node[T] {
	head := Create(first)
	head.Next = &Node[T]{Element: second, Next: head}
	return head
}

// ChainOf builds an acyclic chain holding elements in argument order and
// returns its head. At least one element is required.
func ChainOf[T any](elements ...T) (*Node[T], error) {
	head, _, err := chain(elements)
	return head, err
}

// CircleOf builds a chain holding elements in argument order whose last node
// links back to the head. At least one element is required; a single element
// yields a node linked to itself.
func CircleOf[T any](elements ...T) (*Node[T], error) {
	head, tail, err := chain(elements)
	if err != nil {
		return nil, err
	}
	tail.Next = head
	return head, nil
}

func chain[T any](elements []T) (head, tail *Node[T], err error) {
	if len(elements) == 0 {
		return nil, nil, errors.New(errors.ErrCodeInvalidArgument, "at least one element is required")
	}
	head = Create(elements[0])
	tail = head
	for _, e := range elements[1:] {
		tail.Next = Create(e)
		tail = tail.Next
	}
	return head, tail, nil
}

// IsCircular reports whether following Next from head ever revisits a node.
// It runs in O(n) time and O(1) space and terminates on rings.
func IsCircular[T any](head *Node[T]) bool {
	_, ok := meet(head)
	return ok
}

// meet runs Floyd's tortoise and hare and returns the meeting node, if any.
func meet[T any](head *Node[T]) (*Node[T], bool) {
	slow, fast := head, head
	for fast != nil && fast.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next
		if slow == fast {
			return slow, true
		}
	}
	return nil, false
}

// Len counts the nodes reachable from head. A nil head has length 0.
// Rings are rejected with an INVALID_ARGUMENT error instead of looping.
func Len[T any](head *Node[T]) (int, error) {
	if IsCircular(head) {
		return 0, errors.New(errors.ErrCodeInvalidArgument, "chain is circular")
	}
	n := 0
	for cur := head; cur != nil; cur = cur.Next {
		n++
	}
	return n, nil
}

// Values collects the elements reachable from head in order.
// Rings are rejected with an INVALID_ARGUMENT error.
func Values[T any](head *Node[T]) ([]T, error) {
	n, err := Len(head)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, n)
	for cur := head; cur != nil; cur = cur.Next {
		out = append(out, cur.Element)
	}
	return out, nil
}

// BreakCycle unlinks the node that closes a cycle reachable from head, turning
// the structure into an acyclic chain. It reports whether a cycle was broken.
//
// For a ring built by [CircleOf] this clears the last node's link, restoring
// the chain that [ChainOf] would have produced.
func BreakCycle[T any](head *Node[T]) bool {
	m, ok := meet(head)
	if !ok {
		return false
	}
	// Distance head→cycle start equals distance meeting point→cycle start.
	start := head
	for start != m {
		start = start.Next
		m = m.Next
	}
	last := start
	for last.Next != start {
		last = last.Next
	}
	last.Next = nil
	return true
}

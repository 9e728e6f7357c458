// Package stack provides a LIFO stack over singly linked nodes.
//
// Push and Pop both run in O(1): the top of the stack is the head of the
// chain, so neither operation walks it. There is no Peek; the top element is
// only observable by popping it.
//
//	s, _ := stack.Of(1, 2, 3)
//	v, _ := s.Pop() // 3
//
// A LinkedStack is not safe for concurrent use.
package stack

import (
	"github.com/matzehuels/structkit/internal/nilness"
	"github.com/matzehuels/structkit/pkg/errors"
)

// node is the stack's private link. It is never exposed outside the package.
type node[T any] struct {
	value T
	next  *node[T]
}

// LinkedStack is a LIFO stack. The zero value is an empty stack ready to use.
type LinkedStack[T any] struct {
	head *node[T]
	size int
}

// New creates an empty stack.
func New[T any]() *LinkedStack[T] {
	return &LinkedStack[T]{}
}

// Of creates a stack by pushing elements in the given order, so the last
// argument ends up on top. It fails on the first nil element, in which case
// no stack is returned.
func Of[T any](elements ...T) (*LinkedStack[T], error) {
	s := New[T]()
	for _, e := range elements {
		if err := s.Push(e); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Push places element on top of the stack.
// A nil element (nil interface, pointer, map, slice, channel or function) is
// rejected with an INVALID_ARGUMENT error and the stack is left unchanged.
func (s *LinkedStack[T]) Push(element T) error {
	if nilness.IsNil(element) {
		return errors.New(errors.ErrCodeInvalidArgument, "cannot push a nil element")
	}
	s.head = &node[T]{value: element, next: s.head}
	s.size++
	return nil
}

// Pop removes and returns the top element.
// An empty stack yields an EMPTY_STACK error.
func (s *LinkedStack[T]) Pop() (T, error) {
	if s.head == nil {
		var zero T
		return zero, errors.New(errors.ErrCodeEmptyStack, "pop from empty stack")
	}
	top := s.head
	s.head = top.next
	top.next = nil
	s.size--
	return top.value, nil
}

// Size returns the number of elements on the stack.
func (s *LinkedStack[T]) Size() int { return s.size }

// IsEmpty reports whether the stack holds no elements.
func (s *LinkedStack[T]) IsEmpty() bool { return s.head == nil }

// Clear drops every element.
func (s *LinkedStack[T]) Clear() {
	s.head = nil
	s.size = 0
}

package script

import (
	"cmp"
	"fmt"
	"strconv"

	"github.com/matzehuels/structkit/pkg/bst"
	"github.com/matzehuels/structkit/pkg/list"
	"github.com/matzehuels/structkit/pkg/queue"
	"github.com/matzehuels/structkit/pkg/stack"
)

// none is the output of a poll on an empty queue.
const none = "(none)"

// target adapts one container to the script operations.
type target[T cmp.Ordered] interface {
	apply(op Op, v T) (string, error)
	size() int
	// contents returns the elements in the container's natural order, or
	// nil when the container cannot be listed without consuming it.
	contents() []T
}

func newTarget[T cmp.Ordered](structure string, capacity int) (target[T], error) {
	switch structure {
	case Stack:
		return &stackTarget[T]{s: stack.New[T]()}, nil
	case Queue:
		return &queueTarget[T]{q: queue.New[T]()}, nil
	case List, LinkedList:
		return &listTarget[T]{l: list.NewLinkedList[T]()}, nil
	case ArrayList:
		return newArrayTarget[T](capacity)
	case BST:
		return &treeTarget[T]{t: bst.New[T]()}, nil
	}
	return nil, fmt.Errorf("no target for %q", structure)
}

func newArrayTarget[T cmp.Ordered](capacity int) (target[T], error) {
	if capacity == 0 {
		return &listTarget[T]{l: list.NewDefaultArrayList[T]()}, nil
	}
	l, err := list.NewArrayList[T](capacity)
	if err != nil {
		return nil, err
	}
	return &listTarget[T]{l: l}, nil
}

func show[T any](v T) string { return fmt.Sprint(v) }

type stackTarget[T cmp.Ordered] struct{ s *stack.LinkedStack[T] }

func (t *stackTarget[T]) apply(op Op, v T) (string, error) {
	switch op.Name {
	case "push":
		return "", t.s.Push(v)
	case "pop":
		e, err := t.s.Pop()
		if err != nil {
			return "", err
		}
		return show(e), nil
	case "size":
		return strconv.Itoa(t.s.Size()), nil
	case "clear":
		t.s.Clear()
		return "", nil
	}
	return "", unsupported(op)
}

func (t *stackTarget[T]) size() int     { return t.s.Size() }
func (t *stackTarget[T]) contents() []T { return nil }

type queueTarget[T cmp.Ordered] struct{ q *queue.LinkedQueue[T] }

func (t *queueTarget[T]) apply(op Op, v T) (string, error) {
	switch op.Name {
	case "add":
		t.q.Add(v)
		return "", nil
	case "poll":
		e, ok := t.q.Poll()
		if !ok {
			return none, nil
		}
		return show(e), nil
	case "size":
		return strconv.Itoa(t.q.Size()), nil
	case "clear":
		t.q.Clear()
		return "", nil
	}
	return "", unsupported(op)
}

func (t *queueTarget[T]) size() int     { return t.q.Size() }
func (t *queueTarget[T]) contents() []T { return nil }

type listTarget[T cmp.Ordered] struct{ l list.List[T] }

func (t *listTarget[T]) apply(op Op, v T) (string, error) {
	switch op.Name {
	case "add":
		t.l.Add(v)
		return "", nil
	case "insert":
		return "", t.l.Insert(op.Index, v)
	case "set":
		return "", t.l.Set(op.Index, v)
	case "get":
		return value(t.l.Get(op.Index))
	case "remove":
		return value(t.l.Remove(op.Index))
	case "first":
		return value(t.l.First())
	case "last":
		return value(t.l.Last())
	case "contains":
		return strconv.FormatBool(t.l.Contains(v)), nil
	case "clear":
		t.l.Clear()
		return "", nil
	case "size":
		return strconv.Itoa(t.l.Size()), nil
	}
	return "", unsupported(op)
}

func (t *listTarget[T]) size() int     { return t.l.Size() }
func (t *listTarget[T]) contents() []T { return list.Values(t.l) }

func value[T any](v T, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return show(v), nil
}

type treeTarget[T cmp.Ordered] struct{ t *bst.Tree[T] }

func (t *treeTarget[T]) apply(op Op, v T) (string, error) {
	switch op.Name {
	case "add", "insert":
		return strconv.FormatBool(t.t.Insert(v)), nil
	case "contains":
		return strconv.FormatBool(t.t.Contains(v)), nil
	case "size":
		return strconv.Itoa(t.t.Size()), nil
	case "depth":
		return strconv.Itoa(t.t.Depth()), nil
	case "inorder":
		return fmt.Sprint(t.contents()), nil
	}
	return "", unsupported(op)
}

func (t *treeTarget[T]) size() int { return t.t.Size() }

func (t *treeTarget[T]) contents() []T {
	out := make([]T, 0, t.t.Size())
	for v := range t.t.All() {
		out = append(out, v)
	}
	return out
}

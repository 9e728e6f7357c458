package stack_test

import (
	"fmt"

	"github.com/matzehuels/structkit/pkg/errors"
	"github.com/matzehuels/structkit/pkg/stack"
)

func ExampleOf() {
	s, _ := stack.Of("a", "b", "c")
	for !s.IsEmpty() {
		v, _ := s.Pop()
		fmt.Println(v)
	}

	_, err := s.Pop()
	fmt.Println(errors.GetCode(err))
	// Output:
	// c
	// b
	// a
	// EMPTY_STACK
}

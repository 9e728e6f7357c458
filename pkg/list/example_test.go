package list_test

import (
	"fmt"

	"github.com/matzehuels/structkit/pkg/errors"
	"github.com/matzehuels/structkit/pkg/list"
)

func ExampleLinkedList() {
	l := list.OfLinked("a", "c")
	_ = l.Insert(1, "b")
	_ = l.Insert(l.Size(), "d")

	last, _ := l.Last()
	fmt.Println(list.Values[string](l), last)

	_, err := l.Get(10)
	fmt.Println(errors.GetCode(err))
	// Output:
	// [a b c d] d
	// INDEX_OUT_OF_BOUNDS
}

func ExampleArrayList() {
	l, _ := list.NewArrayList[int](2)
	l.Add(1)
	l.Add(2)
	l.Add(3) // grows the buffer from 2 to 4

	fmt.Println("Size:", l.Size())
	fmt.Println("Cap:", l.Cap())
	// Output:
	// Size: 3
	// Cap: 4
}

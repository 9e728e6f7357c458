package node_test

import (
	"fmt"

	"github.com/matzehuels/structkit/pkg/node"
)

func ExampleChainOf() {
	head, _ := node.ChainOf("a", "b", "c")
	for n := head; n != nil; n = n.Next {
		fmt.Println(n.Element)
	}
	// Output:
	// a
	// b
	// c
}

func ExampleCircleOf() {
	head, _ := node.CircleOf(1, 2, 3)
	fmt.Println("Circular:", node.IsCircular(head))

	// Tear the ring down before handing it to code that walks to nil.
	node.BreakCycle(head)
	values, _ := node.Values(head)
	fmt.Println("Values:", values)
	// Output:
	// Circular: true
	// Values: [1 2 3]
}

package bst_test

import (
	"fmt"

	"github.com/matzehuels/structkit/pkg/bst"
)

func ExampleOf() {
	tree := bst.Of(5, 3, 8, 3)
	fmt.Println("Size:", tree.Size())
	fmt.Println("Depth:", tree.Depth())
	tree.InOrderTraversal(func(v int) { fmt.Print(v, " ") })
	fmt.Println()
	// Output:
	// Size: 3
	// Depth: 1
	// 3 5 8
}

func ExampleTree_Depth() {
	fmt.Println(bst.Of[int]().Depth())
	fmt.Println(bst.Of(1).Depth())
	fmt.Println(bst.Of(1, 2, 3).Depth())
	// Output:
	// 0
	// 0
	// 2
}

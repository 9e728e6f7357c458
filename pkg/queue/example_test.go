package queue_test

import (
	"fmt"

	"github.com/matzehuels/structkit/pkg/queue"
)

func ExampleLinkedQueue_Poll() {
	q := queue.Of("first", "second")
	q.Add("third")

	for v, ok := q.Poll(); ok; v, ok = q.Poll() {
		fmt.Println(v)
	}
	_, ok := q.Poll()
	fmt.Println("ok:", ok)
	// Output:
	// first
	// second
	// third
	// ok: false
}

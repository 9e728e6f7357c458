package render_test

import (
	"fmt"

	"github.com/matzehuels/structkit/pkg/node"
	"github.com/matzehuels/structkit/pkg/render"
)

func ExampleChainDOT() {
	head, _ := node.ChainOf("a", "b")
	fmt.Print(render.ChainDOT(head, render.Options{Horizontal: true}))
	// Output:
	// digraph G {
	//   rankdir=LR;
	//   bgcolor="transparent";
	//   node [shape=circle, style=filled, fillcolor=white, fontsize=18];
	//   ranksep=0.4;
	//   nodesep=0.3;
	//
	//   n0 [label="a", shape=box, style="rounded,filled"];
	//   n1 [label="b", shape=box, style="rounded,filled"];
	//
	//   n0 -> n1;
	// }
}

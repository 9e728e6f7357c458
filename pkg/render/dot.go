package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/structkit/pkg/bst"
	"github.com/matzehuels/structkit/pkg/node"
)

// Options configures diagram generation.
type Options struct {
	// Title is drawn above the diagram when set.
	Title string
	// Horizontal lays a chain out left to right. Trees always grow downward.
	Horizontal bool
}

// EdgeVisitor is the read-only view of a binary search tree needed to draw
// it. Both [bst.Tree] and [bst.FuncTree] satisfy it.
type EdgeVisitor[T any] interface {
	Root() (T, bool)
	VisitEdges(visit func(bst.Edge[T]))
}

func header(buf *bytes.Buffer, rankdir string, opts Options) {
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=18];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.3;\n")
	if opts.Title != "" {
		fmt.Fprintf(buf, "  label=%q;\n  labelloc=t;\n", opts.Title)
	}
	buf.WriteString("\n")
}

// TreeDOT converts a tree to DOT. Element nodes are named n0, n1, ... in
// pre-order and carry their printed form as label; padding nodes are named
// p0, p1, ... so no element can collide with them.
func TreeDOT[T any](t EdgeVisitor[T], opts Options) string {
	var buf bytes.Buffer
	header(&buf, "TB", opts)

	root, ok := t.Root()
	if !ok {
		buf.WriteString("}\n")
		return buf.String()
	}

	// Printed forms are unique for any tree over an ordered type.
	ids := map[string]string{}
	declare := func(v T) string {
		label := fmt.Sprint(v)
		if id, ok := ids[label]; ok {
			return id
		}
		id := fmt.Sprintf("n%d", len(ids))
		ids[label] = id
		fmt.Fprintf(&buf, "  %s [label=%q];\n", id, label)
		return id
	}
	declare(root)

	// Collect both children per parent first so a missing side can be
	// padded with an invisible node.
	type children struct {
		left, right string
	}
	var order []string
	kids := map[string]*children{}
	t.VisitEdges(func(e bst.Edge[T]) {
		p := declare(e.Parent)
		c, seen := kids[p]
		if !seen {
			c = &children{}
			kids[p] = c
			order = append(order, p)
		}
		if e.Left {
			c.left = declare(e.Child)
		} else {
			c.right = declare(e.Child)
		}
	})

	buf.WriteString("\n")
	pad := 0
	for _, p := range order {
		c := kids[p]
		left, right := c.left, c.right
		if left == "" {
			left = invisible(&buf, &pad)
		}
		if right == "" {
			right = invisible(&buf, &pad)
		}
		fmt.Fprintf(&buf, "  %s -> %s%s;\n", p, left, edgeStyle(c.left != ""))
		fmt.Fprintf(&buf, "  %s -> %s%s;\n", p, right, edgeStyle(c.right != ""))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func invisible(buf *bytes.Buffer, pad *int) string {
	id := fmt.Sprintf("p%d", *pad)
	*pad++
	fmt.Fprintf(buf, "  %s [shape=point, style=invis];\n", id)
	return id
}

func edgeStyle(visible bool) string {
	if visible {
		return ""
	}
	return " [style=invis]"
}

// ChainDOT converts the chain starting at head to DOT. A cycle is drawn
// once, with a dashed edge back to the node that closes it. A nil head yields
// an empty graph.
func ChainDOT[T any](head *node.Node[T], opts Options) string {
	var buf bytes.Buffer
	rankdir := "TB"
	if opts.Horizontal {
		rankdir = "LR"
	}
	header(&buf, rankdir, opts)

	index := map[*node.Node[T]]int{}
	for n := head; n != nil; n = n.Next {
		if _, seen := index[n]; seen {
			break
		}
		index[n] = len(index)
		fmt.Fprintf(&buf, "  n%d [label=%q, shape=box, style=\"rounded,filled\"];\n", index[n], fmt.Sprint(n.Element))
	}

	buf.WriteString("\n")
	for n := head; n != nil && n.Next != nil; n = n.Next {
		from, to := index[n], index[n.Next]
		if to <= from {
			fmt.Fprintf(&buf, "  n%d -> n%d [style=dashed, constraint=false];\n", from, to)
			break
		}
		fmt.Fprintf(&buf, "  n%d -> n%d;\n", from, to)
	}

	buf.WriteString("}\n")
	return buf.String()
}

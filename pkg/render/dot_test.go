package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/structkit/pkg/bst"
	"github.com/matzehuels/structkit/pkg/node"
)

func TestTreeDOT(t *testing.T) {
	dot := TreeDOT[int](bst.Of(5, 3, 8, 4), Options{Title: "demo"})

	for _, want := range []string{
		"digraph G {",
		"rankdir=TB;",
		`label="demo";`,
		`n0 [label="5"];`,
		`n1 [label="3"];`,
		`n2 [label="8"];`,
		`n3 [label="4"];`,
		"n0 -> n1;",
		"n0 -> n2;",
		"n1 -> n3;",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("TreeDOT() missing %q\n%s", want, dot)
		}
	}

	// 3 has only a right child, so its left side is padded.
	if !strings.Contains(dot, "n1 -> p0 [style=invis];") {
		t.Errorf("TreeDOT() should pad the missing left child of 3\n%s", dot)
	}
	if i, j := strings.Index(dot, "n1 -> p0"), strings.Index(dot, "n1 -> n3"); i > j {
		t.Error("left padding must precede the right child")
	}
}

func TestTreeDOT_LabelsCannotCollide(t *testing.T) {
	tree := bst.Of("p0", "n1", "a")
	dot := TreeDOT[string](tree, Options{})

	for _, want := range []string{
		`n0 [label="p0"];`,
		`n1 [label="n1"];`,
		`n2 [label="a"];`,
		"n0 -> n1;",
		"n0 -> p0 [style=invis];",
		"n1 -> n2;",
		"n1 -> p1 [style=invis];",
		"p0 [shape=point, style=invis];",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("TreeDOT() missing %q\n%s", want, dot)
		}
	}
	if strings.Contains(dot, `"p0" ->`) || strings.Contains(dot, `-> "p0"`) {
		t.Errorf("element labels must not be used as node IDs\n%s", dot)
	}
}

func TestTreeDOT_Empty(t *testing.T) {
	dot := TreeDOT[int](bst.New[int](), Options{})
	if strings.Contains(dot, "->") {
		t.Errorf("empty tree should have no edges\n%s", dot)
	}
	if !strings.HasSuffix(dot, "}\n") {
		t.Error("DOT should be closed")
	}
}

func TestTreeDOT_FuncTree(t *testing.T) {
	tree := bst.NewFunc(strings.Compare)
	for _, s := range []string{"m", "c", "x"} {
		_, _ = tree.Insert(s)
	}
	dot := TreeDOT[string](tree, Options{})
	if !strings.Contains(dot, `n0 [label="m"];`) || !strings.Contains(dot, "n0 -> n1;") || !strings.Contains(dot, "n0 -> n2;") {
		t.Errorf("TreeDOT(FuncTree) unexpected\n%s", dot)
	}
}

func TestChainDOT(t *testing.T) {
	tests := []struct {
		name  string
		head  func() *node.Node[int]
		want  []string
		never []string
	}{
		{
			name: "chain",
			head: func() *node.Node[int] { h, _ := node.ChainOf(1, 2, 3); return h },
			want: []string{`n0 [label="1"`, "n0 -> n1;", "n1 -> n2;"},
			never: []string{
				"dashed",
			},
		},
		{
			name: "circle",
			head: func() *node.Node[int] { h, _ := node.CircleOf(1, 2, 3); return h },
			want: []string{"n0 -> n1;", "n1 -> n2;", "n2 -> n0 [style=dashed, constraint=false];"},
		},
		{
			name: "closed pair",
			head: func() *node.Node[int] { return node.ClosedPairOf(7, 9) },
			want: []string{"n0 -> n1;", "n1 -> n0 [style=dashed"},
		},
		{
			name:  "nil",
			head:  func() *node.Node[int] { return nil },
			never: []string{"n0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dot := ChainDOT(tt.head(), Options{Horizontal: true})
			if !strings.Contains(dot, "rankdir=LR;") {
				t.Error("Horizontal should set rankdir=LR")
			}
			for _, w := range tt.want {
				if !strings.Contains(dot, w) {
					t.Errorf("ChainDOT() missing %q\n%s", w, dot)
				}
			}
			for _, n := range tt.never {
				if strings.Contains(dot, n) {
					t.Errorf("ChainDOT() should not contain %q\n%s", n, dot)
				}
			}
		})
	}
}

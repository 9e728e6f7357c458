// Package render draws data structures as Graphviz diagrams.
//
// # DOT Generation
//
// [TreeDOT] turns a binary search tree into DOT source with left and right
// children placed in order; a missing child is drawn as an invisible point so
// a lone right child still leans right. [ChainDOT] draws a sequence of
// linked nodes, including the closing edge of a circular chain.
//
//	dot := render.TreeDOT[int](bst.Of(5, 3, 8), render.Options{})
//	svg, err := render.Render(ctx, "bst", dot, render.FormatSVG)
//
// # Output Formats
//
// [FormatDOT] returns the source unchanged. [FormatSVG] and [FormatPNG] are
// produced in-process by [github.com/goccy/go-graphviz]; no external
// Graphviz installation is needed.
package render

// Package script runs sequences of container operations described in TOML.
//
// A script names the structure to exercise and lists its operations:
//
//	structure = "arraylist"
//	capacity = 2
//	elements = "int"
//
//	[[op]]
//	name = "add"
//	value = "1"
//
//	[[op]]
//	name = "insert"
//	index = 0
//	value = "0"
//
//	[[op]]
//	name = "remove"
//	index = 1
//
// [Runner.Run] executes the operations one by one and records each outcome as
// a [Step]. An operation that fails (popping an empty stack, an index out of
// bounds) is recorded with its error code and the run continues; only a
// malformed script or a cancelled context stops a run.
//
// [Runner.Diff] executes a list script against both [list.LinkedList] and
// [list.ArrayList] and reports the first step at which they disagree.
//
// [list.LinkedList]: github.com/matzehuels/structkit/pkg/list.LinkedList
// [list.ArrayList]: github.com/matzehuels/structkit/pkg/list.ArrayList
package script

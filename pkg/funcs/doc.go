// Package funcs provides a registry of named single-argument functions.
//
// A [FunctionMap] maps names to functions of one type. [IntFunctionMap]
// returns a map prepopulated with a handful of integer helpers:
//
//	m := funcs.IntFunctionMap()
//	v, err := m.Apply("square", 7) // 49
//
// Looking up an unknown name fails with a NOT_FOUND error.
package funcs

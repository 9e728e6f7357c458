package funcs

// IntFunctionMap returns a map holding abs, sgn, increment, decrement and
// square over int.
func IntFunctionMap() *FunctionMap[int, int] {
	m := NewFunctionMap[int, int]()
	for name, fn := range map[string]func(int) int{
		"abs":       Abs,
		"sgn":       Sgn,
		"increment": func(x int) int { return x + 1 },
		"decrement": func(x int) int { return x - 1 },
		"square":    func(x int) int { return x * x },
	} {
		// Names are non-empty literals and fns are non-nil, so Add cannot fail.
		_ = m.Add(name, fn)
	}
	return m
}

// Abs returns |x|. Abs of the minimum int overflows to itself.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sgn returns -1, 0 or 1 matching the sign of x.
func Sgn(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

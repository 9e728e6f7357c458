package funcs

import (
	"maps"
	"slices"

	"github.com/matzehuels/structkit/pkg/errors"
)

// FunctionMap stores functions from T to R by name. The zero value is ready
// to use. A FunctionMap is not safe for concurrent mutation; build it once
// and share it read-only.
type FunctionMap[T, R any] struct {
	fns map[string]func(T) R
}

// NewFunctionMap returns an empty map.
func NewFunctionMap[T, R any]() *FunctionMap[T, R] {
	return &FunctionMap[T, R]{fns: make(map[string]func(T) R)}
}

// Add registers fn under name, replacing any earlier function of that name.
// An empty name or a nil function is rejected.
func (m *FunctionMap[T, R]) Add(name string, fn func(T) R) error {
	if name == "" {
		return errors.New(errors.ErrCodeInvalidArgument, "function name must not be empty")
	}
	if fn == nil {
		return errors.New(errors.ErrCodeInvalidArgument, "function %q must not be nil", name)
	}
	if m.fns == nil {
		m.fns = make(map[string]func(T) R)
	}
	m.fns[name] = fn
	return nil
}

// Get returns the function registered under name.
func (m *FunctionMap[T, R]) Get(name string) (func(T) R, error) {
	fn, ok := m.fns[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "no function named %q", name)
	}
	return fn, nil
}

// Apply looks up name and calls it with x.
func (m *FunctionMap[T, R]) Apply(name string, x T) (R, error) {
	fn, err := m.Get(name)
	if err != nil {
		var zero R
		return zero, err
	}
	return fn(x), nil
}

// Names returns the registered names in ascending order.
func (m *FunctionMap[T, R]) Names() []string {
	return slices.Sorted(maps.Keys(m.fns))
}

// Len returns the number of registered functions.
func (m *FunctionMap[T, R]) Len() int { return len(m.fns) }

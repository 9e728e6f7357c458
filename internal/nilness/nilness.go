// Package nilness reports whether a generic value is a missing element.
package nilness

import "reflect"

// IsNil reports whether v is a nil interface or a nil value of a nillable
// kind (pointer, map, slice, channel, function, interface).
// Values of non-nillable kinds are never nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

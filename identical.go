package dataobj

import "reflect"

// NotFound is the index reported for values that are not in an array.
const NotFound = -1

// Predicate reports whether an array element is the one being looked for.
// A nil Predicate selects the default identity check against the value.
type Predicate func(item any) bool

// Identical is the default lookup check. It never panics.
//
// Comparable values compare with ==. Non-empty slices are identical when they
// share the same backing array start and length; empty slices only when both
// are nil, since separate zero-length allocations may share an address. Maps,
// pointers, channels and unsafe pointers are identical when they point to the
// same thing. Funcs and values holding non-comparable parts are never
// identical.
func Identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Comparable() && vb.Comparable() {
		return a == b
	}

	switch va.Kind() {
	case reflect.Slice:
		if va.Len() == 0 || vb.Len() == 0 {
			return va.IsNil() && vb.IsNil()
		}
		return va.Len() == vb.Len() && va.Pointer() == vb.Pointer()
	case reflect.Map:
		return va.Pointer() == vb.Pointer()
	default:
		return false
	}
}

// findIndex returns the position of the first element accepted by match, or
// of the first element identical to value when match is nil.
func findIndex(arr []any, value any, match Predicate) (int, bool) {
	if match == nil {
		match = func(item any) bool {
			return Identical(item, value)
		}
	}
	for i, item := range arr {
		if match(item) {
			return i, true
		}
	}
	return NotFound, false
}

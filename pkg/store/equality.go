package store

import "reflect"

// Equal reports whether two resolved values are the same for notification
// purposes.
//
// Primitives (numerics, strings, booleans, nil, Absent) compare by value.
// Maps and slices compare strictly by identity: two containers are equal only
// when they share the same underlying storage. There is no structural
// fallback. The store expects mutation discipline where a logical change to a
// nested container is expressed as a reassignment of that container, so
// identity comparison is sufficient and far cheaper than deep diffing.
//
// Values of different dynamic types are never equal.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch av := a.(type) {
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case int8:
		bv, ok := b.(int8)
		return ok && av == bv
	case int16:
		bv, ok := b.(int16)
		return ok && av == bv
	case int32:
		bv, ok := b.(int32)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case uint:
		bv, ok := b.(uint)
		return ok && av == bv
	case uint8:
		bv, ok := b.(uint8)
		return ok && av == bv
	case uint16:
		bv, ok := b.(uint16)
		return ok && av == bv
	case uint32:
		bv, ok := b.(uint32)
		return ok && av == bv
	case uint64:
		bv, ok := b.(uint64)
		return ok && av == bv
	case float32:
		bv, ok := b.(float32)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case absentValue:
		return IsAbsent(b)
	}

	ra := reflect.ValueOf(a)
	rb := reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}

	switch ra.Kind() {
	case reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		// Identity: same underlying storage, never structural.
		return ra.Pointer() == rb.Pointer()
	}

	if ra.Comparable() {
		return a == b
	}
	return false
}

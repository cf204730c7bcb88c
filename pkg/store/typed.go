package store

// Path is a compile-time typed accessor for one location in the state tree.
// It prevents type mismatches between writers and readers of a path without
// requiring a schema: the path string stays runtime-validated (Absent on a
// miss), the value type is checked at the access site.
type Path[T any] struct {
	path string
}

// At builds a typed accessor for a dotted path.
func At[T any](path string) Path[T] {
	return Path[T]{path: path}
}

// String returns the underlying path string.
func (p Path[T]) String() string { return p.path }

// Get resolves the path against the store and type-asserts the result.
// It returns false when the path is absent or holds a different type.
func (p Path[T]) Get(s *Store) (T, bool) {
	var zero T
	v := s.Get(p.path)
	if IsAbsent(v) {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// Subscribe wraps Store.SubscribePath with a typed callback. Changes whose
// new value is absent or of a different type are dropped.
func (p Path[T]) Subscribe(s *Store, onChange func(next T)) func() {
	return s.SubscribePath(p.path, func(_, next any) {
		if t, ok := next.(T); ok {
			onChange(t)
		}
	})
}

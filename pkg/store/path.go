package store

import (
	"strconv"
	"strings"
)

// pathDelimiter separates segments in a path string.
const pathDelimiter = "."

// absentValue is the type of the Absent sentinel. It is unexported so the
// only value of it is Absent itself.
type absentValue struct{}

// String implements fmt.Stringer for log output.
func (absentValue) String() string { return "<absent>" }

// Absent is returned by Resolve and Store.Get when a path does not reach a
// value. It is a sentinel, not an error: optional or partial schemas resolve
// to Absent and degrade gracefully.
var Absent = absentValue{}

// IsAbsent reports whether v is the Absent sentinel.
func IsAbsent(v any) bool {
	_, ok := v.(absentValue)
	return ok
}

// Resolve walks root segment by segment along a dotted path and returns the
// value it reaches, or Absent. Maps are indexed by key, slices by a base-10
// integer segment. Traversal stops with Absent as soon as a segment is
// missing or the current value is not indexable; it never panics.
//
// Whole-tree access does not go through Resolve (use Store.State); an empty
// path resolves to Absent.
func Resolve(root any, path string) any {
	if path == "" {
		return Absent
	}

	cur := root
	for _, seg := range strings.Split(path, pathDelimiter) {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[seg]
			if !ok {
				return Absent
			}
			cur = v
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(node) {
				return Absent
			}
			cur = node[i]
		default:
			return Absent
		}
	}
	return cur
}

package store

// deepCopy returns a structural copy of a JSON-shaped value tree. Maps and
// slices are recreated recursively so that no container is aliased between
// source and copy. Primitives (and any other leaf value) are copied by
// assignment.
func deepCopy(v any) any {
	switch node := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(node))
		for k, val := range node {
			out[k] = deepCopy(val)
		}
		return out
	case []any:
		out := make([]any, len(node))
		for i, val := range node {
			out[i] = deepCopy(val)
		}
		return out
	default:
		return v
	}
}

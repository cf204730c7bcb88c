package store

import "testing"

func TestResolve(t *testing.T) {
	root := map[string]any{
		"open": true,
		"summary": map[string]any{
			"total": 12,
			"tags":  []any{"a", "b"},
		},
		"items": []any{
			map[string]any{"name": "first"},
		},
	}

	tests := []struct {
		name string
		path string
		want any
	}{
		{"top-level key", "open", true},
		{"nested key", "summary.total", 12},
		{"slice index", "summary.tags.1", "b"},
		{"map inside slice", "items.0.name", "first"},
		{"whole subtree", "summary", root["summary"]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(root, tt.path)
			if !Equal(got, tt.want) {
				t.Errorf("Resolve(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestResolveAbsent(t *testing.T) {
	root := map[string]any{
		"summary": map[string]any{"total": 12},
		"tags":    []any{"a"},
		"n":       5,
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing key", "nope"},
		{"missing nested key", "summary.missing"},
		{"segment through primitive", "n.deeper"},
		{"index out of range", "tags.3"},
		{"negative index", "tags.-1"},
		{"non-numeric slice segment", "tags.first"},
		{"empty path", ""},
		{"trailing delimiter", "summary."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(root, tt.path); !IsAbsent(got) {
				t.Errorf("Resolve(%q) = %v, want Absent", tt.path, got)
			}
		})
	}
}

func TestResolveNilRoot(t *testing.T) {
	if got := Resolve(nil, "anything"); !IsAbsent(got) {
		t.Errorf("Resolve on nil root = %v, want Absent", got)
	}
}

package store

import "testing"

func TestEqualPrimitives(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"equal ints", 1, 1, true},
		{"different ints", 1, 2, false},
		{"equal floats", 1.5, 1.5, true},
		{"equal strings", "x", "x", true},
		{"different strings", "x", "y", false},
		{"equal bools", true, true, true},
		{"both nil", nil, nil, true},
		{"nil vs value", nil, 0, false},
		{"both absent", Absent, Absent, true},
		{"absent vs nil", Absent, nil, false},
		{"cross-type numerics", 1, 1.0, false},
		{"int vs string", 1, "1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEqualContainerIdentity(t *testing.T) {
	m := map[string]any{"total": 0}
	sameValue := map[string]any{"total": 0}

	if !Equal(m, m) {
		t.Error("a map must equal itself")
	}
	if Equal(m, sameValue) {
		t.Error("structurally equal maps must NOT compare equal (identity only)")
	}

	s := []any{1, 2}
	sameSlice := []any{1, 2}
	if !Equal(s, s) {
		t.Error("a slice must equal itself")
	}
	if Equal(s, sameSlice) {
		t.Error("structurally equal slices must NOT compare equal (identity only)")
	}
}

func TestEqualMutatedContainerKeepsIdentity(t *testing.T) {
	// In-place mutation does not change identity: this is the property
	// ancestor-path filtering depends on.
	m := map[string]any{"total": 0}
	before := any(m)
	m["total"] = 5

	if !Equal(before, any(m)) {
		t.Error("in-place mutation must not change container identity")
	}
}

func TestEqualSharedSubslice(t *testing.T) {
	backing := []any{1, 2, 3}
	if !Equal(backing[:2], backing[:2]) {
		t.Error("slices over the same storage and length must compare equal")
	}
}

package store

import "testing"

func TestTypedPathGet(t *testing.T) {
	s, _ := newTestStore(map[string]any{
		"summary": map[string]any{"total": 12},
		"name":    "ada",
	})

	total := At[int]("summary.total")
	if v, ok := total.Get(s); !ok || v != 12 {
		t.Errorf("Get = %v, %v; want 12, true", v, ok)
	}

	if _, ok := At[string]("summary.total").Get(s); ok {
		t.Error("type mismatch must report false")
	}
	if _, ok := At[int]("summary.missing").Get(s); ok {
		t.Error("absent path must report false")
	}
	if total.String() != "summary.total" {
		t.Errorf("String() = %q", total.String())
	}
}

func TestTypedPathSubscribe(t *testing.T) {
	s, sched := newTestStore(map[string]any{"total": 0})

	var got []int
	stop := At[int]("total").Subscribe(s, func(next int) {
		got = append(got, next)
	})
	defer stop()

	root := s.State().(map[string]any)
	root["total"] = 5
	s.RequestFlush()
	sched.pump()

	// A transition to a wrong type is dropped by the typed wrapper
	root["total"] = "oops"
	s.RequestFlush()
	sched.pump()

	if len(got) != 1 || got[0] != 5 {
		t.Errorf("expected [5], got %v", got)
	}
}

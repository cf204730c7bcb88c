// Package store implements an observable state container for a mutable,
// JSON-shaped value tree.
//
// A Store owns exactly one canonical state value. Action code reads the live
// reference with State(), mutates it in place or reassigns subtrees, then
// calls RequestFlush(). All flush requests issued before the scheduler runs
// are coalesced into a single flush that invokes every registered listener
// once.
//
// Change detection is two-tier: the flush broadcasts to every listener
// unconditionally, and each path-scoped listener re-resolves its own path and
// compares the result against its last-seen value. Containers (maps, slices)
// compare by identity, primitives by value. The store never diffs deep object
// graphs; a logical change to a nested container must be expressed as a
// reassignment of that container for ancestor-path listeners to observe it.
//
// Example:
//
//	s := store.New(map[string]any{"open": false, "total": 0})
//	defer s.Close()
//
//	stop := s.SubscribePath("total", func(old, next any) {
//	    render(next)
//	})
//	defer stop()
//
//	s.SetPartial(map[string]any{"open": true})
package store

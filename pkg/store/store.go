package store

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// Store is an observable container for one canonical JSON-shaped state tree.
//
// The zero value is not usable; construct with New. Every Store is fully
// independent: multiple stores share no state, no registry and no scheduler
// (unless one is injected into both).
type Store struct {
	// mu guards the state pointer. Reads take the read lock only long
	// enough to copy the reference; callers then work with the live tree.
	mu    sync.RWMutex
	state any

	// snapshot is the deep copy of the construction-time value, used only
	// by Reset. It is never handed out and never mutated.
	snapshot any

	// pending is the flush-coalescing flag: true between the first
	// RequestFlush of a window and the start of the flush it scheduled.
	pending atomic.Bool

	registry registry

	sched    Scheduler
	loopOnce sync.Once
	ownLoop  *Loop

	logger  *slog.Logger
	metrics *Metrics
}

// Option configures a Store at construction.
type Option func(*Store)

// WithScheduler replaces the store's default task loop. The store does not
// close an injected scheduler.
func WithScheduler(s Scheduler) Option {
	return func(st *Store) {
		st.sched = s
	}
}

// WithLogger sets the logger used to report listener failures.
// Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(st *Store) {
		if l != nil {
			st.logger = l
		}
	}
}

// WithMetrics attaches flush metrics to the store.
func WithMetrics(m *Metrics) Option {
	return func(st *Store) {
		st.metrics = m
	}
}

// New constructs a store around a deep copy of initial. The copy is the
// canonical state; a second, independent copy is retained as the reset
// snapshot. The caller's value is never aliased.
func New(initial any, opts ...Option) *Store {
	s := &Store{
		state:    deepCopy(initial),
		snapshot: deepCopy(initial),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close stops the store's own task loop, if one was started. Stores with an
// injected scheduler have nothing to release. A flush still pending when
// Close runs is executed before the loop exits.
func (s *Store) Close() {
	s.loopOnce.Do(func() {})
	if s.ownLoop != nil {
		s.ownLoop.Close()
	}
}

// State returns the live canonical state reference — never a clone. Mutating
// the returned tree in place is the intended usage; follow mutations with
// RequestFlush. The reference may be invalidated by Reset or by SetPartial on
// a non-object root.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Get resolves a dotted path against the current state and returns the value
// found there, or Absent. Missing segments are not an error.
func (s *Store) Get(path string) any {
	return Resolve(s.State(), path)
}

// SetPartial shallow-merges fork's top-level keys into the state, later keys
// overwriting existing ones, then requests a flush. The merge is strictly
// top-level: a nested object in fork replaces the whole value at that key, it
// is never merged recursively. Fork values are installed by reference, not
// copied, matching the copy-on-write discipline path listeners rely on.
//
// When the current root is not an object, merging has no meaning and the root
// is replaced by a shallow copy of fork.
func (s *Store) SetPartial(fork map[string]any) {
	s.mu.Lock()
	if root, ok := s.state.(map[string]any); ok {
		for k, v := range fork {
			root[k] = v
		}
	} else {
		root := make(map[string]any, len(fork))
		for k, v := range fork {
			root[k] = v
		}
		s.state = root
	}
	s.mu.Unlock()

	s.RequestFlush()
}

// Reset replaces the state with a fresh deep copy of the construction-time
// snapshot and requests a flush. The installed tree aliases neither the
// snapshot nor any previous state.
func (s *Store) Reset() {
	fresh := deepCopy(s.snapshot)

	s.mu.Lock()
	s.state = fresh
	s.mu.Unlock()

	s.RequestFlush()
}

// SubscribeWhole registers a listener invoked on every flush, whether or not
// anything changed. It returns an idempotent unsubscribe function removing
// exactly this registration; the same function value may be registered any
// number of times and each registration is a distinct entry.
//
// An unsubscribe that races with a flush already past its registry snapshot
// may still see that one flush; it never fires afterwards.
func (s *Store) SubscribeWhole(fn func()) func() {
	return s.registry.add(fn)
}

// SubscribePath registers a listener for one path. On every flush the path is
// re-resolved against the current state and compared to the value seen at the
// previous invocation (or at subscribe time, for the first flush); onChange
// runs only when the comparison reports a difference. The baseline advances
// on every flush regardless, so a change observed once is not re-reported.
//
// Comparison follows Equal: identity for containers, value for primitives. A
// path that stops resolving reports a change to Absent.
func (s *Store) SubscribePath(path string, onChange func(old, next any)) func() {
	prev := s.Get(path)

	return s.registry.add(func() {
		next := s.Get(path)
		if Equal(prev, next) {
			prev = next
			return
		}
		old := prev
		prev = next
		onChange(old, next)
	})
}

// Subscribers returns the current number of registered listeners.
func (s *Store) Subscribers() int {
	return s.registry.size()
}

// scheduler returns the configured scheduler, lazily starting the store's
// own loop when none was injected. After Close, tasks are dropped.
func (s *Store) scheduler() Scheduler {
	if s.sched != nil {
		return s.sched
	}
	s.loopOnce.Do(func() {
		s.ownLoop = NewLoop()
	})
	if s.ownLoop == nil {
		return droppedScheduler{}
	}
	return s.ownLoop
}

// droppedScheduler swallows flushes requested on a store whose loop was
// closed before it ever started.
type droppedScheduler struct{}

func (droppedScheduler) Schedule(func()) {}

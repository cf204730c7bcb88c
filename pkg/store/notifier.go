package store

import "time"

// RequestFlush signals that a mutation happened. The first request in a
// batching window flips the pending flag and schedules exactly one deferred
// flush; every further request before that flush starts is coalesced into it.
// The flush therefore observes the state as of the last mutation in the
// window.
func (s *Store) RequestFlush() {
	if s.pending.CompareAndSwap(false, true) {
		s.metrics.flushScheduled()
		s.scheduler().Schedule(s.flush)
		return
	}
	s.metrics.flushCoalesced()
}

// flush runs one coalesced notification pass on the scheduler.
//
// The pending flag is cleared before any listener runs: a mutation performed
// by a listener mid-flush opens a new window and schedules a follow-up flush
// instead of being swallowed. The registry is snapshotted up front, so
// listeners may subscribe or unsubscribe during the pass.
func (s *Store) flush() {
	s.pending.Store(false)

	subs := s.registry.snapshot()
	start := time.Now()

	for _, sub := range subs {
		s.invoke(sub)
	}

	s.metrics.flushDone(len(subs), time.Since(start))
}

// invoke runs one listener, isolated: a panic is recovered and reported, and
// the remaining listeners in the same flush still run.
func (s *Store) invoke(sub *subscription) {
	defer func() {
		if r := recover(); r != nil {
			s.metrics.listenerPanicked()
			s.logger.Error("store listener panicked during flush",
				"subscription_id", sub.id,
				"panic", r)
		}
	}()

	sub.fn()
}

package store

import "sync"

// subscription is one registry entry: a listener callback plus the unique ID
// its unsubscribe function removes it by.
type subscription struct {
	id uint64
	fn func()
}

// registry is the set of listeners subscribed to a store's broadcast channel.
//
// add never deduplicates: registering the same function twice creates two
// independent entries, each removable only by its own unsubscribe. Iteration
// during a flush uses a snapshot taken up front, so listeners may subscribe
// or unsubscribe mid-flush without corrupting the pass.
type registry struct {
	mu   sync.Mutex
	subs []*subscription
}

// add registers a listener and returns its unsubscribe function.
// The unsubscribe function is idempotent.
func (r *registry) add(fn func()) func() {
	sub := &subscription{id: nextID(), fn: fn}

	r.mu.Lock()
	r.subs = append(r.subs, sub)
	r.mu.Unlock()

	return func() { r.remove(sub.id) }
}

// remove deletes the entry with the given ID. Removing an ID that is no
// longer present is a no-op, which makes unsubscribe idempotent.
func (r *registry) remove(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, sub := range r.subs {
		if sub.id == id {
			// Swap with last element (listener order is not meaningful)
			r.subs[i] = r.subs[len(r.subs)-1]
			r.subs[len(r.subs)-1] = nil
			r.subs = r.subs[:len(r.subs)-1]
			return
		}
	}
}

// snapshot copies the current listener set for iteration outside the lock.
func (r *registry) snapshot() []*subscription {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs := make([]*subscription, len(r.subs))
	copy(subs, r.subs)
	return subs
}

// size returns the number of registered listeners.
func (r *registry) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}

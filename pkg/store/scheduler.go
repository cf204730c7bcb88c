package store

import (
	"sync"
	"sync/atomic"
)

// Scheduler runs a task after the current call stack unwinds. The store uses
// it to defer flush passes; any implementation that eventually runs each
// scheduled task, one at a time, satisfies the contract. Tasks scheduled from
// within a running task must be accepted (a listener may mutate the store and
// request a follow-up flush).
type Scheduler interface {
	Schedule(task func())
}

// Loop is the default Scheduler: a single goroutine draining a task queue.
// Tasks run in submission order, never concurrently with each other, and
// always after the call that scheduled them has returned.
type Loop struct {
	mu    sync.Mutex
	queue []func()

	wake   chan struct{}
	quit   chan struct{}
	done   chan struct{}
	closed atomic.Bool
}

// NewLoop starts a loop goroutine and returns the scheduler.
func NewLoop() *Loop {
	l := &Loop{
		wake: make(chan struct{}, 1),
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
	go l.run()
	return l
}

// Schedule enqueues a task and wakes the loop. Tasks scheduled after Close
// are dropped.
func (l *Loop) Schedule(task func()) {
	if task == nil || l.closed.Load() {
		return
	}

	l.mu.Lock()
	l.queue = append(l.queue, task)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
		// Already signaled
	}
}

// Close stops the loop after draining tasks already queued. It blocks until
// the loop goroutine has exited and is safe to call more than once.
func (l *Loop) Close() {
	if l.closed.CompareAndSwap(false, true) {
		close(l.quit)
	}
	<-l.done
}

func (l *Loop) run() {
	defer close(l.done)

	for {
		select {
		case <-l.wake:
			l.drain()
		case <-l.quit:
			l.drain()
			return
		}
	}
}

// drain runs queued tasks one at a time. The lock is not held while a task
// runs, so tasks may schedule further tasks; those run in the same drain.
func (l *Loop) drain() {
	for {
		l.mu.Lock()
		if len(l.queue) == 0 {
			l.mu.Unlock()
			return
		}
		task := l.queue[0]
		l.queue = l.queue[1:]
		l.mu.Unlock()

		task()
	}
}

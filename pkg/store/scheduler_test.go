package store

import (
	"sync"
	"testing"
	"time"
)

func TestLoopRunsAfterCallUnwinds(t *testing.T) {
	l := NewLoop()
	defer l.Close()

	// The scheduling goroutine holds mu across Schedule. If Schedule ran the
	// task synchronously the task would self-deadlock on mu, so completion
	// proves deferred execution.
	var mu sync.Mutex
	done := make(chan struct{})

	scheduled := false
	mu.Lock()
	l.Schedule(func() {
		mu.Lock()
		ok := scheduled
		mu.Unlock()
		if !ok {
			t.Error("task observed pre-Schedule state")
		}
		close(done)
	})
	scheduled = true
	mu.Unlock()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduled task never ran")
	}
}

func TestLoopOrdering(t *testing.T) {
	l := NewLoop()
	defer l.Close()

	var order []int
	done := make(chan struct{})

	for i := 0; i < 5; i++ {
		i := i
		l.Schedule(func() {
			order = append(order, i)
			if i == 4 {
				close(done)
			}
		})
	}

	<-done
	for i, got := range order {
		if got != i {
			t.Fatalf("tasks ran out of order: %v", order)
		}
	}
}

func TestLoopTaskSchedulesTask(t *testing.T) {
	l := NewLoop()
	defer l.Close()

	done := make(chan struct{})
	l.Schedule(func() {
		l.Schedule(func() { close(done) })
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task scheduled from within a task never ran")
	}
}

func TestLoopCloseDrains(t *testing.T) {
	l := NewLoop()

	ran := false
	l.Schedule(func() { ran = true })
	l.Close()

	if !ran {
		t.Error("Close must drain tasks already queued")
	}

	// Idempotent, and dropping tasks after close must not panic
	l.Close()
	l.Schedule(func() { t.Error("task scheduled after Close must not run") })
	time.Sleep(20 * time.Millisecond)
}

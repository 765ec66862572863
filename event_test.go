package oneshot

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestNew_initiallyUnsignaled(t *testing.T) {
	e := New()
	if e.Signaled() {
		t.Fatal("new event should not be signaled")
	}
}

func TestSet_transitionsToSignaled(t *testing.T) {
	e := New()
	e.Set()
	if !e.Signaled() {
		t.Fatal("event should be signaled after Set")
	}
}

// TestSet_idempotent verifies that setting an already-set event is a safe
// no-op: no crash, and no waiter is ever resumed twice.
func TestSet_idempotent(t *testing.T) {
	e := New()

	var resumed atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		if !e.Waiter().Suspend(func() {
			resumed.Add(1)
			wg.Done()
		}) {
			t.Fatal("Suspend should return true before Set")
		}
	}

	e.Set()
	wg.Wait()
	e.Set()
	e.Set()

	if got := resumed.Load(); got != 3 {
		t.Fatalf("expected exactly 3 resumptions, got %d", got)
	}
}

// TestSignalBeforeWait verifies that a wait starting after Set completes
// without suspending (spec: signal-before-wait).
func TestSignalBeforeWait(t *testing.T) {
	e := New()
	e.Set()

	w := e.Waiter()
	if !w.Ready() {
		t.Fatal("Ready should be true after Set")
	}
	if w.Suspend(func() {
		t.Error("resume must never be invoked when Suspend returns false")
	}) {
		t.Fatal("Suspend should return false after Set")
	}

	// Wait must return promptly rather than blocking forever.
	done := make(chan struct{})
	go func() {
		e.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait blocked on an already-set event")
	}
}

// TestSharedIdentity verifies that copies of an Event alias the same
// underlying state: setting one copy satisfies waits registered through
// another.
func TestSharedIdentity(t *testing.T) {
	e := New()
	e2 := e // plain value copy

	var resumed atomic.Bool
	if !e2.Waiter().Suspend(func() { resumed.Store(true) }) {
		t.Fatal("Suspend should return true before Set")
	}

	e.Set()

	if !resumed.Load() {
		t.Fatal("waiter registered via copy was not resumed")
	}
	if !e2.Signaled() {
		t.Fatal("copy should observe signaled state")
	}
}

// TestThreeWaiters_oneSet is the concrete scenario from the design: three
// goroutines wait before any signal; one Set resumes each exactly once,
// driving a shared counter to exactly 3.
func TestThreeWaiters_oneSet(t *testing.T) {
	e := New()

	var counter atomic.Int64
	var started, finished sync.WaitGroup
	for i := 0; i < 3; i++ {
		started.Add(1)
		finished.Add(1)
		go func() {
			w := e.Waiter()
			if !w.Suspend(func() {
				counter.Add(1)
				finished.Done()
			}) {
				t.Error("Suspend should return true before Set")
				finished.Done()
			}
			started.Done()
		}()
	}

	started.Wait() // all three enqueued
	e.Set()
	finished.Wait()

	if got := counter.Load(); got != 3 {
		t.Fatalf("expected counter == 3, got %d", got)
	}
}

// TestSetWithZeroWaiters verifies Set on an empty queue, followed by a
// wait that must take the fast path (Suspend returns false, so the caller
// observably never suspends).
func TestSetWithZeroWaiters(t *testing.T) {
	e := New()
	e.Set()

	w := e.Waiter()
	if w.Suspend(func() {}) {
		t.Fatal("wait after Set must not suspend")
	}
}

func TestWait_blocksUntilSet(t *testing.T) {
	e := New()

	released := make(chan struct{})
	go func() {
		e.Wait()
		close(released)
	}()

	select {
	case <-released:
		t.Fatal("Wait returned before Set")
	case <-time.After(20 * time.Millisecond):
	}

	e.Set()

	select {
	case <-released:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after Set")
	}
}

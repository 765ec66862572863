package oneshot

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/joeycumines/logiface"
)

// node is one link in the intrusive pending-waiter chain. A node is owned
// by the [Waiter] it is embedded in, not by the event; its address must
// remain stable from enqueue until its resume handle has been invoked.
type node struct {
	next   *node
	resume func()
}

// tailRef is the queue's tail indirection: the address of whichever *node
// slot must be overwritten to append the next waiter (initially &head,
// then &tail.next). A nil value is the terminal "signaled" marker.
//
// The original formulation uses relaxed atomics for the unlocked read.
// Go defines a single atomic ordering, so this is a plain [atomic.Pointer];
// the portable contract is only that an unlocked load may under-report
// "signaled" (pushing the caller onto the locked slow path), never the
// reverse. All stores happen under the state mutex.
type tailRef struct {
	p atomic.Pointer[*node]
}

func (r *tailRef) load() **node   { return r.p.Load() }
func (r *tailRef) store(p **node) { r.p.Store(p) }
func (r *tailRef) signaled() bool { return r.p.Load() == nil }

// state is the shared core of an [Event]. All copies of an Event, and
// every pending [Waiter], reference the same state. It has exactly two
// logical states, unsignaled and signaled, and a single irreversible
// transition between them, performed by set.
type state struct {
	logger  *logiface.Logger[logiface.Event]
	onPanic func(recovered any)

	mu   sync.Mutex
	head *node
	last tailRef
}

func newState(cfg *eventOptions) *state {
	s := &state{
		logger:  cfg.logger,
		onPanic: cfg.panicHandler,
	}
	s.last.store(&s.head)
	return s
}

// signaled is the lock-free fast path. A false result may be stale; the
// caller must re-check under the lock (enqueue does) before suspending.
func (s *state) signaled() bool {
	return s.last.signaled()
}

// enqueue appends n to the pending-waiter chain, returning true if the
// caller must suspend. The read of the tail indirection is repeated under
// the lock; this double-check is what closes the window between a stale
// fast-path read and a concurrent set, so a waiter can never be enqueued
// after the drain has detached the chain.
func (s *state) enqueue(n *node) bool {
	s.mu.Lock()
	p := s.last.load()
	if p == nil {
		s.mu.Unlock()
		return false
	}
	n.next = nil
	*p = n
	s.last.store(&n.next)
	s.mu.Unlock()
	return true
}

// set performs the unsignaled -> signaled transition and resumes every
// pending waiter, in enqueue (FIFO) order. The chain is detached in its
// entirety under the lock and drained outside it, so a resumed waiter may
// immediately call back into this state (e.g. check signaled, start a new
// wait elsewhere) without deadlocking. Repeat calls find an empty chain
// and are no-ops.
func (s *state) set() {
	s.mu.Lock()
	rest := s.head
	s.head = nil
	s.last.store(nil)
	s.mu.Unlock()

	for rest != nil {
		n := rest
		rest = n.next
		s.invoke(n.resume)
	}
}

// invoke runs one resumption handle, isolating panics so that a failing
// waiter cannot prevent the remainder of the drain from resuming.
func (s *state) invoke(resume func()) {
	defer func() {
		if r := recover(); r != nil {
			s.reportPanic(r)
		}
	}()
	resume()
}

// reportPanic surfaces a value recovered from a resumption handle, via the
// configured panic handler, then the configured logger, then the stdlib
// log fallback. A panicking reporter (handler or logger) must not abort
// the drain, but neither failure may vanish: the recover falls back to
// the stdlib log with both values.
func (s *state) reportPanic(recovered any) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("oneshot: recovered panic in waiter resumption: %v (reporting it failed: %v)", recovered, r)
		}
	}()
	switch {
	case s.onPanic != nil:
		s.onPanic(recovered)
	case s.logger != nil:
		s.logger.Warning().
			Interface(`recovered`, recovered).
			Log(`oneshot: recovered panic in waiter resumption`)
	default:
		log.Printf("oneshot: recovered panic in waiter resumption: %v", recovered)
	}
}

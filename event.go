package oneshot

// Event is a single-shot, broadcast synchronization primitive. Once set, it
// stays set forever; there is no reset. Any number of waiters may register
// before the event is set, and all of them are resumed, exactly once each,
// in the order they began waiting, by the first call to [Event.Set].
//
// Event is a small value that references shared state. Copying an Event
// does not create a new logical event: all copies alias the same
// signaled/unsignaled status, and setting any copy satisfies waits
// registered through any other copy. The shared state is kept alive by
// every outstanding copy and by every pending waiter, so an event may be
// set or waited on even after the value it was created as has gone out of
// scope elsewhere.
//
// The zero Event is not usable; create events with [New].
//
// Thread Safety:
// All methods are safe to call concurrently from any goroutine.
type Event struct {
	s *state
}

// New creates a new, unsignaled Event. The opts parameter is optional; see
// [WithLogger] and [WithPanicHandler].
func New(opts ...Option) Event {
	return Event{s: newState(resolveEventOptions(opts))}
}

// Set transitions the event to signaled and resumes every pending waiter,
// in the order they suspended. The transition is irreversible and Set is
// idempotent: repeat calls, from any goroutine, are no-ops.
//
// Resumption handles run synchronously on the calling goroutine, after the
// internal lock has been released, so the cost of Set is proportional to
// the number of pending waiters and a resumed waiter may immediately
// interact with the event again. A panicking resumption handle is isolated
// and reported (see [WithPanicHandler] and [WithLogger]); it does not
// prevent later waiters from resuming, and does not propagate out of Set.
func (e Event) Set() {
	e.s.set()
}

// Signaled reports whether the event has been set. It is lock-free: a
// false result may be stale with respect to a concurrent [Event.Set], but
// a true result is definitive.
func (e Event) Signaled() bool {
	return e.s.signaled()
}

// Waiter returns a new suspend/resume adapter bound to this event's shared
// state. It has no side effects until the adapter's methods are used; see
// [Waiter] for the protocol. Most callers want [Event.Wait] instead.
func (e Event) Waiter() *Waiter {
	return &Waiter{s: e.s}
}

// Wait blocks the calling goroutine until the event is set. If the event
// is already set, Wait returns immediately, without allocating. There is
// no way to abandon a wait: the only path to return is a call to
// [Event.Set] on any copy of this event.
func (e Event) Wait() {
	if e.s.signaled() {
		return
	}
	ch := make(chan struct{})
	w := Waiter{s: e.s}
	if !w.Suspend(func() { close(ch) }) {
		return
	}
	<-ch
}

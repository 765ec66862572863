package oneshot

// Waiter adapts one wait on an [Event] to an explicit suspend/resume
// protocol, for callers integrating the event with their own scheduling
// (rather than blocking a goroutine via [Event.Wait]). The protocol is:
//
//  1. Call [Waiter.Ready]. If it returns true the event has already been
//     set; proceed immediately, skipping the rest.
//  2. Call [Waiter.Suspend] with the resumption handle. If it returns
//     false the event was set concurrently; proceed immediately, the
//     handle will never be invoked. If it returns true, park: the handle
//     will be invoked exactly once, by the goroutine that sets the event.
//
// Step 1 is an optimization only; Suspend performs its own authoritative
// check under the lock, so skipping Ready is always correct.
//
// A Waiter is single use: it embeds the queue node for its one wait, and
// must not be reused or copied after Suspend has returned true, until its
// resumption handle has been invoked. The Waiter holds a strong reference
// to the event's shared state, so a pending wait keeps the event alive
// even if every [Event] value referencing it has been dropped.
type Waiter struct {
	s *state
	n node
}

// Ready reports whether the event has already been set, i.e. whether the
// caller can proceed without suspending. Lock-free; false may be stale.
func (w *Waiter) Ready() bool {
	return w.s.signaled()
}

// Suspend registers resume to be invoked when the event is set, and
// reports whether the caller must actually suspend. A false result means
// the event was already set: the caller proceeds immediately and resume is
// never invoked. A true result means resume will be invoked exactly once,
// synchronously, on the goroutine that calls [Event.Set].
//
// resume must not be nil. It runs outside the event's internal lock, so it
// may safely interact with the event, but it runs on the setter's
// goroutine and should not block for long.
func (w *Waiter) Suspend(resume func()) bool {
	if resume == nil {
		panic(`oneshot: nil resume`)
	}
	w.n.resume = resume
	return w.s.enqueue(&w.n)
}

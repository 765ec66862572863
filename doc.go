// Package oneshot provides a single-shot, broadcast synchronization
// primitive ([Event]) for coordinating any number of waiters with a signal
// raised from any goroutine, plus a small asynchronous task handle ([Task])
// built on top of it.
//
// # Architecture
//
// An [Event] is a copyable value referencing one shared state. The state
// holds a mutex-protected intrusive queue of pending waiters and a single
// atomically-readable word that doubles as the queue's append position and
// the signaled marker. Waiting takes one of two paths:
//
//   - Fast path: a lock-free read observes "already signaled" and the wait
//     completes immediately, with no lock acquisition and no suspension.
//   - Slow path: the waiter's node is appended to the queue under the
//     lock, after an authoritative re-check of the signaled marker. The
//     re-check eliminates the race where a signal lands between the stale
//     fast-path read and the enqueue, so a wakeup can never be lost.
//
// [Event.Set] detaches the entire queue under the lock, marks the state
// signaled (irreversibly), and then resumes every detached waiter in FIFO
// order with the lock released. Resumed waiters may therefore re-enter the
// event freely, and a second Set finds an empty queue and does nothing.
//
// # Waiting
//
// [Event.Wait] blocks the calling goroutine, which suits ordinary Go code.
// [Event.Waiter] exposes the underlying readiness-check/suspend/resume
// protocol directly, for integration with schedulers, state machines, or
// select-driven code that supplies its own resumption handle.
//
// # Thread Safety
//
//   - [Event.Set], [Event.Wait], [Event.Signaled] and the [Waiter] methods
//     are safe to call from any goroutine.
//   - Resumption handles run synchronously on the goroutine calling
//     [Event.Set], outside the internal lock; panics they raise are
//     isolated per handle and reported (see [WithPanicHandler] and
//     [WithLogger]) rather than aborting the drain.
//   - Copies of an [Event] share identity: setting one satisfies waits
//     registered through any other.
//
// # Limitations
//
// The primitive is deliberately minimal: there is no reset (once set,
// forever set), no cancellation or timeout for a pending wait, and no
// bound on the number of waiters. Callers needing cancellable waits should
// select on external signals before suspending, or use a different
// primitive.
//
// # Usage
//
//	event := oneshot.New()
//
//	go func() {
//	    time.Sleep(2 * time.Second)
//	    event.Set()
//	}()
//
//	event.Wait() // blocks until Set
//
// The [Task] helper runs a function asynchronously and exposes completion
// as an event:
//
//	task := oneshot.Go(func() (int, error) {
//	    return compute()
//	})
//	n, err := task.Wait()
package oneshot

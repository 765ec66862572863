package oneshot

// Task is a handle to a result-bearing asynchronous computation started
// with [Go]. It stores the computation's result, error, or recovered
// panic, and completes an [Event] when the computation finishes, so
// completion can be waited on or composed like any other event.
//
// Thread Safety:
// All methods are safe to call concurrently; [Task.Wait] may be called
// from any number of goroutines, each of which observes the same outcome.
type Task[T any] struct {
	result T
	err    error
	// recovered holds the panic value, if the task function panicked.
	// Written strictly before done is set, read strictly after.
	recovered any
	done      Event
}

// Go runs fn on a new goroutine and returns a Task tracking it. The task
// completes when fn returns or panics; a panic is captured rather than
// crashing the process, and re-raised by [Task.Wait] wrapped in
// [PanicError].
//
// Providing a nil fn will cause a panic.
func Go[T any](fn func() (T, error)) *Task[T] {
	if fn == nil {
		panic(`oneshot: nil task function`)
	}
	t := &Task[T]{done: New()}
	go func() {
		defer t.done.Set()
		defer func() {
			if r := recover(); r != nil {
				t.recovered = r
			}
		}()
		t.result, t.err = fn()
	}()
	return t
}

// Wait blocks the calling goroutine until the task completes, then returns
// its result and error. If the task's function panicked, Wait re-panics
// with a [PanicError] wrapping the recovered value, propagating the
// failure to the waiter. If the task is already complete, Wait returns
// immediately.
func (t *Task[T]) Wait() (T, error) {
	t.done.Wait()
	if t.recovered != nil {
		panic(PanicError{Value: t.recovered})
	}
	return t.result, t.err
}

// Done returns the task's completion event. The event is set exactly once,
// after the task's outcome has been recorded, and may be waited on or
// checked like any other [Event].
func (t *Task[T]) Done() Event {
	return t.done
}

// Settled reports whether the task has completed. Lock-free; a false
// result may be stale with respect to a concurrently completing task.
func (t *Task[T]) Settled() bool {
	return t.done.Signaled()
}

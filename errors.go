package oneshot

import (
	"fmt"
)

// PanicError wraps a value recovered from a panicking task function. It is
// what [Task.Wait] re-panics with when the task's function panicked, so
// the failure reaches the waiting goroutine rather than tearing down the
// task's own goroutine silently.
type PanicError struct {
	// Value is the recovered panic value, unmodified.
	Value any
}

// Error implements the error interface.
func (e PanicError) Error() string {
	return fmt.Sprintf("oneshot: recovered panic: %v", e.Value)
}

// Unwrap returns the underlying error if the panic value is an error type.
// This enables use with [errors.Is] and [errors.As] for error matching
// through the cause chain.
//
// If the panic Value is not an error (e.g., a string or other type),
// returns nil.
func (e PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

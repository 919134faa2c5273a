package isolated

import (
	"fmt"
	"runtime/debug"
)

// PanicError wraps a panic recovered from a function submitted to a [Lane],
// together with the goroutine stack trace captured at the point of the
// panic. It is delivered to the submitting caller (through a [Result] or
// the [Lane.Close] error set) instead of killing the worker.
type PanicError struct {
	// Value is the original value passed to panic().
	Value any

	// Stack is the goroutine stack trace at the point of panic.
	Stack string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v\n\n%s", e.Value, e.Stack)
}

// Unwrap returns nil. PanicError does not wrap another error.
func (e *PanicError) Unwrap() error { return nil }

func newPanicError(v any) *PanicError {
	return &PanicError{Value: v, Stack: string(debug.Stack())}
}

package isolated

import (
	"context"
	"sync"
)

// Result holds the one-shot outcome of a function submitted to a [Lane].
// Create one via [Async].
type Result[T any] struct {
	ch   chan outcome[T]
	once sync.Once
	val  T
	err  error
}

type outcome[T any] struct {
	val T
	err error
}

// Wait blocks until the function completes, then returns its value and
// error. Wait is idempotent: subsequent calls return the same outcome
// without blocking.
func (r *Result[T]) Wait() (T, error) {
	r.once.Do(func() {
		o := <-r.ch
		r.val, r.err = o.val, o.err
	})
	return r.val, r.err
}

// Async submits fn to the lane and returns a [Result] for its outcome
// without waiting for execution. The returned error is non-nil only when
// the submission itself fails (lane closed, or ctx cancelled before
// dispatch); fn's own error is delivered through the Result.
//
// A panic in fn is captured as a [*PanicError] and delivered through the
// Result; the lane's worker survives.
func Async[T any](ctx context.Context, l *Lane, fn func() (T, error)) (*Result[T], error) {
	r := &Result[T]{ch: make(chan outcome[T], 1)}

	err := l.Submit(ctx, func() error {
		var o outcome[T]
		func() {
			defer func() {
				if rec := recover(); rec != nil {
					o.err = newPanicError(rec)
				}
			}()
			o.val, o.err = fn()
		}()
		r.ch <- o

		// The outcome belongs to the waiting caller; returning nil keeps
		// it out of the lane's Close error set so it is reported once.
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Call submits fn and waits for it to complete, returning its outcome.
// It is the synchronous counterpart of [Async] and serializes with every
// other operation on the same lane.
func Call[T any](ctx context.Context, l *Lane, fn func() (T, error)) (T, error) {
	r, err := Async(ctx, l, fn)
	if err != nil {
		var zero T
		return zero, err
	}
	return r.Wait()
}

package isolated

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// ErrLaneClosed is returned by [Lane.Submit] when the lane has been closed.
var ErrLaneClosed = errors.New("isolated: lane is closed")

// Lane is a single-worker serialized executor: submitted functions run one
// at a time, in dispatch order, on one worker goroutine.
//
// The handoff to the worker is unbuffered. A caller blocked in [Lane.Submit]
// has not been dispatched yet, so cancelling its context withdraws the
// operation with no effect; once a function has been handed to the worker it
// always runs to completion.
//
// Create a Lane with [NewLane] and release its worker with [Lane.Close].
type Lane struct {
	ops    chan func() error
	wg     sync.WaitGroup
	closed atomic.Bool

	errMu sync.Mutex
	errs  []error

	// Observability counters.
	submitted atomic.Int64
	completed atomic.Int64
	errored   atomic.Int64
	waiting   atomic.Int64
}

// LaneStats provides a point-in-time snapshot of lane activity.
type LaneStats struct {
	Submitted int64 // functions dispatched to the worker
	Completed int64 // functions finished (success + error)
	Errored   int64 // functions that returned a non-nil error
	Waiting   int64 // callers currently blocked in Submit
}

// NewLane creates a lane and starts its worker goroutine.
// Call [Lane.Close] to stop the worker and collect errors.
func NewLane() *Lane {
	l := &Lane{ops: make(chan func() error)}
	l.wg.Add(1)
	go l.worker()
	return l
}

func (l *Lane) worker() {
	defer l.wg.Done()
	for fn := range l.ops {
		l.run(fn)
	}
}

func (l *Lane) run(fn func() error) {
	defer l.completed.Add(1)

	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				err = newPanicError(r)
			}
		}()
		err = fn()
	}()
	if err != nil {
		l.errored.Add(1)
		l.errMu.Lock()
		l.errs = append(l.errs, err)
		l.errMu.Unlock()
	}
}

// Submit hands fn to the worker, blocking (parked, not spinning) until the
// worker accepts it or ctx is cancelled. A cancelled Submit has no effect:
// fn was never dispatched and will not run. Submit returns once fn is
// dispatched, not once it completes; use [Call] or [Async] to observe the
// outcome of a specific function.
//
// Returns [ErrLaneClosed] once the lane has been closed.
func (l *Lane) Submit(ctx context.Context, fn func() error) (err error) {
	if l.closed.Load() {
		return ErrLaneClosed
	}

	// Guard against the race between the closed check above and Close()
	// closing the ops channel. If Close fires between the check and the
	// send, the send panics; we recover and return ErrLaneClosed.
	defer func() {
		if r := recover(); r != nil {
			err = ErrLaneClosed
		}
	}()

	l.waiting.Add(1)
	defer l.waiting.Add(-1)

	select {
	case l.ops <- fn:
		l.submitted.Add(1)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TrySubmit hands fn to the worker only if the worker is ready to accept it
// right now. Returns false if the worker is busy or the lane is closed.
func (l *Lane) TrySubmit(fn func() error) (submitted bool) {
	if l.closed.Load() {
		return false
	}

	// Same close-race guard as Submit.
	defer func() {
		if r := recover(); r != nil {
			submitted = false
		}
	}()

	select {
	case l.ops <- fn:
		l.submitted.Add(1)
		return true
	default:
		return false
	}
}

// Close stops accepting new functions, waits for the in-flight one to
// finish, and returns the joined errors of all failed fire-and-forget
// submissions. Errors delivered through a [Result] are not repeated here.
//
// Safe to call multiple times; subsequent calls return the same result.
func (l *Lane) Close() error {
	if l.closed.CompareAndSwap(false, true) {
		close(l.ops)
	}
	l.wg.Wait()

	l.errMu.Lock()
	defer l.errMu.Unlock()
	return errors.Join(l.errs...)
}

// Stats returns a point-in-time snapshot of lane activity.
// Safe to call concurrently.
func (l *Lane) Stats() LaneStats {
	return LaneStats{
		Submitted: l.submitted.Load(),
		Completed: l.completed.Load(),
		Errored:   l.errored.Load(),
		Waiting:   l.waiting.Load(),
	}
}

// Package isolated provides serialized, copy-out generic containers for Go.
//
// Each container instance exclusively owns one collection value. No matter
// how many goroutines call in concurrently, at most one operation executes
// against that value at any instant: concurrent callers park until the
// instance is free (they never spin), and every completed mutation is visible
// to all operations that begin after it. Reads return independent snapshots,
// never a live alias to the owned value.
//
// # Containers
//
// [List] is an ordered, random-access sequence (duplicates allowed, insertion
// order preserved). [Set] is an unordered unique-membership collection.
// Create them with [NewList] and [NewSet]:
//
//	l := isolated.NewList(5, 1, 3)
//	l.Append(4)
//	isolated.Sort(l)
//	fmt.Println(l.All()) // [1 3 4 5]
//
// Index-based access is only offered where it means something: [List.At] and
// [List.RemoveAt] exist, their Set counterparts do not, so a capability
// mismatch fails to compile instead of failing at call time. The same applies
// to ordering: [Sort] requires ordered elements and [Contains] requires
// comparable elements, so both are package-level functions constrained on the
// element type rather than methods on List.
//
// Out-of-range access is an explicit absent result, never a fault: At returns
// (zero, false) and RemoveAt is a no-op returning false.
//
// # Snapshots
//
// [List.All] and [Set.All] return independent copies that the caller may keep
// or mutate freely. [List.Filter] and [Set.Filter] evaluate the predicate
// against a single consistent snapshot and return a new instance of the same
// kind, leaving the receiver untouched. [List.Range] and [Set.Range] iterate
// a snapshot, so the callback may call back into the container.
//
// # Gate
//
// [Gate] is the admission primitive the containers are built on: an exclusive
// section with a context-aware [Gate.Enter]. It is exported for standalone
// use when callers need the same one-at-a-time guarantee around state of
// their own. Admission order among concurrent waiters is unspecified; the
// only guarantee is mutual exclusion.
//
// # Lane
//
// [Lane] is the actor-flavored alternative: one worker goroutine executing
// submitted functions strictly one at a time. The handoff is unbuffered, so
// cancelling the context of a caller still blocked in [Lane.Submit] withdraws
// the operation before it was dispatched, with no effect on state; once
// dispatched, a function always runs to completion. [Async] submits a
// function that produces a typed value and returns a [Result]; [Call] is its
// synchronous submit-and-wait counterpart.
//
// A panic in a submitted function is captured as a [*PanicError] (value plus
// stack trace) and delivered to the submitting caller; the lane's worker
// survives. Unlike the containers, a Lane owns a goroutine and must be
// released with [Lane.Close].
package isolated

package isolated

import (
	"cmp"
	"slices"
)

// List is a serialized, ordered, random-access sequence of elements.
//
// Every operation runs to completion before the next queued operation on the
// same instance begins, so concurrent callers never observe partial state.
// Reads hand out independent copies: mutating a snapshot returned by
// [List.All] has no effect on the list.
//
// The zero value is not usable; create instances with [NewList].
type List[E any] struct {
	gate  *Gate
	items []E
}

// NewList creates a list holding a copy of the given initial elements.
func NewList[E any](items ...E) *List[E] {
	l := &List[E]{gate: NewGate()}
	if len(items) > 0 {
		l.items = make([]E, len(items))
		copy(l.items, items)
	}
	return l
}

// Append adds v to the end of the list. It always succeeds.
func (l *List[E]) Append(v E) {
	l.gate.enter()
	defer l.gate.Leave()

	l.items = append(l.items, v)
}

// At returns the element at index i and true, or the zero value and false
// when i is out of bounds. The answer reflects the list as of when this
// operation is admitted, not any earlier snapshot held by the caller.
func (l *List[E]) At(i int) (E, bool) {
	l.gate.enter()
	defer l.gate.Leave()

	if i < 0 || i >= len(l.items) {
		var zero E
		return zero, false
	}
	return l.items[i], true
}

// RemoveAt removes the element at index i and reports whether a removal took
// place. An out-of-bounds index is a safe no-op returning false.
func (l *List[E]) RemoveAt(i int) bool {
	l.gate.enter()
	defer l.gate.Leave()

	if i < 0 || i >= len(l.items) {
		return false
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return true
}

// Len returns the current number of elements.
func (l *List[E]) Len() int {
	l.gate.enter()
	defer l.gate.Leave()

	return len(l.items)
}

// All returns an independent snapshot of the current contents, in order.
func (l *List[E]) All() []E {
	l.gate.enter()
	defer l.gate.Leave()

	out := make([]E, len(l.items))
	copy(out, l.items)
	return out
}

// SortFunc reorders the list in place using the caller-supplied comparison
// (negative when a sorts before b, zero when equal, positive otherwise).
// The sort is stable.
//
// compare must be a pure function of its two arguments. It runs inside the
// list's exclusive section and must not call back into the same list.
func (l *List[E]) SortFunc(compare func(a, b E) int) {
	l.gate.enter()
	defer l.gate.Leave()

	slices.SortStableFunc(l.items, compare)
}

// Filter returns a new list containing, in their original relative order,
// the elements for which pred holds. The predicate is evaluated once per
// element against a single consistent snapshot; the receiver is not mutated.
//
// pred runs inside the exclusive section and must not call back into the
// same list.
func (l *List[E]) Filter(pred func(E) bool) *List[E] {
	l.gate.enter()
	defer l.gate.Leave()

	out := &List[E]{gate: NewGate()}
	for _, v := range l.items {
		if pred(v) {
			out.items = append(out.items, v)
		}
	}
	return out
}

// Range calls fn for each element of a snapshot, in order, until fn returns
// false. Because fn observes the snapshot rather than the owned value, it is
// free to call back into the list.
func (l *List[E]) Range(fn func(E) bool) {
	for _, v := range l.All() {
		if !fn(v) {
			return
		}
	}
}

// Clear removes all elements.
func (l *List[E]) Clear() {
	l.gate.enter()
	defer l.gate.Leave()

	l.items = nil
}

// Sort reorders l in place into ascending natural order. It is a function
// rather than a method because the ordered-element requirement cannot be
// expressed on a method of List[E any]; the constraint makes sorting a list
// of unordered elements a compile error rather than a runtime one.
func Sort[E cmp.Ordered](l *List[E]) {
	l.gate.enter()
	defer l.gate.Leave()

	slices.Sort(l.items)
}

// Contains reports whether v is present in l. Like [Sort], it is a function
// because the comparable requirement cannot be expressed on a method.
func Contains[E comparable](l *List[E], v E) bool {
	l.gate.enter()
	defer l.gate.Leave()

	return slices.Contains(l.items, v)
}

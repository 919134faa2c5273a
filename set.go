package isolated

// Set is a serialized unique-membership collection. Elements are unordered
// and duplicate-free; adding a value that is already present is a no-op.
//
// Set deliberately has no indexing or ordering operations: those
// capabilities do not exist for this collection kind, so code that needs
// them does not compile against a Set.
//
// The zero value is not usable; create instances with [NewSet].
type Set[E comparable] struct {
	gate  *Gate
	items map[E]struct{}
}

// NewSet creates a set holding the given initial elements, deduplicated.
func NewSet[E comparable](items ...E) *Set[E] {
	s := &Set[E]{
		gate:  NewGate(),
		items: make(map[E]struct{}, len(items)),
	}
	for _, v := range items {
		s.items[v] = struct{}{}
	}
	return s
}

// Add inserts v and reports whether it was newly added.
func (s *Set[E]) Add(v E) bool {
	s.gate.enter()
	defer s.gate.Leave()

	if _, ok := s.items[v]; ok {
		return false
	}
	s.items[v] = struct{}{}
	return true
}

// Contains reports whether v is a member of the set.
func (s *Set[E]) Contains(v E) bool {
	s.gate.enter()
	defer s.gate.Leave()

	_, ok := s.items[v]
	return ok
}

// Remove deletes v and reports whether it was present.
func (s *Set[E]) Remove(v E) bool {
	s.gate.enter()
	defer s.gate.Leave()

	if _, ok := s.items[v]; !ok {
		return false
	}
	delete(s.items, v)
	return true
}

// Len returns the current number of members.
func (s *Set[E]) Len() int {
	s.gate.enter()
	defer s.gate.Leave()

	return len(s.items)
}

// All returns an independent snapshot of the current members.
// The order is unspecified.
func (s *Set[E]) All() []E {
	s.gate.enter()
	defer s.gate.Leave()

	out := make([]E, 0, len(s.items))
	for v := range s.items {
		out = append(out, v)
	}
	return out
}

// Filter returns a new set containing the members for which pred holds.
// The predicate is evaluated once per member against a single consistent
// snapshot; the receiver is not mutated.
//
// pred runs inside the exclusive section and must not call back into the
// same set.
func (s *Set[E]) Filter(pred func(E) bool) *Set[E] {
	s.gate.enter()
	defer s.gate.Leave()

	out := &Set[E]{
		gate:  NewGate(),
		items: make(map[E]struct{}),
	}
	for v := range s.items {
		if pred(v) {
			out.items[v] = struct{}{}
		}
	}
	return out
}

// Range calls fn for each member of a snapshot, in unspecified order, until
// fn returns false. Because fn observes the snapshot rather than the owned
// value, it is free to call back into the set.
func (s *Set[E]) Range(fn func(E) bool) {
	for _, v := range s.All() {
		if !fn(v) {
			return
		}
	}
}

// Clear removes all members.
func (s *Set[E]) Clear() {
	s.gate.enter()
	defer s.gate.Leave()

	clear(s.items)
}

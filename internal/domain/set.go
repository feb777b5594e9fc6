package domain

// OrderedSet is a set of comparable values that remembers the order in which
// members were added. Toggling a member out and back in moves it to the end.
type OrderedSet[T comparable] struct {
	members map[T]struct{}
	order   []T
}

// NewOrderedSet creates an ordered set seeded with the given members
func NewOrderedSet[T comparable](initial ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{
		members: make(map[T]struct{}, len(initial)),
	}
	for _, v := range initial {
		s.Add(v)
	}
	return s
}

// Add inserts v if it is not already a member
func (s *OrderedSet[T]) Add(v T) {
	if _, ok := s.members[v]; ok {
		return
	}
	s.members[v] = struct{}{}
	s.order = append(s.order, v)
}

// Remove deletes v from the set if present
func (s *OrderedSet[T]) Remove(v T) {
	if _, ok := s.members[v]; !ok {
		return
	}
	delete(s.members, v)
	for i, existing := range s.order {
		if existing == v {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Toggle flips membership of v and reports whether v is now a member
func (s *OrderedSet[T]) Toggle(v T) bool {
	if _, ok := s.members[v]; ok {
		s.Remove(v)
		return false
	}
	s.Add(v)
	return true
}

// Has reports whether v is a member
func (s *OrderedSet[T]) Has(v T) bool {
	_, ok := s.members[v]
	return ok
}

// Len returns the number of members
func (s *OrderedSet[T]) Len() int {
	return len(s.order)
}

// Values returns the members in insertion order. The returned slice is a copy.
func (s *OrderedSet[T]) Values() []T {
	out := make([]T, len(s.order))
	copy(out, s.order)
	return out
}

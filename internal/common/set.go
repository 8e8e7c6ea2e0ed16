// internal/common/set.go
package common

// OrderedSet is a set that remembers first-seen insertion order.
// Add returns true if the key was already present.
type OrderedSet[K comparable] struct {
	keys []K
	idx  map[K]int
}

func NewOrderedSet[K comparable](items ...K) *OrderedSet[K] {
	s := &OrderedSet[K]{idx: make(map[K]int, len(items))}
	for _, k := range items {
		s.Add(k)
	}
	return s
}

// Add inserts k; returns true if it was already present.
func (s *OrderedSet[K]) Add(k K) bool {
	if s.idx == nil {
		s.idx = map[K]int{}
	}
	if _, ok := s.idx[k]; ok {
		return true
	}
	s.idx[k] = len(s.keys)
	s.keys = append(s.keys, k)
	return false
}

// Index returns the insertion position of k.
func (s *OrderedSet[K]) Index(k K) (int, bool) {
	i, ok := s.idx[k]
	return i, ok
}

func (s *OrderedSet[K]) Len() int { return len(s.keys) }

// Items returns a copy of the keys in insertion order.
func (s *OrderedSet[K]) Items() []K {
	out := make([]K, len(s.keys))
	copy(out, s.keys)
	return out
}

package ecs

// componentStore is the type-erased view the world needs to clean up after
// destroyed entities.
type componentStore interface {
	has(e Entity) bool
	remove(e Entity) bool
	len() int
}

// sparseSet stores one component type keyed by entity slot. Removal shifts the
// dense arrays, so iteration order always matches insertion order.
type sparseSet[T any] struct {
	dense  []Entity
	values []*T
	sparse []int
}

func (s *sparseSet[T]) index(e Entity) int {
	if s == nil {
		return -1
	}
	id := int(e.id())
	if id <= 0 || id > len(s.sparse) {
		return -1
	}
	idx := s.sparse[id-1]
	if idx < 0 || idx >= len(s.dense) || s.dense[idx] != e {
		return -1
	}
	return idx
}

func (s *sparseSet[T]) has(e Entity) bool {
	return s.index(e) >= 0
}

func (s *sparseSet[T]) get(e Entity) (*T, bool) {
	idx := s.index(e)
	if idx < 0 {
		return nil, false
	}
	return s.values[idx], true
}

func (s *sparseSet[T]) set(e Entity, v *T) {
	if idx := s.index(e); idx >= 0 {
		s.values[idx] = v
		return
	}
	id := int(e.id())
	for len(s.sparse) < id {
		s.sparse = append(s.sparse, -1)
	}
	s.dense = append(s.dense, e)
	s.values = append(s.values, v)
	s.sparse[id-1] = len(s.dense) - 1
}

func (s *sparseSet[T]) remove(e Entity) bool {
	idx := s.index(e)
	if idx < 0 {
		return false
	}
	s.sparse[e.id()-1] = -1

	last := len(s.dense) - 1
	copy(s.dense[idx:], s.dense[idx+1:])
	copy(s.values[idx:], s.values[idx+1:])
	s.values[last] = nil
	s.dense = s.dense[:last]
	s.values = s.values[:last]

	for i := idx; i < len(s.dense); i++ {
		s.sparse[s.dense[i].id()-1] = i
	}
	return true
}

func (s *sparseSet[T]) len() int {
	if s == nil {
		return 0
	}
	return len(s.dense)
}

// snapshot copies the dense entity list so callers may add or destroy
// entities while iterating.
func (s *sparseSet[T]) snapshot() []Entity {
	if s == nil || len(s.dense) == 0 {
		return nil
	}
	return append([]Entity(nil), s.dense...)
}

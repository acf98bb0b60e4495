package collections

// PersistentStringSet is an immutable set of strings with structural
// sharing: Plus returns a new set backed by the receiver, so sibling
// branches of a recursion extending the same base set never observe
// each other's additions.  The nil pointer is the empty set.
type PersistentStringSet struct {
	name string
	rest *PersistentStringSet
}

// EmptyStringSet is the empty PersistentStringSet.
var EmptyStringSet *PersistentStringSet

// Plus returns a set containing the receiver's elements and name.  The
// receiver is unchanged.
func (s *PersistentStringSet) Plus(name string) *PersistentStringSet {
	if s.Has(name) {
		return s
	}
	return &PersistentStringSet{name: name, rest: s}
}

// Has reports whether name is in the set.
func (s *PersistentStringSet) Has(name string) bool {
	for cur := s; cur != nil; cur = cur.rest {
		if cur.name == name {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the set has no elements.
func (s *PersistentStringSet) IsEmpty() bool { return s == nil }

// Len returns the number of elements.
func (s *PersistentStringSet) Len() int {
	n := 0
	for cur := s; cur != nil; cur = cur.rest {
		n++
	}
	return n
}

package fixedstring

import "github.com/rawbytedev/fixedstring/internal/common"

// Set replaces the content of s with src, using the same rules as From.
func (s *String[B]) Set(src B) {
	b := view(&src)
	s.store(b[:common.Strnlen(b, s.Capacity())])
}

// AssignArray is Set under the name used by the rest of the Assign family.
func (s *String[B]) AssignArray(src B) {
	s.Set(src)
}

// Assign replaces the content of s with a copy of other.
func (s *String[B]) Assign(other *String[B]) {
	if s == other {
		return
	}
	*s = *other
}

// UnsafeAssign replaces the content of s with str. If str is longer than
// Capacity it returns false and s is left unchanged.
func (s *String[B]) UnsafeAssign(str string) bool {
	if len(str) > s.Capacity() {
		return false
	}
	s.storeString(str)
	return true
}

// UnsafeAssignCString replaces the content of s with the zero-terminated
// bytes at the start of p. If that run is longer than Capacity it returns
// false and s is left unchanged.
func (s *String[B]) UnsafeAssignCString(p []byte) bool {
	c := s.Capacity()
	n := common.Strnlen(p, c+1)
	if n > c {
		return false
	}
	s.store(p[:n])
	return true
}

// UnsafeAssignBytes replaces the content of s with all of p, zero bytes
// included. If p is longer than Capacity it returns false and s is left
// unchanged.
func (s *String[B]) UnsafeAssignBytes(p []byte) bool {
	if len(p) > s.Capacity() {
		return false
	}
	s.store(p)
	return true
}

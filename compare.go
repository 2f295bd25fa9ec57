package fixedstring

import "bytes"

// Compare returns -1, 0 or +1 as s orders before, equal to or after other.
// Bytes are compared as unsigned values; a strict prefix orders first.
func (s *String[B]) Compare(other *String[B]) int {
	return bytes.Compare(s.Bytes(), other.Bytes())
}

// Compare is the function form of String.Compare, usable with
// slices.SortFunc and friends.
func Compare[B Buffer](a, b String[B]) int {
	return a.Compare(&b)
}

func (s *String[B]) Equal(other *String[B]) bool          { return s.Compare(other) == 0 }
func (s *String[B]) NotEqual(other *String[B]) bool       { return s.Compare(other) != 0 }
func (s *String[B]) Less(other *String[B]) bool           { return s.Compare(other) < 0 }
func (s *String[B]) LessOrEqual(other *String[B]) bool    { return s.Compare(other) <= 0 }
func (s *String[B]) Greater(other *String[B]) bool        { return s.Compare(other) > 0 }
func (s *String[B]) GreaterOrEqual(other *String[B]) bool { return s.Compare(other) >= 0 }

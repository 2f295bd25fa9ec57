package fixedstring

import "github.com/rawbytedev/fixedstring/internal/common"

// Truncation is the type of the Truncate marker.
type Truncation struct{}

// Truncate must be passed as the first argument of the constructors that
// silently cut oversized sources to Capacity bytes. It exists to make the
// loss of data visible at the call site.
var Truncate Truncation

// From builds a String from a value of its backing array type, typically a
// composite literal such as Cap4{'a', 'b', 'c', 'd'}. A literal with more
// than Capacity+1 elements does not compile. The content ends at the first
// zero byte within the first Capacity bytes; the last element is always
// treated as the terminator slot and dropped. cmd/fixedstringvet reports
// literals with a non-zero constant in that slot.
func From[B Buffer](src B) String[B] {
	var s String[B]
	s.Set(src)
	return s
}

// FromString builds a String from str, keeping at most Capacity bytes.
func FromString[B Buffer](_ Truncation, str string) String[B] {
	var s String[B]
	if c := s.Capacity(); len(str) > c {
		str = str[:c]
	}
	s.storeString(str)
	return s
}

// FromCString builds a String from the zero-terminated bytes at the start
// of p. Reading stops at the first zero byte or at the end of p, and at most
// Capacity bytes are kept.
func FromCString[B Buffer](_ Truncation, p []byte) String[B] {
	var s String[B]
	s.store(p[:common.Strnlen(p, s.Capacity())])
	return s
}

// FromN builds a String from the first min(count, len(p)) bytes of p.
// Zero bytes inside that range are kept. At most Capacity bytes are kept.
func FromN[B Buffer](_ Truncation, p []byte, count int) String[B] {
	var s String[B]
	count = max(0, min(count, len(p), s.Capacity()))
	s.store(p[:count])
	return s
}

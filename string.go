package fixedstring

import (
	"unsafe"

	"github.com/rawbytedev/fixedstring/internal/common"
)

// String is a byte string of at most CapacityOf[B]() bytes stored inline.
//
// The zero value is the empty string. buf[n] is always the zero terminator
// and every byte after it is zero as well, so two Strings of the same type
// are == exactly when they hold the same content.
type String[B Buffer] struct {
	buf B
	n   uint64
}

// Fixed is implemented by *String[B] for every B. Codecs use it to handle
// strings of any capacity through one code path.
type Fixed interface {
	Capacity() int
	Size() int
	Bytes() []byte
	BinarySize() int
	AppendBinary(b []byte) ([]byte, error)
	UnmarshalBinary(data []byte) error
}

var _ Fixed = (*String[Cap4])(nil)

// New returns an empty String.
func New[B Buffer]() String[B] {
	return String[B]{}
}

// view returns the whole backing array of b as a slice.
func view[B Buffer](b *B) []byte {
	return unsafe.Slice(&(*b)[0], len(*b))
}

func (s *String[B]) raw() []byte {
	return view(&s.buf)
}

// store replaces the content with src. len(src) must not exceed Capacity.
func (s *String[B]) store(src []byte) {
	s.n = uint64(common.CopyClear(s.raw(), src))
}

func (s *String[B]) storeString(src string) {
	s.n = uint64(common.CopyClearString(s.raw(), src))
}

// Size returns the number of bytes stored.
func (s *String[B]) Size() int {
	return int(s.n)
}

// Capacity returns the maximum number of bytes s can hold.
func (s *String[B]) Capacity() int {
	return len(s.buf) - 1
}

// Empty reports whether s holds no bytes.
func (s *String[B]) Empty() bool {
	return s.n == 0
}

// Bytes returns the content of s without copying. The slice aliases the
// backing array: it is only valid while s is alive and unmodified, and must
// not be written to.
func (s *String[B]) Bytes() []byte {
	return s.raw()[:s.n:s.n]
}

// CString returns the content of s followed by its terminator, without
// copying. The same lifetime rules as Bytes apply.
func (s *String[B]) CString() []byte {
	return s.raw()[: s.n+1 : s.n+1]
}

// String copies the content of s into a Go string.
func (s *String[B]) String() string {
	return string(s.Bytes())
}

// Clear resets s to the empty string.
func (s *String[B]) Clear() {
	*s = String[B]{}
}

// MoveFrom copies other into s and leaves other empty.
func (s *String[B]) MoveFrom(other *String[B]) {
	if s == other {
		return
	}
	*s = *other
	other.Clear()
}

// Validate checks the layout invariants of s. Values built through this
// package always pass; it exists for Strings read from foreign memory.
func (s *String[B]) Validate() error {
	if s.n > uint64(s.Capacity()) {
		return ErrCorruptLength
	}
	raw := s.raw()
	if raw[s.n] != 0 {
		return ErrMissingTerminator
	}
	if !common.IsZero(raw[s.n+1:]) {
		return ErrDirtyTail
	}
	return nil
}

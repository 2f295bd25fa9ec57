package fixedstring

import (
	"encoding/binary"
	"fmt"

	"github.com/rawbytedev/fixedstring/internal/common"
)

// Binary layout: the Capacity+1 bytes of the backing array followed by the
// length as a little-endian uint64. The size depends only on the capacity.

// BinarySize returns the size of the binary encoding of s.
func (s *String[B]) BinarySize() int {
	return len(s.buf) + 8
}

// AppendBinary appends the binary encoding of s to b.
func (s *String[B]) AppendBinary(b []byte) ([]byte, error) {
	b = append(b, s.raw()...)
	return binary.LittleEndian.AppendUint64(b, s.n), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s *String[B]) MarshalBinary() ([]byte, error) {
	return s.AppendBinary(make([]byte, 0, s.BinarySize()))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. data must be
// exactly BinarySize bytes and hold a valid String; otherwise s is left
// unchanged.
func (s *String[B]) UnmarshalBinary(data []byte) error {
	if len(data) != s.BinarySize() {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrBinarySize, len(data), s.BinarySize())
	}
	var tmp String[B]
	raw := tmp.raw()
	copy(raw, data[:len(raw)])
	tmp.n = binary.LittleEndian.Uint64(data[len(raw):])
	if err := tmp.Validate(); err != nil {
		return err
	}
	*s = tmp
	return nil
}

// AppendCompact appends a varint length followed by the content of s.
func (s *String[B]) AppendCompact(b []byte) []byte {
	b = common.WriteVarUintTo(b, s.n)
	return append(b, s.Bytes()...)
}

// DecodeCompact reads a value written by AppendCompact from the front of
// data and returns the number of bytes consumed. On error s is unchanged.
func (s *String[B]) DecodeCompact(data []byte) (int, error) {
	n, hdr := common.ReadVarUint(data)
	if hdr == 0 {
		return 0, ErrShortBuffer
	}
	if n > uint64(s.Capacity()) {
		return 0, ErrCompactLength
	}
	end := hdr + int(n)
	if end > len(data) {
		return 0, ErrShortBuffer
	}
	s.store(data[hdr:end])
	return end, nil
}

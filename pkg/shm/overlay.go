// Package shm places fixedstring values directly in externally owned memory,
// such as a shared mapping, without copying.
//
// A region holds the in-memory representation of String[B] in host byte
// order, not its binary encoding. Processes sharing a region must agree on
// B and on the architecture. String has no pointers, so memory outside the
// Go heap is safe to overlay.
package shm

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/rawbytedev/fixedstring"
)

var (
	ErrRegionTooSmall = errors.New("shm: region too small")
	ErrMisaligned     = errors.New("shm: region misaligned")
	ErrCorrupt        = errors.New("shm: corrupt string")
)

// SlotError reports a failure at one slot of a region.
type SlotError struct {
	Index int
	Cause error
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("shm: slot %d: %v", e.Index, e.Cause)
}

func (e *SlotError) Unwrap() error {
	return e.Cause
}

type Options struct {
	// CheckAlignment rejects regions not aligned for String[B].
	CheckAlignment bool
	// Validate checks the string invariants of the existing bytes.
	Validate bool
	// Reset clears the slot to the empty string. Validate is then skipped.
	Reset bool
}

var DefaultOptions = Options{CheckAlignment: true, Validate: true}

// Stride returns the size of one String[B] slot.
func Stride[B fixedstring.Buffer]() int {
	return int(unsafe.Sizeof(fixedstring.String[B]{}))
}

func align[B fixedstring.Buffer]() uintptr {
	return unsafe.Alignof(fixedstring.String[B]{})
}

// Overlay returns a String backed by the start of region. Writes through the
// returned pointer are visible to every other view of the region.
func Overlay[B fixedstring.Buffer](region []byte, opts Options) (*fixedstring.String[B], error) {
	size := Stride[B]()
	if len(region) < size {
		return nil, fmt.Errorf("%w: %d bytes, need %d", ErrRegionTooSmall, len(region), size)
	}
	p := unsafe.Pointer(unsafe.SliceData(region))
	if opts.CheckAlignment && uintptr(p)%align[B]() != 0 {
		return nil, fmt.Errorf("%w: address %#x, need %d-byte alignment", ErrMisaligned, uintptr(p), align[B]())
	}
	s := (*fixedstring.String[B])(p)
	switch {
	case opts.Reset:
		s.Clear()
	case opts.Validate:
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
	}
	return s, nil
}

// At overlays the index-th slot of a region laid out as an array of
// String[B].
func At[B fixedstring.Buffer](region []byte, index int, opts Options) (*fixedstring.String[B], error) {
	stride := Stride[B]()
	if index < 0 || index >= len(region)/stride {
		return nil, &SlotError{Index: index, Cause: ErrRegionTooSmall}
	}
	s, err := Overlay[B](region[index*stride:(index+1)*stride], opts)
	if err != nil {
		return nil, &SlotError{Index: index, Cause: err}
	}
	return s, nil
}

// Slots returns how many String[B] slots fit in region.
func Slots[B fixedstring.Buffer](region []byte) int {
	return len(region) / Stride[B]()
}

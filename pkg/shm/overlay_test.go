package shm

import (
	"testing"
	"unsafe"

	"github.com/rawbytedev/fixedstring"
	"github.com/stretchr/testify/require"
)

type cap8 = fixedstring.Cap8

// alignedRegion returns n bytes starting on an 8-byte boundary.
func alignedRegion(n int) []byte {
	words := make([]uint64, (n+7)/8)
	return unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), n)
}

func TestStride(t *testing.T) {
	require.Equal(t, 24, Stride[cap8]())
	require.Equal(t, 16, Stride[fixedstring.Cap4]())
	require.Equal(t, 3, Slots[cap8](alignedRegion(80)))
}

func TestOverlaySharesMemory(t *testing.T) {
	region := alignedRegion(Stride[cap8]())
	a, err := Overlay[cap8](region, DefaultOptions)
	require.NoError(t, err)
	require.True(t, a.Empty())

	require.True(t, a.UnsafeAssign("shared"))
	require.Equal(t, []byte("shared\x00"), region[:7])

	b, err := Overlay[cap8](region, DefaultOptions)
	require.NoError(t, err)
	require.Equal(t, "shared", b.String())

	b.Clear()
	require.True(t, a.Empty())
}

func TestOverlayRejects(t *testing.T) {
	region := alignedRegion(Stride[cap8]() + 1)

	_, err := Overlay[cap8](region[:Stride[cap8]()-1], DefaultOptions)
	require.ErrorIs(t, err, ErrRegionTooSmall)

	_, err = Overlay[cap8](region[1:], DefaultOptions)
	require.ErrorIs(t, err, ErrMisaligned)

	region[0] = 'x' // terminator of the empty string
	_, err = Overlay[cap8](region, DefaultOptions)
	require.ErrorIs(t, err, ErrCorrupt)
	require.ErrorIs(t, err, fixedstring.ErrMissingTerminator)

	s, err := Overlay[cap8](region, Options{Reset: true})
	require.NoError(t, err)
	require.NoError(t, s.Validate())
	require.Zero(t, region[0])
}

func TestAt(t *testing.T) {
	stride := Stride[cap8]()
	region := alignedRegion(3 * stride)
	for i, v := range []string{"zero", "one", "two"} {
		s, err := At[cap8](region, i, DefaultOptions)
		require.NoError(t, err)
		require.True(t, s.UnsafeAssign(v))
	}
	require.Equal(t, byte('o'), region[stride])

	s, err := At[cap8](region, 2, DefaultOptions)
	require.NoError(t, err)
	require.Equal(t, "two", s.String())

	_, err = At[cap8](region, 3, DefaultOptions)
	require.ErrorIs(t, err, ErrRegionTooSmall)
	var slotErr *SlotError
	require.ErrorAs(t, err, &slotErr)
	require.Equal(t, 3, slotErr.Index)

	_, err = At[cap8](region, -1, DefaultOptions)
	require.ErrorIs(t, err, ErrRegionTooSmall)
}

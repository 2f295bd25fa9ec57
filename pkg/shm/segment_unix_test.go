//go:build unix

package shm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rawbytedev/fixedstring"
	"github.com/stretchr/testify/require"
)

func TestSegmentSharedVisibility(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.shm")
	size := 4 * Stride[fixedstring.Cap32]()

	w, err := Open(path, size)
	require.NoError(t, err)
	defer w.Close()
	r, err := Open(path, size)
	require.NoError(t, err)
	defer r.Close()

	ws, err := At[fixedstring.Cap32](w.Bytes(), 2, DefaultOptions)
	require.NoError(t, err)
	rs, err := At[fixedstring.Cap32](r.Bytes(), 2, DefaultOptions)
	require.NoError(t, err)

	require.True(t, ws.UnsafeAssign("written through one mapping"))
	require.Equal(t, "written through one mapping", rs.String())
	require.False(t, ws.UnsafeAssign("this value is longer than thirty-two bytes"))
	require.Equal(t, "written through one mapping", rs.String())
	require.NoError(t, w.Sync())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, raw, size)
	off := 2 * Stride[fixedstring.Cap32]()
	require.Equal(t, "written", string(raw[off:off+7]))
}

func TestSegmentClose(t *testing.T) {
	seg, err := Open(filepath.Join(t.TempDir(), "s"), 64)
	require.NoError(t, err)
	require.NoError(t, seg.Close())
	require.ErrorIs(t, seg.Close(), ErrClosed)
	require.ErrorIs(t, seg.Sync(), ErrClosed)

	_, err = Open(filepath.Join(t.TempDir(), "bad"), 0)
	require.Error(t, err)
}

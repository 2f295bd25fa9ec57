package fixedstring

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func FuzzFromN(f *testing.F) {
	f.Add([]byte("abcdef"), 4)
	f.Add([]byte("a\x00b"), 3)
	f.Add([]byte{}, -1)
	f.Fuzz(func(t *testing.T, p []byte, count int) {
		s := FromN[Cap8](Truncate, p, count)
		requireValid(t, &s)
		want := max(0, min(count, len(p), 8))
		require.Equal(t, p[:want], s.Bytes())
	})
}

func FuzzUnsafeAssign(f *testing.F) {
	f.Add("keep", "toolong!")
	f.Add("", "ok")
	f.Fuzz(func(t *testing.T, prior, str string) {
		s := FromString[Cap6](Truncate, prior)
		before := s
		ok := s.UnsafeAssign(str)
		requireValid(t, &s)
		if len(str) > 6 {
			require.False(t, ok)
			require.Equal(t, before, s)
			return
		}
		require.True(t, ok)
		require.Equal(t, str, s.String())
	})
}

func FuzzUnmarshalBinary(f *testing.F) {
	s := FromString[Cap4](Truncate, "ab")
	seed, _ := s.MarshalBinary()
	f.Add(seed)
	f.Add([]byte{})
	f.Fuzz(func(t *testing.T, data []byte) {
		var out String[Cap4]
		if err := out.UnmarshalBinary(data); err != nil {
			require.Equal(t, String[Cap4]{}, out)
			return
		}
		requireValid(t, &out)
		again, err := out.MarshalBinary()
		require.NoError(t, err)
		require.True(t, bytes.Equal(data, again))
	})
}

package fixedstring

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestZeroAllocs(t *testing.T) {
	src := []byte("payload with\x00zero and more bytes than fit")
	str := "service/instance/event"
	var s, other String[Cap32]
	out := make([]byte, 0, 128)

	ops := map[string]func(){
		"From":           func() { s = From(Cap32{'a', 'b', 'c'}) },
		"FromString":     func() { s = FromString[Cap32](Truncate, str) },
		"FromCString":    func() { s = FromCString[Cap32](Truncate, src) },
		"FromN":          func() { s = FromN[Cap32](Truncate, src, len(src)) },
		"Set":            func() { s.Set(Cap32{'x'}) },
		"Assign":         func() { s.Assign(&other) },
		"UnsafeAssign":   func() { s.UnsafeAssign(str) },
		"UnsafeReject":   func() { s.UnsafeAssignBytes(src) },
		"Compare":        func() { _ = s.Compare(&other) },
		"Bytes":          func() { _ = s.Bytes() },
		"CString":        func() { _ = s.CString() },
		"MoveFrom":       func() { s.MoveFrom(&other) },
		"AppendBinary":   func() { out, _ = s.AppendBinary(out[:0]) },
		"AppendCompact":  func() { out = s.AppendCompact(out[:0]) },
		"DecodeCompact":  func() { _, _ = s.DecodeCompact(out) },
		"Validate":       func() { _ = s.Validate() },
		"UnmarshalValid": func() { _ = other.UnmarshalBinary(out[:s.BinarySize()]) },
	}
	out, _ = s.AppendBinary(out[:0])
	for name, op := range ops {
		if name == "UnmarshalValid" {
			continue
		}
		require.Zero(t, testing.AllocsPerRun(100, op), name)
	}
	out, _ = s.AppendBinary(out[:0])
	require.Zero(t, testing.AllocsPerRun(100, ops["UnmarshalValid"]), "UnmarshalValid")
}

func BenchmarkFromString(b *testing.B) {
	b.ReportAllocs()
	var s String[Cap100]
	for b.Loop() {
		s = FromString[Cap100](Truncate, "radar/front/left/objects")
	}
	_ = s
}

func BenchmarkUnsafeAssign(b *testing.B) {
	b.ReportAllocs()
	var s String[Cap100]
	for b.Loop() {
		s.UnsafeAssign("radar/front/left/objects")
	}
}

func BenchmarkCompare(b *testing.B) {
	x := FromString[Cap100](Truncate, "radar/front/left/objects")
	y := FromString[Cap100](Truncate, "radar/front/left/objectz")
	b.ReportAllocs()
	for b.Loop() {
		_ = x.Compare(&y)
	}
}

func BenchmarkAppendBinary(b *testing.B) {
	s := FromString[Cap100](Truncate, "radar/front/left/objects")
	buf := make([]byte, 0, s.BinarySize())
	b.ReportAllocs()
	for b.Loop() {
		buf, _ = s.AppendBinary(buf[:0])
	}
	b.SetBytes(int64(len(buf)))
}

// Baseline: a general purpose text codec on the same content.
func BenchmarkYaml(b *testing.B) {
	type record struct {
		Name string
	}
	r := record{Name: "radar/front/left/objects"}
	b.ReportAllocs()
	for b.Loop() {
		_, _ = yaml.Marshal(r)
	}
}

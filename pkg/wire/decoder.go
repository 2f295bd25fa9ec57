package wire

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/klauspost/compress/zstd"
	"github.com/rawbytedev/fixedstring/pkg/record"
)

// DefaultMaxPayload bounds the decompressed payload of one frame.
const DefaultMaxPayload = 64 << 20

type Decoder struct {
	codec      *record.Codec
	zdec       *zstd.Decoder
	maxPayload uint64
}

func NewDecoder(codec *record.Codec, maxPayload uint64) (*Decoder, error) {
	if maxPayload == 0 {
		maxPayload = DefaultMaxPayload
	}
	zdec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxPayload), zstd.WithDecoderConcurrency(0))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompression, err)
	}
	return &Decoder{codec: codec, zdec: zdec, maxPayload: maxPayload}, nil
}

func (d *Decoder) Close() {
	d.zdec.Close()
}

// DecodeFrame parses and verifies a data frame. An uncompressed payload
// aliases data.
func (d *Decoder) DecodeFrame(data []byte) (Frame, error) {
	var f Frame
	t, ok := readPreamble(data)
	if !ok || t != TypeData {
		return f, ErrNotDataFrame
	}
	if len(data) < HeaderSize+TrailerSize {
		return f, ErrShortFrame
	}
	if length := binary.LittleEndian.Uint32(data[3:]); int(length) != len(data) {
		return f, fmt.Errorf("%w: header says %d, got %d", ErrLengthMismatch, length, len(data))
	}
	payloadEnd := len(data) - TrailerSize
	want := binary.LittleEndian.Uint32(data[payloadEnd:])
	if crc32.ChecksumIEEE(data[2:payloadEnd]) != want {
		return f, ErrCRCMismatch
	}

	f.Flags = data[7]
	f.RecordSize = binary.LittleEndian.Uint32(data[8:])
	f.Count = binary.LittleEndian.Uint32(data[12:])
	expected := uint64(f.RecordSize) * uint64(f.Count)
	if f.RecordSize == 0 && f.Count != 0 {
		return Frame{}, ErrRecordCount
	}
	if expected > d.maxPayload {
		return Frame{}, fmt.Errorf("%w: %d bytes exceeds limit %d", ErrRecordCount, expected, d.maxPayload)
	}

	f.Payload = data[HeaderSize:payloadEnd]
	if f.Flags&FlagZstd != 0 {
		raw, err := d.zdec.DecodeAll(f.Payload, make([]byte, 0, expected))
		if err != nil {
			return Frame{}, fmt.Errorf("%w: %w", ErrCompression, err)
		}
		f.Payload = raw
	}
	if uint64(len(f.Payload)) != expected {
		return Frame{}, ErrRecordCount
	}
	return f, nil
}

// Unpack decodes a frame produced by Pack into records of type T.
func Unpack[T any](d *Decoder, data []byte) ([]T, error) {
	f, err := d.DecodeFrame(data)
	if err != nil {
		return nil, err
	}
	var zero T
	size, err := d.codec.Size(&zero)
	if err != nil {
		return nil, err
	}
	if uint32(size) != f.RecordSize {
		return nil, fmt.Errorf("%w: record size %d, want %d", ErrRecordCount, f.RecordSize, size)
	}
	out := make([]T, f.Count)
	for i := range out {
		off := i * size
		if err := d.codec.Decode(f.Payload[off:off+size], &out[i]); err != nil {
			return nil, fmt.Errorf("wire: record %d: %w", i, err)
		}
	}
	return out, nil
}

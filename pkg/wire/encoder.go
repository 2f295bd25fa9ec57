package wire

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/klauspost/compress/zstd"
	"github.com/rawbytedev/fixedstring/pkg/record"
)

type Encoder struct {
	codec *record.Codec
	zenc  *zstd.Encoder
}

type EncoderOption func(*encoderConfig)

type encoderConfig struct {
	zstd  bool
	level zstd.EncoderLevel
}

// WithZstd compresses frame payloads at the given level.
func WithZstd(level zstd.EncoderLevel) EncoderOption {
	return func(c *encoderConfig) {
		c.zstd = true
		c.level = level
	}
}

func NewEncoder(codec *record.Codec, opts ...EncoderOption) (*Encoder, error) {
	var cfg encoderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	e := &Encoder{codec: codec}
	if cfg.zstd {
		zenc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(cfg.level))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCompression, err)
		}
		e.zenc = zenc
	}
	return e, nil
}

// Close releases the compressor.
func (e *Encoder) Close() error {
	if e.zenc == nil {
		return nil
	}
	return e.zenc.Close()
}

// EncodeFrame serializes a frame. Flags on f are ignored; FlagZstd is set
// when the encoder compresses.
func (e *Encoder) EncodeFrame(f Frame) ([]byte, error) {
	if uint64(len(f.Payload)) != uint64(f.RecordSize)*uint64(f.Count) {
		return nil, ErrRecordCount
	}
	payload, flags := f.Payload, byte(0)
	if e.zenc != nil {
		payload = e.zenc.EncodeAll(f.Payload, nil)
		flags |= FlagZstd
	}

	out := make([]byte, 0, HeaderSize+len(payload)+TrailerSize)
	out = writePreamble(out, TypeData)
	out = binary.LittleEndian.AppendUint32(out, 0) // length placeholder
	out = append(out, flags)
	out = binary.LittleEndian.AppendUint32(out, f.RecordSize)
	out = binary.LittleEndian.AppendUint32(out, f.Count)
	out = append(out, payload...)

	total := uint32(len(out) + TrailerSize)
	binary.LittleEndian.PutUint32(out[3:], total)

	// exclude magic
	return binary.LittleEndian.AppendUint32(out, crc32.ChecksumIEEE(out[2:])), nil
}

// Pack encodes records with the encoder's codec and frames them.
func Pack[T any](e *Encoder, records []T) ([]byte, error) {
	var zero T
	size, err := e.codec.Size(&zero)
	if err != nil {
		return nil, err
	}
	payload := make([]byte, 0, size*len(records))
	for i := range records {
		payload, err = e.codec.AppendEncode(payload, &records[i])
		if err != nil {
			return nil, fmt.Errorf("wire: record %d: %w", i, err)
		}
	}
	return e.EncodeFrame(Frame{RecordSize: uint32(size), Count: uint32(len(records)), Payload: payload})
}

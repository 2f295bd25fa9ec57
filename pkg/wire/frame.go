// Package wire frames batches of fixed-size records for transport.
//
// Frame layout (little-endian):
//
//	[0:2]   magic "FS"
//	[2]     frame type
//	[3:7]   total frame length, CRC included
//	[7]     flags
//	[8:12]  record size
//	[12:16] record count
//	[16:n]  payload, zstd compressed when FlagZstd is set
//	[n:n+4] CRC32 (IEEE) over bytes [2:n]
package wire

import "errors"

const (
	Magic0 = 'F'
	Magic1 = 'S'

	TypeData byte = 0x01

	FlagZstd byte = 0x01

	HeaderSize  = 16
	TrailerSize = 4
)

var (
	ErrNotDataFrame   = errors.New("wire: not a data frame")
	ErrShortFrame     = errors.New("wire: short frame")
	ErrLengthMismatch = errors.New("wire: length mismatch")
	ErrCRCMismatch    = errors.New("wire: crc mismatch")
	ErrCompression    = errors.New("wire: compression")
	ErrRecordCount    = errors.New("wire: payload does not match record size and count")
)

// Frame is a decoded data frame. Payload holds Count records of
// RecordSize bytes each, uncompressed.
type Frame struct {
	Flags      byte
	RecordSize uint32
	Count      uint32
	Payload    []byte
}

func writePreamble(dst []byte, t byte) []byte {
	return append(dst, Magic0, Magic1, t)
}

func readPreamble(data []byte) (byte, bool) {
	if len(data) < 3 || data[0] != Magic0 || data[1] != Magic1 {
		return 0, false
	}
	return data[2], true
}

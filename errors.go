package fixedstring

import "errors"

var (
	ErrCorruptLength     = errors.New("fixedstring: length exceeds capacity")
	ErrMissingTerminator = errors.New("fixedstring: missing terminator")
	ErrDirtyTail         = errors.New("fixedstring: non-zero bytes after terminator")
	ErrBinarySize        = errors.New("fixedstring: wrong binary size")
	ErrCompactLength     = errors.New("fixedstring: compact length exceeds capacity")
	ErrShortBuffer       = errors.New("fixedstring: short buffer")
)

package common

import "bytes"

// Strnlen returns the index of the first zero byte in b[:limit], or limit
// when there is none. limit is clamped to len(b).
func Strnlen(b []byte, limit int) int {
	if limit > len(b) {
		limit = len(b)
	}
	if limit <= 0 {
		return 0
	}
	if i := bytes.IndexByte(b[:limit], 0); i >= 0 {
		return i
	}
	return limit
}

// CopyClear copies src into the front of dst and zeroes the rest of dst.
// The caller guarantees len(src) < len(dst), so the byte at len(src) is
// always cleared.
func CopyClear(dst, src []byte) int {
	n := copy(dst, src)
	clear(dst[n:])
	return n
}

// CopyClearString is CopyClear for a string source.
func CopyClearString(dst []byte, src string) int {
	n := copy(dst, src)
	clear(dst[n:])
	return n
}

// IsZero reports whether every byte of b is zero.
func IsZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

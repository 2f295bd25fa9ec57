//go:build unix

package shm

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

var ErrClosed = errors.New("shm: segment closed")

// Segment is a shared, writable mapping of a file.
type Segment struct {
	path string
	data []byte
}

// Open maps size bytes of the file at path, creating or growing the file
// as needed. New bytes read as zero, which is the empty string in every
// slot.
func Open(path string, size int) (*Segment, error) {
	if size <= 0 {
		return nil, fmt.Errorf("shm: open %s: invalid size %d", path, size)
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return nil, fmt.Errorf("shm: open %s: %w", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("shm: stat %s: %w", path, err)
	}
	if fi.Size() < int64(size) {
		if err := unix.Ftruncate(int(f.Fd()), int64(size)); err != nil {
			return nil, fmt.Errorf("shm: truncate %s: %w", path, err)
		}
	}
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("shm: mmap %s: %w", path, err)
	}
	return &Segment{path: path, data: data}, nil
}

// Bytes returns the mapped memory. It is invalid after Close.
func (s *Segment) Bytes() []byte {
	return s.data
}

func (s *Segment) Path() string {
	return s.path
}

// Sync flushes the mapping to the backing file.
func (s *Segment) Sync() error {
	if s.data == nil {
		return ErrClosed
	}
	if err := unix.Msync(s.data, unix.MS_SYNC); err != nil {
		return fmt.Errorf("shm: msync %s: %w", s.path, err)
	}
	return nil
}

// Close unmaps the segment. Strings overlaid on it must not be used
// afterwards.
func (s *Segment) Close() error {
	if s.data == nil {
		return ErrClosed
	}
	err := unix.Munmap(s.data)
	s.data = nil
	if err != nil {
		return fmt.Errorf("shm: munmap %s: %w", s.path, err)
	}
	return nil
}

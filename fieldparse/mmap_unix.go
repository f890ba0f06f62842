//go:build unix

package fieldparse

import (
	"fmt"
	"os"
	"syscall"
)

// MapFile memory-maps a file and returns a Buf source over it, plus a
// cleanup function that must be called to unmap the file.
//
// Combined with PosLen results this parses large inputs without loading
// them: the OS pages data in as the scanners touch it.
//
// IMPORTANT: Do not use the source, or any PosLen resolved against it,
// after calling cleanup().
func MapFile(filename string) (*Buf, func(), error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("failed to stat file: %w", err)
	}

	size := stat.Size()
	if size == 0 {
		// Empty file - nothing to map.
		return NewBuf(nil), func() { f.Close() }, nil
	}

	data, err := syscall.Mmap(
		int(f.Fd()),
		0,
		int(size),
		syscall.PROT_READ,
		syscall.MAP_SHARED,
	)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("failed to mmap file: %w", err)
	}

	cleanup := func() {
		_ = syscall.Munmap(data)
		f.Close()
	}

	return NewBuf(data), cleanup, nil
}

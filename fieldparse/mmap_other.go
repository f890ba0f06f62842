//go:build !unix

package fieldparse

import (
	"fmt"
	"os"
)

// MapFile reads a file into memory on platforms without mmap support and
// returns a Buf source over it. The cleanup function is a no-op, provided
// for API compatibility with the Unix version.
func MapFile(filename string) (*Buf, func(), error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read file: %w", err)
	}
	return NewBuf(data), func() {}, nil
}

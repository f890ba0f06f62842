package fieldparse

import (
	"sync"
	"unsafe"
)

// bufferPool holds []byte scratch buffers used by GetString when decoding
// escaped fields.
var bufferPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 64)
		return &b
	},
}

// getBuffer gets a scratch buffer from the pool, length 0.
func getBuffer() []byte {
	p := bufferPool.Get().(*[]byte)
	return (*p)[:0]
}

// putBuffer returns a scratch buffer to the pool. Oversized buffers are
// dropped so the pool does not pin large allocations.
func putBuffer(buf []byte) {
	const maxCapacity = 4096
	if cap(buf) > maxCapacity {
		return
	}
	buf = buf[:0]
	bufferPool.Put(&buf)
}

// unsafeString converts a []byte to a string without allocation.
//
// The conversion shares the underlying array, so the byte slice must not be
// modified afterwards. It is only applied to subslices of the immutable
// source input.
func unsafeString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

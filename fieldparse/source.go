package fieldparse

import (
	"bytes"
	"io"
)

// Source is the byte input driven by the parsing layers. Positions are
// 0-based byte offsets; the layers thread the current position explicitly
// and pass the parse bound n (exclusive; negative means "to the end of the
// source") into every call.
//
// Callers must not call Peek or Bytes at or past a position where EOF
// reports true. Re-reading an already-observed position (a sentinel probe
// that failed, a multi-byte delimiter probe, the close-quote scanner) is
// simply a Peek at a smaller offset and is O(1) for both implementations.
type Source interface {
	// EOF reports whether pos is at or past the end of the readable input,
	// bounded by n when n >= 0.
	EOF(pos, n int) bool
	// Peek returns the byte at pos without consuming it.
	Peek(pos int) byte
	// MatchAt reports whether the bytes at pos equal pat, within the bound n.
	MatchAt(pos, n int, pat []byte) bool
	// Bytes returns the length bytes starting at pos. The returned slice
	// shares memory with the source and must not be modified.
	Bytes(pos, length int) []byte
}

// Buf is a Source over a contiguous byte slice.
type Buf struct {
	data []byte
}

// NewBuf returns a Source reading from data. The slice is not copied; it
// must not be modified while results that reference it are in use.
func NewBuf(data []byte) *Buf {
	return &Buf{data: data}
}

// Len returns the total input length.
func (b *Buf) Len() int { return len(b.data) }

func (b *Buf) bound(n int) int {
	if n < 0 || n > len(b.data) {
		return len(b.data)
	}
	return n
}

// EOF implements Source.
func (b *Buf) EOF(pos, n int) bool { return pos >= b.bound(n) }

// Peek implements Source.
func (b *Buf) Peek(pos int) byte { return b.data[pos] }

// MatchAt implements Source.
func (b *Buf) MatchAt(pos, n int, pat []byte) bool {
	if pos+len(pat) > b.bound(n) {
		return false
	}
	return bytes.Equal(b.data[pos:pos+len(pat)], pat)
}

// Bytes implements Source.
func (b *Buf) Bytes(pos, length int) []byte { return b.data[pos : pos+length] }

// Stream is a Source over a forward-only io.Reader. Bytes are read on
// demand and retained, so any previously observed position can be re-read
// in O(1); PosLen descriptors produced from a Stream stay valid for the
// lifetime of the Stream.
type Stream struct {
	r   io.Reader
	buf []byte
	err error // sticky; any read error terminates the input
}

// NewStream returns a Source reading from r.
func NewStream(r io.Reader) *Stream {
	return &Stream{r: r}
}

// fill reads until at least upto bytes are buffered or the input ends.
// It reports whether upto bytes are available.
func (s *Stream) fill(upto int) bool {
	for len(s.buf) < upto && s.err == nil {
		var chunk [512]byte
		n, err := s.r.Read(chunk[:])
		s.buf = append(s.buf, chunk[:n]...)
		if err != nil {
			s.err = err
		}
	}
	return len(s.buf) >= upto
}

// EOF implements Source.
func (s *Stream) EOF(pos, n int) bool {
	if n >= 0 && pos >= n {
		return true
	}
	return !s.fill(pos + 1)
}

// Peek implements Source.
func (s *Stream) Peek(pos int) byte {
	s.fill(pos + 1)
	return s.buf[pos]
}

// MatchAt implements Source.
func (s *Stream) MatchAt(pos, n int, pat []byte) bool {
	end := pos + len(pat)
	if n >= 0 && end > n {
		return false
	}
	if !s.fill(end) {
		return false
	}
	return bytes.Equal(s.buf[pos:end], pat)
}

// Bytes implements Source.
func (s *Stream) Bytes(pos, length int) []byte {
	s.fill(pos + length)
	return s.buf[pos : pos+length]
}

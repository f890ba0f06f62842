package fieldparse

import (
	"bytes"
	"testing"
	"testing/iotest"
)

func TestBuf_Basics(t *testing.T) {
	b := NewBuf([]byte("hello"))

	if b.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", b.Len())
	}
	if b.EOF(0, -1) {
		t.Error("EOF(0, -1) = true")
	}
	if !b.EOF(5, -1) {
		t.Error("EOF(5, -1) = false")
	}
	if !b.EOF(3, 3) {
		t.Error("EOF(3, 3) = false, bound not honored")
	}
	if b.Peek(1) != 'e' {
		t.Errorf("Peek(1) = %c", b.Peek(1))
	}
	if !b.MatchAt(1, -1, []byte("ell")) {
		t.Error("MatchAt(1, ell) = false")
	}
	if b.MatchAt(3, -1, []byte("low")) {
		t.Error("MatchAt past end = true")
	}
	if b.MatchAt(1, 3, []byte("ell")) {
		t.Error("MatchAt ignored bound n")
	}
	if got := string(b.Bytes(1, 3)); got != "ell" {
		t.Errorf("Bytes(1,3) = %q", got)
	}
}

func TestStream_Basics(t *testing.T) {
	// One byte per Read forces incremental filling.
	s := NewStream(iotest.OneByteReader(bytes.NewReader([]byte("hello"))))

	if s.EOF(0, -1) {
		t.Error("EOF(0, -1) = true")
	}
	if s.Peek(4) != 'o' {
		t.Errorf("Peek(4) = %c", s.Peek(4))
	}
	// Re-reading an earlier position after filling ahead.
	if s.Peek(0) != 'h' {
		t.Errorf("Peek(0) = %c", s.Peek(0))
	}
	if !s.EOF(5, -1) {
		t.Error("EOF(5, -1) = false")
	}
	if !s.MatchAt(1, -1, []byte("ell")) {
		t.Error("MatchAt(1, ell) = false")
	}
	if s.MatchAt(3, -1, []byte("low")) {
		t.Error("MatchAt past end = true")
	}
	if got := string(s.Bytes(1, 3)); got != "ell" {
		t.Errorf("Bytes(1,3) = %q", got)
	}
}

// TestStream_MatchesBuf parses the same record through both source kinds and
// requires identical outcomes field by field.
func TestStream_MatchesBuf(t *testing.T) {
	data := []byte("1,\"two\",3.5,NA,\"esc\"\"aped\"\nlast")
	opts := mustOptions(t, Options{
		Quoted:     true,
		OpenQuote:  '"',
		CloseQuote: '"',
		Escape:     '"',
		Delim:      []byte{','},
		Sentinel:   [][]byte{[]byte("NA")},
	})

	buf := NewBuf(data)
	stream := NewStream(iotest.OneByteReader(bytes.NewReader(data)))

	bpos, spos := 0, 0
	for i := 0; i < 6; i++ {
		br := Xparse[PosLen](buf, bpos, len(data), opts)
		sr := Xparse[PosLen](stream, spos, -1, opts)

		if br.Code != sr.Code {
			t.Fatalf("field %d: code mismatch buf=%v stream=%v", i, br.Code, sr.Code)
		}
		if br.Tlen != sr.Tlen {
			t.Fatalf("field %d: tlen mismatch buf=%d stream=%d", i, br.Tlen, sr.Tlen)
		}
		bs := GetString(buf, br.Val, '"')
		ss := GetString(stream, sr.Val, '"')
		if bs != ss {
			t.Fatalf("field %d: value mismatch buf=%q stream=%q", i, bs, ss)
		}

		bpos += br.Tlen
		spos += sr.Tlen
		if br.Code.IsEOF() {
			break
		}
	}
	if bpos != len(data) {
		t.Errorf("walk consumed %d of %d bytes", bpos, len(data))
	}
}

package fieldparse

import (
	"bytes"
	"testing"
	"testing/iotest"
)

// FuzzXparse drives the full pipeline with arbitrary bytes and checks the
// properties every outcome must satisfy. Run with:
// go test -fuzz=FuzzXparse -fuzztime=30s ./fieldparse
func FuzzXparse(f *testing.F) {
	seeds := []string{
		"",
		"a",
		"1,2,3",
		"a,b\nc,d",
		`"quoted"`,
		`"with,comma"`,
		`"with""quote"`,
		"\"multi\nline\"",
		`"unterminated`,
		`""`,
		`""""`,
		"NA,1",
		"  42  ,x",
		",,",
		"\r\n",
		"12x,",
		"1e400,",
		"#comment\n5",
		"\xff\xfe,\x80",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		if len(input) > 1<<16 {
			t.Skip("input longer than the fuzz size limit")
		}
		opts, err := NewOptions(Options{
			Quoted: true, OpenQuote: '"', CloseQuote: '"', Escape: '"',
			Delim:            []byte{','},
			Sentinel:         [][]byte{[]byte("NA")},
			Comment:          []byte("#"),
			IgnoreEmptyLines: true,
		})
		if err != nil {
			t.Fatal(err)
		}

		data := []byte(input)
		buf := NewBuf(data)
		stream := NewStream(iotest.OneByteReader(bytes.NewReader(data)))

		pos, spos := 0, 0
		for pos < len(data) {
			r := Xparse[PosLen](buf, pos, len(data), opts)
			sr := Xparse[PosLen](stream, spos, len(data), opts)

			// Buffer and stream sources must agree byte for byte.
			if r.Code != sr.Code || r.Tlen != sr.Tlen {
				t.Fatalf("pos %d: buf {%v,%d} != stream {%v,%d}",
					pos, r.Code, r.Tlen, sr.Code, sr.Tlen)
			}

			// Progress and bounds: the caller must always be able to
			// resynchronize at startpos+Tlen.
			if r.Tlen < 0 || pos+r.Tlen > len(data) {
				t.Fatalf("pos %d: tlen %d out of bounds", pos, r.Tlen)
			}
			if r.Tlen == 0 && !r.Code.IsEOF() {
				t.Fatalf("pos %d: zero-length field without EOF (code %v)", pos, r.Code)
			}

			// Sentinel implies missing and not-OK.
			if r.Code.IsSentinel() {
				if r.Code.IsOK() {
					t.Fatalf("pos %d: SENTINEL with OK (code %v)", pos, r.Code)
				}
				if !r.Val.Missing() {
					t.Fatalf("pos %d: SENTINEL without missing bit", pos)
				}
			}

			// Invalid implies a negative code word.
			if r.Code.IsInvalid() && r.Code >= 0 {
				t.Fatalf("pos %d: invalid but non-negative code %v", pos, r.Code)
			}

			// A quoted, unescaped capture contains no quote byte.
			if r.Code.IsOK() && r.Code.IsQuoted() && !r.Code.IsEscapedString() {
				field := buf.Bytes(r.Val.Pos(), r.Val.Len())
				if bytes.IndexByte(field, '"') >= 0 {
					t.Fatalf("pos %d: unescaped capture %q contains a quote", pos, field)
				}
			}

			// GetString must agree between the two sources.
			if GetString(buf, r.Val, '"') != GetString(stream, sr.Val, '"') {
				t.Fatalf("pos %d: GetString mismatch", pos)
			}

			if r.Tlen == 0 {
				break
			}
			pos += r.Tlen
			spos += sr.Tlen
		}
	})
}

package fieldparse

// GetString reifies a PosLen into a string. Missing fields yield "".
// Unescaped fields share memory with the source; escaped fields are decoded
// into fresh memory, collapsing each escape pair (the escape byte plus the
// byte it protects) into the protected byte.
//
// e must be the escape byte the field was parsed with.
func GetString(src Source, pl PosLen, e byte) string {
	if pl.Missing() {
		return ""
	}
	if !pl.Escaped() {
		return unsafeString(src.Bytes(pl.Pos(), pl.Len()))
	}
	buf := getBuffer()
	buf = appendDecoded(buf, src, pl, e)
	s := string(buf)
	putBuffer(buf)
	return s
}

// getBytes is GetString for consumers that want bytes. The unescaped fast
// path shares memory with the source; the decoded path allocates, since the
// caller (UnmarshalText, a converter) may retain the slice.
func getBytes(src Source, pl PosLen, e byte) []byte {
	if pl.Missing() {
		return nil
	}
	if !pl.Escaped() {
		return src.Bytes(pl.Pos(), pl.Len())
	}
	return appendDecoded(make([]byte, 0, pl.Len()), src, pl, e)
}

// appendDecoded appends the decoded field bytes to buf. pl.Len() counts
// decoded bytes, so the loop produces exactly that many, skipping the
// escape byte of each pair.
func appendDecoded(buf []byte, src Source, pl PosLen, e byte) []byte {
	i := pl.Pos()
	for produced := 0; produced < pl.Len(); produced++ {
		b := src.Peek(i)
		i++
		if b == e {
			b = src.Peek(i)
			i++
		}
		buf = append(buf, b)
	}
	return buf
}

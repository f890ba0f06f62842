package fieldparse

// parsePosLen is the string-like type parser: it never materializes the
// field, returning the grown PosLen itself as the value. The field boundary
// is decided by the framing scanners: the close-quote scanner when the field
// is quoted, the delimiter scanner otherwise.
func parsePosLen(src Source, pos, n int, b byte, code ReturnCode, pl PosLen, opts *Options) (int, ReturnCode, PosLen, PosLen) {
	if code.IsQuoted() {
		pos, code, pl = findEndQuoted(src, pos, n, code, pl, opts, true)
	} else {
		pos, code, pl = findDelimiter(src, pos, n, code, pl, opts, true)
	}
	code |= OK
	return pos, code, pl, pl
}

// parseStringValue materializes the captured field. Unescaped substrings
// are shared with the source; escaped ones are decoded into fresh memory.
func parseStringValue(src Source, pos, n int, b byte, code ReturnCode, pl PosLen, opts *Options) (int, ReturnCode, PosLen, string) {
	pos, code, pl, _ = parsePosLen(src, pos, n, b, code, pl, opts)
	if code.IsInvalid() {
		return pos, code, pl, ""
	}
	return pos, code, pl, GetString(src, pl, opts.Escape)
}

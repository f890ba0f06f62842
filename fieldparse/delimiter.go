package fieldparse

// findDelimiter scans the bytes following a value for the terminating
// delimiter or newline. LF, CR, and CRLF are all newlines. With
// IgnoreRepeated set, any mix of consecutive delimiters and newlines
// collapses into one separator. Bytes that match neither are extra: they
// invalidate non-string and quoted fields, and extend the captured
// substring for string fields, quoted or not.
func findDelimiter(src Source, pos, n int, code ReturnCode, pl PosLen, opts *Options, greedy bool) (int, ReturnCode, PosLen) {
	delim := opts.Delim
	strip := false
	if greedy {
		if code.IsQuoted() {
			strip = opts.StripQuoted
		} else {
			strip = opts.StripWhitespace
		}
	}
	pending := 0

	for !src.EOF(pos, n) {
		b := src.Peek(pos)

		if len(delim) > 0 {
			if !opts.IgnoreRepeated {
				if len(delim) == 1 {
					if b == delim[0] {
						pos++
						code |= Delimited
						return pos, code, pl
					}
				} else if src.MatchAt(pos, n, delim) {
					pos += len(delim)
					code |= Delimited
					return pos, code, pl
				}
			} else {
				matched := false
				sawNewline := false
				for !src.EOF(pos, n) {
					if len(delim) == 1 && src.Peek(pos) == delim[0] {
						pos++
						matched = true
						continue
					}
					if len(delim) > 1 && src.MatchAt(pos, n, delim) {
						pos += len(delim)
						matched = true
						continue
					}
					nb := src.Peek(pos)
					if nb == '\n' || nb == '\r' {
						pos = skipNewline(src, pos, n)
						if !sawNewline {
							pos = skipCommentAndEmptyLines(src, pos, n, opts)
							sawNewline = true
						}
						matched = true
						continue
					}
					break
				}
				if matched {
					code |= Delimited
					if sawNewline {
						code |= Newline
					}
					if src.EOF(pos, n) {
						code |= EOF
					}
					return pos, code, pl
				}
			}
		}

		if b == '\n' || b == '\r' {
			pos = skipNewline(src, pos, n)
			pos = skipCommentAndEmptyLines(src, pos, n, opts)
			code |= Newline
			if src.EOF(pos, n) {
				code |= EOF
			}
			return pos, code, pl
		}

		// Extra byte between value and separator.
		if !greedy || code.IsQuoted() {
			code |= InvalidDelimiter
		}
		pos++
		if greedy {
			if strip && opts.isWhitespace(b) {
				pending++
			} else {
				pl = pl.addLen(pending + 1)
				pending = 0
			}
		}
	}
	code |= EOF
	return pos, code, pl
}

// skipNewline consumes one LF, CR, or CRLF at pos.
func skipNewline(src Source, pos, n int) int {
	if src.EOF(pos, n) {
		return pos
	}
	b := src.Peek(pos)
	if b == '\r' {
		pos++
		if !src.EOF(pos, n) && src.Peek(pos) == '\n' {
			pos++
		}
		return pos
	}
	if b == '\n' {
		pos++
	}
	return pos
}

// skipCommentAndEmptyLines consumes blank lines (when IgnoreEmptyLines is
// set) and comment lines (when Comment matches at the cursor) until neither
// applies.
func skipCommentAndEmptyLines(src Source, pos, n int, opts *Options) int {
	for !src.EOF(pos, n) {
		matched := false
		if opts.IgnoreEmptyLines {
			b := src.Peek(pos)
			if b == '\n' || b == '\r' {
				pos = skipNewline(src, pos, n)
				matched = true
			}
		}
		if len(opts.Comment) > 0 && src.MatchAt(pos, n, opts.Comment) {
			pos += len(opts.Comment)
			for !src.EOF(pos, n) {
				b := src.Peek(pos)
				if b == '\n' || b == '\r' {
					pos = skipNewline(src, pos, n)
					break
				}
				pos++
			}
			matched = true
		}
		if !matched {
			break
		}
	}
	return pos
}

// CheckDelim advances past a delimiter (or a run of delimiters and newlines
// when IgnoreRepeated is set) at pos without parsing a value, and returns
// the new position. It is the resynchronization helper for callers that
// skip fields.
func CheckDelim(src Source, pos, n int, opts *Options) int {
	if src.EOF(pos, n) {
		return pos
	}
	delim := opts.Delim
	if opts.IgnoreRepeated && len(delim) > 0 {
		sawNewline := false
		for !src.EOF(pos, n) {
			if len(delim) == 1 && src.Peek(pos) == delim[0] {
				pos++
				continue
			}
			if len(delim) > 1 && src.MatchAt(pos, n, delim) {
				pos += len(delim)
				continue
			}
			b := src.Peek(pos)
			if b == '\n' || b == '\r' {
				pos = skipNewline(src, pos, n)
				if !sawNewline {
					pos = skipCommentAndEmptyLines(src, pos, n, opts)
					sawNewline = true
				}
				continue
			}
			break
		}
		return pos
	}
	b := src.Peek(pos)
	switch {
	case len(delim) == 1 && b == delim[0]:
		pos++
	case len(delim) > 1 && src.MatchAt(pos, n, delim):
		pos += len(delim)
	case b == '\n' || b == '\r':
		pos = skipNewline(src, pos, n)
		pos = skipCommentAndEmptyLines(src, pos, n, opts)
	}
	return pos
}

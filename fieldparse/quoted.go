package fieldparse

// findEndQuoted scans a quoted field for its closing quote, handling escape
// sequences. The quote byte is ambiguous when Escape == CloseQuote: a lone
// close quote terminates the field while a doubled one is a single literal
// quote, so the scanner must look one byte ahead before deciding.
//
// For string-like fields (greedy) the scanner grows pl as it goes, counting
// one byte per escape pair so pl.Len() is the decoded length. For other
// types the value was already consumed; any bytes found between the value
// and the close quote make the field invalid unless a sentinel already
// claimed it.
func findEndQuoted(src Source, pos, n int, code ReturnCode, pl PosLen, opts *Options, greedy bool) (int, ReturnCode, PosLen) {
	cq, e := opts.CloseQuote, opts.Escape
	same := cq == e
	stripq := greedy && opts.StripQuoted
	first := true
	pending := 0

	for !src.EOF(pos, n) {
		b := src.Peek(pos)
		switch {
		case same && b == e:
			pos++
			if src.EOF(pos, n) {
				// Closing quote was the last byte of the input.
				code |= EOF
				if !first && !greedy && !code.IsSentinel() {
					code |= Invalid
				}
				return pos, code, pl
			}
			if src.Peek(pos) != cq {
				// Closing quote.
				if !first && !greedy && !code.IsSentinel() {
					code |= Invalid
				}
				return pos, code, pl
			}
			// Doubled close quote: one literal quote byte.
			code |= EscapedString
			pl = pl.AsEscaped()
			if greedy {
				pl = pl.addLen(pending + 1)
				pending = 0
			}
			pos++
		case b == e:
			code |= EscapedString
			pl = pl.AsEscaped()
			pos++
			if src.EOF(pos, n) {
				// Dangling escape.
				code |= InvalidQuotedField | EOF
				return pos, code, pl
			}
			if greedy {
				pl = pl.addLen(pending + 1)
				pending = 0
			}
			pos++
		case b == cq:
			pos++
			if !first && !greedy && !code.IsSentinel() {
				code |= Invalid
			}
			return pos, code, pl
		default:
			pos++
			if greedy {
				if stripq && opts.isWhitespace(b) {
					pending++
				} else {
					pl = pl.addLen(pending + 1)
					pending = 0
				}
			}
		}
		first = false
	}
	code |= InvalidQuotedField | EOF
	return pos, code, pl
}

package fieldparse

import "time"

// defaultLayouts are tried in order when Options.DateFormat is empty.
var defaultLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTime scans the date/time token up to the next framing byte (the
// delimiter, a newline, or the close quote or escape when inside quotes) and
// interprets it with Options.DateFormat, or the default layouts when none is
// configured. Interior whitespace stays part of the token so layouts like
// "2006-01-02 15:04:05" work unquoted; trailing whitespace is left for the
// whitespace layer.
func parseTime(src Source, pos, n int, b byte, code ReturnCode, pl PosLen, opts *Options) (int, ReturnCode, PosLen, time.Time) {
	start := pos
	for !src.EOF(pos, n) {
		b = src.Peek(pos)
		if b == '\n' || b == '\r' {
			break
		}
		if code.IsQuoted() && (b == opts.CloseQuote || b == opts.Escape) {
			break
		}
		if len(opts.Delim) == 1 && b == opts.Delim[0] {
			break
		}
		if len(opts.Delim) > 1 && src.MatchAt(pos, n, opts.Delim) {
			break
		}
		pos++
	}

	// Back up over trailing whitespace.
	for pos > start && opts.isWhitespace(src.Peek(pos-1)) {
		pos--
	}

	if pos == start {
		code |= Invalid
		if src.EOF(pos, n) {
			code |= EOF
		}
		return pos, code, pl, time.Time{}
	}

	tok := unsafeString(src.Bytes(start, pos-start))
	layouts := defaultLayouts
	if opts.DateFormat != "" {
		layouts = []string{opts.DateFormat}
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, tok, time.UTC); err == nil {
			code |= OK
			if src.EOF(pos, n) {
				code |= EOF
			}
			return pos, code, pl, t
		}
	}
	code |= Invalid
	if src.EOF(pos, n) {
		code |= EOF
	}
	return pos, code, pl, time.Time{}
}

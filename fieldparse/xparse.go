package fieldparse

// Result is the outcome of parsing one field.
//
// Tlen is the total number of bytes consumed from the entry position,
// including any open/close quotes, stripped whitespace, and the terminating
// delimiter; the caller's next field starts Tlen bytes past the entry
// position even when the parse failed. Val holds the parsed value and is
// meaningful only when Code.IsOK().
type Result[T any] struct {
	Code ReturnCode
	Tlen int
	Val  T
}

// Xparse parses one field of type T from src at pos, bounded by n
// (exclusive; negative means "to the end of the source"), running the full
// layer pipeline: delimiter handling, empty-field sentinel, whitespace
// stripping, quoting with escapes, sentinel matching, and the per-type value
// parser.
//
// T may be any integer type, float32/float64, bool, string, time.Time, or
// PosLen (string-like, returning the substring descriptor without
// materializing it). Any other T whose pointer implements
// encoding.TextUnmarshaler parses through the generic fallback: the field is
// captured with the string pipeline, decoded, and handed to UnmarshalText.
// Unsupported types yield an Invalid code.
//
// opts must be a snapshot produced by NewOptions (or DefaultOptions passed
// through NewOptions).
func Xparse[T any](src Source, pos, n int, opts *Options) Result[T] {
	tp, greedy, ok := typeParserFor[T]()
	if !ok {
		var zero T
		return Result[T]{Code: Invalid, Val: zero}
	}
	startpos := pos
	pos, code, _, val := delimited(src, pos, n, 0, NewPosLen(pos, 0), opts, tp, greedy)
	return Result[T]{Code: code, Tlen: pos - startpos, Val: val}
}

// XparseWithPosLen is Xparse returning the field's PosLen alongside the
// value, for callers that reify string-like fields later with GetString.
func XparseWithPosLen[T any](src Source, pos, n int, opts *Options) (Result[T], PosLen) {
	tp, greedy, ok := typeParserFor[T]()
	if !ok {
		var zero T
		return Result[T]{Code: Invalid, Val: zero}, NewPosLen(pos, 0)
	}
	startpos := pos
	pos, code, pl, val := delimited(src, pos, n, 0, NewPosLen(pos, 0), opts, tp, greedy)
	return Result[T]{Code: code, Tlen: pos - startpos, Val: val}, pl
}

// Xparse2 parses a single value with the condensed pipeline (sentinel
// matching and the type parser only). It is the entry point used by Parse
// and TryParse when the input is one value with no surrounding record
// structure: no quoting, no whitespace stripping, no delimiter scan.
func Xparse2[T any](src Source, pos, n int, opts *Options) Result[T] {
	tp, greedy, ok := typeParserFor[T]()
	if !ok {
		var zero T
		return Result[T]{Code: Invalid, Val: zero}
	}
	startpos := pos
	code := ReturnCode(0)
	pl := NewPosLen(pos, 0)
	var val T
	if src.EOF(pos, n) {
		code |= EOF
		if opts.emptySentinel() {
			code |= Sentinel
		} else {
			code |= Invalid
		}
		return Result[T]{Code: code, Tlen: 0, Val: val}
	}
	pos, code, _, val = sentinel(src, pos, n, code, pl, opts, tp, greedy)
	return Result[T]{Code: code, Tlen: pos - startpos, Val: val}
}

// delimited is the outermost layer: it skips leading comment and empty
// lines, runs the inner chain, and then finds the terminating delimiter or
// newline unless the inner chain already consumed one.
func delimited[T any](src Source, pos, n int, code ReturnCode, pl PosLen, opts *Options, tp TypeParser[T], greedy bool) (int, ReturnCode, PosLen, T) {
	if len(opts.Comment) > 0 || opts.IgnoreEmptyLines {
		pos = skipCommentAndEmptyLines(src, pos, n, opts)
	}
	pos, code, pl, val := emptySentinel(src, pos, n, code, pl, opts, tp, greedy)
	if code&(Delimited|Newline|EOF) == 0 {
		pos, code, pl = findDelimiter(src, pos, n, code, pl, opts, greedy)
	}
	return pos, code, pl, val
}

// emptySentinel recognizes a zero-byte field as missing when the options
// carry a present-but-empty sentinel set.
func emptySentinel[T any](src Source, pos, n int, code ReturnCode, pl PosLen, opts *Options, tp TypeParser[T], greedy bool) (int, ReturnCode, PosLen, T) {
	var zero T
	if src.EOF(pos, n) {
		code |= EOF
		if opts.emptySentinel() {
			code |= Sentinel
			pl = pl.AsMissing()
			zero = withPosLen(zero, pl)
		} else {
			code |= Invalid
		}
		return pos, code, pl, zero
	}
	pos, code, pl, val := outerWhitespace(src, pos, n, code, pl, opts, tp, greedy)
	if opts.emptySentinel() && pl.Len() == 0 && !code.IsSentinel() && !code.IsInvalidQuotedField() {
		code &^= OK | Invalid
		code |= Sentinel
		pl = pl.AsMissing()
		val = withPosLen(val, pl)
	}
	return pos, code, pl, val
}

// outerWhitespace strips whitespace around the (possibly quoted) field.
// Leading whitespace is consumed for every non-string type and, when
// StripWhitespace is set, for strings too; in the latter case the PosLen
// start moves past it so the captured substring excludes it.
func outerWhitespace[T any](src Source, pos, n int, code ReturnCode, pl PosLen, opts *Options, tp TypeParser[T], greedy bool) (int, ReturnCode, PosLen, T) {
	var zero T
	if !greedy || opts.StripWhitespace {
		prev := pos
		pos = stripWhitespace(src, pos, n, opts)
		if src.EOF(pos, n) {
			if pos > prev {
				pl = NewPosLen(pos, 0)
			}
			code |= Invalid | EOF
			return pos, code, pl, zero
		}
		if pos > prev {
			pl = NewPosLen(pos, 0)
		}
	}
	pos, code, pl, val := quoted(src, pos, n, code, pl, opts, tp, greedy)
	if code&(Delimited|Newline|EOF) == 0 {
		pos = stripWhitespace(src, pos, n, opts)
	}
	return pos, code, pl, val
}

// quoted detects an open quote, runs the inner chain on the quoted content,
// and walks to the matching close quote for non-string types (string-like
// parsers reach the close quote themselves).
func quoted[T any](src Source, pos, n int, code ReturnCode, pl PosLen, opts *Options, tp TypeParser[T], greedy bool) (int, ReturnCode, PosLen, T) {
	var zero T
	quotedField := false
	if opts.Quoted && !src.EOF(pos, n) && src.Peek(pos) == opts.OpenQuote {
		quotedField = true
		code |= Quoted
		pos++
		pl = NewPosLen(pos, 0)
		if src.EOF(pos, n) {
			code |= InvalidQuotedField | EOF
			return pos, code, pl, zero
		}
	}
	pos, code, pl, val := innerWhitespace(src, pos, n, code, pl, opts, tp, greedy)
	if quotedField && !greedy {
		if code.IsEOF() {
			code |= InvalidQuotedField
			return pos, code, pl, val
		}
		pos, code, pl = findEndQuoted(src, pos, n, code, pl, opts, false)
	}
	return pos, code, pl, val
}

// innerWhitespace strips whitespace just inside the quotes: always for
// non-string types, and for strings only when StripQuoted is set.
func innerWhitespace[T any](src Source, pos, n int, code ReturnCode, pl PosLen, opts *Options, tp TypeParser[T], greedy bool) (int, ReturnCode, PosLen, T) {
	var zero T
	strip := code.IsQuoted() && (!greedy || opts.StripQuoted)
	if strip {
		prev := pos
		pos = stripWhitespace(src, pos, n, opts)
		if src.EOF(pos, n) {
			if pos > prev {
				pl = NewPosLen(pos, 0)
			}
			code |= InvalidQuotedField | EOF
			return pos, code, pl, zero
		}
		if pos > prev {
			pl = NewPosLen(pos, 0)
		}
	}
	pos, code, pl, val := sentinel(src, pos, n, code, pl, opts, tp, greedy)
	if code.IsQuoted() && !greedy && !code.IsEOF() {
		pos = stripWhitespace(src, pos, n, opts)
	}
	return pos, code, pl, val
}

// sentinel probes the configured sentinels at the current position, runs the
// type parser, and promotes the field to missing when the sentinel covers at
// least the region the parser consumed. A sentinel can rescue bytes the
// parser rejected ("NA" as an int) while a longer valid value still wins
// ("NAN" as a float over an "NA" sentinel).
func sentinel[T any](src Source, pos, n int, code ReturnCode, pl PosLen, opts *Options, tp TypeParser[T], greedy bool) (int, ReturnCode, PosLen, T) {
	sentinelpos := -1
	for _, s := range opts.Sentinel {
		if src.MatchAt(pos, n, s) {
			sentinelpos = pos + len(s)
			break
		}
	}
	vstart := pos
	b := src.Peek(pos)
	pos, code, pl, val := tp(src, pos, n, b, code, pl, opts)
	if !greedy {
		pl = pl&(missingBit|escapedBit) | NewPosLen(pl.Pos(), pos-vstart)
	}
	if sentinelpos >= 0 {
		covered := sentinelpos >= pos
		if greedy {
			covered = sentinelpos == pl.Pos()+pl.Len()
		}
		if covered {
			code &^= OK | Invalid | Overflow
			code |= Sentinel
			pl = pl.AsMissing()
			val = withPosLen(val, pl)
			if !greedy && sentinelpos > pos {
				pos = sentinelpos
			}
			if src.EOF(pos, n) {
				code |= EOF
			}
		}
	}
	return pos, code, pl, val
}

// withPosLen returns pl as the value when T is PosLen, so a string-like
// result carries the same missing bit as the field's descriptor.
func withPosLen[T any](val T, pl PosLen) T {
	if p, ok := any(&val).(*PosLen); ok {
		*p = pl
	}
	return val
}

// stripWhitespace consumes a run of the two configured whitespace bytes.
func stripWhitespace(src Source, pos, n int, opts *Options) int {
	for !src.EOF(pos, n) {
		b := src.Peek(pos)
		if b != opts.Wh1 && b != opts.Wh2 {
			break
		}
		pos++
	}
	return pos
}

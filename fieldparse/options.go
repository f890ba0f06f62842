// Package fieldparse: configurable options for field parsing.
package fieldparse

import "sort"

// Options configures field parsing. Construct a snapshot with NewOptions;
// the returned value is immutable for the duration of every parse that uses
// it and is safe to share across goroutines.
type Options struct {
	// Sentinel is the set of byte strings meaning "missing value".
	// nil disables sentinel checking entirely. A non-nil empty set treats a
	// zero-byte field as missing. Entries are matched longest-first.
	Sentinel [][]byte

	// Wh1 and Wh2 are the two whitespace bytes recognized around values.
	// Default: space and tab.
	Wh1, Wh2 byte

	// Quoted controls whether OpenQuote, CloseQuote, and Escape are
	// consulted. When false the quote bytes are ordinary field content.
	Quoted bool

	// OpenQuote, CloseQuote, and Escape are the quoting bytes. They must be
	// ASCII (< 0x80). When Escape equals CloseQuote, a doubled CloseQuote
	// inside a quoted field means one literal CloseQuote.
	OpenQuote, CloseQuote, Escape byte

	// Delim is the field delimiter: nil for none, one byte, or a multi-byte
	// string. Newlines always terminate fields regardless of Delim.
	Delim []byte

	// Decimal is the decimal-point byte consumed by the float parser.
	// Default: '.'
	Decimal byte

	// Trues and Falses are the accepted boolean tokens. When nil the
	// defaults are "true" and "false".
	Trues, Falses [][]byte

	// DateFormat is the Go layout used by the time parser. When empty the
	// parser tries RFC 3339, then "2006-01-02 15:04:05", then "2006-01-02".
	DateFormat string

	// IgnoreRepeated collapses consecutive delimiters and newlines into one
	// separator.
	IgnoreRepeated bool

	// IgnoreEmptyLines consumes blank lines after a newline.
	IgnoreEmptyLines bool

	// Comment, if non-empty, marks comment lines: when it matches at the
	// cursor after a newline (or at the start of a parse), the rest of the
	// line is consumed.
	Comment []byte

	// StripWhitespace strips whitespace around string fields outside quotes.
	// Non-string values always tolerate surrounding whitespace.
	StripWhitespace bool

	// StripQuoted strips whitespace inside quotes as well.
	// Implies StripWhitespace.
	StripQuoted bool
}

// DefaultOptions returns the conventional CSV configuration: comma
// delimiter, double quote for open, close, and escape, space and tab
// whitespace.
func DefaultOptions() Options {
	return Options{
		Wh1:        ' ',
		Wh2:        '\t',
		Quoted:     true,
		OpenQuote:  '"',
		CloseQuote: '"',
		Escape:     '"',
		Delim:      []byte{','},
		Decimal:    '.',
	}
}

// NewOptions validates o and returns the immutable snapshot used by the
// parsing functions. Validation enforces:
//
//   - OpenQuote, CloseQuote, and Escape are ASCII when Quoted is set
//   - Delim does not begin with a quote or whitespace byte when Quoted is set
//   - no sentinel is empty or begins with a whitespace, quote, escape, or
//     delimiter byte
//
// Sentinels and boolean tokens are sorted longest-first (stable), Decimal
// defaults to '.', Wh1/Wh2 default to space and tab when both are zero, and
// StripQuoted switches StripWhitespace on.
func NewOptions(o Options) (*Options, error) {
	if o.Wh1 == 0 && o.Wh2 == 0 {
		o.Wh1, o.Wh2 = ' ', '\t'
	}
	if o.Decimal == 0 {
		o.Decimal = '.'
	}
	if o.StripQuoted {
		o.StripWhitespace = true
	}

	if o.Quoted {
		if o.OpenQuote >= 0x80 || o.CloseQuote >= 0x80 || o.Escape >= 0x80 {
			return nil, &OptionsError{Field: "OpenQuote", Message: "quote and escape bytes must be ASCII"}
		}
		if len(o.Delim) > 0 {
			d := o.Delim[0]
			if d == o.OpenQuote || d == o.CloseQuote || d == o.Escape || d == o.Wh1 || d == o.Wh2 {
				return nil, &OptionsError{Field: "Delim", Message: "delimiter collides with a quote or whitespace byte"}
			}
		}
	}

	if o.Sentinel != nil {
		s := make([][]byte, len(o.Sentinel))
		copy(s, o.Sentinel)
		for _, sent := range s {
			if len(sent) == 0 {
				return nil, &OptionsError{Field: "Sentinel", Message: "empty sentinel string; use an empty set for empty-field-as-missing"}
			}
			b := sent[0]
			if b == o.Wh1 || b == o.Wh2 {
				return nil, &OptionsError{Field: "Sentinel", Message: "sentinel begins with a whitespace byte"}
			}
			if o.Quoted && (b == o.OpenQuote || b == o.CloseQuote || b == o.Escape) {
				return nil, &OptionsError{Field: "Sentinel", Message: "sentinel begins with a quote or escape byte"}
			}
			if len(o.Delim) > 0 && b == o.Delim[0] {
				return nil, &OptionsError{Field: "Sentinel", Message: "sentinel begins with the delimiter"}
			}
		}
		sortLongestFirst(s)
		o.Sentinel = s
	}

	if o.Trues != nil {
		o.Trues = sortedCopy(o.Trues)
	}
	if o.Falses != nil {
		o.Falses = sortedCopy(o.Falses)
	}

	return &o, nil
}

func sortedCopy(tokens [][]byte) [][]byte {
	c := make([][]byte, len(tokens))
	copy(c, tokens)
	sortLongestFirst(c)
	return c
}

// sortLongestFirst orders byte strings by descending length, ties keeping
// insertion order.
func sortLongestFirst(s [][]byte) {
	sort.SliceStable(s, func(i, j int) bool { return len(s[i]) > len(s[j]) })
}

// emptySentinel reports whether a zero-byte field counts as missing.
func (o *Options) emptySentinel() bool {
	return o.Sentinel != nil && len(o.Sentinel) == 0
}

func (o *Options) isWhitespace(b byte) bool { return b == o.Wh1 || b == o.Wh2 }

// OptionsError represents an invalid option configuration.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "fieldparse: invalid " + e.Field + ": " + e.Message
}

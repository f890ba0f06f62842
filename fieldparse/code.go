package fieldparse

import "strings"

// ReturnCode encodes the layered outcome of a field parse in a single 16-bit
// word. Each parsing layer ORs in the flags it observes; a negative value
// (sign bit set) always means some invalid condition was hit. A code can be
// OK and still carry property flags such as Quoted or Delimited.
type ReturnCode int16

const (
	// OK is set when the type parser produced a value.
	OK ReturnCode = 1 << 0
	// Sentinel is set when the field matched a configured sentinel and the
	// value is missing.
	Sentinel ReturnCode = 1 << 1
	// Quoted is set when the field began with the open-quote byte.
	Quoted ReturnCode = 1 << 2
	// Delimited is set when the field ended at a delimiter match.
	Delimited ReturnCode = 1 << 3
	// Newline is set when the field ended at a newline (LF, CR, or CRLF).
	Newline ReturnCode = 1 << 4
	// EOF is set when the parse reached the end of the input.
	EOF ReturnCode = 1 << 5
	// EscapedString is set when a quoted field contained at least one escape
	// sequence; the captured substring must be decoded with GetString.
	EscapedString ReturnCode = 1 << 9

	// Invalid is the sign bit. It is set by every invalid condition and
	// tested with a single code < 0 comparison.
	Invalid ReturnCode = -1 << 15
	// InvalidQuotedField marks a dangling escape or a missing close quote.
	InvalidQuotedField ReturnCode = 1<<6 | Invalid
	// InvalidDelimiter marks extra bytes between the value and the delimiter.
	InvalidDelimiter ReturnCode = 1<<7 | Invalid
	// Overflow marks numeric overflow in the type parser. Callers may retry
	// with a wider type.
	Overflow ReturnCode = 1<<8 | Invalid
)

// Succeeded reports whether the parse produced either a value or a sentinel.
func (c ReturnCode) Succeeded() bool { return c > 0 }

// IsOK reports whether the type parser produced a value and no invalid
// condition was hit.
func (c ReturnCode) IsOK() bool { return c&(OK|Invalid) == OK }

// IsSentinel reports whether the field matched a sentinel.
func (c ReturnCode) IsSentinel() bool { return c&Sentinel != 0 }

// IsQuoted reports whether the field began with the open-quote byte.
func (c ReturnCode) IsQuoted() bool { return c&Quoted != 0 }

// IsDelimited reports whether the field ended at a delimiter.
func (c ReturnCode) IsDelimited() bool { return c&Delimited != 0 }

// IsNewline reports whether the field ended at a newline.
func (c ReturnCode) IsNewline() bool { return c&Newline != 0 }

// IsEOF reports whether the parse reached the end of the input.
func (c ReturnCode) IsEOF() bool { return c&EOF != 0 }

// IsEscapedString reports whether the field contained an escape sequence.
func (c ReturnCode) IsEscapedString() bool { return c&EscapedString != 0 }

// IsInvalid reports whether any invalid condition was hit.
func (c ReturnCode) IsInvalid() bool { return c < 0 }

// IsInvalidQuotedField reports a dangling escape or missing close quote.
func (c ReturnCode) IsInvalidQuotedField() bool {
	return c&InvalidQuotedField == InvalidQuotedField
}

// IsInvalidDelimiter reports extra bytes between the value and the delimiter.
func (c ReturnCode) IsInvalidDelimiter() bool {
	return c&InvalidDelimiter == InvalidDelimiter
}

// IsOverflow reports numeric overflow in the type parser.
func (c ReturnCode) IsOverflow() bool { return c&Overflow == Overflow }

// String returns the set flags joined with "|", e.g. "OK|QUOTED|DELIMITED".
func (c ReturnCode) String() string {
	if c == 0 {
		return "NONE"
	}
	var parts []string
	add := func(set bool, name string) {
		if set {
			parts = append(parts, name)
		}
	}
	add(c&OK != 0, "OK")
	add(c.IsSentinel(), "SENTINEL")
	add(c.IsQuoted(), "QUOTED")
	add(c.IsDelimited(), "DELIMITED")
	add(c.IsNewline(), "NEWLINE")
	add(c.IsEOF(), "EOF")
	add(c.IsEscapedString(), "ESCAPED_STRING")
	add(c.IsInvalidQuotedField(), "INVALID_QUOTED_FIELD")
	add(c.IsInvalidDelimiter(), "INVALID_DELIMITER")
	add(c.IsOverflow(), "OVERFLOW")
	if c.IsInvalid() && !c.IsInvalidQuotedField() && !c.IsInvalidDelimiter() && !c.IsOverflow() {
		parts = append(parts, "INVALID")
	}
	return strings.Join(parts, "|")
}

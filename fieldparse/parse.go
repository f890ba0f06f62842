package fieldparse

import "fmt"

// Error reports a failed convenience parse. It carries the offending input
// fragment, the target type, and the ReturnCode the pipeline produced.
type Error struct {
	Fragment string
	Type     string
	Code     ReturnCode
}

func (e *Error) Error() string {
	return fmt.Sprintf("fieldparse: cannot parse %q as %s (%v)", e.Fragment, e.Type, e.Code)
}

// parseDefaults is the snapshot used by Parse and TryParse when no options
// are given: no delimiter, no quoting, space and tab whitespace. The
// condensed pipeline reads one bare value.
var parseDefaults = &Options{Wh1: ' ', Wh2: '\t', Decimal: '.'}

// Parse interprets all of buf as a single value of type T using the
// condensed pipeline. It returns an *Error when the value does not parse,
// is a sentinel, or does not consume the entire input.
func Parse[T any](buf []byte, opts ...*Options) (T, error) {
	o := parseDefaults
	if len(opts) > 0 && opts[0] != nil {
		o = opts[0]
	}
	res := Xparse2[T](NewBuf(buf), 0, len(buf), o)
	if !res.Code.IsOK() || res.Tlen < len(buf) {
		var zero T
		return zero, &Error{Fragment: string(buf), Type: fmt.Sprintf("%T", zero), Code: res.Code}
	}
	return res.Val, nil
}

// TryParse is Parse returning ok instead of an error.
func TryParse[T any](buf []byte, opts ...*Options) (T, bool) {
	v, err := Parse[T](buf, opts...)
	return v, err == nil
}

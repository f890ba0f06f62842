package fieldparse

import (
	"errors"
	"strconv"
	"unsafe"
)

// parseFloat consumes a floating-point token: an optional sign, digits with
// the configured decimal byte, an optional exponent, or one of the special
// tokens NaN, Inf, and Infinity (case-insensitive). The scanned token is
// handed to strconv.ParseFloat with the decimal byte normalized to '.';
// a range error maps to Overflow.
func parseFloat[T ~float32 | ~float64](src Source, pos, n int, b byte, code ReturnCode, pl PosLen, opts *Options) (int, ReturnCode, PosLen, T) {
	start := pos

	if b == '-' || b == '+' {
		pos++
		if src.EOF(pos, n) {
			code |= Invalid | EOF
			return pos, code, pl, 0
		}
		b = src.Peek(pos)
	}

	// Special tokens.
	if lower(b) == 'n' || lower(b) == 'i' {
		pos = matchSpecialFloat(src, pos, n)
		if pos == start || (pos-start == 1 && (b == '-' || b == '+')) {
			code |= Invalid
			return pos, code, pl, 0
		}
	} else {
		digits := false
		for !src.EOF(pos, n) {
			b = src.Peek(pos)
			if b >= '0' && b <= '9' {
				digits = true
				pos++
				continue
			}
			break
		}
		if !src.EOF(pos, n) && src.Peek(pos) == opts.Decimal {
			pos++
			for !src.EOF(pos, n) {
				b = src.Peek(pos)
				if b < '0' || b > '9' {
					break
				}
				digits = true
				pos++
			}
		}
		if !digits {
			code |= Invalid
			return pos, code, pl, 0
		}
		// Exponent, only when digits follow it.
		if !src.EOF(pos, n) {
			b = src.Peek(pos)
			if b == 'e' || b == 'E' {
				expEnd := pos + 1
				if !src.EOF(expEnd, n) {
					eb := src.Peek(expEnd)
					if eb == '-' || eb == '+' {
						expEnd++
					}
					expDigits := false
					for !src.EOF(expEnd, n) {
						eb = src.Peek(expEnd)
						if eb < '0' || eb > '9' {
							break
						}
						expDigits = true
						expEnd++
					}
					if expDigits {
						pos = expEnd
					}
				}
			}
		}
	}

	if src.EOF(pos, n) {
		code |= EOF
	}

	tok := src.Bytes(start, pos-start)
	if opts.Decimal != '.' {
		c := make([]byte, len(tok))
		copy(c, tok)
		for i, tb := range c {
			if tb == opts.Decimal {
				c[i] = '.'
			}
		}
		tok = c
	}

	bits := int(unsafe.Sizeof(T(0))) * 8
	f, err := strconv.ParseFloat(unsafeString(tok), bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			code |= Overflow
		} else {
			code |= Invalid
		}
		return pos, code, pl, 0
	}
	code |= OK
	return pos, code, pl, T(f)
}

// matchSpecialFloat consumes "nan", "inf", or "infinity" case-insensitively
// at pos and returns the new position, or pos unchanged on no match.
func matchSpecialFloat(src Source, pos, n int) int {
	if matchFold(src, pos, n, "nan") {
		return pos + 3
	}
	if matchFold(src, pos, n, "infinity") {
		return pos + 8
	}
	if matchFold(src, pos, n, "inf") {
		return pos + 3
	}
	return pos
}

// matchFold compares the lowercase pattern pat against the bytes at pos,
// ASCII case-insensitively.
func matchFold(src Source, pos, n int, pat string) bool {
	for i := 0; i < len(pat); i++ {
		if src.EOF(pos+i, n) {
			return false
		}
		if lower(src.Peek(pos+i)) != pat[i] {
			return false
		}
	}
	return true
}

func lower(b byte) byte { return b | 0x20 }
